package history

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Record is one generation request and its outcome. Response holds the
// normalized JSON exactly as it was returned to the caller; Error is set
// instead when generation failed.
type Record struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	Industry  string         `json:"industry"`
	Date      string         `json:"date"`
	Country   string         `json:"country"`
	Holidays  datatypes.JSON `json:"holidays"`
	Response  datatypes.JSON `json:"response"`
	Error     string         `json:"error,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// Store persists generation records in a local sqlite file.
type Store struct {
	db *gorm.DB
}

// Init opens the sqlite database at dsn and migrates the schema. An empty
// dsn disables persistence and returns a nil store, which every method
// tolerates.
func Init(dsn string) (*Store, error) {
	if dsn == "" {
		return nil, nil
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}
	log.Printf("[History] request log open at %s", dsn)
	return &Store{db: db}, nil
}

// Save writes one record, assigning it an ID and timestamp.
func (s *Store) Save(ctx context.Context, rec *Record) error {
	if s == nil {
		return nil
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	return s.db.WithContext(ctx).Create(rec).Error
}

// Last returns the most recent record, or nil when the log is empty.
func (s *Store) Last(ctx context.Context) (*Record, error) {
	if s == nil {
		return nil, nil
	}
	var rec Record
	err := s.db.WithContext(ctx).Order("created_at DESC").First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
