package ideas

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"go-ideas/internal/history"
)

// TextGenerator is the single capability the service needs from the LLM
// side: one prompt in, raw text out. Implementations live in internal/llm.
type TextGenerator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// HolidaySource returns the holiday names falling on the given date.
type HolidaySource interface {
	HolidayNames(ctx context.Context, date, countryCode string) ([]string, error)
}

// Service generates campaign ideas for an (industry, date, country) triple.
// Stateless per call; safe for concurrent use.
type Service struct {
	generator  TextGenerator
	holidays   HolidaySource
	store      *history.Store
	allowMocks bool
}

func NewService(generator TextGenerator, holidays HolidaySource, store *history.Store, allowMocks bool) *Service {
	return &Service{
		generator:  generator,
		holidays:   holidays,
		store:      store,
		allowMocks: allowMocks,
	}
}

// Generate runs the full pipeline: holiday lookup, prompt build, model call,
// JSON recovery. A holiday lookup failure degrades to an empty list; a model
// or parse failure is fatal unless mocks are enabled, in which case a canned
// idea list is substituted.
func (s *Service) Generate(ctx context.Context, industry, date, country string) (any, error) {
	if industry == "" || date == "" {
		return nil, &ValidationError{Msg: "'industry' and 'date' are required"}
	}

	var holidays []string
	if s.holidays != nil {
		names, err := s.holidays.HolidayNames(ctx, date, country)
		if err != nil {
			log.Printf("[Ideas] holiday lookup failed, continuing without: %v", err)
		} else {
			holidays = names
		}
	}

	prompt := BuildPrompt(industry, date, holidays)

	result, genErr := s.complete(ctx, prompt)
	s.record(ctx, industry, date, country, holidays, result, genErr)

	if genErr != nil {
		if s.allowMocks {
			log.Printf("[Ideas] generation failed, substituting mock ideas: %v", genErr)
			return fallbackIdeas(industry, date, holidays), nil
		}
		return nil, genErr
	}
	return result, nil
}

func (s *Service) complete(ctx context.Context, prompt string) (any, error) {
	raw, err := s.generator.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return Normalize(raw)
}

// record persists the outcome to the request log. Never fatal.
func (s *Service) record(ctx context.Context, industry, date, country string, holidays []string, result any, genErr error) {
	if s.store == nil {
		return
	}
	rec := history.Record{
		Industry: industry,
		Date:     date,
		Country:  country,
	}
	if raw, err := json.Marshal(holidays); err == nil {
		rec.Holidays = raw
	}
	if genErr != nil {
		rec.Error = genErr.Error()
	} else if raw, err := json.Marshal(result); err == nil {
		rec.Response = raw
	}
	if err := s.store.Save(ctx, &rec); err != nil {
		log.Printf("[Ideas] failed to record request: %v", err)
	}
}

// fallbackIdeas mirrors the canned pair returned when mocks are enabled and
// the real generation path failed.
func fallbackIdeas(industry, date string, holidays []string) []Idea {
	occasion := "the occasion"
	if len(holidays) > 0 {
		occasion = strings.Join(holidays, ", ")
	}
	return []Idea{
		{
			Title:       fmt.Sprintf("Flash promotion for %s", industry),
			Description: fmt.Sprintf("Short campaigns tied to %s on %s.", occasion, date),
		},
		{
			Title:       fmt.Sprintf("Social contest for %s", industry),
			Description: "A hashtag contest with prizes, promoted on social media.",
		},
	}
}
