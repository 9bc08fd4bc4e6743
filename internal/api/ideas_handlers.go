package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-ideas/internal/config"
	"go-ideas/internal/ideas"
)

type ideasRequest struct {
	Industry string `json:"industry"`
	Date     string `json:"date"`
	Country  string `json:"country"`
}

// GET /ideas?industry=&date=&country=
func GetIdeasHandler(cfg *config.Config, svc *ideas.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		industry := c.Query("industry")
		date := c.Query("date")
		country := c.DefaultQuery("country", cfg.Holidays.DefaultCountry)

		if industry == "" || date == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "parameters 'industry' and 'date' are required"})
			return
		}
		respondWithIdeas(c, svc, industry, date, country)
	}
}

// POST /ideas with JSON body {industry, date, country}
func PostIdeasHandler(cfg *config.Config, svc *ideas.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ideasRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "expected JSON body"})
			return
		}
		if req.Industry == "" || req.Date == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "'industry' and 'date' are required in JSON"})
			return
		}
		if req.Country == "" {
			req.Country = cfg.Holidays.DefaultCountry
		}
		respondWithIdeas(c, svc, req.Industry, req.Date, req.Country)
	}
}

func respondWithIdeas(c *gin.Context, svc *ideas.Service, industry, date, country string) {
	result, err := svc.Generate(c.Request.Context(), industry, date, country)
	if err != nil {
		var valErr *ideas.ValidationError
		if errors.As(err, &valErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": valErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
