package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-ideas/internal/config"
)

// GET /ping
func pingHandler(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

// GET /health
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// GET /config
func configHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Only return non-sensitive config fields
		c.JSON(http.StatusOK, gin.H{
			"server": gin.H{
				"host": cfg.Server.Host,
				"port": cfg.Server.Port,
			},
			"anthropic": gin.H{
				"base_url":    cfg.Anthropic.BaseURL,
				"model":       cfg.Anthropic.Model,
				"use_sdk":     cfg.Anthropic.UseSDK,
				"key_present": cfg.Anthropic.APIKey != "",
			},
			"holidays":    cfg.Holidays,
			"allow_mocks": cfg.AllowMocks,
		})
	}
}
