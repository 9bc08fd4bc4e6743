package api

import (
	"github.com/gin-gonic/gin"

	"go-ideas/internal/config"
	"go-ideas/internal/ideas"
)

func SetupRouter(cfg *config.Config, svc *ideas.Service) *gin.Engine {
	r := gin.Default()

	r.GET("/ping", pingHandler)
	r.GET("/health", healthHandler)
	r.GET("/config", configHandler(cfg))

	r.GET("/ideas", GetIdeasHandler(cfg, svc))
	r.POST("/ideas", PostIdeasHandler(cfg, svc))

	return r
}
