package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/adrforge/adrforge-backend/internal/http/handlers"
	httpMW "github.com/adrforge/adrforge-backend/internal/http/middleware"
	"github.com/adrforge/adrforge-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	HealthHandler *httpH.HealthHandler
	AdrHandler    *httpH.AdrHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.RequestID())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		if cfg.AdrHandler != nil {
			api.POST("/adrs/generate", cfg.AdrHandler.Generate)
			api.GET("/adrs", cfg.AdrHandler.List)
			api.GET("/adrs/:id", cfg.AdrHandler.Get)
			api.GET("/adrs/:id/refinements", cfg.AdrHandler.ListRefinements)
			api.POST("/adrs/:id/feedback", cfg.AdrHandler.Feedback)
		}
	}

	return r
}
