package app

import (
	"github.com/gin-gonic/gin"

	httpServer "github.com/adrforge/adrforge-backend/internal/http"
	"github.com/adrforge/adrforge-backend/internal/pkg/logger"
)

func wireRouter(log *logger.Logger, handlers Handlers) *gin.Engine {
	return httpServer.NewRouter(httpServer.RouterConfig{
		Log:           log,
		HealthHandler: handlers.Health,
		AdrHandler:    handlers.Adr,
	})
}
