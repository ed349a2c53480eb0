package app

import (
	httpH "github.com/adrforge/adrforge-backend/internal/http/handlers"
	"github.com/adrforge/adrforge-backend/internal/pkg/logger"
)

type Handlers struct {
	Health *httpH.HealthHandler
	Adr    *httpH.AdrHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health: httpH.NewHealthHandler(),
		Adr:    httpH.NewAdrHandler(log, serviceset.Adr),
	}
}
