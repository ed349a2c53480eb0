package app

import (
	"github.com/adrforge/adrforge-backend/internal/adr/provider"
	"github.com/adrforge/adrforge-backend/internal/pkg/logger"
	"github.com/adrforge/adrforge-backend/internal/services"
)

type Services struct {
	Adr services.AdrService
}

func wireServices(log *logger.Logger, reposet Repos, registry *provider.Registry) Services {
	log.Info("Wiring services...")
	return Services{
		Adr: services.NewAdrService(log, reposet.Adr, registry),
	}
}
