package app

import (
	"fmt"

	"github.com/adrforge/adrforge-backend/internal/data/db"
	"github.com/adrforge/adrforge-backend/internal/data/repos"
	"github.com/adrforge/adrforge-backend/internal/pkg/logger"
)

type Repos struct {
	Adr repos.AdrRepo
}

func wireRepos(log *logger.Logger, cfg Config) (Repos, error) {
	log.Info("Wiring repos...", "storage_driver", cfg.StorageDriver)

	switch cfg.StorageDriver {
	case "", "memory":
		return Repos{Adr: repos.NewMemoryAdrRepo(log)}, nil
	case "postgres":
		pg, err := db.NewPostgresService(log)
		if err != nil {
			return Repos{}, fmt.Errorf("init postgres: %w", err)
		}
		if err := pg.AutoMigrateAll(); err != nil {
			return Repos{}, fmt.Errorf("postgres automigrate: %w", err)
		}
		return Repos{Adr: repos.NewGormAdrRepo(pg.DB(), log)}, nil
	default:
		return Repos{}, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
