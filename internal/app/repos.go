package app

import (
	"fmt"

	"github.com/yungbote/careerpath-backend/internal/data/db"
	"github.com/yungbote/careerpath-backend/internal/data/repos"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

// wireRepos returns the tables for the configured driver and a close func
// for whatever backs them.
func wireRepos(log *logger.Logger, cfg StoreConfig) (*repos.Repos, func() error, error) {
	log.Info("Wiring repos...", "driver", cfg.Driver)
	switch cfg.Driver {
	case StoreSQLite:
		svc, err := db.NewSQLiteService(log, cfg.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("init sqlite: %w", err)
		}
		return repos.NewGorm(svc.DB(), log), svc.Close, nil
	default:
		return repos.NewMemory(log), func() error { return nil }, nil
	}
}
