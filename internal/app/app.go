package app

import (
	"fmt"

	"gorm.io/gorm"

	"real-estate-go/internal/config"
	"real-estate-go/internal/db"
	"real-estate-go/internal/domain/estate"
	"real-estate-go/internal/domain/reports"
	estaterepo "real-estate-go/internal/repository/estate"
	reportsrepo "real-estate-go/internal/repository/reports"
	"real-estate-go/pkg/logger"
)

// App owns the one store session of the process and the services built on it.
type App struct {
	cfg     config.Config
	db      *gorm.DB
	estate  *estate.Service
	reports *reports.Service
}

func New(log logger.Logger, cfg config.Config) (*App, error) {
	log.Info("app: initializing database", "driver", cfg.DB.Driver)
	dbConn, err := db.Open(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	log.Debug("app: applying migrations")
	if err := db.Migrate(dbConn); err != nil {
		_ = db.Close(dbConn)
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &App{
		cfg:     cfg,
		db:      dbConn,
		estate:  estate.NewService(estaterepo.NewGorm(dbConn)),
		reports: reports.NewService(reportsrepo.NewGorm(dbConn)),
	}, nil
}

func (a *App) Estate() *estate.Service {
	return a.estate
}

func (a *App) Reports() *reports.Service {
	return a.reports
}

func (a *App) Config() config.Config {
	return a.cfg
}

func (a *App) Close() error {
	return db.Close(a.db)
}

// Exec runs fn against the raw store handle, for maintenance tasks that sit
// outside the services.
func (a *App) Exec(fn func(conn *gorm.DB) error) error {
	return fn(a.db)
}
