package app

import (
	"net/http"

	"gorm.io/gorm"

	"fleet-app-go/internal/config"
	"fleet-app-go/internal/db"
	"fleet-app-go/internal/domain/fleet"
	"fleet-app-go/internal/export"
	fleetrepo "fleet-app-go/internal/repository/fleet"
	"fleet-app-go/internal/scheduler"
	"fleet-app-go/internal/transport/httpserver"
	"fleet-app-go/internal/transport/httpserver/handler"
	commonhandler "fleet-app-go/internal/transport/httpserver/handler/common"
	fleethandler "fleet-app-go/internal/transport/httpserver/handler/fleet"
	reportshandler "fleet-app-go/internal/transport/httpserver/handler/reports"
	"fleet-app-go/pkg/logger"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB)
	if err != nil {
		return nil, err
	}

	log.Info("app: running migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	fleetService := fleet.NewService(fleetrepo.NewPostgres(dbConn))

	registry := export.NewRegistry()
	exporter := export.New(registry)

	handlers := handler.New(
		commonhandler.New(),
		fleethandler.New(fleetService, log),
		reportshandler.New(fleetService, registry, exporter, log),
	)

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handlers)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	sched := scheduler.New(cfg.Export, fleetService, registry, exporter, log)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		scheduler:  sched,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) StartScheduler() error {
	return a.scheduler.Start()
}

func (a *App) Close() error {
	a.scheduler.Stop()

	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
