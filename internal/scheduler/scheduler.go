package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"fleet-app-go/internal/config"
	"fleet-app-go/internal/domain/fleet"
	"fleet-app-go/internal/export"
	"fleet-app-go/internal/render"
	"fleet-app-go/internal/report"
	"fleet-app-go/pkg/logger"
)

// Scheduler writes a full unfiltered fleet report to disk on a cron schedule.
type Scheduler struct {
	cron     *cron.Cron
	fleet    *fleet.Service
	registry *export.Registry
	exporter *export.Exporter
	cfg      config.ExportConfig
	log      logger.Logger
}

func New(cfg config.ExportConfig, fleetService *fleet.Service, registry *export.Registry, exporter *export.Exporter, log logger.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		fleet:    fleetService,
		registry: registry,
		exporter: exporter,
		cfg:      cfg,
		log:      log,
	}
}

// Start registers the export job and starts the cron loop. A missing schedule
// disables the scheduler without error.
func (s *Scheduler) Start() error {
	if s.cfg.Cron == "" {
		s.log.Info("scheduler: no export schedule configured")
		return nil
	}

	if _, err := s.cron.AddFunc(s.cfg.Cron, s.exportReport); err != nil {
		return err
	}

	s.log.Info("scheduler: export scheduled", "cron", s.cfg.Cron, "dir", s.cfg.Dir)
	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) exportReport() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	logs, err := s.fleet.ListTruckLogs(ctx)
	if err != nil {
		s.log.Error("scheduler: load truck logs failed", "err", err)
		return
	}
	expenses, err := s.fleet.ListExpenses(ctx)
	if err != nil {
		s.log.Error("scheduler: load expenses failed", "err", err)
		return
	}

	target, err := render.Report(render.Data{
		TruckLogs:   logs,
		Expenses:    expenses,
		Summary:     report.Aggregate(logs, expenses),
		GeneratedAt: time.Now(),
	})
	if err != nil {
		s.log.Error("scheduler: render failed", "err", err)
		return
	}

	targetID := uuid.NewString()
	s.registry.Mount(targetID, target)

	doc, err := s.exporter.Export(ctx, targetID, s.cfg.BaseName)
	if err != nil {
		s.registry.Unmount(targetID)
		s.log.Error("scheduler: export failed", "err", err)
		return
	}

	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		s.log.Error("scheduler: create export dir failed", "dir", s.cfg.Dir, "err", err)
		return
	}

	path := filepath.Join(s.cfg.Dir, doc.FileName)
	if err := os.WriteFile(path, doc.Bytes, 0o644); err != nil {
		s.log.Error("scheduler: write export failed", "path", path, "err", err)
		return
	}

	s.log.Info("scheduler: export written", "path", path, "bytes", len(doc.Bytes))
}
