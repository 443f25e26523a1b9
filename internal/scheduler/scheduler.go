package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shaiso/Conveyor/internal/config"
	"github.com/shaiso/Conveyor/internal/pipeline"
)

// Scheduler периодически запускает pipeline по cron-расписанию.
type Scheduler struct {
	orchestrator *pipeline.Orchestrator
	configPath   string
	overrides    []string
	timezone     string
	logger       *slog.Logger
}

// Config — конфигурация Scheduler.
type Config struct {
	Orchestrator *pipeline.Orchestrator
	ConfigPath   string
	Overrides    []string

	// Timezone — timezone расписания (default: "UTC").
	Timezone string

	// Logger — логгер; nil означает slog.Default().
	Logger *slog.Logger
}

// New создаёт новый Scheduler.
func New(cfg Config) *Scheduler {
	timezone := cfg.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Scheduler{
		orchestrator: cfg.Orchestrator,
		configPath:   cfg.ConfigPath,
		overrides:    cfg.Overrides,
		timezone:     timezone,
		logger:       logger,
	}
}

// Start запускает цикл планировщика и блокируется до отмены контекста.
//
// Cron-выражение читается из main.schedule; его отсутствие — ошибка
// конфигурации scheduler'а.
func (s *Scheduler) Start(ctx context.Context) error {
	cfg, err := config.Load(s.configPath, s.overrides)
	if err != nil {
		return err
	}
	cronExpr := cfg.Main.Schedule
	if cronExpr == "" {
		return fmt.Errorf("config key main.schedule: %w", errNoSchedule)
	}
	if err := ValidateCronExpr(cronExpr); err != nil {
		return err
	}

	s.logger.Info("scheduler started",
		"cron", cronExpr,
		"timezone", s.timezone,
	)

	for {
		next, err := NextAfter(cronExpr, s.timezone, time.Now())
		if err != nil {
			return err
		}

		s.logger.Info("next run scheduled", "at", next)

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-timer.C:
		}

		s.runOnce(ctx)
	}
}

// runOnce выполняет один запланированный запуск pipeline.
// Ошибка run логируется и не останавливает планировщик.
func (s *Scheduler) runOnce(ctx context.Context) {
	started := time.Now()
	report, err := s.orchestrator.Run(ctx, s.configPath, s.overrides)
	if err != nil {
		s.logger.Error("scheduled run failed", "error", err, "duration", time.Since(started))
		return
	}
	s.logger.Info("scheduled run succeeded",
		"run_id", report.Run.ID,
		"duration", time.Since(started),
	)
}

// errNoSchedule — в конфигурации нет cron-выражения.
var errNoSchedule = errors.New("no schedule configured")
