// Conveyor Scheduler — периодический запуск pipeline по cron-расписанию.
//
// Scheduler:
//   - Читает cron-выражение из main.schedule конфигурации
//   - Перечитывает конфигурацию перед каждым запуском
//   - Выполняет pipeline в собственном процессе (блокирующе)
//   - Отдаёт /healthz и /metrics
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shaiso/Conveyor/internal/artifact"
	"github.com/shaiso/Conveyor/internal/events"
	"github.com/shaiso/Conveyor/internal/pipeline"
	"github.com/shaiso/Conveyor/internal/runner"
	"github.com/shaiso/Conveyor/internal/scheduler"
	"github.com/shaiso/Conveyor/internal/telemetry"
	"github.com/shaiso/Conveyor/internal/workspace"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to pipeline config")
	timezone := flag.String("timezone", "UTC", "schedule timezone")
	driver := flag.String("driver", "", "driver command for local step execution")
	projectRoot := flag.String("project-root", ".", "project root for local steps")
	flag.Parse()

	// Инициализируем structured logging
	logger := telemetry.SetupLogger()
	logger.Info("starting conveyor-scheduler")

	// graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Трекер артефактов: postgres при заданном DB_URL, иначе in-memory.
	var tracker artifact.Tracker
	if os.Getenv("DB_URL") != "" {
		pool, err := artifact.NewPool(ctx)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		logger.Info("artifact tracking database connected")
		tracker = artifact.NewPostgresTracker(pool)
	} else {
		logger.Warn("DB_URL not set, using in-memory artifact tracker")
		tracker = artifact.NewMemoryTracker()
	}

	// RabbitMQ (опционально)
	var publisher *events.Publisher
	if mqURL := os.Getenv("RABBITMQ_URL"); mqURL != "" {
		conn, err := events.NewConnection(mqURL, logger)
		if err != nil {
			logger.Warn("RabbitMQ not available, lifecycle events disabled", "error", err)
		} else {
			defer conn.Close()
			if err := events.SetupTopology(ctx, conn); err != nil {
				logger.Warn("failed to setup topology", "error", err)
			}
			publisher = events.NewPublisher(conn, logger)
		}
	}

	// Task Runner: удалённый при заданном RUNNER_URL, иначе driver-команда.
	var stepRunner runner.Runner
	if url := os.Getenv("RUNNER_URL"); url != "" {
		stepRunner = &runner.HTTPRunner{URL: url}
	} else {
		stepRunner = &runner.ProcessRunner{Driver: *driver, Logger: logger}
	}

	orch := pipeline.New(pipeline.Config{
		Tracker:     tracker,
		Runner:      stepRunner,
		Workspaces:  workspace.NewManager(""),
		Publisher:   publisher,
		ProjectRoot: *projectRoot,
		Logger:      logger,
	})

	sched := scheduler.New(scheduler.Config{
		Orchestrator: orch,
		ConfigPath:   *configPath,
		Timezone:     *timezone,
		Logger:       logger,
	})

	// HTTP mux: /healthz + /metrics
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", promhttp.Handler())

	port := ":8084"
	if v := os.Getenv("SCHED_PORT"); v != "" {
		port = ":" + v
	}

	go func() {
		logger.Info("listening", "addr", port)
		if err := http.ListenAndServe(port, mux); err != nil {
			logger.Error("http server error", "error", err)
			cancel()
		}
	}()

	// Блокируемся в цикле планировщика до сигнала завершения.
	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}

	logger.Info("conveyor-scheduler stopped")
}
