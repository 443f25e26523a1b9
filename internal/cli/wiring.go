package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/shaiso/Conveyor/internal/artifact"
	"github.com/shaiso/Conveyor/internal/events"
	"github.com/shaiso/Conveyor/internal/runner"
)

// buildTracker выбирает трекер артефактов.
//
// При заданном DB_URL — PostgresTracker (артефакты разделяются между
// запусками); иначе MemoryTracker, живущий только в текущем процессе.
func buildTracker(ctx context.Context, logger *slog.Logger) (artifact.Tracker, func(), error) {
	if os.Getenv("DB_URL") == "" {
		logger.Warn("DB_URL not set, using in-memory artifact tracker")
		return artifact.NewMemoryTracker(), func() {}, nil
	}

	pool, err := artifact.NewPool(ctx)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("artifact tracking database connected")
	return artifact.NewPostgresTracker(pool), pool.Close, nil
}

// buildRunner выбирает Task Runner.
//
// RUNNER_URL переключает на удалённый runner-сервис; по умолчанию
// шаги выполняются локальной driver-командой.
func buildRunner(logger *slog.Logger, driver string) runner.Runner {
	if url := os.Getenv("RUNNER_URL"); url != "" {
		logger.Info("using remote runner", "url", url)
		return &runner.HTTPRunner{URL: url}
	}
	return &runner.ProcessRunner{Driver: driver, Logger: logger}
}

// buildPublisher создаёт publisher событий, если задан RABBITMQ_URL.
// Недоступный брокер не мешает запуску: события просто выключаются.
func buildPublisher(ctx context.Context, logger *slog.Logger) (*events.Publisher, func()) {
	url := os.Getenv("RABBITMQ_URL")
	if url == "" {
		return nil, func() {}
	}

	conn, err := events.NewConnection(url, logger)
	if err != nil {
		logger.Warn("RabbitMQ not available, lifecycle events disabled", "error", err)
		return nil, func() {}
	}

	if err := events.SetupTopology(ctx, conn); err != nil {
		logger.Warn("failed to setup topology", "error", err)
	}

	return events.NewPublisher(conn, logger), func() { conn.Close() }
}
