package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/shaiso/Conveyor/internal/artifact"
	"github.com/shaiso/Conveyor/internal/config"
	"github.com/shaiso/Conveyor/internal/domain"
	"github.com/shaiso/Conveyor/internal/events"
	"github.com/shaiso/Conveyor/internal/registry"
	"github.com/shaiso/Conveyor/internal/runner"
	"github.com/shaiso/Conveyor/internal/telemetry"
	"github.com/shaiso/Conveyor/internal/workspace"
)

// Orchestrator выполняет pipeline: выбирает активные шаги, разрешает
// параметры и последовательно передаёт вызовы Task Runner'у.
type Orchestrator struct {
	registry   *registry.Registry
	tracker    artifact.Tracker
	runner     runner.Runner
	workspaces *workspace.Manager

	// publisher — опциональный publisher событий (nil — события выключены).
	publisher *events.Publisher

	// projectRoot — корень проекта для локальных шагов (src/...).
	projectRoot string

	logger *slog.Logger
}

// Config — конфигурация Orchestrator.
type Config struct {
	Registry   *registry.Registry
	Tracker    artifact.Tracker
	Runner     runner.Runner
	Workspaces *workspace.Manager

	// Publisher — publisher событий жизненного цикла (опционально).
	Publisher *events.Publisher

	// ProjectRoot — корень проекта для локальных шагов (default: ".").
	ProjectRoot string

	// Logger — логгер; nil означает slog.Default().
	Logger *slog.Logger
}

// New создаёт новый Orchestrator.
func New(cfg Config) *Orchestrator {
	reg := cfg.Registry
	if reg == nil {
		reg = registry.Default()
	}
	workspaces := cfg.Workspaces
	if workspaces == nil {
		workspaces = workspace.NewManager("")
	}
	projectRoot := cfg.ProjectRoot
	if projectRoot == "" {
		projectRoot = "."
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Orchestrator{
		registry:    reg,
		tracker:     cfg.Tracker,
		runner:      cfg.Runner,
		workspaces:  workspaces,
		publisher:   cfg.Publisher,
		projectRoot: projectRoot,
		logger:      logger,
	}
}

// Run разрешает конфигурацию (ровно один раз) и выполняет pipeline.
func (o *Orchestrator) Run(ctx context.Context, configPath string, overrides []string) (*Report, error) {
	cfg, err := config.Load(configPath, overrides)
	if err != nil {
		return nil, err
	}
	return o.RunWithConfig(ctx, cfg)
}

// RunWithConfig выполняет pipeline по уже разрешённому снимку конфигурации.
//
// Порядок: выделение workspace (с гарантированным release на каждом пути
// выхода), eager-валидация активного набора, затем шаги строго в порядке
// реестра. Первый упавший шаг останавливает run; артефакты уже успешных
// шагов остаются зарегистрированными.
func (o *Orchestrator) RunWithConfig(ctx context.Context, cfg *config.Config) (*Report, error) {
	ws, err := o.workspaces.Acquire()
	if err != nil {
		return nil, err
	}
	defer func() {
		// Ошибка очистки логируется и не маскирует ошибку run.
		if releaseErr := ws.Release(); releaseErr != nil {
			o.logger.Error("workspace release failed", "error", releaseErr)
		}
	}()

	// Весь активный набор валидируется до выполнения первого шага.
	active, err := o.registry.Select(cfg.Main.Steps)
	if err != nil {
		return nil, err
	}

	run := domain.NewRun(cfg.Main.ProjectName, cfg.Main.ExperimentName, active)
	state := NewRunState(run, cfg, ws, artifact.NewResolver(o.tracker))
	logger := telemetry.WithRunID(o.logger, run.ID.String())

	run.MarkRunning()
	logger.Info("run started",
		"project", run.Project,
		"run_group", run.RunGroup,
		"steps", active,
	)
	o.publishRunStarted(ctx, run)

	for _, name := range active {
		if err := o.executeStep(ctx, state, name); err != nil {
			stepErr := &StepError{Step: name, Err: err}
			run.MarkFailed(stepErr.Error())
			state.MarkStep(name, domain.StepStatusFailed)
			state.MarkRemainingSkipped()

			logger.Error("run failed", "step", name, "error", err)
			telemetry.RunsTotal.WithLabelValues(string(domain.RunStatusFailed)).Inc()
			o.publishStepFailed(ctx, run, name, err.Error())
			o.publishRunFinished(ctx, run)

			return state.report(), stepErr
		}
	}

	run.MarkSucceeded()
	logger.Info("run succeeded", "duration", run.Duration())
	telemetry.RunsTotal.WithLabelValues(string(domain.RunStatusSucceeded)).Inc()
	o.publishRunFinished(ctx, run)

	return state.report(), nil
}

// executeStep выполняет один шаг: разрешает параметры, вызывает runner,
// регистрирует выходные артефакты.
func (o *Orchestrator) executeStep(ctx context.Context, state *RunState, name string) error {
	step, err := o.registry.Resolve(name)
	if err != nil {
		return err
	}

	logger := telemetry.WithStep(telemetry.WithRunID(o.logger, state.Run.ID.String()), name)

	inv, err := o.buildInvocation(ctx, state, step)
	if err != nil {
		return err
	}

	state.MarkStep(name, domain.StepStatusRunning)
	logger.Info("step started", "location", inv.Location)

	started := time.Now()
	result, err := o.runner.Execute(ctx, inv)
	elapsed := time.Since(started)
	telemetry.StepDuration.WithLabelValues(name).Observe(elapsed.Seconds())

	if err != nil {
		telemetry.StepsTotal.WithLabelValues(name, string(domain.StepStatusFailed)).Inc()
		return err
	}
	if result.Failed() {
		telemetry.StepsTotal.WithLabelValues(name, string(domain.StepStatusFailed)).Inc()
		return &runnerFailure{message: result.Error}
	}

	// Регистрируем выходные артефакты: они видны следующим шагам
	// этого run и будущим runs через глобальный трекер.
	produced := make([]domain.ArtifactHandle, 0, len(step.Produces))
	for _, artifactName := range step.Produces {
		handle, err := o.tracker.Register(ctx, artifactName, "")
		if err != nil {
			telemetry.StepsTotal.WithLabelValues(name, string(domain.StepStatusFailed)).Inc()
			return err
		}
		state.Resolver.Record(handle)
		produced = append(produced, handle)
	}

	state.MarkStep(name, domain.StepStatusSucceeded)
	telemetry.StepsTotal.WithLabelValues(name, string(domain.StepStatusSucceeded)).Inc()
	logger.Info("step succeeded", "duration", elapsed, "produced", len(produced))
	o.publishStepCompleted(ctx, state.Run, name, produced)

	return nil
}

// runnerFailure — логическая ошибка шага, о которой сообщил Task Runner.
type runnerFailure struct {
	message string
}

// Error реализует интерфейс error.
func (e *runnerFailure) Error() string {
	return e.message
}
