package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/shaiso/Conveyor/internal/domain"
	"github.com/shaiso/Conveyor/internal/events"
	"github.com/shaiso/Conveyor/internal/registry"
)

// buildInvocation собирает полностью разрешённый вызов шага.
//
// Шаблон каждого параметра разрешается единообразно: литералы проходят
// как есть, config-ссылки читаются из снимка, ссылки на артефакты
// разрешаются в точные версии, params-file секции материализуются
// в workspace. Результат — чистая функция снимка конфигурации и
// текущей записи произведённых артефактов.
func (o *Orchestrator) buildInvocation(ctx context.Context, state *RunState, step *registry.StepDef) (*domain.StepInvocation, error) {
	parameters := make(map[string]string, len(step.Params))

	for name, param := range step.Params {
		value, err := o.resolveParam(ctx, state, step, name, param)
		if err != nil {
			return nil, err
		}
		parameters[name] = value
	}

	return &domain.StepInvocation{
		Step:       step.Name,
		Location:   o.resolveLocation(state, step),
		EntryPoint: step.EntryPoint,
		Project:    state.Run.Project,
		RunGroup:   state.Run.RunGroup,
		Parameters: parameters,
	}, nil
}

// resolveParam разрешает один параметр по его шаблону.
func (o *Orchestrator) resolveParam(ctx context.Context, state *RunState, step *registry.StepDef, name string, param registry.Param) (string, error) {
	switch param.Kind {
	case registry.ParamLiteral:
		return param.Value, nil

	case registry.ParamConfig:
		return state.Config.Value(param.ConfigKey)

	case registry.ParamArtifact:
		handle, err := state.Resolver.Resolve(ctx, param.Artifact)
		if err != nil {
			return "", err
		}
		return handle.Ref(), nil

	case registry.ParamParamsFile:
		section, err := state.Config.Section(param.Section)
		if err != nil {
			return "", err
		}
		return state.Workspace.WriteJSON(name+".json", section)

	default:
		return "", fmt.Errorf("step %s: parameter %s has unknown kind %q", step.Name, name, param.Kind)
	}
}

// resolveLocation вычисляет расположение исполняемой единицы шага.
func (o *Orchestrator) resolveLocation(state *RunState, step *registry.StepDef) string {
	switch step.Source {
	case registry.SourceComponents:
		return state.Config.Main.ComponentsRepository + "/" + step.Path
	default:
		return filepath.Join(o.projectRoot, step.Path)
	}
}

// Публикация событий: fire-and-forget, ошибка брокера только логируется.

func (o *Orchestrator) publishRunStarted(ctx context.Context, run *domain.Run) {
	if o.publisher == nil {
		return
	}
	payload := events.RunPayload{
		RunID:    run.ID,
		Project:  run.Project,
		RunGroup: run.RunGroup,
		Steps:    run.Steps,
		Status:   run.Status,
	}
	if err := o.publisher.PublishRunStarted(ctx, payload); err != nil {
		o.logger.Warn("failed to publish run.started", "error", err)
	}
}

func (o *Orchestrator) publishRunFinished(ctx context.Context, run *domain.Run) {
	if o.publisher == nil {
		return
	}
	payload := events.RunPayload{
		RunID:    run.ID,
		Project:  run.Project,
		RunGroup: run.RunGroup,
		Steps:    run.Steps,
		Status:   run.Status,
		Error:    run.Error,
	}
	if err := o.publisher.PublishRunFinished(ctx, payload); err != nil {
		o.logger.Warn("failed to publish run.finished", "error", err)
	}
}

func (o *Orchestrator) publishStepCompleted(ctx context.Context, run *domain.Run, step string, produced []domain.ArtifactHandle) {
	if o.publisher == nil {
		return
	}
	payload := events.StepPayload{
		RunID:    run.ID,
		Step:     step,
		Status:   domain.StepStatusSucceeded,
		Produced: produced,
	}
	if err := o.publisher.PublishStepCompleted(ctx, payload); err != nil {
		o.logger.Warn("failed to publish step.completed", "error", err)
	}
}

func (o *Orchestrator) publishStepFailed(ctx context.Context, run *domain.Run, step string, errMsg string) {
	if o.publisher == nil {
		return
	}
	payload := events.StepPayload{
		RunID:  run.ID,
		Step:   step,
		Status: domain.StepStatusFailed,
		Error:  errMsg,
	}
	if err := o.publisher.PublishStepFailed(ctx, payload); err != nil {
		o.logger.Warn("failed to publish step.failed", "error", err)
	}
}
