package pipeline

import (
	"github.com/shaiso/Conveyor/internal/artifact"
	"github.com/shaiso/Conveyor/internal/config"
	"github.com/shaiso/Conveyor/internal/domain"
	"github.com/shaiso/Conveyor/internal/workspace"
)

// RunState — состояние выполнения одного run в памяти.
//
// Содержит снимок конфигурации, workspace, resolver с записью
// произведённых артефактов и статус каждого активного шага.
// Конкурентного доступа нет: шаги выполняются по одному.
type RunState struct {
	// Run — данные run.
	Run *domain.Run

	// Config — неизменяемый снимок конфигурации.
	Config *config.Config

	// Workspace — эфемерный каталог run.
	Workspace *workspace.Workspace

	// Resolver — резолвер ссылок с записью произведённого в этом run.
	Resolver *artifact.Resolver

	// steps — статус каждого шага активного набора.
	steps map[string]domain.StepStatus
}

// NewRunState создаёт RunState; все активные шаги в статусе PENDING.
func NewRunState(run *domain.Run, cfg *config.Config, ws *workspace.Workspace, resolver *artifact.Resolver) *RunState {
	steps := make(map[string]domain.StepStatus, len(run.Steps))
	for _, name := range run.Steps {
		steps[name] = domain.StepStatusPending
	}
	return &RunState{
		Run:       run,
		Config:    cfg,
		Workspace: ws,
		Resolver:  resolver,
		steps:     steps,
	}
}

// MarkStep переводит шаг в новый статус.
func (s *RunState) MarkStep(name string, status domain.StepStatus) {
	s.steps[name] = status
}

// MarkRemainingSkipped помечает все нетерминальные шаги как SKIPPED.
// Вызывается при остановке run на упавшем шаге.
func (s *RunState) MarkRemainingSkipped() {
	for name, status := range s.steps {
		if !status.IsTerminal() && status != domain.StepStatusRunning {
			s.steps[name] = domain.StepStatusSkipped
		}
	}
}

// StepStatuses возвращает копию статусов шагов.
func (s *RunState) StepStatuses() map[string]domain.StepStatus {
	copied := make(map[string]domain.StepStatus, len(s.steps))
	for name, status := range s.steps {
		copied[name] = status
	}
	return copied
}

// Report — итог выполнения run для вызывающего.
type Report struct {
	// Run — финальное состояние run.
	Run *domain.Run

	// Steps — терминальный статус каждого активного шага.
	Steps map[string]domain.StepStatus

	// Produced — артефакты, произведённые за run (имя → handle).
	Produced map[string]domain.ArtifactHandle
}

// report собирает итог из состояния run.
func (s *RunState) report() *Report {
	return &Report{
		Run:      s.Run,
		Steps:    s.StepStatuses(),
		Produced: s.Resolver.Produced(),
	}
}
