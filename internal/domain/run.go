package domain

import (
	"time"

	"github.com/google/uuid"
)

// Run — экземпляр выполнения pipeline.
//
// Run создаётся когда:
// - Пользователь запускает pipeline через CLI
// - Scheduler запускает pipeline по расписанию
//
// Run выполняет активное подмножество шагов реестра строго последовательно,
// в порядке реестра. Состояние run живёт в памяти одного процесса и
// не переживает его завершения.
type Run struct {
	// ID — уникальный идентификатор run.
	ID uuid.UUID `json:"id"`

	// Project — идентификатор проекта (main.project_name).
	// Передаётся в каждый StepInvocation явным полем, а не через окружение.
	Project string `json:"project"`

	// RunGroup — идентификатор группировки runs (main.experiment_name).
	RunGroup string `json:"run_group"`

	// Steps — активный набор шагов в порядке реестра.
	Steps []string `json:"steps"`

	// Status — текущий статус выполнения.
	Status RunStatus `json:"status"`

	// StartedAt — время начала выполнения первого шага.
	// Nil, если run ещё не начался.
	StartedAt *time.Time `json:"started_at,omitempty"`

	// FinishedAt — время завершения (успешного или с ошибкой).
	FinishedAt *time.Time `json:"finished_at,omitempty"`

	// Error — текст ошибки, если run завершился с FAILED.
	Error string `json:"error,omitempty"`

	// CreatedAt — время создания run.
	CreatedAt time.Time `json:"created_at"`
}

// NewRun создаёт новый run в статусе PENDING.
func NewRun(project, runGroup string, steps []string) *Run {
	return &Run{
		ID:        uuid.New(),
		Project:   project,
		RunGroup:  runGroup,
		Steps:     steps,
		Status:    RunStatusPending,
		CreatedAt: time.Now(),
	}
}

// Duration возвращает продолжительность выполнения.
// Возвращает 0, если run ещё не завершён.
func (r *Run) Duration() time.Duration {
	if r.StartedAt == nil || r.FinishedAt == nil {
		return 0
	}
	return r.FinishedAt.Sub(*r.StartedAt)
}

// IsFinished возвращает true, если run завершён.
func (r *Run) IsFinished() bool {
	return r.Status.IsTerminal()
}

// MarkRunning переводит run в статус RUNNING.
func (r *Run) MarkRunning() {
	now := time.Now()
	r.Status = RunStatusRunning
	r.StartedAt = &now
}

// MarkSucceeded переводит run в статус SUCCEEDED.
func (r *Run) MarkSucceeded() {
	now := time.Now()
	r.Status = RunStatusSucceeded
	r.FinishedAt = &now
}

// MarkFailed переводит run в статус FAILED с ошибкой.
func (r *Run) MarkFailed(err string) {
	now := time.Now()
	r.Status = RunStatusFailed
	r.FinishedAt = &now
	r.Error = err
}
