package domain

// RunStatus — статус выполнения pipeline run.
//
// Жизненный цикл:
//
//	PENDING → RUNNING → SUCCEEDED
//	                  ↘ FAILED
type RunStatus string

const (
	// RunStatusPending — run создан, конфигурация разрешена, шаги не запускались.
	RunStatusPending RunStatus = "PENDING"

	// RunStatusRunning — run в процессе выполнения шагов.
	RunStatusRunning RunStatus = "RUNNING"

	// RunStatusSucceeded — все активные шаги завершились успешно.
	RunStatusSucceeded RunStatus = "SUCCEEDED"

	// RunStatusFailed — run остановлен на упавшем шаге.
	RunStatusFailed RunStatus = "FAILED"
)

// IsTerminal возвращает true, если статус финальный.
func (s RunStatus) IsTerminal() bool {
	switch s {
	case RunStatusSucceeded, RunStatusFailed:
		return true
	default:
		return false
	}
}

// StepStatus — статус выполнения отдельного шага внутри run.
type StepStatus string

const (
	// StepStatusPending — шаг в активном наборе, ожидает своей очереди.
	StepStatusPending StepStatus = "PENDING"

	// StepStatusRunning — шаг передан Task Runner'у.
	StepStatusRunning StepStatus = "RUNNING"

	// StepStatusSucceeded — runner сообщил об успехе.
	StepStatusSucceeded StepStatus = "SUCCEEDED"

	// StepStatusFailed — runner сообщил об ошибке.
	StepStatusFailed StepStatus = "FAILED"

	// StepStatusSkipped — шаг не выполнялся (run остановлен раньше).
	StepStatusSkipped StepStatus = "SKIPPED"
)

// IsTerminal возвращает true, если статус финальный.
func (s StepStatus) IsTerminal() bool {
	switch s {
	case StepStatusSucceeded, StepStatusFailed, StepStatusSkipped:
		return true
	default:
		return false
	}
}
