package pipeline

// StepError — падение run на конкретном шаге.
//
// Оборачивает ошибку runner'а (или разрешения параметров) и несёт имя
// упавшего шага для диагностики. Шаги после точки падения не выполняются.
type StepError struct {
	Step string // имя упавшего шага
	Err  error  // базовая ошибка
}

// Error реализует интерфейс error.
func (e *StepError) Error() string {
	return "step " + e.Step + ": " + e.Err.Error()
}

// Unwrap возвращает базовую ошибку.
func (e *StepError) Unwrap() error {
	return e.Err
}
