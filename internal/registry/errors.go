package registry

import "errors"

// Ошибки реестра шагов.
var (
	// ErrUnknownStep — имя шага не зарегистрировано в каталоге.
	ErrUnknownStep = errors.New("unknown step")

	// ErrEmptySelection — строка выбора шагов пуста.
	ErrEmptySelection = errors.New("step selection is empty")
)
