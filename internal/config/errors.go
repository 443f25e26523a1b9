package config

import "errors"

// Ошибки разрешения конфигурации.
var (
	// ErrMissingKey — обязательный ключ отсутствует в документе.
	ErrMissingKey = errors.New("required config key is missing")

	// ErrUnknownKey — override ссылается на ключ, которого нет в схеме.
	ErrUnknownKey = errors.New("override references unknown config key")

	// ErrBadOverride — override имеет неверный формат (нет "=").
	ErrBadOverride = errors.New("malformed override, expected key=value")

	// ErrBadDocument — документ конфигурации не парсится.
	ErrBadDocument = errors.New("config document is not valid YAML")
)

// ConfigError — ошибка конфигурации с контекстом.
type ConfigError struct {
	Key     string // dotted-path ключа, вызвавшего ошибку
	Message string // описание ошибки
	Err     error  // базовая ошибка
}

// Error реализует интерфейс error.
func (e *ConfigError) Error() string {
	if e.Key != "" {
		return "config key " + e.Key + ": " + e.Message
	}
	return e.Message
}

// Unwrap возвращает базовую ошибку.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError создаёт новую ошибку конфигурации.
func NewConfigError(key, message string, err error) *ConfigError {
	return &ConfigError{Key: key, Message: message, Err: err}
}
