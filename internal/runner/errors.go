package runner

import "errors"

// Ошибки runner'ов.
var (
	// ErrDriver — driver-команда не запустилась.
	ErrDriver = errors.New("driver command failed to start")

	// ErrRemote — удалённый runner-сервис недоступен.
	ErrRemote = errors.New("remote runner unavailable")

	// ErrBadResponse — ответ удалённого runner'а не парсится.
	ErrBadResponse = errors.New("malformed runner response")
)
