package runner

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/shaiso/Conveyor/internal/domain"
)

// defaultDriver — driver-команда по умолчанию.
const defaultDriver = "mlflow"

// ProcessRunner выполняет шаг, запуская driver-команду локально.
//
// Командная строка:
//
//	<driver> run <location> --entry-point <ep> --project <p> --run-group <g> -P k=v ...
//
// Ненулевой код выхода — логическая ошибка шага (StepResult.Error
// с хвостом вывода); невозможность запустить процесс — инфраструктурная.
type ProcessRunner struct {
	// Driver — имя driver-команды. Пустое значение — "mlflow".
	Driver string

	// Dir — рабочий каталог процесса (обычно workspace run'а).
	Dir string

	// Logger — логгер; nil означает slog.Default().
	Logger *slog.Logger
}

// BuildArgs строит аргументы driver-команды для invocation.
// Параметры идут в детерминированном порядке.
func (r *ProcessRunner) BuildArgs(inv *domain.StepInvocation) []string {
	args := []string{
		"run", inv.Location,
		"--entry-point", inv.EntryPoint,
		"--project", inv.Project,
		"--run-group", inv.RunGroup,
	}
	for _, name := range inv.ParameterNames() {
		args = append(args, "-P", name+"="+inv.Parameters[name])
	}
	return args
}

// Execute запускает driver-команду и блокируется до её завершения.
func (r *ProcessRunner) Execute(ctx context.Context, inv *domain.StepInvocation) (*domain.StepResult, error) {
	driver := r.Driver
	if driver == "" {
		driver = defaultDriver
	}
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cmd := exec.CommandContext(ctx, driver, r.BuildArgs(inv)...)
	cmd.Dir = r.Dir

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	logger.Debug("executing step via driver",
		"step", inv.Step,
		"driver", driver,
		"location", inv.Location,
	)

	err := cmd.Run()
	if err == nil {
		return &domain.StepResult{}, nil
	}

	if _, ok := err.(*exec.ExitError); ok {
		// Шаг запустился, но завершился с ошибкой.
		return &domain.StepResult{
			Error: fmt.Sprintf("%v: %s", err, tail(output.String(), 500)),
		}, nil
	}

	return nil, fmt.Errorf("%w: %v", ErrDriver, err)
}

// tail возвращает последние max символов вывода без обрамляющих пробелов.
func tail(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return "..." + s[len(s)-max:]
}
