package runner

import (
	"context"

	"github.com/shaiso/Conveyor/internal/domain"
)

// Runner — интерфейс внешнего исполнителя шагов.
//
// Инфраструктурные ошибки (исполнитель недоступен, процесс не стартовал)
// возвращаются через error. Логическая ошибка самого шага приходит
// в StepResult.Error; оркестратор трактует оба случая как падение шага.
type Runner interface {
	Execute(ctx context.Context, inv *domain.StepInvocation) (*domain.StepResult, error)
}
