package artifact

import (
	"context"

	"github.com/shaiso/Conveyor/internal/domain"
)

// Resolver разрешает ссылки на артефакты для одного run.
//
// Запись produced хранит артефакты, произведённые шагами текущего run
// (логическое имя → handle последней произведённой версии). Для
// квалификатора "latest" запись имеет приоритет над глобальным трекером:
// так разрешение внутри run монотонно по построению, а свежий выход
// шага N виден шагу N+1 до его durable-коммита во внешней системе.
type Resolver struct {
	tracker  Tracker
	produced map[string]domain.ArtifactHandle
}

// NewResolver создаёт Resolver поверх глобального трекера.
func NewResolver(tracker Tracker) *Resolver {
	return &Resolver{
		tracker:  tracker,
		produced: make(map[string]domain.ArtifactHandle),
	}
}

// Resolve разрешает ссылку в неизменяемый handle.
//
// Чистая функция своих входов, записи produced и состояния трекера;
// никакого кэширования сверх записи produced нет.
func (r *Resolver) Resolve(ctx context.Context, ref domain.ArtifactRef) (domain.ArtifactHandle, error) {
	qualifier := ref.Qualifier
	if qualifier == "" {
		qualifier = domain.QualifierLatest
	}

	if qualifier == domain.QualifierLatest {
		if handle, ok := r.produced[ref.Name]; ok {
			return handle, nil
		}
	}

	return r.tracker.Resolve(ctx, ref.Name, qualifier)
}

// Record фиксирует произведённый артефакт в записи run.
// Запись растёт монотонно; повторное производство того же имени
// заменяет handle на более новую версию.
func (r *Resolver) Record(handle domain.ArtifactHandle) {
	r.produced[handle.Name] = handle
}

// Produced возвращает копию записи произведённых артефактов.
func (r *Resolver) Produced() map[string]domain.ArtifactHandle {
	copied := make(map[string]domain.ArtifactHandle, len(r.produced))
	for name, handle := range r.produced {
		copied[name] = handle
	}
	return copied
}
