package artifact

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shaiso/Conveyor/internal/domain"
)

// Tracker — порт глобальной системы трекинга артефактов.
//
// Консистентность и версионирование хранилища — ответственность внешней
// системы; оркестратору нужна лишь монотонность "latest": повторное
// разрешение никогда не возвращает версию старше уже наблюдавшейся
// в том же run.
type Tracker interface {
	// Resolve возвращает handle по имени и квалификатору
	// ("latest", именованная метка или явный токен "vN").
	Resolve(ctx context.Context, name, qualifier string) (domain.ArtifactHandle, error)

	// Register регистрирует новую версию артефакта и возвращает её handle.
	Register(ctx context.Context, name, uri string) (domain.ArtifactHandle, error)

	// Label назначает метку конкретной версии артефакта.
	// Метка детерминированно разрешается в эту версию, пока не переназначена.
	Label(ctx context.Context, name, label string, version int) error
}

// parseVersionToken парсит явный токен версии "vN".
func parseVersionToken(qualifier string) (int, bool, error) {
	if !strings.HasPrefix(qualifier, "v") {
		return 0, false, nil
	}
	version, err := strconv.Atoi(qualifier[1:])
	if err != nil || version < 1 {
		return 0, true, fmt.Errorf("%w: %s", ErrBadQualifier, qualifier)
	}
	return version, true, nil
}

// MemoryTracker — трекер в памяти процесса.
//
// Используется в тестах и для локальных запусков без БД.
type MemoryTracker struct {
	mu       sync.RWMutex
	versions map[string][]domain.ArtifactHandle
	labels   map[string]map[string]int
}

// NewMemoryTracker создаёт пустой MemoryTracker.
func NewMemoryTracker() *MemoryTracker {
	return &MemoryTracker{
		versions: make(map[string][]domain.ArtifactHandle),
		labels:   make(map[string]map[string]int),
	}
}

// Resolve возвращает handle по имени и квалификатору.
func (t *MemoryTracker) Resolve(_ context.Context, name, qualifier string) (domain.ArtifactHandle, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	versions := t.versions[name]
	if len(versions) == 0 {
		return domain.ArtifactHandle{}, fmt.Errorf("%w: %s:%s", ErrArtifactNotFound, name, qualifier)
	}

	switch qualifier {
	case "", domain.QualifierLatest:
		return versions[len(versions)-1], nil
	}

	if version, isToken, err := parseVersionToken(qualifier); isToken {
		if err != nil {
			return domain.ArtifactHandle{}, err
		}
		if version > len(versions) {
			return domain.ArtifactHandle{}, fmt.Errorf("%w: %s:%s", ErrArtifactNotFound, name, qualifier)
		}
		return versions[version-1], nil
	}

	// Именованная метка.
	version, ok := t.labels[name][qualifier]
	if !ok {
		return domain.ArtifactHandle{}, fmt.Errorf("%w: %s:%s", ErrArtifactNotFound, name, qualifier)
	}
	return versions[version-1], nil
}

// Register регистрирует следующую версию артефакта.
func (t *MemoryTracker) Register(_ context.Context, name, uri string) (domain.ArtifactHandle, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	handle := domain.ArtifactHandle{
		Name:      name,
		Version:   len(t.versions[name]) + 1,
		URI:       uri,
		CreatedAt: time.Now(),
	}
	t.versions[name] = append(t.versions[name], handle)
	return handle, nil
}

// Label назначает метку версии артефакта.
func (t *MemoryTracker) Label(_ context.Context, name, label string, version int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if version < 1 || version > len(t.versions[name]) {
		return fmt.Errorf("%w: %s:v%d", ErrArtifactNotFound, name, version)
	}
	if t.labels[name] == nil {
		t.labels[name] = make(map[string]int)
	}
	t.labels[name][label] = version
	return nil
}
