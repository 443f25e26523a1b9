package registry

import (
	"fmt"
	"strings"
)

// SelectorAll — сентинел строки выбора, означающий "все шаги реестра".
const SelectorAll = "all"

// StepSource — где находится исполняемая единица шага.
type StepSource string

const (
	// SourceComponents — подкаталог components repository
	// (main.components_repository из конфигурации).
	SourceComponents StepSource = "components"

	// SourceLocal — локальный каталог внутри проекта.
	SourceLocal StepSource = "local"
)

// StepDef — определение шага pipeline.
//
// Определения статичны: загружаются при старте процесса и дальше
// только читаются.
type StepDef struct {
	// Name — уникальное имя шага (ключ выбора и порядка).
	Name string

	// Source — тип расположения исполняемой единицы.
	Source StepSource

	// Path — путь относительно источника (подкаталог репозитория
	// компонентов или каталог внутри проекта).
	Path string

	// EntryPoint — точка входа внутри исполняемой единицы.
	EntryPoint string

	// Params — шаблон параметров: имя параметра → источник значения.
	Params map[string]Param

	// Produces — логические имена артефактов, которые шаг регистрирует
	// в системе трекинга при успехе.
	Produces []string
}

// Registry — упорядоченный read-only каталог шагов.
type Registry struct {
	steps []StepDef
	index map[string]*StepDef
}

// New создаёт реестр из упорядоченного списка определений.
func New(steps []StepDef) *Registry {
	r := &Registry{
		steps: steps,
		index: make(map[string]*StepDef, len(steps)),
	}
	for i := range r.steps {
		r.index[r.steps[i].Name] = &r.steps[i]
	}
	return r
}

// Names возвращает имена шагов в каноническом порядке выполнения.
func (r *Registry) Names() []string {
	names := make([]string, len(r.steps))
	for i := range r.steps {
		names[i] = r.steps[i].Name
	}
	return names
}

// Resolve возвращает определение шага по имени.
func (r *Registry) Resolve(name string) (*StepDef, error) {
	step, ok := r.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStep, name)
	}
	return step, nil
}

// Select вычисляет активный набор шагов из строки выбора.
//
// "all" разворачивается в полный реестр. Иначе строка трактуется как
// список имён через запятую; каждое имя валидируется немедленно,
// до выполнения какого-либо шага. Результат всегда в порядке реестра —
// порядок имён в строке выбора не имеет значения.
func (r *Registry) Select(selector string) ([]string, error) {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return nil, ErrEmptySelection
	}

	if selector == SelectorAll {
		return r.Names(), nil
	}

	requested := make(map[string]bool)
	for _, name := range strings.Split(selector, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := r.index[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownStep, name)
		}
		requested[name] = true
	}
	if len(requested) == 0 {
		return nil, ErrEmptySelection
	}

	// Порядок реестра, ограниченный запрошенным множеством.
	active := make([]string, 0, len(requested))
	for i := range r.steps {
		if requested[r.steps[i].Name] {
			active = append(active, r.steps[i].Name)
		}
	}
	return active, nil
}

// Size возвращает количество шагов в реестре.
func (r *Registry) Size() int {
	return len(r.steps)
}
