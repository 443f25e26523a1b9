package domain

import "sort"

// StepInvocation — полностью разрешённый вызов шага.
//
// Все параметры уже вычислены оркестратором: литералы подставлены,
// значения конфигурации прочитаны из снимка, ссылки на артефакты
// разрешены в точные версии. Task Runner получает invocation как
// непрозрачный набор строк.
type StepInvocation struct {
	// Step — имя шага из реестра.
	Step string `json:"step"`

	// Location — где находится исполняемая единица шага
	// (подкаталог components repository или локальный путь).
	Location string `json:"location"`

	// EntryPoint — точка входа внутри исполняемой единицы.
	EntryPoint string `json:"entry_point"`

	// Project — идентификатор проекта для группировки в системе трекинга.
	Project string `json:"project"`

	// RunGroup — идентификатор группы runs (experiment name).
	RunGroup string `json:"run_group"`

	// Parameters — плоский набор параметров шага.
	// Числовые значения конфигурации приведены к строкам.
	Parameters map[string]string `json:"parameters"`
}

// ParameterNames возвращает имена параметров в детерминированном порядке.
// Используется для построения argv и в логах.
func (inv *StepInvocation) ParameterNames() []string {
	names := make([]string, 0, len(inv.Parameters))
	for name := range inv.Parameters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StepResult — результат выполнения шага, полученный от Task Runner.
//
// Инфраструктурные ошибки (runner недоступен, процесс не запустился)
// возвращаются через error в Runner.Execute; логическая ошибка самого
// шага приходит в поле Error.
type StepResult struct {
	// Error — сообщение об ошибке шага. Пустая строка означает успех.
	Error string `json:"error,omitempty"`
}

// Failed возвращает true, если шаг завершился с ошибкой.
func (r *StepResult) Failed() bool {
	return r.Error != ""
}
