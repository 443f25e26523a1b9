// Package cli реализует команды инструмента conveyor.
//
// Команды:
//   - run: запуск pipeline (активный набор шагов из config/--steps)
//   - steps: список шагов реестра в каноническом порядке
//   - artifact resolve: разрешение ссылки на артефакт через трекер
//
// В отличие от долгоживущих бинарей, run выполняет pipeline прямо
// в процессе CLI: оркестратор блокируется до терминального статуса.
// Код выхода ненулевой, если хотя бы один активный шаг упал.
//
// Вывод данных — stdout (таблица через text/tabwriter или JSON
// с флагом --json), сообщения — stderr.
package cli
