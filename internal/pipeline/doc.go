// Package pipeline — оркестратор выполнения pipeline.
//
// Оркестратор проходит состояния
//
//	Idle → ConfigResolved → WorkspaceReady → Running(i) → Completed | Failed
//
// Конфигурация разрешается ровно один раз; workspace выделяется на время
// run и гарантированно удаляется на каждом пути выхода; активный набор
// шагов валидируется целиком до выполнения первого шага; шаги выполняются
// строго последовательно в порядке реестра, каждый блокирует оркестратор
// до терминального статуса Task Runner'а. Падение шага останавливает run:
// retry и отката уже произведённых артефактов нет.
package pipeline
