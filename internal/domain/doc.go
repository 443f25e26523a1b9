// Package domain содержит основные типы данных Conveyor:
// артефакты и ссылки на них, статусы выполнения, run и
// полностью разрешённые вызовы шагов (StepInvocation).
//
// Типы domain не зависят от других пакетов проекта и
// используются всеми слоями системы.
package domain
