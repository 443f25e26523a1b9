// Package runner — граница с внешним Task Runner'ом.
//
// Оркестратор передаёт runner'у полностью разрешённый StepInvocation
// и блокируется до терминального статуса. Внутренности исполняемой
// единицы шага runner'у-вызывающему непрозрачны.
//
// Реализации: ProcessRunner (запуск driver-команды через os/exec),
// HTTPRunner (удалённый runner-сервис).
package runner
