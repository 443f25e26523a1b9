// Package scheduler запускает pipeline по расписанию.
//
// Cron-выражение берётся из конфигурации (main.schedule); типичный
// сценарий — ночное переобучение модели на свежих данных. Конфигурация
// перечитывается перед каждым запуском, поэтому правки настроек
// подхватываются без рестарта scheduler'а.
package scheduler
