// Package telemetry — структурированное логирование и метрики Conveyor.
//
// Логирование — log/slog, формат и уровень управляются переменными
// окружения LOG_FORMAT и LOG_LEVEL. Метрики — prometheus; счётчики
// runs/шагов и гистограмма длительности шага регистрируются через
// promauto и отдаются promhttp-handler'ом в долгоживущих бинарях.
package telemetry
