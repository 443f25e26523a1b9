// Package registry содержит фиксированный каталог шагов pipeline.
//
// Каталог — упорядоченный список StepDef; порядок объявления является
// каноническим порядком выполнения, потому что шаги связаны неявной
// цепочкой данных (каждый следующий читает артефакты предыдущих).
// Запрошенное пользователем подмножество трактуется как множество:
// порядок имён в строке выбора игнорируется.
//
// Параметры шага описываются декларативным шаблоном — tagged union
// Literal | ConfigRef | ArtifactRef | ParamsFile, который оркестратор
// разрешает единообразно для всех шагов.
package registry
