// Package artifact разрешает ссылки на артефакты в точные версии.
//
// Resolver сначала смотрит в запись произведённых в текущем run
// артефактов, затем обращается к глобальной системе трекинга (Tracker).
// Запись произведённого растёт монотонно в течение run; ничего не
// удаляется. Это позволяет шагу N+1 увидеть артефакт шага N по
// квалификатору "latest" до того, как внешняя система его закоммитит.
//
// Реализации Tracker: MemoryTracker (тесты и локальные запуски) и
// PostgresTracker (разделяемая БД между запусками).
package artifact
