// Package events публикует события жизненного цикла pipeline в RabbitMQ.
//
// События (run.started, step.completed, step.failed, run.finished)
// предназначены внешним потребителям lineage/аудита. Публикация —
// fire-and-forget: недоступный брокер логируется и никогда не
// останавливает выполнение run.
package events
