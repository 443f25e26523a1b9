package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Метрики выполнения pipeline.
var (
	// RunsTotal — количество runs по финальному статусу.
	RunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "conveyor_runs_total",
		Help: "Pipeline runs by terminal status.",
	}, []string{"status"})

	// StepsTotal — количество выполненных шагов по имени и статусу.
	StepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "conveyor_steps_total",
		Help: "Executed pipeline steps by name and status.",
	}, []string{"step", "status"})

	// StepDuration — длительность выполнения шага в секундах.
	StepDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "conveyor_step_duration_seconds",
		Help:    "Step execution duration in seconds.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	}, []string{"step"})
)
