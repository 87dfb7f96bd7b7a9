package main

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	metricsOnce sync.Once

	targetsComputed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "macromate",
			Name:      "targets_computed_total",
			Help:      "Count of successful target calculations by goal.",
		},
		[]string{"goal"},
	)

	requestsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "macromate",
			Name:      "requests_rejected_total",
			Help:      "Count of requests rejected during validation, by endpoint.",
		},
		[]string{"endpoint"},
	)

	mealPlanResults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "macromate",
			Name:      "meal_plans_total",
			Help:      "Count of meal plan generations by provider and result.",
		},
		[]string{"provider", "result"},
	)
)

// registerMetrics registers the collectors with the default registry (idempotent).
func registerMetrics() {
	metricsOnce.Do(func() {
		prometheus.MustRegister(targetsComputed, requestsRejected, mealPlanResults)
	})
}
