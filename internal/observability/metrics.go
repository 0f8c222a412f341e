// Package observability holds Prometheus metrics and OpenTelemetry tracing setup.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fitlog_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// MirrorsCreated counts routine mirrors cut, by trigger (create or edit).
	MirrorsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fitlog_routine_mirrors_created_total",
		Help: "Total number of routine mirrors created",
	}, []string{"trigger"})

	// MirrorsCollected counts mirrors deleted because their last subscriber detached.
	MirrorsCollected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fitlog_routine_mirrors_collected_total",
		Help: "Total number of orphaned routine mirrors garbage-collected",
	})

	// SubscriptionsTotal counts successful routine subscriptions.
	SubscriptionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fitlog_routine_subscriptions_total",
		Help: "Total number of routine subscriptions",
	})

	// StreaksRecorded counts routine completions recorded.
	StreaksRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fitlog_routine_streaks_recorded_total",
		Help: "Total number of routine streaks recorded",
	})
)
