package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersPlaced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dairy_service",
			Subsystem: "orders",
			Name:      "placed_total",
			Help:      "Total number of successfully placed orders",
		},
	)

	orderFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dairy_service",
			Subsystem: "orders",
			Name:      "failures_total",
			Help:      "Total number of rejected or failed placements",
		},
		[]string{"reason"},
	)

	orderPlacementDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "dairy_service",
			Subsystem: "orders",
			Name:      "placement_duration_seconds",
			Help:      "Histogram of order placement durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersPlaced,
		orderFailures,
		orderPlacementDuration,
	)
}
