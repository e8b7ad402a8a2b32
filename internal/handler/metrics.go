package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeSucceeded = "succeeded"
	outcomeRejected  = "rejected"
	outcomeFailed    = "failed"
	outcomeNotFound  = "not_found"
)

var (
	checkoutsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aims_order_service",
			Subsystem: "checkout",
			Name:      "checkouts_total",
			Help:      "Total number of checkout attempts by outcome",
		},
		[]string{"outcome"},
	)

	checkoutDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "aims_order_service",
			Subsystem: "checkout",
			Name:      "checkout_duration_seconds",
			Help:      "Histogram of successful checkout durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	trackingRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aims_order_service",
			Subsystem: "tracking",
			Name:      "requests_total",
			Help:      "Total number of order tracking requests by outcome",
		},
		[]string{"outcome"},
	)

	cancellationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aims_order_service",
			Subsystem: "tracking",
			Name:      "cancellations_total",
			Help:      "Total number of order cancellation attempts by outcome",
		},
		[]string{"outcome"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		checkoutsTotal,
		checkoutDuration,
		trackingRequestsTotal,
		cancellationsTotal,
	)
}
