package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	checkoutsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fee_payment",
		Subsystem: "checkout",
		Name:      "total",
		Help:      "Checkout attempts by outcome.",
	}, []string{"outcome"})

	verificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fee_payment",
		Subsystem: "callback",
		Name:      "verifications_total",
		Help:      "Success callbacks by resulting attempt status.",
	}, []string{"status"})

	failuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fee_payment",
		Subsystem: "callback",
		Name:      "failures_total",
		Help:      "Failure callbacks received from the gateway.",
	})

	backendDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fee_payment",
		Subsystem: "backend",
		Name:      "request_duration_seconds",
		Help:      "Latency of calls to the school backend.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})
)
