package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	checkoutRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fee_payment",
			Subsystem: "http",
			Name:      "checkout_requests_total",
			Help:      "Total number of checkout requests by response mode and status",
		},
		[]string{"mode", "status"},
	)

	callbackPagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fee_payment",
			Subsystem: "http",
			Name:      "callback_pages_total",
			Help:      "Total number of gateway callback pages served by outcome",
		},
		[]string{"outcome"},
	)

	invalidCallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fee_payment",
			Subsystem: "http",
			Name:      "invalid_callbacks_total",
			Help:      "Total number of gateway callbacks that could not be parsed",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		checkoutRequestsTotal,
		callbackPagesTotal,
		invalidCallbacksTotal,
	)
}
