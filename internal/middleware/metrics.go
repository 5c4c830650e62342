package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	paymentInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "fee_payment",
		Subsystem: "http",
		Name:      "in_flight_requests",
		Help:      "Payment requests currently being served.",
	})

	paymentResponses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fee_payment",
		Subsystem: "http",
		Name:      "responses_total",
		Help:      "Payment responses by route and status class.",
	}, []string{"method", "route", "class"})

	// checkout and verification wait on the school backend, so the tail
	// reaches well past the default buckets
	paymentLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fee_payment",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Payment request latencies in seconds.",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
	}, []string{"method", "route"})
)

// Metrics records payment traffic. Scrapes and the swagger UI are not counted.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !observed(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		paymentInFlight.Inc()
		defer paymentInFlight.Dec()

		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := routePattern(r)
		paymentResponses.WithLabelValues(r.Method, route, statusClass(ww.Status())).Inc()
		paymentLatency.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

func observed(path string) bool {
	return path != "/metrics" && !strings.HasPrefix(path, "/swagger/")
}

func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
		return rc.RoutePattern()
	}
	return "unmatched"
}

// statusClass folds codes into 2xx..5xx. A handler that never writes a
// header answered 200.
func statusClass(code int) string {
	if code == 0 {
		code = http.StatusOK
	}
	return strconv.Itoa(code/100) + "xx"
}
