package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_api",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})
	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "activities_api",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
	rosterChanges = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_api",
		Subsystem: "roster",
		Name:      "changes_total",
		Help:      "Committed roster changes by event type.",
	}, []string{"event"})
)

func init() {
	prometheus.MustRegister(httpRequests, httpDuration, rosterChanges)
}

// ObserveRequest records one served HTTP request.
func ObserveRequest(method, route string, status int, latency time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(latency.Seconds())
}

// RecordRosterChange counts a committed signup or unregister.
func RecordRosterChange(event string) {
	rosterChanges.WithLabelValues(event).Inc()
}
