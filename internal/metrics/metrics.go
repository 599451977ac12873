// Package metrics exposes request and connection pool metrics in the
// Prometheus text format.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/bakurvik/mylib/libadmin/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "libadmin"

type Metrics struct {
	registry          *prometheus.Registry
	requests          *prometheus.CounterVec
	durations         *prometheus.HistogramVec
	studyRoomConflict prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "code"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		studyRoomConflict: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "study_room_conflicts_total",
			Help:      "Study room booking requests rejected because the room was taken for the date.",
		}),
	}
	m.registry.MustRegister(
		m.requests,
		m.durations,
		m.studyRoomConflict,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// RegisterDB adds connection pool statistics for db.
func (m *Metrics) RegisterDB(db *sql.DB, name string) error {
	return m.registry.Register(collectors.NewDBStatsCollector(db, name))
}

func (m *Metrics) StudyRoomConflict() {
	m.studyRoomConflict.Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records every request under its ServeMux pattern, so paths
// with unknown segments do not create new label values.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := common.NewStatusRecorder(w)
		next.ServeHTTP(recorder, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(recorder.Status)).Inc()
		m.durations.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
