package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/safetynet/alerts/pkg/model"
	"github.com/safetynet/alerts/pkg/records"
)

const namespace = "safetynet"

// Metrics collects HTTP and collection metrics.
type Metrics struct {
	requests  *prometheus.CounterVec
	durations *prometheus.HistogramVec
	mutations *prometheus.CounterVec
}

// NewMetrics creates the HTTP metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "code"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Record mutations by collection, action and result.",
		}, []string{"collection", "action", "result"}),
	}
	reg.MustRegister(m.requests, m.durations, m.mutations)
	return m
}

// RegisterCollectionGauges exposes the size of each collection, read from
// counts at scrape time.
func RegisterCollectionGauges(reg prometheus.Registerer, counts func() records.Counts) {
	sizes := map[model.Collection]func(records.Counts) int{
		model.CollectionPerson:        func(c records.Counts) int { return c.Residents },
		model.CollectionFirestation:   func(c records.Counts) int { return c.Stations },
		model.CollectionMedicalRecord: func(c records.Counts) int { return c.MedicalRecords },
	}
	for _, col := range model.CollectionValues() {
		size := sizes[col]
		reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "records",
			Help:        "Number of records per collection.",
			ConstLabels: prometheus.Labels{"collection": col.String()},
		}, func() float64 {
			return float64(size(counts()))
		}))
	}
}

// Middleware records request counts and latencies. Routes are labelled by
// their path template to keep cardinality bounded.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)
		next.ServeHTTP(rec, r)

		route := routeName(r)
		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		m.durations.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// ObserveMutation counts one mutation outcome. A nil Metrics does nothing.
func (m *Metrics) ObserveMutation(collection, action, result string) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(collection, action, result).Inc()
}
