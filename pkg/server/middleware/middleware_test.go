package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/safetynet/alerts/pkg/identity"
	"github.com/safetynet/alerts/pkg/records"
)

func TestRequestID(t *testing.T) {
	var seen *identity.Identity
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = identity.Get(r.Context())
	}))

	t.Run("generates an id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/persons", nil)
		req.RemoteAddr = "192.0.2.10:4000"
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		require.NotNil(t, seen)
		assert.Len(t, seen.RequestID, 36)
		assert.Equal(t, seen.RequestID, w.Header().Get(RequestIDHeader))
		assert.Equal(t, "192.0.2.10", seen.ClientIP())
	})

	t.Run("reuses incoming id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/persons", nil)
		req.Header.Set(RequestIDHeader, "upstream-1")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, "upstream-1", seen.RequestID)
		assert.Equal(t, "upstream-1", w.Header().Get(RequestIDHeader))
	})
}

func newRouter(mw ...mux.MiddlewareFunc) *mux.Router {
	r := mux.NewRouter()
	r.Use(mw...)
	r.HandleFunc("/childAlert", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("address") == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte("{}"))
	}).Methods("GET")
	return r
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	router := newRouter(RequestID, Logging(zap.New(core)))

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/childAlert?address=x", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/childAlert", nil))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "/childAlert", entries[0].ContextMap()["route"])
	assert.Equal(t, int64(200), entries[0].ContextMap()["status"])
	assert.NotEmpty(t, entries[0].ContextMap()["request_id"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	router := newRouter(m.Middleware)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/childAlert?address=a", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/childAlert?address=b", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/childAlert", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/childAlert", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/childAlert", "400")))

	m.ObserveMutation("person", "add", "success")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.mutations.WithLabelValues("person", "add", "success")))

	var nilMetrics *Metrics
	nilMetrics.ObserveMutation("person", "add", "success")
}

func TestCollectionGauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	counts := records.Counts{Residents: 3, Stations: 2, MedicalRecords: 1}
	RegisterCollectionGauges(reg, func() records.Counts { return counts })

	expected := `
# HELP safetynet_records Number of records per collection.
# TYPE safetynet_records gauge
safetynet_records{collection="firestation"} 2
safetynet_records{collection="medicalrecord"} 1
safetynet_records{collection="person"} 3
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "safetynet_records"))
}
