package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/safetynet/alerts/pkg/alerts"
	"github.com/safetynet/alerts/pkg/audit"
	"github.com/safetynet/alerts/pkg/config"
	"github.com/safetynet/alerts/pkg/records"
	"github.com/safetynet/alerts/pkg/server/middleware"
	"github.com/safetynet/alerts/pkg/server/store"
)

// Version is reported by the status endpoint. It is set at build time.
var Version = "dev"

// Stores groups the storage dependencies of the endpoints.
type Stores struct {
	Residents      store.ResidentsStore
	Firestations   store.FirestationsStore
	MedicalRecords store.MedicalRecordsStore
	Alerts         store.AlertsStore
	Health         store.HealthStore
}

// NewStores wires a record store and its query engine into Stores.
func NewStores(rs *records.Store, engine *alerts.Engine) Stores {
	return Stores{
		Residents:      rs,
		Firestations:   rs,
		MedicalRecords: rs,
		Alerts:         engine,
		Health:         rs,
	}
}

type Server struct {
	Router *mux.Router
	Config *config.Config
	Logger *zap.Logger
	Audit  *audit.Logger

	// Metrics and Registry are nil when metrics are disabled.
	Metrics  *middleware.Metrics
	Registry *prometheus.Registry

	ResidentsStore      store.ResidentsStore
	FirestationsStore   store.FirestationsStore
	MedicalRecordsStore store.MedicalRecordsStore
	AlertsStore         store.AlertsStore
	HealthStore         store.HealthStore

	srv *http.Server
}

func NewServer(
	cfg *config.Config,
	stores Stores,
	logger *zap.Logger,
	auditLogger *audit.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	router := mux.NewRouter()
	s := &Server{
		Router:              router,
		Config:              cfg,
		Logger:              logger,
		Audit:               auditLogger,
		ResidentsStore:      stores.Residents,
		FirestationsStore:   stores.Firestations,
		MedicalRecordsStore: stores.MedicalRecords,
		AlertsStore:         stores.Alerts,
		HealthStore:         stores.Health,
	}

	router.Use(middleware.RequestID, middleware.Logging(logger))
	if cfg.MetricsEnabled {
		s.Registry = prometheus.NewRegistry()
		s.Registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		s.Metrics = middleware.NewMetrics(s.Registry)
		if stores.Health != nil {
			middleware.RegisterCollectionGauges(s.Registry, stores.Health.Counts)
		}
		router.Use(s.Metrics.Middleware)
	}

	s.srv = &http.Server{
		Handler:           s.Handler(),
		Addr:              cfg.Addr(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadTimeout:       15 * time.Second,
	}
	return s
}

// Handler returns the router wrapped in the outer middleware: proxy header
// handling, panic recovery and, when enabled, the access log.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.Router
	h = handlers.RecoveryHandler(handlers.RecoveryLogger(zap.NewStdLog(s.Logger)))(h)
	if s.Config.AccessLog {
		h = handlers.CombinedLoggingHandler(os.Stdout, h)
	}
	return handlers.ProxyHeaders(h)
}

// Start listens on the configured address and serves until Shutdown.
func (s *Server) Start() error {
	s.Logger.Info("server listening", zap.String("addr", s.srv.Addr))
	return ignoreClosed(s.srv.ListenAndServe())
}

// Serve accepts connections on l until Shutdown.
func (s *Server) Serve(l net.Listener) error {
	s.Logger.Info("server listening", zap.String("addr", l.Addr().String()))
	return ignoreClosed(s.srv.Serve(l))
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.Logger.Info("server shutting down")
	return s.srv.Shutdown(ctx)
}

func ignoreClosed(err error) error {
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
