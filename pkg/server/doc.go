// Package server provides the HTTP server for the safetynet API.
//
// The server uses gorilla/mux for routing. Every matched route runs behind
// request-id, zap request logging and, when enabled, Prometheus metrics
// middleware; the whole router is wrapped in gorilla/handlers proxy-header,
// recovery and access-log handlers.
//
// # Server Setup
//
//	rs := records.New(dataset)
//	engine := alerts.NewEngine(rs, alerts.WithLogger(logger))
//	srv := server.NewServer(cfg, server.NewStores(rs, engine), logger, auditLogger)
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Components
//
// The Server struct holds:
//
//   - Router: HTTP request router
//   - Config: loaded settings
//   - Logger: structured logger
//   - Audit: RFC5424 audit logger for mutations
//   - the store interfaces used by the endpoints
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//   - /communityEmail, /phoneAlert, /childAlert, /firestation, /fire,
//     /flood/stations, /personInfo - alert queries
//   - /person, /firestation, /medicalRecord - record mutations
//   - /persons, /firestations, /medicalRecords - collection listings
//   - / - status, /metrics - Prometheus metrics
package server
