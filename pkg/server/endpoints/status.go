package endpoints

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/safetynet/alerts/pkg/server"
	"github.com/safetynet/alerts/pkg/server/store"
)

// RegisterStatusEndpoints registers the status page and, when metrics are
// enabled, the Prometheus scrape endpoint.
func RegisterStatusEndpoints(s *server.Server) {
	// GET / - Status (version and collection sizes)
	s.Router.HandleFunc("/", handleStatus(s.HealthStore, server.Version)).Methods("GET")

	if s.Registry != nil {
		s.Router.Handle("/metrics", promhttp.HandlerFor(s.Registry, promhttp.HandlerOpts{
			Registry: s.Registry,
		})).Methods("GET")
	}
}

func handleStatus(healthStore store.HealthStore, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts := healthStore.Counts()
		respondWithJSON(w, http.StatusOK, StatusResponse{
			Status:  "ok",
			Version: version,
			Counts: CountsPayload{
				Persons:        counts.Residents,
				Firestations:   counts.Stations,
				MedicalRecords: counts.MedicalRecords,
			},
		})
	}
}
