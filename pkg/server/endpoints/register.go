package endpoints

import (
	"github.com/safetynet/alerts/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterStatusEndpoints(srv)
	RegisterAlertsEndpoints(srv)
	RegisterPersonsEndpoints(srv)
	RegisterFirestationsEndpoints(srv)
	RegisterMedicalRecordsEndpoints(srv)
}
