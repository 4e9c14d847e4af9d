package endpoints

import (
	"net/http"

	"github.com/safetynet/alerts/pkg/audit"
	"github.com/safetynet/alerts/pkg/model"
	"github.com/safetynet/alerts/pkg/server"
	"github.com/safetynet/alerts/pkg/server/store"
)

// RegisterFirestationsEndpoints registers the station assignment endpoints.
// GET /firestation is the coverage query, see RegisterAlertsEndpoints.
func RegisterFirestationsEndpoints(s *server.Server) {
	stations := s.FirestationsStore
	rec := newMutationRecorder(s, model.CollectionFirestation)

	s.Router.HandleFunc("/firestations", handleListFirestations(stations)).Methods("GET")
	s.Router.HandleFunc("/firestation", handleAddFirestation(stations, rec)).Methods("POST")
	s.Router.HandleFunc("/firestation", handleUpdateFirestation(stations, rec)).Methods("PUT")
	// DELETE /firestation?address=
	s.Router.HandleFunc("/firestation", handleDeleteFirestation(stations, rec)).Methods("DELETE")
}

func handleListFirestations(stations store.FirestationsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, stations.Stations())
	}
}

func handleAddFirestation(stations store.FirestationsStore, rec *mutationRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var a model.StationAssignment
		if err := decodeBody(r, &a); err != nil {
			rec.invalid(w, r, audit.ActionAdd, "", err)
			return
		}
		rec.added(w, r, a.Address, stations.AddStation(a))
	}
}

func handleUpdateFirestation(stations store.FirestationsStore, rec *mutationRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var a model.StationAssignment
		if err := decodeBody(r, &a); err != nil {
			rec.invalid(w, r, audit.ActionUpdate, "", err)
			return
		}
		found, err := stations.UpdateStation(a)
		rec.changed(w, r, audit.ActionUpdate, a.Address, found, err)
	}
}

func handleDeleteFirestation(stations store.FirestationsStore, rec *mutationRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		address := r.URL.Query().Get("address")
		found, err := stations.DeleteStation(address)
		rec.changed(w, r, audit.ActionDelete, address, found, err)
	}
}
