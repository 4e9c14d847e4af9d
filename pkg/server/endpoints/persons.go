package endpoints

import (
	"net/http"

	"github.com/safetynet/alerts/pkg/audit"
	"github.com/safetynet/alerts/pkg/model"
	"github.com/safetynet/alerts/pkg/server"
	"github.com/safetynet/alerts/pkg/server/store"
)

// RegisterPersonsEndpoints registers the person collection endpoints.
func RegisterPersonsEndpoints(s *server.Server) {
	residents := s.ResidentsStore
	rec := newMutationRecorder(s, model.CollectionPerson)

	s.Router.HandleFunc("/persons", handleListPersons(residents)).Methods("GET")
	s.Router.HandleFunc("/person", handleAddPerson(residents, rec)).Methods("POST")
	s.Router.HandleFunc("/person", handleUpdatePerson(residents, rec)).Methods("PUT")
	// DELETE /person?firstName=&lastName=
	s.Router.HandleFunc("/person", handleDeletePerson(residents, rec)).Methods("DELETE")
}

func handleListPersons(residents store.ResidentsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, residents.Residents())
	}
}

func handleAddPerson(residents store.ResidentsStore, rec *mutationRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p model.Resident
		if err := decodeBody(r, &p); err != nil {
			rec.invalid(w, r, audit.ActionAdd, "", err)
			return
		}
		key := nameKey(p.FirstName, p.LastName)
		rec.added(w, r, key, residents.AddResident(p))
	}
}

func handleUpdatePerson(residents store.ResidentsStore, rec *mutationRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p model.Resident
		if err := decodeBody(r, &p); err != nil {
			rec.invalid(w, r, audit.ActionUpdate, "", err)
			return
		}
		found, err := residents.UpdateResident(p)
		rec.changed(w, r, audit.ActionUpdate, nameKey(p.FirstName, p.LastName), found, err)
	}
}

func handleDeletePerson(residents store.ResidentsStore, rec *mutationRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		firstName, lastName := q.Get("firstName"), q.Get("lastName")
		found, err := residents.DeleteResident(firstName, lastName)
		rec.changed(w, r, audit.ActionDelete, nameKey(firstName, lastName), found, err)
	}
}
