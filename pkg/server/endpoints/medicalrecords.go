package endpoints

import (
	"net/http"

	"github.com/safetynet/alerts/pkg/audit"
	"github.com/safetynet/alerts/pkg/model"
	"github.com/safetynet/alerts/pkg/server"
	"github.com/safetynet/alerts/pkg/server/store"
)

// RegisterMedicalRecordsEndpoints registers the medical record endpoints.
func RegisterMedicalRecordsEndpoints(s *server.Server) {
	medical := s.MedicalRecordsStore
	rec := newMutationRecorder(s, model.CollectionMedicalRecord)

	s.Router.HandleFunc("/medicalRecords", handleListMedicalRecords(medical)).Methods("GET")
	s.Router.HandleFunc("/medicalRecord", handleAddMedicalRecord(medical, rec)).Methods("POST")
	s.Router.HandleFunc("/medicalRecord", handleUpdateMedicalRecord(medical, rec)).Methods("PUT")
	// DELETE /medicalRecord?firstName=&lastName=
	s.Router.HandleFunc("/medicalRecord", handleDeleteMedicalRecord(medical, rec)).Methods("DELETE")
}

func handleListMedicalRecords(medical store.MedicalRecordsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, medical.MedicalRecords())
	}
}

func handleAddMedicalRecord(medical store.MedicalRecordsStore, rec *mutationRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var m model.MedicalRecord
		if err := decodeBody(r, &m); err != nil {
			rec.invalid(w, r, audit.ActionAdd, "", err)
			return
		}
		rec.added(w, r, nameKey(m.FirstName, m.LastName), medical.AddMedicalRecord(m))
	}
}

func handleUpdateMedicalRecord(medical store.MedicalRecordsStore, rec *mutationRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var m model.MedicalRecord
		if err := decodeBody(r, &m); err != nil {
			rec.invalid(w, r, audit.ActionUpdate, "", err)
			return
		}
		found, err := medical.UpdateMedicalRecord(m)
		rec.changed(w, r, audit.ActionUpdate, nameKey(m.FirstName, m.LastName), found, err)
	}
}

func handleDeleteMedicalRecord(medical store.MedicalRecordsStore, rec *mutationRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		firstName, lastName := q.Get("firstName"), q.Get("lastName")
		found, err := medical.DeleteMedicalRecord(firstName, lastName)
		rec.changed(w, r, audit.ActionDelete, nameKey(firstName, lastName), found, err)
	}
}
