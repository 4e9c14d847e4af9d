package endpoints

import (
	"net/http"

	"github.com/safetynet/alerts/pkg/server"
	"github.com/safetynet/alerts/pkg/server/store"
)

// RegisterAlertsEndpoints registers the read-only alert queries.
func RegisterAlertsEndpoints(s *server.Server) {
	alertsStore := s.AlertsStore

	// GET /communityEmail?city=
	s.Router.HandleFunc("/communityEmail", handleCommunityEmail(alertsStore)).Methods("GET")

	// GET /phoneAlert?firestation=
	s.Router.HandleFunc("/phoneAlert", handlePhoneAlert(alertsStore)).Methods("GET")

	// GET /childAlert?address=
	s.Router.HandleFunc("/childAlert", handleChildAlert(alertsStore)).Methods("GET")

	// GET /firestation?stationNumber=
	s.Router.HandleFunc("/firestation", handleStationCoverage(alertsStore)).Methods("GET")

	// GET /fire?address=
	s.Router.HandleFunc("/fire", handleFireInfo(alertsStore)).Methods("GET")

	// GET /flood/stations?stations=1,2
	s.Router.HandleFunc("/flood/stations", handleFloodInfo(alertsStore)).Methods("GET")

	// GET /personInfo?lastName=
	s.Router.HandleFunc("/personInfo", handlePersonInfo(alertsStore)).Methods("GET")
}

func handleCommunityEmail(alertsStore store.AlertsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		city, ok := requiredQuery(w, r, "city")
		if !ok {
			return
		}
		respondWithJSON(w, http.StatusOK, alertsStore.CommunityEmails(city))
	}
}

func handlePhoneAlert(alertsStore store.AlertsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		station, ok := requiredQuery(w, r, "firestation")
		if !ok {
			return
		}
		respondWithJSON(w, http.StatusOK, alertsStore.PhoneAlert(station))
	}
}

func handleChildAlert(alertsStore store.AlertsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		address, ok := requiredQuery(w, r, "address")
		if !ok {
			return
		}
		result := alertsStore.ChildAlert(address)
		respondWithJSON(w, http.StatusOK, ChildAlertResponse{
			Children:         newHouseholdMembers(result.Children),
			HouseholdMembers: newHouseholdMembers(result.HouseholdMembers),
		})
	}
}

func handleStationCoverage(alertsStore store.AlertsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		station, ok := requiredQuery(w, r, "stationNumber")
		if !ok {
			return
		}
		result := alertsStore.StationCoverage(station)

		persons := make([]CoveredPersonResponse, 0, len(result.Persons))
		for _, p := range result.Persons {
			persons = append(persons, CoveredPersonResponse{
				FirstName: p.FirstName,
				LastName:  p.LastName,
				Address:   p.Address,
				Phone:     p.Phone,
			})
		}
		respondWithJSON(w, http.StatusOK, StationCoverageResponse{
			Persons:    persons,
			AdultCount: result.AdultCount,
			ChildCount: result.ChildCount,
		})
	}
}

func handleFireInfo(alertsStore store.AlertsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		address, ok := requiredQuery(w, r, "address")
		if !ok {
			return
		}
		result := alertsStore.FireInfo(address)
		respondWithJSON(w, http.StatusOK, FireInfoResponse{
			Station:   result.Station,
			Residents: newResidentHealth(result.Residents),
		})
	}
}

func handleFloodInfo(alertsStore store.AlertsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stations := listQuery(r, "stations")
		if len(stations) == 0 {
			respondWithError(w, http.StatusBadRequest, "missing required query parameter: stations")
			return
		}

		result := alertsStore.FloodInfo(stations)
		households := make(map[string][]ResidentHealthResponse, len(result))
		for address, residents := range result {
			households[address] = newResidentHealth(residents)
		}
		respondWithJSON(w, http.StatusOK, households)
	}
}

func handlePersonInfo(alertsStore store.AlertsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lastName, ok := requiredQuery(w, r, "lastName")
		if !ok {
			return
		}

		result := alertsStore.PersonInfo(lastName)
		people := make([]PersonInfoResponse, 0, len(result))
		for _, p := range result {
			resp := PersonInfoResponse{
				FirstName: p.FirstName,
				LastName:  p.LastName,
				Address:   p.Address,
				Email:     p.Email,
				Age:       p.Age,
			}
			resp.Medications, resp.Allergies = medicalFields(p.Medical)
			people = append(people, resp)
		}
		respondWithJSON(w, http.StatusOK, people)
	}
}
