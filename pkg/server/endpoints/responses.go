package endpoints

import "github.com/safetynet/alerts/pkg/alerts"

// HouseholdMemberResponse is an entry of the /childAlert lists.
type HouseholdMemberResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Age       int    `json:"age"`
}

// ChildAlertResponse is the body of /childAlert.
type ChildAlertResponse struct {
	Children         []HouseholdMemberResponse `json:"children"`
	HouseholdMembers []HouseholdMemberResponse `json:"householdMembers"`
}

// CoveredPersonResponse is a resident listed by /firestation.
type CoveredPersonResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
}

// StationCoverageResponse is the body of GET /firestation.
type StationCoverageResponse struct {
	Persons    []CoveredPersonResponse `json:"persons"`
	AdultCount int                     `json:"adultCount"`
	ChildCount int                     `json:"childCount"`
}

// ResidentHealthResponse is a resident listed by /fire and /flood/stations.
// Medications and allergies are omitted when the resident has no medical
// record.
type ResidentHealthResponse struct {
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Age         int       `json:"age"`
	Medications *[]string `json:"medications,omitempty"`
	Allergies   *[]string `json:"allergies,omitempty"`
}

// FireInfoResponse is the body of /fire.
type FireInfoResponse struct {
	Station   string                   `json:"station"`
	Residents []ResidentHealthResponse `json:"residents"`
}

// PersonInfoResponse is an entry of /personInfo.
type PersonInfoResponse struct {
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Address     string    `json:"address"`
	Email       string    `json:"email"`
	Age         int       `json:"age"`
	Medications *[]string `json:"medications,omitempty"`
	Allergies   *[]string `json:"allergies,omitempty"`
}

// StatusResponse is the body of GET /.
type StatusResponse struct {
	Status  string        `json:"status"`
	Version string        `json:"version"`
	Counts  CountsPayload `json:"counts"`
}

// CountsPayload holds the size of each collection.
type CountsPayload struct {
	Persons        int `json:"persons"`
	Firestations   int `json:"firestations"`
	MedicalRecords int `json:"medicalRecords"`
}

func medicalFields(m *alerts.Medical) (*[]string, *[]string) {
	if m == nil {
		return nil, nil
	}
	meds, allergies := m.Medications, m.Allergies
	if meds == nil {
		meds = []string{}
	}
	if allergies == nil {
		allergies = []string{}
	}
	return &meds, &allergies
}

func newHouseholdMembers(in []alerts.HouseholdMember) []HouseholdMemberResponse {
	out := make([]HouseholdMemberResponse, 0, len(in))
	for _, m := range in {
		out = append(out, HouseholdMemberResponse{FirstName: m.FirstName, LastName: m.LastName, Age: m.Age})
	}
	return out
}

func newResidentHealth(in []alerts.ResidentHealth) []ResidentHealthResponse {
	out := make([]ResidentHealthResponse, 0, len(in))
	for _, r := range in {
		resp := ResidentHealthResponse{Name: r.Name, Phone: r.Phone, Age: r.Age}
		resp.Medications, resp.Allergies = medicalFields(r.Medical)
		out = append(out, resp)
	}
	return out
}
