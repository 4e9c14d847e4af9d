package alerts

// UnknownStation is reported by FireInfo when no station serves the address.
const UnknownStation = "Unknown"

// HouseholdMember is an entry of a ChildAlert.
type HouseholdMember struct {
	FirstName string
	LastName  string
	Age       int
}

// ChildAlert partitions the residents of an address that have a medical
// record into minors and everyone else.
type ChildAlert struct {
	Children         []HouseholdMember
	HouseholdMembers []HouseholdMember
}

// CoveredPerson is a resident served by a station.
type CoveredPerson struct {
	FirstName string
	LastName  string
	Address   string
	Phone     string
}

// StationCoverage lists the residents served by a station.
type StationCoverage struct {
	Persons    []CoveredPerson
	AdultCount int
	ChildCount int
}

// Medical is the medical part of a resident's profile. It is only present
// when the resident has a medical record.
type Medical struct {
	Medications []string
	Allergies   []string
}

// ResidentHealth is the per-resident entry of FireInfo and FloodInfo.
type ResidentHealth struct {
	Name    string
	Phone   string
	Age     int
	Medical *Medical
}

// FireInfo is the station and residents of an address.
type FireInfo struct {
	Station   string
	Residents []ResidentHealth
}

// FloodInfo maps each address served by the requested stations to its
// residents.
type FloodInfo map[string][]ResidentHealth

// PersonInfo is the profile returned by PersonInfo.
type PersonInfo struct {
	FirstName string
	LastName  string
	Address   string
	Email     string
	Age       int
	Medical   *Medical
}
