package model

// BirthdateLayout is the expected layout of MedicalRecord.Birthdate (MM/DD/YYYY).
const BirthdateLayout = "01/02/2006"

// MedicalRecord holds the birthdate, medications and allergies of a person.
//
// Birthdate is kept as received so that malformed values can be stored and
// reported as an unknown age instead of being rejected.
type MedicalRecord struct {
	FirstName   string   `json:"firstName" yaml:"firstName"`
	LastName    string   `json:"lastName" yaml:"lastName"`
	Birthdate   string   `json:"birthdate" yaml:"birthdate"`
	Medications []string `json:"medications" yaml:"medications"`
	Allergies   []string `json:"allergies" yaml:"allergies"`
}

// Key returns the normalized natural key of the record.
func (m MedicalRecord) Key() NameKey {
	return NewNameKey(m.FirstName, m.LastName)
}

// Clone returns a copy that shares no slices with m.
func (m MedicalRecord) Clone() MedicalRecord {
	m.Medications = cloneStrings(m.Medications)
	m.Allergies = cloneStrings(m.Allergies)
	return m
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
