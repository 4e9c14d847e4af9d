package model

// Dataset is the full content of the store, in the layout of the JSON
// fixture: {"persons": [...], "firestations": [...], "medicalrecords": [...]}.
type Dataset struct {
	Persons        []Resident          `json:"persons" yaml:"persons"`
	Firestations   []StationAssignment `json:"firestations" yaml:"firestations"`
	MedicalRecords []MedicalRecord     `json:"medicalrecords" yaml:"medicalrecords"`
}

// Clone returns a deep copy of the dataset.
func (d Dataset) Clone() Dataset {
	out := Dataset{
		Persons:        make([]Resident, len(d.Persons)),
		Firestations:   make([]StationAssignment, len(d.Firestations)),
		MedicalRecords: make([]MedicalRecord, len(d.MedicalRecords)),
	}
	copy(out.Persons, d.Persons)
	copy(out.Firestations, d.Firestations)
	for i, m := range d.MedicalRecords {
		out.MedicalRecords[i] = m.Clone()
	}
	return out
}
