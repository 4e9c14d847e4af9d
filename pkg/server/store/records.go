package store

import "github.com/safetynet/alerts/pkg/model"

// ResidentsStore abstracts the person collection.
type ResidentsStore interface {
	Residents() []model.Resident
	AddResident(r model.Resident) error
	// UpdateResident reports false when no resident has r's name.
	UpdateResident(r model.Resident) (bool, error)
	// DeleteResident removes every match and reports whether any existed.
	DeleteResident(firstName, lastName string) (bool, error)
}

// FirestationsStore abstracts the station assignment collection.
type FirestationsStore interface {
	Stations() []model.StationAssignment
	AddStation(a model.StationAssignment) error
	UpdateStation(a model.StationAssignment) (bool, error)
	DeleteStation(address string) (bool, error)
}

// MedicalRecordsStore abstracts the medical record collection.
type MedicalRecordsStore interface {
	MedicalRecords() []model.MedicalRecord
	AddMedicalRecord(m model.MedicalRecord) error
	UpdateMedicalRecord(m model.MedicalRecord) (bool, error)
	DeleteMedicalRecord(firstName, lastName string) (bool, error)
}
