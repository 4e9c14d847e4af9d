package records

import (
	"errors"
	"fmt"
	"sync"

	"github.com/safetynet/alerts/pkg/model"
)

// ErrMissingKey is returned when a mutation lacks a natural-key field.
var ErrMissingKey = errors.New("missing required key field")

// Counts holds the size of each collection.
type Counts struct {
	Residents      int `json:"persons"`
	Stations       int `json:"firestations"`
	MedicalRecords int `json:"medicalRecords"`
}

// Store holds the three record collections. The zero value is not usable;
// construct it with New.
type Store struct {
	mu        sync.RWMutex
	residents []model.Resident
	stations  []model.StationAssignment
	medical   []model.MedicalRecord
}

// New creates a store holding a copy of the given dataset.
func New(data model.Dataset) *Store {
	s := &Store{}
	s.load(data)
	return s
}

func (s *Store) load(data model.Dataset) {
	c := data.Clone()
	s.residents = c.Persons
	s.stations = c.Firestations
	s.medical = c.MedicalRecords
}

// Replace swaps all three collections for the content of data.
func (s *Store) Replace(data model.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(data)
}

// Counts returns the number of entries in each collection.
func (s *Store) Counts() Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Counts{
		Residents:      len(s.residents),
		Stations:       len(s.stations),
		MedicalRecords: len(s.medical),
	}
}

// View runs fn with read access to the collections. The View must not be
// retained after fn returns.
func (s *Store) View(fn func(v *View)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&View{residents: s.residents, stations: s.stations, medical: s.medical})
}

func checkName(first, last string) error {
	switch {
	case first == "" && last == "":
		return fmt.Errorf("%w: firstName, lastName", ErrMissingKey)
	case first == "":
		return fmt.Errorf("%w: firstName", ErrMissingKey)
	case last == "":
		return fmt.Errorf("%w: lastName", ErrMissingKey)
	}
	return nil
}

func checkAddress(address string) error {
	if address == "" {
		return fmt.Errorf("%w: address", ErrMissingKey)
	}
	return nil
}
