package loader

import (
	"fmt"
	"time"

	"github.com/safetynet/alerts/pkg/age"
	"github.com/safetynet/alerts/pkg/model"
)

// Report summarizes problems found in a fixture. None of them prevent the
// fixture from being served.
type Report struct {
	Persons        int      `json:"persons"`
	Firestations   int      `json:"firestations"`
	MedicalRecords int      `json:"medicalrecords"`
	Warnings       []string `json:"warnings"`
}

// Inspect checks data for missing natural keys, duplicated natural keys,
// unusable birthdates and residents without a medical record.
func Inspect(data model.Dataset, today time.Time) Report {
	r := Report{
		Persons:        len(data.Persons),
		Firestations:   len(data.Firestations),
		MedicalRecords: len(data.MedicalRecords),
		Warnings:       []string{},
	}

	people := make(map[model.NameKey]int)
	for i, p := range data.Persons {
		k := p.Key()
		if k.IsZero() {
			r.warn("persons[%d]: missing firstName or lastName", i)
			continue
		}
		people[k]++
		if people[k] == 2 {
			r.warn("persons: duplicate entry for %s", k)
		}
	}

	addresses := make(map[model.AddressKey]int)
	for i, s := range data.Firestations {
		k := s.Key()
		if k == "" {
			r.warn("firestations[%d]: missing address", i)
			continue
		}
		addresses[k]++
		if addresses[k] == 2 {
			r.warn("firestations: duplicate mapping for %q, first one wins", s.Address)
		}
	}

	records := make(map[model.NameKey]int)
	for i, m := range data.MedicalRecords {
		k := m.Key()
		if k.IsZero() {
			r.warn("medicalrecords[%d]: missing firstName or lastName", i)
			continue
		}
		records[k]++
		if records[k] == 2 {
			r.warn("medicalrecords: duplicate record for %s, first one wins", k)
		}
		if err := age.Check(m.Birthdate, today); err != nil {
			r.warn("medicalrecords[%d]: %v", i, err)
		}
	}

	for _, p := range data.Persons {
		k := p.Key()
		if _, ok := records[k]; ok || k.IsZero() {
			continue
		}
		records[k] = 0
		r.warn("persons: no medical record for %s", k)
	}
	return r
}

func (r *Report) warn(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}
