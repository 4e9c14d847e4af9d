package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/safetynet/alerts/pkg/model"
)

// ErrEmptyFixture is returned when the fixture has none of the three
// collections.
var ErrEmptyFixture = errors.New("fixture contains no persons, firestations or medicalrecords")

// Load reads and decodes the fixture at path.
func Load(path string) (model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("failed to open data file: %w", err)
	}
	defer func() { _ = f.Close() }()

	data, err := Decode(f)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}

// Decode parses a fixture from r. Missing collections decode as empty.
func Decode(r io.Reader) (model.Dataset, error) {
	var raw struct {
		Persons        *[]model.Resident          `json:"persons"`
		Firestations   *[]model.StationAssignment `json:"firestations"`
		MedicalRecords *[]model.MedicalRecord     `json:"medicalrecords"`
	}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return model.Dataset{}, fmt.Errorf("failed to parse data: %w", err)
	}
	if raw.Persons == nil && raw.Firestations == nil && raw.MedicalRecords == nil {
		return model.Dataset{}, ErrEmptyFixture
	}

	var data model.Dataset
	if raw.Persons != nil {
		data.Persons = *raw.Persons
	}
	if raw.Firestations != nil {
		data.Firestations = *raw.Firestations
	}
	if raw.MedicalRecords != nil {
		data.MedicalRecords = *raw.MedicalRecords
	}
	return data, nil
}
