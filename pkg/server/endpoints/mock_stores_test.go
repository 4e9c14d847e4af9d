package endpoints

import (
	"github.com/stretchr/testify/mock"

	"github.com/safetynet/alerts/pkg/alerts"
	"github.com/safetynet/alerts/pkg/model"
	"github.com/safetynet/alerts/pkg/records"
)

// MockResidentsStore implements store.ResidentsStore for testing using testify/mock
type MockResidentsStore struct {
	mock.Mock
}

func (m *MockResidentsStore) Residents() []model.Resident {
	args := m.Called()
	return args.Get(0).([]model.Resident)
}

func (m *MockResidentsStore) AddResident(r model.Resident) error {
	args := m.Called(r)
	return args.Error(0)
}

func (m *MockResidentsStore) UpdateResident(r model.Resident) (bool, error) {
	args := m.Called(r)
	return args.Bool(0), args.Error(1)
}

func (m *MockResidentsStore) DeleteResident(firstName, lastName string) (bool, error) {
	args := m.Called(firstName, lastName)
	return args.Bool(0), args.Error(1)
}

// MockFirestationsStore implements store.FirestationsStore for testing using testify/mock
type MockFirestationsStore struct {
	mock.Mock
}

func (m *MockFirestationsStore) Stations() []model.StationAssignment {
	args := m.Called()
	return args.Get(0).([]model.StationAssignment)
}

func (m *MockFirestationsStore) AddStation(a model.StationAssignment) error {
	args := m.Called(a)
	return args.Error(0)
}

func (m *MockFirestationsStore) UpdateStation(a model.StationAssignment) (bool, error) {
	args := m.Called(a)
	return args.Bool(0), args.Error(1)
}

func (m *MockFirestationsStore) DeleteStation(address string) (bool, error) {
	args := m.Called(address)
	return args.Bool(0), args.Error(1)
}

// MockMedicalRecordsStore implements store.MedicalRecordsStore for testing using testify/mock
type MockMedicalRecordsStore struct {
	mock.Mock
}

func (m *MockMedicalRecordsStore) MedicalRecords() []model.MedicalRecord {
	args := m.Called()
	return args.Get(0).([]model.MedicalRecord)
}

func (m *MockMedicalRecordsStore) AddMedicalRecord(r model.MedicalRecord) error {
	args := m.Called(r)
	return args.Error(0)
}

func (m *MockMedicalRecordsStore) UpdateMedicalRecord(r model.MedicalRecord) (bool, error) {
	args := m.Called(r)
	return args.Bool(0), args.Error(1)
}

func (m *MockMedicalRecordsStore) DeleteMedicalRecord(firstName, lastName string) (bool, error) {
	args := m.Called(firstName, lastName)
	return args.Bool(0), args.Error(1)
}

// MockAlertsStore implements store.AlertsStore for testing using testify/mock
type MockAlertsStore struct {
	mock.Mock
}

func (m *MockAlertsStore) CommunityEmails(city string) []string {
	args := m.Called(city)
	return args.Get(0).([]string)
}

func (m *MockAlertsStore) PhoneAlert(station string) []string {
	args := m.Called(station)
	return args.Get(0).([]string)
}

func (m *MockAlertsStore) ChildAlert(address string) alerts.ChildAlert {
	args := m.Called(address)
	return args.Get(0).(alerts.ChildAlert)
}

func (m *MockAlertsStore) StationCoverage(station string) alerts.StationCoverage {
	args := m.Called(station)
	return args.Get(0).(alerts.StationCoverage)
}

func (m *MockAlertsStore) FireInfo(address string) alerts.FireInfo {
	args := m.Called(address)
	return args.Get(0).(alerts.FireInfo)
}

func (m *MockAlertsStore) FloodInfo(stations []string) alerts.FloodInfo {
	args := m.Called(stations)
	return args.Get(0).(alerts.FloodInfo)
}

func (m *MockAlertsStore) PersonInfo(lastName string) []alerts.PersonInfo {
	args := m.Called(lastName)
	return args.Get(0).([]alerts.PersonInfo)
}

// MockHealthStore implements store.HealthStore for testing using testify/mock
type MockHealthStore struct {
	mock.Mock
}

func (m *MockHealthStore) Counts() records.Counts {
	args := m.Called()
	return args.Get(0).(records.Counts)
}
