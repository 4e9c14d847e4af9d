// Package store defines the storage interfaces used by the HTTP endpoints.
//
// Endpoints depend on these interfaces rather than on records.Store and
// alerts.Engine directly, so handlers can be tested with mocks.
//
// # Available Stores
//
//   - ResidentsStore: person list and mutations
//   - FirestationsStore: station assignment list and mutations
//   - MedicalRecordsStore: medical record list and mutations
//   - AlertsStore: the read-only alert queries
//   - HealthStore: collection sizes for the status page and metrics
//
// # Usage
//
//	found, err := residents.UpdateResident(r)
//	if errors.Is(err, records.ErrMissingKey) {
//	    // 400
//	}
//	if !found {
//	    // 404
//	}
package store
