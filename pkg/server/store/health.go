package store

import "github.com/safetynet/alerts/pkg/records"

// HealthStore provides health check operations
type HealthStore interface {
	// Counts returns the size of each collection
	Counts() records.Counts
}
