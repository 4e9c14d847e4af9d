// Package records is the in-memory record store behind the alert queries.
//
// A Store owns the residents, station assignments and medical records of the
// running process. It is built once from a model.Dataset and then mutated only
// through its add/update/delete operations. A single sync.RWMutex guards all
// three collections: mutations hold the write lock for the whole
// scan-and-modify, and readers run inside View, which holds the read lock for
// the duration of the callback.
//
// # Usage
//
//	s := records.New(dataset)
//	if err := s.AddResident(r); err != nil {
//	    if errors.Is(err, records.ErrMissingKey) {
//	        // reject the request
//	    }
//	}
//	s.View(func(v *records.View) {
//	    for _, r := range v.ResidentsAt("1509 Culver St") {
//	        ...
//	    }
//	})
//
// Adds never check for an existing natural key, so shadow records are
// possible; updates touch the first match and deletes remove every match.
package records
