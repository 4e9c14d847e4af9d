package records

import (
	"github.com/safetynet/alerts/pkg/model"
)

// Stations returns a copy of all station assignments in insertion order.
func (s *Store) Stations() []model.StationAssignment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.StationAssignment, len(s.stations))
	copy(out, s.stations)
	return out
}

// AddStation appends a without checking for an existing address.
func (s *Store) AddStation(a model.StationAssignment) error {
	if err := checkAddress(a.Address); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stations = append(s.stations, a)
	return nil
}

// UpdateStation changes the station of the first assignment whose address
// matches a. It reports whether an assignment was found.
func (s *Store) UpdateStation(a model.StationAssignment) (bool, error) {
	if err := checkAddress(a.Address); err != nil {
		return false, err
	}
	key := a.Key()

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.stations {
		if s.stations[i].Key() == key {
			s.stations[i].Station = a.Station
			return true, nil
		}
	}
	return false, nil
}

// DeleteStation removes every assignment for address and reports whether
// any was removed.
func (s *Store) DeleteStation(address string) (bool, error) {
	if err := checkAddress(address); err != nil {
		return false, err
	}
	key := model.NewAddressKey(address)

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.stations[:0]
	for _, a := range s.stations {
		if a.Key() != key {
			kept = append(kept, a)
		}
	}
	removed := len(kept) != len(s.stations)
	clear(s.stations[len(kept):])
	s.stations = kept
	return removed, nil
}
