package records

import (
	"github.com/safetynet/alerts/pkg/model"
)

// Residents returns a copy of all residents in insertion order.
func (s *Store) Residents() []model.Resident {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Resident, len(s.residents))
	copy(out, s.residents)
	return out
}

// AddResident appends r without checking for an existing natural key.
func (s *Store) AddResident(r model.Resident) error {
	if err := checkName(r.FirstName, r.LastName); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.residents = append(s.residents, r)
	return nil
}

// UpdateResident overwrites the contact fields of the first resident whose
// name matches r. It reports whether a resident was found.
func (s *Store) UpdateResident(r model.Resident) (bool, error) {
	if err := checkName(r.FirstName, r.LastName); err != nil {
		return false, err
	}
	key := r.Key()

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.residents {
		if s.residents[i].Key() != key {
			continue
		}
		cur := &s.residents[i]
		cur.Address = r.Address
		cur.City = r.City
		cur.Zip = r.Zip
		cur.Phone = r.Phone
		cur.Email = r.Email
		return true, nil
	}
	return false, nil
}

// DeleteResident removes every resident named firstName lastName and
// reports whether any was removed.
func (s *Store) DeleteResident(firstName, lastName string) (bool, error) {
	if err := checkName(firstName, lastName); err != nil {
		return false, err
	}
	key := model.NewNameKey(firstName, lastName)

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.residents[:0]
	for _, r := range s.residents {
		if r.Key() != key {
			kept = append(kept, r)
		}
	}
	removed := len(kept) != len(s.residents)
	clear(s.residents[len(kept):])
	s.residents = kept
	return removed, nil
}
