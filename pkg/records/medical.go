package records

import (
	"github.com/safetynet/alerts/pkg/model"
)

// MedicalRecords returns a copy of all medical records in insertion order.
func (s *Store) MedicalRecords() []model.MedicalRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.MedicalRecord, len(s.medical))
	for i, m := range s.medical {
		out[i] = m.Clone()
	}
	return out
}

// AddMedicalRecord appends m without checking for an existing natural key.
func (s *Store) AddMedicalRecord(m model.MedicalRecord) error {
	if err := checkName(m.FirstName, m.LastName); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.medical = append(s.medical, m.Clone())
	return nil
}

// UpdateMedicalRecord overwrites birthdate, medications and allergies of the
// first record whose name matches m. It reports whether a record was found.
func (s *Store) UpdateMedicalRecord(m model.MedicalRecord) (bool, error) {
	if err := checkName(m.FirstName, m.LastName); err != nil {
		return false, err
	}
	key := m.Key()
	m = m.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.medical {
		if s.medical[i].Key() != key {
			continue
		}
		cur := &s.medical[i]
		cur.Birthdate = m.Birthdate
		cur.Medications = m.Medications
		cur.Allergies = m.Allergies
		return true, nil
	}
	return false, nil
}

// DeleteMedicalRecord removes every record for firstName lastName and
// reports whether any was removed.
func (s *Store) DeleteMedicalRecord(firstName, lastName string) (bool, error) {
	if err := checkName(firstName, lastName); err != nil {
		return false, err
	}
	key := model.NewNameKey(firstName, lastName)

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.medical[:0]
	for _, m := range s.medical {
		if m.Key() != key {
			kept = append(kept, m)
		}
	}
	removed := len(kept) != len(s.medical)
	clear(s.medical[len(kept):])
	s.medical = kept
	return removed, nil
}
