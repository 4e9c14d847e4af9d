package records

import (
	"github.com/safetynet/alerts/pkg/model"
)

// View is read access to the store's collections for the duration of a
// Store.View callback. Every lookup is a linear scan; results are recomputed
// on each call so they always reflect the current content.
type View struct {
	residents []model.Resident
	stations  []model.StationAssignment
	medical   []model.MedicalRecord
}

// Residents returns the residents in insertion order. The slice is shared
// with the store and must not be modified.
func (v *View) Residents() []model.Resident {
	return v.residents
}

// AddressesForStation returns the distinct addresses assigned to station, in
// first-occurrence order. Station identifiers match exactly.
func (v *View) AddressesForStation(station string) []string {
	return v.AddressesForStations([]string{station})
}

// AddressesForStations returns the union of the addresses assigned to any of
// the given stations, in first-occurrence order.
func (v *View) AddressesForStations(stations []string) []string {
	wanted := make(map[string]struct{}, len(stations))
	for _, st := range stations {
		wanted[st] = struct{}{}
	}

	seen := make(map[string]struct{})
	var out []string
	for _, a := range v.stations {
		if _, ok := wanted[a.Station]; !ok {
			continue
		}
		if _, dup := seen[a.Address]; dup {
			continue
		}
		seen[a.Address] = struct{}{}
		out = append(out, a.Address)
	}
	return out
}

// StationsForAddresses returns the distinct stations assigned to any of the
// given addresses, compared case-insensitively, in first-occurrence order.
func (v *View) StationsForAddresses(addresses []string) []string {
	wanted := make(map[model.AddressKey]struct{}, len(addresses))
	for _, a := range addresses {
		wanted[model.NewAddressKey(a)] = struct{}{}
	}

	seen := make(map[string]struct{})
	var out []string
	for _, a := range v.stations {
		if _, ok := wanted[a.Key()]; !ok {
			continue
		}
		if _, dup := seen[a.Station]; dup {
			continue
		}
		seen[a.Station] = struct{}{}
		out = append(out, a.Station)
	}
	return out
}

// StationForAddress returns the station of the first assignment for address.
func (v *View) StationForAddress(address string) (string, bool) {
	key := model.NewAddressKey(address)
	for _, a := range v.stations {
		if a.Key() == key {
			return a.Station, true
		}
	}
	return "", false
}

// ResidentsAt returns the residents whose address matches, ignoring case.
func (v *View) ResidentsAt(address string) []model.Resident {
	key := model.NewAddressKey(address)
	var out []model.Resident
	for _, r := range v.residents {
		if r.LivesAt(key) {
			out = append(out, r)
		}
	}
	return out
}

// ResidentsAtAny returns, in store order, the residents living at any of the
// given addresses (case-insensitive).
func (v *View) ResidentsAtAny(addresses []string) []model.Resident {
	wanted := make(map[model.AddressKey]struct{}, len(addresses))
	for _, a := range addresses {
		wanted[model.NewAddressKey(a)] = struct{}{}
	}

	var out []model.Resident
	for _, r := range v.residents {
		if _, ok := wanted[model.NewAddressKey(r.Address)]; ok {
			out = append(out, r)
		}
	}
	return out
}

// MedicalRecordFor returns a copy of the first medical record for the named
// person, or nil when there is none.
func (v *View) MedicalRecordFor(firstName, lastName string) *model.MedicalRecord {
	key := model.NewNameKey(firstName, lastName)
	for _, m := range v.medical {
		if m.Key() == key {
			c := m.Clone()
			return &c
		}
	}
	return nil
}
