package model

// StationAssignment maps a street address to the fire station responsible for it.
type StationAssignment struct {
	Address string `json:"address" yaml:"address"`
	Station string `json:"station" yaml:"station"`
}

// Key returns the normalized natural key of the assignment.
func (s StationAssignment) Key() AddressKey {
	return NewAddressKey(s.Address)
}
