package model

import "strings"

// NameKey is the normalized (firstName, lastName) identity of a resident or
// medical record.
type NameKey struct {
	First string
	Last  string
}

// NewNameKey lower-cases both parts of a name.
func NewNameKey(firstName, lastName string) NameKey {
	return NameKey{
		First: strings.ToLower(firstName),
		Last:  strings.ToLower(lastName),
	}
}

// IsZero reports whether either part of the name is missing.
func (k NameKey) IsZero() bool {
	return k.First == "" || k.Last == ""
}

func (k NameKey) String() string {
	return k.First + " " + k.Last
}

// AddressKey is the normalized form of a street address.
type AddressKey string

// NewAddressKey lower-cases an address.
func NewAddressKey(address string) AddressKey {
	return AddressKey(strings.ToLower(address))
}

// CityKey is the normalized form of a city name.
type CityKey string

// NewCityKey lower-cases a city name.
func NewCityKey(city string) CityKey {
	return CityKey(strings.ToLower(city))
}
