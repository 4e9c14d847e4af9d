package model

// Resident is a person record with contact and location fields.
type Resident struct {
	FirstName string `json:"firstName" yaml:"firstName"`
	LastName  string `json:"lastName" yaml:"lastName"`
	Address   string `json:"address" yaml:"address"`
	City      string `json:"city" yaml:"city"`
	Zip       string `json:"zip" yaml:"zip"`
	Phone     string `json:"phone" yaml:"phone"`
	Email     string `json:"email" yaml:"email"`
}

// Key returns the normalized natural key of the resident.
func (r Resident) Key() NameKey {
	return NewNameKey(r.FirstName, r.LastName)
}

// FullName returns "first last".
func (r Resident) FullName() string {
	return r.FirstName + " " + r.LastName
}

// InCity reports whether the resident's city matches city, ignoring case.
func (r Resident) InCity(city CityKey) bool {
	return NewCityKey(r.City) == city
}

// LivesAt reports whether the resident's address matches addr, ignoring case.
func (r Resident) LivesAt(addr AddressKey) bool {
	return NewAddressKey(r.Address) == addr
}
