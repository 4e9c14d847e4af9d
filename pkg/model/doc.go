// Package model defines the records held by the SafetyNet alert store.
//
// The store keeps three flat collections that are joined on shared keys:
//
//   - Resident: a person with contact and location fields
//   - StationAssignment: maps a street address to a fire station
//   - MedicalRecord: birthdate, medications and allergies for a person
//
// # Natural Keys
//
// Entities are identified by case-insensitive natural keys rather than
// surrogate IDs. Residents and medical records are keyed by the
// (firstName, lastName) pair, station assignments by address. NameKey and
// AddressKey hold the normalized (lower-cased) form used for every comparison.
//
// Keys are not enforced to be unique: inserting a second record with an
// existing key is allowed, and lookups take the first match.
package model
