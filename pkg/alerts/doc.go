// Package alerts answers the emergency-response queries of the service.
//
// An Engine composes the join lookups of a records.View with the age
// calculator to build the seven read-only views:
//
//   - CommunityEmails: distinct emails of residents of a city
//   - PhoneAlert: distinct phone numbers of residents served by a station
//   - ChildAlert: minors and other household members at an address
//   - StationCoverage: residents served by a station with adult/child tallies
//   - FireInfo: station and residents (with medical details) at an address
//   - FloodInfo: households served by a set of stations
//   - PersonInfo: residents sharing a last name, with medical details
//
// Every query runs under the store's read lock and never mutates it. A
// resident without a medical record is never an error: its age is
// age.Unknown (counted as an adult) and its medical details are nil.
package alerts
