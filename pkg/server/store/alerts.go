package store

import "github.com/safetynet/alerts/pkg/alerts"

// AlertsStore runs the read-only alert queries.
type AlertsStore interface {
	CommunityEmails(city string) []string
	PhoneAlert(station string) []string
	ChildAlert(address string) alerts.ChildAlert
	StationCoverage(station string) alerts.StationCoverage
	FireInfo(address string) alerts.FireInfo
	FloodInfo(stations []string) alerts.FloodInfo
	PersonInfo(lastName string) []alerts.PersonInfo
}
