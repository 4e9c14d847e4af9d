package alerts

import (
	"time"

	"go.uber.org/zap"

	"github.com/safetynet/alerts/pkg/age"
	"github.com/safetynet/alerts/pkg/model"
	"github.com/safetynet/alerts/pkg/records"
)

// Viewer gives read access to the record collections.
type Viewer interface {
	View(fn func(v *records.View))
}

// Engine runs the alert queries against a record store.
type Engine struct {
	store  Viewer
	now    func() time.Time
	logger *zap.Logger
	ages   *age.Calculator
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the clock used as "today" for age computation.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithLogger sets the engine's logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates an engine reading from store.
func NewEngine(store Viewer, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	e.ages = age.NewCalculator(e.now, e.logger)
	return e
}

// CommunityEmails returns the distinct emails of residents whose city
// matches, in first-occurrence order.
func (e *Engine) CommunityEmails(city string) []string {
	emails := []string{}
	wanted := model.NewCityKey(city)
	e.store.View(func(v *records.View) {
		seen := make(map[string]struct{})
		for _, r := range v.Residents() {
			if !r.InCity(wanted) {
				continue
			}
			if _, dup := seen[r.Email]; dup {
				continue
			}
			seen[r.Email] = struct{}{}
			emails = append(emails, r.Email)
		}
	})
	e.logger.Debug("community emails", zap.String("city", city), zap.Int("count", len(emails)))
	return emails
}

// PhoneAlert returns the distinct phone numbers of residents living at an
// address served by station, in first-occurrence order.
func (e *Engine) PhoneAlert(station string) []string {
	phones := []string{}
	e.store.View(func(v *records.View) {
		addresses := v.AddressesForStation(station)
		seen := make(map[string]struct{})
		for _, r := range v.ResidentsAtAny(addresses) {
			if _, dup := seen[r.Phone]; dup {
				continue
			}
			seen[r.Phone] = struct{}{}
			phones = append(phones, r.Phone)
		}
	})
	e.logger.Debug("phone alert", zap.String("station", station), zap.Int("count", len(phones)))
	return phones
}

// ChildAlert splits the residents of address that have a medical record into
// minors and other household members. Residents without a record are left
// out of both lists.
func (e *Engine) ChildAlert(address string) ChildAlert {
	out := ChildAlert{Children: []HouseholdMember{}, HouseholdMembers: []HouseholdMember{}}
	e.store.View(func(v *records.View) {
		for _, r := range v.ResidentsAt(address) {
			rec := v.MedicalRecordFor(r.FirstName, r.LastName)
			if rec == nil {
				continue
			}
			m := HouseholdMember{FirstName: r.FirstName, LastName: r.LastName, Age: e.ages.AgeOf(rec)}
			if age.IsChild(m.Age) {
				out.Children = append(out.Children, m)
			} else {
				out.HouseholdMembers = append(out.HouseholdMembers, m)
			}
		}
	})
	e.logger.Debug("child alert",
		zap.String("address", address),
		zap.Int("children", len(out.Children)),
		zap.Int("adults", len(out.HouseholdMembers)),
	)
	return out
}

// StationCoverage lists every resident living at an address served by
// station, with adult and child tallies. Residents of unknown age count as
// adults.
func (e *Engine) StationCoverage(station string) StationCoverage {
	out := StationCoverage{Persons: []CoveredPerson{}}
	e.store.View(func(v *records.View) {
		for _, r := range v.ResidentsAtAny(v.AddressesForStation(station)) {
			out.Persons = append(out.Persons, CoveredPerson{
				FirstName: r.FirstName,
				LastName:  r.LastName,
				Address:   r.Address,
				Phone:     r.Phone,
			})
			if age.IsChild(e.ages.AgeOf(v.MedicalRecordFor(r.FirstName, r.LastName))) {
				out.ChildCount++
			} else {
				out.AdultCount++
			}
		}
	})
	e.logger.Debug("station coverage",
		zap.String("station", station),
		zap.Int("persons", len(out.Persons)),
		zap.Int("adults", out.AdultCount),
		zap.Int("children", out.ChildCount),
	)
	return out
}

// FireInfo returns the station serving address and its residents.
func (e *Engine) FireInfo(address string) FireInfo {
	out := FireInfo{Station: UnknownStation}
	e.store.View(func(v *records.View) {
		if station, ok := v.StationForAddress(address); ok {
			out.Station = station
		}
		out.Residents = e.household(v, address)
	})
	e.logger.Debug("fire info",
		zap.String("address", address),
		zap.String("station", out.Station),
		zap.Int("residents", len(out.Residents)),
	)
	return out
}

// FloodInfo returns the households of every address served by any of the
// given stations, including addresses with no residents.
func (e *Engine) FloodInfo(stations []string) FloodInfo {
	out := FloodInfo{}
	e.store.View(func(v *records.View) {
		for _, address := range v.AddressesForStations(stations) {
			out[address] = e.household(v, address)
		}
	})
	e.logger.Debug("flood info", zap.Strings("stations", stations), zap.Int("households", len(out)))
	return out
}

// PersonInfo returns the profile of every resident with the given last name.
func (e *Engine) PersonInfo(lastName string) []PersonInfo {
	out := []PersonInfo{}
	wanted := model.NewNameKey("", lastName).Last
	e.store.View(func(v *records.View) {
		for _, r := range v.Residents() {
			if r.Key().Last != wanted {
				continue
			}
			rec := v.MedicalRecordFor(r.FirstName, r.LastName)
			out = append(out, PersonInfo{
				FirstName: r.FirstName,
				LastName:  r.LastName,
				Address:   r.Address,
				Email:     r.Email,
				Age:       e.ages.AgeOf(rec),
				Medical:   medicalOf(rec),
			})
		}
	})
	e.logger.Debug("person info", zap.String("lastName", lastName), zap.Int("count", len(out)))
	return out
}

func (e *Engine) household(v *records.View, address string) []ResidentHealth {
	residents := []ResidentHealth{}
	for _, r := range v.ResidentsAt(address) {
		rec := v.MedicalRecordFor(r.FirstName, r.LastName)
		residents = append(residents, ResidentHealth{
			Name:    r.FullName(),
			Phone:   r.Phone,
			Age:     e.ages.AgeOf(rec),
			Medical: medicalOf(rec),
		})
	}
	return residents
}

func medicalOf(rec *model.MedicalRecord) *Medical {
	if rec == nil {
		return nil
	}
	m := &Medical{Medications: rec.Medications, Allergies: rec.Allergies}
	if m.Medications == nil {
		m.Medications = []string{}
	}
	if m.Allergies == nil {
		m.Allergies = []string{}
	}
	return m
}
