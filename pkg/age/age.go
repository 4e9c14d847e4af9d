package age

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/safetynet/alerts/pkg/model"
)

// Unknown is returned when a birthdate cannot be turned into an age.
const Unknown = -1

// ChildAgeLimit is the highest age still counted as a minor.
const ChildAgeLimit = 18

var (
	// ErrMalformedBirthdate is returned when a birthdate is not in MM/DD/YYYY form.
	ErrMalformedBirthdate = errors.New("malformed birthdate")

	// ErrFutureBirthdate is reported by Check when a birthdate lies after the
	// reference day.
	ErrFutureBirthdate = errors.New("birthdate is in the future")
)

// Of returns the number of whole years elapsed between birthdate and today.
// A birthdate after today is not an error: it yields 0, so the person still
// counts as a minor. Only a malformed birthdate returns Unknown.
func Of(birthdate string, today time.Time) (int, error) {
	born, err := time.Parse(model.BirthdateLayout, birthdate)
	if err != nil {
		return Unknown, fmt.Errorf("%w: %q", ErrMalformedBirthdate, birthdate)
	}

	y, m, d := today.Date()
	if isFuture(born, y, m, d) {
		return 0, nil
	}

	years := y - born.Year()
	if m < born.Month() || (m == born.Month() && d < born.Day()) {
		years--
	}
	return years, nil
}

// Check reports whether birthdate is usable: well formed and not after today.
func Check(birthdate string, today time.Time) error {
	born, err := time.Parse(model.BirthdateLayout, birthdate)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrMalformedBirthdate, birthdate)
	}
	y, m, d := today.Date()
	if isFuture(born, y, m, d) {
		return fmt.Errorf("%w: %q", ErrFutureBirthdate, birthdate)
	}
	return nil
}

func isFuture(born time.Time, y int, m time.Month, d int) bool {
	return born.After(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// IsChild reports whether a computed age counts as a minor. Unknown ages
// are adults.
func IsChild(age int) bool {
	return age >= 0 && age <= ChildAgeLimit
}

// Calculator computes ages relative to a clock and logs birthdates it
// cannot use.
type Calculator struct {
	now    func() time.Time
	logger *zap.Logger
}

// NewCalculator returns a calculator. A nil clock means time.Now, a nil
// logger discards output.
func NewCalculator(now func() time.Time, logger *zap.Logger) *Calculator {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{now: now, logger: logger}
}

// Age returns the age for birthdate, or Unknown.
func (c *Calculator) Age(birthdate string) int {
	years, err := Of(birthdate, c.now())
	if err != nil {
		c.logger.Warn("unable to compute age", zap.String("birthdate", birthdate), zap.Error(err))
	}
	return years
}

// AgeOf returns the age recorded by an optional medical record; a missing
// record yields Unknown.
func (c *Calculator) AgeOf(record *model.MedicalRecord) int {
	if record == nil {
		return Unknown
	}
	return c.Age(record.Birthdate)
}
