package age

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/safetynet/alerts/pkg/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 15, 30, 0, 0, time.Local)
}

func TestOf(t *testing.T) {
	today := day(2024, time.June, 15)

	tests := []struct {
		name      string
		birthdate string
		want      int
	}{
		{"exact anniversary", "06/15/1984", 40},
		{"day before anniversary", "06/16/1984", 39},
		{"birthday earlier this year", "01/01/2000", 24},
		{"birthday later this year", "12/31/2000", 23},
		{"born today", "06/15/2024", 0},
		{"fourteen", "03/06/2010", 14},
		{"leap day before march", "02/29/2008", 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Of(tt.birthdate, today)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOfLeapDayBirthday(t *testing.T) {
	got, err := Of("02/29/2008", day(2026, time.February, 28))
	require.NoError(t, err)
	assert.Equal(t, 17, got)

	got, err = Of("02/29/2008", day(2026, time.March, 1))
	require.NoError(t, err)
	assert.Equal(t, 18, got)
}

func TestOfFailures(t *testing.T) {
	today := day(2024, time.June, 15)

	for _, birthdate := range []string{"", "1984-06-15", "13/01/1984", "6/15/1984", "garbage"} {
		got, err := Of(birthdate, today)
		assert.Equal(t, Unknown, got, birthdate)
		assert.ErrorIs(t, err, ErrMalformedBirthdate, birthdate)
	}

}

func TestOfFutureBirthdateIsZero(t *testing.T) {
	today := day(2024, time.June, 15)

	for _, birthdate := range []string{"06/16/2024", "01/01/2030"} {
		got, err := Of(birthdate, today)
		require.NoError(t, err, birthdate)
		assert.Equal(t, 0, got, birthdate)
		assert.True(t, IsChild(got), birthdate)
	}
}

func TestCheck(t *testing.T) {
	today := day(2024, time.June, 15)

	assert.NoError(t, Check("06/15/2024", today))
	assert.ErrorIs(t, Check("2024-06-15", today), ErrMalformedBirthdate)
	assert.ErrorIs(t, Check("06/16/2024", today), ErrFutureBirthdate)
}

func TestIsChild(t *testing.T) {
	assert.True(t, IsChild(0))
	assert.True(t, IsChild(18))
	assert.False(t, IsChild(19))
	assert.False(t, IsChild(Unknown))
}

func TestCalculatorLogsUnusableBirthdates(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	calc := NewCalculator(func() time.Time { return day(2024, time.June, 15) }, zap.New(core))

	assert.Equal(t, 40, calc.Age("06/15/1984"))
	assert.Equal(t, 0, logs.Len())

	assert.Equal(t, Unknown, calc.Age("not a date"))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "not a date", logs.All()[0].ContextMap()["birthdate"])

	assert.Equal(t, Unknown, calc.AgeOf(nil))
	assert.Equal(t, 40, calc.AgeOf(&model.MedicalRecord{Birthdate: "06/15/1984"}))
}

func TestNewCalculatorDefaults(t *testing.T) {
	calc := NewCalculator(nil, nil)
	born := time.Now().AddDate(-30, 0, -1).Format(model.BirthdateLayout)
	assert.Equal(t, 30, calc.Age(born))
}
