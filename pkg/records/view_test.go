package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safetynet/alerts/pkg/model"
)

func TestAddressesForStation(t *testing.T) {
	s := New(model.Dataset{Firestations: []model.StationAssignment{
		{Address: "1509 Culver St", Station: "3"},
		{Address: "29 15th St", Station: "2"},
		{Address: "834 Binoc Ave", Station: "3"},
		{Address: "1509 Culver St", Station: "3"},
		{Address: "748 Townings Dr", Station: "03"},
	}})

	s.View(func(v *View) {
		assert.Equal(t, []string{"1509 Culver St", "834 Binoc Ave"}, v.AddressesForStation("3"))
		assert.Equal(t, []string{"748 Townings Dr"}, v.AddressesForStation("03"))
		assert.Empty(t, v.AddressesForStation("9"))
		assert.Equal(t, []string{"1509 Culver St", "29 15th St", "834 Binoc Ave"}, v.AddressesForStations([]string{"2", "3"}))
		assert.Empty(t, v.AddressesForStations(nil))
	})
}

func TestStationLookupsByAddress(t *testing.T) {
	s := New(model.Dataset{Firestations: []model.StationAssignment{
		{Address: "1509 Culver St", Station: "3"},
		{Address: "1509 CULVER ST", Station: "1"},
		{Address: "29 15th St", Station: "2"},
	}})

	s.View(func(v *View) {
		station, ok := v.StationForAddress("1509 culver st")
		require.True(t, ok)
		assert.Equal(t, "3", station)

		_, ok = v.StationForAddress("unknown")
		assert.False(t, ok)

		assert.Equal(t, []string{"3", "1", "2"}, v.StationsForAddresses([]string{"1509 Culver St", "29 15th st"}))
	})
}

func TestResidentsAt(t *testing.T) {
	s := New(fixture())

	s.View(func(v *View) {
		got := v.ResidentsAt("1509 CULVER st")
		require.Len(t, got, 2)
		assert.Equal(t, "John", got[0].FirstName)
		assert.Equal(t, "Tenley", got[1].FirstName)

		assert.Empty(t, v.ResidentsAt("1509 Culver"))
		assert.Len(t, v.ResidentsAtAny([]string{"1509 Culver St", "644 Gershwin Cir"}), 3)
		assert.Len(t, v.Residents(), 3)
	})
}

func TestMedicalRecordFor(t *testing.T) {
	s := New(fixture())
	require.NoError(t, s.AddMedicalRecord(model.MedicalRecord{FirstName: "John", LastName: "Boyd", Birthdate: "01/01/1900"}))

	s.View(func(v *View) {
		rec := v.MedicalRecordFor("JOHN", "boyd")
		require.NotNil(t, rec)
		assert.Equal(t, "03/06/1984", rec.Birthdate, "first match wins")

		rec.Medications[0] = "changed"
		assert.Equal(t, "aznol:350mg", v.MedicalRecordFor("John", "Boyd").Medications[0])

		assert.Nil(t, v.MedicalRecordFor("Peter", "Duncan"))
	})
}
