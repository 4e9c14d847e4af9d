package records

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safetynet/alerts/pkg/model"
)

func fixture() model.Dataset {
	return model.Dataset{
		Persons: []model.Resident{
			{FirstName: "John", LastName: "Boyd", Address: "1509 Culver St", City: "Culver", Zip: "97451", Phone: "841-874-6512", Email: "jaboyd@email.com"},
			{FirstName: "Tenley", LastName: "Boyd", Address: "1509 Culver St", City: "Culver", Zip: "97451", Phone: "841-874-6512", Email: "tenz@email.com"},
			{FirstName: "Peter", LastName: "Duncan", Address: "644 Gershwin Cir", City: "Culver", Zip: "97451", Phone: "841-874-6512", Email: "jaboyd@email.com"},
		},
		Firestations: []model.StationAssignment{
			{Address: "1509 Culver St", Station: "3"},
			{Address: "644 Gershwin Cir", Station: "1"},
		},
		MedicalRecords: []model.MedicalRecord{
			{FirstName: "John", LastName: "Boyd", Birthdate: "03/06/1984", Medications: []string{"aznol:350mg"}, Allergies: []string{"nillacilan"}},
			{FirstName: "Tenley", LastName: "Boyd", Birthdate: "02/18/2012", Allergies: []string{"peanut"}},
		},
	}
}

func TestNewCopiesDataset(t *testing.T) {
	data := fixture()
	s := New(data)

	data.Persons[0].FirstName = "Changed"
	data.MedicalRecords[0].Medications[0] = "changed"

	assert.Equal(t, "John", s.Residents()[0].FirstName)
	assert.Equal(t, "aznol:350mg", s.MedicalRecords()[0].Medications[0])
	assert.Equal(t, Counts{Residents: 3, Stations: 2, MedicalRecords: 2}, s.Counts())
}

func TestListsDoNotAliasStore(t *testing.T) {
	s := New(fixture())

	residents := s.Residents()
	residents[0].Phone = "000"
	stations := s.Stations()
	stations[0].Station = "9"
	medical := s.MedicalRecords()
	medical[0].Allergies[0] = "none"

	assert.Equal(t, "841-874-6512", s.Residents()[0].Phone)
	assert.Equal(t, "3", s.Stations()[0].Station)
	assert.Equal(t, "nillacilan", s.MedicalRecords()[0].Allergies[0])
}

func TestAddResidentAllowsDuplicates(t *testing.T) {
	s := New(fixture())

	require.NoError(t, s.AddResident(model.Resident{FirstName: "john", LastName: "BOYD", Address: "elsewhere"}))

	assert.Len(t, s.Residents(), 4)
}

func TestAddRejectsMissingKeys(t *testing.T) {
	s := New(model.Dataset{})

	err := s.AddResident(model.Resident{FirstName: "John"})
	assert.ErrorIs(t, err, ErrMissingKey)
	assert.Contains(t, err.Error(), "lastName")

	err = s.AddStation(model.StationAssignment{Station: "1"})
	assert.ErrorIs(t, err, ErrMissingKey)
	assert.Contains(t, err.Error(), "address")

	err = s.AddMedicalRecord(model.MedicalRecord{LastName: "Boyd"})
	assert.ErrorIs(t, err, ErrMissingKey)
	assert.Contains(t, err.Error(), "firstName")

	assert.Equal(t, Counts{}, s.Counts())
}

func TestUpdateResident(t *testing.T) {
	s := New(fixture())

	found, err := s.UpdateResident(model.Resident{FirstName: "JOHN", LastName: "boyd", Address: "29 15th St", City: "Culver", Zip: "97451", Phone: "111", Email: "new@email.com"})
	require.NoError(t, err)
	assert.True(t, found)

	got := s.Residents()[0]
	assert.Equal(t, "John", got.FirstName, "names are part of the key and stay untouched")
	assert.Equal(t, "29 15th St", got.Address)
	assert.Equal(t, "111", got.Phone)
	assert.Equal(t, "new@email.com", got.Email)

	found, err = s.UpdateResident(model.Resident{FirstName: "Nobody", LastName: "Here"})
	require.NoError(t, err)
	assert.False(t, found)

	_, err = s.UpdateResident(model.Resident{LastName: "Boyd"})
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestUpdateTouchesFirstMatchOnly(t *testing.T) {
	s := New(fixture())
	require.NoError(t, s.AddResident(model.Resident{FirstName: "John", LastName: "Boyd", Phone: "shadow"}))

	found, err := s.UpdateResident(model.Resident{FirstName: "John", LastName: "Boyd", Phone: "updated"})
	require.NoError(t, err)
	require.True(t, found)

	residents := s.Residents()
	assert.Equal(t, "updated", residents[0].Phone)
	assert.Equal(t, "shadow", residents[3].Phone)
}

func TestDeleteResidentRemovesAllMatches(t *testing.T) {
	s := New(fixture())
	require.NoError(t, s.AddResident(model.Resident{FirstName: "JOHN", LastName: "BOYD"}))

	removed, err := s.DeleteResident("john", "boyd")
	require.NoError(t, err)
	assert.True(t, removed)

	for _, r := range s.Residents() {
		assert.NotEqual(t, model.NewNameKey("john", "boyd"), r.Key())
	}
	assert.Len(t, s.Residents(), 2)

	removed, err = s.DeleteResident("john", "boyd")
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = s.DeleteResident("", "")
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestStationMutations(t *testing.T) {
	s := New(fixture())

	require.NoError(t, s.AddStation(model.StationAssignment{Address: "834 Binoc Ave", Station: "3"}))
	assert.Len(t, s.Stations(), 3)

	found, err := s.UpdateStation(model.StationAssignment{Address: "1509 CULVER ST", Station: "2"})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "2", s.Stations()[0].Station)
	assert.Equal(t, "1509 Culver St", s.Stations()[0].Address)

	found, err = s.UpdateStation(model.StationAssignment{Address: "nowhere", Station: "2"})
	require.NoError(t, err)
	assert.False(t, found)

	removed, err := s.DeleteStation("644 gershwin cir")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Len(t, s.Stations(), 2)

	removed, err = s.DeleteStation("644 gershwin cir")
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = s.UpdateStation(model.StationAssignment{Station: "2"})
	assert.ErrorIs(t, err, ErrMissingKey)
	_, err = s.DeleteStation("")
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestMedicalRecordMutations(t *testing.T) {
	s := New(fixture())

	meds := []string{"hydrapermazol:100mg"}
	found, err := s.UpdateMedicalRecord(model.MedicalRecord{FirstName: "tenley", LastName: "boyd", Birthdate: "02/18/2013", Medications: meds})
	require.NoError(t, err)
	require.True(t, found)
	meds[0] = "mutated by caller"

	got := s.MedicalRecords()[1]
	assert.Equal(t, "02/18/2013", got.Birthdate)
	assert.Equal(t, []string{"hydrapermazol:100mg"}, got.Medications)
	assert.Nil(t, got.Allergies)

	found, err = s.UpdateMedicalRecord(model.MedicalRecord{FirstName: "Peter", LastName: "Duncan"})
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.AddMedicalRecord(model.MedicalRecord{FirstName: "Peter", LastName: "Duncan", Birthdate: "09/06/2000"}))
	removed, err := s.DeleteMedicalRecord("PETER", "duncan")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Len(t, s.MedicalRecords(), 2)

	_, err = s.DeleteMedicalRecord("Peter", "")
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestReplace(t *testing.T) {
	s := New(fixture())

	s.Replace(model.Dataset{Persons: []model.Resident{{FirstName: "Only", LastName: "One"}}})

	assert.Equal(t, Counts{Residents: 1}, s.Counts())
}

func TestConcurrentReadsAndWrites(t *testing.T) {
	s := New(fixture())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				name := fmt.Sprintf("w%d-%d", i, j)
				_ = s.AddResident(model.Resident{FirstName: name, LastName: "Load", Address: "1509 Culver St"})
				_, _ = s.DeleteResident(name, "Load")
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s.View(func(v *View) {
					for _, r := range v.ResidentsAt("1509 Culver St") {
						assert.NotEmpty(t, r.LastName)
					}
				})
			}
		}()
	}
	wg.Wait()

	assert.Len(t, s.Residents(), 3)
}
