package geo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureTable(t *testing.T) *PostalTable {
	t.Helper()
	table, err := NewPostalTable([]PostalArea{
		{Code: "44111", Coordinate: Coordinate{Latitude: 41.4571, Longitude: -81.7848}, City: "Cleveland", Region: "OH"},
		{Code: "43215", Coordinate: Coordinate{Latitude: 39.9670, Longitude: -83.0045}, City: "Columbus", Region: "OH"},
	})
	require.NoError(t, err)
	return table
}

func TestPostalTableResolve(t *testing.T) {
	table := fixtureTable(t)

	area, ok, err := table.Resolve("44111")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Cleveland", area.City)
	assert.Equal(t, "OH", area.Region)
	assert.Equal(t, 41.4571, area.Coordinate.Latitude)
}

func TestPostalTableResolveUnknown(t *testing.T) {
	table := fixtureTable(t)

	area, ok, err := table.Resolve("00000")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, PostalArea{}, area)
}

func TestPostalTableResolveMalformed(t *testing.T) {
	table := fixtureTable(t)

	for _, code := range []string{"abc12", "4411", "441111", "", " 44111", "44111-1234", "４４１１１"} {
		_, ok, err := table.Resolve(code)
		assert.ErrorIs(t, err, ErrInvalidPostalCode, "code %q", code)
		assert.False(t, ok)
	}
}

func TestPostalTableNoPrefixMatch(t *testing.T) {
	table := fixtureTable(t)

	_, ok, err := table.Resolve("44110")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewPostalTableRejectsBadRecords(t *testing.T) {
	_, err := NewPostalTable([]PostalArea{{Code: "4411"}})
	assert.ErrorIs(t, err, ErrInvalidPostalCode)

	_, err = NewPostalTable([]PostalArea{{Code: "44111", Coordinate: Coordinate{Latitude: 120}}})
	assert.Error(t, err)
}

func TestDefaultPostalTable(t *testing.T) {
	table := DefaultPostalTable()
	assert.Greater(t, table.Len(), 10)

	_, ok, err := table.Resolve("44111")
	require.NoError(t, err)
	assert.True(t, ok)

	_, ok, err = table.Resolve("00000")
	require.NoError(t, err)
	assert.False(t, ok)

	codes := table.Codes()
	assert.True(t, strings.Compare(codes[0], codes[len(codes)-1]) < 0)
}

func TestLoadGeoNames(t *testing.T) {
	data := strings.Join([]string{
		"US\t44111\tCleveland\tOhio\tOH\tCuyahoga\t035\t\t\t41.4571\t-81.7848\t4",
		"US\t43215\tColumbus\tOhio\tOH\tFranklin\t049\t\t\t39.967\t-83.0045\t4",
		"US\tABCDE\tNowhere\tOhio\tOH\t\t\t\t\t41.0\t-81.0\t4",
		"US\t44999\tBadLat\tOhio\tOH\t\t\t\t\tnorth\t-81.0\t4",
		"US\t44998\tShort row",
	}, "\n")

	areas, stats, err := LoadGeoNames(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Loaded)
	assert.Equal(t, 3, stats.Skipped)
	require.Len(t, areas, 2)
	assert.Equal(t, PostalArea{
		Code:       "44111",
		Coordinate: Coordinate{Latitude: 41.4571, Longitude: -81.7848},
		City:       "Cleveland",
		Region:     "OH",
	}, areas[0])
}

func TestLoadGeoNamesFileMissing(t *testing.T) {
	_, _, err := LoadGeoNamesFile("does-not-exist.txt")
	assert.Error(t, err)
}
