package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var samplePoints = []Coordinate{
	{Latitude: 41.4571, Longitude: -81.7848},
	{Latitude: 39.9670, Longitude: -83.0045},
	{Latitude: 0, Longitude: 0},
	{Latitude: -33.8688, Longitude: 151.2093},
	{Latitude: 90, Longitude: 0},
	{Latitude: -90, Longitude: 180},
	{Latitude: 51.5074, Longitude: -0.1278},
	{Latitude: 35.6762, Longitude: 139.6503},
}

func TestDistanceMilesSymmetric(t *testing.T) {
	for _, a := range samplePoints {
		for _, b := range samplePoints {
			assert.Equal(t, DistanceMiles(a, b), DistanceMiles(b, a), "a=%v b=%v", a, b)
		}
	}
}

func TestDistanceMilesIdentity(t *testing.T) {
	for _, a := range samplePoints {
		assert.Equal(t, 0.0, DistanceMiles(a, a), "a=%v", a)
	}
}

func TestDistanceMilesOneDegree(t *testing.T) {
	oneDegree := EarthRadiusMiles * math.Pi / 180

	alongMeridian := DistanceMiles(Coordinate{Latitude: 10, Longitude: 20}, Coordinate{Latitude: 11, Longitude: 20})
	assert.InDelta(t, oneDegree, alongMeridian, 1e-9)

	alongEquator := DistanceMiles(Coordinate{Latitude: 0, Longitude: 20}, Coordinate{Latitude: 0, Longitude: 21})
	assert.InDelta(t, oneDegree, alongEquator, 1e-9)
}

func TestDistanceMilesAntipodal(t *testing.T) {
	d := DistanceMiles(Coordinate{Latitude: 0, Longitude: 0}, Coordinate{Latitude: 0, Longitude: 180})
	assert.InDelta(t, EarthRadiusMiles*math.Pi, d, 1e-6)
	assert.False(t, math.IsNaN(d))
}

func TestDistanceMilesClevelandToColumbus(t *testing.T) {
	cleveland := Coordinate{Latitude: 41.4993, Longitude: -81.6944}
	columbus := Coordinate{Latitude: 39.9612, Longitude: -82.9988}

	// roughly 125 miles as the crow flies
	assert.InDelta(t, 125, DistanceMiles(cleveland, columbus), 5)
}

func TestCoordinateValidate(t *testing.T) {
	tests := []struct {
		name    string
		coord   Coordinate
		wantErr bool
	}{
		{"origin", Coordinate{}, false},
		{"north pole", Coordinate{Latitude: 90, Longitude: 0}, false},
		{"date line", Coordinate{Latitude: 0, Longitude: -180}, false},
		{"latitude too high", Coordinate{Latitude: 90.1}, true},
		{"longitude too low", Coordinate{Longitude: -180.5}, true},
		{"nan", Coordinate{Latitude: math.NaN()}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.coord.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMilesToKilometers(t *testing.T) {
	assert.InDelta(t, 16.09344, MilesToKilometers(10), 1e-9)
}
