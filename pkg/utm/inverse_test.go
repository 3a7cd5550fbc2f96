package utm

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToLatLon_Reference(t *testing.T) {
	lat, lon, err := ToLatLon(313784, 5427057, 60, 'G')
	require.NoError(t, err)

	assert.InDelta(t, -41.28646, lat, 3e-5)
	assert.InDelta(t, 174.77624, lon, 3e-5)
}

func TestToLatLon_Anchorage(t *testing.T) {
	lat, lon, err := ToLatLon(385273.02, 6761077.20, 6, 'V')
	require.NoError(t, err)

	assert.InDelta(t, 60.9679875497, lat, 1e-5)
	assert.InDelta(t, -149.119325194, lon, 1e-5)
}

func TestToLatLon_Validation(t *testing.T) {
	tests := []struct {
		name     string
		easting  float64
		northing float64
		zone     int
		letter   byte
		expected error
	}{
		{name: "every field bad reports easting", easting: 50, northing: -1, zone: 61, letter: 'y', expected: ErrEastingOutOfRange},
		{name: "northing before zone and letter", easting: 500000, northing: -1, zone: 61, letter: 'y', expected: ErrNorthingOutOfRange},
		{name: "zone before letter", easting: 500000, northing: 5000000, zone: 61, letter: 'y', expected: ErrZoneNumOutOfRange},
		{name: "letter last", easting: 500000, northing: 5000000, zone: 33, letter: 'y', expected: ErrZoneLetterOutOfRange},

		{name: "easting below minimum", easting: 99999.99, northing: 5000000, zone: 33, letter: 'U', expected: ErrEastingOutOfRange},
		{name: "easting at upper bound", easting: 1000000, northing: 5000000, zone: 33, letter: 'U', expected: ErrEastingOutOfRange},
		{name: "easting nan", easting: math.NaN(), northing: 5000000, zone: 33, letter: 'U', expected: ErrEastingOutOfRange},
		{name: "northing negative", easting: 500000, northing: -0.01, zone: 33, letter: 'U', expected: ErrNorthingOutOfRange},
		{name: "northing above maximum", easting: 500000, northing: 10000000.01, zone: 33, letter: 'U', expected: ErrNorthingOutOfRange},
		{name: "northing nan", easting: 500000, northing: math.NaN(), zone: 33, letter: 'U', expected: ErrNorthingOutOfRange},
		{name: "zone zero", easting: 500000, northing: 5000000, zone: 0, letter: 'U', expected: ErrZoneNumOutOfRange},
		{name: "zone 61", easting: 500000, northing: 5000000, zone: 61, letter: 'U', expected: ErrZoneNumOutOfRange},
		{name: "letter below C", easting: 500000, northing: 5000000, zone: 33, letter: 'B', expected: ErrZoneLetterOutOfRange},
		{name: "letter above X", easting: 500000, northing: 5000000, zone: 33, letter: 'Y', expected: ErrZoneLetterOutOfRange},
		{name: "lower case letter", easting: 500000, northing: 5000000, zone: 33, letter: 'u', expected: ErrZoneLetterOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lon, err := ToLatLon(tt.easting, tt.northing, tt.zone, tt.letter)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.expected), "got %v, want %v", err, tt.expected)
			assert.Zero(t, lat)
			assert.Zero(t, lon)
		})
	}
}

func TestToLatLon_AcceptsBounds(t *testing.T) {
	tests := []struct {
		name     string
		easting  float64
		northing float64
		zone     int
		letter   byte
	}{
		{name: "minimum easting", easting: 100000, northing: 5000000, zone: 33, letter: 'U'},
		{name: "largest easting", easting: 999999.99, northing: 5000000, zone: 33, letter: 'U'},
		{name: "zero northing", easting: 500000, northing: 0, zone: 33, letter: 'N'},
		{name: "maximum northing", easting: 500000, northing: 10000000, zone: 33, letter: 'M'},
		{name: "first zone", easting: 500000, northing: 5000000, zone: 1, letter: 'U'},
		{name: "last zone", easting: 500000, northing: 5000000, zone: 60, letter: 'U'},
		{name: "first letter", easting: 500000, northing: 5000000, zone: 33, letter: 'C'},
		{name: "last letter", easting: 500000, northing: 5000000, zone: 33, letter: 'X'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ToLatLon(tt.easting, tt.northing, tt.zone, tt.letter)
			assert.NoError(t, err)
		})
	}
}

func TestToLatLon_HemisphereFromLetter(t *testing.T) {
	lat, lon, err := ToLatLon(500000, 0, 31, 'N')
	require.NoError(t, err)
	assert.InDelta(t, 0.0, lat, 1e-9)
	assert.InDelta(t, 3.0, lon, 1e-9)

	lat, lon, err = ToLatLon(500000, FalseNorthingSouth, 31, 'M')
	require.NoError(t, err)
	assert.InDelta(t, 0.0, lat, 1e-9)
	assert.InDelta(t, 3.0, lon, 1e-9)
}

func TestToLatLonHemisphere_MatchesLetter(t *testing.T) {
	lat1, lon1, err := ToLatLon(313784, 5427057, 60, 'G')
	require.NoError(t, err)
	lat2, lon2, err := ToLatLonHemisphere(313784, 5427057, 60, false)
	require.NoError(t, err)
	assert.Equal(t, lat1, lat2)
	assert.Equal(t, lon1, lon2)

	_, _, err = ToLatLonHemisphere(50, 5427057, 60, false)
	assert.ErrorIs(t, err, ErrEastingOutOfRange)
	_, _, err = ToLatLonHemisphere(313784, 5427057, 0, true)
	assert.ErrorIs(t, err, ErrZoneNumOutOfRange)
}
