package utm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	offsets := []float64{-2.9, -1.5, 0, 1.5, 2.9}

	for zone := 1; zone <= 60; zone++ {
		cm := Zone{Number: zone}.CentralMeridian()

		for lat := -80.0; lat <= 84.0; lat += 4 {
			letter, ok := ZoneLetter(lat)
			require.True(t, ok)

			for _, off := range offsets {
				lon := cm + off

				northing, easting, _ := ToUTM(lat, lon, zone)
				if letter < 'N' {
					northing += FalseNorthingSouth
				}

				gotLat, gotLon, err := ToLatLon(easting, northing, zone, letter)
				require.NoError(t, err, "zone %d lat %v lon %v", zone, lat, lon)
				assert.InDelta(t, lat, gotLat, 1e-4, "latitude, zone %d lat %v lon %v", zone, lat, lon)
				assert.InDelta(t, lon, gotLon, 1e-4, "longitude, zone %d lat %v lon %v", zone, lat, lon)
			}
		}
	}
}
