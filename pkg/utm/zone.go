package utm

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

// Latitude band letters, 8 degrees each from 80°S. The trailing duplicate X
// widens the top band to 84°N.
const zoneLetters = "CDEFGHJKLMNPQRSTUVWXX"

// Latitude limits of the lettered UTM bands (degrees).
const (
	minBandLatitude = -80.0
	maxBandLatitude = 84.0
)

// ZoneNumber returns the UTM zone number for a position in degrees. The
// Norway (zone 32) and Svalbard (zones 31, 33, 35, 37) exceptions are applied
// before the regular 6-degree numbering.
func ZoneNumber(latDeg, lonDeg float64) int {
	if latDeg >= 56 && latDeg < 64 && lonDeg >= 3 && lonDeg < 12 {
		return 32
	}

	if latDeg >= 72 && latDeg <= 84 && lonDeg >= 0 {
		switch {
		case lonDeg < 9:
			return 31
		case lonDeg < 21:
			return 33
		case lonDeg < 33:
			return 35
		case lonDeg < 42:
			return 37
		}
	}

	return int(math.Floor((lonDeg+180)/6)) + 1
}

// ZoneLetter returns the latitude band letter for latDeg. The second return
// value is false outside [-80, 84], where UTM bands are undefined.
func ZoneLetter(latDeg float64) (byte, bool) {
	if !(latDeg >= minBandLatitude && latDeg <= maxBandLatitude) {
		return 0, false
	}
	idx := int(math.Floor((latDeg - minBandLatitude) / 8))
	return zoneLetters[idx], true
}

// Zone identifies a UTM zone and latitude band, e.g. 33U.
type Zone struct {
	Number int
	Letter byte
}

// ZoneOf resolves the zone number and letter for a position in degrees. The
// second return value is false when the latitude has no band letter.
func ZoneOf(latDeg, lonDeg float64) (Zone, bool) {
	letter, ok := ZoneLetter(latDeg)
	return Zone{Number: ZoneNumber(latDeg, lonDeg), Letter: letter}, ok
}

// ParseZone parses a zone designator such as "33U" or "60g". The letter is
// upper-cased; range checks are left to ToLatLon.
func ParseZone(s string) (Zone, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Zone{}, eris.Errorf("utm: invalid zone %q", s)
	}

	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil {
		return Zone{}, eris.Wrapf(err, "utm: invalid zone number in %q", s)
	}

	letter := s[len(s)-1]
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}

	return Zone{Number: n, Letter: letter}, nil
}

// Northern reports whether the band lies in the northern hemisphere.
func (z Zone) Northern() bool {
	return z.Letter >= 'N'
}

// CentralMeridian returns the zone's central meridian in degrees.
func (z Zone) CentralMeridian() float64 {
	return float64(z.Number)*6 - 183
}

// String returns the zone designator, e.g. "33U". A zone without a letter
// renders as the bare number.
func (z Zone) String() string {
	if z.Letter == 0 {
		return strconv.Itoa(z.Number)
	}
	return fmt.Sprintf("%d%c", z.Number, z.Letter)
}
