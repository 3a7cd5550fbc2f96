package utm

import "github.com/rotisserie/eris"

// Input range violations reported by ToLatLon, checked in this order.
var (
	ErrEastingOutOfRange    = eris.New("utm: easting out of range, must be between 100000 m and 999999 m")
	ErrNorthingOutOfRange   = eris.New("utm: northing out of range, must be between 0 m and 10000000 m")
	ErrZoneNumOutOfRange    = eris.New("utm: zone number out of range, must be between 1 and 60")
	ErrZoneLetterOutOfRange = eris.New("utm: zone letter out of range, must be between C and X")
)
