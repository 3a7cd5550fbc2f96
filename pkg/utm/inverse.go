package utm

import "math"

// Grid limits accepted by the inverse projection (metres).
const (
	minEasting  = 100000.0
	maxEasting  = 1000000.0
	minNorthing = 0.0
	maxNorthing = 10000000.0
)

// ToLatLon converts a UTM coordinate back to latitude and longitude in
// decimal degrees. The zone letter selects the hemisphere: letters from N
// upward are northern, and southern northings are expected to carry the
// 10,000,000 m false northing. Letters must be upper case.
func ToLatLon(easting, northing float64, zoneNumber int, zoneLetter byte) (latDeg, lonDeg float64, err error) {
	if err := validateGrid(easting, northing, zoneNumber); err != nil {
		return 0, 0, err
	}
	if zoneLetter < 'C' || zoneLetter > 'X' {
		return 0, 0, ErrZoneLetterOutOfRange
	}

	latDeg, lonDeg = WGS84.unproject(easting, northing, zoneNumber, zoneLetter >= 'N')
	return latDeg, lonDeg, nil
}

// ToLatLonHemisphere is ToLatLon for callers that know only the hemisphere,
// such as those holding an EPSG code.
func ToLatLonHemisphere(easting, northing float64, zoneNumber int, northern bool) (latDeg, lonDeg float64, err error) {
	if err := validateGrid(easting, northing, zoneNumber); err != nil {
		return 0, 0, err
	}

	latDeg, lonDeg = WGS84.unproject(easting, northing, zoneNumber, northern)
	return latDeg, lonDeg, nil
}

// validateGrid rejects NaN along with out-of-range values.
func validateGrid(easting, northing float64, zoneNumber int) error {
	if !(easting >= minEasting && easting < maxEasting) {
		return ErrEastingOutOfRange
	}
	if !(northing >= minNorthing && northing <= maxNorthing) {
		return ErrNorthingOutOfRange
	}
	if zoneNumber < 1 || zoneNumber > 60 {
		return ErrZoneNumOutOfRange
	}
	return nil
}

func (e Ellipsoid) unproject(easting, northing float64, zoneNumber int, northern bool) (latDeg, lonDeg float64) {
	e2 := e.EccentricitySquared()
	ep2 := e.SecondEccentricitySquared()

	x := easting - FalseEasting
	y := northing
	if !northern {
		y -= FalseNorthingSouth
	}

	mu := (y / ScaleFactor) / e.rectifyingRadius()
	footLat := footprintSeriesOrder5(e.ThirdFlattening()).latitude(mu)

	sinFoot := math.Sin(footLat)
	cosFoot := math.Cos(footLat)
	tanFoot := sinFoot / cosFoot
	t := tanFoot * tanFoot
	t2 := t * t

	w := 1.0 - e2*sinFoot*sinFoot
	n := e.a / math.Sqrt(w)
	r := (1.0 - e2) / w // ρ/N
	c := ep2 * cosFoot * cosFoot
	c2 := c * c

	d := x / (n * ScaleFactor)
	d2 := d * d
	d3 := d2 * d
	d4 := d3 * d
	d5 := d4 * d
	d6 := d5 * d

	lat := footLat - (tanFoot/r)*(d2/2.0-
		d4/24.0*(5.0+3.0*t+10.0*c-4.0*c2-9.0*ep2)+
		d6/720.0*(61.0+90.0*t+298.0*c+45.0*t2-252.0*ep2-3.0*c2))

	lon := (d -
		d3/6.0*(1.0+2.0*t+c) +
		d5/120.0*(5.0-2.0*c+28.0*t-3.0*c2+8.0*ep2+24.0*t2)) / cosFoot

	centralMeridian := float64(zoneNumber-1)*6.0 - 180.0 + 3.0
	return lat * 180.0 / math.Pi, lon*180.0/math.Pi + centralMeridian
}
