package utm

import "math"

// WGS84 defining parameters.
const (
	SemiMajorAxis = 6378137.0 // metres
	Flattening    = 1.0 / 298.257222101
)

// Projection constants shared by every UTM zone.
const (
	ScaleFactor        = 0.9996
	FalseEasting       = 500000.0
	FalseNorthingSouth = 10000000.0
)

// Ellipsoid is an immutable reference ellipsoid described by its semi-major
// axis and flattening. WGS84 is the only instance.
type Ellipsoid struct {
	a float64
	f float64
}

// WGS84 is the World Geodetic System 1984 ellipsoid.
var WGS84 = Ellipsoid{a: SemiMajorAxis, f: Flattening}

// SemiMajorAxis returns the equatorial radius in metres.
func (e Ellipsoid) SemiMajorAxis() float64 { return e.a }

// Flattening returns the flattening f.
func (e Ellipsoid) Flattening() float64 { return e.f }

// EccentricitySquared returns e² = 2f − f².
func (e Ellipsoid) EccentricitySquared() float64 {
	return 2.0*e.f - e.f*e.f
}

// SecondEccentricitySquared returns e'² = e²/(1 − e²).
func (e Ellipsoid) SecondEccentricitySquared() float64 {
	e2 := e.EccentricitySquared()
	return e2 / (1.0 - e2)
}

// ThirdFlattening returns e1 = (1 − √(1−e²)) / (1 + √(1−e²)), the parameter of
// the footprint latitude series.
func (e Ellipsoid) ThirdFlattening() float64 {
	s := math.Sqrt(1.0 - e.EccentricitySquared())
	return (1.0 - s) / (1.0 + s)
}

// rectifyingRadius returns a·(1 − e²/4 − 3e⁴/64 − 5e⁶/256), which turns a
// meridional arc length into the rectifying latitude μ.
func (e Ellipsoid) rectifyingRadius() float64 {
	e2 := e.EccentricitySquared()
	return e.a * (1.0 - e2/4.0 - 3.0*e2*e2/64.0 - 5.0*e2*e2*e2/256.0)
}

// meridionalArc returns the distance along a meridian from the equator to
// latitude phi (radians).
func (e Ellipsoid) meridionalArc(phi float64) float64 {
	e2 := e.EccentricitySquared()

	term1 := 1.0 - e2/4.0 - (3.0*e2*e2)/64.0 - (5.0*e2*e2*e2)/256.0
	term2 := (3.0*e2)/8.0 + (3.0*e2*e2)/32.0 + (45.0*e2*e2*e2)/1024.0
	term3 := (15.0*e2*e2)/256.0 + (45.0*e2*e2*e2)/1024.0
	term4 := (35.0 * e2 * e2 * e2) / 3072.0

	return e.a * (term1*phi - term2*math.Sin(2.0*phi) + term3*math.Sin(4.0*phi) - term4*math.Sin(6.0*phi))
}
