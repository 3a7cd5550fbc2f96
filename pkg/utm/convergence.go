package utm

import "math"

// Convergence returns the meridian convergence, in radians, at a projected
// point: the angle between grid north and true north. It is zero on the
// central meridian and grows with distance from it. Northing must not carry
// the southern false northing.
func Convergence(northing, easting float64) float64 {
	return WGS84.convergence(northing, easting)
}

func (e Ellipsoid) convergence(northing, easting float64) float64 {
	e2 := e.EccentricitySquared()

	mu := (northing / ScaleFactor) / e.rectifyingRadius()
	footLat := footprintSeriesOrder4(e.ThirdFlattening()).latitude(mu)

	sinFoot := math.Sin(footLat)
	tanFoot := math.Tan(footLat)
	w := 1.0 - e2*sinFoot*sinFoot

	ep := (easting - FalseEasting) / ScaleFactor
	n := e.a / math.Sqrt(w)
	m := e.a * (1.0 - e2) / math.Pow(w, 1.5)

	ratio := n / m
	q := ep / n

	conv1 := -q * tanFoot
	conv2 := (tanFoot * q * q * q / 3.0) * (-2.0*ratio*ratio + 3.0*ratio + tanFoot*tanFoot)
	return conv1 + conv2
}
