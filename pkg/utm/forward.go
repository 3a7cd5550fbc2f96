package utm

import "math"

// ToUTM projects a latitude and longitude in decimal degrees into the given
// UTM zone. The southern false northing is not applied: points south of the
// equator have a negative northing.
func ToUTM(latDeg, lonDeg float64, zone int) (northing, easting, convergence float64) {
	return RadiansToUTM(latDeg*math.Pi/180.0, lonDeg*math.Pi/180.0, zone)
}

// ToUTMNoZone projects a latitude and longitude in decimal degrees into the
// zone returned by ZoneNumber.
func ToUTMNoZone(latDeg, lonDeg float64) (northing, easting, convergence float64) {
	return ToUTM(latDeg, lonDeg, ZoneNumber(latDeg, lonDeg))
}

// RadiansToUTM projects a latitude and longitude in radians into the given
// UTM zone. The meridian convergence of the resulting point is returned in
// radians.
func RadiansToUTM(latRad, lonRad float64, zone int) (northing, easting, convergence float64) {
	northing, easting = WGS84.project(latRad, lonRad, zone)
	return northing, easting, WGS84.convergence(northing, easting)
}

func (e Ellipsoid) project(lat, lon float64, zone int) (northing, easting float64) {
	lonOrigin := float64(zone)*6.0 - 183.0
	e2 := e.EccentricitySquared()
	ep2 := e.SecondEccentricitySquared()

	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)
	tanLat := math.Tan(lat)

	n := e.a / math.Sqrt(1.0-e2*sinLat*sinLat)
	t := tanLat * tanLat
	c := ep2 * cosLat * cosLat
	a := cosLat * (lon - lonOrigin*math.Pi/180.0)
	m := e.meridionalArc(lat)

	a2 := a * a
	a3 := a2 * a
	a4 := a3 * a
	a5 := a4 * a
	a6 := a5 * a

	x1 := (1.0 - t + c) * a3 / 6.0
	x2 := (5.0 - 18.0*t + t*t + 72.0*c - 58.0*ep2) * a5 / 120.0
	x := ScaleFactor * n * (a + x1 + x2)

	y1 := (5.0 - t + 9.0*c + 4.0*c*c) * a4 / 24.0
	y2 := (61.0 - 58.0*t + t*t + 600.0*c - 330.0*ep2) * a6 / 720.0
	y := ScaleFactor * (m + n*tanLat*(a2/2.0+y1+y2))

	return y, x + FalseEasting
}
