// Package utmgeom projects go-geom points between WGS84 longitude/latitude
// (EPSG:4326) and the WGS84 UTM zone systems (EPSG:326zz north, 327zz south).
package utmgeom

import (
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"

	"github.com/gadomski/utm/pkg/utm"
)

// SRIDs handled by this package.
const (
	SRIDWGS84     = 4326
	sridUTMNorth  = 32600
	sridUTMSouth  = 32700
	maxZoneNumber = 60
)

// Errors returned by the projections.
var (
	ErrEmptyPoint      = eris.New("utmgeom: empty point")
	ErrUnsupportedSRID = eris.New("utmgeom: unsupported SRID")
	ErrNotPoint        = eris.New("utmgeom: geometry is not a point")
)

// EPSG returns the EPSG code of a WGS84 UTM zone.
func EPSG(zone int, northern bool) int {
	if northern {
		return sridUTMNorth + zone
	}
	return sridUTMSouth + zone
}

// ZoneFromSRID is the inverse of EPSG.
func ZoneFromSRID(srid int) (zone int, northern bool, err error) {
	switch {
	case srid > sridUTMNorth && srid <= sridUTMNorth+maxZoneNumber:
		return srid - sridUTMNorth, true, nil
	case srid > sridUTMSouth && srid <= sridUTMSouth+maxZoneNumber:
		return srid - sridUTMSouth, false, nil
	}
	return 0, false, eris.Wrapf(ErrUnsupportedSRID, "srid %d is not a WGS84 UTM zone", srid)
}

// Project converts a longitude/latitude point (X=lon, Y=lat, SRID 0 or 4326)
// into its own UTM zone. The result is an XY point (easting, northing) with
// the zone's EPSG code as SRID. Southern points carry the 10,000,000 m false
// northing.
func Project(p *geom.Point) (*geom.Point, error) {
	if err := CheckGeographic(p); err != nil {
		return nil, err
	}
	return ProjectZone(p, utm.ZoneNumber(p.Y(), p.X()))
}

// ProjectZone is Project with an explicit zone number.
func ProjectZone(p *geom.Point, zone int) (*geom.Point, error) {
	if err := CheckGeographic(p); err != nil {
		return nil, err
	}
	if zone < 1 || zone > maxZoneNumber {
		return nil, eris.Wrapf(utm.ErrZoneNumOutOfRange, "utmgeom: zone %d", zone)
	}

	lon, lat := p.X(), p.Y()
	northing, easting, _ := utm.ToUTM(lat, lon, zone)

	northern := lat >= 0
	if !northern {
		northing += utm.FalseNorthingSouth
	}

	return geom.NewPointFlat(geom.XY, []float64{easting, northing}).SetSRID(EPSG(zone, northern)), nil
}

// Unproject converts a UTM point (X=easting, Y=northing) whose SRID names a
// WGS84 UTM zone back to a longitude/latitude point with SRID 4326.
func Unproject(p *geom.Point) (*geom.Point, error) {
	if p == nil || p.Empty() {
		return nil, ErrEmptyPoint
	}

	zone, northern, err := ZoneFromSRID(p.SRID())
	if err != nil {
		return nil, err
	}

	lat, lon, err := utm.ToLatLonHemisphere(p.X(), p.Y(), zone, northern)
	if err != nil {
		return nil, eris.Wrap(err, "utmgeom: unproject")
	}

	return geom.NewPointFlat(geom.XY, []float64{lon, lat}).SetSRID(SRIDWGS84), nil
}

// CheckGeographic rejects nil or empty points and SRIDs other than 0 and
// 4326.
func CheckGeographic(p *geom.Point) error {
	if p == nil || p.Empty() {
		return ErrEmptyPoint
	}
	if srid := p.SRID(); srid != 0 && srid != SRIDWGS84 {
		return eris.Wrapf(ErrUnsupportedSRID, "srid %d is not geographic WGS84", srid)
	}
	return nil
}
