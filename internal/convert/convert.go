// Package convert turns single coordinates into user-facing UTM and
// geographic results, shared by the CLI and the HTTP service.
package convert

import (
	"math"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"

	"github.com/gadomski/utm/pkg/utm"
	"github.com/gadomski/utm/pkg/utmgeom"
)

// Input errors.
var (
	ErrNonFinite            = eris.New("convert: coordinate must be finite")
	ErrCoordinateOutOfRange = eris.New("convert: latitude must be within [-90, 90] and longitude within [-180, 180]")
)

// maxZoneNumber is the last UTM zone; longitude 180 falls on its eastern edge.
const maxZoneNumber = 60

// Hemisphere names.
const (
	North = "N"
	South = "S"
)

// Projected is a UTM position. Northing includes the 10,000,000 m false
// northing for southern points.
type Projected struct {
	Easting        float64 `json:"easting" yaml:"easting"`
	Northing       float64 `json:"northing" yaml:"northing"`
	ZoneNumber     int     `json:"zone_number" yaml:"zone_number"`
	ZoneLetter     string  `json:"zone_letter,omitempty" yaml:"zone_letter,omitempty"`
	Hemisphere     string  `json:"hemisphere" yaml:"hemisphere"`
	EPSG           int     `json:"epsg" yaml:"epsg"`
	ConvergenceRad float64 `json:"convergence_rad" yaml:"convergence_rad"`
	ConvergenceDeg float64 `json:"convergence_deg" yaml:"convergence_deg"`
}

// Zone returns the UTM zone; the letter is zero outside the lettered bands.
func (p Projected) Zone() utm.Zone {
	z := utm.Zone{Number: p.ZoneNumber}
	if p.ZoneLetter != "" {
		z.Letter = p.ZoneLetter[0]
	}
	return z
}

// Geometry returns the position as an XY point in the zone's EPSG system.
func (p Projected) Geometry() *geom.Point {
	return geom.NewPointFlat(geom.XY, []float64{p.Easting, p.Northing}).SetSRID(p.EPSG)
}

// Geographic is a WGS84 latitude/longitude in decimal degrees.
type Geographic struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// Geometry returns the position as an XY (lon, lat) point with SRID 4326.
func (g Geographic) Geometry() *geom.Point {
	return geom.NewPointFlat(geom.XY, []float64{g.Longitude, g.Latitude}).SetSRID(utmgeom.SRIDWGS84)
}

// ZoneInfo describes the zone containing a geographic position.
type ZoneInfo struct {
	Zone            string  `json:"zone" yaml:"zone"`
	ZoneNumber      int     `json:"zone_number" yaml:"zone_number"`
	ZoneLetter      string  `json:"zone_letter,omitempty" yaml:"zone_letter,omitempty"`
	CentralMeridian float64 `json:"central_meridian" yaml:"central_meridian"`
	EPSG            int     `json:"epsg" yaml:"epsg"`
}

// Project converts a latitude/longitude in degrees to UTM. A zone of 0
// selects the zone containing the point.
func Project(lat, lon float64, zone int) (Projected, error) {
	if err := checkGeographic(lat, lon); err != nil {
		return Projected{}, err
	}
	if zone == 0 {
		zone = zoneNumber(lat, lon)
	} else if zone < 1 || zone > maxZoneNumber {
		return Projected{}, eris.Wrapf(utm.ErrZoneNumOutOfRange, "convert: zone %d", zone)
	}

	northing, easting, convergence := utm.ToUTM(lat, lon, zone)

	letter, hasLetter := utm.ZoneLetter(lat)
	northern := lat >= 0
	if hasLetter {
		northern = letter >= 'N'
	}
	if !northern {
		northing += utm.FalseNorthingSouth
	}

	p := Projected{
		Easting:        easting,
		Northing:       northing,
		ZoneNumber:     zone,
		Hemisphere:     hemisphere(northern),
		EPSG:           utmgeom.EPSG(zone, northern),
		ConvergenceRad: convergence,
		ConvergenceDeg: convergence * 180 / math.Pi,
	}
	if hasLetter {
		p.ZoneLetter = string(letter)
	}

	zap.L().Debug("convert: projected",
		zap.Float64("lat", lat), zap.Float64("lon", lon),
		zap.Int("zone", zone), zap.String("letter", p.ZoneLetter),
		zap.Float64("easting", easting), zap.Float64("northing", northing),
	)

	return p, nil
}

// Unproject converts a UTM position back to latitude/longitude. Range
// violations are reported as the utm package's sentinel errors.
func Unproject(easting, northing float64, zone utm.Zone) (Geographic, error) {
	lat, lon, err := utm.ToLatLon(easting, northing, zone.Number, zone.Letter)
	if err != nil {
		return Geographic{}, eris.Wrapf(err, "convert: unproject %s", zone)
	}

	zap.L().Debug("convert: unprojected",
		zap.Float64("easting", easting), zap.Float64("northing", northing),
		zap.Stringer("zone", zone),
		zap.Float64("lat", lat), zap.Float64("lon", lon),
	)

	return Geographic{Latitude: lat, Longitude: lon}, nil
}

// ZoneOf resolves the zone for a latitude/longitude in degrees.
func ZoneOf(lat, lon float64) (ZoneInfo, error) {
	if err := checkGeographic(lat, lon); err != nil {
		return ZoneInfo{}, err
	}

	letter, hasLetter := utm.ZoneLetter(lat)
	z := utm.Zone{Number: zoneNumber(lat, lon), Letter: letter}
	northern := lat >= 0
	if hasLetter {
		northern = z.Northern()
	}

	info := ZoneInfo{
		Zone:            z.String(),
		ZoneNumber:      z.Number,
		CentralMeridian: z.CentralMeridian(),
		EPSG:            utmgeom.EPSG(z.Number, northern),
	}
	if hasLetter {
		info.ZoneLetter = string(z.Letter)
	}
	return info, nil
}

// ProjectPoint converts a lon/lat point, honouring an explicit zone when
// zone is non-zero.
func ProjectPoint(p *geom.Point, zone int) (Projected, error) {
	if err := utmgeom.CheckGeographic(p); err != nil {
		return Projected{}, err
	}
	return Project(p.Y(), p.X(), zone)
}

func checkGeographic(lat, lon float64) error {
	for _, v := range []float64{lat, lon} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFinite
		}
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return eris.Wrapf(ErrCoordinateOutOfRange, "convert: lat %g lon %g", lat, lon)
	}
	return nil
}

// zoneNumber is utm.ZoneNumber with longitude 180 folded into zone 60.
func zoneNumber(lat, lon float64) int {
	if z := utm.ZoneNumber(lat, lon); z <= maxZoneNumber {
		return z
	}
	return maxZoneNumber
}

func hemisphere(northern bool) string {
	if northern {
		return North
	}
	return South
}
