package utmgeom

import (
	"encoding/hex"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkb"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// Format names a geometry encoding.
type Format string

// Supported encodings.
const (
	FormatGeoJSON Format = "geojson"
	FormatWKT     Format = "wkt"
	FormatEWKB    Format = "ewkb" // hex encoded, little endian
)

// ErrUnknownFormat is returned for an unrecognised encoding name.
var ErrUnknownFormat = eris.New("utmgeom: unknown format")

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatGeoJSON, FormatWKT, FormatEWKB:
		return f, nil
	}
	return "", eris.Wrapf(ErrUnknownFormat, "format %q", s)
}

// Marshal encodes g in the requested format.
func Marshal(g geom.T, f Format) ([]byte, error) {
	switch f {
	case FormatGeoJSON:
		data, err := geojson.Marshal(g)
		if err != nil {
			return nil, eris.Wrap(err, "utmgeom: encode geojson")
		}
		return data, nil

	case FormatWKT:
		s, err := wkt.Marshal(g)
		if err != nil {
			return nil, eris.Wrap(err, "utmgeom: encode wkt")
		}
		return []byte(s), nil

	case FormatEWKB:
		data, err := ewkb.Marshal(g, ewkb.NDR)
		if err != nil {
			return nil, eris.Wrap(err, "utmgeom: encode ewkb")
		}
		return []byte(hex.EncodeToString(data)), nil
	}
	return nil, eris.Wrapf(ErrUnknownFormat, "format %q", f)
}

// UnmarshalGeoJSONPoint decodes a single GeoJSON Point geometry.
func UnmarshalGeoJSONPoint(data []byte) (*geom.Point, error) {
	var g geom.T
	if err := geojson.Unmarshal(data, &g); err != nil {
		return nil, eris.Wrap(err, "utmgeom: decode geojson")
	}

	p, ok := g.(*geom.Point)
	if !ok {
		return nil, eris.Wrapf(ErrNotPoint, "got %T", g)
	}
	return p, nil
}
