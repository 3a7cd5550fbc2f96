package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"gopkg.in/yaml.v3"

	"github.com/gadomski/utm/internal/config"
	"github.com/gadomski/utm/internal/convert"
	"github.com/gadomski/utm/pkg/utmgeom"
)

// degreeDecimals keeps geographic text output at roughly centimetre
// resolution regardless of the metre precision.
const degreeDecimals = 7

// ErrNoGeometry is returned when a geometry format is requested for a result
// that has no point to encode.
var ErrNoGeometry = eris.New("output: result has no geometry")

// render writes v in the configured format. Geometry formats encode g.
func render(w io.Writer, out config.OutputConfig, v any, g geom.T) error {
	switch out.Format {
	case "text":
		return renderText(w, out.Precision, v)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(v), "output: encode json")
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return eris.Wrap(err, "output: encode yaml")
		}
		return eris.Wrap(enc.Close(), "output: encode yaml")
	}

	f, err := utmgeom.ParseFormat(out.Format)
	if err != nil {
		return err
	}
	if g == nil {
		return eris.Wrapf(ErrNoGeometry, "output: format %s", f)
	}
	data, err := utmgeom.Marshal(g, f)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return eris.Wrap(err, "output: write")
}

func renderText(w io.Writer, precision int, v any) error {
	p := message.NewPrinter(language.English)
	metres := func(x float64) number.Formatter {
		return number.Decimal(x, number.Scale(precision))
	}
	degrees := func(x float64) number.Formatter {
		return number.Decimal(x, number.Scale(degreeDecimals))
	}

	var err error
	switch r := v.(type) {
	case convert.Projected:
		_, err = p.Fprintf(w, "zone         %s\nhemisphere   %s\neasting      %v\nnorthing     %v\nconvergence  %v° (%v rad)\nepsg         %s\n",
			r.Zone(), r.Hemisphere,
			metres(r.Easting), metres(r.Northing),
			degrees(r.ConvergenceDeg), degrees(r.ConvergenceRad),
			strconv.Itoa(r.EPSG),
		)
	case convert.Geographic:
		_, err = p.Fprintf(w, "latitude   %v\nlongitude  %v\n",
			degrees(r.Latitude), degrees(r.Longitude),
		)
	case convert.ZoneInfo:
		_, err = p.Fprintf(w, "zone              %s\ncentral meridian  %v\nepsg              %s\n",
			r.Zone, number.Decimal(r.CentralMeridian), strconv.Itoa(r.EPSG),
		)
	default:
		return eris.Errorf("output: no text rendering for %T", v)
	}
	return eris.Wrap(err, "output: write")
}
