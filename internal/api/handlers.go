package api

import (
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/gadomski/utm/internal/convert"
	"github.com/gadomski/utm/pkg/utm"
	"github.com/gadomski/utm/pkg/utmgeom"
)

// maxBodyBytes bounds POST bodies; a single GeoJSON point is far smaller.
const maxBodyBytes = 64 << 10

// Health reports liveness.
func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Forward handles GET /v1/forward?lat=&lon=[&zone=].
func Forward(w http.ResponseWriter, r *http.Request) {
	lat, err := floatParam(r, "lat")
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	lon, err := floatParam(r, "lon")
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	zone, err := optionalIntParam(r, "zone")
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	p, err := convert.Project(lat, lon, zone)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeResult(w, r, p, p.Geometry())
}

// geoJSONMediaTypes are the accepted POST body types. A missing
// Content-Type is treated as GeoJSON.
var geoJSONMediaTypes = map[string]bool{
	"application/geo+json": true,
	"application/json":     true,
}

// ForwardGeoJSON handles POST /v1/forward with a GeoJSON Point body.
func ForwardGeoJSON(w http.ResponseWriter, r *http.Request) {
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil || !geoJSONMediaTypes[mt] {
			writeError(w, http.StatusUnsupportedMediaType, "unsupported_media_type",
				"content type must be application/geo+json or application/json")
			return
		}
	}

	zone, err := optionalIntParam(r, "zone")
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "body_too_large", "request body too large")
		return
	}

	pt, err := utmgeom.UnmarshalGeoJSONPoint(body)
	if err != nil {
		if eris.Is(err, utmgeom.ErrNotPoint) {
			writeFailure(w, r, err)
			return
		}
		writeError(w, http.StatusBadRequest, "invalid_geojson", err.Error())
		return
	}

	p, err := convert.ProjectPoint(pt, zone)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeResult(w, r, p, p.Geometry())
}

// Inverse handles GET /v1/inverse?easting=&northing=&zone=60G.
func Inverse(w http.ResponseWriter, r *http.Request) {
	easting, err := floatParam(r, "easting")
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	northing, err := floatParam(r, "northing")
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	zone, err := utm.ParseZone(r.URL.Query().Get("zone"))
	if err != nil {
		writeFailure(w, r, eris.Wrapf(ErrInvalidParameter, "zone: %v", err))
		return
	}

	g, err := convert.Unproject(easting, northing, zone)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeResult(w, r, g, g.Geometry())
}

// Zone handles GET /v1/zone?lat=&lon=.
func Zone(w http.ResponseWriter, r *http.Request) {
	lat, err := floatParam(r, "lat")
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	lon, err := floatParam(r, "lon")
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	info, err := convert.ZoneOf(lat, lon)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func floatParam(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, eris.Wrapf(ErrInvalidParameter, "%s is required", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, eris.Wrapf(ErrInvalidParameter, "%s must be a number", name)
	}
	return v, nil
}

// optionalIntParam returns 0 when the parameter is absent.
func optionalIntParam(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, eris.Wrapf(ErrInvalidParameter, "%s must be an integer", name)
	}
	return v, nil
}
