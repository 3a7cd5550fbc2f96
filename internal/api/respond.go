package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"

	"github.com/gadomski/utm/internal/convert"
	"github.com/gadomski/utm/pkg/utm"
	"github.com/gadomski/utm/pkg/utmgeom"
)

// ErrInvalidParameter marks a missing or malformed query parameter.
var ErrInvalidParameter = eris.New("api: invalid parameter")

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

var contentTypes = map[utmgeom.Format]string{
	utmgeom.FormatGeoJSON: "application/geo+json",
	utmgeom.FormatWKT:     "text/plain; charset=utf-8",
	utmgeom.FormatEWKB:    "text/plain; charset=utf-8",
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Debug("api: write response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResponse{Error: msg, Code: code})
}

// writeResult renders v as JSON, or its geometry when a geometry format is
// requested.
func writeResult(w http.ResponseWriter, r *http.Request, v any, g geom.T) {
	name := r.URL.Query().Get("format")
	if name == "" || name == "json" {
		writeJSON(w, http.StatusOK, v)
		return
	}

	f, err := utmgeom.ParseFormat(name)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	data, err := utmgeom.Marshal(g, f)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[f])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// writeFailure maps err to a status and a stable error code.
func writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classify(err)
	if status >= http.StatusInternalServerError {
		zap.L().Error("api: request failed",
			zap.String("path", r.URL.Path),
			zap.String("request_id", RequestIDFrom(r.Context())),
			zap.Error(err),
		)
		writeError(w, status, code, "internal error")
		return
	}
	writeError(w, status, code, err.Error())
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, utm.ErrEastingOutOfRange):
		return http.StatusBadRequest, "easting_out_of_range"
	case errors.Is(err, utm.ErrNorthingOutOfRange):
		return http.StatusBadRequest, "northing_out_of_range"
	case errors.Is(err, utm.ErrZoneNumOutOfRange):
		return http.StatusBadRequest, "zone_number_out_of_range"
	case errors.Is(err, utm.ErrZoneLetterOutOfRange):
		return http.StatusBadRequest, "zone_letter_out_of_range"
	case errors.Is(err, convert.ErrNonFinite):
		return http.StatusBadRequest, "non_finite_coordinate"
	case errors.Is(err, convert.ErrCoordinateOutOfRange):
		return http.StatusBadRequest, "coordinate_out_of_range"
	case errors.Is(err, utmgeom.ErrNotPoint):
		return http.StatusBadRequest, "not_a_point"
	case errors.Is(err, utmgeom.ErrEmptyPoint):
		return http.StatusBadRequest, "empty_point"
	case errors.Is(err, utmgeom.ErrUnsupportedSRID):
		return http.StatusBadRequest, "unsupported_srid"
	case errors.Is(err, utmgeom.ErrUnknownFormat):
		return http.StatusBadRequest, "unknown_format"
	case errors.Is(err, ErrInvalidParameter):
		return http.StatusBadRequest, "invalid_parameter"
	}
	return http.StatusInternalServerError, "internal"
}
