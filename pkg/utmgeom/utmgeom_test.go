package utmgeom

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"

	"github.com/gadomski/utm/pkg/utm"
)

func TestEPSG(t *testing.T) {
	assert.Equal(t, 32606, EPSG(6, true))
	assert.Equal(t, 32760, EPSG(60, false))
	assert.Equal(t, 32601, EPSG(1, true))
}

func TestZoneFromSRID(t *testing.T) {
	tests := []struct {
		name     string
		srid     int
		zone     int
		northern bool
		wantErr  bool
	}{
		{name: "north zone 6", srid: 32606, zone: 6, northern: true},
		{name: "north zone 60", srid: 32660, zone: 60, northern: true},
		{name: "south zone 1", srid: 32701, zone: 1, northern: false},
		{name: "south zone 60", srid: 32760, zone: 60, northern: false},
		{name: "north zone 0", srid: 32600, wantErr: true},
		{name: "north zone 61", srid: 32661, wantErr: true},
		{name: "south zone 61", srid: 32761, wantErr: true},
		{name: "geographic", srid: 4326, wantErr: true},
		{name: "unset", srid: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zone, northern, err := ZoneFromSRID(tt.srid)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrUnsupportedSRID))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.zone, zone)
			assert.Equal(t, tt.northern, northern)
		})
	}
}

func TestProject_Northern(t *testing.T) {
	p := geom.NewPointFlat(geom.XY, []float64{-149.119325194, 60.9679875497}).SetSRID(SRIDWGS84)

	got, err := Project(p)
	require.NoError(t, err)

	assert.Equal(t, 32606, got.SRID())
	assert.Equal(t, geom.XY, got.Layout())
	assert.InDelta(t, 385273.02, got.X(), 1e-2)
	assert.InDelta(t, 6761077.20, got.Y(), 1e-2)
}

func TestProject_SouthernAppliesFalseNorthing(t *testing.T) {
	p := geom.NewPointFlat(geom.XY, []float64{174.77624, -41.28646})

	got, err := Project(p)
	require.NoError(t, err)

	assert.Equal(t, 32760, got.SRID())
	assert.InDelta(t, 313784, got.X(), 2)
	assert.InDelta(t, 5427057, got.Y(), 2)
}

func TestProject_NorwayZone(t *testing.T) {
	got, err := Project(geom.NewPointFlat(geom.XY, []float64{5, 60}))
	require.NoError(t, err)
	assert.Equal(t, 32632, got.SRID())
}

func TestProjectZone(t *testing.T) {
	p := geom.NewPointFlat(geom.XY, []float64{5, 60})

	got, err := ProjectZone(p, 31)
	require.NoError(t, err)
	assert.Equal(t, 32631, got.SRID())

	northing, easting, _ := utm.ToUTM(60, 5, 31)
	assert.Equal(t, easting, got.X())
	assert.Equal(t, northing, got.Y())

	_, err = ProjectZone(p, 61)
	assert.True(t, errors.Is(err, utm.ErrZoneNumOutOfRange))
}

func TestProject_Errors(t *testing.T) {
	_, err := Project(nil)
	assert.True(t, errors.Is(err, ErrEmptyPoint))

	_, err = Project(geom.NewPointEmpty(geom.XY))
	assert.True(t, errors.Is(err, ErrEmptyPoint))

	_, err = Project(geom.NewPointFlat(geom.XY, []float64{500000, 5000000}).SetSRID(32633))
	assert.True(t, errors.Is(err, ErrUnsupportedSRID))
}

func TestCheckGeographic(t *testing.T) {
	tests := []struct {
		name     string
		p        *geom.Point
		expected error
	}{
		{name: "nil", p: nil, expected: ErrEmptyPoint},
		{name: "empty", p: geom.NewPointEmpty(geom.XY), expected: ErrEmptyPoint},
		{name: "utm srid", p: geom.NewPointFlat(geom.XY, []float64{1, 2}).SetSRID(32633), expected: ErrUnsupportedSRID},
		{name: "no srid", p: geom.NewPointFlat(geom.XY, []float64{1, 2})},
		{name: "wgs84", p: geom.NewPointFlat(geom.XY, []float64{1, 2}).SetSRID(SRIDWGS84)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckGeographic(tt.p)
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.expected))
		})
	}
}

func TestUnproject(t *testing.T) {
	p := geom.NewPointFlat(geom.XY, []float64{313784, 5427057}).SetSRID(32760)

	got, err := Unproject(p)
	require.NoError(t, err)

	assert.Equal(t, SRIDWGS84, got.SRID())
	assert.InDelta(t, 174.77624, got.X(), 3e-5)
	assert.InDelta(t, -41.28646, got.Y(), 3e-5)
}

func TestUnproject_Errors(t *testing.T) {
	_, err := Unproject(nil)
	assert.True(t, errors.Is(err, ErrEmptyPoint))

	_, err = Unproject(geom.NewPointFlat(geom.XY, []float64{313784, 5427057}).SetSRID(SRIDWGS84))
	assert.True(t, errors.Is(err, ErrUnsupportedSRID))

	_, err = Unproject(geom.NewPointFlat(geom.XY, []float64{50, 5427057}).SetSRID(32760))
	assert.True(t, errors.Is(err, utm.ErrEastingOutOfRange))
}

func TestProjectUnproject_RoundTrip(t *testing.T) {
	for _, c := range [][2]float64{{-73.6, 45.5}, {18.42406, -33.92487}, {139.69, 35.69}, {-58.38, -34.6}} {
		p := geom.NewPointFlat(geom.XY, []float64{c[0], c[1]})

		projected, err := Project(p)
		require.NoError(t, err)

		back, err := Unproject(projected)
		require.NoError(t, err)

		assert.InDelta(t, c[0], back.X(), 1e-6)
		assert.InDelta(t, c[1], back.Y(), 1e-6)
	}
}
