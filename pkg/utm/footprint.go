package utm

import "math"

// footprintSeries holds the coefficients of
//
//	φ₁ = μ + c[0]·sin 2μ + c[1]·sin 4μ + c[2]·sin 6μ + c[3]·sin 8μ
//
// which recovers the footprint latitude from the rectifying latitude μ.
type footprintSeries [4]float64

// footprintSeriesOrder4 carries the coefficients to e1⁴.
func footprintSeriesOrder4(e1 float64) footprintSeries {
	e12 := e1 * e1
	e13 := e12 * e1
	e14 := e13 * e1
	return footprintSeries{
		3.0*e1/2.0 - 27.0*e13/32.0,
		21.0*e12/16.0 - 55.0*e14/32.0,
		151.0 * e13 / 96.0,
		1097.0 * e14 / 512.0,
	}
}

// footprintSeriesOrder5 adds the e1⁵ terms used by the inverse projection.
func footprintSeriesOrder5(e1 float64) footprintSeries {
	s := footprintSeriesOrder4(e1)
	e15 := e1 * e1 * e1 * e1 * e1
	s[0] += 269.0 * e15 / 512.0
	s[2] -= 417.0 * e15 / 128.0
	return s
}

func (s footprintSeries) latitude(mu float64) float64 {
	return mu +
		s[0]*math.Sin(2.0*mu) +
		s[1]*math.Sin(4.0*mu) +
		s[2]*math.Sin(6.0*mu) +
		s[3]*math.Sin(8.0*mu)
}
