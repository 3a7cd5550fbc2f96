// Package utm converts between geographic coordinates on the WGS84 ellipsoid
// and Universal Transverse Mercator (UTM) grid coordinates.
//
// The forward direction uses the Transverse Mercator series expansion with a
// scale factor of 0.9996 and never fails. Accuracy is a few metres within
// about 3 degrees of a zone's central meridian and degrades farther out; near
// the poles the results are finite but not physically meaningful. UPS is not
// supported.
//
// The inverse direction validates its inputs and reports one of four
// sentinel errors (ErrEastingOutOfRange, ErrNorthingOutOfRange,
// ErrZoneNumOutOfRange, ErrZoneLetterOutOfRange).
//
// All functions are pure and safe for concurrent use.
package utm
