// Package serialize implements the binary wire formats of spec §6:
// input grid files, rules.dat, per-class token shape files, and per-image
// token sequence files, plus folder loading and a compressed debug
// snapshot. All four normative formats are little-endian and
// byte-exact, grounded field-for-field on
// original_source/MDBPE/src/io.cc.
package serialize

import "errors"

var (
	// ErrDimensionMismatch is returned when an input grid file's declared
	// width/height does not match the configured image size.
	ErrDimensionMismatch = errors.New("serialize: grid dimensions do not match configured size")
	// ErrShapeIndexGap is returned by LoadShapes when the token_*.dat
	// files in a directory do not form a dense 0..n-1 sequence of class
	// ids, matching read_tokens's post-load assertion in the reference
	// implementation.
	ErrShapeIndexGap = errors.New("serialize: token shape class ids are not a dense 0..n-1 sequence")
	// ErrMalformed is returned when a debug snapshot fails its trailing
	// EOF check.
	ErrMalformed = errors.New("serialize: malformed file")
)
