package shape

import "errors"

var (
	// ErrUnknownClass is returned by Shape for a class id outside
	// [0, Len()-1].
	ErrUnknownClass = errors.New("shape: unknown class id")
	// ErrEmptyShape is returned by Append for a shape with no cells.
	ErrEmptyShape = errors.New("shape: shape must have at least one cell")
	// ErrBadAnchor is returned by Append when the first cell's offset is
	// not (0,0).
	ErrBadAnchor = errors.New("shape: first cell of a shape must be at offset (0,0)")
)
