// Package shape holds the append-only vocabulary of token shapes: the
// geometric definition of what each class id covers once anchored.
package shape

// Vec is a 2-D integer offset, relative to a token's anchor at (0,0).
type Vec struct {
	X, Y int32
}

// Add returns the vector sum of v and w.
func (v Vec) Add(w Vec) Vec { return Vec{X: v.X + w.X, Y: v.Y + w.Y} }

// Sub returns v minus w.
func (v Vec) Sub(w Vec) Vec { return Vec{X: v.X - w.X, Y: v.Y - w.Y} }

// Cell is one (offset, base class) pair making up a token shape.
type Cell struct {
	Offset Vec
	Base   int32
}

// Shape is the finite, non-empty, ordered list of cells a class covers
// once anchored. The zeroth cell's offset is always (0,0); shapes returned
// by a Library are not mutated in place.
type Shape []Cell
