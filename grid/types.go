// Package grid owns the per-image grid store: the mutable class/id planes
// and anchor table the merge engine evolves, and the corpus that groups
// every image in a run.
package grid

import "github.com/DaiDaiLoh/mdbpe/shape"

// Point is an absolute cell coordinate within an image's grid.
type Point struct {
	X, Y int32
}

// Add returns the point obtained by applying offset v to p.
func (p Point) Add(v shape.Vec) Point { return Point{X: p.X + v.X, Y: p.Y + v.Y} }

// Less reports whether p sorts strictly before q in row-major order
// (y ascending, then x ascending).
func (p Point) Less(q Point) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}
