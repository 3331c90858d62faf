package grid

// Plane is a flat, row-major W*H array of int32 values: a class grid, an
// id grid, or an input cell grid before it becomes one.
type Plane struct {
	W, H int32
	Data []int32
}

// NewPlane allocates a zero-filled w x h plane.
func NewPlane(w, h int32) Plane {
	return Plane{W: w, H: h, Data: make([]int32, w*h)}
}

func (p Plane) index(pt Point) int32 { return pt.Y*p.W + pt.X }

// InBounds reports whether pt lies within the plane's dimensions.
func (p Plane) InBounds(pt Point) bool {
	return pt.X >= 0 && pt.X < p.W && pt.Y >= 0 && pt.Y < p.H
}

// At returns the value at pt. The caller must check InBounds first.
func (p Plane) At(pt Point) int32 { return p.Data[p.index(pt)] }

// Set writes v at pt. The caller must check InBounds first.
func (p *Plane) Set(pt Point, v int32) { p.Data[p.index(pt)] = v }

func (p Plane) clone() Plane {
	out := Plane{W: p.W, H: p.H, Data: make([]int32, len(p.Data))}
	copy(out.Data, p.Data)
	return out
}
