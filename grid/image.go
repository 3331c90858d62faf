package grid

// Image is one per-corpus record: an immutable initial class grid plus
// the mutable classes/ids grids and anchor table the merge engine
// evolves (original_source/MDBPE/src/image_data.hh).
type Image struct {
	ID       int32
	Filename string

	InitialClasses Plane // never mutated after construction (invariant I3)
	Classes        Plane
	IDs            Plane
	Anchors        []Point // Anchors[id] is the anchor cell of token id
	NextID         int32
}

// NewImage builds an Image from a freshly loaded class grid: every cell
// starts as its own token instance, anchored at itself, ids assigned
// row-major starting at 0 (so NextID == width*height on return).
func NewImage(id int32, filename string, classes Plane) (*Image, error) {
	if classes.W <= 0 || classes.H <= 0 {
		return nil, ErrEmptyImage
	}
	img := &Image{
		ID:             id,
		Filename:       filename,
		InitialClasses: classes.clone(),
		Classes:        classes.clone(),
		IDs:            NewPlane(classes.W, classes.H),
		Anchors:        make([]Point, 0, classes.W*classes.H),
	}
	for y := int32(0); y < classes.H; y++ {
		for x := int32(0); x < classes.W; x++ {
			pt := Point{X: x, Y: y}
			id := img.NewAnchoredID(pt)
			img.IDs.Set(pt, id)
		}
	}
	return img, nil
}

// InBounds reports whether p lies within the image's grid.
func (img *Image) InBounds(p Point) bool { return img.Classes.InBounds(p) }

// ClassAt returns the current class at p.
func (img *Image) ClassAt(p Point) int32 { return img.Classes.At(p) }

// IDAt returns the current token instance id at p.
func (img *Image) IDAt(p Point) int32 { return img.IDs.At(p) }

// AnchorOf returns the anchor cell of token instance id.
func (img *Image) AnchorOf(id int32) Point { return img.Anchors[id] }

// AllocateID returns the next unused token instance id without
// registering an anchor for it. Most callers want NewAnchoredID instead.
func (img *Image) AllocateID() int32 {
	id := img.NextID
	img.NextID++
	return id
}

// NewAnchoredID allocates a fresh token instance id and records its
// anchor in one step, keeping Anchors in lockstep with NextID.
func (img *Image) NewAnchoredID(anchor Point) int32 {
	id := img.AllocateID()
	img.Anchors = append(img.Anchors, anchor)
	return id
}

// SetCell commits a single-cell write: the class and id at p become
// class and id. It carries no invariants of its own; callers (the merge
// engine) are responsible for grouping writes into a consistent rewrite.
func (img *Image) SetCell(p Point, class, id int32) {
	img.Classes.Set(p, class)
	img.IDs.Set(p, id)
}
