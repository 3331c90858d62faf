package serialize

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/AlasdairF/Custom"

	"github.com/DaiDaiLoh/mdbpe/grid"
)

// DumpDebugSnapshot writes a compressed, lossless snapshot of one
// image's current classes/ids grids and anchor table: an intermediate
// debug dump, kept off the critical path and off the byte-exact formats
// of the rest of this package. Grounded on
// alasdairforsythe-tokenmonster/training's custom.NewZlibWriter usage
// for compressed dictionary dumps; it replaces the reference
// implementation's colored-PNG debug output, which is out of scope here.
func DumpDebugSnapshot(path string, img *grid.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := custom.NewZlibWriter(f)
	defer w.Close()

	w.WriteUint64(uint64(img.ID))
	w.WriteBytes8(encodePlaneBytes(img.Classes))
	w.WriteBytes8(encodePlaneBytes(img.IDs))
	w.WriteBytes8(encodeAnchorsBytes(img.Anchors))
	return nil
}

// LoadDebugSnapshot reconstructs the planes and anchor table written by
// DumpDebugSnapshot. It does not reconstruct NextID or Filename: the
// snapshot is a diagnostic aid, not a substitute for the canonical
// formats elsewhere in this package.
func LoadDebugSnapshot(path string, w, h int32) (id int32, classes, ids grid.Plane, anchors []grid.Point, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, grid.Plane{}, grid.Plane{}, nil, err
	}
	defer f.Close()

	r := custom.NewZlibReader(f)
	id = int32(r.ReadUint64())
	classes = decodePlaneBytes(r.ReadBytes8(), w, h)
	ids = decodePlaneBytes(r.ReadBytes8(), w, h)
	anchors = decodeAnchorsBytes(r.ReadBytes8())
	if r.EOF() != nil {
		return 0, grid.Plane{}, grid.Plane{}, nil, fmt.Errorf("serialize: debug snapshot %s: %w", path, ErrMalformed)
	}
	return id, classes, ids, anchors, nil
}

func encodePlaneBytes(p grid.Plane) []byte {
	buf := make([]byte, 4*len(p.Data))
	for i, v := range p.Data {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(v))
	}
	return buf
}

func decodePlaneBytes(buf []byte, w, h int32) grid.Plane {
	p := grid.NewPlane(w, h)
	for i := range p.Data {
		p.Data[i] = int32(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	return p
}

func encodeAnchorsBytes(anchors []grid.Point) []byte {
	buf := make([]byte, 8*len(anchors))
	for i, a := range anchors {
		binary.LittleEndian.PutUint32(buf[i*8:], uint32(a.X))
		binary.LittleEndian.PutUint32(buf[i*8+4:], uint32(a.Y))
	}
	return buf
}

func decodeAnchorsBytes(buf []byte) []grid.Point {
	n := len(buf) / 8
	out := make([]grid.Point, n)
	for i := 0; i < n; i++ {
		out[i] = grid.Point{
			X: int32(binary.LittleEndian.Uint32(buf[i*8:])),
			Y: int32(binary.LittleEndian.Uint32(buf[i*8+4:])),
		}
	}
	return out
}
