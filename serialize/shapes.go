package serialize

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/DaiDaiLoh/mdbpe/shape"
)

// WriteShapeFile writes one token_<class:04>.dat file: int32 class id,
// int32 cell count, then {offset.x, offset.y, base} int32 triples per
// cell (io.cc's write_token_shapes).
func WriteShapeFile(dir string, classID int32, s shape.Shape) error {
	path := filepath.Join(dir, fmt.Sprintf("token_%04d.dat", classID))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := binary.Write(f, binary.LittleEndian, classID); err != nil {
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, int32(len(s))); err != nil {
		return err
	}
	for _, cell := range s {
		rec := [3]int32{cell.Offset.X, cell.Offset.Y, cell.Base}
		if err := binary.Write(f, binary.LittleEndian, rec); err != nil {
			return fmt.Errorf("serialize: write shape cell: %w", err)
		}
	}
	return nil
}

// WriteShapes writes every class in lib to dir, one file per class.
func WriteShapes(dir string, lib *shape.Library) error {
	for c := int32(0); c < int32(lib.Len()); c++ {
		s, err := lib.Shape(c)
		if err != nil {
			return err
		}
		if err := WriteShapeFile(dir, c, s); err != nil {
			return err
		}
	}
	return nil
}

func readShapeFile(path string) (int32, shape.Shape, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, err
	}
	defer f.Close()

	var classID, numCells int32
	if err := binary.Read(f, binary.LittleEndian, &classID); err != nil {
		return 0, nil, err
	}
	if err := binary.Read(f, binary.LittleEndian, &numCells); err != nil {
		return 0, nil, err
	}

	s := make(shape.Shape, numCells)
	for i := int32(0); i < numCells; i++ {
		var raw [3]int32
		if err := binary.Read(f, binary.LittleEndian, &raw); err != nil {
			return 0, nil, fmt.Errorf("serialize: read shape cell: %w", err)
		}
		s[i] = shape.Cell{Offset: shape.Vec{X: raw[0], Y: raw[1]}, Base: raw[2]}
	}
	return classID, s, nil
}

// LoadShapes reads every .dat file in dir as a token shape file
// (token_*.dat as WriteShapes names them) and rebuilds a Library.
// Files are sorted by their declared class id and must form a dense
// 0..n-1 sequence, matching read_tokens's post-load assertion in the
// reference implementation.
func LoadShapes(dir string) (*shape.Library, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	type loaded struct {
		classID int32
		s       shape.Shape
	}
	var all []loaded
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".dat" {
			continue
		}
		classID, s, err := readShapeFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("serialize: %s: %w", e.Name(), err)
		}
		all = append(all, loaded{classID: classID, s: s})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].classID < all[j].classID })

	lib := &shape.Library{}
	for i, l := range all {
		if l.classID != int32(i) {
			return nil, ErrShapeIndexGap
		}
		if _, err := lib.Append(l.s); err != nil {
			return nil, err
		}
	}
	return lib, nil
}
