package serialize

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/DaiDaiLoh/mdbpe/grid"
)

// ReadGridFile reads one little-endian binary grid file: int32 width,
// int32 height, then width*height int32 cells in row-major order
// (spec §6, io.cc's read_token_bin_data). It returns
// ErrDimensionMismatch if the declared size does not match
// (wantW, wantH).
func ReadGridFile(path string, wantW, wantH int32) (grid.Plane, error) {
	f, err := os.Open(path)
	if err != nil {
		return grid.Plane{}, err
	}
	defer f.Close()
	return readGrid(f, wantW, wantH)
}

func readGrid(r io.Reader, wantW, wantH int32) (grid.Plane, error) {
	var w, h int32
	if err := binary.Read(r, binary.LittleEndian, &w); err != nil {
		return grid.Plane{}, fmt.Errorf("serialize: read width: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return grid.Plane{}, fmt.Errorf("serialize: read height: %w", err)
	}
	if w != wantW || h != wantH {
		return grid.Plane{}, fmt.Errorf("serialize: grid is %dx%d, want %dx%d: %w", w, h, wantW, wantH, ErrDimensionMismatch)
	}
	plane := grid.NewPlane(w, h)
	if err := binary.Read(r, binary.LittleEndian, plane.Data); err != nil {
		return grid.Plane{}, fmt.Errorf("serialize: read cells: %w", err)
	}
	return plane, nil
}

// WriteGridFile writes plane in the format ReadGridFile reads.
func WriteGridFile(path string, plane grid.Plane) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return writeGrid(f, plane)
}

func writeGrid(w io.Writer, plane grid.Plane) error {
	if err := binary.Write(w, binary.LittleEndian, plane.W); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, plane.H); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, plane.Data)
}
