package serialize_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DaiDaiLoh/mdbpe/serialize"
	"github.com/DaiDaiLoh/mdbpe/shape"
)

func TestShapes_RoundTrip(t *testing.T) {
	lib := shape.NewLibrary(1)
	composite := shape.Shape{
		{Offset: shape.Vec{X: 0, Y: 0}, Base: 0},
		{Offset: shape.Vec{X: 1, Y: 0}, Base: 1},
	}
	_, err := lib.Append(composite)
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, serialize.WriteShapes(dir, lib))

	got, err := serialize.LoadShapes(dir)
	require.NoError(t, err)
	require.Equal(t, lib.Len(), got.Len())
	for c := int32(0); c < int32(lib.Len()); c++ {
		want, err := lib.Shape(c)
		require.NoError(t, err)
		have, err := got.Shape(c)
		require.NoError(t, err)
		require.Equal(t, want, have)
	}
}

func TestLoadShapes_RejectsIndexGap(t *testing.T) {
	lib := shape.NewLibrary(2)
	dir := t.TempDir()
	require.NoError(t, serialize.WriteShapeFile(dir, 0, mustShape(lib, 0)))
	require.NoError(t, serialize.WriteShapeFile(dir, 2, mustShape(lib, 2))) // class 1 missing

	_, err := serialize.LoadShapes(dir)
	require.ErrorIs(t, err, serialize.ErrShapeIndexGap)
}

func TestLoadShapes_IgnoresNonDatFiles(t *testing.T) {
	lib := shape.NewLibrary(0)
	dir := t.TempDir()
	require.NoError(t, serialize.WriteShapeFile(dir, 0, mustShape(lib, 0)))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.txt"), []byte("hi"), 0o644))

	got, err := serialize.LoadShapes(dir)
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())
}

func mustShape(lib *shape.Library, c int32) shape.Shape {
	s, err := lib.Shape(c)
	if err != nil {
		panic(err)
	}
	return s
}
