package serialize_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DaiDaiLoh/mdbpe/grid"
	"github.com/DaiDaiLoh/mdbpe/serialize"
	"github.com/DaiDaiLoh/mdbpe/shard"
)

func TestLoadFolder_SkipsUnreadableEntries(t *testing.T) {
	dir := t.TempDir()

	plane := grid.NewPlane(2, 1)
	require.NoError(t, serialize.WriteGridFile(filepath.Join(dir, "room_3.dat"), plane))
	require.NoError(t, serialize.WriteGridFile(filepath.Join(dir, "notes.txt"), plane)) // wrong extension, ignored by name
	require.NoError(t, serialize.WriteGridFile(filepath.Join(dir, "room.dat"), plane))   // unparsable stem, ignored

	images, err := serialize.LoadFolder(dir, 2, 1)
	require.NoError(t, err)
	require.Len(t, images, 1)
	require.Equal(t, int32(3), images[0].ID)
	require.Equal(t, "room_3", images[0].Filename)
}

func TestLoadFolder_DimensionMismatchIsFatal(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, serialize.WriteGridFile(filepath.Join(dir, "0.dat"), grid.NewPlane(2, 1)))

	_, err := serialize.LoadFolder(dir, 3, 3)
	require.ErrorIs(t, err, serialize.ErrDimensionMismatch)
}

func TestMakeOutputDirs(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, serialize.MakeOutputDirs(dir, 4, []int32{1, 5, 9}))

	for _, id := range []int32{1, 5, 9} {
		want := filepath.Join(dir, "transcribed_data", shard.Path(int(id), 4))
		info, err := os.Stat(want)
		require.NoError(t, err)
		require.True(t, info.IsDir())
	}
}
