package serialize_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DaiDaiLoh/mdbpe/grid"
	"github.com/DaiDaiLoh/mdbpe/serialize"
)

func TestDumpLoadDebugSnapshot_RoundTrip(t *testing.T) {
	plane := grid.NewPlane(2, 2)
	plane.Data[0], plane.Data[1], plane.Data[2], plane.Data[3] = 1, 2, 3, 4
	img, err := grid.NewImage(7, "room_7", plane)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "snapshot.debug")
	require.NoError(t, serialize.DumpDebugSnapshot(path, img))

	id, classes, ids, anchors, err := serialize.LoadDebugSnapshot(path, plane.W, plane.H)
	require.NoError(t, err)
	require.Equal(t, img.ID, id)
	require.Equal(t, img.Classes.Data, classes.Data)
	require.Equal(t, img.IDs.Data, ids.Data)
	require.Equal(t, img.Anchors, anchors)
}
