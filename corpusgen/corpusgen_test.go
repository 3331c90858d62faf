package corpusgen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DaiDaiLoh/mdbpe/corpusgen"
)

func TestRandom_Dimensions(t *testing.T) {
	corpus, err := corpusgen.Random(3, 4, 5, 2, corpusgen.WithSeed(1))
	require.NoError(t, err)
	require.Len(t, corpus.Images, 3)
	for _, img := range corpus.Images {
		require.Equal(t, int32(4), img.Classes.W)
		require.Equal(t, int32(5), img.Classes.H)
		for _, v := range img.Classes.Data {
			require.GreaterOrEqual(t, v, int32(0))
			require.LessOrEqual(t, v, int32(2))
		}
	}
}

func TestRandom_DeterministicWithSameSeed(t *testing.T) {
	a, err := corpusgen.Random(2, 3, 3, 4, corpusgen.WithSeed(123))
	require.NoError(t, err)
	b, err := corpusgen.Random(2, 3, 3, 4, corpusgen.WithSeed(123))
	require.NoError(t, err)

	for i := range a.Images {
		require.Equal(t, a.Images[i].Classes.Data, b.Images[i].Classes.Data)
	}
}

func TestFromLiteral(t *testing.T) {
	corpus, err := corpusgen.FromLiteral(0, "fixture", [][]int32{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Len(t, corpus.Images, 1)

	img := corpus.Images[0]
	require.Equal(t, int32(2), img.Classes.W)
	require.Equal(t, int32(2), img.Classes.H)
	require.Equal(t, []int32{1, 2, 3, 4}, img.Classes.Data)
}
