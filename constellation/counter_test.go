package constellation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DaiDaiLoh/mdbpe/constellation"
	"github.com/DaiDaiLoh/mdbpe/corpusgen"
	"github.com/DaiDaiLoh/mdbpe/shape"
)

func TestScan_MinimalPair(t *testing.T) {
	corpus, err := corpusgen.FromLiteral(0, "a", [][]int32{{0, 1}})
	require.NoError(t, err)

	counts := constellation.Scan(corpus)
	winner, count, ok := constellation.Argmax(counts)
	require.True(t, ok)
	require.Equal(t, 1, count)
	require.Equal(t, constellation.Key{Source: 0, Target: 1, Offset: shape.Vec{X: 1, Y: 0}}, winner)
}

func TestScan_Exhausted(t *testing.T) {
	corpus, err := corpusgen.FromLiteral(0, "a", [][]int32{{0}})
	require.NoError(t, err)

	counts := constellation.Scan(corpus)
	_, _, ok := constellation.Argmax(counts)
	require.False(t, ok)
}

func TestArgmax_TiesBreakByLexicographicKey(t *testing.T) {
	imgA, err := corpusgen.FromLiteral(0, "a", [][]int32{{1, 2, 1, 2}})
	require.NoError(t, err)
	imgB, err := corpusgen.FromLiteral(1, "b", [][]int32{{2, 1, 2, 1}})
	require.NoError(t, err)

	corpus := imgA
	corpus.Images = append(corpus.Images, imgB.Images...)

	counts := constellation.Scan(corpus)
	require.Equal(t, 3, counts[constellation.Key{Source: 1, Target: 2, Offset: shape.Vec{X: 1, Y: 0}}])
	require.Equal(t, 3, counts[constellation.Key{Source: 2, Target: 1, Offset: shape.Vec{X: 1, Y: 0}}])

	winner, count, ok := constellation.Argmax(counts)
	require.True(t, ok)
	require.Equal(t, 3, count)
	require.Equal(t, constellation.Key{Source: 1, Target: 2, Offset: shape.Vec{X: 1, Y: 0}}, winner)
}

func TestScan_DedupesSymmetricContact(t *testing.T) {
	// A 1x2 column: one vertical contact, visited from both the top cell's
	// "down" scan and (if it existed) the bottom cell's "up" scan -- but
	// "up" isn't a scan direction, so this also guards against
	// double-counting via the dedup set if that ever changes.
	corpus, err := corpusgen.FromLiteral(0, "a", [][]int32{{3}, {4}})
	require.NoError(t, err)

	counts := constellation.Scan(corpus)
	require.Len(t, counts, 1)
	require.Equal(t, 1, counts[constellation.Key{Source: 3, Target: 4, Offset: shape.Vec{X: 0, Y: 1}}])
}

func TestScanParallel_MatchesScan(t *testing.T) {
	corpus, err := corpusgen.Random(8, 6, 6, 4, corpusgen.WithSeed(42))
	require.NoError(t, err)

	serial := constellation.Scan(corpus)
	parallel := constellation.ScanParallel(corpus, 4)
	require.Equal(t, serial, parallel)
}

func TestTopN_OrdersByDescendingCount(t *testing.T) {
	counts := map[constellation.Key]int{
		{Source: 0, Target: 1, Offset: shape.Vec{X: 1, Y: 0}}: 3,
		{Source: 1, Target: 2, Offset: shape.Vec{X: 1, Y: 0}}: 5,
		{Source: 2, Target: 3, Offset: shape.Vec{X: 1, Y: 0}}: 1,
	}
	top := constellation.TopN(counts, 2)
	require.Len(t, top, 2)
	require.Equal(t, int32(1), top[0].Source)
	require.Equal(t, int32(0), top[1].Source)
}
