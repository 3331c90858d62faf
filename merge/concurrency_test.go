package merge_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DaiDaiLoh/mdbpe/constellation"
	"github.com/DaiDaiLoh/mdbpe/corpusgen"
	"github.com/DaiDaiLoh/mdbpe/merge"
	"github.com/DaiDaiLoh/mdbpe/shape"
)

// TestApplyParallel_DisjointImagesDoNotRace rewrites several independent
// corpora through ApplyParallel concurrently. Each corpus's images are
// only ever touched by the goroutines working that corpus, matching the
// disjoint-ownership guarantee the rewrite pass relies on.
func TestApplyParallel_DisjointImagesDoNotRace(t *testing.T) {
	const callers = 6

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			corpus, err := corpusgen.Random(5, 5, 5, 3, corpusgen.WithSeed(int64(i)))
			require.NoError(t, err)

			counts := constellation.Scan(corpus)
			key, _, ok := constellation.Argmax(counts)
			if !ok {
				return
			}
			lib := shape.NewLibrary(3)
			newShape, err := merge.Combine(key, lib)
			require.NoError(t, err)
			newClass, err := lib.Append(newShape)
			require.NoError(t, err)

			merge.ApplyParallel(key, newClass, newShape, merge.KeepSourceAnchor(key.Offset), corpus, 4)
		}(i)
	}
	wg.Wait()
}
