package constellation_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DaiDaiLoh/mdbpe/constellation"
	"github.com/DaiDaiLoh/mdbpe/corpusgen"
)

// TestScanParallel_ConcurrentCallersDoNotRace runs ScanParallel against
// several independent corpora concurrently, guarding against any shared
// mutable state leaking between calls (there should be none: each call
// owns its own jobs/results channels).
func TestScanParallel_ConcurrentCallersDoNotRace(t *testing.T) {
	const callers = 8

	var wg sync.WaitGroup
	results := make([]map[constellation.Key]int, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			corpus, err := corpusgen.Random(4, 6, 6, 3, corpusgen.WithSeed(int64(i)))
			require.NoError(t, err)
			results[i] = constellation.ScanParallel(corpus, 4)
		}(i)
	}
	wg.Wait()

	for i, r := range results {
		require.NotNil(t, r, "caller %d produced no result", i)
	}
}
