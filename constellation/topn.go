package constellation

import (
	sortIntInt "github.com/AlasdairF/Sort/IntInt"
)

// TopN returns up to n candidate constellations from counts, ordered by
// descending count, for the driver's per-iteration diagnostic log.
// Grounded on trainvocab.go's use of sortIntInt.Asc to rank token scores
// before a merge/save decision.
func TopN(counts map[Key]int, n int) []Key {
	keys := make([]Key, 0, len(counts))
	scores := make([]sortIntInt.KeyVal, 0, len(counts))
	for k, c := range counts {
		scores = append(scores, sortIntInt.KeyVal{K: len(keys), V: c})
		keys = append(keys, k)
	}
	sortIntInt.Asc(scores)

	if n > len(scores) {
		n = len(scores)
	}
	out := make([]Key, n)
	for i := 0; i < n; i++ {
		out[i] = keys[scores[len(scores)-1-i].K]
	}
	return out
}
