package constellation

import (
	"sync"

	"github.com/DaiDaiLoh/mdbpe/grid"
	"github.com/DaiDaiLoh/mdbpe/shape"
)

// directions enumerates the two scan directions spec §4.3 permits: right
// and down. Each undirected contact is considered exactly once per image
// regardless of which of the two directions finds it first; the
// constellation key itself stays directed (see Key).
var directions = []shape.Vec{{X: 1, Y: 0}, {X: 0, Y: 1}}

// pairKey canonicalises an unordered anchor pair for the per-image dedup
// set. The reference implementation probes both (a,b) and (b,a) against
// an asymmetric insertion; this inserts a single canonical (min,max)
// ordering instead, matching spec §4.3 directly.
type pairKey struct{ a, b grid.Point }

func canonicalPair(a, b grid.Point) pairKey {
	if a.Less(b) {
		return pairKey{a: a, b: b}
	}
	return pairKey{a: b, b: a}
}

// Scan tallies every candidate constellation across the whole corpus
// under the deduplication rule of spec §4.3, single-threaded.
func Scan(corpus *grid.Corpus) map[Key]int {
	counts := make(map[Key]int)
	for _, img := range corpus.Images {
		tallyImage(img, counts)
	}
	return counts
}

// ScanParallel tallies the same counts as Scan but distributes images
// across workers goroutines, each with a thread-local map reduced at the
// end -- the only parallelism spec §5 permits within the counting phase.
// Grounded on the channelWork/channelResult worker-pool pattern in
// alasdairforsythe-tokenmonster/training/trainvocab.go.
func ScanParallel(corpus *grid.Corpus, workers int) map[Key]int {
	if workers <= 1 || len(corpus.Images) <= 1 {
		return Scan(corpus)
	}

	jobs := make(chan *grid.Image, len(corpus.Images))
	for _, img := range corpus.Images {
		jobs <- img
	}
	close(jobs)

	results := make(chan map[Key]int, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make(map[Key]int)
			for img := range jobs {
				tallyImage(img, local)
			}
			results <- local
		}()
	}
	wg.Wait()
	close(results)

	merged := make(map[Key]int)
	for local := range results {
		for k, c := range local {
			merged[k] += c
		}
	}
	return merged
}

func tallyImage(img *grid.Image, counts map[Key]int) {
	seen := make(map[pairKey]struct{})
	w, h := img.Classes.W, img.Classes.H
	for y := int32(0); y < h; y++ {
		for x := int32(0); x < w; x++ {
			p := grid.Point{X: x, Y: y}
			for _, d := range directions {
				q := p.Add(d)
				if !img.InBounds(q) {
					continue
				}
				if img.IDAt(p) == img.IDAt(q) {
					continue
				}
				ap := img.AnchorOf(img.IDAt(p))
				aq := img.AnchorOf(img.IDAt(q))
				key := canonicalPair(ap, aq)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}

				offset := shape.Vec{X: aq.X - ap.X, Y: aq.Y - ap.Y}
				counts[Key{Source: img.ClassAt(p), Target: img.ClassAt(q), Offset: offset}]++
			}
		}
	}
}

// Argmax picks the winning constellation from counts: highest count,
// ties broken by Key.Less. ok is false when counts is empty, signalling
// the corpus is exhausted and the driver should stop.
func Argmax(counts map[Key]int) (winner Key, count int, ok bool) {
	if len(counts) == 0 {
		return Key{}, 0, false
	}
	best := Key{}
	bestCount := -1
	first := true
	for k, c := range counts {
		if first || c > bestCount || (c == bestCount && k.Less(best)) {
			best, bestCount, first = k, c, false
		}
	}
	return best, bestCount, true
}
