package merge

import (
	"sync"

	"github.com/DaiDaiLoh/mdbpe/constellation"
	"github.com/DaiDaiLoh/mdbpe/grid"
	"github.com/DaiDaiLoh/mdbpe/shape"
)

// Apply rewrites every occurrence of the winning constellation across
// one image (spec §4.4.2): for each source-class cell whose token is
// anchored there, with a target-class neighbour at key.Offset whose
// token is anchored there too, replace both tokens with one newClass
// instance covering newShape. Cells newShape's offsets would place out
// of bounds are silently skipped, never an error.
func Apply(key constellation.Key, newClass int32, newShape shape.Shape, keepSource bool, img *grid.Image) {
	w, h := img.Classes.W, img.Classes.H
	for y := int32(0); y < h; y++ {
		for x := int32(0); x < w; x++ {
			p := grid.Point{X: x, Y: y}
			if img.ClassAt(p) != key.Source {
				continue
			}
			a := img.AnchorOf(img.IDAt(p))
			if a != p {
				continue
			}
			q := p.Add(key.Offset)
			if !img.InBounds(q) || img.ClassAt(q) != key.Target {
				continue
			}
			aq := img.AnchorOf(img.IDAt(q))
			if aq != q {
				continue
			}

			newAnchor := aq
			if keepSource {
				newAnchor = a
			}
			newID := img.NewAnchoredID(newAnchor)
			for _, cell := range newShape {
				pp := newAnchor.Add(cell.Offset)
				if !img.InBounds(pp) {
					continue
				}
				img.SetCell(pp, newClass, newID)
			}
		}
	}
}

// ApplyParallel distributes Apply across workers goroutines, one per
// image. This is safe because each image's reads and writes are fully
// disjoint from every other image's (spec §5); it never parallelises
// within a single image.
func ApplyParallel(key constellation.Key, newClass int32, newShape shape.Shape, keepSource bool, corpus *grid.Corpus, workers int) {
	if workers <= 1 || len(corpus.Images) <= 1 {
		for _, img := range corpus.Images {
			Apply(key, newClass, newShape, keepSource, img)
		}
		return
	}

	jobs := make(chan *grid.Image, len(corpus.Images))
	for _, img := range corpus.Images {
		jobs <- img
	}
	close(jobs)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for img := range jobs {
				Apply(key, newClass, newShape, keepSource, img)
			}
		}()
	}
	wg.Wait()
}
