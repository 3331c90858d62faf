// Package corpusgen builds synthetic corpora for tests and examples: a
// deterministic-by-default generator in the spirit of the teacher
// package's builder.Grid, adapted from vertex/edge emission to cell-value
// emission.
package corpusgen

import (
	"fmt"
	"math/rand"

	"github.com/DaiDaiLoh/mdbpe/grid"
)

// config mirrors builder.builderConfig's shape: deterministic defaults,
// options applied in order, no globals.
type config struct {
	rng *rand.Rand
}

// Option configures corpus generation, the same FooOption pattern used
// by builder.BuilderOption and core.GraphOption.
type Option func(*config)

// WithSeed freezes the RNG for reproducible fixtures.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

func newConfig(opts ...Option) config {
	cfg := config{rng: rand.New(rand.NewSource(1))}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Random builds n images of size w x h with cell values drawn uniformly
// from [0, vbase], adapted from builder.Grid's deterministic-fill shape.
func Random(n int, w, h int32, vbase int32, opts ...Option) (*grid.Corpus, error) {
	cfg := newConfig(opts...)
	images := make([]*grid.Image, 0, n)
	for i := 0; i < n; i++ {
		plane := grid.NewPlane(w, h)
		for j := range plane.Data {
			plane.Data[j] = int32(cfg.rng.Intn(int(vbase) + 1))
		}
		img, err := grid.NewImage(int32(i), fmt.Sprintf("synthetic_%d", i), plane)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return grid.NewCorpus(images), nil
}

// FromLiteral builds a single-image corpus from a literal row-major
// grid of base classes, for end-to-end scenario tests.
func FromLiteral(id int32, name string, rows [][]int32) (*grid.Corpus, error) {
	h := int32(len(rows))
	var w int32
	if h > 0 {
		w = int32(len(rows[0]))
	}
	plane := grid.NewPlane(w, h)
	for y, row := range rows {
		for x, v := range row {
			plane.Data[int32(y)*w+int32(x)] = v
		}
	}
	img, err := grid.NewImage(id, name, plane)
	if err != nil {
		return nil, err
	}
	return grid.NewCorpus([]*grid.Image{img}), nil
}
