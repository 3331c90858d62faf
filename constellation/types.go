// Package constellation counts adjacency patterns across a corpus and
// picks the most frequent one each iteration (original_source/MDBPE/src/
// constellation.hh, tokenizer.cc's get_most_common_constellation).
package constellation

import "github.com/DaiDaiLoh/mdbpe/shape"

// Key is a directed triple (source class, target class, anchor offset)
// describing one adjacency pattern. The direction is deliberate: spec
// keeps (source, target, offset) distinct from (target, source, -offset)
// rather than folding them into one undirected pattern.
type Key struct {
	Source int32
	Target int32
	Offset shape.Vec
}

// Less implements the total order used to break count ties
// deterministically: compare (Source, Target, Offset.Y, Offset.X)
// lexicographically. Never rely on map iteration order instead.
func (k Key) Less(o Key) bool {
	if k.Source != o.Source {
		return k.Source < o.Source
	}
	if k.Target != o.Target {
		return k.Target < o.Target
	}
	if k.Offset.Y != o.Offset.Y {
		return k.Offset.Y < o.Offset.Y
	}
	return k.Offset.X < o.Offset.X
}
