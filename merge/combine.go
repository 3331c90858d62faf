// Package merge combines two classes into a new composite shape and
// rewrites a corpus in place wherever the winning constellation occurs
// (original_source/MDBPE/src/tokenizer.cc's combine_tokens and
// apply_rule).
package merge

import (
	"github.com/DaiDaiLoh/mdbpe/constellation"
	"github.com/DaiDaiLoh/mdbpe/shape"
)

// KeepSourceAnchor reports whether the merged token keeps the source
// token's anchor (true) or the target's (false): keep the source anchor
// iff offset.Y > 0, or offset.Y == 0 and offset.X > 0. Otherwise the
// merged anchor is always the top-most-left-most cell, which is the
// target's. Cross-checked against the reference implementation's
// keep_token_a_ancor = !(offset.y < 0 || (offset.y == 0 && offset.x < 0)).
func KeepSourceAnchor(offset shape.Vec) bool {
	return offset.Y > 0 || (offset.Y == 0 && offset.X > 0)
}

// Combine synthesises the shape of the token produced by merging the
// winning constellation's source and target classes. It does not mutate
// the library; the caller appends the result.
func Combine(key constellation.Key, lib *shape.Library) (shape.Shape, error) {
	src, err := lib.Shape(key.Source)
	if err != nil {
		return nil, err
	}
	tgt, err := lib.Shape(key.Target)
	if err != nil {
		return nil, err
	}

	out := make(shape.Shape, 0, len(src)+len(tgt))
	if KeepSourceAnchor(key.Offset) {
		out = append(out, src...)
		for _, c := range tgt {
			out = append(out, shape.Cell{Offset: c.Offset.Add(key.Offset), Base: c.Base})
		}
	} else {
		out = append(out, tgt...)
		for _, c := range src {
			out = append(out, shape.Cell{Offset: c.Offset.Sub(key.Offset), Base: c.Base})
		}
	}
	return out, nil
}
