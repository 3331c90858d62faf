// Package tokenizer drives the merge-rule state machine: repeatedly
// counting constellations, combining the winner into a new shape, and
// rewriting the corpus, recording each step as an append-only Rule.
package tokenizer

import "github.com/DaiDaiLoh/mdbpe/constellation"

// Rule is an append-only record mapping a constellation to the new
// composite class it introduced. NewClass always equals the shape
// library's size just before the new shape was appended.
type Rule struct {
	Key      constellation.Key
	NewClass int32
}
