package tokenizer

import (
	"log"

	"github.com/DaiDaiLoh/mdbpe/constellation"
	"github.com/DaiDaiLoh/mdbpe/grid"
	"github.com/DaiDaiLoh/mdbpe/merge"
	"github.com/DaiDaiLoh/mdbpe/shape"
)

// topNLogged is how many top-ranked constellations (the winner among
// them) get logged each iteration, purely diagnostic.
const topNLogged = 5

type state int

const (
	stateInitial state = iota
	stateCounting
	stateMerging
	stateTerminal
)

// Learn runs the rule driver's state machine,
// Initial -> (Counting -> Merging)* -> Terminal, over corpus. It stops
// after cfg.RulesToLearn iterations or when the counter reports the
// corpus is exhausted, whichever comes first; exhaustion before the
// target is reached is never an error (spec §7).
func Learn(cfg Config, corpus *grid.Corpus) (*shape.Library, []Rule, error) {
	lib := shape.NewLibrary(cfg.BaseVocabularyMax)
	rules := make([]Rule, 0, cfg.RulesToLearn)

	st := stateInitial
	iteration := 0
	for {
		switch st {
		case stateInitial:
			st = stateCounting

		case stateCounting:
			if iteration >= cfg.RulesToLearn {
				st = stateTerminal
				continue
			}
			counts := scan(corpus, cfg.Workers)
			winner, count, ok := constellation.Argmax(counts)
			if !ok {
				log.Printf("tokenizer: exhausted after %d rule(s)", iteration)
				st = stateTerminal
				continue
			}
			log.Printf("tokenizer: iteration %d/%d winner=%+v count=%d runners-up=%v",
				iteration+1, cfg.RulesToLearn, winner, count, constellation.TopN(counts, topNLogged))

			newShape, err := merge.Combine(winner, lib)
			if err != nil {
				return nil, nil, err
			}
			newClass, err := lib.Append(newShape)
			if err != nil {
				return nil, nil, err
			}
			rules = append(rules, Rule{Key: winner, NewClass: newClass})

			applyRule(cfg.Workers, winner, newClass, newShape, merge.KeepSourceAnchor(winner.Offset), corpus)
			iteration++
			if cfg.DebugHook != nil {
				cfg.DebugHook(iteration, corpus)
			}
			st = stateMerging

		case stateMerging:
			st = stateCounting

		case stateTerminal:
			return lib, rules, nil
		}
	}
}

// Apply applies a previously learnt rule list, with its accompanying
// shape library, to a fresh corpus without any counting: the
// apply_rules_to_folder operation of the reference implementation,
// and the mechanism behind the I7 apply-only equivalence property.
func Apply(lib *shape.Library, rules []Rule, corpus *grid.Corpus) error {
	for _, r := range rules {
		newShape, err := lib.Shape(r.NewClass)
		if err != nil {
			return err
		}
		keepSource := merge.KeepSourceAnchor(r.Key.Offset)
		for _, img := range corpus.Images {
			merge.Apply(r.Key, r.NewClass, newShape, keepSource, img)
		}
	}
	return nil
}

func scan(corpus *grid.Corpus, workers int) map[constellation.Key]int {
	if workers > 1 {
		return constellation.ScanParallel(corpus, workers)
	}
	return constellation.Scan(corpus)
}

func applyRule(workers int, key constellation.Key, newClass int32, newShape shape.Shape, keepSource bool, corpus *grid.Corpus) {
	if workers > 1 {
		merge.ApplyParallel(key, newClass, newShape, keepSource, corpus, workers)
		return
	}
	for _, img := range corpus.Images {
		merge.Apply(key, newClass, newShape, keepSource, img)
	}
}
