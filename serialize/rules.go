package serialize

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/DaiDaiLoh/mdbpe/constellation"
	"github.com/DaiDaiLoh/mdbpe/shape"
	"github.com/DaiDaiLoh/mdbpe/tokenizer"
)

// ruleRecord is the fixed on-disk layout of one rules.dat entry: five
// little-endian int32 fields, no length prefix on the record or on the
// file (io.cc's write_rules/read_rules read until EOF).
type ruleRecord struct {
	Source, Target, OffsetX, OffsetY, NewClass int32
}

// WriteRules writes the ordered rule list to path in emission order.
// Re-running the tokenizer on the same corpus must produce a
// byte-identical file (invariant I5).
func WriteRules(path string, rules []tokenizer.Rule) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, r := range rules {
		rec := ruleRecord{
			Source: r.Key.Source, Target: r.Key.Target,
			OffsetX: r.Key.Offset.X, OffsetY: r.Key.Offset.Y,
			NewClass: r.NewClass,
		}
		if err := binary.Write(f, binary.LittleEndian, rec); err != nil {
			return fmt.Errorf("serialize: write rule: %w", err)
		}
	}
	return nil
}

// ReadRules reads an ordered rule list back from path.
func ReadRules(path string) ([]tokenizer.Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rules []tokenizer.Rule
	for {
		var rec ruleRecord
		err := binary.Read(f, binary.LittleEndian, &rec)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("serialize: read rule: %w", err)
		}
		rules = append(rules, tokenizer.Rule{
			Key: constellation.Key{
				Source: rec.Source, Target: rec.Target,
				Offset: shape.Vec{X: rec.OffsetX, Y: rec.OffsetY},
			},
			NewClass: rec.NewClass,
		})
	}
	return rules, nil
}
