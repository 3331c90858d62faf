package serialize

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/DaiDaiLoh/mdbpe/grid"
	"github.com/DaiDaiLoh/mdbpe/shard"
)

// WriteSequence writes one <name>_sequence.dat file: scanning img.IDs
// row-major, for every distinct token id encountered emit
// (class, anchor.x, anchor.y) as little-endian int32s, in first-seen
// order (io.cc's write_token_sequences). The first sighting of an id
// must land on that id's registered anchor cell -- anything else means
// the anchor table and the id grid have drifted apart, an implementation
// bug rather than bad input, so it is reported as an *grid.InvariantError
// rather than an ordinary I/O error.
func WriteSequence(outputDir string, modulus int, img *grid.Image) (err error) {
	defer func() {
		if r := recover(); r != nil {
			ie, ok := r.(*grid.InvariantError)
			if !ok {
				panic(r)
			}
			err = ie
		}
	}()

	dir := filepath.Join(outputDir, shard.Path(int(img.ID), modulus))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	path := filepath.Join(dir, img.Filename+"_sequence.dat")
	f, createErr := os.Create(path)
	if createErr != nil {
		return createErr
	}
	defer f.Close()

	seen := make(map[int32]struct{})
	w, h := img.Classes.W, img.Classes.H
	for y := int32(0); y < h; y++ {
		for x := int32(0); x < w; x++ {
			p := grid.Point{X: x, Y: y}
			id := img.IDAt(p)
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}

			anchor := img.AnchorOf(id)
			if anchor != p {
				panic(&grid.InvariantError{
					Op:     "serialize.WriteSequence",
					Detail: fmt.Sprintf("token id %d first seen at %+v but anchored at %+v", id, p, anchor),
				})
			}
			rec := [3]int32{img.ClassAt(p), anchor.X, anchor.Y}
			if err := binary.Write(f, binary.LittleEndian, rec); err != nil {
				return fmt.Errorf("serialize: write sequence record: %w", err)
			}
		}
	}
	return nil
}

// WriteSequences writes the sequence file for every image in corpus.
func WriteSequences(outputDir string, modulus int, corpus *grid.Corpus) error {
	for _, img := range corpus.Images {
		if err := WriteSequence(outputDir, modulus, img); err != nil {
			return err
		}
	}
	return nil
}
