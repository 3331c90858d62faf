// Command mdbpe learns or applies a multi-dimensional BPE merge
// vocabulary over a folder of 2-D class grids.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/DaiDaiLoh/mdbpe/grid"
	"github.com/DaiDaiLoh/mdbpe/serialize"
	"github.com/DaiDaiLoh/mdbpe/shape"
	"github.com/DaiDaiLoh/mdbpe/tokenizer"
)

func main() {
	os.Exit(run())
}

func run() int {
	mode := flag.String("mode", "learn", "one of: learn, apply")
	baseVocabularyMax := flag.Int("base-vocabulary-max", 255, "largest base class id appearing in any input cell")
	rulesToLearn := flag.Int("rules-to-learn", 32, "number of merge iterations to run")
	imageWidth := flag.Int("image-width", 12, "expected image width")
	imageHeight := flag.Int("image-height", 12, "expected image height")
	bucketModulus := flag.Int("bucket-modulus", 128, "directory sharding fan-out")
	inputDir := flag.String("input-dir", "", "input folder of .dat grid files (required)")
	outputDir := flag.String("output-dir", "", "output folder (required)")
	rulesFile := flag.String("rules-file", "", "rules.dat to apply (mode=apply only)")
	tokenDir := flag.String("token-dir", "", "token shape folder to apply (mode=apply only)")
	workers := flag.Int("workers", 1, "worker goroutines for the counting/rewrite passes")
	debugDir := flag.String("debug-dir", "", "if set, dump a compressed snapshot of every image after each merge iteration (mode=learn only)")
	flag.Parse()

	if *inputDir == "" || *outputDir == "" {
		fmt.Fprintln(os.Stderr, "-input-dir and -output-dir are required")
		flag.Usage()
		return 2
	}

	opts := []tokenizer.Option{
		tokenizer.WithBaseVocabularyMax(int32(*baseVocabularyMax)),
		tokenizer.WithRulesToLearn(*rulesToLearn),
		tokenizer.WithImageSize(int32(*imageWidth), int32(*imageHeight)),
		tokenizer.WithBucketModulus(*bucketModulus),
		tokenizer.WithInputDir(*inputDir),
		tokenizer.WithOutputDir(*outputDir),
		tokenizer.WithWorkers(*workers),
	}
	if *debugDir != "" {
		if err := os.MkdirAll(*debugDir, 0o755); err != nil {
			log.Printf("mdbpe: %v", err)
			return 1
		}
		opts = append(opts, tokenizer.WithDebugHook(debugDumper(*debugDir)))
	}
	cfg := tokenizer.NewConfig(opts...)

	images, err := serialize.LoadFolder(cfg.InputDir, cfg.ImageWidth, cfg.ImageHeight)
	if err != nil {
		log.Printf("mdbpe: %v", err)
		return exitCodeFor(err)
	}
	corpus := grid.NewCorpus(images)

	switch *mode {
	case "learn":
		return runLearn(cfg, corpus)
	case "apply":
		return runApply(cfg, corpus, *rulesFile, *tokenDir)
	default:
		fmt.Fprintf(os.Stderr, "unknown -mode %q\n", *mode)
		return 2
	}
}

func runLearn(cfg tokenizer.Config, corpus *grid.Corpus) int {
	lib, rules, err := tokenizer.Learn(cfg, corpus)
	if err != nil {
		log.Printf("mdbpe: learn: %v", err)
		return exitCodeFor(err)
	}
	if err := writeOutputs(cfg, lib, rules, corpus); err != nil {
		log.Printf("mdbpe: %v", err)
		return exitCodeFor(err)
	}
	return 0
}

func runApply(cfg tokenizer.Config, corpus *grid.Corpus, rulesFile, tokenDir string) int {
	if rulesFile == "" || tokenDir == "" {
		fmt.Fprintln(os.Stderr, "-rules-file and -token-dir are required for -mode=apply")
		return 2
	}
	lib, err := serialize.LoadShapes(tokenDir)
	if err != nil {
		log.Printf("mdbpe: %v", err)
		return exitCodeFor(err)
	}
	rules, err := serialize.ReadRules(rulesFile)
	if err != nil {
		log.Printf("mdbpe: %v", err)
		return exitCodeFor(err)
	}
	if err := tokenizer.Apply(lib, rules, corpus); err != nil {
		log.Printf("mdbpe: apply: %v", err)
		return exitCodeFor(err)
	}
	if err := serialize.MakeOutputDirs(cfg.OutputDir, cfg.BucketModulus, imageIDs(corpus)); err != nil {
		log.Printf("mdbpe: %v", err)
		return exitCodeFor(err)
	}
	if err := serialize.WriteSequences(filepath.Join(cfg.OutputDir, "transcribed_data"), cfg.BucketModulus, corpus); err != nil {
		log.Printf("mdbpe: %v", err)
		return exitCodeFor(err)
	}
	return 0
}

func writeOutputs(cfg tokenizer.Config, lib *shape.Library, rules []tokenizer.Rule, corpus *grid.Corpus) error {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return err
	}
	tokenDir := filepath.Join(cfg.OutputDir, "tokens")
	if err := os.MkdirAll(tokenDir, 0o755); err != nil {
		return err
	}
	if err := serialize.WriteShapes(tokenDir, lib); err != nil {
		return err
	}
	if err := serialize.WriteRules(filepath.Join(cfg.OutputDir, "rules.dat"), rules); err != nil {
		return err
	}
	if err := serialize.MakeOutputDirs(cfg.OutputDir, cfg.BucketModulus, imageIDs(corpus)); err != nil {
		return err
	}
	return serialize.WriteSequences(filepath.Join(cfg.OutputDir, "transcribed_data"), cfg.BucketModulus, corpus)
}

// imageIDs collects the ids of every image in corpus, the input
// MakeOutputDirs needs to pre-create the sharded output tree.
func imageIDs(corpus *grid.Corpus) []int32 {
	ids := make([]int32, len(corpus.Images))
	for i, img := range corpus.Images {
		ids[i] = img.ID
	}
	return ids
}

// debugDumper returns a tokenizer.Config.DebugHook that writes every
// image in the corpus to "<dir>/iter<NNNN>_image<NNNNNN>.debug" after
// each merge iteration. Failures are logged, not propagated: a debug
// dump going astray should never abort a learn run.
func debugDumper(dir string) func(int, *grid.Corpus) {
	return func(iteration int, corpus *grid.Corpus) {
		for _, img := range corpus.Images {
			path := filepath.Join(dir, fmt.Sprintf("iter%04d_image%06d.debug", iteration, img.ID))
			if err := serialize.DumpDebugSnapshot(path, img); err != nil {
				log.Printf("mdbpe: debug snapshot %s: %v", path, err)
			}
		}
	}
}

// exitCodeFor maps an error to the exit codes of spec §6: 2 for a shape
// mismatch, 1 for any other I/O or format failure.
func exitCodeFor(err error) int {
	if errors.Is(err, serialize.ErrDimensionMismatch) || errors.Is(err, serialize.ErrShapeIndexGap) {
		return 2
	}
	return 1
}
