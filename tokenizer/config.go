package tokenizer

import "github.com/DaiDaiLoh/mdbpe/grid"

// Config carries every option recognised by the tokenizer driver
// (spec §6). Fields mirror the hard-coded constants of
// original_source/MDBPE/src/main.cc, exposed here as configuration
// rather than compiled-in values.
type Config struct {
	BaseVocabularyMax int32
	RulesToLearn      int
	ImageWidth        int32
	ImageHeight       int32
	BucketModulus     int
	InputDir          string
	OutputDir         string
	Workers           int // <=1 means the single-threaded core loop (spec §5)

	// DebugHook, if set, is called after every successful merge
	// iteration with the iteration number (1-based) and the corpus as
	// it stands after the rewrite. The hook returns nothing: callers that
	// want durable snapshots supply one that writes them out themselves,
	// keeping this package free of any serialize dependency.
	DebugHook func(iteration int, corpus *grid.Corpus)
}

// Option configures a Config, the same FooOption func(*Foo) pattern used
// throughout the pack (core.GraphOption, builder.BuilderOption).
type Option func(*Config)

// WithBaseVocabularyMax sets the largest base class id any input cell may
// carry.
func WithBaseVocabularyMax(v int32) Option {
	return func(c *Config) { c.BaseVocabularyMax = v }
}

// WithRulesToLearn sets how many merge iterations Learn performs at most.
func WithRulesToLearn(n int) Option {
	return func(c *Config) { c.RulesToLearn = n }
}

// WithImageSize sets the expected width and height every input image
// must have.
func WithImageSize(w, h int32) Option {
	return func(c *Config) { c.ImageWidth, c.ImageHeight = w, h }
}

// WithBucketModulus sets the directory sharding fan-out.
func WithBucketModulus(m int) Option {
	return func(c *Config) { c.BucketModulus = m }
}

// WithInputDir sets the folder input grids are loaded from. Learn and
// Apply do not read it; they work on an already loaded corpus.
func WithInputDir(d string) Option {
	return func(c *Config) { c.InputDir = d }
}

// WithOutputDir sets the folder output artifacts are written to.
func WithOutputDir(d string) Option {
	return func(c *Config) { c.OutputDir = d }
}

// WithWorkers sets how many goroutines the counting and rewrite passes
// may use.
func WithWorkers(n int) Option {
	return func(c *Config) { c.Workers = n }
}

// WithDebugHook installs a callback invoked after each merge iteration,
// for intermediate debug dumps of the corpus as it is being rewritten.
func WithDebugHook(fn func(iteration int, corpus *grid.Corpus)) Option {
	return func(c *Config) { c.DebugHook = fn }
}

// NewConfig resolves a Config from deterministic defaults plus opts,
// applied in order (later overrides earlier) -- the same contract as
// builder.newBuilderConfig. Defaults mirror main.cc.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		BaseVocabularyMax: 255,
		RulesToLearn:      32,
		ImageWidth:        12,
		ImageHeight:       12,
		BucketModulus:     128,
		Workers:           1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
