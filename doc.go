// Package mdbpe learns and applies a multi-dimensional byte-pair
// encoding over 2-D grids of integer class labels, the kind of output a
// VQ-VAE or similar discrete encoder produces.
//
// What is mdbpe?
//
//	A merge-based tokenizer that treats each image as a grid of single-
//	cell tokens and repeatedly folds the most frequent adjacent pair of
//	tokens into one composite token, recording each fold as an
//	append-only rule:
//		• Shape library: the vocabulary of token shapes, base and composite
//		• Grid store: per-image class/id grids and anchor table
//		• Constellation counter: tallies adjacent token pairs across a corpus
//		• Merge engine: combines a winning pair and rewrites every occurrence
//		• Rule driver: the Initial -> (Counting -> Merging)* -> Terminal loop
//		• Serialization: the wire formats token shapes, rules and sequences
//		  are read from and written to
//		• Directory sharding: spreads per-image output across subfolders
//
// Everything is organized under:
//
//	shape/         — the Library of token shapes (base + composite)
//	grid/          — Image/Corpus/Plane: the mutable per-image grid store
//	constellation/ — counts and ranks adjacent token-pair candidates
//	merge/         — combines a winning pair's shape and rewrites a corpus
//	tokenizer/     — Config, Rule, and the Learn/Apply orchestrators
//	serialize/     — binary grid/rules/shape/sequence formats + folder I/O
//	shard/         — output directory bucketing
//	corpusgen/     — synthetic corpora for tests and examples
//	cmd/mdbpe/     — a CLI wiring the above into learn/apply modes
package mdbpe
