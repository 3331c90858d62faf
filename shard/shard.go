// Package shard computes the output directory layout for per-image
// artifacts, matching original_source/MDBPE/src/io.cc's bucketing.
package shard

import "fmt"

// Bucket maps an image id to its output bucket: id mod modulus,
// normalised into [0, modulus).
func Bucket(id, modulus int) int {
	if modulus <= 0 {
		return 0
	}
	b := id % modulus
	if b < 0 {
		b += modulus
	}
	return b
}

// Path builds the two-level "<bucket:06>/<id:06>" layout used by the
// reference implementation. Spec §6 leaves the zero-padding width
// unspecified; this supplements it with the reference's fixed six digits.
func Path(id, modulus int) string {
	return fmt.Sprintf("%06d/%06d", Bucket(id, modulus), id)
}
