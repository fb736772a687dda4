// Package filter provides the probabilistic account membership filter used
// for scanning blocks.
package filter

import (
	"github.com/bits-and-blooms/bloom/v3"
)

// bitsPerValue sizes the underlying bit array relative to the number of
// values the filter is built from.
const bitsPerValue = 64

// Filter tests string values for membership. A positive answer may be a
// false positive, a negative answer is always right.
type Filter struct {
	bloom *bloom.BloomFilter
}

// New constructs a filter seeded with the specified values, using the
// specified number of hash functions per value.
func New(values []string, hashes uint) *Filter {
	if hashes == 0 {
		hashes = 1
	}

	bits := uint(len(values)+1) * bitsPerValue

	bf := bloom.New(bits, hashes)
	for _, value := range values {
		bf.AddString(value)
	}

	return &Filter{
		bloom: bf,
	}
}

// Test reports whether the value may have been added to the filter.
func (f *Filter) Test(value string) bool {
	return f.bloom.TestString(value)
}
