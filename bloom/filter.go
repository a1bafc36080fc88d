// Package bloom provides tab-reference deduplication using Bloom filters.
// Playlists occasionally list the same arrangement twice; the filter makes
// sure each reference is processed exactly once.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// DefaultCapacity sizes the filter for a large playlist.
const DefaultCapacity = 4096

// DefaultFalsePositiveRate is the acceptable false positive rate for
// playlist deduplication.
const DefaultFalsePositiveRate = 0.001

// Filter wraps a Bloom filter keyed by tab URL.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a Bloom filter sized for n expected references with
// the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen records the URL and reports whether it was already present.
// False positives are possible; false negatives are not.
func (f *Filter) Seen(url string) bool {
	if f.f.TestString(url) {
		return true
	}
	f.f.AddString(url)
	return false
}
