package batch

import "github.com/bits-and-blooms/bloom/v3"

// Filter remembers URLs already queued in a run. False positives are
// possible, so a distinct URL is very occasionally skipped as a repeat.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter returns a filter sized for n URLs at the given false positive
// rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{f: bloom.NewWithEstimates(n, fpRate)}
}

// Add records url.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Test reports whether url may have been added.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}
