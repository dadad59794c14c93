package mock

import "github.com/fwojciec/mise"

var _ mise.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of mise.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*mise.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*mise.ExtractResult, error) {
	return e.ExtractFn(html)
}
