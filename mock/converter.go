package mock

import "github.com/fwojciec/mise"

var _ mise.Converter = (*Converter)(nil)

// Converter is a mock implementation of mise.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
