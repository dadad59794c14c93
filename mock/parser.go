package mock

import "github.com/fwojciec/mise"

var _ mise.Parser = (*Parser)(nil)

// Parser is a mock implementation of mise.Parser.
type Parser struct {
	ParseFn func(html, sourceURL string) mise.ParseResult
}

func (p *Parser) Parse(html, sourceURL string) mise.ParseResult {
	return p.ParseFn(html, sourceURL)
}

var _ mise.ProfileRegistry = (*ProfileRegistry)(nil)

// ProfileRegistry is a mock implementation of mise.ProfileRegistry.
type ProfileRegistry struct {
	ResolveFn  func(sourceURL string) (string, error)
	ProfilesFn func() []mise.ProfileInfo
}

func (r *ProfileRegistry) Resolve(sourceURL string) (string, error) {
	return r.ResolveFn(sourceURL)
}

func (r *ProfileRegistry) Profiles() []mise.ProfileInfo {
	return r.ProfilesFn()
}
