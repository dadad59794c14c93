package goquery

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/mise"
)

var _ mise.Parser = (*Parser)(nil)

// Parser implements mise.Parser over a profile Registry. It holds only
// read-only configuration, so one Parser may serve many goroutines.
type Parser struct {
	registry *Registry
	lexicon  *mise.Lexicon
	logger   *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithRegistry sets the profile registry.
// Defaults to NewDefaultRegistry with a generic profile that has no
// extractor or converter.
func WithRegistry(r *Registry) Option {
	return func(p *Parser) {
		p.registry = r
	}
}

// WithLogger sets the logger used for structured data warnings.
// Defaults to a logger that discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// NewParser creates a Parser that classifies with lex.
func NewParser(lex *mise.Lexicon, opts ...Option) *Parser {
	p := &Parser{lexicon: lex}
	for _, opt := range opts {
		opt(p)
	}
	if p.registry == nil {
		p.registry = NewDefaultRegistry(NewGenericProfile(nil, nil))
	}
	if p.logger == nil {
		p.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return p
}

// Registry returns the parser's profile registry.
func (p *Parser) Registry() *Registry {
	return p.registry
}

// Parse extracts a recipe from html. It never panics: unexpected failures
// are reported with the profile's internal error code.
func (p *Parser) Parse(html, sourceURL string) (res mise.ParseResult) {
	profile, err := p.registry.Lookup(sourceURL)
	if err != nil {
		return mise.FailedWith(err, mise.EPARSER)
	}
	if profile == nil {
		return mise.Failed(mise.EPARSER, fmt.Sprintf("no profile for %s", sourceURL))
	}

	code := profile.InternalCode
	if code == "" {
		code = mise.EPARSER
	}
	defer func() {
		if rec := recover(); rec != nil {
			p.logger.Error("recipe extraction panicked", "url", sourceURL, "profile", profile.Name, "panic", rec)
			res = mise.Failed(code, fmt.Sprintf("unexpected failure while parsing: %v", rec))
		}
	}()

	doc, err := LoadDocument(html)
	if err != nil {
		return mise.FailedWith(err, mise.EPARSER)
	}

	sd := FindStructuredData(doc, p.logger.With("url", sourceURL))
	recipe, err := profile.Extract(doc, sd, sourceURL, p.lexicon)
	if err != nil {
		return mise.FailedWith(err, code)
	}
	return mise.Succeeded(recipe)
}
