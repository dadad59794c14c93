// Package readability extracts page metadata and main content with
// go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/mise"
	"github.com/go-shiori/go-readability"
)

var _ mise.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the page's metadata and its main content as HTML.
func (e *Extractor) Extract(rawHTML string) (*mise.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, mise.Errorf(mise.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &mise.ExtractResult{
		Title:       article.Title,
		Description: article.Excerpt,
		ImageURL:    article.Image,
		Author:      article.Byline,
		ContentHTML: article.Content,
	}, nil
}
