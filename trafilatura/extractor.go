// Package trafilatura extracts page metadata and main content with
// go-trafilatura. The generic profile uses it for unknown publishers.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/mise"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

var _ mise.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura.
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

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback: true,
	})
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &mise.ExtractResult{
		Title:       result.Metadata.Title,
		Description: result.Metadata.Description,
		ImageURL:    result.Metadata.Image,
		Author:      result.Metadata.Author,
		ContentHTML: contentHTML,
	}, nil
}

func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
