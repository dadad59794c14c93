// Package goquery implements recipe extraction over HTML using goquery.
// Site profiles are data records of CSS selectors and a few override hooks;
// one shared engine applies any profile to a document.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mise"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// LoadDocument parses raw HTML into a queryable document. It fails with
// PARSER_ERROR when the input is blank, or when it neither declares an html
// or body root nor contains any recognized HTML element, as with
// "<invalid>html</invalid>".
func LoadDocument(raw string) (*goquery.Document, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, mise.Errorf(mise.EPARSER, "empty HTML document")
	}

	root, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return nil, mise.Errorf(mise.EPARSER, "malformed HTML: %v", err)
	}
	if !hasContentElement(root) && !declaresRoot(raw) {
		return nil, mise.Errorf(mise.EPARSER, "malformed HTML: no content element")
	}
	return goquery.NewDocumentFromNode(root), nil
}

// declaresRoot reports whether the source spells out an html or body tag.
func declaresRoot(raw string) bool {
	lower := strings.ToLower(raw)
	return strings.Contains(lower, "<html") || strings.Contains(lower, "<body")
}

// hasContentElement reports whether the tree holds a known HTML element
// other than the html, head and body wrappers the parser synthesizes.
func hasContentElement(n *html.Node) bool {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Html, atom.Head, atom.Body, 0:
		default:
			return true
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if hasContentElement(c) {
			return true
		}
	}
	return false
}
