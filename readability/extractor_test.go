package readability_test

import (
	"testing"

	"github.com/fwojciec/mise"
	"github.com/fwojciec/mise/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ mise.Extractor = (*readability.Extractor)(nil)

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()
	_, err := ext.Extract("")

	require.Error(t, err)
	assert.Equal(t, mise.EINVALID, mise.ErrorCode(err))
}

func TestExtractor_ExtractsTitle(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Weeknight Chili</title></head>
<body><article><p>A hearty chili that comes together in under an hour on a busy weeknight.</p></article></body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "Weeknight Chili", result.Title)
}

func TestExtractor_ExtractsMetadata(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head>
<title>Weeknight Chili</title>
<meta name="description" content="A hearty chili for busy evenings.">
<meta property="og:image" content="https://example.com/chili.jpg">
<meta name="author" content="Sam Cook">
</head>
<body><article><p>A hearty chili that comes together in under an hour on a busy weeknight.</p></article></body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "A hearty chili for busy evenings.", result.Description)
	assert.Equal(t, "https://example.com/chili.jpg", result.ImageURL)
	assert.Equal(t, "Sam Cook", result.Author)
}

func TestExtractor_RemovesNavigation(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/recipes">Recipes Nav Link</a></nav>
<article><p>Brown the beef in a large pot, then add the onions and cook until they soften.</p></article>
</body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.NotContains(t, result.ContentHTML, "Home Nav Link")
	assert.NotContains(t, result.ContentHTML, "Recipes Nav Link")
}

func TestExtractor_RemovesFooter(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article><p>Brown the beef in a large pot, then add the onions and cook until they soften.</p></article>
<footer><p>Footer copyright text 2024</p></footer>
</body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.NotContains(t, result.ContentHTML, "Footer copyright text")
}

func TestExtractor_PreservesLists(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article>
<p>Everything you need for a pot of chili that feeds a crowd:</p>
<ul>
<li>1 pound ground beef</li>
<li>2 cans kidney beans</li>
</ul>
<ol>
<li>Brown the beef.</li>
<li>Simmer with the beans for thirty minutes.</li>
</ol>
</article>
</body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "<ul")
	assert.Contains(t, result.ContentHTML, "<ol")
	assert.Contains(t, result.ContentHTML, "ground beef")
}
