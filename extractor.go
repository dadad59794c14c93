package mise

// ExtractResult holds page metadata and main content pulled from an HTML
// page by a boilerplate-removing extractor.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// Description is the page summary from metadata, if any.
	Description string

	// ImageURL is the lead image from metadata, if any.
	ImageURL string

	// Author is the byline from metadata, if any.
	Author string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor extracts metadata and main content from HTML pages.
// The generic profile uses it for pages with no dedicated site profile.
type Extractor interface {
	// Extract processes raw HTML and returns its metadata and main content.
	Extract(html string) (*ExtractResult, error)
}
