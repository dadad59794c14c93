package mise

import "context"

// DefaultUserAgent identifies fetch requests to publishers.
const DefaultUserAgent = "Mozilla/5.0 (compatible; RecipeBot/1.0)"

// Fetcher retrieves HTML for recipe pages. Fetching lives outside the
// parser: implementations own timeouts and transport concerns, while
// retries and politeness belong to the batch layer.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
