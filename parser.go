package mise

// Parser extracts a canonical recipe from one HTML document.
// Implementations are pure: Parse performs no I/O and never panics, so a
// single Parser may be shared by many goroutines.
type Parser interface {
	// Parse extracts a recipe from html. sourceURL selects the site profile
	// and is echoed into Recipe.URL.
	Parse(html, sourceURL string) ParseResult
}

// ProfileInfo describes a registered site profile.
type ProfileInfo struct {
	Name   string `json:"name"`
	Domain string `json:"domain"`
}

// ProfileRegistry maps source URLs to site profiles.
type ProfileRegistry interface {
	// Resolve returns the profile name used for sourceURL. Returns
	// EUNSUPPORTED for authentication-gated social domains.
	Resolve(sourceURL string) (string, error)

	// Profiles returns every registered site profile in dispatch order.
	Profiles() []ProfileInfo
}
