package batch

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ComputeHash returns the xxhash of content as a hex string. Stored
// recipes carry the hash of their source HTML so unchanged pages can be
// skipped on the next run.
func ComputeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}

// TruncateURL shortens a URL for display, keeping the end which is more
// informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

// String formats the summary as a one-line report.
func (s Summary) String() string {
	out := fmt.Sprintf("%d saved, %d unchanged, %d failed", s.Saved, s.Unchanged, s.Failed)
	if s.Skipped > 0 {
		out += fmt.Sprintf(", %d duplicate", s.Skipped)
	}
	return out
}
