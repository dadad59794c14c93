package mise

import "strings"

// TagSet accumulates tags, dropping case-insensitive duplicates while
// keeping the casing first seen. The zero value is ready to use.
type TagSet struct {
	seen map[string]bool
	tags []string
}

// Add appends each non-blank tag not already present.
func (s *TagSet) Add(tags ...string) {
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}
	for _, t := range tags {
		t = NormalizeSpace(t)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if s.seen[key] {
			continue
		}
		s.seen[key] = true
		s.tags = append(s.tags, t)
	}
}

// AddList splits a comma-separated list and adds each element.
func (s *TagSet) AddList(list string) {
	s.Add(strings.Split(list, ",")...)
}

// Has reports whether tag was added, ignoring case.
func (s *TagSet) Has(tag string) bool {
	return s.seen[strings.ToLower(NormalizeSpace(tag))]
}

// Tags returns the tags in insertion order. The result is never nil.
func (s *TagSet) Tags() []string {
	out := make([]string, len(s.tags))
	copy(out, s.tags)
	return out
}

// Slug lowercases s and joins its words with hyphens, so "Comfort Food"
// becomes "comfort-food".
func Slug(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}
