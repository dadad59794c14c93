package goquery

import (
	"net/url"
	"strings"

	"github.com/fwojciec/mise"
)

var _ mise.ProfileRegistry = (*Registry)(nil)

// socialDomains host posts that need an authenticated session to read.
var socialDomains = []string{
	"instagram.com",
	"instagr.am",
	"facebook.com",
	"fb.com",
	"tiktok.com",
	"twitter.com",
	"x.com",
	"pinterest.com",
}

// Registry dispatches source URLs to site profiles by domain, falling back
// to a generic profile for unrecognized hosts. Profiles are matched in
// registration order. A Registry must not be modified while parsers use it.
type Registry struct {
	fallback *Profile
	profiles []*Profile
}

// NewRegistry creates a Registry with the given fallback profile.
func NewRegistry(fallback *Profile) *Registry {
	return &Registry{fallback: fallback}
}

// NewDefaultRegistry creates a Registry holding every built-in site profile
// with generic as the fallback.
func NewDefaultRegistry(generic *Profile) *Registry {
	r := NewRegistry(generic)
	for _, p := range SiteProfiles() {
		r.Register(p)
	}
	return r
}

// Register adds a profile. A profile with the same name is replaced.
func (r *Registry) Register(p *Profile) {
	for i, existing := range r.profiles {
		if existing.Name == p.Name {
			r.profiles[i] = p
			return
		}
	}
	r.profiles = append(r.profiles, p)
}

// Lookup returns the profile for sourceURL. Authentication-gated social
// domains fail with UNSUPPORTED_SITE.
func (r *Registry) Lookup(sourceURL string) (*Profile, error) {
	host := hostOf(sourceURL)
	if err := checkSocial(host); err != nil {
		return nil, err
	}
	if host != "" {
		for _, p := range r.profiles {
			if p.Domain != "" && strings.Contains(host, p.Domain) {
				return p, nil
			}
		}
	}
	return r.fallback, nil
}

// Resolve returns the name of the profile used for sourceURL.
func (r *Registry) Resolve(sourceURL string) (string, error) {
	p, err := r.Lookup(sourceURL)
	if err != nil {
		return "", err
	}
	return p.Name, nil
}

// Profiles returns the registered site profiles followed by the fallback.
func (r *Registry) Profiles() []mise.ProfileInfo {
	infos := make([]mise.ProfileInfo, 0, len(r.profiles)+1)
	for _, p := range r.profiles {
		infos = append(infos, mise.ProfileInfo{Name: p.Name, Domain: p.Domain})
	}
	if r.fallback != nil {
		infos = append(infos, mise.ProfileInfo{Name: r.fallback.Name, Domain: r.fallback.Domain})
	}
	return infos
}

func hostOf(sourceURL string) string {
	u, err := url.Parse(strings.TrimSpace(sourceURL))
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}

func checkSocial(host string) error {
	for _, d := range socialDomains {
		if host != d && !strings.HasSuffix(host, "."+d) {
			continue
		}
		if d == "instagram.com" || d == "instagr.am" {
			return mise.Errorf(mise.EUNSUPPORTED, "Instagram URLs require authentication and cannot be parsed directly. Copy the recipe text from the post instead.")
		}
		return mise.Errorf(mise.EUNSUPPORTED, "Social media URLs (%s) may require authentication. Use the direct recipe URL instead.", d)
	}
	return nil
}
