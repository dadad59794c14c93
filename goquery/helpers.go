package goquery

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
	"github.com/fwojciec/mise"
	"golang.org/x/net/html"
)

// cleanText unescapes entities, strips markup that some publishers embed in
// structured data strings and collapses whitespace.
func cleanText(s string) string {
	if strings.ContainsAny(s, "<&") {
		if strings.Contains(s, "<") {
			if doc, err := goquery.NewDocumentFromReader(strings.NewReader(s)); err == nil {
				s = doc.Text()
			}
		} else {
			s = html.UnescapeString(s)
		}
	}
	return mise.NormalizeSpace(s)
}

// text returns the cleaned text of the first element matching selector.
func text(s *goquery.Selection, selector string) string {
	if selector == "" {
		return ""
	}
	return mise.NormalizeSpace(s.Find(selector).First().Text())
}

// texts returns the cleaned, non-empty text of every element matching
// selector.
func texts(s *goquery.Selection, selector string) []string {
	if selector == "" {
		return nil
	}
	var out []string
	s.Find(selector).Each(func(_ int, el *goquery.Selection) {
		if t := mise.NormalizeSpace(el.Text()); t != "" {
			out = append(out, t)
		}
	})
	return out
}

// textWithout returns the element's text with the excluded descendants
// removed. The document is not modified.
func textWithout(s *goquery.Selection, exclude []string) string {
	if len(exclude) == 0 {
		return mise.NormalizeSpace(s.Text())
	}
	clone := s.Clone()
	for _, sel := range exclude {
		if sel != "" {
			clone.Find(sel).Remove()
		}
	}
	return mise.NormalizeSpace(clone.Text())
}

// readInner returns the text or attribute a note rule points at, relative
// to s.
func readInner(s *goquery.Selection, selector, attr string) string {
	target := s
	if selector != "" {
		target = s.Find(selector).First()
		if target.Length() == 0 {
			return ""
		}
	}
	if attr != "" {
		return strings.TrimSpace(target.AttrOr(attr, ""))
	}
	return mise.NormalizeSpace(target.Text())
}

// imageSrc returns the image URL of s or of the first img inside it,
// resolved against base.
func imageSrc(s *goquery.Selection, base *url.URL) string {
	if s.Length() == 0 {
		return ""
	}
	img := s.First()
	if !img.Is("img, source") {
		if inner := img.Find("img").First(); inner.Length() > 0 {
			img = inner
		}
	}
	for _, attr := range []string{"src", "data-src", "data-lazy-src", "data-original", "content", "href"} {
		if v := strings.TrimSpace(img.AttrOr(attr, "")); v != "" && !strings.HasPrefix(v, "data:") {
			return resolveURL(v, base)
		}
	}
	if srcset := strings.TrimSpace(img.AttrOr("srcset", "")); srcset != "" {
		first, _, _ := strings.Cut(srcset, ",")
		u, _, _ := strings.Cut(strings.TrimSpace(first), " ")
		return resolveURL(u, base)
	}
	return ""
}

func resolveURL(ref string, base *url.URL) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "//") {
		return "https:" + ref
	}
	if base == nil {
		return ref
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(u).String()
}

// baseOf returns sourceURL parsed as an absolute URL, or nil.
func baseOf(sourceURL string) *url.URL {
	u, err := url.Parse(sourceURL)
	if err != nil || !u.IsAbs() {
		return nil
	}
	return u
}

var byPrefixRe = regexp.MustCompile(`(?i)^(?:recipe\s+)?by:?\s+`)

// stripBy removes a leading "By " byline prefix.
func stripBy(s string) string {
	return strings.TrimSpace(byPrefixRe.ReplaceAllString(s, ""))
}

// Nutrition patterns are tried in order: "Label: N", "N label", "Label N".
// Numbers may carry thousands separators.
const nutritionNumber = `(` + mise.NumberPattern + `)`

var (
	caloriesRe = nutritionPatterns(`calories`, nutritionNumber+`\s*(?:kcal|calories|cals?)\b`)
	proteinRe  = nutritionPatterns(`protein`, nutritionNumber+`\s*g\s*(?:of\s+)?protein`)
	carbsRe    = nutritionPatterns(`(?:carbohydrates?|carbs)`, nutritionNumber+`\s*g\s*(?:of\s+)?(?:carbohydrates?|carbs)`)
	fatRe      = nutritionPatterns(`(?:total\s+)?fat`, nutritionNumber+`\s*g\s*(?:of\s+)?(?:total\s+)?fat`)
)

func nutritionPatterns(label, numberFirst string) []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b` + label + `:\s*` + nutritionNumber),
		regexp.MustCompile(`(?i)` + numberFirst),
		regexp.MustCompile(`(?i)\b` + label + `\s+` + nutritionNumber),
	}
}

// parseNutrition reads calories, protein, carbs and fat from free text in
// either "Calories: 150" or "150 calories" order. It returns nil when no
// value is found.
func parseNutrition(s string) *mise.NutritionInfo {
	if s == "" {
		return nil
	}
	n := &mise.NutritionInfo{
		Calories: firstMatch(s, caloriesRe),
		Protein:  firstMatch(s, proteinRe),
		Carbs:    firstMatch(s, carbsRe),
		Fat:      firstMatch(s, fatRe),
	}
	if *n == (mise.NutritionInfo{}) {
		return nil
	}
	return n
}

func firstMatch(s string, res []*regexp.Regexp) int {
	for _, re := range res {
		if m := re.FindStringSubmatch(s); m != nil {
			if n := int(mise.ParseNumber(m[1])); n > 0 {
				return n
			}
		}
	}
	return 0
}

// normalizeDate converts a publisher date to RFC 3339 in UTC. It returns
// "" when s cannot be parsed.
func normalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// splitLabels splits a publisher label list such as "Vegan, Gluten-Free |
// Dairy-Free".
func splitLabels(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '|' || r == '•' || r == '/' || r == ';' || r == '\n'
	})
}
