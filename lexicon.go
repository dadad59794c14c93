package mise

import (
	"strings"
	"unicode"
)

// Lexicon is the vocabulary used by the ingredient normalizer, classifier
// and tag aggregator. It is loaded from an external resource so word lists
// can be adapted without recompiling. A Lexicon must not be modified once it
// is shared between parsers.
type Lexicon struct {
	// Dietary keyword lists.
	Meat           Keywords `yaml:"meat"`
	AnimalProducts Keywords `yaml:"animalProducts"`
	Gluten         Keywords `yaml:"gluten"`
	Dairy          Keywords `yaml:"dairy"`

	// Cuisines are scanned in order; several may match.
	Cuisines []Cuisine `yaml:"cuisines"`

	// Category keyword scans shared by every profile.
	MealTypes      Keywords `yaml:"mealTypes"`
	CookingMethods Keywords `yaml:"cookingMethods"`

	// Equipment marks a step that needs special equipment.
	Equipment Keywords `yaml:"equipment"`

	// SizeAdjectives are moved from an egg ingredient's name to its notes.
	SizeAdjectives Keywords `yaml:"sizeAdjectives"`

	// Boilerplate phrases mark ingredient lines that are page chrome.
	Boilerplate []string `yaml:"boilerplate"`

	// Units maps lowercase unit spellings to their canonical unit. Profiles
	// without their own table use this one.
	Units UnitTable `yaml:"units"`
}

// Cuisine is one row of the cuisine keyword table.
type Cuisine struct {
	Name     string   `yaml:"name"`
	Keywords Keywords `yaml:"keywords"`
}

// Validate returns an error if the lexicon is missing a required list.
func (l *Lexicon) Validate() error {
	if len(l.Meat) == 0 {
		return Errorf(EINVALID, "lexicon meat keywords required")
	}
	if len(l.Cuisines) == 0 {
		return Errorf(EINVALID, "lexicon cuisine table required")
	}
	if len(l.Units) == 0 {
		return Errorf(EINVALID, "lexicon unit table required")
	}
	for _, c := range l.Cuisines {
		if c.Name == "" {
			return Errorf(EINVALID, "lexicon cuisine name required")
		}
	}
	return nil
}

// IsBoilerplate reports whether line contains a boilerplate phrase.
func (l *Lexicon) IsBoilerplate(line string) bool {
	lower := strings.ToLower(line)
	for _, phrase := range l.Boilerplate {
		if phrase != "" && strings.Contains(lower, strings.ToLower(phrase)) {
			return true
		}
	}
	return false
}

// Keywords is a list of words or phrases matched case-insensitively on
// word boundaries. A keyword also matches its "s" and "es" plurals, and
// hyphens are treated as spaces, so "stir-fry" matches "stir fry".
type Keywords []string

// Match reports whether any keyword occurs in text.
func (k Keywords) Match(text string) bool {
	padded := foldWords(text)
	for _, kw := range k {
		if matchFolded(padded, kw) {
			return true
		}
	}
	return false
}

// Matches returns the keywords that occur in text, in list order.
func (k Keywords) Matches(text string) []string {
	padded := foldWords(text)
	var out []string
	for _, kw := range k {
		if matchFolded(padded, kw) {
			out = append(out, kw)
		}
	}
	return out
}

func matchFolded(padded, keyword string) bool {
	kw := strings.TrimSpace(foldWords(keyword))
	if kw == "" {
		return false
	}
	for _, suffix := range []string{"", "s", "es"} {
		if strings.Contains(padded, " "+kw+suffix+" ") {
			return true
		}
	}
	return false
}

// foldWords lowercases text, replaces every non-alphanumeric rune with a
// space, collapses runs of spaces and pads the result with one space on
// each side.
func foldWords(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 2)
	b.WriteByte(' ')
	space := true
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			space = false
			continue
		}
		if !space {
			b.WriteByte(' ')
			space = true
		}
	}
	if !space {
		b.WriteByte(' ')
	}
	return b.String()
}

// UnitTable maps lowercase unit spellings to canonical units.
type UnitTable map[string]string

// Lookup returns the canonical unit for word. Trailing periods are ignored.
func (t UnitTable) Lookup(word string) (string, bool) {
	w := strings.TrimRight(strings.ToLower(word), ".")
	if w == "" {
		return "", false
	}
	u, ok := t[w]
	return u, ok
}

// With returns a copy of t with overrides applied.
func (t UnitTable) With(overrides UnitTable) UnitTable {
	out := make(UnitTable, len(t)+len(overrides))
	for k, v := range t {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// Singular returns a copy of t whose canonical units are singular, so
// "cups" and "c" both map to "cup".
func (t UnitTable) Singular() UnitTable {
	out := make(UnitTable, len(t))
	for k, v := range t {
		out[k] = singularUnit(v)
	}
	return out
}

func singularUnit(u string) string {
	switch {
	case strings.HasSuffix(u, "ches"), strings.HasSuffix(u, "shes"):
		return strings.TrimSuffix(u, "es")
	case strings.HasSuffix(u, "s") && len(u) > 2:
		return strings.TrimSuffix(u, "s")
	}
	return u
}
