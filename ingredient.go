package mise

import (
	"regexp"
	"strings"
)

// IngredientOptions controls how ParseIngredient interprets a line.
type IngredientOptions struct {
	// Units recognizes unit words. Defaults to the lexicon's table.
	Units UnitTable

	// DefaultUnit is used when no unit word is recognized. Defaults to
	// UnitDefault.
	DefaultUnit string
}

var (
	// Leading-zero artifacts left by some publishers' fraction rendering.
	zeroGlyphRe    = regexp.MustCompile(`(^|\s)0+\s*([¼½¾⅐⅑⅒⅓⅔⅕⅖⅗⅘⅙⅚⅛⅜⅝⅞])`)
	zeroMixedRe    = regexp.MustCompile(`(^|\s)0+\s+(\d+\s+\d+/\d+)`)
	zeroFractionRe = regexp.MustCompile(`(^|\s)0+\s+(\d+/\d+)`)
	zeroPaddedRe   = regexp.MustCompile(`(^|\s)0+(\d)`)

	amountRe = regexp.MustCompile(`^(\d+\s+\d+/\d+|\d+/\d+|\d*\.\d+|\d+)(?:\s*(?:-|–|—|\bto\b|\bor\b)\s*(?:\d+\s+\d+/\d+|\d+/\d+|\d*\.\d+|\d+))?`)

	parenNoteRe = regexp.MustCompile(`\(([^)]*)\)`)
)

// CleanLeadingZeros removes zero-padding artifacts: "0 ¼" becomes "¼",
// "0 1/2" becomes "1/2" and "01" becomes "1".
func CleanLeadingZeros(s string) string {
	s = zeroGlyphRe.ReplaceAllString(s, "$1$2")
	s = zeroMixedRe.ReplaceAllString(s, "$1$2")
	s = zeroFractionRe.ReplaceAllString(s, "$1$2")
	s = zeroPaddedRe.ReplaceAllString(s, "$1$2")
	return s
}

// NormalizeSpace collapses whitespace runs, including non-breaking spaces,
// into single spaces and trims the result.
func NormalizeSpace(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.Join(strings.Fields(s), " ")
}

// ParseIngredient converts one free-text ingredient line into an
// Ingredient with a fresh ID. Boilerplate lines yield an Ingredient with an
// empty Name, which callers drop.
func (l *Lexicon) ParseIngredient(text string, opts IngredientOptions) Ingredient {
	units := opts.Units
	if units == nil {
		units = l.Units
	}
	defaultUnit := opts.DefaultUnit
	if defaultUnit == "" {
		defaultUnit = UnitDefault
	}

	ing := Ingredient{ID: NewID(), Unit: defaultUnit}

	text = NormalizeSpace(text)
	if text == "" || l.IsBoilerplate(text) {
		return ing
	}

	text = CleanLeadingZeros(text)
	text = ReplaceFractionGlyphs(text)

	rest := text
	if m := amountRe.FindStringSubmatchIndex(rest); m != nil {
		ing.Amount = ParseAmount(rest[m[2]:m[3]])
		rest = strings.TrimSpace(rest[m[1]:])
	}

	// A package size sits between the amount and the unit: "1 (14 oz) can".
	var notes []string
	if strings.HasPrefix(rest, "(") {
		if size, after, ok := strings.Cut(rest[1:], ")"); ok {
			if n := strings.TrimSpace(size); n != "" {
				notes = append(notes, n)
			}
			rest = strings.TrimSpace(after)
		}
	}

	if word, after, _ := strings.Cut(rest, " "); word != "" {
		if unit, ok := units.Lookup(word); ok {
			ing.Unit = unit
			rest = strings.TrimSpace(after)
		}
	}
	rest = strings.TrimPrefix(rest, "of ")

	if size, name, ok := l.splitSize(rest); ok {
		notes = append(notes, size)
		rest = name
	}
	if m := parenNoteRe.FindStringSubmatch(rest); m != nil {
		if n := strings.TrimSpace(m[1]); n != "" {
			notes = append(notes, n)
		}
		rest = NormalizeSpace(parenNoteRe.ReplaceAllString(rest, " "))
	}
	if name, note, ok := strings.Cut(rest, ","); ok {
		if n := strings.TrimSpace(note); n != "" {
			notes = append(notes, n)
		}
		rest = name
	}

	ing.Name = strings.TrimSpace(rest)
	ing.Notes = strings.Join(notes, ", ")
	return ing
}

// splitSize moves a leading size adjective off an egg ingredient:
// "large eggs" becomes ("large", "eggs").
func (l *Lexicon) splitSize(name string) (size, rest string, ok bool) {
	word, after, found := strings.Cut(name, " ")
	if !found || !Keywords([]string{"egg"}).Match(after) {
		return "", name, false
	}
	for _, adj := range l.SizeAdjectives {
		if strings.EqualFold(word, adj) {
			return strings.ToLower(word), strings.TrimSpace(after), true
		}
	}
	return "", name, false
}
