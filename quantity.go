package mise

import (
	"regexp"
	"strconv"
	"strings"
)

// fractionGlyphs maps unicode vulgar fractions to n/d form.
var fractionGlyphs = map[rune]string{
	'¼': "1/4", '½': "1/2", '¾': "3/4",
	'⅐': "1/7", '⅑': "1/9", '⅒': "1/10",
	'⅓': "1/3", '⅔': "2/3",
	'⅕': "1/5", '⅖': "2/5", '⅗': "3/5", '⅘': "4/5",
	'⅙': "1/6", '⅚': "5/6",
	'⅛': "1/8", '⅜': "3/8", '⅝': "5/8", '⅞': "7/8",
}

// ReplaceFractionGlyphs rewrites unicode vulgar fractions to n/d form,
// separating them from an adjacent whole number: "1½" becomes "1 1/2".
func ReplaceFractionGlyphs(s string) string {
	if !strings.ContainsFunc(s, isFractionGlyph) {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if frac, ok := fractionGlyphs[r]; ok {
			b.WriteString(" " + frac + " ")
			continue
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func isFractionGlyph(r rune) bool {
	_, ok := fractionGlyphs[r]
	return ok
}

var (
	mixedNumberRe = regexp.MustCompile(`^(\d+)\s+(\d+)\s*/\s*(\d+)$`)
	fractionRe    = regexp.MustCompile(`^(\d+)\s*/\s*(\d+)$`)
)

// ParseAmount parses a quantity: a mixed number ("1 1/2"), a fraction
// ("3/4"), a unicode fraction glyph, a decimal or an integer. It returns 0
// for anything else, including division by zero.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(ReplaceFractionGlyphs(s))
	if s == "" {
		return 0
	}
	if m := mixedNumberRe.FindStringSubmatch(s); m != nil {
		whole, _ := strconv.ParseFloat(m[1], 64)
		return whole + divide(m[2], m[3])
	}
	if m := fractionRe.FindStringSubmatch(s); m != nil {
		return divide(m[1], m[2])
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f >= 0 {
		return f
	}
	return 0
}

func divide(num, den string) float64 {
	n, _ := strconv.ParseFloat(num, 64)
	d, _ := strconv.ParseFloat(den, 64)
	if d == 0 {
		return 0
	}
	return n / d
}

// amountPattern matches a mixed number, a fraction or a decimal.
const amountPattern = `(\d+\s+\d+/\d+|\d+/\d+|\d+(?:\.\d+)?)`

// Unit words must be followed by a non-letter so "1h30m" splits at the
// digits.
var (
	isoDurationRe = regexp.MustCompile(`(?i)^P(?:(\d+)D)?(?:T(?:(\d+(?:\.\d+)?)H)?(?:(\d+(?:\.\d+)?)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)
	textHoursRe   = regexp.MustCompile(`(?i)` + amountPattern + `\s*(?:hours?|hrs?|h)(?:[^a-z]|$)`)
	textMinutesRe = regexp.MustCompile(`(?i)` + amountPattern + `\s*(?:minutes?|mins?|m)(?:[^a-z]|$)`)
	textSecondsRe = regexp.MustCompile(`(?i)(\d+)\s*(?:seconds?|secs?|s)(?:[^a-z]|$)`)
	firstNumberRe = regexp.MustCompile(`\d+`)
)

// ParseMinutes converts a duration to whole minutes. It accepts ISO-8601
// durations ("PT1H30M") and plain text ("1 1/2 hours", "1h30m", "45 min").
// Seconds count toward the total and are truncated. A bare number is taken
// as minutes. Empty or unrecognized input yields 0.
func ParseMinutes(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if m := isoDurationRe.FindStringSubmatch(s); m != nil && s != "P" && !strings.EqualFold(s, "PT") {
		days := atof(m[1])
		hours := atof(m[2])
		minutes := atof(m[3])
		seconds := atof(m[4])
		return int(days*24*60 + hours*60 + minutes + seconds/60)
	}

	var total float64
	matched := false
	if m := textHoursRe.FindStringSubmatch(s); m != nil {
		total += ParseAmount(m[1]) * 60
		matched = true
	}
	if m := textMinutesRe.FindStringSubmatch(s); m != nil {
		total += ParseAmount(m[1])
		matched = true
	}
	if m := textSecondsRe.FindStringSubmatch(s); m != nil {
		total += atof(m[1]) / 60
		matched = true
	}
	if matched {
		return int(total)
	}
	if m := firstNumberRe.FindString(s); m != "" {
		n, _ := strconv.Atoi(m)
		return n
	}
	return 0
}

// NumberPattern matches an integer with optional thousands separators
// ("1,250").
const NumberPattern = `\d{1,3}(?:,\d{3})+|\d+`

var (
	firstIntRe   = regexp.MustCompile(NumberPattern)
	firstFloatRe = regexp.MustCompile(`(?:` + NumberPattern + `)(?:\.\d+)?`)
)

// ParseNumber parses a number that may carry thousands separators. It
// returns 0 when s is not a number.
func ParseNumber(s string) float64 {
	f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 64)
	if err != nil {
		return 0
	}
	return f
}

// FirstInt returns the first integer in s, or 0. Thousands separators are
// accepted.
func FirstInt(s string) int {
	return int(ParseNumber(firstIntRe.FindString(s)))
}

// FirstFloat returns the first decimal number in s, or 0. Thousands
// separators are accepted.
func FirstFloat(s string) float64 {
	return ParseNumber(firstFloatRe.FindString(s))
}

func atof(s string) float64 {
	if s == "" {
		return 0
	}
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
