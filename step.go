package mise

import (
	"strings"
	"unicode"
)

// StepGroup is a named run of instruction lines, such as a recipe "part"
// or "section". An empty Name means the lines are ungrouped.
type StepGroup struct {
	Name  string
	Lines []string
}

// AssembleSteps converts instruction lines into ordered steps. Orders are
// 1-based and follow input order. Blank lines are skipped.
func AssembleSteps(lines []string) []Step {
	return AssembleGroupedSteps([]StepGroup{{Lines: lines}}, "")
}

// AssembleGroupedSteps flattens groups in order. When a group has a name,
// each of its steps gets label+name as its first tip.
func AssembleGroupedSteps(groups []StepGroup, label string) []Step {
	var steps []Step
	for _, g := range groups {
		for _, line := range g.Lines {
			line = NormalizeSpace(line)
			if line == "" {
				continue
			}
			step := Step{
				ID:          NewID(),
				Order:       len(steps) + 1,
				Description: line,
			}
			if g.Name != "" {
				step.Tips = append(step.Tips, label+g.Name)
			}
			steps = append(steps, step)
		}
	}
	return steps
}

// Anchor is the fallback placement for a note that matches no step.
type Anchor int

const (
	// AnchorNone drops a note that matches no step.
	AnchorNone Anchor = iota
	// AnchorFirst attaches an unmatched note to the first step.
	AnchorFirst
	// AnchorLast attaches an unmatched note to the last step.
	AnchorLast
)

// Placement decides where a note goes.
type Placement int

const (
	// PlaceByOverlap attaches a note to the first step sharing enough words
	// with it, falling back to the note's anchor.
	PlaceByOverlap Placement = iota
	// PlaceAtAnchor attaches a note directly to its anchor step.
	PlaceAtAnchor
)

// Note is an auxiliary tip, note or variation scraped apart from the steps.
type Note struct {
	Text      string
	Label     string
	Placement Placement
	Anchor    Anchor
}

// MinSharedWords is the number of distinct words longer than three
// characters that a note must share with a step to attach to it.
const MinSharedWords = 2

// AttachNotes distributes notes over steps and returns the updated steps.
// Matching is a best-effort word-overlap heuristic: a note attaches to the
// first step sharing at least MinSharedWords words of more than three
// letters, case-insensitively. Notes that match nothing go to their anchor
// step or are dropped.
func AttachNotes(steps []Step, notes []Note) []Step {
	if len(steps) == 0 {
		return steps
	}
	stepWords := make([]map[string]bool, len(steps))
	for i, s := range steps {
		stepWords[i] = wordSet(s.Description)
	}

	for _, n := range notes {
		text := NormalizeSpace(n.Text)
		if text == "" {
			continue
		}
		idx := -1
		if n.Placement == PlaceByOverlap {
			idx = matchStep(stepWords, text)
		}
		if idx < 0 {
			switch n.Anchor {
			case AnchorFirst:
				idx = 0
			case AnchorLast:
				idx = len(steps) - 1
			default:
				continue
			}
		}
		steps[idx].Tips = append(steps[idx].Tips, n.Label+text)
	}
	return steps
}

// MatchStep returns the index of the first step sharing at least
// MinSharedWords words with text, or -1.
func MatchStep(steps []Step, text string) int {
	stepWords := make([]map[string]bool, len(steps))
	for i, s := range steps {
		stepWords[i] = wordSet(s.Description)
	}
	return matchStep(stepWords, text)
}

func matchStep(stepWords []map[string]bool, text string) int {
	noteWords := wordSet(text)
	for i, words := range stepWords {
		shared := 0
		for w := range noteWords {
			if words[w] {
				shared++
			}
		}
		if shared >= MinSharedWords {
			return i
		}
	}
	return -1
}

// wordSet returns the distinct lowercase words of s longer than three
// characters.
func wordSet(s string) map[string]bool {
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
	set := make(map[string]bool, len(words))
	for _, w := range words {
		if len([]rune(w)) > 3 {
			set[w] = true
		}
	}
	return set
}
