package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mise"
)

// Profile is the extraction record for one publisher. Most behavior is
// data: selectors, inner-note rules and anchor policies. Hooks cover the
// few quirks that are not expressible as selectors.
type Profile struct {
	// Name identifies the profile in results and logs.
	Name string

	// Domain is matched as a substring of the source URL's host.
	Domain string

	Selectors Selectors

	// IngredientGroups and InstructionGroups describe grouped markup. When
	// the container selector matches, groups take precedence over the flat
	// Ingredients and Instructions selectors.
	IngredientGroups  *GroupSelector
	InstructionGroups *GroupSelector

	// IngredientNotes are read from inside each ingredient element, removed
	// from its text and appended to its notes.
	IngredientNotes []InnerNote

	// StepTips are read from inside each instruction element, removed from
	// its text and appended to its tips.
	StepTips []InnerNote

	// StepImage selects an image inside an instruction element.
	StepImage string

	// StepDurationAttr names an attribute holding a step timer in minutes
	// or as a duration string.
	StepDurationAttr string

	// Notes are document-level blocks distributed over the steps.
	Notes []NoteRule

	// ExtraIngredients are document-level lists appended to markup
	// ingredients, such as equipment. They are ignored when structured
	// data supplies the ingredients.
	ExtraIngredients []ItemRule

	// Details reads label/value pairs such as "Prep Time: 15 mins".
	Details *DetailSelector

	// Units replaces the lexicon's unit table for this publisher.
	Units mise.UnitTable

	// SingularUnits canonicalizes plural units ("cups" to "cup").
	SingularUnits bool

	// SlugTags lowercases explicit tags and joins words with hyphens.
	SlugTags bool

	// Categories are publisher-specific keywords scanned over the title
	// and description and added as tags.
	Categories mise.Keywords

	// RatingAttr reads the rating from an attribute instead of text.
	RatingAttr string

	Require Requirements

	// InternalCode is reported when extraction fails unexpectedly.
	// Defaults to PARSER_ERROR.
	InternalCode string

	Hooks Hooks
}

// Selectors maps canonical fields to CSS selectors. Empty selectors are
// skipped. Several alternatives may be joined with commas; the first
// matching element wins for single-valued fields.
type Selectors struct {
	Title        string
	Description  string
	Image        string
	Ingredients  string
	Instructions string
	PrepTime     string
	CookTime     string
	Servings     string
	Author       string
	Rating       string
	RatingCount  string
	Nutrition    string
	Tags         string
	Difficulty   string
	Cuisine      string
	Dietary      string
}

// GroupSelector selects named groups of items.
type GroupSelector struct {
	// Container matches one element per group.
	Container string

	// Heading selects the group name inside the container.
	Heading string

	// Items selects the entries inside the container.
	Items string

	// Label prefixes the group name when it is recorded on an item.
	Label string
}

// InnerNote reads a note from inside an item element.
type InnerNote struct {
	// Selector is relative to the item. Empty means the item itself.
	Selector string

	// Attr reads an attribute instead of the element's text.
	Attr string

	Label string
}

// NoteRule distributes a document-level note block over the steps.
type NoteRule struct {
	Selector string

	// Attrs are tried in order; the element's text is used when none is
	// set.
	Attrs []string

	Label     string
	Placement mise.Placement
	Anchor    mise.Anchor
}

// ItemRule turns each matching element into an extra ingredient with a
// fixed amount and unit.
type ItemRule struct {
	Selector string
	Amount   float64
	Unit     string
	Notes    string
}

// DetailSelector reads label/value pairs.
type DetailSelector struct {
	Item  string
	Label string
	Value string
}

// Requirements names the fields whose absence fails the parse with
// MISSING_ELEMENT instead of defaulting to empty.
type Requirements struct {
	Title        bool
	Ingredients  bool
	Instructions bool

	// RecipeSignal fails the parse with PARSER_ERROR unless the page has
	// structured data or at least one of title, ingredients or
	// instructions.
	RecipeSignal bool
}

// Hooks are optional per-publisher overrides.
type Hooks struct {
	// Ingredient adjusts an ingredient parsed from markup.
	Ingredient func(s *goquery.Selection, ing *mise.Ingredient)

	// Dietary records publisher-stated flags found outside the Dietary
	// selector.
	Dietary func(doc *goquery.Document, r *mise.Recipe, flags *mise.DietaryFlags)

	// Finish runs after every field is filled, before required fields are
	// checked and before classification.
	Finish func(doc *goquery.Document, r *mise.Recipe, lex *mise.Lexicon)
}
