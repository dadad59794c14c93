package mise

import "fmt"

// Validation issue codes.
const (
	VMissingTitle       = "MISSING_TITLE"
	VNoIngredients      = "NO_INGREDIENTS"
	VNoSteps            = "NO_STEPS"
	VInvalidIngredient  = "INVALID_INGREDIENT"
	VInvalidStep        = "INVALID_STEP"
	VMissingDescription = "MISSING_DESCRIPTION"
	VMissingImage       = "MISSING_IMAGE"
	VMissingCookTime    = "MISSING_COOK_TIME"
)

// Issue is one validation finding.
type Issue struct {
	Code    string `json:"code"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationReport lists the problems found in a parsed recipe. Errors make
// the recipe unusable; warnings mark missing optional content.
type ValidationReport struct {
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
}

// Valid reports whether the report has no errors.
func (r ValidationReport) Valid() bool {
	return len(r.Errors) == 0
}

// Validate checks a parsed recipe for completeness.
func (r *Recipe) Validate() ValidationReport {
	var rep ValidationReport
	addErr := func(code, field, msg string) {
		rep.Errors = append(rep.Errors, Issue{Code: code, Field: field, Message: msg})
	}
	addWarn := func(code, field, msg string) {
		rep.Warnings = append(rep.Warnings, Issue{Code: code, Field: field, Message: msg})
	}

	if r.Title == "" {
		addErr(VMissingTitle, "title", "recipe has no title")
	}
	if len(r.Ingredients) == 0 {
		addErr(VNoIngredients, "ingredients", "recipe has no ingredients")
	}
	if len(r.Steps) == 0 {
		addErr(VNoSteps, "steps", "recipe has no steps")
	}
	for i, ing := range r.Ingredients {
		field := fmt.Sprintf("ingredients[%d]", i)
		switch {
		case ing.Name == "":
			addErr(VInvalidIngredient, field, "ingredient has no name")
		case ing.Amount < 0:
			addErr(VInvalidIngredient, field, "ingredient amount is negative")
		}
	}
	for i, s := range r.Steps {
		field := fmt.Sprintf("steps[%d]", i)
		switch {
		case s.Description == "":
			addErr(VInvalidStep, field, "step has no description")
		case s.Order != i+1:
			addErr(VInvalidStep, field, fmt.Sprintf("step order %d does not match position %d", s.Order, i+1))
		}
	}

	if r.Description == "" {
		addWarn(VMissingDescription, "description", "recipe has no description")
	}
	if r.ImageURL == "" {
		addWarn(VMissingImage, "imageUrl", "recipe has no image")
	}
	if r.CookTime == 0 {
		addWarn(VMissingCookTime, "cookTime", "recipe has no cook time")
	}
	return rep
}
