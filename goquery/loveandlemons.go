package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mise"
)

// LoveAndLemons returns the loveandlemons.com profile. The publisher is
// vegetarian unless its dietary block says otherwise.
func LoveAndLemons() *Profile {
	return &Profile{
		Name:   "loveandlemons",
		Domain: "loveandlemons.com",
		Selectors: Selectors{
			Title:        ".entry-title, h1",
			Description:  ".recipe-description",
			Image:        ".recipe-image img",
			Ingredients:  ".wprm-recipe-ingredient",
			Instructions: ".wprm-recipe-instruction",
			CookTime:     ".wprm-recipe-total-time",
			Servings:     ".wprm-recipe-servings",
			Author:       ".entry-author",
			Rating:       ".wprm-recipe-rating-average",
			RatingCount:  ".wprm-recipe-rating-count",
			Nutrition:    ".wprm-nutrition-label-container",
			Dietary:      ".dietary-info",
		},
		IngredientNotes: []InnerNote{
			{Selector: ".seasonal-note", Label: "Seasonal note: "},
			{Selector: ".substitution-note", Label: "Substitutions: "},
		},
		StepTips: []InnerNote{{Selector: ".meal-prep-tip", Label: "Meal Prep Tip: "}},
		Notes: []NoteRule{
			{
				Selector:  ".storage-info",
				Label:     "Storage: ",
				Placement: mise.PlaceAtAnchor,
				Anchor:    mise.AnchorLast,
			},
		},
		Categories: categories("spring", "summer", "fall", "winter"),
		Hooks: Hooks{
			Dietary: func(_ *goquery.Document, _ *mise.Recipe, flags *mise.DietaryFlags) {
				if !flags.Set() {
					flags.AddLabel("vegetarian")
				}
			},
		},
	}
}
