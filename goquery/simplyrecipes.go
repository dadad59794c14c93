package goquery

import "github.com/fwojciec/mise"

// SimplyRecipes returns the simplyrecipes.com profile.
func SimplyRecipes() *Profile {
	return &Profile{
		Name:   "simplyrecipes",
		Domain: "simplyrecipes.com",
		Selectors: Selectors{
			Title:        "h1.recipe-title, h1",
			Description:  ".recipe-description",
			Image:        ".primary-image img",
			Ingredients:  ".structured-ingredients__list-item",
			Instructions: ".structured-project__step",
			CookTime:     ".total-time .meta-text__data",
			Servings:     ".recipe-serving .meta-text__data",
			Author:       ".author-name",
			Rating:       ".recipe-ratings__score",
			RatingCount:  ".recipe-ratings__count",
			Nutrition:    ".nutrition-info",
		},
		IngredientNotes: []InnerNote{{Attr: "data-note"}},
		StepTips:        []InnerNote{{Selector: ".tip", Label: "Tip: "}},
		StepImage:       "img",
		Notes: []NoteRule{
			{
				Selector:  ".recipe-tips li",
				Label:     "General Tip: ",
				Placement: mise.PlaceAtAnchor,
				Anchor:    mise.AnchorFirst,
			},
		},
		Categories: categories("budget", "family-friendly", "make-ahead"),
	}
}
