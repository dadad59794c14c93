package goquery

import "github.com/fwojciec/mise"

// TasteOfHome returns the tasteofhome.com profile. Collections become
// hyphenated tags.
func TasteOfHome() *Profile {
	return &Profile{
		Name:   "tasteofhome",
		Domain: "tasteofhome.com",
		Selectors: Selectors{
			Title:        ".recipe-title, h1",
			Description:  ".recipe-description",
			Image:        ".recipe-hero-image img",
			Ingredients:  ".recipe-ingredients__list-item",
			Instructions: ".recipe-directions__list-item",
			CookTime:     ".recipe-time-yield .total-time",
			Servings:     ".recipe-time-yield .yields",
			Author:       ".recipe-author-name",
			Rating:       ".recipe-ratings__average-rating",
			RatingCount:  ".recipe-ratings__count",
			Nutrition:    ".recipe-nutrition__list-item",
			Tags:         ".recipe-collections__list-item",
			Difficulty:   ".recipe-skill-level",
		},
		IngredientNotes: []InnerNote{{Selector: ".recipe-prep-note"}},
		StepTips:        []InnerNote{{Selector: ".step-tip", Label: "Tip: "}},
		Notes: []NoteRule{
			{
				Selector:  ".recipe-tips__item",
				Label:     "Cooking Tip: ",
				Placement: mise.PlaceAtAnchor,
				Anchor:    mise.AnchorFirst,
			},
		},
		SlugTags:   true,
		Categories: categories("family-friendly", "potluck", "holiday"),
	}
}
