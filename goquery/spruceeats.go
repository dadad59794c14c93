package goquery

import "github.com/fwojciec/mise"

// SpruceEats returns the thespruceeats.com profile. Pages without any
// recipe signal are rejected.
func SpruceEats() *Profile {
	return &Profile{
		Name:   "spruceeats",
		Domain: "thespruceeats.com",
		Selectors: Selectors{
			Title:        ".recipe-title, h1",
			Description:  ".recipe-description",
			Image:        ".recipe-image",
			Ingredients:  ".recipe-ingredients li",
			Instructions: ".recipe-instructions li",
			CookTime:     ".total-time",
			Servings:     ".servings",
			Author:       ".recipe-author",
			Rating:       ".rating",
			RatingCount:  ".rating-count",
			Nutrition:    ".nutrition-info p",
		},
		Notes: []NoteRule{
			{
				Selector:  ".recipe-tips li",
				Label:     "Expert Tip: ",
				Placement: mise.PlaceAtAnchor,
				Anchor:    mise.AnchorFirst,
			},
			{
				Selector:  ".recipe-techniques li",
				Label:     "Key Technique: ",
				Placement: mise.PlaceAtAnchor,
				Anchor:    mise.AnchorFirst,
			},
		},
		SingularUnits: true,
		Categories:    []string{"technique", "side dish"},
		Require:       Requirements{RecipeSignal: true},
	}
}
