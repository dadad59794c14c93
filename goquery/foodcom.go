package goquery

import "github.com/fwojciec/mise"

// FoodCom returns the food.com profile. Units are reported in singular form.
func FoodCom() *Profile {
	return &Profile{
		Name:   "foodcom",
		Domain: "food.com",
		Selectors: Selectors{
			Title:        ".recipe-title, h1",
			Description:  ".recipe-description",
			Image:        ".recipe-image img",
			Ingredients:  ".recipe-ingredients__item",
			Instructions: ".recipe-directions__step",
			CookTime:     ".recipe-facts__time",
			Servings:     ".recipe-facts__servings",
			Author:       ".recipe-author__name",
			Rating:       ".recipe-ratings__score",
			RatingCount:  ".recipe-ratings__count",
			Nutrition:    ".recipe-nutrition__item",
		},
		Notes: []NoteRule{
			{
				Selector:  ".recipe-tips li",
				Label:     "Tip: ",
				Placement: mise.PlaceByOverlap,
				Anchor:    mise.AnchorNone,
			},
			{
				Selector:  ".recipe-variations li",
				Label:     "Variation: ",
				Placement: mise.PlaceAtAnchor,
				Anchor:    mise.AnchorFirst,
			},
		},
		SingularUnits: true,
		Categories:    categories("classic", "kid-friendly"),
	}
}
