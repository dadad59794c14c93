package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mise"
)

// DamnDelicious returns the damndelicious.net profile.
func DamnDelicious() *Profile {
	return &Profile{
		Name:   "damndelicious",
		Domain: "damndelicious.net",
		Selectors: Selectors{
			Title:        ".entry-title, h1",
			Description:  ".recipe-description",
			Image:        ".recipe-image img, img.recipe-image",
			Ingredients:  ".ingredients li, .recipe-ingredients li",
			Instructions: ".instructions li, .recipe-instructions li",
			CookTime:     ".total-time",
			Servings:     ".servings",
			Author:       ".author-name, .recipe-author",
			Rating:       ".recipe-rating, .recipe-ratings .rating",
			RatingCount:  ".rating-count",
			Nutrition:    ".nutrition-info, .nutrition-info p",
			Difficulty:   ".difficulty-level",
		},
		StepTips:  []InnerNote{{Selector: ".quick-tip", Label: "Quick Tip: "}},
		StepImage: ".step-photo",
		Notes: []NoteRule{
			{
				Selector:  ".recipe-video iframe, .recipe-video video, .recipe-video[data-src]",
				Attrs:     []string{"src", "data-src", "href"},
				Label:     "Video Guide: ",
				Placement: mise.PlaceAtAnchor,
				Anchor:    mise.AnchorFirst,
			},
			{
				Selector:  ".recipe-tips li",
				Label:     "Quick Tip: ",
				Placement: mise.PlaceByOverlap,
				Anchor:    mise.AnchorFirst,
			},
			{
				Selector:  ".prep-notes",
				Label:     "Prep Note: ",
				Placement: mise.PlaceAtAnchor,
				Anchor:    mise.AnchorFirst,
			},
		},
		ExtraIngredients: []ItemRule{
			{Selector: ".equipment-list li", Amount: 1, Unit: mise.UnitPiece},
		},
		Categories: categories("30-minute", "one-pot", "weeknight", "meal-prep", "budget-friendly", "family-friendly"),
		Hooks: Hooks{
			Dietary: mentionedDiets,
		},
	}
}

// mentionedDiets treats dietary labels written in the title or description
// as publisher-stated flags.
func mentionedDiets(_ *goquery.Document, r *mise.Recipe, flags *mise.DietaryFlags) {
	scan := r.Title + " " + r.Description
	for _, label := range []string{"vegetarian", "vegan", "gluten-free", "dairy-free"} {
		if mise.Keywords([]string{label}).Match(scan) {
			flags.AddLabel(label)
		}
	}
}
