package goquery

import "github.com/fwojciec/mise"

// SeriousEats returns the seriouseats.com profile.
func SeriousEats() *Profile {
	return &Profile{
		Name:   "seriouseats",
		Domain: "seriouseats.com",
		Selectors: Selectors{
			Title:        "h1.recipe-title, h1",
			Description:  ".recipe-introduction",
			Image:        ".primary-image img",
			Ingredients:  ".ingredient-list li",
			Instructions: ".recipe-procedure-text",
			CookTime:     ".recipe-meta-item--cook-time .recipe-meta-item-body",
			Servings:     ".recipe-meta-item--yield .recipe-meta-item-body",
			Author:       ".author-name",
			Rating:       ".recipe-rating-value",
			RatingCount:  ".recipe-ratings-count",
			Nutrition:    ".nutrition-info",
		},
		IngredientGroups: &GroupSelector{
			Container: ".ingredient-group",
			Heading:   "h3",
			Items:     "li",
			Label:     "Group: ",
		},
		InstructionGroups: &GroupSelector{
			Container: ".recipe-procedure-group",
			Heading:   "h3",
			Items:     ".recipe-procedure-text, li",
			Label:     "Section: ",
		},
		Notes: []NoteRule{
			{Selector: ".recipe-note", Label: "Note: ", Placement: mise.PlaceByOverlap},
			{Selector: ".recipe-tip", Placement: mise.PlaceByOverlap},
		},
		Categories: []string{"sous-vide", "pressure-cooker", "wok", "braised", "fermented"},
	}
}
