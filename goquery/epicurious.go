package goquery

// Epicurious returns the epicurious.com profile.
func Epicurious() *Profile {
	return &Profile{
		Name:   "epicurious",
		Domain: "epicurious.com",
		Selectors: Selectors{
			Title:        ".recipe-title-component, h1",
			Description:  ".recipe-description-component",
			Image:        ".recipe-image-container img",
			Ingredients:  ".ingredient",
			Instructions: ".preparation-step",
			CookTime:     `.recipe-metadata-item[data-testid="TotalTime"]`,
			Servings:     `.recipe-metadata-item[data-testid="Servings"]`,
			Author:       ".contributor-name",
			Rating:       ".rating",
			RatingCount:  ".reviews-count",
			Nutrition:    ".nutrition-info",
		},
		IngredientGroups: &GroupSelector{
			Container: ".ingredient-group",
			Heading:   "h3",
			Items:     ".ingredient",
			Label:     "Group: ",
		},
		InstructionGroups: &GroupSelector{
			Container: ".preparation-groups",
			Heading:   "h3",
			Items:     ".preparation-step",
			Label:     "Part: ",
		},
		RatingAttr: "data-rating",
		Categories: []string{"holiday", "thanksgiving", "christmas", "easter", "halloween"},
	}
}
