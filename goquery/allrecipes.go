package goquery

import "github.com/fwojciec/mise"

// AllRecipes returns the allrecipes.com profile. It is the only strict
// publisher: a page without a title, ingredients or instructions fails.
func AllRecipes() *Profile {
	return &Profile{
		Name:   "allrecipes",
		Domain: "allrecipes.com",
		Selectors: Selectors{
			Title:        "h1",
			Description:  `[class*="article-subheading"], .recipe-description`,
			Image:        `[class*="primary-image"] img, [class*="recipe-image"] img, [class*="universal-image"] img, img.recipe-image`,
			Ingredients:  `[class*="structured-ingredients"] li, .recipe-ingredients li`,
			Instructions: `.mm-recipes-steps__content li, .recipe-instructions li`,
			Nutrition:    `[class*="nutrition-section"] p, .recipe-nutrition p`,
			Rating:       `[class*="recipe-ratings"] [class*="rating-value"], .rating-value`,
			RatingCount:  `[class*="recipe-ratings"] [class*="count"], .rating-count`,
			Tags:         `.recipe-tags .tag, [class*="recipe-categories"] [class*="category"]`,
			Author:       `[class*="bylines__item"]`,
			Dietary:      `div[class*="dietary"]`,
		},
		Details: &DetailSelector{
			Item:  ".mm-recipes-details__item",
			Label: ".mm-recipes-details__label",
			Value: ".mm-recipes-details__value",
		},
		Require: Requirements{
			Title:        true,
			Ingredients:  true,
			Instructions: true,
		},
		InternalCode: mise.EPARSE,
	}
}
