package mise

import (
	"context"
	"time"
)

// StoredRecipe is a successfully parsed recipe kept by a RecipeService.
type StoredRecipe struct {
	ID          string    `json:"id"`
	SourceURL   string    `json:"sourceUrl"`
	Profile     string    `json:"profile"`
	ContentHash string    `json:"contentHash"`
	Recipe      *Recipe   `json:"recipe"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the stored recipe contains invalid fields.
func (s *StoredRecipe) Validate() error {
	if s.SourceURL == "" {
		return Errorf(EINVALID, "recipe source URL required")
	}
	if s.Recipe == nil {
		return Errorf(EINVALID, "recipe required")
	}
	if s.Recipe.Title == "" {
		return Errorf(EINVALID, "recipe title required")
	}
	return nil
}

// RecipeService represents a service for persisting parsed recipes.
type RecipeService interface {
	// CreateRecipe stores a recipe. ContentHash identifies the source HTML;
	// storing the same URL with an unchanged hash returns ECONFLICT.
	CreateRecipe(ctx context.Context, recipe *StoredRecipe) error

	// FindRecipeByID retrieves a stored recipe by ID.
	// Returns ENOTFOUND if the recipe does not exist.
	FindRecipeByID(ctx context.Context, id string) (*StoredRecipe, error)

	// FindRecipes retrieves stored recipes matching the filter.
	FindRecipes(ctx context.Context, filter RecipeFilter) ([]*StoredRecipe, error)

	// DeleteRecipe permanently removes a stored recipe.
	// Returns ENOTFOUND if the recipe does not exist.
	DeleteRecipe(ctx context.Context, id string) error
}

// RecipeFilter represents a filter for FindRecipes.
type RecipeFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`
	Profile   *string `json:"profile"`
	Tag       *string `json:"tag"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
