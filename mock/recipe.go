package mock

import (
	"context"

	"github.com/fwojciec/mise"
)

var _ mise.RecipeService = (*RecipeService)(nil)

// RecipeService is a mock implementation of mise.RecipeService.
type RecipeService struct {
	CreateRecipeFn   func(ctx context.Context, recipe *mise.StoredRecipe) error
	FindRecipeByIDFn func(ctx context.Context, id string) (*mise.StoredRecipe, error)
	FindRecipesFn    func(ctx context.Context, filter mise.RecipeFilter) ([]*mise.StoredRecipe, error)
	DeleteRecipeFn   func(ctx context.Context, id string) error
}

func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *mise.StoredRecipe) error {
	return s.CreateRecipeFn(ctx, recipe)
}

func (s *RecipeService) FindRecipeByID(ctx context.Context, id string) (*mise.StoredRecipe, error) {
	return s.FindRecipeByIDFn(ctx, id)
}

func (s *RecipeService) FindRecipes(ctx context.Context, filter mise.RecipeFilter) ([]*mise.StoredRecipe, error) {
	return s.FindRecipesFn(ctx, filter)
}

func (s *RecipeService) DeleteRecipe(ctx context.Context, id string) error {
	return s.DeleteRecipeFn(ctx, id)
}
