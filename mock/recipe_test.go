package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/mise"
	"github.com/fwojciec/mise/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeService_CreateRecipe(t *testing.T) {
	t.Parallel()

	t.Run("delegates to CreateRecipeFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *mise.StoredRecipe
		s := &mock.RecipeService{
			CreateRecipeFn: func(_ context.Context, r *mise.StoredRecipe) error {
				calledWith = r
				return nil
			},
		}

		stored := &mise.StoredRecipe{ID: "r1", SourceURL: "https://example.com/pie"}
		err := s.CreateRecipe(context.Background(), stored)

		require.NoError(t, err)
		assert.Same(t, stored, calledWith)
	})

	t.Run("propagates errors", func(t *testing.T) {
		t.Parallel()

		s := &mock.RecipeService{
			CreateRecipeFn: func(_ context.Context, _ *mise.StoredRecipe) error {
				return mise.Errorf(mise.ECONFLICT, "recipe unchanged")
			},
		}

		err := s.CreateRecipe(context.Background(), &mise.StoredRecipe{})

		assert.Equal(t, mise.ECONFLICT, mise.ErrorCode(err))
	})
}
