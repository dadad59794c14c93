package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/mise"
	main "github.com/fwojciec/mise/cmd/mise"
	"github.com/fwojciec/mise/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes recipe when --force is set", func(t *testing.T) {
		t.Parallel()

		var deletedID string
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Recipes: &mock.RecipeService{
				FindRecipeByIDFn: func(_ context.Context, id string) (*mise.StoredRecipe, error) {
					return &mise.StoredRecipe{ID: id, Recipe: &mise.Recipe{Title: "Lentil Soup"}}, nil
				},
				DeleteRecipeFn: func(_ context.Context, id string) error {
					deletedID = id
					return nil
				},
			},
		}

		err := (&main.DeleteCmd{ID: "r1", Force: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "r1", deletedID)
		assert.Contains(t, stdout.String(), `Deleted recipe "Lentil Soup"`)
	})

	t.Run("requires --force flag", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Recipes: &mock.RecipeService{},
		}

		err := (&main.DeleteCmd{ID: "r1"}).Run(deps)

		assert.Equal(t, mise.EINVALID, mise.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("reports missing recipe", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Recipes: &mock.RecipeService{
				FindRecipeByIDFn: func(_ context.Context, _ string) (*mise.StoredRecipe, error) {
					return nil, mise.Errorf(mise.ENOTFOUND, "recipe not found")
				},
			},
		}

		err := (&main.DeleteCmd{ID: "nope", Force: true}).Run(deps)

		assert.Equal(t, mise.ENOTFOUND, mise.ErrorCode(err))
		assert.Contains(t, stderr.String(), "mise list")
	})
}
