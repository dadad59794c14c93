package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/mise"
	"github.com/fwojciec/mise/mock"
	miseslog "github.com/fwojciec/mise/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingRecipeService(t *testing.T) {
	t.Parallel()

	newLogger := func(buf *bytes.Buffer) *slog.Logger {
		return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	t.Run("logs create with url", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.RecipeService{
			CreateRecipeFn: func(_ context.Context, _ *mise.StoredRecipe) error { return nil },
		}

		svc := miseslog.NewLoggingRecipeService(inner, newLogger(&buf))
		err := svc.CreateRecipe(context.Background(), &mise.StoredRecipe{ID: "r1", SourceURL: "https://example.com/pie"})

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "create recipe")
		assert.Contains(t, buf.String(), "url=https://example.com/pie")
	})

	t.Run("logs lookup errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.RecipeService{
			FindRecipeByIDFn: func(_ context.Context, _ string) (*mise.StoredRecipe, error) {
				return nil, mise.Errorf(mise.ENOTFOUND, "recipe not found")
			},
		}

		svc := miseslog.NewLoggingRecipeService(inner, newLogger(&buf))
		_, err := svc.FindRecipeByID(context.Background(), "missing")

		assert.Equal(t, mise.ENOTFOUND, mise.ErrorCode(err))
		assert.Contains(t, buf.String(), "id=missing")
		assert.Contains(t, buf.String(), "recipe not found")
	})

	t.Run("logs result counts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.RecipeService{
			FindRecipesFn: func(_ context.Context, _ mise.RecipeFilter) ([]*mise.StoredRecipe, error) {
				return []*mise.StoredRecipe{{ID: "a"}, {ID: "b"}}, nil
			},
			DeleteRecipeFn: func(_ context.Context, _ string) error { return nil },
		}

		svc := miseslog.NewLoggingRecipeService(inner, newLogger(&buf))
		recipes, err := svc.FindRecipes(context.Background(), mise.RecipeFilter{})
		require.NoError(t, err)
		require.NoError(t, svc.DeleteRecipe(context.Background(), "a"))

		assert.Len(t, recipes, 2)
		assert.Contains(t, buf.String(), "count=2")
		assert.Contains(t, buf.String(), "delete recipe")
	})
}
