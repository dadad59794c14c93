package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/mise"
	"github.com/fwojciec/mise/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoredRecipe(url, title, hash string, tags ...string) *mise.StoredRecipe {
	return &mise.StoredRecipe{
		SourceURL:   url,
		Profile:     "allrecipes",
		ContentHash: hash,
		Recipe: &mise.Recipe{
			Title:       title,
			URL:         url,
			Servings:    4,
			Ingredients: []mise.Ingredient{{ID: "i1", Name: "flour", Amount: 2, Unit: "cups"}},
			Steps:       []mise.Step{{ID: "s1", Order: 1, Description: "Mix."}},
			Tags:        tags,
			Difficulty:  mise.DifficultyEasy,
		},
	}
}

func TestRecipeService_CreateRecipe(t *testing.T) {
	t.Parallel()

	t.Run("creates recipe with generated ID and timestamp", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecipeService(setupTestDB(t))
		r := newStoredRecipe("https://allrecipes.com/pie", "Apple Pie", "abc")

		err := svc.CreateRecipe(context.Background(), r)

		require.NoError(t, err)
		assert.NotEmpty(t, r.ID)
		assert.False(t, r.CreatedAt.IsZero())
	})

	t.Run("returns error for invalid recipe", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecipeService(setupTestDB(t))

		err := svc.CreateRecipe(context.Background(), &mise.StoredRecipe{})

		assert.Equal(t, mise.EINVALID, mise.ErrorCode(err))
	})

	t.Run("hashes the recipe when no content hash is given", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecipeService(setupTestDB(t))
		r := newStoredRecipe("https://allrecipes.com/pie", "Apple Pie", "")

		require.NoError(t, svc.CreateRecipe(context.Background(), r))

		assert.Len(t, r.ContentHash, 16)
	})

	t.Run("returns conflict for unchanged content", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecipeService(setupTestDB(t))
		ctx := context.Background()
		first := newStoredRecipe("https://allrecipes.com/pie", "Apple Pie", "abc")
		require.NoError(t, svc.CreateRecipe(ctx, first))

		again := newStoredRecipe("https://allrecipes.com/pie", "Apple Pie", "abc")
		err := svc.CreateRecipe(ctx, again)

		assert.Equal(t, mise.ECONFLICT, mise.ErrorCode(err))
		assert.Equal(t, first.ID, again.ID)
	})

	t.Run("replaces recipe when content changed", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecipeService(setupTestDB(t))
		ctx := context.Background()
		first := newStoredRecipe("https://allrecipes.com/pie", "Apple Pie", "abc", "dessert")
		require.NoError(t, svc.CreateRecipe(ctx, first))

		updated := newStoredRecipe("https://allrecipes.com/pie", "Best Apple Pie", "def", "baking")
		require.NoError(t, svc.CreateRecipe(ctx, updated))

		assert.Equal(t, first.ID, updated.ID)
		assert.Equal(t, first.CreatedAt, updated.CreatedAt)

		all, err := svc.FindRecipes(ctx, mise.RecipeFilter{})
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "Best Apple Pie", all[0].Recipe.Title)
		assert.Equal(t, "def", all[0].ContentHash)

		tag := "dessert"
		old, err := svc.FindRecipes(ctx, mise.RecipeFilter{Tag: &tag})
		require.NoError(t, err)
		assert.Empty(t, old)
	})
}

func TestRecipeService_FindRecipeByID(t *testing.T) {
	t.Parallel()

	t.Run("returns stored recipe", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecipeService(setupTestDB(t))
		ctx := context.Background()
		r := newStoredRecipe("https://allrecipes.com/pie", "Apple Pie", "abc", "dessert")
		require.NoError(t, svc.CreateRecipe(ctx, r))

		found, err := svc.FindRecipeByID(ctx, r.ID)

		require.NoError(t, err)
		assert.Equal(t, r.ID, found.ID)
		assert.Equal(t, "https://allrecipes.com/pie", found.SourceURL)
		assert.Equal(t, "allrecipes", found.Profile)
		assert.Equal(t, "abc", found.ContentHash)
		assert.Equal(t, r.Recipe, found.Recipe)
		assert.Equal(t, r.CreatedAt, found.CreatedAt)
	})

	t.Run("returns ENOTFOUND for missing recipe", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecipeService(setupTestDB(t))

		_, err := svc.FindRecipeByID(context.Background(), "missing")

		assert.Equal(t, mise.ENOTFOUND, mise.ErrorCode(err))
	})
}

func TestRecipeService_FindRecipes(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T) *sqlite.RecipeService {
		t.Helper()
		svc := sqlite.NewRecipeService(setupTestDB(t))
		ctx := context.Background()
		pie := newStoredRecipe("https://allrecipes.com/pie", "Apple Pie", "a", "Dessert", "baking")
		soup := newStoredRecipe("https://food.com/soup", "Lentil Soup", "b", "soup", "healthy")
		soup.Profile = "foodcom"
		cake := newStoredRecipe("https://allrecipes.com/cake", "Carrot Cake", "c", "dessert")
		for _, r := range []*mise.StoredRecipe{pie, soup, cake} {
			require.NoError(t, svc.CreateRecipe(ctx, r))
		}
		return svc
	}

	titles := func(recipes []*mise.StoredRecipe) []string {
		var out []string
		for _, r := range recipes {
			out = append(out, r.Recipe.Title)
		}
		return out
	}

	t.Run("returns all recipes newest first", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)

		recipes, err := svc.FindRecipes(context.Background(), mise.RecipeFilter{})

		require.NoError(t, err)
		assert.Equal(t, []string{"Carrot Cake", "Lentil Soup", "Apple Pie"}, titles(recipes))
	})

	t.Run("filters by profile", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)
		profile := "foodcom"

		recipes, err := svc.FindRecipes(context.Background(), mise.RecipeFilter{Profile: &profile})

		require.NoError(t, err)
		assert.Equal(t, []string{"Lentil Soup"}, titles(recipes))
	})

	t.Run("filters by tag ignoring case", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)
		tag := "DESSERT"

		recipes, err := svc.FindRecipes(context.Background(), mise.RecipeFilter{Tag: &tag})

		require.NoError(t, err)
		assert.Equal(t, []string{"Carrot Cake", "Apple Pie"}, titles(recipes))
	})

	t.Run("filters by source url", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)
		url := "https://food.com/soup"

		recipes, err := svc.FindRecipes(context.Background(), mise.RecipeFilter{SourceURL: &url})

		require.NoError(t, err)
		assert.Equal(t, []string{"Lentil Soup"}, titles(recipes))
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)
		ctx := context.Background()

		page, err := svc.FindRecipes(ctx, mise.RecipeFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, []string{"Lentil Soup"}, titles(page))

		rest, err := svc.FindRecipes(ctx, mise.RecipeFilter{Offset: 2})
		require.NoError(t, err)
		assert.Equal(t, []string{"Apple Pie"}, titles(rest))
	})
}

func TestRecipeService_DeleteRecipe(t *testing.T) {
	t.Parallel()

	t.Run("deletes recipe and its tags", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRecipeService(db)
		ctx := context.Background()
		r := newStoredRecipe("https://allrecipes.com/pie", "Apple Pie", "abc", "dessert")
		require.NoError(t, svc.CreateRecipe(ctx, r))

		require.NoError(t, svc.DeleteRecipe(ctx, r.ID))

		_, err := svc.FindRecipeByID(ctx, r.ID)
		assert.Equal(t, mise.ENOTFOUND, mise.ErrorCode(err))

		var tags int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM recipe_tags").Scan(&tags))
		assert.Equal(t, 0, tags)
	})

	t.Run("returns ENOTFOUND for missing recipe", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecipeService(setupTestDB(t))

		err := svc.DeleteRecipe(context.Background(), "missing")

		assert.Equal(t, mise.ENOTFOUND, mise.ErrorCode(err))
	})
}
