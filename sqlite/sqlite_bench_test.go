package sqlite_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/fwojciec/mise"
	"github.com/fwojciec/mise/sqlite"
	"github.com/stretchr/testify/require"
)

// BenchmarkCreateRecipe measures inserts of distinct recipes, the common
// case for a batch run over new pages.
func BenchmarkCreateRecipe(b *testing.B) {
	db := sqlite.NewDB(filepath.Join(b.TempDir(), "bench.db"))
	require.NoError(b, db.Open())
	defer db.Close()

	svc := sqlite.NewRecipeService(db)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r := newStoredRecipe(fmt.Sprintf("https://food.com/recipe/%d", i), fmt.Sprintf("Recipe %d", i), fmt.Sprintf("%x", i), "dinner", "easy")
		if err := svc.CreateRecipe(ctx, r); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCreateRecipe_Unchanged measures the skip path for pages whose
// content hash has not changed since the last run.
func BenchmarkCreateRecipe_Unchanged(b *testing.B) {
	db := sqlite.NewDB(filepath.Join(b.TempDir(), "bench.db"))
	require.NoError(b, db.Open())
	defer db.Close()

	svc := sqlite.NewRecipeService(db)
	ctx := context.Background()
	require.NoError(b, svc.CreateRecipe(ctx, newStoredRecipe("https://food.com/recipe/1", "Soup", "abc")))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		err := svc.CreateRecipe(ctx, newStoredRecipe("https://food.com/recipe/1", "Soup", "abc"))
		if mise.ErrorCode(err) != mise.ECONFLICT {
			b.Fatalf("expected conflict, got %v", err)
		}
	}
}
