package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/mise"
	"github.com/google/uuid"
)

var _ mise.RecipeService = (*RecipeService)(nil)

// RecipeService implements mise.RecipeService using SQLite. Recipes are
// stored as JSON, keyed by source URL; tags are indexed separately for
// filtering.
type RecipeService struct {
	db *DB
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(db *DB) *RecipeService {
	return &RecipeService{db: db}
}

// hashRecipe hashes the encoded recipe when the caller supplied no hash of
// the source page.
func hashRecipe(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// CreateRecipe stores a recipe. A recipe already stored for the same
// source URL is replaced in place and keeps its ID, unless its content
// hash is unchanged, in which case ECONFLICT is returned and recipe.ID is
// set to the stored ID.
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *mise.StoredRecipe) error {
	if err := recipe.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(recipe.Recipe)
	if err != nil {
		return fmt.Errorf("failed to encode recipe: %w", err)
	}
	if recipe.ContentHash == "" {
		recipe.ContentHash = hashRecipe(data)
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var existingID, existingHash, createdAt string
	err = tx.QueryRowContext(ctx,
		"SELECT id, content_hash, created_at FROM recipes WHERE source_url = ?",
		recipe.SourceURL,
	).Scan(&existingID, &existingHash, &createdAt)

	now := time.Now().UTC().Truncate(time.Second)
	switch {
	case err == sql.ErrNoRows:
		recipe.ID = uuid.New().String()
		recipe.CreatedAt = now
		_, err = tx.ExecContext(ctx, `
			INSERT INTO recipes (id, source_url, profile, title, content_hash, recipe, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, recipe.ID, recipe.SourceURL, recipe.Profile, recipe.Recipe.Title, recipe.ContentHash,
			string(data), now.Format(time.RFC3339), now.Format(time.RFC3339))
		if err != nil {
			return err
		}
	case err != nil:
		return err
	case existingHash == recipe.ContentHash:
		recipe.ID = existingID
		return mise.Errorf(mise.ECONFLICT, "recipe unchanged: %s", recipe.SourceURL)
	default:
		recipe.ID = existingID
		if recipe.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			UPDATE recipes
			SET profile = ?, title = ?, content_hash = ?, recipe = ?, updated_at = ?
			WHERE id = ?
		`, recipe.Profile, recipe.Recipe.Title, recipe.ContentHash, string(data), now.Format(time.RFC3339), existingID)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM recipe_tags WHERE recipe_id = ?", existingID); err != nil {
			return err
		}
	}

	for _, tag := range recipe.Recipe.Tags {
		if _, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO recipe_tags (recipe_id, tag) VALUES (?, ?)",
			recipe.ID, strings.ToLower(tag),
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindRecipeByID retrieves a stored recipe by ID.
func (s *RecipeService) FindRecipeByID(ctx context.Context, id string) (*mise.StoredRecipe, error) {
	recipes, err := s.FindRecipes(ctx, mise.RecipeFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, mise.Errorf(mise.ENOTFOUND, "recipe not found")
	}
	return recipes[0], nil
}

// FindRecipes retrieves stored recipes matching the filter, newest first.
func (s *RecipeService) FindRecipes(ctx context.Context, filter mise.RecipeFilter) ([]*mise.StoredRecipe, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, profile, content_hash, recipe, created_at FROM recipes WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.Profile != nil {
		query.WriteString(" AND profile = ?")
		args = append(args, *filter.Profile)
	}
	if filter.Tag != nil {
		query.WriteString(" AND id IN (SELECT recipe_id FROM recipe_tags WHERE tag = ?)")
		args = append(args, strings.ToLower(*filter.Tag))
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []*mise.StoredRecipe
	for rows.Next() {
		var r mise.StoredRecipe
		var data, createdAt string

		if err := rows.Scan(&r.ID, &r.SourceURL, &r.Profile, &r.ContentHash, &data, &createdAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(data), &r.Recipe); err != nil {
			return nil, fmt.Errorf("failed to decode recipe %s: %w", r.ID, err)
		}
		if r.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}

		recipes = append(recipes, &r)
	}

	return recipes, rows.Err()
}

// DeleteRecipe permanently removes a stored recipe and its tags.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM recipes WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return mise.Errorf(mise.ENOTFOUND, "recipe not found")
	}

	return nil
}
