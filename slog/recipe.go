package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mise"
)

// Ensure LoggingRecipeService implements mise.RecipeService.
var _ mise.RecipeService = (*LoggingRecipeService)(nil)

// LoggingRecipeService wraps a RecipeService with debug logging.
type LoggingRecipeService struct {
	next   mise.RecipeService
	logger *slog.Logger
}

// NewLoggingRecipeService creates a new LoggingRecipeService.
func NewLoggingRecipeService(next mise.RecipeService, logger *slog.Logger) *LoggingRecipeService {
	return &LoggingRecipeService{next: next, logger: logger}
}

func (s *LoggingRecipeService) CreateRecipe(ctx context.Context, recipe *mise.StoredRecipe) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("create recipe",
			"url", recipe.SourceURL,
			"id", recipe.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRecipe(ctx, recipe)
}

func (s *LoggingRecipeService) FindRecipeByID(ctx context.Context, id string) (recipe *mise.StoredRecipe, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find recipe",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRecipeByID(ctx, id)
}

func (s *LoggingRecipeService) FindRecipes(ctx context.Context, filter mise.RecipeFilter) (recipes []*mise.StoredRecipe, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find recipes",
			"count", len(recipes),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRecipes(ctx, filter)
}

func (s *LoggingRecipeService) DeleteRecipe(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("delete recipe",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteRecipe(ctx, id)
}
