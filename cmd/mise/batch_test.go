package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/mise"
	"github.com/fwojciec/mise/batch"
	main "github.com/fwojciec/mise/cmd/mise"
	"github.com/fwojciec/mise/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("processes listed urls and prints summary", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Runner: &batch.Runner{
				Fetcher: &mock.Fetcher{
					FetchFn: func(_ context.Context, url string) (string, error) {
						fetched = append(fetched, url)
						return "<html></html>", nil
					},
				},
				Parser: &mock.Parser{
					ParseFn: func(_, sourceURL string) mise.ParseResult {
						if sourceURL == "https://food.com/bad" {
							return mise.Failed(mise.EPARSER, "not a recipe page")
						}
						return mise.Succeeded(&mise.Recipe{Title: "Lentil Soup"})
					},
				},
				Recipes: &mock.RecipeService{
					CreateRecipeFn: func(_ context.Context, r *mise.StoredRecipe) error {
						r.ID = "r1"
						return nil
					},
				},
				RetryDelays: []time.Duration{0},
			},
		}

		file := writeFile(t, "# weekly list\nhttps://food.com/soup\n\nhttps://food.com/bad\nhttps://food.com/soup\n")
		cmd := &main.BatchCmd{File: file, Concurrency: 1}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://food.com/soup", "https://food.com/bad"}, fetched)
		assert.Contains(t, stdout.String(), "Processing 2 URLs")
		assert.Contains(t, stdout.String(), "Lentil Soup")
		assert.Contains(t, stdout.String(), "Done: 1 saved, 0 unchanged, 1 failed, 1 duplicate")
		assert.Contains(t, stderr.String(), "fail https://food.com/bad: PARSER_ERROR: not a recipe page")
		assert.Contains(t, stderr.String(), "duplicate https://food.com/soup")
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Runner: &batch.Runner{},
		}

		cmd := &main.BatchCmd{File: "/nonexistent/urls.txt"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
