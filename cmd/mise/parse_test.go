package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/mise"
	main "github.com/fwojciec/mise/cmd/mise"
	"github.com/fwojciec/mise/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func soupRecipe() *mise.Recipe {
	return &mise.Recipe{
		Title:       "Lentil Soup",
		URL:         "https://food.com/recipe/lentil-soup",
		PrepTime:    10,
		CookTime:    30,
		Servings:    4,
		Difficulty:  mise.DifficultyEasy,
		Cuisine:     []string{"other"},
		Tags:        []string{"soup", "healthy"},
		DietaryInfo: mise.DietaryInfo{Vegetarian: true, Vegan: true},
		Ingredients: []mise.Ingredient{
			{ID: "i1", Name: "lentils", Amount: 1.5, Unit: "cup", Notes: "rinsed"},
			{ID: "i2", Name: "carrots", Amount: 2, Unit: mise.UnitDefault},
		},
		Steps: []mise.Step{
			{ID: "s1", Order: 1, Description: "Rinse the lentils."},
			{ID: "s2", Order: 2, Description: "Simmer for 30 minutes.", Tips: []string{"Tip: Stir often."}},
		},
	}
}

func TestParseCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints recipe parsed from file", func(t *testing.T) {
		t.Parallel()

		var gotHTML, gotURL string
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Parser: &mock.Parser{
				ParseFn: func(html, sourceURL string) mise.ParseResult {
					gotHTML, gotURL = html, sourceURL
					return mise.Succeeded(soupRecipe())
				},
			},
		}

		cmd := &main.ParseCmd{Source: writeFile(t, "<html>soup</html>"), URL: "https://food.com/recipe/lentil-soup"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "<html>soup</html>", gotHTML)
		assert.Equal(t, "https://food.com/recipe/lentil-soup", gotURL)
		out := stdout.String()
		assert.Contains(t, out, "Lentil Soup")
		assert.Contains(t, out, "Prep 10 min | Cook 30 min | Serves 4 | Difficulty easy")
		assert.Contains(t, out, "Dietary: vegetarian, vegan")
		assert.Contains(t, out, "  - 1.5 cup lentils (rinsed)")
		assert.Contains(t, out, "  - 2 carrots")
		assert.Contains(t, out, "  2. Simmer for 30 minutes.")
		assert.Contains(t, out, "     Tip: Stir often.")
	})

	t.Run("fetches urls", func(t *testing.T) {
		t.Parallel()

		var fetched string
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					fetched = url
					return "<html></html>", nil
				},
			},
			Parser: &mock.Parser{
				ParseFn: func(_, sourceURL string) mise.ParseResult {
					assert.Equal(t, "https://food.com/recipe/1", sourceURL)
					return mise.Succeeded(soupRecipe())
				},
			},
		}

		cmd := &main.ParseCmd{Source: "https://food.com/recipe/1"}
		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "https://food.com/recipe/1", fetched)
	})

	t.Run("prints json result", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Parser: &mock.Parser{
				ParseFn: func(_, _ string) mise.ParseResult {
					return mise.Succeeded(soupRecipe())
				},
			},
		}

		cmd := &main.ParseCmd{Source: writeFile(t, "<html></html>"), JSON: true}
		require.NoError(t, cmd.Run(deps))

		var res mise.ParseResult
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &res))
		assert.True(t, res.Success())
		assert.Equal(t, "Lentil Soup", res.Recipe().Title)
	})

	t.Run("prints json for failures and returns the code", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Parser: &mock.Parser{
				ParseFn: func(_, _ string) mise.ParseResult {
					return mise.Failed(mise.EMISSING, "Recipe title not found")
				},
			},
		}

		cmd := &main.ParseCmd{Source: writeFile(t, "<html></html>"), JSON: true}
		err := cmd.Run(deps)

		assert.Equal(t, mise.EMISSING, mise.ErrorCode(err))
		assert.Contains(t, stdout.String(), `"code": "MISSING_ELEMENT"`)
	})

	t.Run("reports parse failures", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Parser: &mock.Parser{
				ParseFn: func(_, _ string) mise.ParseResult {
					return mise.Failed(mise.EUNSUPPORTED, "Instagram posts are not supported")
				},
			},
		}

		cmd := &main.ParseCmd{Source: writeFile(t, "<html></html>")}
		err := cmd.Run(deps)

		assert.Equal(t, mise.EUNSUPPORTED, mise.ErrorCode(err))
		assert.Contains(t, stderr.String(), "UNSUPPORTED_SITE: Instagram posts are not supported")
	})

	t.Run("reports missing files", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Parser: &mock.Parser{},
		}

		cmd := &main.ParseCmd{Source: filepath.Join(t.TempDir(), "missing.html")}
		err := cmd.Run(deps)

		assert.Equal(t, mise.EINVALID, mise.ErrorCode(err))
		assert.Contains(t, stderr.String(), "cannot read")
	})
}
