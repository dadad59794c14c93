package mise_test

import (
	"testing"

	"github.com/fwojciec/mise"
	"github.com/fwojciec/mise/yaml"
	"github.com/stretchr/testify/assert"
)

func TestLexicon_ParseIngredient(t *testing.T) {
	t.Parallel()

	lex := yaml.DefaultLexicon()
	parse := func(s string) mise.Ingredient {
		return lex.ParseIngredient(s, mise.IngredientOptions{})
	}

	t.Run("mixed number with plural unit", func(t *testing.T) {
		t.Parallel()
		got := parse("2 1/4 cups all-purpose flour")
		assert.InDelta(t, 2.25, got.Amount, 0.0001)
		assert.Equal(t, "cups", got.Unit)
		assert.Equal(t, "all-purpose flour", got.Name)
		assert.Empty(t, got.Notes)
		assert.NotEmpty(t, got.ID)
	})

	t.Run("trailing comma becomes notes", func(t *testing.T) {
		t.Parallel()
		got := parse("1 cup butter, softened")
		assert.InDelta(t, 1, got.Amount, 0.0001)
		assert.Equal(t, "cup", got.Unit)
		assert.Equal(t, "butter", got.Name)
		assert.Equal(t, "softened", got.Notes)
	})

	t.Run("package size before the unit becomes notes", func(t *testing.T) {
		t.Parallel()
		got := parse("1 (14 oz) can diced tomatoes")
		assert.InDelta(t, 1, got.Amount, 0.0001)
		assert.Equal(t, "can", got.Unit)
		assert.Equal(t, "diced tomatoes", got.Name)
		assert.Equal(t, "14 oz", got.Notes)
	})

	t.Run("leading zero before glyph is removed", func(t *testing.T) {
		t.Parallel()
		got := parse("0 ¼ cup sugar")
		assert.InDelta(t, 0.25, got.Amount, 0.0001)
		assert.Equal(t, "cup", got.Unit)
		assert.Equal(t, "sugar", got.Name)
	})

	t.Run("leading zero before fraction is removed", func(t *testing.T) {
		t.Parallel()
		got := parse("0 1/2 teaspoon salt")
		assert.InDelta(t, 0.5, got.Amount, 0.0001)
		assert.Equal(t, "teaspoon", got.Unit)
	})

	t.Run("zero padded integer", func(t *testing.T) {
		t.Parallel()
		got := parse("01 onion")
		assert.InDelta(t, 1, got.Amount, 0.0001)
		assert.Equal(t, "onion", got.Name)
	})

	t.Run("size adjective on eggs moves to notes", func(t *testing.T) {
		t.Parallel()
		got := parse("2 large eggs")
		assert.InDelta(t, 2, got.Amount, 0.0001)
		assert.Equal(t, mise.UnitDefault, got.Unit)
		assert.Equal(t, "eggs", got.Name)
		assert.Equal(t, "large", got.Notes)
	})

	t.Run("range takes lower bound", func(t *testing.T) {
		t.Parallel()
		got := parse("2-3 tablespoons olive oil")
		assert.InDelta(t, 2, got.Amount, 0.0001)
		assert.Equal(t, "tablespoons", got.Unit)
		assert.Equal(t, "olive oil", got.Name)

		got = parse("1 to 2 cloves garlic")
		assert.InDelta(t, 1, got.Amount, 0.0001)
		assert.Equal(t, "cloves", got.Unit)
	})

	t.Run("abbreviated unit is canonicalized", func(t *testing.T) {
		t.Parallel()
		got := parse("2 tbsp. soy sauce")
		assert.Equal(t, "tablespoon", got.Unit)
		assert.Equal(t, "soy sauce", got.Name)

		got = parse("500 g flour")
		assert.Equal(t, "gram", got.Unit)
		assert.InDelta(t, 500, got.Amount, 0.0001)
	})

	t.Run("parenthetical becomes notes", func(t *testing.T) {
		t.Parallel()
		got := parse("2 (1-inch-thick) rib-eye steaks")
		assert.Equal(t, "rib-eye steaks", got.Name)
		assert.Equal(t, "1-inch-thick", got.Notes)
	})

	t.Run("unicode glyph attached to whole number", func(t *testing.T) {
		t.Parallel()
		got := parse("1½ cups milk")
		assert.InDelta(t, 1.5, got.Amount, 0.0001)
		assert.Equal(t, "cups", got.Unit)
		assert.Equal(t, "milk", got.Name)
	})

	t.Run("no amount", func(t *testing.T) {
		t.Parallel()
		got := parse("Kosher salt, to taste")
		assert.Zero(t, got.Amount)
		assert.Equal(t, mise.UnitDefault, got.Unit)
		assert.Equal(t, "Kosher salt", got.Name)
		assert.Equal(t, "to taste", got.Notes)
	})

	t.Run("boilerplate yields empty name", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, parse("Original recipe yields 24 servings").Name)
		assert.Empty(t, parse("Cook Mode (Keep screen awake)").Name)
		assert.Empty(t, parse("   ").Name)
	})

	t.Run("profile unit table and default unit", func(t *testing.T) {
		t.Parallel()
		got := lex.ParseIngredient("2 cups sugar", mise.IngredientOptions{Units: lex.Units.Singular()})
		assert.Equal(t, "cup", got.Unit)

		got = lex.ParseIngredient("chef's knife", mise.IngredientOptions{DefaultUnit: mise.UnitPiece})
		assert.Equal(t, mise.UnitPiece, got.Unit)
	})

	t.Run("non-breaking spaces are normalized", func(t *testing.T) {
		t.Parallel()
		got := parse("1 cup  rice")
		assert.Equal(t, "cup", got.Unit)
		assert.Equal(t, "rice", got.Name)
	})
}

func TestCleanLeadingZeros(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "¼ cup", mise.CleanLeadingZeros("0 ¼ cup"))
	assert.Equal(t, "1/2 cup", mise.CleanLeadingZeros("0 1/2 cup"))
	assert.Equal(t, "1 cup", mise.CleanLeadingZeros("01 cup"))
	assert.Equal(t, "10 cups", mise.CleanLeadingZeros("10 cups"))
	assert.Equal(t, "0.5 cup", mise.CleanLeadingZeros("0.5 cup"))
}
