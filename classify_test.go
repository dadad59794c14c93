package mise_test

import (
	"testing"

	"github.com/fwojciec/mise"
	"github.com/fwojciec/mise/yaml"
	"github.com/stretchr/testify/assert"
)

func recipeWith(ingredients, steps, cookTime int) *mise.Recipe {
	r := &mise.Recipe{CookTime: cookTime}
	for range ingredients {
		r.Ingredients = append(r.Ingredients, mise.Ingredient{Name: "water"})
	}
	for i := range steps {
		r.Steps = append(r.Steps, mise.Step{Order: i + 1, Description: "Stir well."})
	}
	return r
}

func TestLexicon_ClassifyDifficulty(t *testing.T) {
	t.Parallel()

	lex := yaml.DefaultLexicon()

	t.Run("easy at the upper boundary", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, mise.DifficultyEasy, lex.ClassifyDifficulty(recipeWith(5, 5, 30)))
	})

	t.Run("twelve ingredients is hard regardless", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, mise.DifficultyHard, lex.ClassifyDifficulty(recipeWith(12, 1, 0)))
	})

	t.Run("ten steps or ninety minutes is hard", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, mise.DifficultyHard, lex.ClassifyDifficulty(recipeWith(3, 10, 0)))
		assert.Equal(t, mise.DifficultyHard, lex.ClassifyDifficulty(recipeWith(3, 3, 90)))
	})

	t.Run("special equipment is hard", func(t *testing.T) {
		t.Parallel()
		r := recipeWith(3, 3, 10)
		r.Steps[1].Description = "Blend in a food processor until smooth."
		assert.Equal(t, mise.DifficultyHard, lex.ClassifyDifficulty(r))
	})

	t.Run("in between is medium", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, mise.DifficultyMedium, lex.ClassifyDifficulty(recipeWith(6, 5, 30)))
		assert.Equal(t, mise.DifficultyMedium, lex.ClassifyDifficulty(recipeWith(5, 5, 31)))
	})
}

func TestLexicon_ClassifyDietary(t *testing.T) {
	t.Parallel()

	lex := yaml.DefaultLexicon()

	t.Run("meat makes a recipe non-vegetarian", func(t *testing.T) {
		t.Parallel()
		r := &mise.Recipe{Title: "Roast Chicken", Ingredients: []mise.Ingredient{{Name: "whole chicken"}, {Name: "lemon"}}}
		got := lex.ClassifyDietary(r)
		assert.False(t, got.Vegetarian)
		assert.False(t, got.Vegan)
		assert.True(t, got.GlutenFree)
		assert.True(t, got.DairyFree)
	})

	t.Run("animal products make a vegetarian recipe non-vegan", func(t *testing.T) {
		t.Parallel()
		r := &mise.Recipe{Title: "Cookies", Ingredients: []mise.Ingredient{{Name: "all-purpose flour"}, {Name: "butter"}, {Name: "eggs"}}}
		got := lex.ClassifyDietary(r)
		assert.True(t, got.Vegetarian)
		assert.False(t, got.Vegan)
		assert.False(t, got.GlutenFree)
		assert.False(t, got.DairyFree)
	})

	t.Run("keywords match whole words only", func(t *testing.T) {
		t.Parallel()
		r := &mise.Recipe{Title: "Eggplant with graham crumbs", Ingredients: []mise.Ingredient{{Name: "eggplant"}}}
		got := lex.ClassifyDietary(r)
		assert.True(t, got.Vegetarian)
		assert.True(t, got.Vegan)
	})
}

func TestLexicon_ClassifyCuisine(t *testing.T) {
	t.Parallel()

	lex := yaml.DefaultLexicon()

	assert.Equal(t, []string{"italian"}, lex.ClassifyCuisine("Weeknight Pasta", "", nil))
	assert.Equal(t, []string{"indian", "thai"}, lex.ClassifyCuisine("Green Curry", "", nil))
	assert.Equal(t, []string{"chinese"}, lex.ClassifyCuisine("Quick stir fry", "", nil))
	assert.Equal(t, []string{"american"}, lex.ClassifyCuisine("Cookies", "", []string{"American"}))
	assert.Equal(t, []string{mise.CuisineOther}, lex.ClassifyCuisine("Toast", "Buttered", nil))
}

func TestDietaryFlags(t *testing.T) {
	t.Parallel()

	t.Run("labels override inference", func(t *testing.T) {
		t.Parallel()
		var f mise.DietaryFlags
		assert.True(t, f.AddLabel("VegetarianDiet"))
		assert.True(t, f.AddLabel("Gluten-Free"))
		assert.False(t, f.AddLabel("Low Calorie"))
		assert.True(t, f.Set())

		got := f.Apply(mise.DietaryInfo{DairyFree: true})
		assert.Equal(t, mise.DietaryInfo{Vegetarian: true, GlutenFree: true, DairyFree: true}, got)
	})

	t.Run("vegan implies vegetarian and dairy-free", func(t *testing.T) {
		t.Parallel()
		var f mise.DietaryFlags
		f.AddLabel("https://schema.org/VeganDiet")
		got := f.Apply(mise.DietaryInfo{})
		assert.True(t, got.Vegan)
		assert.True(t, got.Vegetarian)
		assert.True(t, got.DairyFree)
	})

	t.Run("unset flags keep inferred values", func(t *testing.T) {
		t.Parallel()
		var f mise.DietaryFlags
		assert.False(t, f.Set())
		in := mise.DietaryInfo{Vegan: true, Vegetarian: true}
		assert.Equal(t, in, f.Apply(in))
	})
}

func TestParseDifficulty(t *testing.T) {
	t.Parallel()

	for label, want := range map[string]mise.Difficulty{
		"Beginner":     mise.DifficultyEasy,
		"intermediate": mise.DifficultyMedium,
		" Advanced ":   mise.DifficultyHard,
	} {
		got, ok := mise.ParseDifficulty(label)
		assert.True(t, ok, label)
		assert.Equal(t, want, got, label)
	}
	_, ok := mise.ParseDifficulty("unknown")
	assert.False(t, ok)
}
