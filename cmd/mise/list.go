package main

import (
	"fmt"

	"github.com/fwojciec/mise"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := mise.RecipeFilter{Limit: c.Limit}
	if c.Profile != "" {
		filter.Profile = &c.Profile
	}
	if c.Tag != "" {
		filter.Tag = &c.Tag
	}

	recipes, err := deps.Recipes.FindRecipes(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mise.ErrorMessage(err))
		return err
	}

	if len(recipes) == 0 {
		fmt.Fprintln(deps.Stdout, "No recipes found. Use 'mise batch' to add some.")
		return nil
	}

	for _, r := range recipes {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", r.ID, r.Recipe.Title, r.SourceURL)
	}

	return nil
}
