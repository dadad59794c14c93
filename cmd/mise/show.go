package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fwojciec/mise"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	stored, err := deps.Recipes.FindRecipeByID(deps.Ctx, c.ID)
	if err != nil {
		if mise.ErrorCode(err) == mise.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: recipe %q not found. Use 'mise list' to see stored recipes.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", mise.ErrorMessage(err))
		}
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stored)
	}

	fmt.Fprintf(deps.Stdout, "ID: %s\nProfile: %s\nStored: %s\n\n", stored.ID, stored.Profile, stored.CreatedAt.Format(time.RFC3339))
	printRecipe(deps.Stdout, stored.Recipe)
	return nil
}
