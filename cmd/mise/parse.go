package main

import (
	"encoding/json"
	"fmt"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	html, sourceURL, err := loadSource(deps, c.Source, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	res := deps.Parser.Parse(html, sourceURL)

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}
		return res.Err()
	}

	if !res.Success() {
		fmt.Fprintf(deps.Stderr, "error: %s: %s\n", res.Error().Code, res.Error().Message)
		return res.Err()
	}

	printRecipe(deps.Stdout, res.Recipe())
	return nil
}
