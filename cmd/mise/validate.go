package main

import (
	"fmt"

	"github.com/fwojciec/mise"
)

// Run executes the validate command.
func (c *ValidateCmd) Run(deps *Dependencies) error {
	html, sourceURL, err := loadSource(deps, c.Source, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	res := deps.Parser.Parse(html, sourceURL)
	if !res.Success() {
		fmt.Fprintf(deps.Stderr, "error: %s: %s\n", res.Error().Code, res.Error().Message)
		return res.Err()
	}

	rep := res.Recipe().Validate()
	for _, issue := range rep.Errors {
		fmt.Fprintf(deps.Stdout, "error    %-20s %s\n", issue.Code, issue.Message)
	}
	for _, issue := range rep.Warnings {
		fmt.Fprintf(deps.Stdout, "warning  %-20s %s\n", issue.Code, issue.Message)
	}

	if !rep.Valid() {
		return mise.Errorf(mise.EINVALID, "recipe has %d validation errors", len(rep.Errors))
	}
	fmt.Fprintf(deps.Stdout, "%q is valid (%d warnings)\n", res.Recipe().Title, len(rep.Warnings))
	return nil
}
