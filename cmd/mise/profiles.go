package main

import "fmt"

// Run executes the profiles command.
func (c *ProfilesCmd) Run(deps *Dependencies) error {
	for _, p := range deps.Registry.Profiles() {
		domain := p.Domain
		if domain == "" {
			domain = "(any other site)"
		}
		fmt.Fprintf(deps.Stdout, "%-15s %s\n", p.Name, domain)
	}
	return nil
}
