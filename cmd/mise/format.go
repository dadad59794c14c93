package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/mise"
)

// printRecipe writes a human-readable rendering of r.
func printRecipe(w io.Writer, r *mise.Recipe) {
	fmt.Fprintln(w, r.Title)
	if r.URL != "" {
		fmt.Fprintln(w, r.URL)
	}
	if r.Description != "" {
		fmt.Fprintf(w, "\n%s\n", r.Description)
	}

	fmt.Fprintln(w)
	var facts []string
	if r.PrepTime > 0 {
		facts = append(facts, fmt.Sprintf("Prep %d min", r.PrepTime))
	}
	if r.CookTime > 0 {
		facts = append(facts, fmt.Sprintf("Cook %d min", r.CookTime))
	}
	if r.Servings > 0 {
		facts = append(facts, fmt.Sprintf("Serves %d", r.Servings))
	}
	facts = append(facts, "Difficulty "+string(r.Difficulty))
	fmt.Fprintln(w, strings.Join(facts, " | "))

	if len(r.Cuisine) > 0 {
		fmt.Fprintf(w, "Cuisine: %s\n", strings.Join(r.Cuisine, ", "))
	}
	if diets := mise.DietaryTags(r.DietaryInfo); len(diets) > 0 {
		fmt.Fprintf(w, "Dietary: %s\n", strings.Join(diets, ", "))
	}
	if len(r.Tags) > 0 {
		fmt.Fprintf(w, "Tags: %s\n", strings.Join(r.Tags, ", "))
	}
	if r.Rating != nil {
		fmt.Fprintf(w, "Rating: %.1f (%d)\n", r.Rating.Average, r.Rating.Count)
	}

	fmt.Fprintf(w, "\nIngredients (%d):\n", len(r.Ingredients))
	for _, ing := range r.Ingredients {
		fmt.Fprintf(w, "  - %s\n", formatIngredient(ing))
	}

	fmt.Fprintf(w, "\nSteps (%d):\n", len(r.Steps))
	for _, s := range r.Steps {
		fmt.Fprintf(w, "  %d. %s\n", s.Order, s.Description)
		for _, tip := range s.Tips {
			fmt.Fprintf(w, "     %s\n", tip)
		}
	}
}

func formatIngredient(ing mise.Ingredient) string {
	var parts []string
	if ing.Amount > 0 {
		parts = append(parts, strconv.FormatFloat(ing.Amount, 'f', -1, 64))
	}
	if ing.Unit != "" && ing.Unit != mise.UnitDefault {
		parts = append(parts, ing.Unit)
	}
	parts = append(parts, ing.Name)
	s := strings.Join(parts, " ")
	if ing.Notes != "" {
		s += " (" + ing.Notes + ")"
	}
	return s
}
