package goquery

import (
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mise"
	"github.com/kaptinlin/jsonrepair"
)

// StructuredData is the subset of a schema.org/Recipe object the engine
// consumes. It is decoded once per parse and discarded afterwards.
type StructuredData struct {
	Name          string
	Description   string
	Images        []string
	Yield         string
	Ingredients   []string
	Instructions  []mise.StepGroup
	PrepTime      string
	CookTime      string
	Author        string
	Rating        *mise.Rating
	Nutrition     *mise.NutritionInfo
	DatePublished string
	Keywords      []string
	Categories    []string
	Cuisines      []string
	Diets         []string
}

// FindStructuredData scans every JSON-LD block for a Recipe object and
// returns the first one found, or nil. Blocks that fail to decode are
// repaired if possible and otherwise skipped with a warning.
func FindStructuredData(doc *goquery.Document, logger *slog.Logger) *StructuredData {
	var found map[string]any
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(i int, s *goquery.Selection) bool {
		v, err := decodeBlock(s.Text())
		if err != nil {
			logger.Warn("skipping structured data block", "index", i, "err", err)
			return true
		}
		found = findRecipe(v)
		return found == nil
	})
	if found == nil {
		return nil
	}
	return newStructuredData(found)
}

func decodeBlock(text string) (any, error) {
	text = strings.TrimSpace(text)
	var v any
	err := json.Unmarshal([]byte(text), &v)
	if err == nil {
		return v, nil
	}
	repaired, repairErr := jsonrepair.JSONRepair(text)
	if repairErr != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(repaired), &v); err != nil {
		return nil, err
	}
	return v, nil
}

// findRecipe returns the first Recipe object in v, which may be a single
// object, an array of objects or an object with an @graph array.
func findRecipe(v any) map[string]any {
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			if r := findRecipe(item); r != nil {
				return r
			}
		}
	case map[string]any:
		if graph, ok := t["@graph"].([]any); ok {
			for _, item := range graph {
				if obj, ok := item.(map[string]any); ok && isRecipe(obj) {
					return obj
				}
			}
		}
		if isRecipe(t) {
			return t
		}
	}
	return nil
}

func isRecipe(obj map[string]any) bool {
	for _, t := range stringList(obj["@type"]) {
		if t == "Recipe" || strings.HasSuffix(t, "/Recipe") {
			return true
		}
	}
	return false
}

func newStructuredData(obj map[string]any) *StructuredData {
	sd := &StructuredData{
		Name:          cleanText(str(obj["name"])),
		Description:   cleanText(str(obj["description"])),
		Images:        imageList(obj["image"]),
		Yield:         firstString(obj["recipeYield"]),
		PrepTime:      str(obj["prepTime"]),
		CookTime:      str(obj["cookTime"]),
		Author:        authorName(obj["author"]),
		DatePublished: str(obj["datePublished"]),
		Keywords:      splitList(obj["keywords"]),
		Categories:    stringList(obj["recipeCategory"]),
		Cuisines:      stringList(obj["recipeCuisine"]),
		Diets:         stringList(obj["suitableForDiet"]),
	}
	for _, line := range stringList(obj["recipeIngredient"]) {
		if line = cleanText(line); line != "" {
			sd.Ingredients = append(sd.Ingredients, line)
		}
	}
	if len(sd.Ingredients) == 0 {
		for _, line := range stringList(obj["ingredients"]) {
			if line = cleanText(line); line != "" {
				sd.Ingredients = append(sd.Ingredients, line)
			}
		}
	}
	sd.Instructions = instructionGroups(obj["recipeInstructions"])
	sd.Rating = aggregateRating(obj["aggregateRating"])
	sd.Nutrition = nutrition(obj["nutrition"])
	return sd
}

// instructionGroups flattens recipeInstructions: a string, an array of
// strings or HowToStep objects, or HowToSection objects holding steps.
func instructionGroups(v any) []mise.StepGroup {
	var groups []mise.StepGroup
	var loose []string
	flush := func() {
		if len(loose) > 0 {
			groups = append(groups, mise.StepGroup{Lines: loose})
			loose = nil
		}
	}

	switch t := v.(type) {
	case string:
		for _, line := range strings.Split(t, "\n") {
			if line = cleanText(line); line != "" {
				loose = append(loose, line)
			}
		}
	case []any:
		for _, item := range t {
			switch it := item.(type) {
			case string:
				if line := cleanText(it); line != "" {
					loose = append(loose, line)
				}
			case map[string]any:
				if elems, ok := it["itemListElement"].([]any); ok {
					flush()
					g := mise.StepGroup{Name: cleanText(str(it["name"]))}
					for _, e := range elems {
						if line := stepText(e); line != "" {
							g.Lines = append(g.Lines, line)
						}
					}
					if len(g.Lines) > 0 {
						groups = append(groups, g)
					}
					continue
				}
				if line := stepText(it); line != "" {
					loose = append(loose, line)
				}
			}
		}
	}
	flush()
	return groups
}

func stepText(v any) string {
	switch t := v.(type) {
	case string:
		return cleanText(t)
	case map[string]any:
		if text := cleanText(str(t["text"])); text != "" {
			return text
		}
		return cleanText(str(t["name"]))
	}
	return ""
}

func aggregateRating(v any) *mise.Rating {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	avg := number(obj["ratingValue"])
	count := int(number(obj["reviewCount"]))
	if count == 0 {
		count = int(number(obj["ratingCount"]))
	}
	if avg == 0 && count == 0 {
		return nil
	}
	return &mise.Rating{Average: avg, Count: count}
}

func nutrition(v any) *mise.NutritionInfo {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	n := &mise.NutritionInfo{
		Calories: int(number(obj["calories"])),
		Protein:  int(number(obj["proteinContent"])),
		Carbs:    int(number(obj["carbohydrateContent"])),
		Fat:      int(number(obj["fatContent"])),
	}
	if *n == (mise.NutritionInfo{}) {
		return nil
	}
	return n
}

func authorName(v any) string {
	switch t := v.(type) {
	case string:
		return cleanText(t)
	case []any:
		for _, item := range t {
			if name := authorName(item); name != "" {
				return name
			}
		}
	case map[string]any:
		return cleanText(str(t["name"]))
	}
	return ""
}

func imageList(v any) []string {
	var out []string
	switch t := v.(type) {
	case string:
		if t != "" {
			out = append(out, t)
		}
	case []any:
		for _, item := range t {
			out = append(out, imageList(item)...)
		}
	case map[string]any:
		if u := str(t["url"]); u != "" {
			out = append(out, u)
		} else if u := str(t["contentUrl"]); u != "" {
			out = append(out, u)
		}
	}
	return out
}

// str returns v as a string when it is a string or a number.
func str(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return ""
}

// number returns the first number in v, which may be a JSON number or a
// string such as "150 calories".
func number(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		return mise.FirstFloat(t)
	}
	return 0
}

func firstString(v any) string {
	list := stringList(v)
	if len(list) == 0 {
		return ""
	}
	return list[0]
}

// stringList returns v as a list of non-empty strings.
func stringList(v any) []string {
	switch t := v.(type) {
	case []any:
		var out []string
		for _, item := range t {
			if s := str(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		if s := str(t); s != "" {
			return []string{s}
		}
	}
	return nil
}

// splitList returns v as a list, splitting a single string on commas.
func splitList(v any) []string {
	if s, ok := v.(string); ok {
		var out []string
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	}
	return stringList(v)
}
