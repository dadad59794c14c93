package goquery

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mise"
)

// Yummly returns the yummly.com profile.
func Yummly() *Profile {
	return &Profile{
		Name:   "yummly",
		Domain: "yummly.com",
		Selectors: Selectors{
			Title:        ".recipe-title, h1",
			Description:  ".recipe-summary",
			Image:        ".recipe-image img",
			Ingredients:  ".IngredientLine",
			Instructions: ".step",
			CookTime:     ".recipe-time-yield .unit",
			Servings:     ".servings .value",
			Author:       ".author-name",
			Rating:       ".rating .average",
			RatingCount:  ".rating .count",
			Nutrition:    ".nutrition-section",
			Difficulty:   ".difficulty-level",
			Cuisine:      ".recipe-cuisine",
			Dietary:      ".dietary-tag",
		},
		StepTips:         []InnerNote{{Selector: ".step-tip", Label: "Tip: "}},
		StepImage:        ".step-image",
		StepDurationAttr: "data-timer",
		Categories:       categories("budget", "kid-friendly", "meal-prep"),
		Hooks: Hooks{
			Ingredient: scalingNote,
		},
	}
}

type scaling struct {
	Min  json.Number `json:"min"`
	Max  json.Number `json:"max"`
	Unit string      `json:"unit"`
}

// scalingNote records the data-scaling range of an ingredient line.
// Malformed scaling data is ignored.
func scalingNote(s *goquery.Selection, ing *mise.Ingredient) {
	raw, ok := s.Attr("data-scaling")
	if !ok {
		return
	}
	var sc scaling
	if err := json.Unmarshal([]byte(raw), &sc); err != nil {
		return
	}
	if sc.Min == "" && sc.Max == "" {
		return
	}
	ing.AddNote(fmt.Sprintf("Scaling: %s-%s %s", trimNumber(sc.Min), trimNumber(sc.Max), sc.Unit))
}

func trimNumber(n json.Number) string {
	f, err := n.Float64()
	if err != nil {
		return n.String()
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
