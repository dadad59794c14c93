package mise

import "github.com/google/uuid"

// Difficulty is the estimated effort level of a recipe.
type Difficulty string

// Difficulty levels.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Default units assigned when an ingredient line names no recognized unit.
const (
	UnitDefault = "unit"
	UnitPiece   = "piece"
)

// CuisineOther is the cuisine reported when no cuisine keyword matches.
const CuisineOther = "other"

// Recipe is the canonical, publisher-independent recipe record.
type Recipe struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	URL           string         `json:"url"`
	ImageURL      string         `json:"imageUrl"`
	PrepTime      int            `json:"prepTime"`
	CookTime      int            `json:"cookTime"`
	Servings      int            `json:"servings"`
	CreatorID     string         `json:"creatorId"`
	PublishedAt   *string        `json:"publishedAt,omitempty"`
	Ingredients   []Ingredient   `json:"ingredients"`
	Steps         []Step         `json:"steps"`
	Tags          []string       `json:"tags"`
	Cuisine       []string       `json:"cuisine"`
	Difficulty    Difficulty     `json:"difficulty"`
	DietaryInfo   DietaryInfo    `json:"dietaryInfo"`
	Rating        *Rating        `json:"rating,omitempty"`
	NutritionInfo *NutritionInfo `json:"nutritionInfo,omitempty"`
}

// Ingredient is one normalized ingredient line.
type Ingredient struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
	Notes  string  `json:"notes,omitempty"`
}

// AddNote appends note to the ingredient's notes, separated by "; ".
func (i *Ingredient) AddNote(note string) {
	if note == "" {
		return
	}
	if i.Notes == "" {
		i.Notes = note
		return
	}
	i.Notes += "; " + note
}

// Step is one instruction step. Order is 1-based and matches the step's
// position in Recipe.Steps.
type Step struct {
	ID          string   `json:"id"`
	Order       int      `json:"order"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Duration    int      `json:"duration,omitempty"`
	Tips        []string `json:"tips,omitempty"`
}

// DietaryInfo holds dietary suitability flags.
type DietaryInfo struct {
	Vegetarian bool `json:"vegetarian"`
	Vegan      bool `json:"vegan"`
	GlutenFree bool `json:"glutenFree"`
	DairyFree  bool `json:"dairyFree"`
}

// Rating is the aggregate user rating.
type Rating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// NutritionInfo holds per-serving nutrition values. Protein, carbs and fat
// are in grams.
type NutritionInfo struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// NewID returns a fresh opaque identifier.
func NewID() string {
	return uuid.New().String()
}
