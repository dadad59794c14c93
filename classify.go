package mise

import "strings"

// Difficulty thresholds.
const (
	EasyMaxIngredients = 5
	EasyMaxSteps       = 5
	EasyMaxCookTime    = 30

	HardMinIngredients = 12
	HardMinSteps       = 10
	HardMinCookTime    = 90
)

// ClassifyDietary infers dietary flags from the recipe's title,
// description and ingredient names.
func (l *Lexicon) ClassifyDietary(r *Recipe) DietaryInfo {
	var b strings.Builder
	b.WriteString(r.Title)
	b.WriteString(" ")
	b.WriteString(r.Description)
	for _, ing := range r.Ingredients {
		b.WriteString(" ")
		b.WriteString(ing.Name)
	}
	text := b.String()

	vegetarian := !l.Meat.Match(text)
	return DietaryInfo{
		Vegetarian: vegetarian,
		Vegan:      vegetarian && !l.AnimalProducts.Match(text),
		GlutenFree: !l.Gluten.Match(text),
		DairyFree:  !l.Dairy.Match(text),
	}
}

// ClassifyCuisine returns every cuisine whose keywords occur in the title,
// description or tags, in table order. It returns [CuisineOther] when
// nothing matches.
func (l *Lexicon) ClassifyCuisine(title, description string, tags []string) []string {
	text := title + " " + description + " " + strings.Join(tags, " ")
	var out []string
	for _, c := range l.Cuisines {
		if c.Keywords.Match(text) {
			out = append(out, c.Name)
		}
	}
	if len(out) == 0 {
		return []string{CuisineOther}
	}
	return out
}

// ClassifyDifficulty estimates difficulty from ingredient and step counts,
// cook time and special equipment mentioned in the steps.
func (l *Lexicon) ClassifyDifficulty(r *Recipe) Difficulty {
	equipment := false
	for _, s := range r.Steps {
		if l.Equipment.Match(s.Description) {
			equipment = true
			break
		}
	}

	ingredients, steps := len(r.Ingredients), len(r.Steps)
	switch {
	case ingredients >= HardMinIngredients || steps >= HardMinSteps || r.CookTime >= HardMinCookTime || equipment:
		return DifficultyHard
	case ingredients <= EasyMaxIngredients && steps <= EasyMaxSteps && r.CookTime <= EasyMaxCookTime:
		return DifficultyEasy
	default:
		return DifficultyMedium
	}
}

// ParseDifficulty maps a publisher skill label to a Difficulty:
// beginner/easy → easy, intermediate/medium/moderate → medium,
// advanced/hard/difficult/expert → hard.
func ParseDifficulty(label string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "beginner", "easy", "simple":
		return DifficultyEasy, true
	case "intermediate", "medium", "moderate":
		return DifficultyMedium, true
	case "advanced", "hard", "difficult", "expert", "challenging":
		return DifficultyHard, true
	}
	return "", false
}

// DietaryFlags records dietary flags a publisher stated explicitly. Nil
// fields are left to inference.
type DietaryFlags struct {
	Vegetarian *bool
	Vegan      *bool
	GlutenFree *bool
	DairyFree  *bool
}

// Set reports whether any flag was stated.
func (f DietaryFlags) Set() bool {
	return f.Vegetarian != nil || f.Vegan != nil || f.GlutenFree != nil || f.DairyFree != nil
}

// Apply overlays the stated flags on inferred values.
func (f DietaryFlags) Apply(inferred DietaryInfo) DietaryInfo {
	out := inferred
	if f.Vegetarian != nil {
		out.Vegetarian = *f.Vegetarian
	}
	if f.Vegan != nil {
		out.Vegan = *f.Vegan
	}
	if f.GlutenFree != nil {
		out.GlutenFree = *f.GlutenFree
	}
	if f.DairyFree != nil {
		out.DairyFree = *f.DairyFree
	}
	return out
}

// AddLabel records the flags implied by a publisher dietary label such as
// "Vegan", "gluten-free" or the schema.org value "VegetarianDiet". It
// reports whether the label was recognized.
func (f *DietaryFlags) AddLabel(label string) bool {
	yes := true
	key := strings.ToLower(label)
	key = strings.TrimPrefix(key, "https://schema.org/")
	key = strings.TrimPrefix(key, "http://schema.org/")
	key = strings.NewReplacer("-", "", " ", "", "_", "").Replace(strings.TrimSpace(key))
	key = strings.TrimSuffix(key, "diet")

	switch key {
	case "vegetarian":
		f.Vegetarian = &yes
	case "vegan":
		f.Vegan = &yes
		f.Vegetarian = &yes
		f.DairyFree = &yes
	case "glutenfree":
		f.GlutenFree = &yes
	case "dairyfree", "lowlactose":
		f.DairyFree = &yes
	default:
		return false
	}
	return true
}

// DietaryTags returns the tag for each flag that is true.
func DietaryTags(d DietaryInfo) []string {
	var tags []string
	if d.Vegetarian {
		tags = append(tags, "vegetarian")
	}
	if d.Vegan {
		tags = append(tags, "vegan")
	}
	if d.GlutenFree {
		tags = append(tags, "gluten-free")
	}
	if d.DairyFree {
		tags = append(tags, "dairy-free")
	}
	return tags
}
