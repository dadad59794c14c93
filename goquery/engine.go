package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mise"
)

// extraction holds the state of one profile applied to one document.
type extraction struct {
	profile *Profile
	lexicon *mise.Lexicon
	doc     *goquery.Document
	sd      *StructuredData
	base    *url.URL
	units   mise.UnitTable
}

// Extract applies the profile to doc. Per field, a non-empty structured
// data value wins; otherwise the profile's markup selectors are used;
// otherwise the field keeps its empty default.
func (p *Profile) Extract(doc *goquery.Document, sd *StructuredData, sourceURL string, lex *mise.Lexicon) (*mise.Recipe, error) {
	x := &extraction{
		profile: p,
		lexicon: lex,
		doc:     doc,
		sd:      sd,
		base:    baseOf(sourceURL),
		units:   p.unitTable(lex),
	}
	if sd == nil {
		x.sd = &StructuredData{}
	}

	r := &mise.Recipe{
		ID:          mise.NewID(),
		URL:         sourceURL,
		Ingredients: []mise.Ingredient{},
		Steps:       []mise.Step{},
	}
	x.fillMetadata(r)
	r.Ingredients = x.ingredients()
	r.Steps = x.steps()
	r.Rating = x.rating()
	r.NutritionInfo = x.nutrition()

	if p.Hooks.Finish != nil {
		p.Hooks.Finish(doc, r, lex)
	}
	if err := x.checkRequired(r, sd != nil); err != nil {
		return nil, err
	}

	x.classify(r)
	return r, nil
}

func (p *Profile) unitTable(lex *mise.Lexicon) mise.UnitTable {
	units := lex.Units
	if p.Units != nil {
		units = units.With(p.Units)
	}
	if p.SingularUnits {
		units = units.Singular()
	}
	return units
}

func (x *extraction) fillMetadata(r *mise.Recipe) {
	sel, root := x.profile.Selectors, x.doc.Selection

	r.Title = firstNonEmpty(x.sd.Name, text(root, sel.Title))
	r.Description = firstNonEmpty(x.sd.Description, text(root, sel.Description))
	if len(x.sd.Images) > 0 {
		r.ImageURL = resolveURL(x.sd.Images[0], x.base)
	} else if sel.Image != "" {
		r.ImageURL = imageSrc(root.Find(sel.Image), x.base)
	}

	r.PrepTime = firstPositive(mise.ParseMinutes(x.sd.PrepTime), mise.ParseMinutes(text(root, sel.PrepTime)))
	r.CookTime = firstPositive(mise.ParseMinutes(x.sd.CookTime), mise.ParseMinutes(text(root, sel.CookTime)))
	r.Servings = firstPositive(mise.FirstInt(x.sd.Yield), mise.FirstInt(text(root, sel.Servings)))
	if d := x.profile.Details; d != nil {
		x.fillDetails(r, d)
	}

	r.CreatorID = firstNonEmpty(x.sd.Author, stripBy(text(root, sel.Author)))

	if published := x.publishedAt(); published != "" {
		r.PublishedAt = &published
	}
}

// fillDetails reads label/value rows such as "Cook Time: 30 mins" into
// fields still unset.
func (x *extraction) fillDetails(r *mise.Recipe, d *DetailSelector) {
	x.doc.Find(d.Item).Each(func(_ int, item *goquery.Selection) {
		label := strings.ToLower(text(item, d.Label))
		value := text(item, d.Value)
		switch {
		case strings.Contains(label, "prep") && r.PrepTime == 0:
			r.PrepTime = mise.ParseMinutes(value)
		case strings.Contains(label, "cook") && r.CookTime == 0:
			r.CookTime = mise.ParseMinutes(value)
		case (strings.Contains(label, "serving") || strings.Contains(label, "yield")) && r.Servings == 0:
			r.Servings = mise.FirstInt(value)
		}
	})
}

func (x *extraction) publishedAt() string {
	candidates := []string{
		x.sd.DatePublished,
		x.doc.Find(`meta[property="article:published_time"]`).First().AttrOr("content", ""),
		x.doc.Find("time[datetime]").First().AttrOr("datetime", ""),
	}
	for _, c := range candidates {
		if d := normalizeDate(c); d != "" {
			return d
		}
	}
	return ""
}

func (x *extraction) ingredients() []mise.Ingredient {
	out := []mise.Ingredient{}
	add := func(ing mise.Ingredient) {
		if ing.Name != "" {
			out = append(out, ing)
		}
	}

	opts := mise.IngredientOptions{Units: x.units}
	if len(x.sd.Ingredients) > 0 {
		for _, line := range x.sd.Ingredients {
			add(x.lexicon.ParseIngredient(line, opts))
		}
		return out
	}

	x.markupIngredients(add)
	for _, rule := range x.profile.ExtraIngredients {
		for _, name := range texts(x.doc.Selection, rule.Selector) {
			add(mise.Ingredient{
				ID:     mise.NewID(),
				Name:   name,
				Amount: rule.Amount,
				Unit:   rule.Unit,
				Notes:  rule.Notes,
			})
		}
	}
	return out
}

func (x *extraction) markupIngredients(add func(mise.Ingredient)) {
	if g := x.profile.IngredientGroups; g != nil {
		found := false
		x.doc.Find(g.Container).Each(func(_ int, c *goquery.Selection) {
			name := text(c, g.Heading)
			c.Find(g.Items).Each(func(_ int, item *goquery.Selection) {
				ing := x.ingredientFrom(item)
				if name != "" {
					ing.AddNote(g.Label + name)
				}
				add(ing)
				found = true
			})
		})
		if found {
			return
		}
	}
	if x.profile.Selectors.Ingredients == "" {
		return
	}
	x.doc.Find(x.profile.Selectors.Ingredients).Each(func(_ int, item *goquery.Selection) {
		add(x.ingredientFrom(item))
	})
}

func (x *extraction) ingredientFrom(item *goquery.Selection) mise.Ingredient {
	var exclude, notes []string
	for _, n := range x.profile.IngredientNotes {
		if v := readInner(item, n.Selector, n.Attr); v != "" {
			notes = append(notes, n.Label+v)
		}
		if n.Selector != "" {
			exclude = append(exclude, n.Selector)
		}
	}

	ing := x.lexicon.ParseIngredient(textWithout(item, exclude), mise.IngredientOptions{Units: x.units})
	if ing.Name == "" {
		return ing
	}
	for _, n := range notes {
		ing.AddNote(n)
	}
	if x.profile.Hooks.Ingredient != nil {
		x.profile.Hooks.Ingredient(item, &ing)
	}
	return ing
}

func (x *extraction) steps() []mise.Step {
	label := ""
	if g := x.profile.InstructionGroups; g != nil {
		label = g.Label
	}

	var steps []mise.Step
	if len(x.sd.Instructions) > 0 {
		steps = mise.AssembleGroupedSteps(x.sd.Instructions, label)
	} else {
		steps = x.markupSteps()
	}
	if steps == nil {
		steps = []mise.Step{}
	}
	return mise.AttachNotes(steps, x.notes())
}

func (x *extraction) markupSteps() []mise.Step {
	var steps []mise.Step
	add := func(item *goquery.Selection, group string) {
		if step, ok := x.stepFrom(item, group); ok {
			step.Order = len(steps) + 1
			steps = append(steps, step)
		}
	}

	if g := x.profile.InstructionGroups; g != nil {
		x.doc.Find(g.Container).Each(func(_ int, c *goquery.Selection) {
			name := text(c, g.Heading)
			if name != "" {
				name = g.Label + name
			}
			c.Find(g.Items).Each(func(_ int, item *goquery.Selection) {
				add(item, name)
			})
		})
		if len(steps) > 0 {
			return steps
		}
	}
	if x.profile.Selectors.Instructions == "" {
		return steps
	}
	x.doc.Find(x.profile.Selectors.Instructions).Each(func(_ int, item *goquery.Selection) {
		add(item, "")
	})
	return steps
}

func (x *extraction) stepFrom(item *goquery.Selection, group string) (mise.Step, bool) {
	p := x.profile
	var exclude, tips []string
	if group != "" {
		tips = append(tips, group)
	}
	for _, n := range p.StepTips {
		if v := readInner(item, n.Selector, n.Attr); v != "" {
			tips = append(tips, n.Label+v)
		}
		if n.Selector != "" {
			exclude = append(exclude, n.Selector)
		}
	}
	if p.StepImage != "" {
		exclude = append(exclude, p.StepImage)
	}

	desc := textWithout(item, exclude)
	if desc == "" {
		return mise.Step{}, false
	}
	step := mise.Step{ID: mise.NewID(), Description: desc, Tips: tips}
	if p.StepImage != "" {
		step.ImageURL = imageSrc(item.Find(p.StepImage), x.base)
	}
	if p.StepDurationAttr != "" {
		step.Duration = mise.ParseMinutes(item.AttrOr(p.StepDurationAttr, ""))
	}
	return step, true
}

func (x *extraction) notes() []mise.Note {
	var notes []mise.Note
	for _, rule := range x.profile.Notes {
		x.doc.Find(rule.Selector).Each(func(_ int, s *goquery.Selection) {
			var v string
			for _, attr := range rule.Attrs {
				if v = strings.TrimSpace(s.AttrOr(attr, "")); v != "" {
					break
				}
			}
			if v == "" && len(rule.Attrs) == 0 {
				v = mise.NormalizeSpace(s.Text())
			}
			if v == "" {
				return
			}
			notes = append(notes, mise.Note{
				Text:      v,
				Label:     rule.Label,
				Placement: rule.Placement,
				Anchor:    rule.Anchor,
			})
		})
	}
	return notes
}

func (x *extraction) rating() *mise.Rating {
	if x.sd.Rating != nil {
		return x.sd.Rating
	}
	sel := x.profile.Selectors
	if sel.Rating == "" || sel.RatingCount == "" {
		return nil
	}
	ratingEl := x.doc.Find(sel.Rating).First()
	countEl := x.doc.Find(sel.RatingCount).First()
	if ratingEl.Length() == 0 || countEl.Length() == 0 {
		return nil
	}
	raw := ratingEl.Text()
	if x.profile.RatingAttr != "" {
		raw = ratingEl.AttrOr(x.profile.RatingAttr, raw)
	}
	avg := mise.FirstFloat(raw)
	count := mise.FirstInt(countEl.Text())
	if avg == 0 && count == 0 {
		return nil
	}
	return &mise.Rating{Average: avg, Count: count}
}

func (x *extraction) nutrition() *mise.NutritionInfo {
	if x.sd.Nutrition != nil {
		return x.sd.Nutrition
	}
	return parseNutrition(strings.Join(texts(x.doc.Selection, x.profile.Selectors.Nutrition), "; "))
}

func (x *extraction) checkRequired(r *mise.Recipe, structured bool) error {
	req := x.profile.Require
	if req.RecipeSignal && !structured && r.Title == "" && len(r.Ingredients) == 0 && len(r.Steps) == 0 {
		return mise.Errorf(mise.EPARSER, "not a recipe page")
	}
	if req.Title && r.Title == "" {
		return mise.Errorf(mise.EMISSING, "title not found")
	}
	if req.Ingredients && len(r.Ingredients) == 0 {
		return mise.Errorf(mise.EMISSING, "ingredients not found")
	}
	if req.Instructions && len(r.Steps) == 0 {
		return mise.Errorf(mise.EMISSING, "instructions not found")
	}
	return nil
}

// classify fills dietary flags, cuisine, difficulty and tags.
func (x *extraction) classify(r *mise.Recipe) {
	p, lex, root := x.profile, x.lexicon, x.doc.Selection

	var flags mise.DietaryFlags
	for _, d := range x.sd.Diets {
		flags.AddLabel(d)
	}
	for _, t := range texts(root, p.Selectors.Dietary) {
		for _, label := range splitLabels(t) {
			flags.AddLabel(label)
		}
	}
	if p.Hooks.Dietary != nil {
		p.Hooks.Dietary(x.doc, r, &flags)
	}
	r.DietaryInfo = flags.Apply(lex.ClassifyDietary(r))

	var tags mise.TagSet
	for _, t := range texts(root, p.Selectors.Tags) {
		if p.SlugTags {
			t = mise.Slug(t)
		}
		tags.Add(t)
	}
	tags.AddList(x.doc.Find(`meta[name="keywords"]`).First().AttrOr("content", ""))
	tags.Add(x.sd.Keywords...)
	tags.Add(x.sd.Categories...)
	tags.Add(x.sd.Cuisines...)

	r.Cuisine = x.cuisine(r, tags.Tags())
	r.Difficulty = x.difficulty(r)

	for _, c := range r.Cuisine {
		if c != mise.CuisineOther {
			tags.Add(c)
		}
	}
	tags.Add(mise.DietaryTags(r.DietaryInfo)...)
	tags.Add(string(r.Difficulty))

	scan := r.Title + " " + r.Description
	tags.Add(lex.MealTypes.Matches(scan)...)
	tags.Add(lex.CookingMethods.Matches(scan)...)
	tags.Add(p.Categories.Matches(scan)...)
	r.Tags = tags.Tags()
}

func (x *extraction) cuisine(r *mise.Recipe, tags []string) []string {
	var explicit []string
	for _, t := range texts(x.doc.Selection, x.profile.Selectors.Cuisine) {
		for _, c := range splitLabels(t) {
			if c = strings.ToLower(strings.TrimSpace(c)); c != "" {
				explicit = append(explicit, c)
			}
		}
	}
	if len(explicit) > 0 {
		return explicit
	}
	return x.lexicon.ClassifyCuisine(r.Title, r.Description, tags)
}

func (x *extraction) difficulty(r *mise.Recipe) mise.Difficulty {
	if label := text(x.doc.Selection, x.profile.Selectors.Difficulty); label != "" {
		if d, ok := mise.ParseDifficulty(label); ok {
			return d
		}
		for _, word := range strings.Fields(label) {
			if d, ok := mise.ParseDifficulty(strings.Trim(word, ":.,")); ok {
				return d
			}
		}
	}
	return x.lexicon.ClassifyDifficulty(r)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
