package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mise"
)

// GenericName is the name of the fallback profile.
const GenericName = "generic"

// minImageWidth is the width above which an untagged img counts as the
// recipe's image.
const minImageWidth = 300

// NewGenericProfile returns the fallback profile for unrecognized
// publishers. It reads common recipe markup and page metadata. When ex and
// conv are non-nil, it also extracts the page's main content and harvests
// list items from its Markdown rendering.
func NewGenericProfile(ex mise.Extractor, conv mise.Converter) *Profile {
	g := &generic{extractor: ex, converter: conv}
	return &Profile{
		Name: GenericName,
		Selectors: Selectors{
			Ingredients:  `[itemprop="recipeIngredient"], [itemprop="ingredients"], .ingredients li, .ingredient-list li, [class*="ingredients"] li`,
			Instructions: `[itemprop="recipeInstructions"] li, .instructions li, .directions li, .method li, [class*="instructions"] li`,
			PrepTime:     `[itemprop="prepTime"]`,
			CookTime:     `[itemprop="cookTime"]`,
			Servings:     `[itemprop="recipeYield"]`,
			Author:       `[rel="author"], .author`,
			Nutrition:    `.nutrition li, .nutrition p`,
		},
		Hooks: Hooks{
			Finish: g.finish,
		},
	}
}

type generic struct {
	extractor mise.Extractor
	converter mise.Converter
}

func (g *generic) finish(doc *goquery.Document, r *mise.Recipe, lex *mise.Lexicon) {
	r.Title = firstNonEmpty(r.Title,
		metaContent(doc, `meta[property="og:title"]`),
		text(doc.Selection, "title"),
		text(doc.Selection, "h1"),
	)
	r.Description = firstNonEmpty(r.Description,
		metaContent(doc, `meta[property="og:description"]`),
		metaContent(doc, `meta[name="description"]`),
	)
	if r.ImageURL == "" {
		r.ImageURL = firstNonEmpty(
			resolveURL(metaContent(doc, `meta[property="og:image"]`), baseOf(r.URL)),
			largeImage(doc, r.URL),
		)
	}

	if g.extractor == nil {
		return
	}
	raw, err := doc.Html()
	if err != nil {
		return
	}
	res, err := g.extractor.Extract(raw)
	if err != nil || res == nil {
		return
	}
	r.Title = firstNonEmpty(r.Title, res.Title)
	r.Description = firstNonEmpty(r.Description, res.Description)
	r.ImageURL = firstNonEmpty(r.ImageURL, res.ImageURL)
	r.CreatorID = firstNonEmpty(r.CreatorID, res.Author)

	if g.converter == nil || res.ContentHTML == "" || (len(r.Ingredients) > 0 && len(r.Steps) > 0) {
		return
	}
	md, err := g.converter.Convert(res.ContentHTML)
	if err != nil {
		return
	}
	ingredients, steps := harvestLists(md, lex)
	if len(r.Ingredients) == 0 {
		for _, line := range ingredients {
			if ing := lex.ParseIngredient(line, mise.IngredientOptions{}); ing.Name != "" {
				r.Ingredients = append(r.Ingredients, ing)
			}
		}
	}
	if len(r.Steps) == 0 && len(steps) > 0 {
		r.Steps = mise.AssembleSteps(steps)
	}
}

var (
	bulletRe   = regexp.MustCompile(`^\s*[-*+]\s+(.+)$`)
	numberedRe = regexp.MustCompile(`^\s*\d+[.)]\s+(.+)$`)
	quantityRe = regexp.MustCompile(`^(\d|[¼½¾⅓⅔⅛⅜⅝⅞])`)
)

// harvestLists splits a Markdown document into bullet items that look like
// ingredients and numbered items.
func harvestLists(md string, lex *mise.Lexicon) (ingredients, steps []string) {
	for _, line := range strings.Split(md, "\n") {
		if m := numberedRe.FindStringSubmatch(line); m != nil {
			steps = append(steps, stripMarkdown(m[1]))
			continue
		}
		m := bulletRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		item := stripMarkdown(m[1])
		if looksLikeIngredient(item, lex) {
			ingredients = append(ingredients, item)
		}
	}
	return ingredients, steps
}

// looksLikeIngredient reports whether a list item starts with a quantity or
// its second word is a unit.
func looksLikeIngredient(item string, lex *mise.Lexicon) bool {
	if quantityRe.MatchString(item) {
		return true
	}
	fields := strings.Fields(item)
	if len(fields) < 2 {
		return false
	}
	_, ok := lex.Units.Lookup(strings.ToLower(fields[1]))
	return ok
}

var mdLinkRe = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)

func stripMarkdown(s string) string {
	s = mdLinkRe.ReplaceAllString(s, "$1")
	s = strings.NewReplacer("**", "", "__", "", "`", "").Replace(s)
	return mise.NormalizeSpace(s)
}

func metaContent(doc *goquery.Document, selector string) string {
	return strings.TrimSpace(doc.Find(selector).First().AttrOr("content", ""))
}

// largeImage returns the first img declared at least minImageWidth wide,
// else the first img inside the main content.
func largeImage(doc *goquery.Document, sourceURL string) string {
	base := baseOf(sourceURL)
	var found string
	doc.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		w, err := strconv.Atoi(strings.TrimSuffix(img.AttrOr("width", ""), "px"))
		if err != nil || w < minImageWidth {
			return true
		}
		found = imageSrc(img, base)
		return found == ""
	})
	if found != "" {
		return found
	}
	return imageSrc(doc.Find("article img, main img").First(), base)
}
