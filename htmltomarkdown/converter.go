// Package htmltomarkdown converts extracted page content to Markdown so
// the generic profile can harvest ingredient and instruction lists.
package htmltomarkdown

import (
	"html"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mise"
)

var _ mise.Converter = (*Converter)(nil)

// recipeCardChrome matches recipe-card widgets that carry no recipe text:
// shopping-list checkboxes, print and pin buttons, jump links.
const recipeCardChrome = `script, style, noscript, svg, button, input, form, ` +
	`.wprm-recipe-print, .wprm-recipe-pin, .tasty-recipes-print-button, ` +
	`[class*="jump-to-recipe"], [class*="recipe-rating-form"]`

// Converter renders recipe content as Markdown. Two-column tables, which
// publishers use for "amount | ingredient" and "nutrient | value" grids,
// become bullet lists so each row reads as one line.
type Converter struct {
	conv *converter.Converter
}

// NewConverter returns a Converter with the CommonMark and table plugins.
func NewConverter() *Converter {
	return &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// Convert cleans recipe-card markup and renders it as Markdown.
func (c *Converter) Convert(content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", mise.Errorf(mise.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", mise.Errorf(mise.EINVALID, "read content HTML: %v", err)
	}
	doc.Find(recipeCardChrome).Remove()
	doc.Find("table").Each(func(_ int, t *goquery.Selection) {
		if items, ok := pairRows(t); ok {
			t.ReplaceWithHtml("<ul>" + strings.Join(items, "") + "</ul>")
		}
	})

	body, err := doc.Find("body").Html()
	if err != nil {
		return "", err
	}
	return c.conv.ConvertString(body)
}

// pairRows returns one list item per body row when every row of t has
// exactly two data cells. Header rows are skipped.
func pairRows(t *goquery.Selection) ([]string, bool) {
	var items []string
	ok := true
	t.Find("tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		cells := tr.ChildrenFiltered("td")
		if cells.Length() == 0 && tr.ChildrenFiltered("th").Length() > 0 {
			return true
		}
		if cells.Length() != 2 {
			ok = false
			return false
		}
		left := mise.NormalizeSpace(cells.Eq(0).Text())
		right := mise.NormalizeSpace(cells.Eq(1).Text())
		items = append(items, "<li>"+html.EscapeString(strings.TrimSpace(left+" "+right))+"</li>")
		return true
	})
	return items, ok && len(items) > 0
}
