package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// titleSymbols maps wiki icon link titles to their text abbreviations.
var titleSymbols = map[string]string{
	"Gold":           "",
	"Energy":         "E",
	"Green resource": "G",
	"Blue resource":  "B",
	"Red resource":   "R",
	"Attack":         "X",
	"Ability":        "Click",
}

// replaceSymbols swaps icon links inside sel for their text
// abbreviations so the surrounding text reads naturally.
// Links with unmapped titles keep their title text.
func replaceSymbols(sel *goquery.Selection) {
	sel.Find("a").Each(func(_ int, a *goquery.Selection) {
		title, ok := a.Attr("title")
		if !ok || title == "" {
			title = a.Text()
		}
		symbol, ok := titleSymbols[title]
		if !ok {
			symbol = title
		}
		a.ReplaceWithHtml(symbol)
	})
}

// collapseWhitespace reduces runs of whitespace to single spaces and
// trims the ends.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
