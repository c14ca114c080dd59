package goquery

import (
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/punter"
)

// defaultPosition is the board position reported for every unit; the
// wiki does not expose the field.
const defaultPosition = "Middle Far Right"

// changeDateLayout matches change log headings like "March 1, 2018"
// after ordinal suffixes have been stripped.
const changeDateLayout = "January 2, 2006"

// ordinalSuffix matches the st/nd/rd/th tail of a day number.
var ordinalSuffix = regexp.MustCompile(`(\d)(st|nd|rd|th)\b`)

// Ensure UnitParser implements punter.UnitParser at compile time.
var _ punter.UnitParser = (*UnitParser)(nil)

// UnitParser parses a unit's own wiki page into detail fields.
type UnitParser struct {
	converter punter.Converter
}

// NewUnitParser creates a new UnitParser. The converter, if non-nil,
// renders the ability box HTML as Markdown; otherwise plain text is
// extracted.
func NewUnitParser(converter punter.Converter) *UnitParser {
	return &UnitParser{converter: converter}
}

// ParseUnit extracts the unit's name, abilities, change history and
// links. Returns EINVALID if the page has no unit title.
func (p *UnitParser) ParseUnit(html string) (*punter.UnitDetail, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, punter.Errorf(punter.EINVALID, "failed to parse HTML: %v", err)
	}

	title := doc.Find("div.title").First()
	if title.Length() == 0 {
		return nil, punter.Errorf(punter.EINVALID, "page has no unit title")
	}

	detail := &punter.UnitDetail{
		Name:          strings.TrimSpace(title.Text()),
		Abilities:     p.parseAbilities(doc),
		ChangeHistory: parseChangeLog(doc),
		Position:      defaultPosition,
	}

	if href, ok := doc.Find("#ca-view a").First().Attr("href"); ok {
		detail.Links.Path = href
	}
	if src, ok := doc.Find(".thumbimage").First().Attr("src"); ok {
		detail.Links.Image = src
	}
	if src, ok := doc.Find("p > a.image > img").First().Attr("src"); ok {
		detail.Links.Panel = src
	}

	return detail, nil
}

// parseAbilities reads the last div of the unit panel box, which
// holds the ability text with resource icons as links.
func (p *UnitParser) parseAbilities(doc *goquery.Document) string {
	box := doc.Find("div.box").First().Find("div").Last()
	if box.Length() == 0 {
		return ""
	}

	replaceSymbols(box)

	if p.converter != nil {
		if fragment, err := goquery.OuterHtml(box); err == nil {
			if md, err := p.converter.Convert(fragment); err == nil {
				return collapseWhitespace(md)
			}
		}
	}

	return collapseWhitespace(box.Text())
}

// parseChangeLog walks from the #Change_log heading anchor to the
// list that follows it: one top-level item per dated change set.
// Items whose date cannot be parsed are skipped.
func parseChangeLog(doc *goquery.Document) map[string][]string {
	anchor := doc.Find("#Change_log").First()
	if anchor.Length() == 0 {
		return nil
	}
	heading := anchor.Closest("h2")
	if heading.Length() == 0 {
		return nil
	}
	list := heading.NextAllFiltered("ul").First()
	if list.Length() == 0 {
		return nil
	}

	history := make(map[string][]string)
	list.ChildrenFiltered("li").Each(func(_ int, item *goquery.Selection) {
		day, ok := parseChangeDate(item)
		if !ok {
			return
		}
		history[day] = parseChanges(item)
	})

	if len(history) == 0 {
		return nil
	}
	return history
}

// parseChangeDate normalizes the item's leading date text, e.g.
// "March 1st, 2018" becomes "2018-03-01".
func parseChangeDate(item *goquery.Selection) (string, bool) {
	line := item.Clone()
	line.Find("ul").Remove()

	raw := ordinalSuffix.ReplaceAllString(collapseWhitespace(line.Text()), "$1")
	t, err := time.Parse(changeDateLayout, raw)
	if err != nil {
		return "", false
	}
	return t.Format("2006-01-02"), true
}

// parseChanges cleans the nested change notes under a dated item.
func parseChanges(item *goquery.Selection) []string {
	var changes []string
	item.Find("ul").First().Find("li").Each(func(_ int, li *goquery.Selection) {
		replaceSymbols(li)
		if text := collapseWhitespace(li.Text()); text != "" {
			changes = append(changes, text)
		}
	})
	return changes
}
