package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/diary-logs/pkg/tally"
)

// parseList counts one unit per labelled slot.
func (e *Extractor) parseList(data *goquery.Selection) *tally.Tally {
	counts := tally.New()
	data.Find(e.selectors.ListItem).Each(func(_ int, item *goquery.Selection) {
		counts.Add(strings.TrimSpace(item.Text()), 1)
	})
	return counts
}
