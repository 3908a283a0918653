package extractor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/diary-logs/pkg/tally"
)

var columnWidthClass = regexp.MustCompile(`^col-md-(\d+)$`)

// parseGrid sums header widths per label. Each row is tallied on its own
// and the partials are reduced at the end.
func (e *Extractor) parseGrid(data *goquery.Selection) *tally.Tally {
	var partials []*tally.Tally

	data.Find(e.selectors.GridRow).Each(func(_ int, row *goquery.Selection) {
		partial := tally.New()
		row.Children().Each(func(_ int, cell *goquery.Selection) {
			cell.Find(e.selectors.GridHeader).Each(func(_ int, header *goquery.Selection) {
				label := header.Find(e.selectors.GridLabel).First()
				if label.Length() == 0 {
					return
				}
				partial.Add(strings.TrimSpace(label.Text()), headerWeight(header))
			})
		})
		partials = append(partials, partial)
	})

	return tally.Reduce(partials)
}

// headerWeight returns N/2 for the first col-md-N class on the header, or 0.
func headerWeight(header *goquery.Selection) float64 {
	class, _ := header.Attr("class")
	for _, name := range strings.Fields(class) {
		match := columnWidthClass.FindStringSubmatch(name)
		if match == nil {
			continue
		}
		n, err := strconv.Atoi(match[1])
		if err != nil {
			return 0 // out of range
		}
		return float64(n) / 2
	}
	return 0
}
