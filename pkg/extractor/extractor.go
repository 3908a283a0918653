// Package extractor reads diary log records out of a rendered diary page.
package extractor

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/diary-logs/models"
	"github.com/dtnitsch/diary-logs/pkg/tally"
)

// Result is the outcome of one extraction.
// Found is false when the page has no snapshot container; Records is nil then.
// A found container always yields a non-nil, possibly empty, Records slice.
type Result struct {
	Records []models.LogRecord
	Found   bool
	Variant models.Variant
}

type Extractor struct {
	selectors      models.Selectors
	minutesPerUnit float64
	logger         *slog.Logger
}

// New creates an Extractor from the selectors and scale in cfg.
// A nil logger discards output.
func New(cfg models.Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if cfg.MinutesPerUnit <= 0 {
		cfg.MinutesPerUnit = models.DefaultConfig().MinutesPerUnit
	}
	return &Extractor{
		selectors:      cfg.Selectors,
		minutesPerUnit: cfg.MinutesPerUnit,
		logger:         logger,
	}
}

// Settings describes everything besides the page that shapes the result.
// Two extractions of the same page agree iff their settings agree.
func (e *Extractor) Settings() string {
	s := e.selectors
	return fmt.Sprintf("%s|%s|%s|%s|%s|%s|%g",
		s.Container, s.Discriminator, s.ListItem, s.GridRow, s.GridHeader, s.GridLabel, e.minutesPerUnit)
}

// Extract locates the snapshot container, resolves its layout variant and
// aggregates the labelled slots into records.
func (e *Extractor) Extract(doc *goquery.Document) Result {
	container := doc.Find(e.selectors.Container).First()
	if container.Length() == 0 {
		e.logger.Info("Container wasn't found", "selector", e.selectors.Container)
		return Result{}
	}

	data := container.Children().First()
	variant := e.resolveVariant(data)

	var counts *tally.Tally
	switch variant {
	case models.VariantList:
		counts = e.parseList(data)
	case models.VariantGrid:
		counts = e.parseGrid(data)
	default:
		counts = tally.New()
	}

	records := counts.Records(e.minutesPerUnit)
	e.logger.Debug("Extracted diary logs", "variant", variant.String(), "record_count", len(records))

	return Result{
		Records: records,
		Found:   true,
		Variant: variant,
	}
}

// resolveVariant reads the discriminator off the container's first child.
func (e *Extractor) resolveVariant(data *goquery.Selection) models.Variant {
	if data.Length() == 0 {
		return models.VariantUnknown
	}
	value, ok := data.Attr(e.selectors.Discriminator)
	if !ok {
		return models.VariantUnknown
	}
	return models.ParseVariant(value)
}
