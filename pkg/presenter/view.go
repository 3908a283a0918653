// Package presenter holds the checklist state over a set of diary log
// records and turns it into a rendering and an export text.
package presenter

import (
	"strings"

	"github.com/dtnitsch/diary-logs/models"
)

// NoDataMessage is shown when the page had no diary data.
const NoDataMessage = "No data for this date!"

// Row is one checklist line.
type Row struct {
	Index    int
	Record   models.LogRecord
	Line     string
	Excluded bool
}

// Rendering is a snapshot of the view, produced by Render.
type Rendering struct {
	Empty        bool
	Message      string
	Rows         []Row
	TotalMinutes int
}

// TotalLine returns "Total: <duration>".
func (r Rendering) TotalLine() string {
	return "Total: " + FormatDuration(r.TotalMinutes)
}

// String draws the rendering as plain text.
func (r Rendering) String() string {
	if r.Empty {
		return r.Message + "\n"
	}

	var b strings.Builder
	for _, row := range r.Rows {
		if row.Excluded {
			b.WriteString("[ ] ")
		} else {
			b.WriteString("[x] ")
		}
		b.WriteString(row.Line)
		b.WriteString("\n")
	}
	b.WriteString(r.TotalLine())
	b.WriteString("\n")
	return b.String()
}

// View is the checklist state. Exclusions are tracked by index and are
// kept when SetData replaces the records.
type View struct {
	data         []models.LogRecord
	loaded       bool
	excluded     map[int]struct{}
	totalMinutes int
}

func NewView() *View {
	return &View{excluded: make(map[int]struct{})}
}

// SetData replaces the records. A nil slice puts the view back into the
// empty state. Exclusions are not cleared.
func (v *View) SetData(data []models.LogRecord) {
	v.data = data
	v.loaded = data != nil
}

// Loaded reports whether the view holds data (possibly zero records).
func (v *View) Loaded() bool {
	return v.loaded
}

// Len returns the number of records.
func (v *View) Len() int {
	return len(v.data)
}

// Toggle flips the exclusion of index i. It does not re-render.
func (v *View) Toggle(i int) {
	if _, ok := v.excluded[i]; ok {
		delete(v.excluded, i)
		return
	}
	v.excluded[i] = struct{}{}
}

// IsExcluded reports whether index i is toggled off.
func (v *View) IsExcluded(i int) bool {
	_, ok := v.excluded[i]
	return ok
}

// TotalMinutes returns the total computed by the last Render.
func (v *View) TotalMinutes() int {
	return v.totalMinutes
}

// Render recomputes the total from scratch and returns the rows.
func (v *View) Render() Rendering {
	v.totalMinutes = 0

	if !v.loaded {
		return Rendering{Empty: true, Message: NoDataMessage}
	}

	rows := make([]Row, 0, len(v.data))
	for i, r := range v.data {
		excluded := v.IsExcluded(i)
		if !excluded {
			v.totalMinutes += r.Time
		}
		rows = append(rows, Row{
			Index:    i,
			Record:   r,
			Line:     FormatRecordLine(r),
			Excluded: excluded,
		})
	}

	return Rendering{Rows: rows, TotalMinutes: v.totalMinutes}
}

// ExportText joins the lines of all included records with newlines.
func (v *View) ExportText() string {
	if !v.loaded {
		return ""
	}

	lines := make([]string, 0, len(v.data))
	for i, r := range v.data {
		if v.IsExcluded(i) {
			continue
		}
		lines = append(lines, FormatRecordLine(r))
	}
	return strings.Join(lines, "\n")
}
