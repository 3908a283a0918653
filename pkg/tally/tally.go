// Package tally accumulates numeric values per label while remembering
// the order labels were first seen.
package tally

import (
	"math"

	"github.com/dtnitsch/diary-logs/models"
)

// Tally maps a label to an accumulated value. The zero value is not usable; use New.
type Tally struct {
	order  []string
	values map[string]float64
}

func New() *Tally {
	return &Tally{values: make(map[string]float64)}
}

// Touch creates label with 0 if it is not present yet.
func (t *Tally) Touch(label string) {
	if _, ok := t.values[label]; ok {
		return
	}
	t.order = append(t.order, label)
	t.values[label] = 0
}

// Add adds n to label, creating it first if needed.
func (t *Tally) Add(label string, n float64) {
	t.Touch(label)
	t.values[label] += n
}

// Get returns the value for label and whether it exists.
func (t *Tally) Get(label string) (float64, bool) {
	v, ok := t.values[label]
	return v, ok
}

// Len returns the number of distinct labels.
func (t *Tally) Len() int {
	return len(t.order)
}

// Labels returns labels in first-seen order.
func (t *Tally) Labels() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Reduce merges partial tallies into one. Label order follows the first
// partial that mentions each label.
func Reduce(partials []*Tally) *Tally {
	final := New()
	for _, p := range partials {
		if p == nil {
			continue
		}
		for _, label := range p.order {
			final.Add(label, p.values[label])
		}
	}
	return final
}

const maxMinutes = math.MaxInt32

// Records converts the tally into log records, scaling every value by
// minutesPerUnit. The result is never nil.
func (t *Tally) Records(minutesPerUnit float64) []models.LogRecord {
	records := make([]models.LogRecord, 0, len(t.order))
	for _, label := range t.order {
		records = append(records, models.LogRecord{
			Time: toMinutes(t.values[label] * minutesPerUnit),
			Memo: label,
		})
	}
	return records
}

// toMinutes rounds v to whole minutes, capped at maxMinutes.
func toMinutes(v float64) int {
	if v >= maxMinutes {
		return maxMinutes
	}
	return int(math.Round(v))
}
