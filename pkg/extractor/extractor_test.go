package extractor

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/diary-logs/models"
)

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse HTML: %v", err)
	}
	return doc
}

func newTestExtractor() *Extractor {
	return New(models.DefaultConfig(), nil)
}

func listPage(labels ...string) string {
	var b strings.Builder
	b.WriteString(`<html><body><div ng-if="data && data.snapshots"><div ng-switch-when="list">`)
	for _, l := range labels {
		fmt.Fprintf(&b, `<div class="o-snapshot"><div class="o-memo-container"><span> %s </span></div></div>`, l)
	}
	b.WriteString(`</div></div></body></html>`)
	return b.String()
}

func gridHeader(class, label string) string {
	if label == "" {
		return fmt.Sprintf(`<div class="o-header %s"></div>`, class)
	}
	return fmt.Sprintf(`<div class="o-header %s"><div class="o-memo-container"><span>%s</span></div></div>`, class, label)
}

func gridPage(rows ...[]string) string {
	var b strings.Builder
	b.WriteString(`<html><body><div ng-if="data && data.snapshots"><div ng-switch-when="grid">`)
	for _, headers := range rows {
		b.WriteString(`<div headers="minutesData.headers"><div class="o-hour">`)
		for _, h := range headers {
			b.WriteString(h)
		}
		b.WriteString(`</div></div>`)
	}
	b.WriteString(`</div></div></body></html>`)
	return b.String()
}

func TestExtract_NoContainer(t *testing.T) {
	res := newTestExtractor().Extract(mustDoc(t, `<html><body><p>login</p></body></html>`))

	if res.Found {
		t.Error("Found = true, want false")
	}
	if res.Records != nil {
		t.Errorf("Records = %v, want nil", res.Records)
	}
}

func TestExtract_ListCountsOccurrences(t *testing.T) {
	doc := mustDoc(t, listPage("coding", "review", "coding", "coding", "lunch", "review"))
	res := newTestExtractor().Extract(doc)

	if !res.Found {
		t.Fatal("Found = false, want true")
	}
	if res.Variant != models.VariantList {
		t.Errorf("Variant = %v, want list", res.Variant)
	}

	want := []models.LogRecord{
		{Time: 30, Memo: "coding"},
		{Time: 20, Memo: "review"},
		{Time: 10, Memo: "lunch"},
	}
	if !reflect.DeepEqual(res.Records, want) {
		t.Errorf("Records = %v, want %v", res.Records, want)
	}
}

func TestExtract_ListRecordPerDistinctLabel(t *testing.T) {
	labels := []string{"a", "b", "c"}
	var items []string
	counts := map[string]int{}
	for i := 0; i < 20; i++ {
		l := labels[(i*7)%len(labels)]
		items = append(items, l)
		counts[l]++
	}

	res := newTestExtractor().Extract(mustDoc(t, listPage(items...)))

	if len(res.Records) != len(counts) {
		t.Fatalf("len(Records) = %d, want %d", len(res.Records), len(counts))
	}
	for _, r := range res.Records {
		if r.Time != 10*counts[r.Memo] {
			t.Errorf("%s: Time = %d, want %d", r.Memo, r.Time, 10*counts[r.Memo])
		}
	}
}

func TestExtract_ListEmptyContainer(t *testing.T) {
	res := newTestExtractor().Extract(mustDoc(t, listPage()))

	if !res.Found {
		t.Fatal("Found = false, want true")
	}
	if res.Records == nil || len(res.Records) != 0 {
		t.Errorf("Records = %#v, want empty non-nil slice", res.Records)
	}
}

func TestExtract_Grid(t *testing.T) {
	doc := mustDoc(t, gridPage(
		[]string{gridHeader("col-md-7", "coding"), gridHeader("col-md-5", "review")},
		[]string{gridHeader("col-md-12", "coding")},
		[]string{gridHeader("col-md-4", ""), gridHeader("wide", "idle")},
	))
	res := newTestExtractor().Extract(doc)

	if res.Variant != models.VariantGrid {
		t.Errorf("Variant = %v, want grid", res.Variant)
	}

	want := []models.LogRecord{
		{Time: 95, Memo: "coding"}, // (7 + 12) / 2 * 10
		{Time: 25, Memo: "review"},
		{Time: 0, Memo: "idle"},
	}
	if !reflect.DeepEqual(res.Records, want) {
		t.Errorf("Records = %v, want %v", res.Records, want)
	}
}

func TestExtract_UnknownVariant(t *testing.T) {
	tests := []struct {
		name string
		html string
	}{
		{"unrecognized value", `<div ng-if="data && data.snapshots"><div ng-switch-when="table"><div class="o-memo-container"><span>x</span></div></div></div>`},
		{"missing attribute", `<div ng-if="data && data.snapshots"><div><div class="o-memo-container"><span>x</span></div></div></div>`},
		{"no child element", `<div ng-if="data && data.snapshots">loading</div>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newTestExtractor().Extract(mustDoc(t, tt.html))
			if !res.Found {
				t.Fatal("Found = false, want true")
			}
			if res.Variant != models.VariantUnknown {
				t.Errorf("Variant = %v, want unknown", res.Variant)
			}
			if res.Records == nil || len(res.Records) != 0 {
				t.Errorf("Records = %#v, want empty non-nil slice", res.Records)
			}
		})
	}
}

func TestExtract_UsesFirstContainer(t *testing.T) {
	html := `<div ng-if="data && data.snapshots"><div ng-switch-when="list"><div class="o-memo-container"><span>first</span></div></div></div>` +
		`<div ng-if="data && data.snapshots"><div ng-switch-when="list"><div class="o-memo-container"><span>second</span></div></div></div>`

	res := newTestExtractor().Extract(mustDoc(t, html))

	want := []models.LogRecord{{Time: 10, Memo: "first"}}
	if !reflect.DeepEqual(res.Records, want) {
		t.Errorf("Records = %v, want %v", res.Records, want)
	}
}

func TestExtract_CustomScale(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.MinutesPerUnit = 15

	res := New(cfg, nil).Extract(mustDoc(t, listPage("a", "a")))

	if len(res.Records) != 1 || res.Records[0].Time != 30 {
		t.Errorf("Records = %v, want [{30 a}]", res.Records)
	}
}

func TestSettings_ChangeWithConfig(t *testing.T) {
	base := newTestExtractor().Settings()
	if base != newTestExtractor().Settings() {
		t.Error("Settings() differs for equal configs")
	}

	scaled := models.DefaultConfig()
	scaled.MinutesPerUnit = 15
	if New(scaled, nil).Settings() == base {
		t.Error("Settings() unchanged after changing the scale")
	}

	moved := models.DefaultConfig()
	moved.Selectors.Container = "#diary"
	if New(moved, nil).Settings() == base {
		t.Error("Settings() unchanged after changing the container selector")
	}
}

func TestHeaderWeight(t *testing.T) {
	tests := []struct {
		class string
		want  float64
	}{
		{"o-header col-md-7", 3.5},
		{"col-md-2 o-header", 1},
		{"o-header", 0},
		{"o-header col-md-", 0},
		{"o-header col-md-x4", 0},
		{"o-header xcol-md-4", 0},
		{"o-header col-md-3 col-md-8", 1.5},
		{"o-header col-md-99999999999999999999999", 0},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			doc := mustDoc(t, fmt.Sprintf(`<div class="%s"></div>`, tt.class))
			if got := headerWeight(doc.Find("div").First()); got != tt.want {
				t.Errorf("headerWeight(%q) = %v, want %v", tt.class, got, tt.want)
			}
		})
	}
}
