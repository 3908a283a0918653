package tally

import (
	"reflect"
	"testing"

	"github.com/dtnitsch/diary-logs/models"
)

func TestTally_AddKeepsFirstSeenOrder(t *testing.T) {
	tl := New()
	tl.Add("b", 1)
	tl.Add("a", 1)
	tl.Add("b", 1)

	if got, want := tl.Labels(), []string{"b", "a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Labels() = %v, want %v", got, want)
	}
	if v, _ := tl.Get("b"); v != 2 {
		t.Errorf("Get(b) = %v, want 2", v)
	}
	if tl.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tl.Len())
	}
}

func TestTally_TouchCreatesZero(t *testing.T) {
	tl := New()
	tl.Touch("idle")
	tl.Touch("idle")

	v, ok := tl.Get("idle")
	if !ok || v != 0 {
		t.Errorf("Get(idle) = %v, %v, want 0, true", v, ok)
	}
	if tl.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tl.Len())
	}
}

func TestReduce(t *testing.T) {
	first := New()
	first.Add("code", 1.5)
	second := New()
	second.Add("review", 1)
	second.Add("code", 2)

	final := Reduce([]*Tally{first, nil, second})

	if got, want := final.Labels(), []string{"code", "review"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Labels() = %v, want %v", got, want)
	}
	if v, _ := final.Get("code"); v != 3.5 {
		t.Errorf("Get(code) = %v, want 3.5", v)
	}
}

func TestRecords(t *testing.T) {
	tl := New()
	tl.Add("code", 3.5)
	tl.Add("lunch", 3)
	tl.Touch("idle")

	got := tl.Records(10)
	want := []models.LogRecord{
		{Time: 35, Memo: "code"},
		{Time: 30, Memo: "lunch"},
		{Time: 0, Memo: "idle"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Records() = %v, want %v", got, want)
	}
}

func TestRecords_EmptyIsNotNil(t *testing.T) {
	got := New().Records(10)
	if got == nil {
		t.Fatal("Records() = nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("len(Records()) = %d, want 0", len(got))
	}
}

func TestRecords_CapsHugeTotals(t *testing.T) {
	tl := New()
	tl.Add("wide", 4.6e18)

	got := tl.Records(10)
	if got[0].Time != maxMinutes {
		t.Errorf("Time = %d, want %d", got[0].Time, maxMinutes)
	}
}
