package util

import (
	"testing"
	"time"
)

func TestDay(t *testing.T) {
	in := time.Date(2025, 3, 14, 15, 9, 26, 535, time.UTC)
	got := Day(in)
	want := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("unexpected day %v", got)
	}
}

func TestWindowEndsAtBase(t *testing.T) {
	base := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	w := Window(base, 100)
	if len(w) != 100 {
		t.Fatalf("expected 100 days, got %d", len(w))
	}
	if !w[99].Equal(Day(base)) {
		t.Fatalf("last day should be base, got %v", w[99])
	}
	if !w[0].Equal(Day(base).AddDate(0, 0, -99)) {
		t.Fatalf("first day should be 99 days back, got %v", w[0])
	}
}

func TestWindowContiguousAscending(t *testing.T) {
	w := Window(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 40)
	for i := 1; i < len(w); i++ {
		if w[i].Sub(w[i-1]) != 24*time.Hour {
			t.Fatalf("gap between %v and %v", w[i-1], w[i])
		}
	}
}

func TestWindowEmpty(t *testing.T) {
	if w := Window(time.Now(), 0); w != nil {
		t.Fatalf("expected nil window, got %v", w)
	}
}

func TestParseIntDefault(t *testing.T) {
	if got := ParseIntDefault("", 7); got != 7 {
		t.Fatalf("expected default, got %d", got)
	}
	if got := ParseIntDefault("42", 7); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
	if got := ParseIntDefault("nope", 7); got != 7 {
		t.Fatalf("expected default on invalid, got %d", got)
	}
}
