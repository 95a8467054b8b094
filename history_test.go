package portfolio

import (
	"testing"
	"time"
)

func TestHistoryAppendKeepsFirst(t *testing.T) {
	h := &History[float64]{}
	day := NewDate(2024, time.May, 2)
	h.Append(day, 10)
	h.Append(day, 20) // duplicate date, ignored

	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}
	if v, ok := h.Get(day); !ok || v != 10 {
		t.Errorf("Get() = %v, %v; want 10, true", v, ok)
	}
}

func TestHistorySortsOnAppend(t *testing.T) {
	h := &History[int]{}
	h.Append(NewDate(2024, time.March, 3), 3)
	h.Append(NewDate(2024, time.March, 1), 1)
	h.Append(NewDate(2024, time.March, 2), 2)

	want := 1
	for _, v := range h.Values() {
		if v != want {
			t.Fatalf("values out of order: got %d, want %d", v, want)
		}
		want++
	}

	day, v := h.Latest()
	if day != NewDate(2024, time.March, 3) || v != 3 {
		t.Errorf("Latest() = %v, %d", day, v)
	}
}

func TestHistoryValueAsOf(t *testing.T) {
	h := &History[string]{}
	h.Append(NewDate(2024, time.January, 10), "a")
	h.Append(NewDate(2024, time.January, 20), "b")

	tests := []struct {
		day   Date
		want  string
		found bool
	}{
		{NewDate(2024, time.January, 9), "", false},
		{NewDate(2024, time.January, 10), "a", true},
		{NewDate(2024, time.January, 15), "a", true},
		{NewDate(2024, time.January, 20), "b", true},
		{NewDate(2024, time.February, 1), "b", true},
	}
	for _, tt := range tests {
		got, found := h.ValueAsOf(tt.day)
		if got != tt.want || found != tt.found {
			t.Errorf("ValueAsOf(%v) = %q, %v; want %q, %v", tt.day, got, found, tt.want, tt.found)
		}
	}
}
