package portfolio

import (
	"slices"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func bar(symbol, day string, close float64) PriceBar {
	return PriceBar{Date: MustParseDate(day), Symbol: symbol, Close: decimal.NewFromFloat(close)}
}

func TestPriceHistoryAdd(t *testing.T) {
	p := NewPriceHistory()
	p.Add(bar("IAM", "2024-01-10", 100))
	p.Add(bar("IAM", "2024-01-10", 999)) // duplicate, first wins
	p.Add(bar("", "2024-01-11", 50))     // no symbol, ignored
	p.Add(PriceBar{Symbol: "IAM"})       // zero date, ignored

	if !p.Has("IAM") {
		t.Fatal("expected IAM to be present")
	}
	if p.Has("") {
		t.Error("empty symbol should not be recorded")
	}
	got, ok := p.PriceOn("IAM", MustParseDate("2024-01-10"))
	if !ok || !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("PriceOn = %s, %v; want 100, true", got, ok)
	}
}

func TestPriceHistoryAsOf(t *testing.T) {
	p := NewPriceHistory()
	p.Add(bar("IAM", "2024-01-10", 100))
	p.Add(bar("IAM", "2024-01-20", 110))

	if got, ok := p.PriceAsOf("IAM", MustParseDate("2024-01-15")); !ok || !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("PriceAsOf(01-15) = %s, %v", got, ok)
	}
	if _, ok := p.PriceAsOf("IAM", MustParseDate("2024-01-09")); ok {
		t.Error("PriceAsOf before first observation should not be found")
	}
	if _, ok := p.PriceAsOf("BCP", MustParseDate("2024-01-15")); ok {
		t.Error("PriceAsOf of unknown symbol should not be found")
	}
	if _, ok := p.PriceOn("IAM", MustParseDate("2024-01-15")); ok {
		t.Error("PriceOn requires an exact date match")
	}
}

func TestPriceHistoryLatest(t *testing.T) {
	p := NewPriceHistory()
	if !p.LatestDate().IsZero() {
		t.Error("empty history should have a zero latest date")
	}
	p.Add(bar("IAM", "2024-01-10", 100))
	p.Add(bar("BCP", "2024-02-05", 250))

	if got := p.LatestDate(); got != MustParseDate("2024-02-05") {
		t.Errorf("LatestDate() = %v", got)
	}
	if got, ok := p.LatestPrice("IAM"); !ok || !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("LatestPrice(IAM) = %s, %v", got, ok)
	}
}

func TestPriceHistoryDatesAndFirstLast(t *testing.T) {
	p := NewPriceHistory()
	p.Add(bar("IAM", "2024-01-10", 100))
	p.Add(bar("IAM", "2024-01-20", 110))
	p.Add(bar("BCP", "2024-01-20", 200))
	p.Add(bar("BCP", "2024-01-30", 220))

	rng := Range{From: MustParseDate("2024-01-15"), To: MustParseDate("2024-01-31")}
	var days []Date
	for day := range p.Dates(rng) {
		days = append(days, day)
	}
	want := []Date{MustParseDate("2024-01-20"), MustParseDate("2024-01-30")}
	if !slices.Equal(days, want) {
		t.Errorf("Dates() = %v, want %v", days, want)
	}

	first, last, n := p.FirstLast("BCP", rng)
	if n != 2 || !first.Equal(decimal.NewFromInt(200)) || !last.Equal(decimal.NewFromInt(220)) {
		t.Errorf("FirstLast(BCP) = %s, %s, %d", first, last, n)
	}
	if _, _, n := p.FirstLast("IAM", Range{From: NewDate(2025, time.January, 1), To: NewDate(2025, time.December, 31)}); n != 0 {
		t.Errorf("FirstLast outside the range should count 0, got %d", n)
	}
}

func TestPriceHistorySymbols(t *testing.T) {
	p := NewPriceHistory()
	p.Add(bar("IAM", "2024-01-10", 100))
	p.Add(bar("BCP", "2024-01-10", 200))

	var symbols []string
	for s := range p.Symbols() {
		symbols = append(symbols, s)
	}
	if !slices.Equal(symbols, []string{"BCP", "IAM"}) {
		t.Errorf("Symbols() = %v, want sorted [BCP IAM]", symbols)
	}
}
