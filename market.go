package portfolio

import (
	"iter"
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// PriceBar is one instrument's closing price observation on one date.
// Open/high/low/volume columns of the source files are ignored by the core.
type PriceBar struct {
	Date   Date
	Symbol string
	Close  decimal.Decimal
}

// PriceHistory holds the historical close prices for a set of symbols, as an
// ordered-by-date per-symbol lookup structure. It is immutable after loading.
type PriceHistory struct {
	series map[string]*History[decimal.Decimal]
}

// NewPriceHistory returns a new empty price history.
func NewPriceHistory() *PriceHistory {
	return &PriceHistory{series: make(map[string]*History[decimal.Decimal])}
}

// Add records a price bar. A bar for an already known (symbol, date) pair is
// ignored: duplicates are collapsed keeping the first observation.
func (p *PriceHistory) Add(bar PriceBar) {
	if bar.Symbol == "" || bar.Date.IsZero() {
		return
	}
	h, ok := p.series[bar.Symbol]
	if !ok {
		h = &History[decimal.Decimal]{}
		p.series[bar.Symbol] = h
	}
	h.Append(bar.Date, bar.Close)
}

// Has reports whether any observation exists for the symbol.
func (p *PriceHistory) Has(symbol string) bool {
	_, ok := p.series[symbol]
	return ok
}

// IsEmpty reports whether the history holds no observation at all.
func (p *PriceHistory) IsEmpty() bool { return len(p.series) == 0 }

// Symbols iterates over all symbols in lexical order.
func (p *PriceHistory) Symbols() iter.Seq[string] {
	return func(yield func(string) bool) {
		symbols := slices.Collect(maps.Keys(p.series))
		slices.Sort(symbols)
		for _, s := range symbols {
			if !yield(s) {
				return
			}
		}
	}
}

// PriceAsOf returns the latest close at or before 'on' for the symbol.
// It returns false when the symbol has no observation at or before that date.
func (p *PriceHistory) PriceAsOf(symbol string, on Date) (decimal.Decimal, bool) {
	h, ok := p.series[symbol]
	if !ok {
		return decimal.Zero, false
	}
	return h.ValueAsOf(on)
}

// PriceOn returns the close recorded exactly on the given date.
// It returns false when the symbol has no observation on that date.
func (p *PriceHistory) PriceOn(symbol string, on Date) (decimal.Decimal, bool) {
	h, ok := p.series[symbol]
	if !ok {
		return decimal.Zero, false
	}
	return h.Get(on)
}

// LatestPrice returns the most recent known close for the symbol, regardless
// of any cutoff date.
func (p *PriceHistory) LatestPrice(symbol string) (decimal.Decimal, bool) {
	h, ok := p.series[symbol]
	if !ok {
		return decimal.Zero, false
	}
	if h.Len() == 0 {
		return decimal.Zero, false
	}
	_, v := h.Latest()
	return v, true
}

// LatestDate returns the most recent date present in the whole history, or
// the zero date when the history is empty.
func (p *PriceHistory) LatestDate() Date {
	var max Date
	for _, h := range p.series {
		if day, _ := h.Latest(); day.After(max) {
			max = day
		}
	}
	return max
}

// Dates iterates in chronological order over the distinct dates on which at
// least one symbol has an observation inside the range.
func (p *PriceHistory) Dates(rng Range) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		seen := make(map[Date]struct{})
		var days []Date
		for _, h := range p.series {
			for day := range h.Values() {
				if !rng.Contains(day) {
					continue
				}
				if _, ok := seen[day]; ok {
					continue
				}
				seen[day] = struct{}{}
				days = append(days, day)
			}
		}
		slices.SortFunc(days, Date.Compare)
		for _, day := range days {
			if !yield(day) {
				return
			}
		}
	}
}

// FirstLast returns the first and last close of the symbol inside the range,
// along with the number of observations in the range.
func (p *PriceHistory) FirstLast(symbol string, rng Range) (first, last decimal.Decimal, n int) {
	h, ok := p.series[symbol]
	if !ok {
		return decimal.Zero, decimal.Zero, 0
	}
	for day, v := range h.Values() {
		if !rng.Contains(day) {
			continue
		}
		if n == 0 {
			first = v
		}
		last = v
		n++
	}
	return first, last, n
}
