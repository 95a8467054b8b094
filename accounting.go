package portfolio

// Analyzer combines the two immutable input tables with the reporting
// parameters, and serves as the central point of access for every computed
// report: portfolio metrics, missed profit, comparative performance and
// best/worst performers.
//
// All methods are pure functions of (Prices, Ledger, parameters): the
// Analyzer never mutates its tables, so concurrent reads are safe without
// locks.
type Analyzer struct {
	Prices   *PriceHistory
	Ledger   *Ledger
	Currency string // ISO code for monetary values in reports

	// NewCostBasis builds the per-symbol accumulator used by the valuation
	// engine. Nil means ProportionalAverageCost.
	NewCostBasis func() CostBasis
}

// NewAnalyzer creates an analyzer over the given tables.
func NewAnalyzer(prices *PriceHistory, ledger *Ledger, currency string) *Analyzer {
	return &Analyzer{Prices: prices, Ledger: ledger, Currency: currency}
}

// costBasis returns a fresh cost-basis accumulator.
func (a *Analyzer) costBasis() CostBasis {
	if a.NewCostBasis != nil {
		return a.NewCostBasis()
	}
	return NewProportionalAverageCost()
}
