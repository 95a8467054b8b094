package portfolio

import "github.com/shopspring/decimal"

// Position is the derived per-symbol aggregate as of a cutoff date.
// Positions are computed fresh on every request, never persisted.
type Position struct {
	Symbol            string
	Quantity          Quantity
	CostBasis         Money // cost of the currently held units
	AvgCost           Money
	CurrentPrice      Money // latest close at or before the cutoff, zero when unknown
	CurrentValue      Money
	ProfitLoss        Money
	ProfitLossPercent Percent
}

// PortfolioMetrics is the valuation of the whole portfolio as of a date.
type PortfolioMetrics struct {
	AsOf                   Date
	TotalValue             Money
	TotalInvestment        Money
	TotalProfitLoss        Money
	TotalProfitLossPercent Percent
	TransactionCount       int
	AvgTransactionAmount   Money
	Positions              []Position // sorted by symbol, quantity > 0 only
}

// PortfolioMetrics values the portfolio as of the given date. A zero asOf
// defaults to the latest date present in the price history.
//
// The computation never fails: a symbol without a price observation is
// valued at zero, an empty ledger or price history yields zero totals, and
// each degradation is reported in the DiagnosticList.
func (a *Analyzer) PortfolioMetrics(asOf Date) (*PortfolioMetrics, DiagnosticList) {
	var diags DiagnosticList

	metrics := &PortfolioMetrics{
		AsOf:                 asOf,
		TotalValue:           M(0, a.Currency),
		TotalInvestment:      M(0, a.Currency),
		TotalProfitLoss:      M(0, a.Currency),
		AvgTransactionAmount: M(0, a.Currency),
		TransactionCount:     a.Ledger.Len(),
	}

	if asOf.IsZero() {
		asOf = a.Prices.LatestDate()
		metrics.AsOf = asOf
	}
	if asOf.IsZero() || a.Ledger.IsEmpty() {
		// No datable prices or nothing in the ledger: all totals stay zero.
		return metrics, diags
	}

	totalInvested := decimal.Zero // basis of reported positions, for the average

	for symbol := range a.Ledger.Symbols() {
		cb := a.costBasis()
		for tx := range a.Ledger.Transactions(UpTo(asOf), BySymbol(symbol)) {
			switch tx.Side {
			case Sell:
				cb.Sell(tx.Quantity)
			default:
				// Buy, and Unclassified treated as buy.
				cb.Buy(tx.Quantity, tx.Amount())
			}
		}

		qty := cb.Quantity()
		if !qty.IsPositive() {
			// Fully sold (or oversold) positions are not reported.
			continue
		}

		basis := cb.Basis()
		price, ok := a.Prices.PriceAsOf(symbol, asOf)
		if !ok {
			diags.Addf(MissingPrice, "no price for %q as of %s, valued at 0", symbol, asOf)
			price = decimal.Zero
		}

		pos := Position{
			Symbol:       symbol,
			Quantity:     qty,
			CostBasis:    M(basis, a.Currency),
			AvgCost:      M(basis, a.Currency).Div(qty),
			CurrentPrice: M(price, a.Currency),
			CurrentValue: M(price.Mul(qty.Decimal()), a.Currency),
		}
		pos.ProfitLoss = pos.CurrentValue.Sub(pos.CostBasis)
		if basis.IsPositive() {
			pos.ProfitLossPercent = Percent(100 * pos.ProfitLoss.AsFloat() / basis.InexactFloat64())
		}

		metrics.Positions = append(metrics.Positions, pos)
		metrics.TotalValue = metrics.TotalValue.Add(pos.CurrentValue)
		metrics.TotalInvestment = metrics.TotalInvestment.Add(pos.CostBasis)
		metrics.TotalProfitLoss = metrics.TotalProfitLoss.Add(pos.ProfitLoss)
		totalInvested = totalInvested.Add(basis)
	}

	if totalInvested.IsPositive() {
		metrics.TotalProfitLossPercent = Percent(100 * metrics.TotalProfitLoss.AsFloat() / totalInvested.InexactFloat64())
	}
	if metrics.TransactionCount > 0 {
		metrics.AvgTransactionAmount = M(totalInvested.Div(decimal.NewFromInt(int64(metrics.TransactionCount))), a.Currency)
	}
	return metrics, diags
}
