package portfolio

import (
	"sort"

	"github.com/shopspring/decimal"
)

// MissedProfitRecord quantifies the gain foregone by selling a security
// that later traded above the average realized sale price.
type MissedProfitRecord struct {
	Symbol        string
	QuantitySold  Quantity
	AvgSellPrice  Money // unweighted mean of the sale prices
	CurrentPrice  Money // latest known close, regardless of date
	MissedProfit  Money // (current - avg sell) x quantity sold
	MissedPercent Percent
}

// MissedProfit reports, per symbol, the profit foregone by past sales.
// Only symbols whose latest price exceeds their average sale price appear;
// a symbol sold but never priced is skipped with a diagnostic.
// Records are sorted by missed amount, largest first.
func (a *Analyzer) MissedProfit() ([]MissedProfitRecord, DiagnosticList) {
	var diags DiagnosticList
	var records []MissedProfitRecord

	for symbol := range a.Ledger.Symbols() {
		soldQty := Q(0)
		priceSum := decimal.Zero
		sales := 0
		for tx := range a.Ledger.Transactions(BySymbol(symbol), BySide(Sell)) {
			soldQty = soldQty.Add(tx.Quantity)
			priceSum = priceSum.Add(tx.Price)
			sales++
		}
		if sales == 0 || !soldQty.IsPositive() {
			continue
		}

		latest, ok := a.Prices.LatestPrice(symbol)
		if !ok {
			diags.Addf(MissingPrice, "no price for sold security %q, skipped", symbol)
			continue
		}

		avgSell := priceSum.Div(decimal.NewFromInt(int64(sales)))
		missed := latest.Sub(avgSell).Mul(soldQty.Decimal())
		if !missed.IsPositive() {
			continue
		}

		rec := MissedProfitRecord{
			Symbol:       symbol,
			QuantitySold: soldQty,
			AvgSellPrice: M(avgSell, a.Currency),
			CurrentPrice: M(latest, a.Currency),
			MissedProfit: M(missed, a.Currency),
		}
		if avgSell.IsPositive() {
			rec.MissedPercent = Percent(100 * latest.Sub(avgSell).InexactFloat64() / avgSell.InexactFloat64())
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].MissedProfit.GreaterThan(records[j].MissedProfit)
	})
	return records, diags
}
