package renderer

import (
	"bytes"
	"fmt"

	portfolio "github.com/Ghamrifati/Equity-Portfolio-tracker"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the global valuation card.
func SummaryMarkdown(m *portfolio.PortfolioMetrics, diags portfolio.DiagnosticList, style Style) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if m.AsOf.IsZero() {
		doc.H1("Portfolio Summary")
	} else {
		doc.H1(fmt.Sprintf("Portfolio Summary on %s", m.AsOf))
	}

	table := md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Value", style.money(m.TotalValue)},
			{"Total Investment", style.money(m.TotalInvestment)},
			{"Profit / Loss", style.money(m.TotalProfitLoss)},
			{"Profit / Loss %", style.percent(m.TotalProfitLossPercent)},
			{"Transactions", fmt.Sprintf("%d", m.TransactionCount)},
			{"Avg Transaction", style.money(m.AvgTransactionAmount)},
		},
	}
	doc.Table(table)

	Diagnostics(doc, diags)
	return doc.String()
}
