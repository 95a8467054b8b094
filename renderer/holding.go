package renderer

import (
	"bytes"
	"fmt"

	portfolio "github.com/Ghamrifati/Equity-Portfolio-tracker"
	md "github.com/nao1215/markdown"
)

// HoldingMarkdown renders the per-position detail table.
func HoldingMarkdown(m *portfolio.PortfolioMetrics, diags portfolio.DiagnosticList, style Style) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if m.AsOf.IsZero() {
		doc.H1("Holdings")
	} else {
		doc.H1(fmt.Sprintf("Holdings on %s", m.AsOf))
	}

	if len(m.Positions) == 0 {
		doc.PlainText("No open position.")
		Diagnostics(doc, diags)
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Symbol", "Quantity", "Avg Cost", "Price", "Value", "P/L", "P/L %"},
	}
	for _, p := range m.Positions {
		table.Rows = append(table.Rows, []string{
			p.Symbol,
			p.Quantity.String(),
			style.money(p.AvgCost),
			style.money(p.CurrentPrice),
			style.money(p.CurrentValue),
			style.money(p.ProfitLoss),
			style.percent(p.ProfitLossPercent),
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("Total: %s (%s invested)",
		style.money(m.TotalValue), style.money(m.TotalInvestment)))

	Diagnostics(doc, diags)
	return doc.String()
}
