package renderer

import (
	"bytes"

	portfolio "github.com/Ghamrifati/Equity-Portfolio-tracker"
	md "github.com/nao1215/markdown"
)

// MissedProfitMarkdown renders the profit-foregone-by-selling table.
func MissedProfitMarkdown(records []portfolio.MissedProfitRecord, diags portfolio.DiagnosticList, style Style) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Missed Profit")

	if len(records) == 0 {
		doc.PlainText("No sale is currently below the latest market price.")
		Diagnostics(doc, diags)
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Symbol", "Qty Sold", "Avg Sell Price", "Current Price", "Missed", "Missed %"},
	}
	for _, r := range records {
		table.Rows = append(table.Rows, []string{
			r.Symbol,
			r.QuantitySold.String(),
			style.money(r.AvgSellPrice),
			style.money(r.CurrentPrice),
			style.money(r.MissedProfit),
			style.percent(r.MissedPercent),
		})
	}
	doc.Table(table)

	Diagnostics(doc, diags)
	return doc.String()
}
