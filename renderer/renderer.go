// Package renderer turns the analysis structs of the portfolio package into
// markdown documents. It holds no computation: every number it prints was
// produced by the analyzer, it only decides layout and formatting.
package renderer

import (
	portfolio "github.com/Ghamrifati/Equity-Portfolio-tracker"
	md "github.com/nao1215/markdown"
)

// Style bundles the display conventions shared by all reports.
type Style struct {
	Currency *portfolio.CurrencyFormatter
	Percent  portfolio.PercentFormatter
}

// NewStyle builds a Style for the given display symbol, e.g. "MAD".
func NewStyle(symbol string) Style {
	return Style{
		Currency: portfolio.NewCurrencyFormatter(symbol),
		Percent:  portfolio.PercentFormatter{},
	}
}

func (s Style) money(m portfolio.Money) string     { return s.Currency.Format(m) }
func (s Style) percent(p portfolio.Percent) string { return s.Percent.Format(p) }

// Diagnostics appends a "Notes" section listing every degradation that
// occurred while producing the report. An empty list renders nothing.
func Diagnostics(doc *md.Markdown, diags portfolio.DiagnosticList) {
	if len(diags) == 0 {
		return
	}
	doc.H2("Notes")
	items := make([]string, 0, len(diags))
	for _, d := range diags {
		items = append(items, d.String())
	}
	doc.BulletList(items...)
}
