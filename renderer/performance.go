package renderer

import (
	"bytes"
	"fmt"

	portfolio "github.com/Ghamrifati/Equity-Portfolio-tracker"
	md "github.com/nao1215/markdown"
)

// ComparativeMarkdown renders the portfolio-vs-benchmark return series.
func ComparativeMarkdown(points []portfolio.ComparativePerformancePoint, benchmark string, period portfolio.Period, diags portfolio.DiagnosticList, style Style) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Performance vs %s (%s)", benchmark, period))

	if len(points) == 0 {
		doc.PlainText("No comparable data for this period.")
		Diagnostics(doc, diags)
		return doc.String()
	}

	first, last := points[0], points[len(points)-1]
	doc.PlainText(fmt.Sprintf("%d trading days from %s to %s. Portfolio %s, benchmark %s.",
		len(points), first.Date, last.Date,
		style.Percent.Format(last.PortfolioReturn),
		style.Percent.Format(last.BenchmarkReturn)))

	table := md.TableSet{
		Header: []string{"Date", "Portfolio", benchmark},
	}
	for _, p := range points {
		table.Rows = append(table.Rows, []string{
			p.Date.String(),
			style.percent(p.PortfolioReturn),
			style.percent(p.BenchmarkReturn),
		})
	}
	doc.Table(table)

	Diagnostics(doc, diags)
	return doc.String()
}

// PerformersMarkdown renders the best/worst performer card together with the
// benchmark return over the same period.
func PerformersMarkdown(best, worst portfolio.PerformerStat, index portfolio.Percent, benchmark string, period portfolio.Period, diags portfolio.DiagnosticList, style Style) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Performers (%s)", period))

	table := md.TableSet{
		Header: []string{"", "Symbol", "Return"},
		Rows: [][]string{
			{"Best", best.Symbol, style.percent(best.Return)},
			{"Worst", worst.Symbol, style.percent(worst.Return)},
			{"Benchmark", benchmark, style.percent(index)},
		},
	}
	doc.Table(table)

	Diagnostics(doc, diags)
	return doc.String()
}
