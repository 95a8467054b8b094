package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	portfolio "github.com/Ghamrifati/Equity-Portfolio-tracker"
	"github.com/Ghamrifati/Equity-Portfolio-tracker/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the global portfolio valuation" }
func (*summaryCmd) Usage() string {
	return `ept summary [-d <date>]

  Displays the portfolio valuation: total value, total investment,
  profit and loss, and transaction statistics.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Valuation date. Defaults to the latest date in the price history.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var on portfolio.Date
	if c.date != "" {
		var err error
		on, err = portfolio.ParseDate(c.date)
		if err != nil {
			return fail(fmt.Errorf("parsing date: %w", err))
		}
	}

	analyzer, cfg, diags, err := loadAnalyzer()
	if err != nil {
		return fail(err)
	}

	metrics, more := analyzer.PortfolioMetrics(on)
	diags.Merge(more)

	printMarkdown(renderer.SummaryMarkdown(metrics, diags, style(cfg)))
	return subcommands.ExitSuccess
}
