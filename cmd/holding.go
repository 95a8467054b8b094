package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	portfolio "github.com/Ghamrifati/Equity-Portfolio-tracker"
	"github.com/Ghamrifati/Equity-Portfolio-tracker/renderer"
)

// holdingCmd holds the flags for the 'holding' subcommand.
type holdingCmd struct {
	date string
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display the detail of every open position" }
func (*holdingCmd) Usage() string {
	return `ept holding [-d <date>]

  Displays each open position: quantity held, average cost, current price,
  market value and profit or loss.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Valuation date. Defaults to the latest date in the price history.")
}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.HoldingMarkdown(metrics, diags, style(cfg)))
	return subcommands.ExitSuccess
}
