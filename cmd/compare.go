package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	portfolio "github.com/Ghamrifati/Equity-Portfolio-tracker"
	"github.com/Ghamrifati/Equity-Portfolio-tracker/renderer"
)

// compareCmd holds the flags for the 'compare' subcommand.
type compareCmd struct {
	period    string
	benchmark string
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare the portfolio return to the benchmark" }
func (*compareCmd) Usage() string {
	return `ept compare [-p <period>] [-b <benchmark>]

  Builds the day-by-day return series of the portfolio and of the benchmark
  index over the period, both rebased to 0% on the first common date.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "Period: 1Y, 6M, MTD, YTD or 'Last 60 Days'. Defaults to the configured period.")
	f.StringVar(&c.benchmark, "b", "", "Benchmark symbol. Defaults to the configured benchmark.")
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	analyzer, cfg, diags, err := loadAnalyzer()
	if err != nil {
		return fail(err)
	}

	period := c.period
	if period == "" {
		period = cfg.Period
	}
	benchmark := c.benchmark
	if benchmark == "" {
		benchmark = cfg.Benchmark
	}
	p := portfolio.PeriodOf(period)

	points, more := analyzer.ComparativePerformance(benchmark, p)
	diags.Merge(more)

	printMarkdown(renderer.ComparativeMarkdown(points, benchmark, p, diags, style(cfg)))
	return subcommands.ExitSuccess
}
