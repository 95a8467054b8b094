package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	portfolio "github.com/Ghamrifati/Equity-Portfolio-tracker"
	"github.com/Ghamrifati/Equity-Portfolio-tracker/renderer"
)

// performersCmd holds the flags for the 'performers' subcommand.
type performersCmd struct {
	period    string
	benchmark string
}

func (*performersCmd) Name() string     { return "performers" }
func (*performersCmd) Synopsis() string { return "display the best and worst performing holdings" }
func (*performersCmd) Usage() string {
	return `ept performers [-p <period>] [-b <benchmark>]

  Displays the holdings with the highest and lowest price return over the
  period, next to the benchmark index return.
`
}

func (c *performersCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "Period: 1Y, 6M, MTD, YTD or 'Last 60 Days'. Defaults to the configured period.")
	f.StringVar(&c.benchmark, "b", "", "Benchmark symbol. Defaults to the configured benchmark.")
}

func (c *performersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	best, worst, more := analyzer.BestWorstPerformers(p)
	diags.Merge(more)
	index := analyzer.IndexPerformance(benchmark, p)

	printMarkdown(renderer.PerformersMarkdown(best, worst, index, benchmark, p, diags, style(cfg)))
	return subcommands.ExitSuccess
}
