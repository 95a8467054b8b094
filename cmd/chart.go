package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	portfolio "github.com/Ghamrifati/Equity-Portfolio-tracker"
	"github.com/Ghamrifati/Equity-Portfolio-tracker/renderer"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	period    string
	benchmark string
	output    string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render the comparative performance as a PNG chart" }
func (*chartCmd) Usage() string {
	return `ept chart [-p <period>] [-b <benchmark>] [-o <file>]

  Renders the portfolio-vs-benchmark return series as a PNG line chart.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "Period: 1Y, 6M, MTD, YTD or 'Last 60 Days'. Defaults to the configured period.")
	f.StringVar(&c.benchmark, "b", "", "Benchmark symbol. Defaults to the configured benchmark.")
	f.StringVar(&c.output, "o", "performance.png", "Output PNG file.")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	analyzer, cfg, _, err := loadAnalyzer()
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

	points, _ := analyzer.ComparativePerformance(benchmark, p)
	png, err := renderer.ComparativeChart(points, benchmark)
	if err != nil {
		return fail(err)
	}

	if err := os.WriteFile(c.output, png, 0644); err != nil {
		return fail(fmt.Errorf("writing chart to %q: %w", c.output, err))
	}
	fmt.Printf("Chart written to %s\n", c.output)
	return subcommands.ExitSuccess
}
