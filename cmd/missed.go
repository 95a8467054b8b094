package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/Ghamrifati/Equity-Portfolio-tracker/renderer"
)

type missedCmd struct{}

func (*missedCmd) Name() string     { return "missed" }
func (*missedCmd) Synopsis() string { return "display the profit foregone by past sales" }
func (*missedCmd) Usage() string {
	return `ept missed

  For each sold security whose latest price exceeds the average sale price,
  displays the profit that holding instead of selling would have yielded.
`
}

func (c *missedCmd) SetFlags(f *flag.FlagSet) {}

func (c *missedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	analyzer, cfg, diags, err := loadAnalyzer()
	if err != nil {
		return fail(err)
	}

	records, more := analyzer.MissedProfit()
	diags.Merge(more)

	printMarkdown(renderer.MissedProfitMarkdown(records, diags, style(cfg)))
	return subcommands.ExitSuccess
}
