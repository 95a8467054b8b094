// Package cmd implements the CLI application to analyze an equity portfolio.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	portfolio "github.com/Ghamrifati/Equity-Portfolio-tracker"
	"github.com/Ghamrifati/Equity-Portfolio-tracker/renderer"
)

// Commands lists every subcommand of the application.
// A main package ranges over it and registers each one.
var Commands = []subcommands.Command{
	&summaryCmd{},
	&holdingCmd{},
	&missedCmd{},
	&compareCmd{},
	&performersCmd{},
	&chartCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "config.toml", "Path to the TOML configuration file")

// loadAnalyzer loads the configuration and the data files, and returns an
// analyzer over them. Loading diagnostics are returned so commands can append
// them to their report; only the configuration itself can fail hard.
func loadAnalyzer() (*portfolio.Analyzer, *portfolio.Config, portfolio.DiagnosticList, error) {
	cfg, err := portfolio.LoadConfig(*configFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not load configuration %q: %w", *configFile, err)
	}
	prices, ledger, diags, err := portfolio.LoadData(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return portfolio.NewAnalyzer(prices, ledger, cfg.Currency), &cfg, diags, nil
}

func style(cfg *portfolio.Config) renderer.Style {
	symbol := cfg.CurrencySymbol
	if symbol == "" {
		symbol = cfg.Currency
	}
	return renderer.NewStyle(symbol)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer cannot be built (e.g. no TTY information).
func printMarkdown(text string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		fmt.Println(text)
		return
	}
	out, err := r.Render(text)
	if err != nil {
		fmt.Println(text)
		return
	}
	fmt.Print(out)
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
