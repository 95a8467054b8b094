package portfolio

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Config gathers every knob the pipeline needs, so nothing hides in module
// globals: data-file fallback chains, display currency, and the benchmark
// index used for comparative performance.
type Config struct {
	// PriceFiles is the ordered fallback chain of price-history locations.
	// The first file that exists is used; none existing is a valid (empty)
	// result, not an error.
	PriceFiles []string `toml:"price_files"`
	// TransactionFiles is the ordered fallback chain of ledger locations.
	TransactionFiles []string `toml:"transaction_files"`
	// Currency is the ISO code used for monetary values in reports.
	Currency string `toml:"currency"`
	// CurrencySymbol overrides the symbol used by the currency formatter.
	// Empty means the currency's own symbol.
	CurrencySymbol string `toml:"currency_symbol"`
	// Benchmark is the index symbol used for comparative performance.
	Benchmark string `toml:"benchmark"`
	// Period is the default analysis period label ("1Y", "6M",
	// "Last 60 Days", "MTD", "YTD"). Unrecognized labels fall back to 1Y.
	Period string `toml:"period"`
}

// DefaultConfig returns the configuration the dashboard ships with.
func DefaultConfig() Config {
	return Config{
		PriceFiles:       []string{"data/all_historical_data.csv", "all_historical_data.csv"},
		TransactionFiles: []string{"data/transactions.csv", "transactions.csv"},
		Currency:         "MAD",
		Benchmark:        "^MASI",
		Period:           "1Y",
	}
}

// LoadConfig reads a TOML configuration file and overlays it on the
// defaults. A missing file yields the defaults without error; a malformed
// file is an error, since a half-read configuration is worse than none.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("could not read config file %q: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("could not parse config file %q: %w", path, err)
	}
	return cfg, nil
}
