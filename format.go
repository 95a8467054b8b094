package portfolio

import (
	"fmt"
	"math"

	money "github.com/Rhymond/go-money"
)

// CurrencyFormatter renders monetary amounts for display with a fixed symbol,
// two decimals and thousands separators, e.g. "MAD 12,345.67".
type CurrencyFormatter struct {
	f *money.Formatter
}

// NewCurrencyFormatter builds a formatter for the given display symbol.
// An empty symbol falls back to the bare amount.
func NewCurrencyFormatter(symbol string) *CurrencyFormatter {
	template := "1"
	if symbol != "" {
		template = "$ 1"
	}
	return &CurrencyFormatter{
		f: &money.Formatter{
			Fraction: 2,
			Decimal:  ".",
			Thousand: ",",
			Grapheme: symbol,
			Template: template,
		},
	}
}

// Format renders the amount. Negative amounts keep the sign in front of the
// whole rendition, e.g. "-MAD 1,234.50".
func (c *CurrencyFormatter) Format(m Money) string {
	cents := int64(math.Round(m.AsFloat() * 100))
	if cents < 0 {
		return "-" + c.f.Format(-cents)
	}
	return c.f.Format(cents)
}

// PercentFormatter renders ratios already expressed in percent points.
type PercentFormatter struct {
	Digits int // decimal places, 0 means the default of 2
}

// Format renders e.g. 12.3456 as "12.35%".
func (p PercentFormatter) Format(v Percent) string {
	digits := p.Digits
	if digits <= 0 {
		digits = 2
	}
	return fmt.Sprintf("%.*f%%", digits, float64(v))
}
