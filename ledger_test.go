package portfolio

import (
	"slices"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseSide(t *testing.T) {
	tests := []struct {
		token string
		want  Side
	}{
		{"buy", Buy},
		{"Achat", Buy},
		{"PURCHASE", Buy},
		{"b", Buy},
		{"sell", Sell},
		{"Vente", Sell},
		{" sale ", Sell},
		{"v", Sell},
		{"s", Sell},
		{"", Unclassified},
		{"dividend", Unclassified},
	}
	for _, tt := range tests {
		if got := ParseSide(tt.token); got != tt.want {
			t.Errorf("ParseSide(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func tx(symbol, day string, qty, price float64, side Side) Transaction {
	var on Date
	if day != "" {
		on = MustParseDate(day)
	}
	return Transaction{
		Date:     on,
		Symbol:   symbol,
		Quantity: Q(qty),
		Price:    decimal.NewFromFloat(price),
		Side:     side,
	}
}

func TestLedgerChronologicalOrder(t *testing.T) {
	l := NewLedger()
	l.Append(
		tx("IAM", "2024-03-01", 10, 100, Buy),
		tx("BCP", "2024-01-01", 5, 200, Buy),
		tx("IAM", "2024-02-01", 3, 110, Sell),
	)

	var days []Date
	for tr := range l.Transactions() {
		days = append(days, tr.Date)
	}
	if !slices.IsSortedFunc(days, Date.Compare) {
		t.Errorf("transactions not in chronological order: %v", days)
	}
}

func TestLedgerFilters(t *testing.T) {
	l := NewLedger()
	l.Append(
		tx("IAM", "2024-01-01", 10, 100, Buy),
		tx("IAM", "2024-02-01", 4, 120, Sell),
		tx("BCP", "2024-03-01", 5, 200, Buy),
		tx("IAM", "", 1, 90, Buy), // unparseable date
	)

	count := 0
	for range l.Transactions(BySymbol("IAM"), BySide(Buy)) {
		count++
	}
	if count != 2 {
		t.Errorf("BySymbol+BySide matched %d transactions, want 2", count)
	}

	// UpTo excludes undated rows even though they sort first.
	count = 0
	for range l.Transactions(UpTo(MustParseDate("2024-02-15"))) {
		count++
	}
	if count != 2 {
		t.Errorf("UpTo matched %d transactions, want 2", count)
	}

	var symbols []string
	for s := range l.Symbols() {
		symbols = append(symbols, s)
	}
	if !slices.Equal(symbols, []string{"BCP", "IAM"}) {
		t.Errorf("Symbols() = %v", symbols)
	}
}

func TestTransactionAmount(t *testing.T) {
	tr := tx("IAM", "2024-01-01", 10, 125.5, Buy)
	if !tr.Amount().Equal(decimal.NewFromFloat(1255)) {
		t.Errorf("Amount() = %s, want 1255", tr.Amount())
	}
}
