package portfolio

import "testing"

func TestNormalizeLedgerHeader(t *testing.T) {
	header := []string{"Ticker", "Nombre_Actions", "Prix_Acquisition", "Date_Acquisition", "Type"}
	mapping, diags := normalizeHeader(header, ledgerColumnRules, requiredLedgerColumns)

	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
	row := []string{"IAM", "10", "125.5", "31/12/2024", "Achat"}
	if got := mapping.cell(row, "symbol"); got != "IAM" {
		t.Errorf("symbol = %q", got)
	}
	if got := mapping.cell(row, "quantity"); got != "10" {
		t.Errorf("quantity = %q", got)
	}
	if got := mapping.cell(row, "price"); got != "125.5" {
		t.Errorf("price = %q", got)
	}
	if got := mapping.cell(row, "date"); got != "31/12/2024" {
		t.Errorf("date = %q", got)
	}
	if got := mapping.cell(row, "side"); got != "Achat" {
		t.Errorf("side = %q", got)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	// A header already in canonical form maps onto itself without noise.
	header := []string{"symbol", "quantity", "price", "date", "side"}
	mapping, diags := normalizeHeader(header, ledgerColumnRules, requiredLedgerColumns)
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
	for i, canonical := range header {
		if mapping[canonical] != i {
			t.Errorf("column %q mapped to %d, want %d", canonical, mapping[canonical], i)
		}
	}
}

func TestNormalizeHeuristicAdoption(t *testing.T) {
	header := []string{"Date", "Stock Symbol", "Adj Close Price"}
	mapping, diags := normalizeHeader(header, priceColumnRules, requiredPriceColumns)

	if !diags.Has(AdoptedColumn) {
		t.Fatalf("expected adopted-column diagnostics, got %v", diags)
	}
	if !mapping.has("symbol") || !mapping.has("close") {
		t.Errorf("heuristics did not bind symbol/close: %v", mapping)
	}
	row := []string{"2024-01-10", "IAM", "100"}
	if got := mapping.cell(row, "close"); got != "100" {
		t.Errorf("close = %q", got)
	}
}

func TestNormalizeSynthesizesMissingColumns(t *testing.T) {
	header := []string{"Date"}
	mapping, diags := normalizeHeader(header, priceColumnRules, requiredPriceColumns)

	if !diags.Has(MissingColumn) {
		t.Fatalf("expected missing-column diagnostics, got %v", diags)
	}
	// Missing columns read as empty on any row instead of panicking.
	if got := mapping.cell([]string{"2024-01-10"}, "close"); got != "" {
		t.Errorf("synthesized close = %q, want empty", got)
	}
	if mapping.has("close") {
		t.Error("synthesized column should not report as present")
	}
}

func TestNormalizeAdjustedCloseBeatsNothing(t *testing.T) {
	header := []string{"Date", "Ticker", "Adjusted_close"}
	mapping, diags := normalizeHeader(header, priceColumnRules, requiredPriceColumns)
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
	if got := mapping.cell([]string{"d", "IAM", "42"}, "close"); got != "42" {
		t.Errorf("close from Adjusted_close = %q", got)
	}
}

func TestNormalizeShortRow(t *testing.T) {
	header := []string{"symbol", "quantity", "price", "date"}
	mapping, _ := normalizeHeader(header, ledgerColumnRules, requiredLedgerColumns)
	if got := mapping.cell([]string{"IAM"}, "price"); got != "" {
		t.Errorf("short row should read missing cells as empty, got %q", got)
	}
}
