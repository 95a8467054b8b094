package portfolio

import "strings"

// columnRule maps one known source column name onto a canonical column.
// Rules are evaluated in order: the first rule whose candidate appears in the
// header binds its canonical column, so explicit names beat heuristics and
// earlier spellings beat later ones.
type columnRule struct {
	candidate string // matched case-insensitively against trimmed header cells
	canonical string
}

// priceColumnRules maps price-history source headers onto {date, symbol, close}.
var priceColumnRules = []columnRule{
	{"date", "date"},
	{"ticker", "symbol"},
	{"symbol", "symbol"},
	{"close", "close"},
	{"adjusted_close", "close"},
}

// ledgerColumnRules maps transaction-ledger source headers onto
// {symbol, quantity, price, date, side}. The French column names are the
// ones the original spreadsheet exports use.
var ledgerColumnRules = []columnRule{
	{"ticker", "symbol"},
	{"symbol", "symbol"},
	{"nombre_actions", "quantity"},
	{"quantity", "quantity"},
	{"prix_acquisition", "price"},
	{"purchase_price", "price"},
	{"price", "price"},
	{"date_acquisition", "date"},
	{"purchase_date", "date"},
	{"date", "date"},
	{"type", "side"},
	{"side", "side"},
}

// requiredPriceColumns and requiredLedgerColumns are synthesized with safe
// defaults when absent from the source: the load never fails on schema.
var (
	requiredPriceColumns  = []string{"date", "symbol", "close"}
	requiredLedgerColumns = []string{"symbol", "quantity", "price", "date"}
)

// heuristicColumns are canonical columns that may be adopted by substring
// match when no explicit rule bound them (e.g. "Stock Symbol" -> symbol).
var heuristicColumns = []string{"symbol", "close"}

// columnMapping is the result of header normalization: canonical column name
// to index in the source rows. A missing column maps to -1 and reads as its
// safe default.
type columnMapping map[string]int

// normalizeHeader resolves a source header into a columnMapping using the
// given rule list, then substring heuristics, and reports what was adopted
// or synthesized. Normalizing an already-canonical header is a no-op.
func normalizeHeader(header []string, rules []columnRule, required []string) (columnMapping, DiagnosticList) {
	var diags DiagnosticList
	mapping := make(columnMapping)

	cells := make([]string, len(header))
	for i, cell := range header {
		cells[i] = strings.ToLower(strings.TrimSpace(cell))
	}

	for _, rule := range rules {
		if _, bound := mapping[rule.canonical]; bound {
			continue
		}
		for i, cell := range cells {
			if cell == rule.candidate {
				mapping[rule.canonical] = i
				break
			}
		}
	}

	// Heuristic adoption: an unrecognized column whose name contains the
	// canonical name is close enough.
	for _, canonical := range heuristicColumns {
		if _, bound := mapping[canonical]; bound {
			continue
		}
		for i, cell := range cells {
			if strings.Contains(cell, canonical) {
				mapping[canonical] = i
				diags.Addf(AdoptedColumn, "column %q adopted as %q", header[i], canonical)
				break
			}
		}
	}

	for _, canonical := range required {
		if _, bound := mapping[canonical]; !bound {
			mapping[canonical] = -1
			diags.Addf(MissingColumn, "column %q not found, using defaults", canonical)
		}
	}
	return mapping, diags
}

// cell returns the row's value for a canonical column, or "" when the column
// is synthesized or the row is short.
func (m columnMapping) cell(row []string, canonical string) string {
	i, ok := m[canonical]
	if !ok || i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// has reports whether the canonical column was found in the source header.
func (m columnMapping) has(canonical string) bool {
	i, ok := m[canonical]
	return ok && i >= 0
}
