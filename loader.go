package portfolio

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

// LoadData loads and normalizes the price history and the transaction ledger
// according to the config's fallback chains. Absent files, unknown columns
// and unparseable cells degrade to empty or zero values; every degradation
// is reported in the returned DiagnosticList, and the error return is
// reserved for I/O failures on files that do exist.
func LoadData(cfg Config) (*PriceHistory, *Ledger, DiagnosticList, error) {
	var diags DiagnosticList

	prices, pdiags, err := LoadPriceHistory(cfg.PriceFiles)
	diags.Merge(pdiags)
	if err != nil {
		return prices, NewLedger(), diags, err
	}

	ledger, ldiags, err := LoadLedger(cfg.TransactionFiles)
	diags.Merge(ldiags)
	return prices, ledger, diags, err
}

// LoadPriceHistory reads the first existing file of the fallback chain into
// a PriceHistory. (symbol, date) duplicates are collapsed keeping the first
// bar seen.
func LoadPriceHistory(paths []string) (*PriceHistory, DiagnosticList, error) {
	var diags DiagnosticList
	prices := NewPriceHistory()

	f, path, found := openFirst(paths)
	if !found {
		diags.Addf(MissingSource, "no price history found in %v, using an empty table", paths)
		return prices, diags, nil
	}
	defer f.Close()

	header, rows, err := readTable(f, ';')
	if err != nil {
		return prices, diags, err
	}
	mapping, hdiags := normalizeHeader(header, priceColumnRules, requiredPriceColumns)
	diags.Merge(hdiags)

	for i, row := range rows {
		bar := PriceBar{Symbol: mapping.cell(row, "symbol")}

		if raw := mapping.cell(row, "date"); raw != "" {
			day, err := ParseDate(raw)
			if err != nil {
				diags.Addf(BadDate, "%s row %d: %v", path, i+2, err)
			}
			bar.Date = day
		}
		bar.Close = coerceNumber(mapping.cell(row, "close"), &diags, path, i+2)

		// Add ignores bars without symbol or date, and duplicates.
		prices.Add(bar)
	}
	return prices, diags, nil
}

// LoadLedger reads the first existing file of the fallback chain into a
// Ledger. Rows never make the load fail: bad cells coerce to zero values and
// unknown side tokens default to buys with an Unclassified tag.
func LoadLedger(paths []string) (*Ledger, DiagnosticList, error) {
	var diags DiagnosticList
	ledger := NewLedger()

	f, path, found := openFirst(paths)
	if !found {
		diags.Addf(MissingSource, "no transaction ledger found in %v, using an empty table", paths)
		return ledger, diags, nil
	}
	defer f.Close()

	header, rows, err := readTable(f, ',')
	if err != nil {
		return ledger, diags, err
	}
	mapping, hdiags := normalizeHeader(header, ledgerColumnRules, requiredLedgerColumns)
	diags.Merge(hdiags)

	var txs []Transaction
	for i, row := range rows {
		tx := Transaction{Symbol: mapping.cell(row, "symbol")}

		if raw := mapping.cell(row, "date"); raw != "" {
			day, err := ParseDate(raw)
			if err != nil {
				diags.Addf(BadDate, "%s row %d: %v", path, i+2, err)
			}
			tx.Date = day
		}
		tx.Quantity = Q(coerceNumber(mapping.cell(row, "quantity"), &diags, path, i+2))
		tx.Price = coerceNumber(mapping.cell(row, "price"), &diags, path, i+2)

		tx.Side = ParseSide(mapping.cell(row, "side"))
		if token := mapping.cell(row, "side"); tx.Side == Unclassified && token != "" {
			diags.Addf(UnclassifiedSide, "%s row %d: unrecognized transaction type %q, treated as buy", path, i+2, token)
		}

		txs = append(txs, tx)
	}
	ledger.Append(txs...)
	return ledger, diags, nil
}

// openFirst opens the first path of the chain that exists.
func openFirst(paths []string) (io.ReadCloser, string, bool) {
	for _, path := range paths {
		f, err := os.Open(path)
		if err == nil {
			return f, path, true
		}
	}
	return nil, "", false
}

// readTable reads a whole delimited file into a header and data rows.
// The delimiter is sniffed from the first line when the preferred one does
// not appear in it, which recovers files exported with the other separator.
// Rows with the wrong number of fields are kept as-is; short rows read as
// defaults cell by cell.
func readTable(f io.Reader, preferred rune) (header []string, rows [][]string, err error) {
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, nil, err
	}
	firstLine, _, _ := strings.Cut(string(data), "\n")

	delim := preferred
	if !strings.ContainsRune(firstLine, preferred) {
		for _, alt := range []rune{';', ',', '\t'} {
			if alt != preferred && strings.ContainsRune(firstLine, alt) {
				delim = alt
				break
			}
		}
	}

	r := csv.NewReader(strings.NewReader(string(data)))
	r.Comma = delim
	r.FieldsPerRecord = -1 // tolerate ragged rows
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, nil
	}
	return records[0], records[1:], nil
}

// coerceNumber parses a numeric cell leniently: spaces are trimmed, a comma
// decimal separator is accepted, and anything unparseable becomes zero with
// a diagnostic rather than an error.
func coerceNumber(raw string, diags *DiagnosticList, path string, line int) decimal.Decimal {
	if raw == "" {
		return decimal.Zero
	}
	raw = strings.ReplaceAll(raw, " ", "")
	d, err := decimal.NewFromString(raw)
	if err != nil {
		d, err = decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
	}
	if err != nil {
		diags.Addf(BadNumber, "%s row %d: cannot parse number %q, using 0", path, line, raw)
		return decimal.Zero
	}
	return d
}
