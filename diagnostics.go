package portfolio

import "fmt"

// DiagKind classifies a degradation the pipeline recovered from.
type DiagKind int

const (
	// MissingSource means no input file was found; the table is empty.
	MissingSource DiagKind = iota
	// MissingColumn means a required column was absent and synthesized.
	MissingColumn
	// AdoptedColumn means an unrecognized column was heuristically mapped.
	AdoptedColumn
	// BadNumber means a numeric cell could not be parsed and became zero.
	BadNumber
	// BadDate means a date cell could not be parsed; the row is kept but
	// excluded from date-bounded computations.
	BadDate
	// MissingPrice means a held symbol has no price observation; its current
	// value is zero.
	MissingPrice
	// UnclassifiedSide means a transaction type token was missing or
	// unrecognized and the row defaults to a buy.
	UnclassifiedSide
	// SkippedRow means a malformed row was dropped from a computation
	// without aborting it.
	SkippedRow
)

func (k DiagKind) String() string {
	switch k {
	case MissingSource:
		return "missing-source"
	case MissingColumn:
		return "missing-column"
	case AdoptedColumn:
		return "adopted-column"
	case BadNumber:
		return "bad-number"
	case BadDate:
		return "bad-date"
	case MissingPrice:
		return "missing-price"
	case UnclassifiedSide:
		return "unclassified-side"
	case SkippedRow:
		return "skipped-row"
	default:
		return "unknown"
	}
}

// Diagnostic records one degradation: what kind, and a human message.
type Diagnostic struct {
	Kind    DiagKind
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}

// DiagnosticList accumulates diagnostics across a pipeline run. Public entry
// points return it alongside their (possibly degraded) result so callers can
// detect and log degraded states instead of reading stdout.
type DiagnosticList []Diagnostic

// Addf appends a formatted diagnostic.
func (l *DiagnosticList) Addf(kind DiagKind, format string, args ...any) {
	*l = append(*l, Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...)})
}

// Merge appends all diagnostics from another list.
func (l *DiagnosticList) Merge(other DiagnosticList) {
	*l = append(*l, other...)
}

// Has reports whether the list contains at least one diagnostic of that kind.
func (l DiagnosticList) Has(kind DiagKind) bool {
	for _, d := range l {
		if d.Kind == kind {
			return true
		}
	}
	return false
}
