package portfolio

import (
	"iter"
	"maps"
	"slices"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Side is the direction of a transaction.
type Side int

const (
	// Buy adds units to a position.
	Buy Side = iota
	// Sell removes units from a position.
	Sell
	// Unclassified is a transaction whose source type token was missing or
	// unrecognized. The valuation engine treats it as a Buy, but the
	// ambiguity is kept visible so callers can decide otherwise.
	Unclassified
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unclassified"
	}
}

// buyTokens and sellTokens are the accepted side keywords, covering the two
// locales found in source ledgers.
var (
	buyTokens  = []string{"buy", "purchase", "achat", "b"}
	sellTokens = []string{"sell", "sale", "vente", "v", "s"}
)

// ParseSide classifies a free-text transaction type token. Unmatched or empty
// tokens yield Unclassified.
func ParseSide(token string) Side {
	token = strings.ToLower(strings.TrimSpace(token))
	if slices.Contains(buyTokens, token) {
		return Buy
	}
	if slices.Contains(sellTokens, token) {
		return Sell
	}
	return Unclassified
}

// Transaction is one buy or sell event from the ledger file.
// It is immutable once loaded.
type Transaction struct {
	Date     Date
	Symbol   string
	Quantity Quantity
	Price    decimal.Decimal // unit price at transaction time, zero tolerated
	Side     Side
}

// Amount is the transaction's cash amount (quantity times unit price).
func (t Transaction) Amount() decimal.Decimal {
	return t.Quantity.Decimal().Mul(t.Price)
}

// Ledger is the full set of transactions, always in chronological order.
// Transactions with a zero (unparseable) date sort first and are skipped by
// date-bounded computations.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Append appends transactions and maintains the chronological order.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

// stableSort sorts the ledger by transaction date. The sort is stable, so
// transactions on the same day keep their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Date.Before(l.transactions[j].Date)
	})
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// IsEmpty reports whether the ledger holds no transaction.
func (l *Ledger) IsEmpty() bool { return len(l.transactions) == 0 }

// Transactions returns an iterator over transactions in chronological order,
// keeping only those accepted by every filter.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			accept := true
			for _, filter := range filters {
				if !filter(tx) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(tx) {
				return
			}
		}
	}
}

// UpTo returns a predicate keeping transactions dated at or before 'on',
// excluding rows whose date could not be parsed.
func UpTo(on Date) func(Transaction) bool {
	return func(tx Transaction) bool {
		return !tx.Date.IsZero() && !tx.Date.After(on)
	}
}

// BySide returns a predicate keeping transactions of the given side.
func BySide(side Side) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Side == side }
}

// BySymbol returns a predicate keeping transactions of the given symbol.
func BySymbol(symbol string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Symbol == symbol }
}

// Symbols iterates over the distinct symbols of the ledger in lexical order.
func (l *Ledger) Symbols() iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]struct{})
		for _, tx := range l.transactions {
			if tx.Symbol == "" {
				continue
			}
			visited[tx.Symbol] = struct{}{}
		}
		symbols := slices.Collect(maps.Keys(visited))
		slices.Sort(symbols)
		for _, s := range symbols {
			if !yield(s) {
				return
			}
		}
	}
}
