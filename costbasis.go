package portfolio

import "github.com/shopspring/decimal"

// CostBasis is the strategy that accumulates one symbol's held quantity and
// cost basis as transactions are applied in chronological order. It is an
// interface so a lot-tracking method (FIFO, LIFO) can be added later without
// touching the valuation engine's aggregation loop.
type CostBasis interface {
	// Buy adds units purchased for the given total cost.
	Buy(qty Quantity, cost decimal.Decimal)
	// Sell removes units.
	Sell(qty Quantity)
	// Quantity returns the net quantity held so far. It may be negative
	// when sells exceeded buys; such positions are excluded from reports.
	Quantity() Quantity
	// Basis returns the cost basis of the currently held units.
	Basis() decimal.Decimal
}

// ProportionalAverageCost reduces the cost basis proportionally to the
// fraction of the position sold: newBasis = basis x (1 - sold/held).
//
// This is a deliberate approximation of average-cost accounting, not lot
// tracking: it matches the source dashboard's behavior exactly and is the
// only method shipped.
type ProportionalAverageCost struct {
	qty   Quantity
	basis decimal.Decimal
}

// NewProportionalAverageCost returns an empty accumulator.
func NewProportionalAverageCost() *ProportionalAverageCost {
	return &ProportionalAverageCost{}
}

func (c *ProportionalAverageCost) Buy(qty Quantity, cost decimal.Decimal) {
	c.qty = c.qty.Add(qty)
	c.basis = c.basis.Add(cost)
}

func (c *ProportionalAverageCost) Sell(qty Quantity) {
	held := c.qty
	switch {
	case held.IsPositive() && qty.LessThan(held):
		// remaining fraction of the position keeps the same fraction of the basis
		factor := decimal.NewFromInt(1).Sub(qty.Decimal().Div(held.Decimal()))
		c.basis = c.basis.Mul(factor)
	default:
		// selling everything (or more than held, or from an empty position)
		// leaves no basis behind
		c.basis = decimal.Zero
	}
	c.qty = c.qty.Sub(qty)
}

func (c *ProportionalAverageCost) Quantity() Quantity { return c.qty }

func (c *ProportionalAverageCost) Basis() decimal.Decimal { return c.basis }
