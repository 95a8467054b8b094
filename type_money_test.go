package portfolio

import "testing"

func TestMoneyArithmetic(t *testing.T) {
	a := M(100.5, "MAD")
	b := M(50, "MAD")

	if got := a.Add(b); !got.Equal(M(150.5, "MAD")) {
		t.Errorf("Add = %s", got)
	}
	if got := a.Sub(b); !got.Equal(M(50.5, "MAD")) {
		t.Errorf("Sub = %s", got)
	}
	if got := b.Mul(Q(3)); !got.Equal(M(150, "MAD")) {
		t.Errorf("Mul = %s", got)
	}
	if got := b.Div(Q(4)); !got.Equal(M(12.5, "MAD")) {
		t.Errorf("Div = %s", got)
	}
	if !a.Sub(a.Add(b)).IsNegative() {
		t.Error("IsNegative")
	}
}

func TestMoneyWeakCurrency(t *testing.T) {
	// The zero Money has no currency; adding a typed amount adopts it, so
	// sums can start from a zero value.
	var sum Money
	sum = sum.Add(M(10, "MAD"))
	if sum.Currency() != "MAD" {
		t.Errorf("Currency() = %q, want MAD", sum.Currency())
	}
	if !sum.Equal(M(10, "MAD")) {
		t.Errorf("sum = %s", sum)
	}
}

func TestQuantityArithmetic(t *testing.T) {
	q := Q(10)
	if got := q.Sub(Q(4)); !got.Equal(Q(6)) {
		t.Errorf("Sub = %s", got)
	}
	if got := q.Mul(Q(2.5)); !got.Equal(Q(25)) {
		t.Errorf("Mul = %s", got)
	}
	if got := q.Div(Q(4)); !got.Equal(Q(2.5)) {
		t.Errorf("Div = %s", got)
	}
	if !Q(-1).IsNegative() || !Q(1).IsPositive() || !Q(0).IsZero() {
		t.Error("sign predicates are inconsistent")
	}
}
