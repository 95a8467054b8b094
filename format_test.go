package portfolio

import "testing"

func TestCurrencyFormatter(t *testing.T) {
	f := NewCurrencyFormatter("MAD")
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "MAD 0.00"},
		{1234.5, "MAD 1,234.50"},
		{1234567.891, "MAD 1,234,567.89"},
		{-1234.5, "-MAD 1,234.50"},
		{0.005, "MAD 0.01"},
	}
	for _, tt := range tests {
		if got := f.Format(M(tt.amount, "MAD")); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestCurrencyFormatterNoSymbol(t *testing.T) {
	f := NewCurrencyFormatter("")
	if got := f.Format(M(1234.5, "MAD")); got != "1,234.50" {
		t.Errorf("Format = %q, want bare amount", got)
	}
}

func TestPercentFormatter(t *testing.T) {
	tests := []struct {
		digits int
		value  Percent
		want   string
	}{
		{0, 12.3456, "12.35%"}, // zero digits means the default of 2
		{2, -5, "-5.00%"},
		{1, 0.04, "0.0%"},
		{4, 1.23456, "1.2346%"},
	}
	for _, tt := range tests {
		f := PercentFormatter{Digits: tt.digits}
		if got := f.Format(tt.value); got != tt.want {
			t.Errorf("Digits=%d Format(%v) = %q, want %q", tt.digits, tt.value, got, tt.want)
		}
	}
}

func TestMoneyString(t *testing.T) {
	m := M(1234.5, "EUR")
	if m.Currency() != "EUR" {
		t.Errorf("Currency() = %q", m.Currency())
	}
	if m.String() == "" {
		t.Error("String() should render something")
	}
}

func TestPercentStrings(t *testing.T) {
	if got := Percent(12.345).String(); got != "12.35%" {
		t.Errorf("String() = %q", got)
	}
	if got := Percent(12.345).SignedString(); got != "+12.35%" {
		t.Errorf("SignedString() = %q", got)
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q, want the dash placeholder", got)
	}
}
