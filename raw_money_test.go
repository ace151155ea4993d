package money

import (
	"errors"
	"testing"

	"github.com/govalues/decimal"
)

func TestNewRaw(t *testing.T) {
	// NewRaw never rounds.
	tests := []struct {
		curr, amount, want string
	}{
		{"USD", "1.005", "USD 1.005"},
		{"USD", "1", "USD 1"},
		{"JPY", "100.5", "JPY 100.5"},
		{"BHD", "1.23456", "BHD 1.23456"},
	}
	for _, tt := range tests {
		c := MustParseCurr(tt.curr)
		got := NewRaw(c, decimal.MustParse(tt.amount))
		if got.String() != tt.want {
			t.Errorf("NewRaw(%v, %v) = %q, want %q", c, tt.amount, got, tt.want)
		}
	}
}

func TestRawFromMinorUnits(t *testing.T) {
	c := MustParseCurr("USD")
	got, err := RawFromMinorUnits(c, 12345)
	if err != nil {
		t.Fatalf("RawFromMinorUnits(%v, 12345) failed: %v", c, err)
	}
	if got.String() != "USD 123.45" {
		t.Errorf("RawFromMinorUnits(%v, 12345) = %q, want %q", c, got, "USD 123.45")
	}
}

func TestRawMoney_Add(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		usd := MustParseCurr("USD")
		sum := NewRaw(usd, decimal.MustParse("0"))
		cent := decimal.MustParse("0.001")
		var err error
		for i := 0; i < 3; i++ {
			sum, err = sum.AddDecimal(cent)
			if err != nil {
				t.Fatalf("AddDecimal failed: %v", err)
			}
		}
		// No rounding along the way.
		if sum.String() != "USD 0.003" {
			t.Errorf("0.001 added thrice = %q, want %q", sum, "USD 0.003")
		}
	})

	t.Run("error", func(t *testing.T) {
		a, _ := ParseRaw("USD 1.00")
		b, _ := ParseRaw("EUR 1,00")
		_, err := a.Add(b)
		if !errors.Is(err, ErrCurrencyMismatch) {
			t.Errorf("%q.Add(%q) = %v, want ErrCurrencyMismatch", a, b, err)
		}
	})
}

func TestRawMoney_MulDecimal(t *testing.T) {
	usd := MustParseCurr("USD")
	price := NewRaw(usd, decimal.MustParse("9.99"))
	got, err := price.MulDecimal(decimal.MustParse("0.333"))
	if err != nil {
		t.Fatalf("%q.MulDecimal(0.333) failed: %v", price, err)
	}
	if got.String() != "USD 3.32667" {
		t.Errorf("%q.MulDecimal(0.333) = %q, want %q", price, got, "USD 3.32667")
	}
}

func TestRawMoney_Div(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		a, _ := ParseRaw("USD 1")
		b, _ := ParseRaw("USD 8")
		got, err := a.Div(b)
		if err != nil {
			t.Fatalf("%q.Div(%q) failed: %v", a, b, err)
		}
		// Exact quotient, no rounding to the currency's scale.
		if got.String() != "USD 0.125" {
			t.Errorf("%q.Div(%q) = %q, want %q", a, b, got, "USD 0.125")
		}
	})

	t.Run("error", func(t *testing.T) {
		a, _ := ParseRaw("USD 1")
		b, _ := ParseRaw("USD 0")
		if _, err := a.Div(b); !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("%q.Div(%q) = %v, want ErrDivisionByZero", a, b, err)
		}
	})
}

func TestRawMoney_Finish(t *testing.T) {
	usd := MustParseCurr("USD")
	tests := []struct {
		curr   Currency
		amount string
		want   string
	}{
		{usd, "1.005", "USD 1.00"},
		{usd.WithRounding(HalfUp), "1.005", "USD 1.01"},
		{usd, "3.32667", "USD 3.33"},
		{usd, "5", "USD 5.00"},
	}
	for _, tt := range tests {
		r := NewRaw(tt.curr, decimal.MustParse(tt.amount))
		got, err := r.Finish()
		if err != nil {
			t.Errorf("%q.Finish() failed: %v", r, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("%q.Finish() = %q, want %q", r, got, tt.want)
		}
	}
}

func TestRawMoney_Round(t *testing.T) {
	usd := MustParseCurr("USD")
	r := NewRaw(usd, decimal.MustParse("1.005"))
	if got := r.Round(); got.String() != "USD 1.00" {
		t.Errorf("%q.Round() = %q, want %q", r, got, "USD 1.00")
	}
	if got := r.RoundWith(2, HalfUp); got.String() != "USD 1.01" {
		t.Errorf("%q.RoundWith(2, HalfUp) = %q, want %q", r, got, "USD 1.01")
	}
}

func TestRawMoney_MinorUnits(t *testing.T) {
	usd := MustParseCurr("USD")
	r := NewRaw(usd, decimal.MustParse("1.005"))
	got, err := r.MinorUnits()
	if err != nil {
		t.Fatalf("%q.MinorUnits() failed: %v", r, err)
	}
	if got != 100 {
		t.Errorf("%q.MinorUnits() = %v, want 100", r, got)
	}
}

func TestRawMoney_Must(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		a, _ := ParseRaw("USD 1.105")
		b, _ := ParseRaw("USD 2.205")
		if got := a.MustAdd(b); got.String() != "USD 3.310" {
			t.Errorf("%q.MustAdd(%q) = %q, want %q", a, b, got, "USD 3.310")
		}
	})

	t.Run("panic", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustDiv by zero did not panic")
			}
		}()
		a, _ := ParseRaw("USD 1")
		b, _ := ParseRaw("USD 0")
		a.MustDiv(b)
	})
}

func TestRawMoney_Cmp(t *testing.T) {
	a, _ := ParseRaw("USD 1.5")
	b, _ := ParseRaw("USD 1.50")
	c, err := a.Cmp(b)
	if err != nil {
		t.Fatalf("%q.Cmp(%q) failed: %v", a, b, err)
	}
	if c != 0 {
		t.Errorf("%q.Cmp(%q) = %v, want 0", a, b, c)
	}
	if !a.Equal(b) {
		t.Errorf("%q.Equal(%q) = false, want true", a, b)
	}
}

func TestRawMoney_Clamp(t *testing.T) {
	m, _ := ParseRaw("USD 2.5")
	lo, _ := ParseRaw("USD 1")
	hi, _ := ParseRaw("USD 2")
	got, err := m.Clamp(lo, hi)
	if err != nil {
		t.Fatalf("%q.Clamp(%q, %q) failed: %v", m, lo, hi, err)
	}
	if !got.Equal(hi) {
		t.Errorf("%q.Clamp(%q, %q) = %q, want %q", m, lo, hi, got, hi)
	}
	if _, err := m.Clamp(hi, lo); err == nil {
		t.Errorf("%q.Clamp(%q, %q) did not fail", m, hi, lo)
	}
}

func TestRawMoney_JSON(t *testing.T) {
	r, _ := ParseRaw("USD 1.005")
	text, err := r.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() failed: %v", err)
	}
	if string(text) != `"USD 1.005"` {
		t.Errorf("MarshalJSON() = %q, want %q", text, `"USD 1.005"`)
	}

	var got RawMoney
	if err := got.UnmarshalJSON(text); err != nil {
		t.Fatalf("UnmarshalJSON(%q) failed: %v", text, err)
	}
	if !got.Equal(r) {
		t.Errorf("JSON round-trip = %q, want %q", got, r)
	}
}

func TestRawMoney_Scan(t *testing.T) {
	var got RawMoney
	if err := got.Scan([]byte("USD 1.005")); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if got.String() != "USD 1.005" {
		t.Errorf("Scan = %q, want %q", got, "USD 1.005")
	}
	v, err := got.Value()
	if err != nil {
		t.Fatalf("Value() failed: %v", err)
	}
	if v != "USD 1.005" {
		t.Errorf("Value() = %v, want %q", v, "USD 1.005")
	}
}
