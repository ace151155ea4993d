package money

import (
	"errors"
	"math"
	"testing"

	"github.com/govalues/decimal"
)

func TestNew(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			curr, amount, want string
		}{
			{"USD", "1", "USD 1.00"},
			{"USD", "1.5", "USD 1.50"},
			{"USD", "1.005", "USD 1.00"},
			{"USD", "1.015", "USD 1.02"},
			{"USD", "-0.999", "USD -1.00"},
			{"JPY", "100.5", "JPY 100"},
			{"JPY", "101.5", "JPY 102"},
			{"BHD", "1.23456", "BHD 1.235"},
		}
		for _, tt := range tests {
			c := MustParseCurr(tt.curr)
			got, err := New(c, decimal.MustParse(tt.amount))
			if err != nil {
				t.Errorf("New(%v, %v) failed: %v", c, tt.amount, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("New(%v, %v) = %q, want %q", c, tt.amount, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		// The integer part leaves no room for the currency's scale.
		usd := MustParseCurr("USD")
		d := decimal.MustParse("9999999999999999999")
		_, err := New(usd, d)
		if err == nil {
			t.Fatalf("New(%v, %v) did not fail", usd, d)
		}
		if !errors.Is(err, ErrOverflow) {
			t.Errorf("New(%v, %v) = %v, want ErrOverflow", usd, d, err)
		}
	})
}

func TestNew_rounding(t *testing.T) {
	usd := MustParseCurr("USD").WithRounding(HalfUp)
	got, err := New(usd, decimal.MustParse("1.005"))
	if err != nil {
		t.Fatalf("New(USD, 1.005) failed: %v", err)
	}
	if got.String() != "USD 1.01" {
		t.Errorf("New(USD HalfUp, 1.005) = %q, want %q", got, "USD 1.01")
	}
}

func TestMustNew(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustNew(USD, 9999999999999999999) did not panic")
		}
	}()
	MustNew(MustParseCurr("USD"), decimal.MustParse("9999999999999999999"))
}

func TestFromMinorUnits(t *testing.T) {
	tests := []struct {
		curr  string
		units int64
		want  string
	}{
		{"USD", 12345, "USD 123.45"},
		{"USD", -12345, "USD -123.45"},
		{"USD", 0, "USD 0.00"},
		{"USD", 1, "USD 0.01"},
		{"JPY", 1000, "JPY 1000"},
		{"BHD", 1001, "BHD 1.001"},
		{"USD", math.MaxInt64, "USD 92233720368547758.07"},
		{"USD", math.MinInt64, "USD -92233720368547758.08"},
	}
	for _, tt := range tests {
		c := MustParseCurr(tt.curr)
		got, err := FromMinorUnits(c, tt.units)
		if err != nil {
			t.Errorf("FromMinorUnits(%v, %v) failed: %v", c, tt.units, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("FromMinorUnits(%v, %v) = %q, want %q", c, tt.units, got, tt.want)
		}
	}
}

func TestMoney_MinorUnits(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			m    string
			want int64
		}{
			{"USD 123.45", 12345},
			{"USD -1.99", -199},
			{"USD 0.00", 0},
			{"JPY 5", 5},
			{"BHD 1.001", 1001},
			{"USD 92233720368547758.07", math.MaxInt64},
			{"USD -92233720368547758.08", math.MinInt64},
		}
		for _, tt := range tests {
			m := MustParse(tt.m)
			got, err := m.MinorUnits()
			if err != nil {
				t.Errorf("%q.MinorUnits() failed: %v", m, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%q.MinorUnits() = %v, want %v", m, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		m := MustParse("USD 92233720368547758.08")
		_, err := m.MinorUnits()
		if err == nil {
			t.Fatalf("%q.MinorUnits() did not fail", m)
		}
		if !errors.Is(err, ErrConversion) {
			t.Errorf("%q.MinorUnits() = %v, want ErrConversion", m, err)
		}
	})
}

func TestMoney_Add(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			a, b, want string
		}{
			{"USD 1.10", "USD 2.20", "USD 3.30"},
			{"USD 1.10", "USD -2.20", "USD -1.10"},
			{"USD 0.00", "USD 0.00", "USD 0.00"},
			{"JPY 100", "JPY 23", "JPY 123"},
		}
		for _, tt := range tests {
			a, b := MustParse(tt.a), MustParse(tt.b)
			got, err := a.Add(b)
			if err != nil {
				t.Errorf("%q.Add(%q) failed: %v", a, b, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("%q.Add(%q) = %q, want %q", a, b, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		a, b := MustParse("USD 1.00"), MustParse("EUR 1,00")
		_, err := a.Add(b)
		if err == nil {
			t.Fatalf("%q.Add(%q) did not fail", a, b)
		}
		if !errors.Is(err, ErrCurrencyMismatch) {
			t.Errorf("%q.Add(%q) = %v, want ErrCurrencyMismatch", a, b, err)
		}
	})
}

func TestMoney_Sub(t *testing.T) {
	a, b := MustParse("USD 3.30"), MustParse("USD 1.10")
	got, err := a.Sub(b)
	if err != nil {
		t.Fatalf("%q.Sub(%q) failed: %v", a, b, err)
	}
	if got.String() != "USD 2.20" {
		t.Errorf("%q.Sub(%q) = %q, want %q", a, b, got, "USD 2.20")
	}

	if _, err := a.Sub(MustParse("JPY 1")); !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("%q.Sub(JPY 1) = %v, want ErrCurrencyMismatch", a, err)
	}
}

func TestMoney_Mul(t *testing.T) {
	a, b := MustParse("USD 2.00"), MustParse("USD 3.00")
	got, err := a.Mul(b)
	if err != nil {
		t.Fatalf("%q.Mul(%q) failed: %v", a, b, err)
	}
	if got.String() != "USD 6.00" {
		t.Errorf("%q.Mul(%q) = %q, want %q", a, b, got, "USD 6.00")
	}
}

func TestMoney_MulDecimal(t *testing.T) {
	tests := []struct {
		m, e, want string
	}{
		{"USD 100.00", "0.0825", "USD 8.25"},
		{"USD 2.00", "3", "USD 6.00"},
		{"USD 1.01", "0.5", "USD 0.50"},
		{"USD 1.03", "0.5", "USD 0.52"},
	}
	for _, tt := range tests {
		m := MustParse(tt.m)
		got, err := m.MulDecimal(decimal.MustParse(tt.e))
		if err != nil {
			t.Errorf("%q.MulDecimal(%v) failed: %v", m, tt.e, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("%q.MulDecimal(%v) = %q, want %q", m, tt.e, got, tt.want)
		}
	}
}

func TestMoney_Div(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			a, b, want string
		}{
			{"USD 7.00", "USD 2.00", "USD 3.50"},
			{"USD 1.00", "USD 3.00", "USD 0.33"},
			{"USD 2.00", "USD 3.00", "USD 0.67"},
		}
		for _, tt := range tests {
			a, b := MustParse(tt.a), MustParse(tt.b)
			got, err := a.Div(b)
			if err != nil {
				t.Errorf("%q.Div(%q) failed: %v", a, b, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("%q.Div(%q) = %q, want %q", a, b, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		a := MustParse("USD 1.00")
		_, err := a.Div(MustParse("USD 0.00"))
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("%q.Div(USD 0.00) = %v, want ErrDivisionByZero", a, err)
		}
		_, err = a.DivDecimal(decimal.MustParse("0"))
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("%q.DivDecimal(0) = %v, want ErrDivisionByZero", a, err)
		}
		_, err = a.Div(MustParse("EUR 1,00"))
		if !errors.Is(err, ErrCurrencyMismatch) {
			t.Errorf("%q.Div(EUR 1,00) = %v, want ErrCurrencyMismatch", a, err)
		}
	})
}

func TestMoney_AddDecimal(t *testing.T) {
	m := MustParse("USD 1.00")
	got, err := m.AddDecimal(decimal.MustParse("0.005"))
	if err != nil {
		t.Fatalf("%q.AddDecimal(0.005) failed: %v", m, err)
	}
	if got.String() != "USD 1.00" {
		t.Errorf("%q.AddDecimal(0.005) = %q, want %q", m, got, "USD 1.00")
	}

	got, err = m.SubDecimal(decimal.MustParse("0.25"))
	if err != nil {
		t.Fatalf("%q.SubDecimal(0.25) failed: %v", m, err)
	}
	if got.String() != "USD 0.75" {
		t.Errorf("%q.SubDecimal(0.25) = %q, want %q", m, got, "USD 0.75")
	}
}

func TestMoney_Must(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		a, b := MustParse("USD 1.10"), MustParse("USD 2.20")
		if got := a.MustAdd(b); got.String() != "USD 3.30" {
			t.Errorf("%q.MustAdd(%q) = %q, want %q", a, b, got, "USD 3.30")
		}
		if got := b.MustSub(a); got.String() != "USD 1.10" {
			t.Errorf("%q.MustSub(%q) = %q, want %q", b, a, got, "USD 1.10")
		}
		if got := a.MustMul(b); got.String() != "USD 2.42" {
			t.Errorf("%q.MustMul(%q) = %q, want %q", a, b, got, "USD 2.42")
		}
		if got := b.MustDiv(a); got.String() != "USD 2.00" {
			t.Errorf("%q.MustDiv(%q) = %q, want %q", b, a, got, "USD 2.00")
		}
	})

	t.Run("panic", func(t *testing.T) {
		tests := map[string]func(){
			"mismatch":  func() { MustParse("USD 1.00").MustAdd(MustParse("JPY 1")) },
			"zero":      func() { MustParse("USD 1.00").MustDiv(MustParse("USD 0.00")) },
			"underflow": func() { MustParse("USD -92233720368547758.08").MustSub(MustParse("USD 92233720368547758.07")) },
		}
		for name, f := range tests {
			t.Run(name, func(t *testing.T) {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("did not panic")
					}
				}()
				f()
			})
		}
	})
}

func TestMoney_Cmp(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			a, b string
			want int
		}{
			{"USD 1.00", "USD 2.00", -1},
			{"USD 2.00", "USD 1.00", 1},
			{"USD 1.00", "USD 1.00", 0},
			{"USD -1.00", "USD 1.00", -1},
		}
		for _, tt := range tests {
			a, b := MustParse(tt.a), MustParse(tt.b)
			got, err := a.Cmp(b)
			if err != nil {
				t.Errorf("%q.Cmp(%q) failed: %v", a, b, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%q.Cmp(%q) = %v, want %v", a, b, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		a, b := MustParse("USD 1.00"), MustParse("JPY 1")
		if _, err := a.Cmp(b); !errors.Is(err, ErrCurrencyMismatch) {
			t.Errorf("%q.Cmp(%q) = %v, want ErrCurrencyMismatch", a, b, err)
		}
	})
}

func TestMoney_Equal(t *testing.T) {
	a := MustParse("USD 1.00")
	if !a.Equal(MustParse("USD 1.00")) {
		t.Errorf("%q.Equal(USD 1.00) = false, want true", a)
	}
	if a.Equal(MustParse("USD 1.01")) {
		t.Errorf("%q.Equal(USD 1.01) = true, want false", a)
	}
	if a.Equal(MustParse("JPY 1")) {
		t.Errorf("%q.Equal(JPY 1) = true, want false", a)
	}
	// Presentation state is ignored.
	usd := MustParseCurr("USD").WithRounding(HalfUp).WithDecimalSeparator(",")
	b := MustNew(usd, decimal.MustParse("1"))
	if !a.Equal(b) {
		t.Errorf("%q.Equal(%q) = false, want true", a, b)
	}
}

func TestMoney_MinMaxClamp(t *testing.T) {
	a, b := MustParse("USD 1.00"), MustParse("USD 2.00")

	got, err := a.Min(b)
	if err != nil || !got.Equal(a) {
		t.Errorf("%q.Min(%q) = %q, %v, want %q", a, b, got, err, a)
	}
	got, err = a.Max(b)
	if err != nil || !got.Equal(b) {
		t.Errorf("%q.Max(%q) = %q, %v, want %q", a, b, got, err, b)
	}

	tests := []struct {
		m, lo, hi, want string
	}{
		{"USD 0.50", "USD 1.00", "USD 2.00", "USD 1.00"},
		{"USD 3.00", "USD 1.00", "USD 2.00", "USD 2.00"},
		{"USD 1.50", "USD 1.00", "USD 2.00", "USD 1.50"},
	}
	for _, tt := range tests {
		m := MustParse(tt.m)
		got, err := m.Clamp(MustParse(tt.lo), MustParse(tt.hi))
		if err != nil {
			t.Errorf("%q.Clamp(%q, %q) failed: %v", m, tt.lo, tt.hi, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("%q.Clamp(%q, %q) = %q, want %q", m, tt.lo, tt.hi, got, tt.want)
		}
	}

	if _, err := a.Clamp(b, a); err == nil {
		t.Errorf("%q.Clamp(%q, %q) did not fail", a, b, a)
	}
	if _, err := a.Min(MustParse("JPY 1")); !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("%q.Min(JPY 1) = %v, want ErrCurrencyMismatch", a, err)
	}
}

func TestMoney_signs(t *testing.T) {
	m := MustParse("USD -1.50")
	if m.Sign() != -1 || !m.IsNeg() || m.IsPos() || m.IsZero() {
		t.Errorf("%q sign predicates are wrong", m)
	}
	if got := m.Abs(); got.String() != "USD 1.50" {
		t.Errorf("%q.Abs() = %q, want %q", m, got, "USD 1.50")
	}
	if got := m.Neg(); got.String() != "USD 1.50" {
		t.Errorf("%q.Neg() = %q, want %q", m, got, "USD 1.50")
	}
	z := MustParse("USD 0.00")
	if z.Sign() != 0 || !z.IsZero() {
		t.Errorf("%q sign predicates are wrong", z)
	}
}

func TestMoney_RoundWith(t *testing.T) {
	m := MustParse("USD 100.17")
	tests := []struct {
		scale int
		r     Rounding
		want  string
	}{
		{1, HalfUp, "USD 100.20"},
		{1, Floor, "USD 100.10"},
		{0, Ceil, "USD 101.00"},
		{2, BankersRounding, "USD 100.17"},
	}
	for _, tt := range tests {
		got := m.RoundWith(tt.scale, tt.r)
		if got.String() != tt.want {
			t.Errorf("%q.RoundWith(%v, %v) = %q, want %q", m, tt.scale, tt.r, got, tt.want)
		}
	}

	if got := m.Round(); !got.Equal(m) {
		t.Errorf("%q.Round() = %q, want unchanged", m, got)
	}
}

func TestMoney_Raw(t *testing.T) {
	m := MustParse("USD 1.23")
	r := m.Raw()
	if r.String() != "USD 1.23" {
		t.Errorf("%q.Raw() = %q, want %q", m, r, "USD 1.23")
	}
	back, err := r.Finish()
	if err != nil {
		t.Fatalf("%q.Finish() failed: %v", r, err)
	}
	if !back.Equal(m) {
		t.Errorf("round-trip through Raw = %q, want %q", back, m)
	}
}

func TestMoney_JSON(t *testing.T) {
	m := MustParse("USD 1234.56")
	text, err := m.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() failed: %v", err)
	}
	if string(text) != `"USD 1234.56"` {
		t.Errorf("MarshalJSON() = %q, want %q", text, `"USD 1234.56"`)
	}

	var got Money
	if err := got.UnmarshalJSON(text); err != nil {
		t.Fatalf("UnmarshalJSON(%q) failed: %v", text, err)
	}
	if !got.Equal(m) {
		t.Errorf("JSON round-trip = %q, want %q", got, m)
	}

	if err := got.UnmarshalJSON([]byte("null")); err != nil {
		t.Errorf("UnmarshalJSON(null) failed: %v", err)
	}
	if !got.Equal(m) {
		t.Errorf("UnmarshalJSON(null) modified the receiver: %q", got)
	}
}

func TestMoney_Text(t *testing.T) {
	m := MustParse("USD -0.01")
	text, err := m.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() failed: %v", err)
	}
	var got Money
	if err := got.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText(%q) failed: %v", text, err)
	}
	if !got.Equal(m) {
		t.Errorf("text round-trip = %q, want %q", got, m)
	}
}

func TestMoney_Scan(t *testing.T) {
	var got Money
	if err := got.Scan("USD 1.23"); err != nil {
		t.Fatalf("Scan(\"USD 1.23\") failed: %v", err)
	}
	if got.String() != "USD 1.23" {
		t.Errorf("Scan(\"USD 1.23\") = %q", got)
	}

	v, err := got.Value()
	if err != nil {
		t.Fatalf("Value() failed: %v", err)
	}
	if v != "USD 1.23" {
		t.Errorf("Value() = %v, want %q", v, "USD 1.23")
	}

	if err := got.Scan(123); err == nil {
		t.Errorf("Scan(123) did not fail")
	}
}
