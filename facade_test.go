package bigmath

import "testing"

func mustDecimal(t *testing.T, s string) *Decimal {
	t.Helper()
	d, err := NewFromString(s)
	if err != nil {
		t.Fatalf("NewFromString(%q): %v", s, err)
	}
	return d
}

func TestE(t *testing.T) {
	tests := []struct {
		precision uint32
		want      string
	}{
		{10, "2.718281828"},
		{1, "3"},
		{5, "2.7183"},
	}
	for _, tt := range tests {
		c := &Context{Precision: tt.precision, Rounding: RoundHalfEven}
		got, err := E(c)
		if err != nil {
			t.Fatalf("E(%d): %v", tt.precision, err)
		}
		want := mustDecimal(t, tt.want)
		if got.Cmp(want) != 0 {
			t.Errorf("E(%d) = %s, want %s", tt.precision, got, want)
		}
	}
}

func TestExpOne(t *testing.T) {
	c := &Context{Precision: 10, Rounding: RoundHalfEven}
	got, err := Exp(decimalOne, c)
	if err != nil {
		t.Fatalf("Exp(1): %v", err)
	}
	want := mustDecimal(t, "2.718281828")
	if got.Cmp(want) != 0 {
		t.Errorf("Exp(1, P=10) = %s, want %s", got, want)
	}
}

func TestExpZero(t *testing.T) {
	c := &Context{Precision: 10, Rounding: RoundHalfEven}
	got, err := Exp(decimalZero, c)
	if err != nil {
		t.Fatalf("Exp(0): %v", err)
	}
	if got.Cmp(decimalOne) != 0 {
		t.Errorf("Exp(0) = %s, want 1", got)
	}
}

func TestExpSignSymmetry(t *testing.T) {
	// round_P(exp(-x) * exp(x)) == 1, spec.md's sign-symmetry property.
	// Each factor is rounded to 20 digits, so their product can differ from 1
	// by up to about 1.5 units in the 20th digit; it is compared at 18.
	xs := []*Decimal{New(2, 0), New(-3, 0), New(5, -1), mustDecimal(t, "12.75")}
	c := &Context{Precision: 20, Rounding: RoundHalfEven}
	checkCtx := &Context{Precision: 18, Rounding: RoundHalfEven}
	for _, x := range xs {
		negX := new(Decimal).Neg(x)
		ex, err := Exp(x, c)
		if err != nil {
			t.Fatalf("Exp(%s): %v", x, err)
		}
		enx, err := Exp(negX, c)
		if err != nil {
			t.Fatalf("Exp(%s): %v", negX, err)
		}
		prod := new(Decimal)
		mulCtx := &Context{Precision: 20, Rounding: RoundHalfEven}
		if _, err := mulCtx.Mul(prod, ex, enx); err != nil {
			t.Fatalf("Mul: %v", err)
		}
		rounded := new(Decimal)
		if _, err := checkCtx.Round(rounded, prod); err != nil {
			t.Fatalf("Round: %v", err)
		}
		if rounded.Cmp(decimalOne) != 0 {
			t.Errorf("x=%s: exp(-x)*exp(x) rounded = %s, want 1", x, rounded)
		}
	}
}

func TestLn(t *testing.T) {
	tests := []struct {
		x    string
		prec uint32
		want string
	}{
		{"2", 10, "0.6931471806"},
		{"10", 10, "2.302585093"},
		{"1", 10, "0"},
		{"100", 15, "4.60517018598809"},
	}
	for _, tt := range tests {
		x := mustDecimal(t, tt.x)
		c := &Context{Precision: tt.prec, Rounding: RoundHalfEven}
		got, err := Ln(x, c)
		if err != nil {
			t.Fatalf("Ln(%s): %v", tt.x, err)
		}
		want := mustDecimal(t, tt.want)
		if got.Cmp(want) != 0 {
			t.Errorf("Ln(%s, P=%d) = %s, want %s", tt.x, tt.prec, got, want)
		}
	}
}

func TestLnDomain(t *testing.T) {
	c := &Context{Precision: 10, Rounding: RoundHalfEven}
	for _, x := range []*Decimal{decimalZero, New(-1, 0)} {
		if _, err := Ln(x, c); err == nil {
			t.Errorf("Ln(%s) should fail domain validation", x)
		}
	}
}

func TestLnBelowWindow(t *testing.T) {
	// x = 0.01 is well below the Gregory window [0.52, 1.92], exercising
	// the negative scaling-exponent branch.
	x := mustDecimal(t, "0.01")
	c := &Context{Precision: 12, Rounding: RoundHalfEven}
	got, err := Ln(x, c)
	if err != nil {
		t.Fatalf("Ln(0.01): %v", err)
	}
	want := mustDecimal(t, "-4.60517018599")
	if got.Cmp(want) != 0 {
		t.Errorf("Ln(0.01, P=12) = %s, want %s", got, want)
	}
}

func TestLog10(t *testing.T) {
	x := New(100, 0)
	c := &Context{Precision: 10, Rounding: RoundHalfEven}
	got, err := Log10(x, c)
	if err != nil {
		t.Fatalf("Log10(100): %v", err)
	}
	want := mustDecimal(t, "2.000000000")
	if got.Cmp(want) != 0 {
		t.Errorf("Log10(100, P=10) = %s, want %s", got, want)
	}
}

func TestLogArbitraryBase(t *testing.T) {
	b := New(3, 0)
	x := New(81, 0)
	c := &Context{Precision: 10, Rounding: RoundHalfEven}
	got, err := Log(b, x, c)
	if err != nil {
		t.Fatalf("Log(3, 81): %v", err)
	}
	want := mustDecimal(t, "4.000000000")
	if got.Cmp(want) != 0 {
		t.Errorf("Log(3, 81, P=10) = %s, want %s", got, want)
	}
}

func TestLogInvalidBase(t *testing.T) {
	c := &Context{Precision: 10, Rounding: RoundHalfEven}
	x := New(5, 0)
	for _, b := range []*Decimal{decimalOne, decimalZero, New(-2, 0)} {
		if _, err := Log(b, x, c); err == nil {
			t.Errorf("Log(base=%s, 5) should fail domain validation", b)
		}
	}
}

func TestLnExpRoundTrip(t *testing.T) {
	// round_P(exp(ln(x))) == x, spec.md's round-trip property, checked
	// at a coarser precision than the internal working precision so the
	// two-stage rounding error doesn't accumulate past the target.
	xs := []string{"2", "0.37", "1000", "0.0004"}
	c := &Context{Precision: 12, Rounding: RoundHalfEven}
	checkPrec := &Context{Precision: 8, Rounding: RoundHalfEven}
	for _, s := range xs {
		x := mustDecimal(t, s)
		lnx, err := Ln(x, c)
		if err != nil {
			t.Fatalf("Ln(%s): %v", s, err)
		}
		got, err := Exp(lnx, c)
		if err != nil {
			t.Fatalf("Exp(ln(%s)): %v", s, err)
		}
		gotRounded, wantRounded := new(Decimal), new(Decimal)
		if _, err := checkPrec.Round(gotRounded, got); err != nil {
			t.Fatalf("Round: %v", err)
		}
		if _, err := checkPrec.Round(wantRounded, x); err != nil {
			t.Fatalf("Round: %v", err)
		}
		if gotRounded.Cmp(wantRounded) != 0 {
			t.Errorf("exp(ln(%s)) = %s, want %s", s, gotRounded, wantRounded)
		}
	}
}

func TestPrecisionUnderflow(t *testing.T) {
	c := &Context{Precision: 0, Rounding: RoundHalfEven}
	if _, err := Ln(decimalOne, c); err == nil {
		t.Error("Ln with Precision=0 should fail")
	}
}
