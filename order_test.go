package bigmath

import "testing"

func TestOrderBasic(t *testing.T) {
	tests := []struct {
		x    *Decimal
		want int64
	}{
		{New(1, 0), 0},
		{New(9, 0), 0},
		{New(10, 0), 1},
		{New(999, 0), 2},
		{New(1, -2), -2},  // 0.01
		{New(-5, 0), 0},
		{New(-100, 0), 2},
	}
	for _, tt := range tests {
		got := Order(tt.x)
		if got != tt.want {
			t.Errorf("Order(%s) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestOrderUndefinedAtZero(t *testing.T) {
	if got := Order(decimalZero); got != OrderUndefined {
		t.Errorf("Order(0) = %d, want OrderUndefined", got)
	}
	if got := OverestimateOrder(decimalZero); got != OrderUndefined {
		t.Errorf("OverestimateOrder(0) = %d, want OrderUndefined", got)
	}
}

// TestOrderMonotonicity checks spec.md's invariant that OverestimateOrder is
// always a safe upper bound on the exact Order, for every nonzero value.
func TestOrderMonotonicity(t *testing.T) {
	xs := []*Decimal{
		New(1, 0), New(9, 0), New(10, 0), New(11, 0), New(100, 0),
		New(-7, 0), New(3, -4), New(12345, -2), New(1, 10), New(1, -10),
	}
	for _, x := range xs {
		o := Order(x)
		oe := OverestimateOrder(x)
		if oe < o {
			t.Errorf("OverestimateOrder(%s) = %d < Order(%s) = %d", x, oe, x, o)
		}
	}
}

func TestOverestimateOrderExactPowerOfTen(t *testing.T) {
	// An exact power of ten is its own tight upper bound: Order == OverestimateOrder.
	for _, x := range []*Decimal{New(1, 0), New(10, 0), New(1, 3), New(1, -3)} {
		o := Order(x)
		oe := OverestimateOrder(x)
		if oe != o {
			t.Errorf("x=%s: OverestimateOrder=%d, Order=%d, want equal for exact power of ten", x, oe, o)
		}
	}
}

func TestCombineOrderHelpers(t *testing.T) {
	if got := combineOrderProduct(3, 4); got != 7 {
		t.Errorf("combineOrderProduct(3,4) = %d, want 7", got)
	}
	if got := combineOrderQuotient(7, 2); got != 5 {
		t.Errorf("combineOrderQuotient(7,2) = %d, want 5", got)
	}
	if got := combineOrderPower(2, 3); got != 6 {
		t.Errorf("combineOrderPower(2,3) = %d, want 6", got)
	}
	if got := combineOrderPower(5, 0); got != 0 {
		t.Errorf("combineOrderPower(5,0) = %d, want 0", got)
	}
}
