package bigmath

import "math/big"

// OrderUndefined is the sentinel Order returned for a zero value. Spec
// treats this as a stand-in for -infinity: callers must never feed it back
// into arithmetic as though it were a finite integer. It must branch on
// Sign() == 0 explicitly before consuming an Order.
const OrderUndefined = int64(-1) << 62

// Order returns the base-10 exponent k such that 10^k <= |x| < 10^(k+1),
// i.e. precision(x) - scale(x) - 1. Order is undefined for x == 0; callers
// must check x.Sign() first.
func Order(x *Decimal) int64 {
	if x.Sign() == 0 {
		return OrderUndefined
	}
	return x.NumDigits() + int64(x.Exponent) - 1
}

// OrderOfInt64 is Order applied to the integer n treated as an exact
// Decimal with Exponent 0 (as used for series indices and term counts).
func OrderOfInt64(n int64) int64 {
	if n == 0 {
		return OrderUndefined
	}
	return Order(New(n, 0))
}

// isExactPowerOfTen reports whether |coeff| is 1, 10, 100, ... i.e. whether
// the Decimal it backs is an exact power of ten.
func isExactPowerOfTen(coeff *big.Int) bool {
	abs := coeff
	if coeff.Sign() < 0 {
		abs = new(big.Int).Abs(coeff)
	}
	if abs.Sign() == 0 {
		return false
	}
	q := new(big.Int).Set(abs)
	m := new(big.Int)
	for q.Cmp(bigOne) != 0 {
		q.QuoRem(q, bigTen, m)
		if m.Sign() != 0 {
			return false
		}
	}
	return true
}

// OverestimateOrder returns Order(x) when |x| is exactly a power of ten,
// otherwise Order(x)+1. It is a safe upper bound on Order(x): it never
// erodes an error budget by rounding an order estimate downward. Undefined
// for x == 0.
func OverestimateOrder(x *Decimal) int64 {
	o := Order(x)
	if o == OrderUndefined {
		return OrderUndefined
	}
	if isExactPowerOfTen(&x.Coeff) {
		return o
	}
	return o + 1
}

// OverestimateOrderOfInt64 is OverestimateOrder applied to n treated as an
// exact Decimal with Exponent 0.
func OverestimateOrderOfInt64(n int64) int64 {
	if n == 0 {
		return OrderUndefined
	}
	return OverestimateOrder(New(n, 0))
}

// combineOrderProduct returns a safe upper bound on OverestimateOrder(a*b)
// given upper bounds oa, ob on Order(a), Order(b): since a <= 10^oa and
// b <= 10^ob, a*b <= 10^(oa+ob).
func combineOrderProduct(oa, ob int64) int64 {
	return oa + ob
}

// combineOrderQuotient returns a safe upper bound on OverestimateOrder(a/b)
// given an upper bound oa on Order(a) and the EXACT Order ob of b (b must be
// an exactly known value, such as a factorial or small integer, so that
// b >= 10^ob is a valid lower bound): a/b <= 10^oa / 10^ob = 10^(oa-ob).
func combineOrderQuotient(oa, ob int64) int64 {
	return oa - ob
}

// combineOrderPower returns a safe upper bound on OverestimateOrder(x^n)
// given an upper bound o on Order(x) (x > 0) and an exponent n >= 0:
// x <= 10^o implies x^n <= 10^(o*n).
func combineOrderPower(o, n int64) int64 {
	if n == 0 {
		return 0
	}
	return o * n
}
