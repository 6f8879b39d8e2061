package bigmath

import "math/big"

// overestimateOrderOfSmallPower returns a safe upper bound on
// Order(base^m) for a small fixed integer base (2 or 3, as exp.go uses to
// bound e^k without ever materializing e^k itself) and any integer exponent
// m, positive, negative or zero. The bound is exact integer arithmetic: it
// computes base^|m| as a big.Int and reads its digit count, so it never
// depends on a floating-point logarithm.
//
// For m < 0, base^m = 1/base^|m|. base^|m| is never an exact power of ten
// for base in {2,3} and |m| > 0, so Order(1/y) = -Order(y)-1 exactly; using
// -Order(y) instead keeps the bound safely on the "upper" side, at the cost
// of at most one spare guard digit.
func overestimateOrderOfSmallPower(base, m int64) int64 {
	if m == 0 {
		return 0
	}
	abs := m
	neg := false
	if abs < 0 {
		abs = -abs
		neg = true
	}
	pow := new(big.Int).Exp(big.NewInt(base), big.NewInt(abs), nil)
	o := Order(NewWithBigInt(pow, 0))
	if neg {
		return -o
	}
	return o
}

// overestimateReciprocalOrder returns a safe upper bound on Order(1/x) for
// x != 0, without computing the reciprocal: -Order(x) is always >= the true
// Order(1/x), with equality when |x| is an exact power of ten.
func overestimateReciprocalOrder(x *Decimal) int64 {
	return -Order(x)
}

// expOrderUpperBound returns a safe upper bound on Order(e^y) for y >= 0,
// using the same exact-integer technique as overestimateOrderOfSmallPower:
// e^y <= 3^ceil(y) since e < 3, and 3^ceil(y) is computed exactly as a
// big.Int rather than via a floating-point logarithm.
func expOrderUpperBound(op string, y *Decimal) (int64, error) {
	if y.Sign() == 0 {
		return 0, nil
	}
	k, err := decimalFloorInt64(op, y)
	if err != nil {
		return 0, err
	}
	integ, frac := new(Decimal), new(Decimal)
	y.Modf(integ, frac)
	if frac.Sign() != 0 {
		k, err = addInt32Checked(op, k, 1)
		if err != nil {
			return 0, err
		}
	}
	return overestimateOrderOfSmallPower(3, k), nil
}
