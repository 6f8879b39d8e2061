package bigmath

// lnWindowLo and lnWindowHi bound the Gregory series' fast-converging
// window (spec.md §4.5): the inner tier is only evaluated directly for an
// argument inside [0.52, 1.92].
var (
	lnWindowLo = New(52, -2)
	lnWindowHi = New(192, -2)
)

// lnSearchGuardDigits is the number of extra digits of slack carried by the
// low-precision exp() evaluations used purely to locate the scaling
// exponent m (not the final result): comparisons only need to be decisive
// near the window boundary, not accurate to the caller's full precision.
const lnSearchGuardDigits = 30

// lnInner evaluates the Gregory logarithm
//
//	ln(y) = 2 * sum_{n>=0} r^(2n+1)/(2n+1),  r = (y-1)/(y+1)
//
// for y already inside the fast-converging window, to positional accuracy
// p. The series' per-term ratio is <= 1/10 on this window, so the required
// term count is found with the optimized negligibility rule (spec.md §4.5).
func lnInner(y *Decimal, p int64) (*Decimal, error) {
	const op = "lnInner"
	rPrec, err := positionToPrecision(op, 0, p, 6)
	if err != nil {
		return nil, err
	}
	rc := &Context{Precision: rPrec, Rounding: RoundDown}
	num, den := new(Decimal), new(Decimal)
	ed := NewErrDecimal(rc)
	ed.Sub(num, y, decimalOne)
	ed.Add(den, y, decimalOne)
	if ed.Err() != nil {
		return nil, wrapErr(op, ed.Err())
	}
	if num.Sign() == 0 {
		return New(0, int32(p)), nil
	}
	r := new(Decimal)
	ed.Quo(r, num, den)
	if ed.Err() != nil {
		return nil, wrapErr(op, ed.Err())
	}

	sAcc, err := subInt32Checked(op, p, 1)
	if err != nil {
		return nil, err
	}
	engine := NewSeriesEngine(newGregoryTerm(r)).WithOptimized(true)
	s, err := engine.Sum(op, sAcc)
	if err != nil {
		return nil, err
	}
	if s.Sign() == 0 {
		return New(0, int32(p)), nil
	}

	prec, err := positionToPrecision(op, Order(s)+1, p, 2)
	if err != nil {
		return nil, err
	}
	mc := &Context{Precision: prec, Rounding: RoundDown}
	result := new(Decimal)
	if _, err := mc.Mul(result, s, decimalTwo); err != nil {
		return nil, wrapErr(op, err)
	}
	return result, nil
}

// LnApproximator is a reusable binding of ln to a fixed argument x, per
// spec.md §6's "Factory construction". The scaling exponent m is memoized
// (write-once) the first time it's needed, then reused by every later call
// to Order or Approximate, the way spec.md §4.5 describes.
type LnApproximator struct {
	x    *Decimal
	m    int64
	mSet bool
}

// NewLnApproximator returns an LnApproximator bound to x.
func NewLnApproximator(x *Decimal) *LnApproximator {
	return &LnApproximator{x: new(Decimal).Set(x)}
}

// scalingExponent returns the smallest-magnitude integer m such that
// x*e^(-m) lies inside the Gregory window, computing and caching it on
// first use (spec.md §4.5 step 1).
func (a *LnApproximator) scalingExponent() (int64, error) {
	if a.mSet {
		return a.m, nil
	}
	const op = "LnApproximator.scalingExponent"

	if a.x.Cmp(lnWindowLo) >= 0 && a.x.Cmp(lnWindowHi) <= 0 {
		a.m, a.mSet = 0, true
		return 0, nil
	}

	above := a.x.Cmp(lnWindowHi) > 0
	p0, err := subInt32Checked(op, OverestimateOrder(a.x), lnSearchGuardDigits)
	if err != nil {
		return 0, err
	}

	finder := &AdaptiveIntegerFinder{
		MinIndex: 0,
		Predicate: func(i int64) (bool, error) {
			arg := New(i, 0)
			if !above {
				arg = New(-i, 0)
			}
			e, err := ExpApprox(arg, p0)
			if err != nil {
				return false, err
			}
			if above {
				return e.Cmp(a.x) >= 0, nil
			}
			return e.Cmp(a.x) <= 0, nil
		},
	}
	i, err := finder.Find(op)
	if err != nil {
		return 0, err
	}
	m := i
	if !above {
		m = -i
	}

	// Border resolution (spec.md §4.5 step 1): the finder guarantees
	// x*e^-m no longer lies on the side it started from, but it can still
	// land outside the window on the other side (for x above the window,
	// x*e^-m falls in (1/e, 1] and may be below 0.52); nudge m until it
	// doesn't.
	for iter := 0; iter < 4; iter++ {
		y, err := a.reduceBy(m, p0)
		if err != nil {
			return 0, err
		}
		if y.Cmp(lnWindowHi) <= 0 && y.Cmp(lnWindowLo) >= 0 {
			break
		}
		if y.Cmp(lnWindowHi) > 0 {
			m++
		} else {
			m--
		}
	}

	a.m, a.mSet = m, true
	return m, nil
}

// reduceBy returns x*e^(-m) computed to positional accuracy p.
func (a *LnApproximator) reduceBy(m int64, p int64) (*Decimal, error) {
	const op = "LnApproximator.reduceBy"
	em, err := ExpApprox(New(-m, 0), p)
	if err != nil {
		return nil, err
	}
	prec, err := positionToPrecision(op, OverestimateOrder(a.x), p, 4)
	if err != nil {
		return nil, err
	}
	mc := &Context{Precision: prec, Rounding: RoundDown}
	y := new(Decimal)
	if _, err := mc.Mul(y, a.x, em); err != nil {
		return nil, wrapErr(op, err)
	}
	return y, nil
}

// Approximate returns ln(x) to positional accuracy p (spec.md §4.5 steps
// 2-3).
func (a *LnApproximator) Approximate(p int64) (*Decimal, error) {
	const op = "LnApproximator.Approximate"
	m, err := a.scalingExponent()
	if err != nil {
		return nil, err
	}
	if m == 0 {
		return lnInner(a.x, p)
	}

	pad := OverestimateOrder(a.x) + 1 // padding for the subtraction inside the inner series
	yAcc, err := subInt32Checked(op, p, pad)
	if err != nil {
		return nil, err
	}
	y, err := a.reduceBy(m, yAcc)
	if err != nil {
		return nil, err
	}
	inner, err := lnInner(y, yAcc)
	if err != nil {
		return nil, err
	}

	order := OverestimateOrderOfInt64(m)
	if inner.Sign() != 0 {
		if io := OverestimateOrder(inner); io > order {
			order = io
		}
	}
	prec, err := positionToPrecision(op, order, p, 4)
	if err != nil {
		return nil, err
	}
	sc := &Context{Precision: prec, Rounding: RoundDown}
	result := new(Decimal)
	// y = x * e^(-m), so x = y * e^m and ln(x) = ln_inner(y) + m.
	if _, err := sc.Add(result, inner, New(m, 0)); err != nil {
		return nil, wrapErr(op, err)
	}
	return result, nil
}

// Order returns a safe estimate of Order(ln(x)) (spec.md §4.5's order
// estimation).
func (a *LnApproximator) Order() (int64, error) {
	m, err := a.scalingExponent()
	if err != nil {
		return 0, err
	}
	if m != 0 {
		return OrderOfInt64(m) - 1, nil
	}

	// m == 0: defer to the inner Gregory series' order computer, the way
	// ordercomputer.go estimates any series' order from its leading term,
	// then refine by actually evaluating the inner ln at that coarse
	// accuracy and reading off the real order.
	const op = "LnApproximator.Order"
	rPrec, err := positionToPrecision(op, 0, 0, 8)
	if err != nil {
		return 0, err
	}
	rc := &Context{Precision: rPrec, Rounding: RoundDown}
	num, den := new(Decimal), new(Decimal)
	ed := NewErrDecimal(rc)
	ed.Sub(num, a.x, decimalOne)
	if ed.Err() != nil {
		return 0, wrapErr(op, ed.Err())
	}
	if num.Sign() == 0 {
		return OrderUndefined, nil // x == 1: ln(x) == 0 exactly
	}
	ed.Add(den, a.x, decimalOne)
	r := new(Decimal)
	ed.Quo(r, num, den)
	if ed.Err() != nil {
		return 0, wrapErr(op, ed.Err())
	}

	oc := OrderComputer{Term: newGregoryTerm(r)}
	lower, err := oc.CoarsePositionalAccuracy(Positional)
	if err != nil {
		return 0, err
	}
	coarse, err := lnInner(a.x, lower)
	if err != nil {
		return 0, err
	}
	if coarse.Sign() == 0 {
		return lower, nil
	}
	return Order(coarse), nil
}
