package bigmath

// LogApproximator is a reusable binding of log_b to fixed arguments (b, x),
// per spec.md §6's "Factory construction". It composes two LnApproximator
// instances (spec.md §4.6's "LogApprox uses two LnApprox instances"),
// passed by value into this constructor rather than looked up from a
// registry (spec.md §9's "Self-reference" note).
type LogApproximator struct {
	lnB, lnX *LnApproximator
}

// NewLogApproximator returns a LogApproximator computing log base b of x.
func NewLogApproximator(b, x *Decimal) *LogApproximator {
	return &LogApproximator{lnB: NewLnApproximator(b), lnX: NewLnApproximator(x)}
}

// NewLog10Approximator returns a LogApproximator computing the base-10
// logarithm of x. It is the general log_b construction with b fixed to 10
// (spec.md §4.6 folds this into its own specialization for a shaved guard
// digit; this module keeps the single general formula instead, see
// DESIGN.md).
func NewLog10Approximator(x *Decimal) *LogApproximator {
	return &LogApproximator{lnB: NewLnApproximator(decimalTen), lnX: NewLnApproximator(x)}
}

// Order returns a safe estimate of Order(log_b(x)) (spec.md §4.6).
func (a *LogApproximator) Order() (int64, error) {
	oa, err := a.lnX.Order()
	if err != nil {
		return 0, err
	}
	if oa == OrderUndefined {
		return OrderUndefined, nil // x == 1: log_b(x) == 0 exactly
	}
	ob, err := a.lnB.Order()
	if err != nil {
		return 0, err
	}
	if ob == OrderUndefined {
		return 0, newInvariantError("LogApproximator.Order", "ln(base) is exactly zero")
	}
	o, err := subInt32Checked("LogApproximator.Order", oa, ob)
	if err != nil {
		return 0, err
	}
	return o - 1, nil
}

// Approximate returns log_b(x) to positional accuracy p (spec.md §4.6).
func (a *LogApproximator) Approximate(p int64) (*Decimal, error) {
	const op = "LogApproximator.Approximate"
	oa, err := a.lnX.Order()
	if err != nil {
		return nil, err
	}
	ob, err := a.lnB.Order()
	if err != nil {
		return nil, err
	}
	if ob == OrderUndefined {
		return nil, newInvariantError(op, "ln(base) is exactly zero")
	}
	if oa == OrderUndefined {
		return New(0, int32(p)), nil
	}

	numAcc, err := subInt32Checked(op, p, ob+2)
	if err != nil {
		return nil, err
	}
	twoOb, err := addInt32Checked(op, ob, ob)
	if err != nil {
		return nil, err
	}
	denAcc, err := subInt32Checked(op, p, oa-twoOb+2)
	if err != nil {
		return nil, err
	}

	num, err := a.lnX.Approximate(numAcc)
	if err != nil {
		return nil, err
	}
	den, err := a.lnB.Approximate(denAcc)
	if err != nil {
		return nil, err
	}
	if den.Sign() == 0 {
		return nil, newInvariantError(op, "ln(base) rounded to exactly zero at working precision")
	}

	order := oa - ob
	prec, err := positionToPrecision(op, order, p, 4)
	if err != nil {
		return nil, err
	}
	qc := &Context{Precision: prec, Rounding: RoundDown}
	result := new(Decimal)
	if _, err := qc.Quo(result, num, den); err != nil {
		return nil, wrapErr(op, err)
	}
	return result, nil
}
