package bigmath

// OrderComputer estimates the order of magnitude of a convergent series'
// total sum before any accumulation work begins, from its leading term
// alone. Every series this package builds (Gregory, Maclaurin) is
// monotonically decreasing in magnitude from its first term, so the
// leading term's order dominates the sum's order.
type OrderComputer struct {
	Term Term
}

// EstimateOrder returns a safe upper bound on the order of the series sum.
func (o OrderComputer) EstimateOrder() (int64, error) {
	return o.Term.OverestimateOrder(o.Term.MinIndex())
}

// OrderLower returns a conservative lower bound on the order of the series
// sum, allowing for cancellation between the leading term and the rest of
// the series.
func (o OrderComputer) OrderLower() (int64, error) {
	oe, err := o.EstimateOrder()
	if err != nil {
		return 0, err
	}
	if oe == OrderUndefined {
		return OrderUndefined, nil
	}
	return oe - 1, nil
}

// EstimateOrderExact reads the order of the leading term directly off its
// minimal-digit truncation (Term.ApproximateMinimal) instead of combining
// upper bounds algebraically, giving a tighter upper bound than
// EstimateOrder whenever the leading term doesn't truncate away to zero.
func (o OrderComputer) EstimateOrderExact() (int64, error) {
	lead, err := o.Term.ApproximateMinimal(o.Term.MinIndex())
	if err != nil {
		return 0, err
	}
	if lead.Sign() == 0 {
		return o.EstimateOrder()
	}
	return Order(lead), nil
}

// OrderLowerExact is OrderLower built from EstimateOrderExact.
func (o OrderComputer) OrderLowerExact() (int64, error) {
	oe, err := o.EstimateOrderExact()
	if err != nil {
		return 0, err
	}
	if oe == OrderUndefined {
		return OrderUndefined, nil
	}
	return oe - 1, nil
}

// CoarsePositionalAccuracy returns the reduced positional accuracy spec.md
// §4.2's coarse approximation is evaluated at: the series' lower-bound
// order run through strategy's leadingDigitPosition. The core always passes
// Positional, under which this is the lower-bound order unchanged; the
// indirection exists so a caller working in a different accuracy strategy
// gets the same coarse-evaluation mechanism.
func (o OrderComputer) CoarsePositionalAccuracy(strategy AccuracyStrategy) (int64, error) {
	lower, err := o.OrderLowerExact()
	if err != nil {
		return 0, err
	}
	if lower == OrderUndefined {
		return OrderUndefined, nil
	}
	return strategy.leadingDigitPosition(lower), nil
}
