package bigmath

// positiveReals is the domain (0, +inf) shared by ln, log10 and log's
// argument. Built once at package init: its bounds are fixed constants, so
// construction can never fail at runtime.
var positiveReals *Interval

func init() {
	iv, err := NewInterval(OpenAbove, decimalZero, nil)
	if err != nil {
		panic(err)
	}
	positiveReals = iv
}

// validatePositive reports a DomainError if x does not fall in (0, +inf).
func validatePositive(op, operand string, x *Decimal) error {
	if !positiveReals.Contains(x) {
		return newDomainError(op, operand, "must be strictly positive")
	}
	return nil
}

// validateLogBase reports a DomainError if base is not a valid logarithm
// base: strictly positive and not equal to 1.
func validateLogBase(op string, base *Decimal) error {
	if err := validatePositive(op, "base", base); err != nil {
		return err
	}
	if base.Cmp(decimalOne) == 0 {
		return newDomainError(op, "base", "must not equal 1")
	}
	return nil
}
