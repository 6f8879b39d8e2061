package bigmath

// approximator is the minimal capability every function core exposes to the
// facade (spec.md §3 "Lifecycles", §6): an order estimate, used to convert
// the caller's requested significant-digit precision into a positional
// accuracy, and the ability to compute a result to any positional accuracy
// directly (spec.md §6's "Factory construction" bypasses the conversion by
// calling this method itself).
type approximator interface {
	Order() (int64, error)
	Approximate(p int64) (*Decimal, error)
}

// runFacade implements spec.md §4.9: it asks a for its order, derives a
// positional accuracy p from (c.Precision, order), asks a for a result
// accurate to p, then rounds that result to c.Precision significant digits
// using c.Rounding.
func runFacade(op string, c *Context, a approximator) (*Decimal, error) {
	if c.Precision == 0 {
		return nil, newPrecisionUnderflowError(op, 0)
	}

	order, err := a.Order()
	if err != nil {
		return nil, err
	}
	if order == OrderUndefined {
		// The result is exactly zero (ln(1), log_b(1)): no series work
		// needed, and Order(0) is undefined by construction (spec.md §4.1).
		result := new(Decimal)
		if _, err := c.Round(result, decimalZero); err != nil {
			return nil, wrapErr(op, err)
		}
		return result, nil
	}

	lead, err := addInt32Checked(op, order, 1)
	if err != nil {
		return nil, err
	}
	p, err := subInt32Checked(op, lead, int64(c.Precision))
	if err != nil {
		return nil, err
	}
	// POSITIONAL accuracy strategy's one-digit safety margin (spec.md §3):
	// the facade always converts from a significant-digit request, so it
	// always pays this margin before calling into the approximator.
	p, err = Positional.adjust(op, p)
	if err != nil {
		return nil, err
	}

	raw, err := a.Approximate(p)
	if err != nil {
		return nil, err
	}
	result := new(Decimal)
	if _, err := c.Round(result, raw); err != nil {
		return nil, wrapErr(op, err)
	}
	return result, nil
}

// Ln returns the natural logarithm of x, correctly rounded to c.Precision
// significant digits using c.Rounding. x must be strictly positive.
func Ln(x *Decimal, c *Context) (*Decimal, error) {
	const op = "Ln"
	if err := validatePositive(op, "x", x); err != nil {
		return nil, err
	}
	return runFacade(op, c, NewLnApproximator(x))
}

// Log10 returns the base-10 logarithm of x. x must be strictly positive.
func Log10(x *Decimal, c *Context) (*Decimal, error) {
	const op = "Log10"
	if err := validatePositive(op, "x", x); err != nil {
		return nil, err
	}
	return runFacade(op, c, NewLog10Approximator(x))
}

// Log returns the base-b logarithm of x. b must be strictly positive and
// not equal to 1; x must be strictly positive.
func Log(b, x *Decimal, c *Context) (*Decimal, error) {
	const op = "Log"
	if err := validateLogBase(op, b); err != nil {
		return nil, err
	}
	if err := validatePositive(op, "x", x); err != nil {
		return nil, err
	}
	return runFacade(op, c, NewLogApproximator(b, x))
}

// Exp returns e**x, correctly rounded to c.Precision significant digits
// using c.Rounding. exp is total on the reals.
func Exp(x *Decimal, c *Context) (*Decimal, error) {
	const op = "Exp"
	return runFacade(op, c, NewExpApproximator(x))
}

// E returns Euler's number accurate to c.Precision significant digits.
func E(c *Context) (*Decimal, error) {
	return runFacade("E", c, eApproximator{})
}

// eApproximator adapts eCore to the approximator interface. Its order is
// always 0 (spec.md §4.7: e ~= 2.718, a single leading digit).
type eApproximator struct{}

func (eApproximator) Order() (int64, error)                 { return 0, nil }
func (eApproximator) Approximate(p int64) (*Decimal, error) { return eCore(p) }
