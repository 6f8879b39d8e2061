package bigmath

// SeriesEngine drives a Term through however many terms are needed to reach
// a target positional accuracy, then sums them with the configured
// Accumulator. It is the one place the per-function cores (ln, exp, log, e)
// delegate convergence and summation to.
type SeriesEngine struct {
	Term        Term
	Accumulator Accumulator

	// Optimized selects the negligibility rule used by RequiredTerms (spec.md
	// §4.2). Callers set this to true only once their domain reduction has
	// established decimal-linear convergence (each |R_n+1| <= (1/10)|R_n|),
	// which lets the required-term search stop as soon as a term's order
	// drops below p, with a single guard digit. False (the default) is safe
	// for any convergent series: it additionally budgets one ULP of
	// round-off per term already counted, since N isn't known in advance to
	// be decimal-linear.
	Optimized bool
}

// NewSeriesEngine returns a SeriesEngine over term, summing sequentially in
// non-optimized mode. Use WithAccumulator to opt into the parallel strategy
// and set Optimized directly once the caller has a convergence guarantee.
func NewSeriesEngine(term Term) *SeriesEngine {
	return &SeriesEngine{Term: term, Accumulator: SequentialAccumulator{}}
}

// WithAccumulator returns a copy of s using acc to sum terms.
func (s *SeriesEngine) WithAccumulator(acc Accumulator) *SeriesEngine {
	n := *s
	n.Accumulator = acc
	return &n
}

// WithOptimized returns a copy of s using the optimized negligibility rule.
func (s *SeriesEngine) WithOptimized(opt bool) *SeriesEngine {
	n := *s
	n.Optimized = opt
	return &n
}

// RequiredTerms returns the minimal N such that every term at index >= N is
// negligible relative to target positional accuracy p: its magnitude never
// reaches 10^p.
func (s *SeriesEngine) RequiredTerms(op string, p int64) (int64, error) {
	minIdx := s.Term.MinIndex()
	finder := &AdaptiveIntegerFinder{
		MinIndex: minIdx,
		Predicate: func(n int64) (bool, error) {
			oe, err := s.Term.OverestimateOrder(n)
			if err != nil {
				return false, err
			}
			if oe == OrderUndefined {
				return true, nil
			}
			threshold := p
			if s.Optimized {
				t, err := subInt32Checked(op, p, 1)
				if err != nil {
					return false, err
				}
				threshold = t
			} else if rel := n - minIdx; rel > 0 {
				t, err := subInt32Checked(op, p, OverestimateOrderOfInt64(rel))
				if err != nil {
					return false, err
				}
				threshold = t
			}
			return oe < threshold, nil
		},
	}
	return finder.Find(op)
}

// Sum returns the series total, accurate to positional accuracy p.
func (s *SeriesEngine) Sum(op string, p int64) (*Decimal, error) {
	n, err := s.RequiredTerms(op, p)
	if err != nil {
		return nil, err
	}
	minIdx := s.Term.MinIndex()
	count := n - minIdx
	if count <= 0 {
		return New(0, int32(p)), nil
	}

	// Per-term positional accuracy q: summing `count` values each already
	// accurate to 10^q must not let their combined rounding error reach
	// 10^p. Budgeting one extra digit of headroom per term via its order
	// keeps the total rounding error within 10^p.
	oterms := OverestimateOrderOfInt64(count)
	q, err := subInt32Checked(op, p, oterms+1)
	if err != nil {
		return nil, err
	}

	sum, err := s.Accumulator.Accumulate(s.Term, minIdx, n, q)
	if err != nil {
		return nil, err
	}
	if sum.Sign() == 0 {
		return New(0, int32(p)), nil
	}

	order := Order(sum)
	prec, err := positionToPrecision(op, order, p, 0)
	if err != nil {
		if _, ok := err.(*PrecisionUnderflowError); ok {
			return New(0, int32(p)), nil
		}
		return nil, err
	}
	ctx := &Context{Precision: prec, Rounding: RoundDown}
	result := new(Decimal)
	if _, err := ctx.Round(result, sum); err != nil {
		return nil, wrapErr(op, err)
	}
	return result, nil
}
