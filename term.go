package bigmath

// Term is a single addend family of a convergent series: T(n) for
// n = minIndex, minIndex+1, .... Implementations own whatever closed-form
// or recursive value T(n) represents (1/n!, x^n/n!, a Gregory power) and are
// responsible for computing it to a caller-chosen positional accuracy
// without ever materializing more precision than that accuracy calls for.
type Term interface {
	// Approximate returns T(n) truncated toward zero at positional
	// accuracy p: the returned value differs from the true T(n) by less
	// than 10^p in magnitude. p is typically negative (a fractional
	// accuracy target); the term's own magnitude may be smaller than 10^p,
	// in which case the returned Decimal may be exactly zero.
	Approximate(n int64, p int64) (*Decimal, error)

	// ApproximateMinimal returns T(n) truncated toward zero to exactly one
	// significant digit: the cheapest nonzero approximation Approximate can
	// ever produce. Used to read off a term's order directly instead of
	// combining upper bounds algebraically.
	ApproximateMinimal(n int64) (*Decimal, error)

	// OverestimateOrder returns a safe upper bound on Order(T(n)): a value
	// o such that |T(n)| <= 10^o. Used to decide when T(n) has become
	// negligible relative to a target accuracy, and to size the working
	// precision Approximate needs internally.
	OverestimateOrder(n int64) (int64, error)

	// MinIndex is the first n for which T(n) is defined.
	MinIndex() int64
}
