package bigmath

// IntervalKind tags which endpoints of an Interval are present and whether
// each present endpoint is open or closed. Unbounded sides carry no
// Decimal; the zero value of the missing bound is never consulted.
type IntervalKind int

const (
	// Open is (lo, hi).
	Open IntervalKind = iota
	// ClosedOpen is [lo, hi).
	ClosedOpen
	// OpenClosed is (lo, hi].
	OpenClosed
	// Closed is [lo, hi].
	Closed
	// OpenAbove is (lo, +inf).
	OpenAbove
	// ClosedAbove is [lo, +inf).
	ClosedAbove
	// OpenBelow is (-inf, hi).
	OpenBelow
	// ClosedBelow is (-inf, hi].
	ClosedBelow
	// Unbounded is (-inf, +inf): every Decimal is a member.
	Unbounded
)

// Interval is a tagged datum describing a validity region for a domain
// check: which bounds exist, whether they're inclusive, and the endpoint
// values themselves. It is validated once at construction time so every
// later membership test is a handful of comparisons with no further error
// path.
type Interval struct {
	kind   IntervalKind
	lo, hi *Decimal
}

// NewInterval validates and constructs an Interval. lo/hi must be non-nil
// exactly when kind requires that side to be bounded, and lo must not
// exceed hi when both are present.
func NewInterval(kind IntervalKind, lo, hi *Decimal) (*Interval, error) {
	const op = "NewInterval"
	needsLo := kind == Open || kind == ClosedOpen || kind == OpenClosed || kind == Closed || kind == OpenAbove || kind == ClosedAbove
	needsHi := kind == Open || kind == ClosedOpen || kind == OpenClosed || kind == Closed || kind == OpenBelow || kind == ClosedBelow

	if needsLo && lo == nil {
		return nil, newInvariantError(op, "interval kind requires a lower bound")
	}
	if !needsLo && lo != nil {
		return nil, newInvariantError(op, "interval kind has no lower bound but one was given")
	}
	if needsHi && hi == nil {
		return nil, newInvariantError(op, "interval kind requires an upper bound")
	}
	if !needsHi && hi != nil {
		return nil, newInvariantError(op, "interval kind has no upper bound but one was given")
	}
	if needsLo && needsHi {
		if lo.Cmp(hi) > 0 {
			return nil, newInvariantError(op, "lower bound exceeds upper bound")
		}
		if lo.Cmp(hi) == 0 && (kind == Open || kind == ClosedOpen || kind == OpenClosed) {
			return nil, newInvariantError(op, "degenerate interval with an open endpoint")
		}
	}
	return &Interval{kind: kind, lo: lo, hi: hi}, nil
}

// Contains reports whether x falls within iv.
func (iv *Interval) Contains(x *Decimal) bool {
	switch iv.kind {
	case Open:
		return x.Cmp(iv.lo) > 0 && x.Cmp(iv.hi) < 0
	case ClosedOpen:
		return x.Cmp(iv.lo) >= 0 && x.Cmp(iv.hi) < 0
	case OpenClosed:
		return x.Cmp(iv.lo) > 0 && x.Cmp(iv.hi) <= 0
	case Closed:
		return x.Cmp(iv.lo) >= 0 && x.Cmp(iv.hi) <= 0
	case OpenAbove:
		return x.Cmp(iv.lo) > 0
	case ClosedAbove:
		return x.Cmp(iv.lo) >= 0
	case OpenBelow:
		return x.Cmp(iv.hi) < 0
	case ClosedBelow:
		return x.Cmp(iv.hi) <= 0
	case Unbounded:
		return true
	default:
		return false
	}
}
