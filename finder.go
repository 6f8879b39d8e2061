package bigmath

import "math"

// AdaptiveIntegerFinder locates the minimal integer n >= MinIndex for which
// Predicate(n) holds, given that Predicate is monotonic: false for all n
// below some threshold, true for all n at or above it. It scans forward in
// exponentially growing steps to bracket the threshold cheaply, then
// bisects the bracket.
type AdaptiveIntegerFinder struct {
	MinIndex  int64
	Predicate func(n int64) (bool, error)
}

// Find runs the search, tagging any overflow with op for diagnostics.
func (f *AdaptiveIntegerFinder) Find(op string) (int64, error) {
	lo := f.MinIndex
	ok, err := f.Predicate(lo)
	if err != nil {
		return 0, err
	}
	if ok {
		return lo, nil
	}

	step := int64(1)
	hi := lo + step
	for {
		ok, err := f.Predicate(hi)
		if err != nil {
			return 0, err
		}
		if ok {
			break
		}
		lo = hi
		if step > math.MaxInt64/4 {
			return 0, newOverflowError(op, "adaptive integer finder exceeded int64 range while bracketing a threshold")
		}
		step *= 2
		hi = lo + step
	}

	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		ok, err := f.Predicate(mid)
		if err != nil {
			return 0, err
		}
		if ok {
			hi = mid
		} else {
			lo = mid
		}
	}
	return hi, nil
}
