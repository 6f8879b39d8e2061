package bigmath

import (
	"runtime"
	"sync"
)

// Accumulator sums term(minIndex)..term(n-1), each truncated to positional
// accuracy q, into a single Decimal. Implementations choose how the work is
// scheduled; the result must not depend on scheduling order.
type Accumulator interface {
	Accumulate(term Term, minIndex, n int64, q int64) (*Decimal, error)
}

// accumulatorPrecision picks a working Context precision wide enough to
// hold the full sum (from the leading term's order down to q) with a few
// guard digits for the running additions.
func accumulatorPrecision(op string, term Term, q int64) (uint32, error) {
	oc := OrderComputer{Term: term}
	lead, err := oc.EstimateOrder()
	if err != nil {
		return 0, err
	}
	if lead == OrderUndefined {
		return 1, nil
	}
	prec, err := positionToPrecision(op, lead, q, 4)
	if err != nil {
		if _, ok := err.(*PrecisionUnderflowError); ok {
			return 1, nil
		}
		return 0, err
	}
	return prec, nil
}

// SequentialAccumulator sums terms one at a time in index order.
type SequentialAccumulator struct{}

// Accumulate implements Accumulator.
func (SequentialAccumulator) Accumulate(term Term, minIndex, n int64, q int64) (*Decimal, error) {
	const op = "SequentialAccumulator.Accumulate"
	prec, err := accumulatorPrecision(op, term, q)
	if err != nil {
		return nil, err
	}
	ctx := &Context{Precision: prec, Rounding: RoundHalfEven}
	sum := New(0, 0)
	for i := minIndex; i < n; i++ {
		t, err := term.Approximate(i, q)
		if err != nil {
			return nil, err
		}
		if _, err := ctx.Add(sum, sum, t); err != nil {
			return nil, wrapErr(op, err)
		}
	}
	return sum, nil
}

// ParallelAccumulator splits [minIndex, n) into Workers contiguous chunks,
// computes each chunk's partial sum on its own goroutine, then combines the
// partial sums in a fixed chunk order. Combining in chunk order rather than
// completion order keeps the result identical regardless of how the
// goroutines happen to be scheduled.
type ParallelAccumulator struct {
	// Workers bounds the number of goroutines used. A value <= 0 means
	// runtime.GOMAXPROCS(0).
	Workers int
}

// Accumulate implements Accumulator.
func (a ParallelAccumulator) Accumulate(term Term, minIndex, n int64, q int64) (*Decimal, error) {
	const op = "ParallelAccumulator.Accumulate"
	total := n - minIndex
	if total <= 0 {
		return New(0, 0), nil
	}

	workers := a.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if int64(workers) > total {
		workers = int(total)
	}
	if workers < 1 {
		workers = 1
	}

	prec, err := accumulatorPrecision(op, term, q)
	if err != nil {
		return nil, err
	}

	chunk := total / int64(workers)
	rem := total % int64(workers)

	partials := make([]*Decimal, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup

	start := minIndex
	for w := 0; w < workers; w++ {
		size := chunk
		if int64(w) < rem {
			size++
		}
		lo, hi := start, start+size
		start = hi

		wg.Add(1)
		go func(w int, lo, hi int64) {
			defer wg.Done()
			ctx := &Context{Precision: prec, Rounding: RoundHalfEven}
			local := New(0, 0)
			for i := lo; i < hi; i++ {
				t, err := term.Approximate(i, q)
				if err != nil {
					errs[w] = err
					return
				}
				if _, err := ctx.Add(local, local, t); err != nil {
					errs[w] = wrapErr(op, err)
					return
				}
			}
			partials[w] = local
		}(w, lo, hi)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	ctx := &Context{Precision: prec, Rounding: RoundHalfEven}
	sum := New(0, 0)
	for _, p := range partials {
		if p == nil {
			continue
		}
		if _, err := ctx.Add(sum, sum, p); err != nil {
			return nil, wrapErr(op, err)
		}
	}
	return sum, nil
}
