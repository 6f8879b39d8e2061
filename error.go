package bigmath

import "math/big"

// ErrDecimal performs a chain of Decimal operations under a Context,
// collecting the first error encountered. Once an error is set, every
// further operation is a no-op. Designed for long arithmetic chains (as
// appear in the series and argument-reduction machinery) with a single
// error check at the end, the way the teacher's Cbrt and Ln use it. Ctx may
// be reassigned mid-chain when later steps need a different working
// precision, the way the teacher's integerPower swaps in a widened Ctx for
// its final reciprocal Quo.
type ErrDecimal struct {
	Ctx *Context
	err error
}

// NewErrDecimal returns an ErrDecimal bound to ctx.
func NewErrDecimal(ctx *Context) *ErrDecimal {
	return &ErrDecimal{Ctx: ctx}
}

// Err returns the first error encountered, if any.
func (e *ErrDecimal) Err() error {
	return e.err
}

// Add performs d.Set(Ctx.Add(x, y)).
func (e *ErrDecimal) Add(d, x, y *Decimal) {
	if e.err != nil {
		return
	}
	_, e.err = e.Ctx.Add(d, x, y)
}

// Sub performs d.Set(Ctx.Sub(x, y)).
func (e *ErrDecimal) Sub(d, x, y *Decimal) {
	if e.err != nil {
		return
	}
	_, e.err = e.Ctx.Sub(d, x, y)
}

// Mul performs d.Set(Ctx.Mul(x, y)).
func (e *ErrDecimal) Mul(d, x, y *Decimal) {
	if e.err != nil {
		return
	}
	_, e.err = e.Ctx.Mul(d, x, y)
}

// Quo performs d.Set(Ctx.Quo(x, y)).
func (e *ErrDecimal) Quo(d, x, y *Decimal) {
	if e.err != nil {
		return
	}
	_, e.err = e.Ctx.Quo(d, x, y)
}

// Abs performs d.Set(Ctx.Abs(x)).
func (e *ErrDecimal) Abs(d, x *Decimal) {
	if e.err != nil {
		return
	}
	_, e.err = e.Ctx.Abs(d, x)
}

// Neg performs d.Set(Ctx.Neg(x)).
func (e *ErrDecimal) Neg(d, x *Decimal) {
	if e.err != nil {
		return
	}
	_, e.err = e.Ctx.Neg(d, x)
}

// Round performs d.Set(Ctx.Round(x)).
func (e *ErrDecimal) Round(d, x *Decimal) {
	if e.err != nil {
		return
	}
	_, e.err = e.Ctx.Round(d, x)
}

// IntegerPower performs d.Set(Ctx.integerPower(x, y)).
func (e *ErrDecimal) IntegerPower(d, x *Decimal, y *big.Int) {
	if e.err != nil {
		return
	}
	_, e.err = e.Ctx.integerPower(d, x, y)
}

// Cmp returns 0 if an error is already set. Otherwise it returns a.Cmp(b).
func (e *ErrDecimal) Cmp(a, b *Decimal) int {
	if e.err != nil {
		return 0
	}
	return a.Cmp(b)
}
