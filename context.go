package bigmath

import (
	"math/big"

	"github.com/pkg/errors"
)

// Context maintains options for Decimal operations. It can safely be used
// concurrently, but not modified concurrently.
type Context struct {
	// Precision is the number of digits to round to during rounding.
	Precision uint32
	// Rounding specifies the Rounder to use during rounding. RoundHalfUp is
	// used if nil.
	Rounding Rounder
	// Traps are the conditions which will trigger an error result if the
	// corresponding Condition flag occurred.
	Traps Condition
}

// BaseContext is a useful default Context. Should not be mutated.
var BaseContext = Context{
	Precision: 0,
	Traps:     DefaultTraps,
}

// WithPrecision returns a copy of c but with the specified precision.
func (c *Context) WithPrecision(p uint32) *Context {
	r := *c
	r.Precision = p
	return &r
}

// WithRounding returns a copy of c but with the specified rounding mode.
func (c *Context) WithRounding(r Rounder) *Context {
	n := *c
	n.Rounding = r
	return &n
}

// goError converts flags into an error based on c.Traps.
func (c *Context) goError(flags Condition) (Condition, error) {
	return flags.GoError(c.Traps)
}

// Add sets d to the sum x+y.
func (c *Context) Add(d, x, y *Decimal) (Condition, error) {
	a, b, s, err := upscale(x, y)
	if err != nil {
		return 0, errors.Wrap(err, "Add")
	}
	d.Coeff.Add(a, b)
	d.Exponent = s
	return c.Round(d, d)
}

// Sub sets d to the difference x-y.
func (c *Context) Sub(d, x, y *Decimal) (Condition, error) {
	a, b, s, err := upscale(x, y)
	if err != nil {
		return 0, errors.Wrap(err, "Sub")
	}
	d.Coeff.Sub(a, b)
	d.Exponent = s
	return c.Round(d, d)
}

// Abs sets d to |x|.
func (c *Context) Abs(d, x *Decimal) (Condition, error) {
	d.Abs(x)
	return c.Round(d, d)
}

// Neg sets d to -x.
func (c *Context) Neg(d, x *Decimal) (Condition, error) {
	d.Neg(x)
	return c.Round(d, d)
}

// Mul sets d to the product x*y.
func (c *Context) Mul(d, x, y *Decimal) (Condition, error) {
	d.Coeff.Mul(&x.Coeff, &y.Coeff)
	res := d.setExponent(c, 0, int64(x.Exponent), int64(y.Exponent))
	res |= c.round(d, d)
	return c.goError(res)
}

// Quo sets d to the quotient x/y for y != 0. c.Precision must be > 0.
func (c *Context) Quo(d, x, y *Decimal) (Condition, error) {
	if c.Precision == 0 {
		return 0, errors.New(errZeroPrecisionStr)
	}

	if y.Coeff.Sign() == 0 {
		var res Condition
		if x.Coeff.Sign() == 0 {
			res |= DivisionUndefined
		} else {
			res |= DivisionByZero
		}
		return c.goError(res)
	}

	var adjust int64
	quo := new(Decimal)
	var res Condition
	var diff int64
	if x.Coeff.Sign() != 0 {
		dividend := new(big.Int).Abs(&x.Coeff)
		divisor := new(big.Int).Abs(&y.Coeff)

		for dividend.Cmp(divisor) < 0 {
			dividend.Mul(dividend, bigTen)
			adjust++
		}

		for tmp := new(big.Int); ; {
			tmp.Mul(divisor, bigTen)
			if dividend.Cmp(tmp) < 0 {
				break
			}
			divisor.Set(tmp)
			adjust--
		}

		prec := int64(c.Precision)

		for {
			for divisor.Cmp(dividend) <= 0 {
				dividend.Sub(dividend, divisor)
				quo.Coeff.Add(&quo.Coeff, bigOne)
			}

			if (dividend.Sign() == 0 && adjust >= 0) || quo.NumDigits() == prec {
				break
			}

			quo.Coeff.Mul(&quo.Coeff, bigTen)
			dividend.Mul(dividend, bigTen)
			adjust++
		}

		adj := int64(x.Exponent) + int64(-y.Exponent) - adjust + quo.NumDigits() - 1
		if dividend.Sign() != 0 && adj >= int64(MinExponent) {
			res |= Inexact | Rounded
			dividend.Mul(dividend, bigTwo)
			half := dividend.Cmp(divisor)
			rounding := c.rounding()
			// quo.Coeff is still unsigned here; hand the Rounder the sign the
			// result will carry so RoundFloor and RoundCeiling pick the right
			// direction.
			signed := &quo.Coeff
			if (x.Sign() < 0) != (y.Sign() < 0) {
				signed = new(big.Int).Neg(&quo.Coeff)
			}
			if rounding(signed, half) {
				roundAddOne(&quo.Coeff, &diff, quo.Coeff.Sign())
			}
		}
	}

	res |= quo.setExponent(c, int64(x.Exponent), int64(-y.Exponent), -adjust, diff)

	if xn, yn := x.Sign() == -1, y.Sign() == -1; xn != yn {
		quo.Coeff.Neg(&quo.Coeff)
	}

	d.Set(quo)
	return c.goError(res)
}

// Floor sets d to the largest integer <= x.
func (c *Context) Floor(d, x *Decimal) (Condition, error) {
	frac := new(Decimal)
	x.Modf(d, frac)
	if frac.Sign() < 0 {
		return c.Sub(d, d, decimalOne)
	}
	return 0, nil
}

// Round sets d to rounded x, rounded to the precision specified by c.
func (c *Context) Round(d, x *Decimal) (Condition, error) {
	return c.goError(c.round(d, x))
}

func (c *Context) round(d, x *Decimal) Condition {
	if c.Precision == 0 {
		d.Set(x)
		return d.setExponent(c, 0, int64(d.Exponent))
	}
	rounder := c.rounding()
	return rounder.Round(c, d, x)
}

func (c *Context) rounding() Rounder {
	if c.Rounding == nil {
		return RoundHalfUp
	}
	return c.Rounding
}

// integerPower sets d = x**y for a big.Int exponent y, using exponentiation
// by squaring. A negative y computes x**|y| and then takes its reciprocal.
func (c *Context) integerPower(d, x *Decimal, y *big.Int) (Condition, error) {
	b := new(big.Int).Set(y)
	neg := b.Sign() < 0
	if neg {
		b.Abs(b)
	}

	n, z := new(Decimal), d
	n.Set(x)
	z.Set(decimalOne)
	ed := NewErrDecimal(c)
	for b.Sign() > 0 {
		if b.Bit(0) == 1 {
			ed.Mul(z, z, n)
		}
		b.Rsh(b, 1)
		if b.Sign() == 0 {
			break
		}
		ed.Mul(n, n, n)
	}
	if ed.Err() != nil {
		return 0, ed.Err()
	}

	if neg {
		ed.Ctx = c.WithPrecision(c.Precision + uint32(z.NumDigits()) + 8)
		ed.Quo(z, decimalOne, z)
		ed.Ctx = c
		ed.Round(z, z)
		if ed.Err() != nil {
			return 0, ed.Err()
		}
	}
	return 0, nil
}

const errZeroPrecisionStr = "Context may not have 0 Precision for this operation"
