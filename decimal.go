package bigmath

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Decimal is an arbitrary-precision signed decimal. Its value is:
//
//	Coeff * 10 ^ Exponent
type Decimal struct {
	Coeff    big.Int
	Exponent int32
}

// New creates a new decimal with the given coefficient and exponent.
func New(coeff int64, exponent int32) *Decimal {
	return &Decimal{
		Coeff:    *big.NewInt(coeff),
		Exponent: exponent,
	}
}

// NewWithBigInt creates a new decimal with the given coefficient and
// exponent. The Decimal takes ownership of coeff; callers must not mutate it
// afterward.
func NewWithBigInt(coeff *big.Int, exponent int32) *Decimal {
	return &Decimal{
		Coeff:    *coeff,
		Exponent: exponent,
	}
}

func newFromString(s string) (coeff *big.Int, exps []int64, err error) {
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		exp, err := strconv.ParseInt(s[i+1:], 10, 32)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "parse exponent: %s", s[i+1:])
		}
		exps = append(exps, exp)
		s = s[:i]
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		exp := int64(len(s) - i - 1)
		exps = append(exps, -exp)
		s = s[:i] + s[i+1:]
	}
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, nil, errors.Errorf("parse mantissa: %s", s)
	}
	return i, exps, nil
}

// NewFromString creates a new decimal from s. It has no restrictions on
// exponents or precision.
func NewFromString(s string) (*Decimal, error) {
	i, exps, err := newFromString(s)
	if err != nil {
		return nil, err
	}
	d := &Decimal{
		Coeff: *i,
	}
	_, err = d.setExponent(&BaseContext, exps...).GoError(BaseContext.Traps)
	return d, err
}

// SetString sets d to s and returns d. It has no restrictions on exponents
// or precision.
func (d *Decimal) SetString(s string) (*Decimal, error) {
	i, exps, err := newFromString(s)
	if err != nil {
		return d, err
	}
	d.Coeff = *i
	_, err = d.setExponent(&BaseContext, exps...).GoError(BaseContext.Traps)
	return d, err
}

// String is a wrapper for ToSci.
func (d *Decimal) String() string {
	return d.ToSci()
}

// ToSci returns d in scientific notation if an exponent is needed.
func (d *Decimal) ToSci() string {
	s := d.Coeff.String()
	if s == "0" {
		return s
	}
	neg := d.Coeff.Sign() < 0
	if neg {
		s = s[1:]
	}
	adj := int(d.Exponent) + (len(s) - 1)
	if d.Exponent <= 0 && adj >= -6 {
		if d.Exponent < 0 {
			if left := -int(d.Exponent) - len(s); left > 0 {
				s = "0." + strings.Repeat("0", left) + s
			} else if left < 0 {
				offset := -left
				s = s[:offset] + "." + s[offset:]
			} else {
				s = "0." + s
			}
		}
	} else {
		dot := ""
		if len(s) > 1 {
			dot = "." + s[1:]
		}
		s = fmt.Sprintf("%s%sE%+d", s[:1], dot, adj)
	}
	if neg {
		s = "-" + s
	}
	return s
}

// Set sets d's Coeff and Exponent from x and returns d.
func (d *Decimal) Set(x *Decimal) *Decimal {
	d.Coeff.Set(&x.Coeff)
	d.Exponent = x.Exponent
	return d
}

// SetCoefficient sets d's Coeff value to x and returns d. The Exponent is
// not changed.
func (d *Decimal) SetCoefficient(x int64) *Decimal {
	d.Coeff.SetInt64(x)
	return d
}

// SetExponent sets d's Exponent value to x and returns d.
func (d *Decimal) SetExponent(x int32) *Decimal {
	d.Exponent = x
	return d
}

const (
	errExponentOutOfRange = "exponent out of range"
)

// setExponent sets d's Exponent to the sum of xs. Each value and the sum of
// xs must fit within an int32. An error occurs if the sum is outside of the
// MaxExponent or MinExponent range.
func (d *Decimal) setExponent(c *Context, xs ...int64) Condition {
	var sum int64
	for _, x := range xs {
		if x > MaxExponent {
			return SystemOverflow | Overflow
		}
		if x < MinExponent {
			return SystemUnderflow | Underflow
		}
		sum += x
	}
	r := int32(sum)

	adj := sum + d.NumDigits() - 1
	if adj > MaxExponent {
		return SystemOverflow | Overflow
	}
	if adj < MinExponent {
		return SystemUnderflow | Underflow
	}

	d.Exponent = r
	return 0
}

const (
	// MaxExponent is the highest exponent supported. It bounds the cost of
	// the 10^x computations performed by upscale and Round.
	MaxExponent = 1 << 20
	// MinExponent is the lowest exponent supported, symmetrical to
	// MaxExponent.
	MinExponent = -MaxExponent
)

// upscale converts a and b to big.Ints with the same scaling, and returns
// that scaling. An error is produced if the resulting scale factor is out of
// range.
func upscale(a, b *Decimal) (*big.Int, *big.Int, int32, error) {
	if a.Exponent == b.Exponent {
		return &a.Coeff, &b.Coeff, a.Exponent, nil
	}
	swapped := false
	if a.Exponent < b.Exponent {
		swapped = true
		b, a = a, b
	}
	s := int64(a.Exponent) - int64(b.Exponent)
	if s > MaxExponent {
		return nil, nil, 0, errors.New(errExponentOutOfRange)
	}
	y := big.NewInt(s)
	e := new(big.Int).Exp(bigTen, y, nil)
	y.Mul(&a.Coeff, e)
	x := &b.Coeff
	if swapped {
		x, y = y, x
	}
	return y, x, b.Exponent, nil
}

// Cmp compares d and x and returns:
//
//	-1 if d <  x
//	 0 if d == x
//	+1 if d >  x
func (d *Decimal) Cmp(x *Decimal) int {
	ds := d.Sign()
	xs := x.Sign()
	if ds < xs {
		return -1
	} else if ds > xs {
		return 1
	} else if ds == 0 && xs == 0 {
		return 0
	}

	dn := d.NumDigits() + int64(d.Exponent)
	xn := x.NumDigits() + int64(x.Exponent)
	if dn < xn {
		if ds < 0 {
			return 1
		}
		return -1
	} else if dn > xn {
		if ds < 0 {
			return -1
		}
		return 1
	}

	diff := int64(d.Exponent) - int64(x.Exponent)
	if diff < 0 {
		diff = -diff
	}
	y := big.NewInt(diff)
	e := new(big.Int).Exp(bigTen, y, nil)
	db := new(big.Int).Set(&d.Coeff)
	xb := new(big.Int).Set(&x.Coeff)
	if d.Exponent > x.Exponent {
		db.Mul(db, e)
	} else {
		xb.Mul(xb, e)
	}
	return db.Cmp(xb)
}

// Sign returns:
//
//	-1 if d <  0
//	 0 if d == 0
//	+1 if d >  0
func (d *Decimal) Sign() int {
	return d.Coeff.Sign()
}

// Modf sets integ to the integral part of d and frac to the fractional part
// such that d = integ+frac. If d is negative, both integ and frac will be
// either 0 or negative. integ.Exponent will be >= 0; frac.Exponent will be
// <= 0.
func (d *Decimal) Modf(integ, frac *Decimal) {
	if d.Exponent > 0 {
		frac.Exponent = 0
		frac.SetCoefficient(0)
		integ.Set(d)
		return
	}
	nd := d.NumDigits()
	exp := -int64(d.Exponent)
	if exp > nd {
		integ.Exponent = 0
		integ.SetCoefficient(0)
		frac.Set(d)
		return
	}

	y := big.NewInt(exp)
	e := new(big.Int).Exp(bigTen, y, nil)
	integ.Coeff.QuoRem(&d.Coeff, e, &frac.Coeff)
	integ.Exponent = 0
	frac.Exponent = d.Exponent
}

// Neg sets d to -x and returns d.
func (d *Decimal) Neg(x *Decimal) *Decimal {
	d.Set(x)
	d.Coeff.Neg(&d.Coeff)
	return d
}

// Abs sets d to |x| and returns d.
func (d *Decimal) Abs(x *Decimal) *Decimal {
	d.Set(x)
	d.Coeff.Abs(&d.Coeff)
	return d
}

// NumDigits returns the number of decimal digits of d.Coeff.
func (d *Decimal) NumDigits() int64 {
	return NumDigits(&d.Coeff)
}

// NumDigits returns the count of significant decimal digits of i's unscaled
// value. A zero value has one digit.
func NumDigits(i *big.Int) int64 {
	if i.Sign() == 0 {
		return 1
	}
	abs := i
	if i.Sign() < 0 {
		abs = new(big.Int).Abs(i)
	}
	return int64(len(abs.String()))
}
