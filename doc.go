// Package bigmath computes the natural logarithm, the common logarithm, the
// arbitrary-base logarithm, the exponential function, and the constant e to
// arbitrary user-specified precision.
//
// Every value is a Decimal: an arbitrary-precision signed decimal with an
// explicit base-10 scale, in the same spirit as the standard library's
// math/big.Float but with decimal (rather than binary) rounding semantics. A
// Context bundles the requested precision and rounding mode, the same way
// one is used to drive the package's lower-level arithmetic primitives
// (Add, Mul, Quo, ...).
//
// The package's distinguishing engineering problem is not the arithmetic
// itself but precision propagation: given a requested number of significant
// digits, how many series terms must be summed, and to how many internal
// digits must each term be carried, so that accumulated rounding error can
// never corrupt the final, correctly-rounded digit. See order.go, series.go
// and finder.go for that machinery; ln.go, exp.go, log.go and e.go apply it.
package bigmath
