package bigmath

import (
	"fmt"

	"github.com/pkg/errors"
)

// DomainError reports that an argument fell outside the mathematical domain
// of the operation (e.g. ln of a non-positive value). It is raised
// synchronously, before any series work begins.
type DomainError struct {
	Op      string
	Operand string
	msg     string
}

func (e *DomainError) Error() string {
	return "bigmath: " + e.Op + ": " + e.Operand + ": " + e.msg
}

func newDomainError(op, operand, msg string) error {
	return &DomainError{Op: op, Operand: operand, msg: msg}
}

// ArithmeticOverflowError reports that an internal integer (an index, an
// accuracy adjustment, a required term count, an exponent) would overflow
// its 32-bit signed range. It is always fatal; nothing is silently clamped.
type ArithmeticOverflowError struct {
	Op  string
	msg string
}

func (e *ArithmeticOverflowError) Error() string {
	return "bigmath: " + e.Op + ": arithmetic overflow: " + e.msg
}

func newOverflowError(op, msg string) error {
	return &ArithmeticOverflowError{Op: op, msg: msg}
}

// PrecisionUnderflowError reports that a requested precision/order
// conversion produced a significant-digit count P < 1.
type PrecisionUnderflowError struct {
	Op string
	P  int64
}

func (e *PrecisionUnderflowError) Error() string {
	return fmt.Sprintf("bigmath: %s: precision underflow: computed P=%d (< 1)", e.Op, e.P)
}

func newPrecisionUnderflowError(op string, p int64) error {
	return &PrecisionUnderflowError{Op: op, P: p}
}

// InvariantViolationError reports that internal bookkeeping reached a state
// the algorithm's invariants say cannot happen (e.g. Order() called on a
// known-zero value, or a memoized order cache found inconsistent). It is a
// logic error, not a recoverable one, and is never retried.
type InvariantViolationError struct {
	Op  string
	msg string
}

func (e *InvariantViolationError) Error() string {
	return "bigmath: " + e.Op + ": internal invariant violated: " + e.msg
}

func newInvariantError(op, msg string) error {
	return &InvariantViolationError{Op: op, msg: msg}
}

// IsDomainError reports whether err is (or wraps) a *DomainError.
func IsDomainError(err error) bool {
	var d *DomainError
	return errors.As(err, &d)
}

// wrapErr attaches op to err for context, the way the teacher's Context
// methods wrap upscale/division failures before returning them.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, op)
}
