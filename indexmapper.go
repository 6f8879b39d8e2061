package bigmath

// IndexMapper rewrites a series summation counter n (0, 1, 2, ...) into the
// exponent or subscript a term factory actually needs. Gregory-type series
// only touch odd exponents, so their mapper is n -> 2n+1; Maclaurin-type
// series touch every exponent, so their mapper is the identity.
type IndexMapper func(n int64) int64

var (
	// IdentityMapper passes n through unchanged, for series indexed 0,1,2,...
	IdentityMapper IndexMapper = func(n int64) int64 { return n }

	// OddMapper produces 1,3,5,... from n=0,1,2,..., for series that only
	// have nonzero terms at odd exponents (e.g. the Gregory arctanh series).
	OddMapper IndexMapper = func(n int64) int64 { return 2*n + 1 }
)

// SignMapper assigns a sign to the n-th term of a series whose terms
// alternate or stay fixed independent of the magnitude computation: terms
// are computed against |x|, and the sign is reattached separately.
type SignMapper func(n int64) int

var (
	// AlwaysPositive never flips sign, for series whose terms are all
	// nonnegative regardless of index (e.g. x^n/n! for x >= 0).
	AlwaysPositive SignMapper = func(n int64) int { return 1 }

	// AlternatingSign flips sign every term, starting positive at n=0: the
	// sign of x^n for x < 0, since (-1)^n alternates with n's parity.
	AlternatingSign SignMapper = func(n int64) int {
		if n%2 == 0 {
			return 1
		}
		return -1
	}
)
