package bigmath_test

import (
	"fmt"

	bigmath "github.com/arborq/bigmath"
)

// Example demonstrates each of the package's five public functions against a
// fixed ten-significant-digit Context.
func Example() {
	c := &bigmath.Context{Precision: 10, Rounding: bigmath.RoundHalfEven}

	e, err := bigmath.E(c)
	if err != nil {
		panic(err)
	}
	fmt.Println("e       =", e)

	one := bigmath.New(1, 0)
	expOne, err := bigmath.Exp(one, c)
	if err != nil {
		panic(err)
	}
	fmt.Println("exp(1)  =", expOne)

	two := bigmath.New(2, 0)
	lnTwo, err := bigmath.Ln(two, c)
	if err != nil {
		panic(err)
	}
	fmt.Println("ln(2)   =", lnTwo)

	hundred := bigmath.New(100, 0)
	log10Hundred, err := bigmath.Log10(hundred, c)
	if err != nil {
		panic(err)
	}
	fmt.Println("log10(100) =", log10Hundred)

	three, eightyOne := bigmath.New(3, 0), bigmath.New(81, 0)
	logThreeEightyOne, err := bigmath.Log(three, eightyOne, c)
	if err != nil {
		panic(err)
	}
	fmt.Println("log_3(81)  =", logThreeEightyOne)

	// Output:
	// e       = 2.718281828
	// exp(1)  = 2.718281828
	// ln(2)   = 0.6931471806
	// log10(100) = 2.000000000
	// log_3(81)  = 4.000000000
}
