package bigmath

import (
	"math/big"
	"sync"
)

var (
	bigOne  = big.NewInt(1)
	bigTwo  = big.NewInt(2)
	bigFive = big.NewInt(5)
	bigTen  = big.NewInt(10)
)

var (
	decimalZero = New(0, 0)
	decimalOne  = New(1, 0)
	decimalTwo  = New(2, 0)
	decimalTen  = New(10, 0)
	decimalHalf = New(5, -1)
)

// pow10Cache memoizes small powers of ten. 10^x for x >= 0 is requested
// repeatedly by rounding, scaling and order computations, and the
// underlying big.Int.Exp call is otherwise the dominant cost of those
// operations. Safe for concurrent use by the parallel accumulator.
var pow10Cache = struct {
	mu   sync.RWMutex
	vals []*big.Int
}{vals: []*big.Int{big.NewInt(1)}}

// pow10 returns 10^x for x >= 0. The returned value must not be mutated.
func pow10(x int64) *big.Int {
	if x < 0 {
		panic("bigmath: pow10 of negative exponent")
	}
	pow10Cache.mu.RLock()
	if x < int64(len(pow10Cache.vals)) {
		v := pow10Cache.vals[x]
		pow10Cache.mu.RUnlock()
		return v
	}
	pow10Cache.mu.RUnlock()

	if x > 4096 {
		return new(big.Int).Exp(bigTen, big.NewInt(x), nil)
	}

	pow10Cache.mu.Lock()
	defer pow10Cache.mu.Unlock()
	for int64(len(pow10Cache.vals)) <= x {
		next := new(big.Int).Mul(pow10Cache.vals[len(pow10Cache.vals)-1], bigTen)
		pow10Cache.vals = append(pow10Cache.vals, next)
	}
	return pow10Cache.vals[x]
}
