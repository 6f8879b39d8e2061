package bigmath

// eCore returns Euler's number accurate to positional accuracy p, via the
// direct Maclaurin expansion e = sum(1/n!, n=0..infinity).
func eCore(p int64) (*Decimal, error) {
	engine := NewSeriesEngine(factorialTerm{})
	return engine.Sum("e", p)
}
