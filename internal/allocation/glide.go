package allocation

// glideKnot is one point on the retirement glide path, keyed by years
// remaining until the retirement year. Negative once retirement has passed.
type glideKnot struct {
	yearsOut  int
	stock     float64
	bond      float64
	inflation float64
}

// glidePath follows a conventional target-date descent from 90/10 down to an
// income mix that picks up short-term TIPS around retirement. Every knot sums
// to 100, and linear interpolation between knots preserves that.
var glidePath = []glideKnot{
	{yearsOut: 30, stock: 90, bond: 10, inflation: 0},
	{yearsOut: 25, stock: 85, bond: 15, inflation: 0},
	{yearsOut: 20, stock: 80, bond: 20, inflation: 0},
	{yearsOut: 15, stock: 72, bond: 28, inflation: 0},
	{yearsOut: 10, stock: 65, bond: 35, inflation: 0},
	{yearsOut: 5, stock: 58, bond: 42, inflation: 0},
	{yearsOut: 0, stock: 50, bond: 45, inflation: 5},
	{yearsOut: -5, stock: 40, bond: 50, inflation: 10},
	{yearsOut: -10, stock: 30, bond: 53, inflation: 17},
}

// PolicyForRetirementYear derives an allocation policy from how far away the
// retirement year is, clamping to the ends of the glide path for very long
// horizons and for anyone well past retirement.
func PolicyForRetirementYear(retirementYear, currentYear int) (Policy, error) {
	yearsOut := retirementYear - currentYear

	first := glidePath[0]
	if yearsOut >= first.yearsOut {
		return NewPolicy(first.stock, first.bond, first.inflation)
	}
	last := glidePath[len(glidePath)-1]
	if yearsOut <= last.yearsOut {
		return NewPolicy(last.stock, last.bond, last.inflation)
	}

	for i := 0; i < len(glidePath)-1; i++ {
		hi := glidePath[i]
		lo := glidePath[i+1]
		if yearsOut > lo.yearsOut && yearsOut <= hi.yearsOut {
			frac := float64(yearsOut-lo.yearsOut) / float64(hi.yearsOut-lo.yearsOut)
			return NewPolicy(
				lerp(lo.stock, hi.stock, frac),
				lerp(lo.bond, hi.bond, frac),
				lerp(lo.inflation, hi.inflation, frac),
			)
		}
	}

	// unreachable while the path stays sorted
	return NewPolicy(last.stock, last.bond, last.inflation)
}

func lerp(a, b, frac float64) float64 {
	return a + (b-a)*frac
}
