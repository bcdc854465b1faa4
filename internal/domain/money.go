package domain

import "math"

// Money is a monetary amount in minor units (cents).
// All persisted and computed amounts use this representation; floats only
// appear in derived ratios (percentages, margins).
type Money int64

// PercentOf returns pct percent of m, rounded half to even at the cent.
func PercentOf(m Money, pct float64) Money {
	return Money(math.RoundToEven(float64(m) * pct / 100))
}

// MulRatio multiplies m by num/den using half-to-even rounding.
// den must be positive.
func (m Money) MulRatio(num, den int64) Money {
	n := int64(m) * num

	neg := n < 0
	if neg {
		n = -n
	}

	q := n / den
	r := n % den

	// round half to even
	switch {
	case 2*r > den:
		q++
	case 2*r == den && q%2 == 1:
		q++
	}

	if neg {
		q = -q
	}
	return Money(q)
}

// Dollars returns the amount in major units, for metrics and display only.
func (m Money) Dollars() float64 {
	return float64(m) / 100
}
