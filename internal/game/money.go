package game

import (
	"math"

	"github.com/dustin/go-humanize"
)

// Money is a currency amount in cents. It may go negative.
type Money int64

func FromFloat(v float64) Money {
	return Money(math.Round(v * 100))
}

func Units(n int) Money {
	return Money(int64(n) * 100)
}

func (m Money) Float() float64 {
	return float64(m) / 100
}

func (m Money) Mul(n int) Money {
	return m * Money(n)
}

func (m Money) String() string {
	v := m.Float()
	if v < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", -v)
	}
	return "$" + humanize.FormatFloat("#,###.##", v)
}
