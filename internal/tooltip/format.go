package tooltip

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// fixed formats value with exactly places decimals, rounding half away from
// zero on the shortest decimal form of the float. The separator is always '.'.
// Non-finite values render as NaN, Infinity and -Infinity, and a negative
// value that rounds to zero keeps its sign.
func fixed(value float64, places int32) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	}
	s := decimal.NewFromFloat(value).StringFixed(places)
	if value < 0 && !strings.HasPrefix(s, "-") {
		s = "-" + s
	}
	return s
}

// Coordinate formats a latitude or longitude to 3 decimals.
func Coordinate(deg float64) string { return fixed(deg, 3) }

// Kilograms formats a catch weight to 1 decimal with a kg suffix.
func Kilograms(kg float64) string { return fixed(kg, 1) + " kg" }

// Hours formats a trip duration to 1 decimal with an hours suffix.
func Hours(h float64) string { return fixed(h, 1) + " hours" }

// Distance formats a travelled distance to 2 decimals with a units suffix.
func Distance(d float64) string { return fixed(d, 2) + " units" }
