package moviecard

import (
	"math"
	"strconv"
	"strings"
)

// MaxStars is the number of star icons in the rating row.
const MaxStars = 5

// StarsFilled maps a 0-10 rating to a filled-star count by halving and rounding half up.
// Out-of-range ratings are not clamped. NaN maps to 0 and infinities saturate.
func StarsFilled(rating float64) int {
	if math.IsNaN(rating) {
		return 0
	}

	v := math.Floor(rating/2 + 0.5)
	switch {
	case v >= math.MaxInt:
		return math.MaxInt
	case v <= math.MinInt:
		return math.MinInt
	}
	return int(v)
}

// FormatRating renders a rating with at least one fractional digit: 8 -> "8.0", 7.25 -> "7.25".
func FormatRating(rating float64) string {
	switch {
	case math.IsNaN(rating):
		return "NaN"
	case math.IsInf(rating, 1):
		return "Infinity"
	case math.IsInf(rating, -1):
		return "-Infinity"
	}

	s := strconv.FormatFloat(rating, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
