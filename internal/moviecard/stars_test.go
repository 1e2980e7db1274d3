package moviecard

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStarsFilled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		rating float64
		want   int
	}{
		{"eight gives four", 8.0, 4},
		{"seven rounds half up", 7.0, 4},
		{"zero", 0.0, 0},
		{"ten", 10.0, 5},
		{"five rounds half up", 5.0, 3},
		{"one rounds half up", 1.0, 1},
		{"just under half a star", 0.9, 0},
		{"above range is not clamped", 12.0, 6},
		{"below range is not clamped", -4.0, -2},
		{"negative half rounds up", -1.0, 0},
		{"negative one and a half rounds up", -3.0, -1},
		{"nan is pinned to zero", math.NaN(), 0},
		{"positive infinity saturates", math.Inf(1), math.MaxInt},
		{"negative infinity saturates", math.Inf(-1), math.MinInt},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, StarsFilled(tt.rating))
		})
	}
}

func TestStarsFilledStaysInRangeAndIsMonotone(t *testing.T) {
	t.Parallel()

	prev := StarsFilled(0)
	for i := 0; i <= 1000; i++ {
		rating := float64(i) / 100
		stars := StarsFilled(rating)

		require.GreaterOrEqual(t, stars, 0, "rating %v", rating)
		require.LessOrEqual(t, stars, MaxStars, "rating %v", rating)
		require.GreaterOrEqual(t, stars, prev, "rating %v", rating)
		require.Equal(t, int(math.Floor(rating/2+0.5)), stars, "rating %v", rating)
		prev = stars
	}
}

func TestFormatRating(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "8.0", FormatRating(8))
	assert.Equal(t, "7.25", FormatRating(7.25))
	assert.Equal(t, "0.0", FormatRating(0))
	assert.Equal(t, "-1.5", FormatRating(-1.5))
	assert.Equal(t, "NaN", FormatRating(math.NaN()))
	assert.Equal(t, "Infinity", FormatRating(math.Inf(1)))
	assert.Equal(t, "-Infinity", FormatRating(math.Inf(-1)))
}
