package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScorer_Score(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(DefaultWeights())

	tests := []struct {
		name          string
		price         float64
		minPrice      float64
		maxPrice      float64
		distanceKm    float64
		averageRating float64
		want          float64
	}{
		{name: "priciest, near, well rated", price: 25000, minPrice: 24000, maxPrice: 25000, distanceKm: 2, averageRating: 4.5, want: 52.5},
		{name: "cheapest, far, average", price: 24000, minPrice: 24000, maxPrice: 25000, distanceKm: 10, averageRating: 3, want: 11},
		{name: "midpoint price", price: 24500, minPrice: 24000, maxPrice: 25000, distanceKm: 0, averageRating: 5, want: 25},
		{name: "single price batch", price: 999, minPrice: 999, maxPrice: 999, distanceKm: 4, averageRating: 5, want: 2},
		{name: "no ratings is worst", price: 10, minPrice: 10, maxPrice: 10, distanceKm: 0, averageRating: 0, want: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := scorer.Score(tt.price, tt.minPrice, tt.maxPrice, tt.distanceKm, tt.averageRating)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestScorer_Monotonic(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(DefaultWeights())
	base := scorer.Score(500, 100, 1000, 5, 4)

	assert.Greater(t, scorer.Score(600, 100, 1000, 5, 4), base, "higher price")
	assert.Greater(t, scorer.Score(500, 100, 1000, 6, 4), base, "farther away")
	assert.Less(t, scorer.Score(500, 100, 1000, 5, 4.5), base, "better rating")
}

func TestScorer_CustomWeights(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(Weights{PriceSpan: 10, DistanceWeight: 2, RatingWeight: 1})

	assert.Equal(t, Weights{PriceSpan: 10, DistanceWeight: 2, RatingWeight: 1}, scorer.Weights())
	assert.InDelta(t, 10.0+6+2, scorer.Score(20, 10, 20, 3, 3), 1e-9)
}
