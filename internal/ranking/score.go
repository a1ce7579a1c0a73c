package ranking

import "lowkey/internal/domain/entity"

// Weights tune the effort score. Each component is a penalty; the sum is
// unbounded and only meaningful relative to other offers in the same batch.
type Weights struct {
	// PriceSpan is the penalty of the most expensive offer in a batch; the
	// cheapest gets 0 and the rest are spread linearly in between.
	PriceSpan float64
	// DistanceWeight is the penalty per kilometer.
	DistanceWeight float64
	// RatingWeight is the penalty per star below MaxRating.
	RatingWeight float64
}

// DefaultWeights: 50 across the price range, 0.5 per km, 3 per missing star.
func DefaultWeights() Weights {
	return Weights{
		PriceSpan:      50,
		DistanceWeight: 0.5,
		RatingWeight:   3,
	}
}

// Scorer computes effort scores. Lower is better.
type Scorer struct {
	weights Weights
}

// NewScorer returns a Scorer with the given weights.
func NewScorer(weights Weights) Scorer {
	return Scorer{weights: weights}
}

// Weights returns the scorer's weights.
func (s Scorer) Weights() Weights {
	return s.weights
}

// Score combines the normalized price, distance and rating deficit of one
// offer. minPrice and maxPrice bound the effective prices of the batch being
// compared; when they are equal the price component is 0. An average rating
// of 0 (no ratings) is the worst case, not a neutral one.
func (s Scorer) Score(effectivePrice, minPrice, maxPrice, distanceKm, averageRating float64) float64 {
	return s.priceComponent(effectivePrice, minPrice, maxPrice) +
		s.weights.DistanceWeight*distanceKm +
		s.weights.RatingWeight*(entity.MaxRating-averageRating)
}

func (s Scorer) priceComponent(effectivePrice, minPrice, maxPrice float64) float64 {
	spread := maxPrice - minPrice
	if spread == 0 {
		return 0
	}

	return s.weights.PriceSpan * (effectivePrice - minPrice) / spread
}
