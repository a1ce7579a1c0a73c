package ranking

import (
	"cmp"
	"slices"
	"time"

	"lowkey/internal/domain/entity"
	"lowkey/internal/errors"

	"github.com/shopspring/decimal"
)

// Ranker orders the offers for one product from best to worst deal.
type Ranker struct {
	scorer Scorer
}

// NewRanker returns a Ranker scoring with the given weights.
func NewRanker(weights Weights) *Ranker {
	return &Ranker{scorer: NewScorer(weights)}
}

// Scorer exposes the ranker's scorer.
func (r *Ranker) Scorer() Scorer {
	return r.scorer
}

// Rank annotates every offer with its distance from requester, average
// rating, open state at now, and effort score, then sorts ascending by
// score, distance, seller ID and finally offer ID.
//
// Prices are normalized against the cheapest and most expensive effective
// price in offers, not the whole catalog. An empty batch yields an empty
// result. The only error is an invalid coordinate.
func (r *Ranker) Rank(offers []*entity.Offer, requester entity.Coordinate, now time.Time) ([]entity.RankedResult, error) {
	if err := requester.Validate(); err != nil {
		return nil, err
	}

	results := make([]entity.RankedResult, 0, len(offers))
	for _, offer := range offers {
		if offer == nil {
			continue
		}

		distanceKm, err := Distance(requester, offer.Location)
		if err != nil {
			return nil, errors.Wrapf(err, "offer %s from seller %s", offer.ID, offer.SellerID)
		}

		results = append(results, entity.RankedResult{
			Offer:          offer,
			DistanceKm:     distanceKm,
			AverageRating:  offer.AverageRating(),
			IsOpen:         IsOpen(offer.OpenDays, offer.OpenHours, now),
			EffectivePrice: offer.EffectivePrice(),
		})
	}

	if len(results) == 0 {
		return results, nil
	}

	minPrice, maxPrice := priceRange(results)
	for i := range results {
		results[i].EffortScore = r.scorer.Score(
			results[i].EffectivePrice.InexactFloat64(),
			minPrice,
			maxPrice,
			results[i].DistanceKm,
			results[i].AverageRating,
		)
	}

	slices.SortFunc(results, compareRanked)

	return results, nil
}

func priceRange(results []entity.RankedResult) (float64, float64) {
	lowest, highest := results[0].EffectivePrice, results[0].EffectivePrice
	for _, res := range results[1:] {
		lowest = decimal.Min(lowest, res.EffectivePrice)
		highest = decimal.Max(highest, res.EffectivePrice)
	}

	return lowest.InexactFloat64(), highest.InexactFloat64()
}

func compareRanked(a, b entity.RankedResult) int {
	if c := cmp.Compare(a.EffortScore, b.EffortScore); c != 0 {
		return c
	}
	if c := cmp.Compare(a.DistanceKm, b.DistanceKm); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Offer.SellerID, b.Offer.SellerID); c != 0 {
		return c
	}

	return cmp.Compare(a.Offer.ID.String(), b.Offer.ID.String())
}
