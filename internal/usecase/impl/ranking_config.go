package impl

import (
	"lowkey/config"
	"lowkey/internal/ranking"
)

const (
	// fallback defaults when the suggest section is missing or zero
	defaultSuggestMaxResults = 3
	defaultSuggestCutoff     = 0.3
)

// NewRanker builds the offer ranker from the ranking section. Zero or
// negative weights fall back to ranking.DefaultWeights.
func NewRanker(cfg *config.Config) *ranking.Ranker {
	weights := ranking.DefaultWeights()
	if cfg == nil || cfg.Ranking == nil {
		return ranking.NewRanker(weights)
	}

	if cfg.Ranking.PriceSpan > 0 {
		weights.PriceSpan = cfg.Ranking.PriceSpan
	}
	if cfg.Ranking.DistanceWeight > 0 {
		weights.DistanceWeight = cfg.Ranking.DistanceWeight
	}
	if cfg.Ranking.RatingWeight > 0 {
		weights.RatingWeight = cfg.Ranking.RatingWeight
	}

	return ranking.NewRanker(weights)
}

func suggestSettings(cfg *config.Config) (maxResults int, cutoff float64) {
	maxResults, cutoff = defaultSuggestMaxResults, defaultSuggestCutoff
	if cfg == nil || cfg.Suggest == nil {
		return maxResults, cutoff
	}

	if cfg.Suggest.MaxResults > 0 {
		maxResults = cfg.Suggest.MaxResults
	}
	if cfg.Suggest.Cutoff > 0 && cfg.Suggest.Cutoff <= 1 {
		cutoff = cfg.Suggest.Cutoff
	}

	return maxResults, cutoff
}
