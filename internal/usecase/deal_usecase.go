package usecase

import (
	"context"
	"time"

	"lowkey/internal/domain/entity"
)

// SearchDealsInput represents a buyer's search for one product near a location
type SearchDealsInput struct {
	Product   string
	Latitude  float64
	Longitude float64
	// OpenOnly drops offers whose store is closed at evaluation time
	OpenOnly bool
	// Limit caps the number of returned deals; zero or negative means no cap
	Limit int
}

// SearchDealsResult is the ranked answer to a SearchDealsInput
type SearchDealsResult struct {
	Product     string                `json:"product"`
	EvaluatedAt time.Time             `json:"evaluated_at"`
	Deals       []entity.RankedResult `json:"deals"`
	// Suggestions are close product names, filled only when nothing matched
	Suggestions        []string `json:"suggestions,omitempty"`
	DealsFound         int      `json:"deals_found"`
	TopDiscountPercent float64  `json:"top_discount_percent"`
}

// DealUsecase defines the buyer-facing catalog use cases
type DealUsecase interface {
	// SearchDeals ranks every offer for the product from best to worst deal
	SearchDeals(ctx context.Context, input *SearchDealsInput) (*SearchDealsResult, error)

	// SuggestProducts returns catalog product names close to query
	SuggestProducts(ctx context.Context, query string) ([]string, error)

	// ListProducts returns one browse summary per catalog product
	ListProducts(ctx context.Context) ([]*entity.ProductSummary, error)

	// GetCatalogStats counts products, sellers, offers and live deals
	GetCatalogStats(ctx context.Context) (*entity.CatalogStats, error)
}
