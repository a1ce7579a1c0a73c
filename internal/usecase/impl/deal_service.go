package impl

import (
	"context"
	"log/slog"
	"strings"

	"lowkey/config"
	deliverycontext "lowkey/internal/delivery/context"
	"lowkey/internal/domain/entity"
	domainerrors "lowkey/internal/domain/errors"
	"lowkey/internal/domain/repository"
	"lowkey/internal/domain/service"
	"lowkey/internal/errors"
	"lowkey/internal/ranking"
	"lowkey/internal/usecase"

	"github.com/shopspring/decimal"
)

// dealService implements the DealUsecase interface.
type dealService struct {
	catalog           repository.CatalogReader
	ranker            *ranking.Ranker
	clock             service.Clock
	logger            *slog.Logger
	suggestMaxResults int
	suggestCutoff     float64
}

// NewDealService is the constructor for dealService.
func NewDealService(
	catalog repository.CatalogReader,
	ranker *ranking.Ranker,
	clock service.Clock,
	logger *slog.Logger,
	cfg *config.Config,
) usecase.DealUsecase {
	maxResults, cutoff := suggestSettings(cfg)

	return &dealService{
		catalog:           catalog,
		ranker:            ranker,
		clock:             clock,
		logger:            logger,
		suggestMaxResults: maxResults,
		suggestCutoff:     cutoff,
	}
}

func (srv *dealService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SearchDeals ranks the product's offers for the requester. When the product
// has no offers the result is empty and carries close product names instead.
func (srv *dealService) SearchDeals(ctx context.Context, input *usecase.SearchDealsInput) (*usecase.SearchDealsResult, error) {
	if input == nil || strings.TrimSpace(input.Product) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("product is required")
	}

	requester, err := entity.NewCoordinate(input.Latitude, input.Longitude)
	if err != nil {
		return nil, err
	}

	product := strings.TrimSpace(input.Product)
	now := srv.clock.Now()

	offers, err := srv.catalog.FindOffersByProduct(ctx, product)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find offers")
	}

	result := &usecase.SearchDealsResult{
		Product:     product,
		EvaluatedAt: now,
		Deals:       []entity.RankedResult{},
	}

	if len(offers) == 0 {
		suggestions, err := srv.SuggestProducts(ctx, product)
		if err != nil {
			return nil, err
		}
		result.Suggestions = suggestions

		srv.log(ctx).Debug("No offers for product",
			slog.String("product", product),
			slog.Any("suggestions", suggestions),
		)

		return result, nil
	}

	ranked, err := srv.ranker.Rank(offers, requester, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rank offers")
	}

	if input.OpenOnly {
		open := ranked[:0]
		for _, r := range ranked {
			if r.IsOpen {
				open = append(open, r)
			}
		}
		ranked = open
	}
	if input.Limit > 0 && len(ranked) > input.Limit {
		ranked = ranked[:input.Limit]
	}

	result.Deals = ranked
	result.DealsFound = len(ranked)
	for _, r := range ranked {
		result.TopDiscountPercent = max(result.TopDiscountPercent, r.Offer.DiscountPercent())
	}

	srv.log(ctx).Debug("Ranked offers",
		slog.String("product", product),
		slog.Int("offers", len(offers)),
		slog.Int("returned", len(ranked)),
	)

	return result, nil
}

// SuggestProducts fuzzy-matches query against every catalog product name.
func (srv *dealService) SuggestProducts(ctx context.Context, query string) ([]string, error) {
	if strings.TrimSpace(query) == "" {
		return []string{}, nil
	}

	names, err := srv.catalog.ListProductNames(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product names")
	}

	return ranking.Suggest(query, names, srv.suggestMaxResults, srv.suggestCutoff), nil
}

// ListProducts summarizes every product: offer count, lowest effective price
// and biggest sale discount. Summaries are ordered by product key.
func (srv *dealService) ListProducts(ctx context.Context) ([]*entity.ProductSummary, error) {
	offers, err := srv.catalog.ListOffers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers")
	}

	summaries := make([]*entity.ProductSummary, 0)
	var (
		current    *entity.ProductSummary
		currentKey string
	)
	for _, offer := range offers {
		if current == nil || offer.Key() != currentKey {
			current = &entity.ProductSummary{
				Name:        offer.ProductName,
				LowestPrice: offer.EffectivePrice(),
			}
			currentKey = offer.Key()
			summaries = append(summaries, current)
		}

		current.OfferCount++
		current.LowestPrice = decimal.Min(current.LowestPrice, offer.EffectivePrice())
		current.TopDiscountPercent = max(current.TopDiscountPercent, offer.DiscountPercent())
	}

	return summaries, nil
}

// GetCatalogStats counts the catalog in one pass. Ties on the top discount
// keep the first product in key order.
func (srv *dealService) GetCatalogStats(ctx context.Context) (*entity.CatalogStats, error) {
	offers, err := srv.catalog.ListOffers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers")
	}

	stats := &entity.CatalogStats{OfferCount: len(offers)}
	products := make(map[string]struct{})
	sellers := make(map[string]struct{})
	for _, offer := range offers {
		products[offer.Key()] = struct{}{}
		sellers[offer.SellerID] = struct{}{}

		if !offer.OnSale() {
			continue
		}
		stats.DealCount++
		if discount := offer.DiscountPercent(); discount > stats.TopDiscountPercent {
			stats.TopDiscountPercent = discount
			stats.TopDiscountProduct = offer.ProductName
		}
	}
	stats.ProductCount = len(products)
	stats.SellerCount = len(sellers)

	return stats, nil
}
