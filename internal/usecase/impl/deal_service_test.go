package impl

import (
	"context"
	"testing"

	"lowkey/config"
	"lowkey/internal/domain/entity"
	domainerrors "lowkey/internal/domain/errors"
	"lowkey/internal/errors"
	"lowkey/internal/infra/clock"
	mockRepo "lowkey/internal/mocks/repository"
	"lowkey/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dealServiceFixtures holds all test dependencies for deal service tests.
type dealServiceFixtures struct {
	service usecase.DealUsecase
	catalog *mockRepo.MockCatalogRepository
}

func createTestDealService(t *testing.T) dealServiceFixtures {
	catalog := mockRepo.NewMockCatalogRepository(t)
	service := NewDealService(catalog, NewRanker(nil), clock.Fixed(evening), discardLogger(), &config.Config{})

	return dealServiceFixtures{
		service: service,
		catalog: catalog,
	}
}

func TestDealService_SearchDeals_RanksCheapFarAheadOfPriceyNear(t *testing.T) {
	fx := createTestDealService(t)
	ctx := context.Background()

	a := testOffer(t, "Refrigerator", "seller-a", 25000, withLocation(northOf(2)), withRatings(4, 5))
	b := testOffer(t, "Refrigerator", "seller-b", 24000, withLocation(northOf(10)), withRatings(3))

	fx.catalog.EXPECT().
		FindOffersByProduct(ctx, "Refrigerator").
		Return([]*entity.Offer{a, b}, nil)

	result, err := fx.service.SearchDeals(ctx, &usecase.SearchDealsInput{Product: " Refrigerator ", Latitude: 0, Longitude: 0})
	require.NoError(t, err)

	require.Len(t, result.Deals, 2)
	assert.Equal(t, "seller-b", result.Deals[0].Offer.SellerID)
	assert.InDelta(t, 11.0, result.Deals[0].EffortScore, 1e-6)
	assert.Equal(t, "seller-a", result.Deals[1].Offer.SellerID)
	assert.InDelta(t, 52.5, result.Deals[1].EffortScore, 1e-6)
	assert.Equal(t, 2, result.DealsFound)
	assert.Empty(t, result.Suggestions)
	assert.Equal(t, evening, result.EvaluatedAt)
	assert.Equal(t, "Refrigerator", result.Product)
}

func TestDealService_SearchDeals_NoOffersSuggestsNames(t *testing.T) {
	fx := createTestDealService(t)
	ctx := context.Background()

	fx.catalog.EXPECT().
		FindOffersByProduct(ctx, "frigde").
		Return([]*entity.Offer{}, nil)
	fx.catalog.EXPECT().
		ListProductNames(ctx).
		Return([]string{"Refrigerator", "Washing Machine"}, nil)

	result, err := fx.service.SearchDeals(ctx, &usecase.SearchDealsInput{Product: "frigde", Latitude: 12.97, Longitude: 77.59})
	require.NoError(t, err)

	assert.NotNil(t, result.Deals)
	assert.Empty(t, result.Deals)
	assert.Equal(t, []string{"Refrigerator"}, result.Suggestions)
	assert.Zero(t, result.DealsFound)
}

func TestDealService_SearchDeals_OpenOnlyAndLimit(t *testing.T) {
	fx := createTestDealService(t)
	ctx := context.Background()

	closed := testOffer(t, "Microwave", "closed", 90, withHours(9, 20))
	lateA := testOffer(t, "Microwave", "late-a", 100, withHours(9, 23), withRatings(5))
	lateB := testOffer(t, "Microwave", "late-b", 120, withHours(10, 24), withRatings(5))

	fx.catalog.EXPECT().
		FindOffersByProduct(ctx, "Microwave").
		Return([]*entity.Offer{closed, lateA, lateB}, nil).
		Twice()

	all, err := fx.service.SearchDeals(ctx, &usecase.SearchDealsInput{Product: "Microwave", OpenOnly: true})
	require.NoError(t, err)
	require.Len(t, all.Deals, 2)
	for _, deal := range all.Deals {
		assert.True(t, deal.IsOpen)
	}

	limited, err := fx.service.SearchDeals(ctx, &usecase.SearchDealsInput{Product: "Microwave", OpenOnly: true, Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited.Deals, 1)
	assert.Equal(t, "late-a", limited.Deals[0].Offer.SellerID)
	assert.Equal(t, 1, limited.DealsFound)
}

func TestDealService_SearchDeals_TopDiscount(t *testing.T) {
	fx := createTestDealService(t)
	ctx := context.Background()

	fx.catalog.EXPECT().
		FindOffersByProduct(ctx, "Refrigerator").
		Return([]*entity.Offer{
			testOffer(t, "Refrigerator", "s1", 25000, withSale(22500)),
			testOffer(t, "Refrigerator", "s2", 24000),
		}, nil)

	result, err := fx.service.SearchDeals(ctx, &usecase.SearchDealsInput{Product: "Refrigerator"})
	require.NoError(t, err)
	assert.InDelta(t, 10.0, result.TopDiscountPercent, 1e-9)
}

func TestDealService_SearchDeals_Validation(t *testing.T) {
	fx := createTestDealService(t)
	ctx := context.Background()

	_, err := fx.service.SearchDeals(ctx, &usecase.SearchDealsInput{Product: "Fridge", Latitude: 91})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)

	_, err = fx.service.SearchDeals(ctx, &usecase.SearchDealsInput{Product: "Fridge", Longitude: -181})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)

	_, err = fx.service.SearchDeals(ctx, &usecase.SearchDealsInput{Product: "   "})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.SearchDeals(ctx, nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDealService_SearchDeals_RepositoryError(t *testing.T) {
	fx := createTestDealService(t)
	ctx := context.Background()
	boom := errors.New("connection reset")

	fx.catalog.EXPECT().
		FindOffersByProduct(ctx, "Fridge").
		Return(nil, boom)

	_, err := fx.service.SearchDeals(ctx, &usecase.SearchDealsInput{Product: "Fridge"})
	assert.ErrorIs(t, err, boom)
}

func TestDealService_SuggestProducts(t *testing.T) {
	fx := createTestDealService(t)
	ctx := context.Background()

	fx.catalog.EXPECT().
		ListProductNames(ctx).
		Return([]string{"Air Conditioner", "Refrigerator", "Washing Machine"}, nil)

	got, err := fx.service.SuggestProducts(ctx, "washing mchine")
	require.NoError(t, err)
	assert.Equal(t, "Washing Machine", got[0])

	empty, err := fx.service.SuggestProducts(ctx, " ")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDealService_SuggestProducts_UsesConfig(t *testing.T) {
	catalog := mockRepo.NewMockCatalogRepository(t)
	cfg := &config.Config{Suggest: &config.SuggestConfig{MaxResults: 1, Cutoff: 0.1}}
	service := NewDealService(catalog, NewRanker(cfg), clock.Fixed(evening), discardLogger(), cfg)
	ctx := context.Background()

	catalog.EXPECT().
		ListProductNames(ctx).
		Return([]string{"Oven", "Oven Toaster", "Microwave Oven"}, nil)

	got, err := service.SuggestProducts(ctx, "oven")
	require.NoError(t, err)
	assert.Equal(t, []string{"Oven"}, got)
}

func TestDealService_ListProducts(t *testing.T) {
	fx := createTestDealService(t)
	ctx := context.Background()

	fx.catalog.EXPECT().
		ListOffers(ctx).
		Return([]*entity.Offer{
			testOffer(t, "Microwave", "s1", 9000),
			testOffer(t, "Refrigerator", "s1", 25000, withSale(22500)),
			testOffer(t, "refrigerator", "s2", 24000),
			testOffer(t, "Refrigerator", "s3", 30000, withSale(21000)),
		}, nil)

	summaries, err := fx.service.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "Microwave", summaries[0].Name)
	assert.Equal(t, 1, summaries[0].OfferCount)
	assert.True(t, decimal.NewFromInt(9000).Equal(summaries[0].LowestPrice))
	assert.Zero(t, summaries[0].TopDiscountPercent)

	assert.Equal(t, "Refrigerator", summaries[1].Name)
	assert.Equal(t, 3, summaries[1].OfferCount)
	assert.True(t, decimal.NewFromInt(21000).Equal(summaries[1].LowestPrice))
	assert.InDelta(t, 30.0, summaries[1].TopDiscountPercent, 1e-9)
}

func TestDealService_ListProducts_EmptyCatalog(t *testing.T) {
	fx := createTestDealService(t)
	ctx := context.Background()

	fx.catalog.EXPECT().ListOffers(ctx).Return([]*entity.Offer{}, nil)

	summaries, err := fx.service.ListProducts(ctx)
	require.NoError(t, err)
	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)
}

func TestDealService_GetCatalogStats(t *testing.T) {
	tests := []struct {
		name   string
		offers []*entity.Offer
		want   *entity.CatalogStats
	}{
		{
			name:   "empty catalog",
			offers: []*entity.Offer{},
			want:   &entity.CatalogStats{},
		},
		{
			name: "counts distinct products and sellers",
			offers: []*entity.Offer{
				testOffer(t, "Microwave", "s1", 9000),
				testOffer(t, "Refrigerator", "s1", 25000, withSale(22500)),
				testOffer(t, "refrigerator", "s2", 24000),
				testOffer(t, "Refrigerator", "s3", 30000, withSale(21000)),
				testOffer(t, "Toaster", "s2", 2000, withSale(1400)),
			},
			want: &entity.CatalogStats{
				ProductCount:       3,
				SellerCount:        3,
				OfferCount:         5,
				DealCount:          3,
				TopDiscountPercent: 30,
				TopDiscountProduct: "Refrigerator",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDealService(t)
			ctx := context.Background()

			fx.catalog.EXPECT().ListOffers(ctx).Return(tt.offers, nil)

			stats, err := fx.service.GetCatalogStats(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want.ProductCount, stats.ProductCount)
			assert.Equal(t, tt.want.SellerCount, stats.SellerCount)
			assert.Equal(t, tt.want.OfferCount, stats.OfferCount)
			assert.Equal(t, tt.want.DealCount, stats.DealCount)
			assert.InDelta(t, tt.want.TopDiscountPercent, stats.TopDiscountPercent, 1e-9)
			assert.Equal(t, tt.want.TopDiscountProduct, stats.TopDiscountProduct)
		})
	}
}

func TestDealService_GetCatalogStats_StoreError(t *testing.T) {
	fx := createTestDealService(t)
	ctx := context.Background()

	fx.catalog.EXPECT().ListOffers(ctx).Return(nil, errors.New("connection reset"))

	_, err := fx.service.GetCatalogStats(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list offers")
}

func TestNewRanker_ConfigOverrides(t *testing.T) {
	cfg := &config.Config{Ranking: &config.RankingConfig{DistanceWeight: 2}}

	weights := NewRanker(cfg).Scorer().Weights()
	assert.InDelta(t, 50.0, weights.PriceSpan, 1e-9)
	assert.InDelta(t, 2.0, weights.DistanceWeight, 1e-9)
	assert.InDelta(t, 3.0, weights.RatingWeight, 1e-9)
}
