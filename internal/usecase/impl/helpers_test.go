package impl

import (
	"log/slog"
	"math"
	"testing"
	"time"

	"lowkey/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	origin = entity.Coordinate{Lat: 0, Lng: 0}
	// Monday 2026-10-19 at 20:00, inside a 9-21 window.
	evening = time.Date(2026, time.October, 19, 20, 0, 0, 0, time.UTC)
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// northOf returns the point km kilometers due north of origin.
func northOf(km float64) entity.Coordinate {
	return entity.Coordinate{Lat: km * 1000 / orb.EarthRadius * 180 / math.Pi, Lng: 0}
}

type offerOption func(*entity.OfferParams)

func withSale(price int64) offerOption {
	return func(p *entity.OfferParams) {
		p.SalePrice = decimal.NewNullDecimal(decimal.NewFromInt(price))
	}
}

func withHours(start, end int) offerOption {
	return func(p *entity.OfferParams) {
		p.OpenHours = entity.HourWindow{Start: start, End: end}
	}
}

func withRatings(ratings ...int) offerOption {
	return func(p *entity.OfferParams) {
		p.Ratings = ratings
	}
}

func withLocation(c entity.Coordinate) offerOption {
	return func(p *entity.OfferParams) {
		p.Location = c
	}
}

func testOffer(t *testing.T, product, seller string, price int64, opts ...offerOption) *entity.Offer {
	t.Helper()

	params := entity.OfferParams{
		ProductName:  product,
		SellerID:     seller,
		RegularPrice: decimal.NewFromInt(price),
		Location:     northOf(1),
		OpenHours:    entity.HourWindow{Start: 9, End: 21},
		OpenDays:     entity.AllWeek,
	}
	for _, opt := range opts {
		opt(&params)
	}

	offer, err := entity.NewOffer(params)
	require.NoError(t, err)

	return offer
}
