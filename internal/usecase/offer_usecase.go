package usecase

import (
	"context"

	"lowkey/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// UpsertOfferInput represents a seller's listing for one product
type UpsertOfferInput struct {
	ProductName  string
	Description  string
	RegularPrice decimal.Decimal
	SalePrice    decimal.NullDecimal
	Location     entity.Coordinate
	OpenHours    entity.HourWindow
	OpenDays     entity.Weekdays
}

// OfferUsecase defines the seller inventory and buyer rating use cases
type OfferUsecase interface {
	// UpsertOffer creates or replaces the seller's offer for a product.
	// Buyer ratings of a replaced offer are kept.
	UpsertOffer(ctx context.Context, sellerID string, input *UpsertOfferInput) (*entity.Offer, error)

	// RemoveOffer deletes the seller's offer for a product
	RemoveOffer(ctx context.Context, sellerID, productName string) error

	// GetOffer returns one seller's offer for a product
	GetOffer(ctx context.Context, productName, sellerID string) (*entity.Offer, error)

	// GetSellerOffers lists every offer of a seller
	GetSellerOffers(ctx context.Context, sellerID string) ([]*entity.Offer, error)

	// RateOffer records a buyer rating from 1 to 5
	RateOffer(ctx context.Context, productName, sellerID string, rating int) (*entity.Offer, error)

	// ReserveDeal holds a seller's current offer for a buyer at its
	// effective price
	ReserveDeal(ctx context.Context, productName, sellerID string) (*entity.Reservation, error)
}
