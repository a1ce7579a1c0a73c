// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"lowkey/internal/domain/entity"
)

// CatalogReader is the read side of the product catalog.
type CatalogReader interface {
	// FindOffersByProduct returns every seller's offer for the product,
	// matched by entity.ProductKey. An unknown product yields an empty slice.
	FindOffersByProduct(ctx context.Context, productName string) ([]*entity.Offer, error)

	// FindOffer returns one seller's offer for the product or
	// domainerrors.ErrOfferNotFound.
	FindOffer(ctx context.Context, productName, sellerID string) (*entity.Offer, error)

	// FindOffersBySeller returns all offers of a seller ordered by product key.
	FindOffersBySeller(ctx context.Context, sellerID string) ([]*entity.Offer, error)

	// ListProductNames returns one display name per product, ordered by product key.
	ListProductNames(ctx context.Context) ([]string, error)

	// ListOffers returns the whole catalog ordered by product key then seller.
	ListOffers(ctx context.Context) ([]*entity.Offer, error)
}

// CatalogWriter is the write side of the product catalog.
type CatalogWriter interface {
	// UpsertOffer stores the offer, replacing any offer with the same
	// product key and seller ID. Storing the same offer twice is a no-op.
	UpsertOffer(ctx context.Context, offer *entity.Offer) error

	// DeleteOffer removes one seller's offer for the product or returns
	// domainerrors.ErrOfferNotFound.
	DeleteOffer(ctx context.Context, productName, sellerID string) error

	// AppendRating adds a buyer rating to an existing offer and returns the
	// updated offer.
	AppendRating(ctx context.Context, productName, sellerID string, rating int) (*entity.Offer, error)
}

// CatalogRepository combines both sides of the catalog.
type CatalogRepository interface {
	CatalogReader
	CatalogWriter
}
