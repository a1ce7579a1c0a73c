// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "lowkey/internal/delivery/context"
	"lowkey/internal/domain/entity"
	domainerrors "lowkey/internal/domain/errors"
	"lowkey/internal/domain/repository"
	"lowkey/internal/domain/service"
	"lowkey/internal/errors"
	"lowkey/internal/usecase"

	"github.com/google/uuid"
)

// offerService implements the OfferUsecase interface.
type offerService struct {
	catalog   repository.CatalogRepository
	txManager repository.TransactionManager
	publisher service.EventPublisher
	clock     service.Clock
	logger    *slog.Logger
}

// NewOfferService is the constructor for offerService.
func NewOfferService(
	catalog repository.CatalogRepository,
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	clock service.Clock,
	logger *slog.Logger,
) usecase.OfferUsecase {
	return &offerService{
		catalog:   catalog,
		txManager: txManager,
		publisher: publisher,
		clock:     clock,
		logger:    logger,
	}
}

func (srv *offerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpsertOffer validates the listing and stores it in one transaction so the
// ratings of the offer being replaced are carried over.
func (srv *offerService) UpsertOffer(ctx context.Context, sellerID string, input *usecase.UpsertOfferInput) (*entity.Offer, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidOffer.WithDetails("offer is required")
	}

	var stored *entity.Offer
	err := srv.txManager.Execute(ctx, func(catalog repository.CatalogRepository) error {
		var ratings []int
		existing, err := catalog.FindOffer(ctx, input.ProductName, sellerID)
		switch {
		case err == nil:
			ratings = existing.Ratings
		case errors.Is(err, domainerrors.ErrOfferNotFound):
		default:
			return errors.Wrap(err, "failed to find existing offer")
		}

		offer, err := entity.NewOffer(entity.OfferParams{
			ProductName:  input.ProductName,
			SellerID:     sellerID,
			Description:  input.Description,
			RegularPrice: input.RegularPrice,
			SalePrice:    input.SalePrice,
			Location:     input.Location,
			OpenHours:    input.OpenHours,
			OpenDays:     input.OpenDays,
			Ratings:      ratings,
		})
		if err != nil {
			return err
		}
		offer.UpdatedAt = srv.clock.Now()

		if err := catalog.UpsertOffer(ctx, offer); err != nil {
			return errors.Wrap(err, "failed to upsert offer")
		}
		stored = offer

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to upsert offer",
			slog.String("seller_id", sellerID),
			slog.String("product", input.ProductName),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.publish(ctx, &service.OfferEvent{
		Type:            service.OfferEventUpserted,
		ProductName:     stored.ProductName,
		SellerID:        stored.SellerID,
		OfferID:         stored.ID.String(),
		Price:           stored.EffectivePrice().String(),
		RegularPrice:    stored.RegularPrice.String(),
		DiscountPercent: stored.DiscountPercent(),
	})

	return stored, nil
}

// RemoveOffer deletes the seller's offer for the product.
func (srv *offerService) RemoveOffer(ctx context.Context, sellerID, productName string) error {
	if strings.TrimSpace(productName) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("product is required")
	}

	if err := srv.catalog.DeleteOffer(ctx, productName, sellerID); err != nil {
		if errors.Is(err, domainerrors.ErrOfferNotFound) {
			return err
		}

		return errors.Wrap(err, "failed to delete offer")
	}

	srv.publish(ctx, &service.OfferEvent{
		Type:        service.OfferEventRemoved,
		ProductName: strings.TrimSpace(productName),
		SellerID:    sellerID,
	})

	return nil
}

// GetOffer returns the seller's offer for the product.
func (srv *offerService) GetOffer(ctx context.Context, productName, sellerID string) (*entity.Offer, error) {
	offer, err := srv.catalog.FindOffer(ctx, productName, sellerID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrOfferNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to find offer")
	}

	return offer, nil
}

// GetSellerOffers lists every offer of the seller.
func (srv *offerService) GetSellerOffers(ctx context.Context, sellerID string) ([]*entity.Offer, error) {
	offers, err := srv.catalog.FindOffersBySeller(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find seller offers")
	}

	return offers, nil
}

// RateOffer appends a buyer rating after checking it is within 1 to 5.
func (srv *offerService) RateOffer(ctx context.Context, productName, sellerID string, rating int) (*entity.Offer, error) {
	if err := entity.ValidateRating(rating); err != nil {
		return nil, err
	}

	offer, err := srv.catalog.AppendRating(ctx, productName, sellerID, rating)
	if err != nil {
		if errors.Is(err, domainerrors.ErrOfferNotFound) || errors.Is(err, domainerrors.ErrInvalidRating) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to append rating")
	}

	srv.publish(ctx, &service.OfferEvent{
		Type:        service.OfferEventRated,
		ProductName: offer.ProductName,
		SellerID:    offer.SellerID,
		OfferID:     offer.ID.String(),
	})

	return offer, nil
}

// ReserveDeal holds the seller's current offer at its effective price. The
// reservation is announced as an event and is not stored.
func (srv *offerService) ReserveDeal(ctx context.Context, productName, sellerID string) (*entity.Reservation, error) {
	offer, err := srv.catalog.FindOffer(ctx, productName, sellerID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrOfferNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to find offer")
	}

	reservation := &entity.Reservation{
		ID:             uuid.New(),
		ProductName:    offer.ProductName,
		SellerID:       offer.SellerID,
		OfferID:        offer.ID,
		EffectivePrice: offer.EffectivePrice(),
		ReservedAt:     srv.clock.Now(),
	}

	srv.log(ctx).Info("Deal reserved",
		slog.String("reservation_id", reservation.ID.String()),
		slog.String("product", reservation.ProductName),
		slog.String("seller_id", reservation.SellerID),
	)

	srv.publish(ctx, &service.OfferEvent{
		Type:          service.OfferEventReserved,
		ProductName:   reservation.ProductName,
		SellerID:      reservation.SellerID,
		OfferID:       reservation.OfferID.String(),
		Price:         reservation.EffectivePrice.String(),
		ReservationID: reservation.ID.String(),
	})

	return reservation, nil
}

// publish is best effort: the catalog change already happened, so a failed
// publish is logged and swallowed.
func (srv *offerService) publish(ctx context.Context, event *service.OfferEvent) {
	event.EventID = uuid.NewString()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = srv.clock.Now()

	if err := srv.publisher.PublishOfferEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish offer event",
			slog.String("type", event.Type),
			slog.String("product", event.ProductName),
			slog.String("seller_id", event.SellerID),
			slog.Any("error", err),
		)
	}
}
