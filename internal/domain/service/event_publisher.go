package service

import (
	"context"
	"time"
)

// Offer event types.
const (
	OfferEventUpserted = "offer.upserted"
	OfferEventRemoved  = "offer.removed"
	OfferEventRated    = "offer.rated"
	OfferEventReserved = "offer.reserved"
)

// OfferEvent announces a change to a seller's offer.
type OfferEvent struct {
	EventID     string `json:"event_id"`
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	Type        string `json:"type"`
	ProductName string `json:"product_name"`
	SellerID    string `json:"seller_id"`
	OfferID     string `json:"offer_id,omitempty"`
	Price       string `json:"effective_price,omitempty"`
	// RegularPrice and DiscountPercent are set on upserts
	RegularPrice    string    `json:"regular_price,omitempty"`
	DiscountPercent float64   `json:"discount_percent,omitempty"`
	ReservationID   string    `json:"reservation_id,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOfferEvent publishes an offer change for downstream consumers
	PublishOfferEvent(ctx context.Context, event *OfferEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
