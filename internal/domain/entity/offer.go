package entity

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	domainerrors "lowkey/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// MinRating and MaxRating bound a single buyer rating.
	MinRating = 1
	MaxRating = 5

	// PriceScale is the number of decimal places a price may carry.
	PriceScale = 2

	// MaxDescriptionLength bounds Offer.Description in runes.
	MaxDescriptionLength = 1000
)

// MaxPrice is the largest price the catalog stores, numeric(14,2).
var MaxPrice = decimal.RequireFromString("999999999999.99")

// Offer is one seller's listing for one product.
// A catalog holds at most one Offer per (ProductKey, SellerID).
type Offer struct {
	ID           uuid.UUID           `json:"id"`
	ProductName  string              `json:"product_name"`  // Display name as the seller typed it.
	SellerID     string              `json:"seller_id"`     // Opaque seller identifier.
	Description  string              `json:"description,omitempty"`
	RegularPrice decimal.Decimal     `json:"regular_price"` // Never negative.
	SalePrice    decimal.NullDecimal `json:"sale_price"`    // Applies only when lower than RegularPrice.
	Location     Coordinate          `json:"location"`
	OpenHours    HourWindow          `json:"open_hours"`
	OpenDays     Weekdays            `json:"open_days"`
	Ratings      []int               `json:"ratings"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// OfferParams carries the seller-supplied fields of an Offer.
type OfferParams struct {
	ProductName  string
	SellerID     string
	Description  string
	RegularPrice decimal.Decimal
	SalePrice    decimal.NullDecimal
	Location     Coordinate
	OpenHours    HourWindow
	OpenDays     Weekdays
	Ratings      []int
}

// NewOffer validates params and returns a fresh Offer.
func NewOffer(params OfferParams) (*Offer, error) {
	offer := &Offer{
		ID:           uuid.New(),
		ProductName:  strings.TrimSpace(params.ProductName),
		SellerID:     strings.TrimSpace(params.SellerID),
		Description:  strings.TrimSpace(params.Description),
		RegularPrice: params.RegularPrice,
		SalePrice:    params.SalePrice,
		Location:     params.Location,
		OpenHours:    params.OpenHours,
		OpenDays:     params.OpenDays,
		Ratings:      slices.Clone(params.Ratings),
	}

	if err := offer.Validate(); err != nil {
		return nil, err
	}

	return offer, nil
}

// Validate checks every invariant of the offer.
func (o *Offer) Validate() error {
	if o.ProductName == "" {
		return domainerrors.ErrInvalidOffer.WithDetails("product name is required")
	}
	if o.SellerID == "" {
		return domainerrors.ErrInvalidOffer.WithDetails("seller id is required")
	}
	if utf8.RuneCountInString(o.Description) > MaxDescriptionLength {
		return domainerrors.ErrInvalidOffer.WithDetails(fmt.Sprintf("description exceeds %d characters", MaxDescriptionLength))
	}
	if err := validatePrice("regular price", o.RegularPrice); err != nil {
		return err
	}
	if o.SalePrice.Valid {
		if err := validatePrice("sale price", o.SalePrice.Decimal); err != nil {
			return err
		}
	}
	if err := o.Location.Validate(); err != nil {
		return err
	}
	if err := o.OpenHours.Validate(); err != nil {
		return err
	}
	for _, r := range o.Ratings {
		if err := ValidateRating(r); err != nil {
			return err
		}
	}

	return nil
}

func validatePrice(field string, price decimal.Decimal) error {
	switch {
	case price.IsNegative():
		return domainerrors.ErrInvalidOffer.WithDetails(field + " must not be negative")
	case !price.Equal(price.Round(PriceScale)):
		return domainerrors.ErrInvalidOffer.WithDetails(fmt.Sprintf("%s must have at most %d decimal places", field, PriceScale))
	case price.GreaterThan(MaxPrice):
		return domainerrors.ErrInvalidOffer.WithDetails(field + " exceeds " + MaxPrice.String())
	}

	return nil
}

// ValidateRating rejects ratings outside [MinRating, MaxRating].
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return domainerrors.ErrInvalidRating.WithDetails(fmt.Sprintf("got %d", rating))
	}

	return nil
}

// Key returns the catalog key of the offer's product.
func (o *Offer) Key() string {
	return ProductKey(o.ProductName)
}

// OnSale reports whether a sale price is set and strictly below the regular price.
func (o *Offer) OnSale() bool {
	return o.SalePrice.Valid &&
		!o.SalePrice.Decimal.IsNegative() &&
		o.SalePrice.Decimal.LessThan(o.RegularPrice)
}

// EffectivePrice is the sale price when OnSale, otherwise the regular price.
func (o *Offer) EffectivePrice() decimal.Decimal {
	if o.OnSale() {
		return o.SalePrice.Decimal
	}

	return o.RegularPrice
}

// DiscountPercent is the sale discount relative to the regular price,
// rounded to one decimal place. Zero when not on sale.
func (o *Offer) DiscountPercent() float64 {
	if !o.OnSale() || o.RegularPrice.IsZero() {
		return 0
	}

	saved := o.RegularPrice.Sub(o.SalePrice.Decimal)

	return saved.Div(o.RegularPrice).Mul(decimal.NewFromInt(100)).Round(1).InexactFloat64()
}

// AverageRating is the mean of Ratings, or 0 when there are none.
func (o *Offer) AverageRating() float64 {
	if len(o.Ratings) == 0 {
		return 0
	}

	sum := 0
	for _, r := range o.Ratings {
		sum += r
	}

	return float64(sum) / float64(len(o.Ratings))
}

// AddRating appends a buyer rating after validating it.
func (o *Offer) AddRating(rating int) error {
	if err := ValidateRating(rating); err != nil {
		return err
	}
	o.Ratings = append(o.Ratings, rating)

	return nil
}

// Clone returns a deep copy that shares no mutable state with o.
func (o *Offer) Clone() *Offer {
	if o == nil {
		return nil
	}

	cloned := *o
	cloned.Ratings = slices.Clone(o.Ratings)

	return &cloned
}

// ProductKey normalizes a product name for case-insensitive catalog lookups.
func ProductKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// RankedResult is an Offer annotated with the figures used to rank it.
type RankedResult struct {
	Offer          *Offer          `json:"offer"`
	DistanceKm     float64         `json:"distance_km"`
	AverageRating  float64         `json:"average_rating"`
	IsOpen         bool            `json:"is_open"`
	EffectivePrice decimal.Decimal `json:"effective_price"`
	EffortScore    float64         `json:"effort_score"` // Lower is a better deal.
}

// ProductSummary is the browse view of one catalog product.
type ProductSummary struct {
	Name               string          `json:"name"`
	OfferCount         int             `json:"offer_count"`
	LowestPrice        decimal.Decimal `json:"lowest_price"`
	TopDiscountPercent float64         `json:"top_discount_percent"`
}

// CatalogStats is the catalog-wide overview shown on the home page.
type CatalogStats struct {
	ProductCount       int     `json:"product_count"`
	SellerCount        int     `json:"seller_count"` // Distinct sellers with at least one offer.
	OfferCount         int     `json:"offer_count"`
	DealCount          int     `json:"deal_count"` // Offers currently on sale.
	TopDiscountPercent float64 `json:"top_discount_percent"`
	TopDiscountProduct string  `json:"top_discount_product,omitempty"`
}

// Reservation is a buyer's hold on one seller's offer.
type Reservation struct {
	ID             uuid.UUID       `json:"id"`
	ProductName    string          `json:"product_name"`
	SellerID       string          `json:"seller_id"`
	OfferID        uuid.UUID       `json:"offer_id"`
	EffectivePrice decimal.Decimal `json:"effective_price"`
	ReservedAt     time.Time       `json:"reserved_at"`
}
