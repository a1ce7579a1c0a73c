// Package model holds the GORM table mappings.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OfferModel is the GORM-specific struct for the 'offers' table.
// One row per (product_key, seller_id). Price columns match entity.PriceScale
// and entity.MaxPrice.
type OfferModel struct {
	ID           uuid.UUID           `gorm:"type:uuid;primaryKey"`
	ProductKey   string              `gorm:"type:varchar(200);not null;uniqueIndex:idx_offers_product_seller,priority:1"`
	ProductName  string              `gorm:"type:varchar(200);not null"`
	SellerID     string              `gorm:"type:varchar(100);not null;uniqueIndex:idx_offers_product_seller,priority:2;index"`
	Description  string              `gorm:"type:text;not null;default:''"`
	RegularPrice decimal.Decimal     `gorm:"type:numeric(14,2);not null;check:chk_offers_regular_price,regular_price >= 0"`
	SalePrice    decimal.NullDecimal `gorm:"type:numeric(14,2);check:chk_offers_sale_price,sale_price IS NULL OR sale_price >= 0"`
	Latitude     float64             `gorm:"not null;check:chk_offers_latitude,latitude BETWEEN -90 AND 90"`
	Longitude    float64             `gorm:"not null;check:chk_offers_longitude,longitude BETWEEN -180 AND 180"`
	OpenStart    int16               `gorm:"not null"`
	OpenEnd      int16               `gorm:"not null;check:chk_offers_open_hours,open_start >= 0 AND open_start < open_end AND open_end <= 24"`
	OpenDays     int16               `gorm:"not null"`
	Ratings      []int               `gorm:"type:jsonb;not null;default:'[]';serializer:json"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}
