package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"lowkey/config"
	"lowkey/internal/domain/entity"
	domainerrors "lowkey/internal/domain/errors"
	"lowkey/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunDB renders SQL without a server. Statements are logged to the
// returned buffer through the slog GORM logger.
func newDryRunDB(t *testing.T) (*gorm.DB, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost user=lowkey dbname=lowkey sslmode=disable"}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, cfg),
	})
	require.NoError(t, err)

	return db, &buf
}

func fridge(t *testing.T) *entity.Offer {
	t.Helper()

	offer, err := entity.NewOffer(entity.OfferParams{
		ProductName:  "  Double Door  Refrigerator ",
		SellerID:     "seller-1",
		Description:  "Frost free, 2 years warranty",
		RegularPrice: decimal.RequireFromString("25000.50"),
		SalePrice:    decimal.NewNullDecimal(decimal.NewFromInt(23000)),
		Location:     entity.Coordinate{Lat: 12.97, Lng: 77.59},
		OpenHours:    entity.HourWindow{Start: 9, End: 21},
		OpenDays:     entity.NewWeekdays(time.Monday, time.Saturday),
		Ratings:      []int{4, 5},
	})
	require.NoError(t, err)

	return offer
}

func TestOfferModelConversion(t *testing.T) {
	offer := fridge(t)
	offer.UpdatedAt = time.Date(2026, time.October, 19, 20, 0, 0, 0, time.UTC)

	m := fromOfferDomain(offer)
	assert.Equal(t, "double door refrigerator", m.ProductKey)
	assert.Equal(t, "Double Door  Refrigerator", m.ProductName)
	assert.Equal(t, int16(9), m.OpenStart)
	assert.Equal(t, int16(21), m.OpenEnd)
	assert.Equal(t, "Frost free, 2 years warranty", m.Description)

	back := toOfferDomain(m)
	assert.Equal(t, offer, back)

	m.Ratings = nil
	assert.Equal(t, []int{}, toOfferDomain(m).Ratings)
	assert.Nil(t, toOfferDomain(nil))
}

func TestCatalogRepository_UpsertRendersOnConflict(t *testing.T) {
	db, logs := newDryRunDB(t)
	repo := NewCatalogRepository(db)

	offer := fridge(t)
	require.NoError(t, repo.UpsertOffer(context.Background(), offer))

	sql := logs.String()
	assert.Contains(t, sql, `INSERT INTO \"offers\"`)
	assert.Contains(t, sql, `ON CONFLICT (\"product_key\",\"seller_id\") DO UPDATE SET`)
	assert.Contains(t, sql, `\"ratings\"=\"excluded\".\"ratings\"`)
	assert.Contains(t, sql, `\"description\"=\"excluded\".\"description\"`)
	assert.Contains(t, sql, `RETURNING \"id\",\"created_at\"`)
	assert.NotEqual(t, uuid.Nil, offer.ID)
}

func TestCatalogRepository_UpsertValidatesFirst(t *testing.T) {
	db, logs := newDryRunDB(t)
	repo := NewCatalogRepository(db)

	offer := fridge(t)
	offer.OpenHours = entity.HourWindow{Start: 21, End: 9}

	err := repo.UpsertOffer(context.Background(), offer)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOffer)
	assert.Empty(t, logs.String())

	assert.ErrorIs(t, repo.UpsertOffer(context.Background(), nil), domainerrors.ErrInvalidOffer)
}

func TestCatalogRepository_ListProductNamesUsesLowestSeller(t *testing.T) {
	db, logs := newDryRunDB(t)
	repo := NewCatalogRepository(db)

	names, err := repo.ListProductNames(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
	assert.Contains(t, logs.String(), "SELECT DISTINCT ON (product_key) product_name FROM offers ORDER BY product_key, seller_id")
}

func TestCatalogRepository_FindOfferLocksInsideTransaction(t *testing.T) {
	db, logs := newDryRunDB(t)

	locked := &catalogRepository{db: db, forUpdate: true}
	_, _ = locked.FindOffer(context.Background(), "Refrigerator", "seller-1")
	assert.Contains(t, logs.String(), "FOR UPDATE")
	assert.Contains(t, logs.String(), `product_key = 'refrigerator'`)

	logs.Reset()
	_, _ = NewCatalogRepository(db).FindOffer(context.Background(), "Refrigerator", "seller-1")
	assert.NotContains(t, logs.String(), "FOR UPDATE")
}

func TestCatalogRepository_AppendRatingRejectsOutOfRange(t *testing.T) {
	db, logs := newDryRunDB(t)
	repo := NewCatalogRepository(db)

	_, err := repo.AppendRating(context.Background(), "Refrigerator", "seller-1", 6)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRating)
	assert.Empty(t, logs.String())
}

func TestConstraintErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		check    bool
		notNull  bool
		overflow bool
	}{
		{name: "check", err: gorm.ErrCheckConstraintViolated, check: true},
		{name: "check sqlstate", err: errors.New(`violates check constraint "chk_offers_open_hours" (SQLSTATE 23514)`), check: true},
		{name: "not null", err: errors.New(`null value in column "product_name" (SQLSTATE 23502)`), notNull: true},
		{name: "numeric overflow", err: errors.New("ERROR: numeric field overflow (SQLSTATE 22003)"), overflow: true},
		{name: "other", err: errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.check, isCheckConstraintViolation(tt.err))
			assert.Equal(t, tt.notNull, isNotNullConstraintViolation(tt.err))
			assert.Equal(t, tt.overflow, isNumericOverflow(tt.err))
		})
	}
}
