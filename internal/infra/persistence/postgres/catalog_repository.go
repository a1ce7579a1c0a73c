package postgres

import (
	"context"
	"fmt"

	"lowkey/internal/domain/entity"
	domainerrors "lowkey/internal/domain/errors"
	"lowkey/internal/domain/repository"
	"lowkey/internal/errors"
	"lowkey/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// upsertColumns are overwritten when an offer for the same product and seller exists.
var upsertColumns = []string{
	"product_name",
	"description",
	"regular_price",
	"sale_price",
	"latitude",
	"longitude",
	"open_start",
	"open_end",
	"open_days",
	"ratings",
	"updated_at",
}

// catalogRepository implements the repository.CatalogRepository interface.
type catalogRepository struct {
	db *gorm.DB
	// forUpdate locks rows read by FindOffer until the transaction ends.
	forUpdate bool
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// FindOffersByProduct retrieves every seller's offer for a product.
func (repo *catalogRepository) FindOffersByProduct(ctx context.Context, productName string) ([]*entity.Offer, error) {
	var offerModels []*model.OfferModel

	if err := repo.db.WithContext(ctx).
		Where("product_key = ?", entity.ProductKey(productName)).
		Order("seller_id").
		Find(&offerModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find offers by product")
	}

	return toOfferDomains(offerModels), nil
}

// FindOffer retrieves one seller's offer for a product.
func (repo *catalogRepository) FindOffer(ctx context.Context, productName, sellerID string) (*entity.Offer, error) {
	var offerM model.OfferModel

	query := repo.db.WithContext(ctx)
	if repo.forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := query.
		Where("product_key = ? AND seller_id = ?", entity.ProductKey(productName), sellerID).
		First(&offerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrOfferNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find offer")
	}

	return toOfferDomain(&offerM), nil
}

// FindOffersBySeller retrieves all offers of a seller.
func (repo *catalogRepository) FindOffersBySeller(ctx context.Context, sellerID string) ([]*entity.Offer, error) {
	var offerModels []*model.OfferModel

	if err := repo.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("product_key").
		Find(&offerModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find offers by seller")
	}

	return toOfferDomains(offerModels), nil
}

// ListProductNames returns the display name of every product. The name of
// the lowest seller ID wins when sellers spell a product differently.
func (repo *catalogRepository) ListProductNames(ctx context.Context) ([]string, error) {
	names := make([]string, 0)

	if err := repo.db.WithContext(ctx).
		Raw("SELECT DISTINCT ON (product_key) product_name FROM offers ORDER BY product_key, seller_id").
		Scan(&names).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list product names")
	}

	return names, nil
}

// ListOffers returns the whole catalog.
func (repo *catalogRepository) ListOffers(ctx context.Context) ([]*entity.Offer, error) {
	var offerModels []*model.OfferModel

	if err := repo.db.WithContext(ctx).
		Order("product_key").
		Order("seller_id").
		Find(&offerModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list offers")
	}

	return toOfferDomains(offerModels), nil
}

// UpsertOffer inserts the offer or replaces the row with the same product key
// and seller. The stored row ID is written back to offer.
func (repo *catalogRepository) UpsertOffer(ctx context.Context, offer *entity.Offer) error {
	if offer == nil {
		return domainerrors.ErrInvalidOffer.WithDetails("offer is required")
	}
	if err := offer.Validate(); err != nil {
		return err
	}

	offerM := fromOfferDomain(offer)
	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "product_key"}, {Name: "seller_id"}},
				DoUpdates: clause.AssignmentColumns(upsertColumns),
			},
			clause.Returning{Columns: []clause.Column{{Name: "id"}, {Name: "created_at"}}},
		).
		Create(offerM).Error
	if err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) || isNumericOverflow(err) {
			return domainerrors.ErrInvalidOffer.WithDetails("rejected by catalog constraints")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert offer")
	}

	offer.ID = offerM.ID

	return nil
}

// DeleteOffer removes one seller's offer for a product.
func (repo *catalogRepository) DeleteOffer(ctx context.Context, productName, sellerID string) error {
	result := repo.db.WithContext(ctx).
		Where("product_key = ? AND seller_id = ?", entity.ProductKey(productName), sellerID).
		Delete(&model.OfferModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete offer")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrOfferNotFound
	}

	return nil
}

// AppendRating adds a rating in one statement so concurrent raters never
// overwrite each other.
func (repo *catalogRepository) AppendRating(ctx context.Context, productName, sellerID string, rating int) (*entity.Offer, error) {
	if err := entity.ValidateRating(rating); err != nil {
		return nil, err
	}

	var offerM model.OfferModel
	result := repo.db.WithContext(ctx).
		Model(&offerM).
		Clauses(clause.Returning{}).
		Where("product_key = ? AND seller_id = ?", entity.ProductKey(productName), sellerID).
		UpdateColumn("ratings", gorm.Expr("ratings || ?::jsonb", fmt.Sprintf("[%d]", rating)))
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to append rating")
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrOfferNotFound
	}

	return toOfferDomain(&offerM), nil
}

// toOfferDomain converts a GORM OfferModel to a domain Offer entity.
func toOfferDomain(data *model.OfferModel) *entity.Offer {
	if data == nil {
		return nil
	}

	ratings := data.Ratings
	if ratings == nil {
		ratings = []int{}
	}

	return &entity.Offer{
		ID:           data.ID,
		ProductName:  data.ProductName,
		SellerID:     data.SellerID,
		Description:  data.Description,
		RegularPrice: data.RegularPrice,
		SalePrice:    data.SalePrice,
		Location:     entity.Coordinate{Lat: data.Latitude, Lng: data.Longitude},
		OpenHours:    entity.HourWindow{Start: int(data.OpenStart), End: int(data.OpenEnd)},
		OpenDays:     entity.Weekdays(data.OpenDays),
		Ratings:      ratings,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toOfferDomains(models []*model.OfferModel) []*entity.Offer {
	offers := make([]*entity.Offer, 0, len(models))
	for _, m := range models {
		offers = append(offers, toOfferDomain(m))
	}

	return offers
}

// fromOfferDomain converts a domain Offer entity to a GORM OfferModel.
func fromOfferDomain(data *entity.Offer) *model.OfferModel {
	if data == nil {
		return nil
	}

	ratings := data.Ratings
	if ratings == nil {
		ratings = []int{}
	}

	return &model.OfferModel{
		ID:           data.ID,
		ProductKey:   data.Key(),
		ProductName:  data.ProductName,
		SellerID:     data.SellerID,
		Description:  data.Description,
		RegularPrice: data.RegularPrice,
		SalePrice:    data.SalePrice,
		Latitude:     data.Location.Lat,
		Longitude:    data.Location.Lng,
		OpenStart:    int16(data.OpenHours.Start),
		OpenEnd:      int16(data.OpenHours.End),
		OpenDays:     int16(data.OpenDays),
		Ratings:      ratings,
		UpdatedAt:    data.UpdatedAt,
	}
}
