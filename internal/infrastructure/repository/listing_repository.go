package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sandzahub/sebenza-api/internal/domain/entity"
	"github.com/sandzahub/sebenza-api/internal/domain/enum"
	domainRepo "github.com/sandzahub/sebenza-api/internal/domain/repository"
	"gorm.io/gorm"
)

type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository creates a new listing repository
func NewListingRepository(db *gorm.DB) domainRepo.ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

func (r *listingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	var listing entity.Listing
	err := r.db.WithContext(ctx).
		Preload("Seller").
		First(&listing, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &listing, err
}

func (r *listingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	return r.db.WithContext(ctx).Save(listing).Error
}

func (r *listingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Listing{}, "id = ?", id).Error
}

func (r *listingRepository) List(ctx context.Context, params *domainRepo.ListingFilterParams) ([]entity.Listing, int64, error) {
	var listings []entity.Listing
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Listing{})

	if params.SellerID != nil {
		query = query.Where("seller_id = ?", *params.SellerID)
	}

	if params.Search != "" {
		query = query.Where("title ILIKE ? OR breed ILIKE ? OR location ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.MinPrice != nil {
		query = query.Where("price >= ?", *params.MinPrice)
	}

	if params.MaxPrice != nil {
		query = query.Where("price <= ?", *params.MaxPrice)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sorting
	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder != "" && (params.SortOrder == "ASC" || params.SortOrder == "asc") {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Seller").
		Order(sortBy + " " + sortOrder).
		Find(&listings).Error

	return listings, total, err
}

func (r *listingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.ListingStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Listing{}).
		Where("id = ?", id).
		Update("status", status).Error
}
