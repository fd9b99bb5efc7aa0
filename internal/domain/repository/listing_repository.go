package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sandzahub/sebenza-api/internal/domain/entity"
	"github.com/sandzahub/sebenza-api/internal/domain/enum"
	"github.com/sandzahub/sebenza-api/pkg/pagination"
)

// ListingRepository defines the interface for marketplace listing data operations
type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)
	Update(ctx context.Context, listing *entity.Listing) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ListingFilterParams) ([]entity.Listing, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.ListingStatus) error
}

// ListingFilterParams contains filtering parameters for listing queries
type ListingFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   string
	Status     *enum.ListingStatus
	SellerID   *uuid.UUID
	MinPrice   *float64
	MaxPrice   *float64
	SortBy     string
	SortOrder  string
}
