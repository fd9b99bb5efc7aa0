package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sandzahub/sebenza-api/internal/domain/entity"
	"github.com/sandzahub/sebenza-api/internal/domain/enum"
	"github.com/sandzahub/sebenza-api/internal/domain/repository"
	"github.com/sandzahub/sebenza-api/pkg/apperror"
	"github.com/sandzahub/sebenza-api/pkg/pagination"
)

// ListingService handles marketplace listing operations
type ListingService struct {
	listingRepo repository.ListingRepository
}

// NewListingService creates a new listing service
func NewListingService(listingRepo repository.ListingRepository) *ListingService {
	return &ListingService{listingRepo: listingRepo}
}

// CreateListingInput represents the input for creating a listing
type CreateListingInput struct {
	SellerID    uuid.UUID
	Title       string
	Description string
	Category    string
	Breed       string
	AgeMonths   int
	Quantity    int
	Price       float64
	Location    string
	ImageURL    *string
}

// CreateListing creates a new marketplace listing
func (s *ListingService) CreateListing(ctx context.Context, input *CreateListingInput) (*entity.Listing, error) {
	if input.Price <= 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "price", Message: "Price must be greater than zero"},
		})
	}

	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	listing := &entity.Listing{
		SellerID:    input.SellerID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Breed:       input.Breed,
		AgeMonths:   input.AgeMonths,
		Quantity:    quantity,
		Price:       input.Price,
		Location:    input.Location,
		ImageURL:    input.ImageURL,
		Status:      enum.ListingStatusActive,
	}

	if err := s.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

// GetListing retrieves a listing by ID
func (s *ListingService) GetListing(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	listing, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, apperror.NewNotFoundError("Listing")
	}
	return listing, nil
}

// ListListingsInput represents the input for browsing listings
type ListListingsInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   string
	Status     *enum.ListingStatus
	SellerID   *uuid.UUID
	MinPrice   *float64
	MaxPrice   *float64
}

// ListListings browses listings with filtering
func (s *ListingService) ListListings(ctx context.Context, input *ListListingsInput) (*pagination.PaginatedResult[entity.Listing], error) {
	params := &repository.ListingFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Category:   input.Category,
		Status:     input.Status,
		SellerID:   input.SellerID,
		MinPrice:   input.MinPrice,
		MaxPrice:   input.MaxPrice,
	}

	listings, total, err := s.listingRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(listings, pag), nil
}

// UpdateListingInput represents the input for updating a listing
type UpdateListingInput struct {
	UserID      uuid.UUID
	ID          uuid.UUID
	IsAdmin     bool
	Title       string
	Description string
	Category    string
	Breed       string
	AgeMonths   int
	Quantity    int
	Price       float64
	Location    string
	ImageURL    *string
}

// UpdateListing updates an existing listing. Only the seller or an
// admin may modify it.
func (s *ListingService) UpdateListing(ctx context.Context, input *UpdateListingInput) (*entity.Listing, error) {
	listing, err := s.listingRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, apperror.NewNotFoundError("Listing")
	}

	// Check permission
	if !input.IsAdmin && listing.SellerID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	if input.Price <= 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "price", Message: "Price must be greater than zero"},
		})
	}

	listing.Title = input.Title
	listing.Description = input.Description
	listing.Category = input.Category
	listing.Breed = input.Breed
	listing.AgeMonths = input.AgeMonths
	listing.Quantity = input.Quantity
	listing.Price = input.Price
	listing.Location = input.Location
	listing.ImageURL = input.ImageURL

	if err := s.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

// UpdateListingStatus marks a listing as sold or withdrawn
func (s *ListingService) UpdateListingStatus(ctx context.Context, userID, id uuid.UUID, status enum.ListingStatus, isAdmin bool) error {
	listing, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if listing == nil {
		return apperror.NewNotFoundError("Listing")
	}

	// Check permission
	if !isAdmin && listing.SellerID != userID {
		return apperror.ErrForbidden
	}

	return s.listingRepo.UpdateStatus(ctx, id, status)
}

// DeleteListing deletes a listing
func (s *ListingService) DeleteListing(ctx context.Context, userID, id uuid.UUID, isAdmin bool) error {
	listing, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if listing == nil {
		return apperror.NewNotFoundError("Listing")
	}

	// Check permission
	if !isAdmin && listing.SellerID != userID {
		return apperror.ErrForbidden
	}

	return s.listingRepo.Delete(ctx, id)
}
