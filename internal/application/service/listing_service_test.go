package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/sandzahub/sebenza-api/internal/domain/entity"
	"github.com/sandzahub/sebenza-api/internal/domain/enum"
	"github.com/sandzahub/sebenza-api/internal/domain/repository"
	"github.com/sandzahub/sebenza-api/pkg/apperror"
	"github.com/sandzahub/sebenza-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeListingRepository is an in-memory ListingRepository for service tests
type fakeListingRepository struct {
	listings map[uuid.UUID]*entity.Listing
}

func newFakeListingRepository() *fakeListingRepository {
	return &fakeListingRepository{listings: make(map[uuid.UUID]*entity.Listing)}
}

func (r *fakeListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	if listing.ID == uuid.Nil {
		listing.ID = uuid.New()
	}
	cp := *listing
	r.listings[listing.ID] = &cp
	return nil
}

func (r *fakeListingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	listing, ok := r.listings[id]
	if !ok {
		return nil, nil
	}
	cp := *listing
	return &cp, nil
}

func (r *fakeListingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	cp := *listing
	r.listings[listing.ID] = &cp
	return nil
}

func (r *fakeListingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.listings, id)
	return nil
}

func (r *fakeListingRepository) List(ctx context.Context, params *repository.ListingFilterParams) ([]entity.Listing, int64, error) {
	var out []entity.Listing
	for _, listing := range r.listings {
		if params.Category != "" && listing.Category != params.Category {
			continue
		}
		if params.Status != nil && listing.Status != *params.Status {
			continue
		}
		if params.SellerID != nil && listing.SellerID != *params.SellerID {
			continue
		}
		if params.MinPrice != nil && listing.Price < *params.MinPrice {
			continue
		}
		if params.MaxPrice != nil && listing.Price > *params.MaxPrice {
			continue
		}
		if params.Search != "" && !strings.Contains(strings.ToLower(listing.Title), strings.ToLower(params.Search)) {
			continue
		}
		out = append(out, *listing)
	}
	return out, int64(len(out)), nil
}

func (r *fakeListingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.ListingStatus) error {
	if listing, ok := r.listings[id]; ok {
		listing.Status = status
	}
	return nil
}

func newTestListingService() (*ListingService, *fakeListingRepository) {
	repo := newFakeListingRepository()
	return NewListingService(repo), repo
}

func TestCreateListing(t *testing.T) {
	svc, repo := newTestListingService()
	sellerID := uuid.New()

	listing, err := svc.CreateListing(context.Background(), &CreateListingInput{
		SellerID:    sellerID,
		Title:       "Nguni heifer",
		Description: "Healthy 18-month heifer, dewormed and dipped",
		Category:    "cattle",
		Breed:       "Nguni",
		AgeMonths:   18,
		Price:       7500,
		Location:    "Siphofaneni",
	})

	require.NoError(t, err)
	assert.Equal(t, enum.ListingStatusActive, listing.Status)
	assert.Equal(t, 1, listing.Quantity, "quantity defaults to 1")

	stored, err := repo.GetByID(context.Background(), listing.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, sellerID, stored.SellerID)
}

func TestCreateListingRejectsNonPositivePrice(t *testing.T) {
	svc, _ := newTestListingService()

	_, err := svc.CreateListing(context.Background(), &CreateListingInput{
		SellerID: uuid.New(),
		Title:    "Free goat",
		Category: "goats",
		Price:    0,
	})

	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}

func TestListListingsFilters(t *testing.T) {
	svc, _ := newTestListingService()
	sellerID := uuid.New()

	seed := []CreateListingInput{
		{SellerID: sellerID, Title: "Boer goat", Category: "goats", Price: 1500, Location: "Manzini"},
		{SellerID: sellerID, Title: "Nguni bull", Category: "cattle", Price: 12000, Location: "Lavumisa"},
		{SellerID: uuid.New(), Title: "Layer hens", Category: "poultry", Price: 120, Location: "Mbabane"},
	}
	for i := range seed {
		_, err := svc.CreateListing(context.Background(), &seed[i])
		require.NoError(t, err)
	}

	params := &pagination.PaginationParams{Page: 1, PerPage: 15}

	result, err := svc.ListListings(context.Background(), &ListListingsInput{
		Pagination: params,
		Category:   "cattle",
	})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Nguni bull", result.Items[0].Title)

	maxPrice := 2000.0
	result, err = svc.ListListings(context.Background(), &ListListingsInput{
		Pagination: params,
		MaxPrice:   &maxPrice,
	})
	require.NoError(t, err)
	assert.Len(t, result.Items, 2)

	result, err = svc.ListListings(context.Background(), &ListListingsInput{
		Pagination: params,
		SellerID:   &sellerID,
	})
	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
}

func TestUpdateListingPermissions(t *testing.T) {
	svc, _ := newTestListingService()
	sellerID := uuid.New()

	listing, err := svc.CreateListing(context.Background(), &CreateListingInput{
		SellerID: sellerID,
		Title:    "Weaner pigs",
		Category: "pigs",
		Quantity: 6,
		Price:    800,
	})
	require.NoError(t, err)

	// A stranger cannot touch it
	_, err = svc.UpdateListing(context.Background(), &UpdateListingInput{
		UserID:   uuid.New(),
		ID:       listing.ID,
		Title:    "Weaner pigs",
		Quantity: 6,
		Price:    900,
	})
	require.Error(t, err)
	assert.Equal(t, 403, apperror.GetAppError(err).Code)

	// The seller can
	updated, err := svc.UpdateListing(context.Background(), &UpdateListingInput{
		UserID:   sellerID,
		ID:       listing.ID,
		Title:    "Weaner pigs",
		Category: "pigs",
		Quantity: 4,
		Price:    900,
	})
	require.NoError(t, err)
	assert.InDelta(t, 900.0, updated.Price, 1e-9)
	assert.Equal(t, 4, updated.Quantity)

	// So can an admin
	_, err = svc.UpdateListing(context.Background(), &UpdateListingInput{
		UserID:   uuid.New(),
		ID:       listing.ID,
		IsAdmin:  true,
		Title:    "Weaner pigs",
		Category: "pigs",
		Quantity: 4,
		Price:    950,
	})
	require.NoError(t, err)
}

func TestUpdateListingStatus(t *testing.T) {
	svc, repo := newTestListingService()
	sellerID := uuid.New()

	listing, err := svc.CreateListing(context.Background(), &CreateListingInput{
		SellerID: sellerID,
		Title:    "Broiler chicks",
		Category: "poultry",
		Price:    25,
	})
	require.NoError(t, err)

	err = svc.UpdateListingStatus(context.Background(), uuid.New(), listing.ID, enum.ListingStatusSold, false)
	require.Error(t, err)

	err = svc.UpdateListingStatus(context.Background(), sellerID, listing.ID, enum.ListingStatusSold, false)
	require.NoError(t, err)

	stored, _ := repo.GetByID(context.Background(), listing.ID)
	assert.Equal(t, enum.ListingStatusSold, stored.Status)
}

func TestDeleteListing(t *testing.T) {
	svc, repo := newTestListingService()
	sellerID := uuid.New()

	listing, err := svc.CreateListing(context.Background(), &CreateListingInput{
		SellerID: sellerID,
		Title:    "Ram lamb",
		Category: "sheep",
		Price:    1100,
	})
	require.NoError(t, err)

	err = svc.DeleteListing(context.Background(), uuid.New(), listing.ID, false)
	require.Error(t, err)

	err = svc.DeleteListing(context.Background(), sellerID, listing.ID, false)
	require.NoError(t, err)

	stored, err := repo.GetByID(context.Background(), listing.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	err = svc.DeleteListing(context.Background(), sellerID, listing.ID, false)
	require.Error(t, err, "deleting a missing listing is a not found error")
}
