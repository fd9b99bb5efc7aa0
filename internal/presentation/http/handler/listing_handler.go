package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sandzahub/sebenza-api/internal/application/service"
	"github.com/sandzahub/sebenza-api/internal/domain/enum"
	"github.com/sandzahub/sebenza-api/internal/presentation/http/dto/response"
	"github.com/sandzahub/sebenza-api/pkg/pagination"
)

// ListingHandler handles marketplace listing HTTP requests
type ListingHandler struct {
	listingService *service.ListingService
}

// NewListingHandler creates a new listing handler
func NewListingHandler(listingService *service.ListingService) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

// ListingRequest represents the create/update listing request body
type ListingRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category" binding:"required"`
	Breed       string  `json:"breed"`
	AgeMonths   int     `json:"age_months"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price" binding:"required"`
	Location    string  `json:"location"`
	ImageURL    *string `json:"image_url"`
}

// UpdateListingStatusRequest represents the status change request body
type UpdateListingStatusRequest struct {
	Status int `json:"status" binding:"min=0"`
}

// List handles browsing listings
// @Summary List Listings
// @Description Browse marketplace listings with pagination and filtering
// @Tags listings
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search term"
// @Param category query string false "Category filter"
// @Param status query int false "Status filter"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Success 200 {object} response.APIResponse
// @Router /listings [get]
func (h *ListingHandler) List(c *gin.Context) {
	page := 1
	perPage := 15
	if p := c.Query("page"); p != "" {
		if parsed, err := parsePositiveInt(p); err == nil {
			page = parsed
		}
	}
	if pp := c.Query("per_page"); pp != "" {
		if parsed, err := parsePositiveInt(pp); err == nil {
			perPage = parsed
		}
	}

	var status *enum.ListingStatus
	if s := c.Query("status"); s != "" {
		if parsed, err := parseNonNegativeInt(s); err == nil {
			st := enum.ListingStatus(parsed)
			status = &st
		}
	}

	var minPrice, maxPrice *float64
	if mp := c.Query("min_price"); mp != "" {
		if parsed, err := strconv.ParseFloat(mp, 64); err == nil {
			minPrice = &parsed
		}
	}
	if mp := c.Query("max_price"); mp != "" {
		if parsed, err := strconv.ParseFloat(mp, 64); err == nil {
			maxPrice = &parsed
		}
	}

	var sellerID *uuid.UUID
	if sid := c.Query("seller_id"); sid != "" {
		if parsed, err := uuid.Parse(sid); err == nil {
			sellerID = &parsed
		}
	}

	result, err := h.listingService.ListListings(c.Request.Context(), &service.ListListingsInput{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Status:   status,
		SellerID: sellerID,
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Listings retrieved successfully", result)
}

// Get handles getting a single listing
// @Summary Get Listing
// @Description Get a listing by ID
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} response.APIResponse
// @Router /listings/{id} [get]
func (h *ListingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid listing ID")
		return
	}

	listing, err := h.listingService.GetListing(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Listing retrieved successfully", listing)
}

// Create handles creating a listing
// @Summary Create Listing
// @Description Create a new marketplace listing
// @Tags listings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body ListingRequest true "Listing data"
// @Success 201 {object} response.APIResponse
// @Router /listings [post]
func (h *ListingHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	listing, err := h.listingService.CreateListing(c.Request.Context(), &service.CreateListingInput{
		SellerID:    *userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Breed:       req.Breed,
		AgeMonths:   req.AgeMonths,
		Quantity:    req.Quantity,
		Price:       req.Price,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Listing created successfully", listing)
}

// Update handles updating a listing
// @Summary Update Listing
// @Description Update an existing listing
// @Tags listings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param request body ListingRequest true "Listing data"
// @Success 200 {object} response.APIResponse
// @Router /listings/{id} [put]
func (h *ListingHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid listing ID")
		return
	}

	var req ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	listing, err := h.listingService.UpdateListing(c.Request.Context(), &service.UpdateListingInput{
		UserID:      *userID,
		ID:          id,
		IsAdmin:     IsAdmin(c),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Breed:       req.Breed,
		AgeMonths:   req.AgeMonths,
		Quantity:    req.Quantity,
		Price:       req.Price,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Listing updated successfully", listing)
}

// UpdateStatus handles marking a listing as sold or withdrawn
// @Summary Update Listing Status
// @Description Change the status of a listing
// @Tags listings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param request body UpdateListingStatusRequest true "New status"
// @Success 200 {object} response.APIResponse
// @Router /listings/{id}/status [patch]
func (h *ListingHandler) UpdateStatus(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid listing ID")
		return
	}

	var req UpdateListingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.listingService.UpdateListingStatus(c.Request.Context(), *userID, id,
		enum.ListingStatus(req.Status), IsAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Listing status updated successfully", nil)
}

// Delete handles deleting a listing
// @Summary Delete Listing
// @Description Delete a listing by ID
// @Tags listings
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 204
// @Router /listings/{id} [delete]
func (h *ListingHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid listing ID")
		return
	}

	if err := h.listingService.DeleteListing(c.Request.Context(), *userID, id, IsAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
