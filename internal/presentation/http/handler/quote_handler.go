package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sandzahub/sebenza-api/internal/application/service"
	"github.com/sandzahub/sebenza-api/internal/presentation/http/dto/response"
)

// QuoteHandler handles price quote HTTP requests
type QuoteHandler struct {
	quoteService *service.QuoteService
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(quoteService *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// QuoteRequest represents the quote request body. Only the fields
// relevant to the requested service type need to be set.
type QuoteRequest struct {
	ServiceType    string  `json:"service_type" binding:"required"`
	ServiceVariant string  `json:"service_variant"`
	Area           float64 `json:"area"`

	VegetationType string `json:"vegetation_type"`
	GrowthStage    string `json:"growth_stage"`
	TerrainType    string `json:"terrain_type"`
	NeedsDisposal  bool   `json:"needs_disposal"`

	TreeSize           string  `json:"tree_size"`
	TreeHeightM        float64 `json:"tree_height_m"`
	LocationComplexity string  `json:"location_complexity"`
	NeedsStumpRemoval  bool    `json:"needs_stump_removal"`
	SkipCleanup        bool    `json:"skip_cleanup"`

	TravelDistanceKm float64 `json:"travel_distance_km"`
	IsUrgent         bool    `json:"is_urgent"`
	IsRecurring      bool    `json:"is_recurring"`
}

// ToInput converts the request body to a service input
func (r *QuoteRequest) ToInput() *service.QuoteInput {
	return &service.QuoteInput{
		ServiceType:        r.ServiceType,
		ServiceVariant:     r.ServiceVariant,
		Area:               r.Area,
		VegetationType:     r.VegetationType,
		GrowthStage:        r.GrowthStage,
		TerrainType:        r.TerrainType,
		NeedsDisposal:      r.NeedsDisposal,
		TreeSize:           r.TreeSize,
		TreeHeightM:        r.TreeHeightM,
		LocationComplexity: r.LocationComplexity,
		NeedsStumpRemoval:  r.NeedsStumpRemoval,
		SkipCleanup:        r.SkipCleanup,
		TravelDistanceKm:   r.TravelDistanceKm,
		IsUrgent:           r.IsUrgent,
		IsRecurring:        r.IsRecurring,
	}
}

// Create handles computing a price quote
// @Summary Get a price quote
// @Description Compute an itemised price quote for a service
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body QuoteRequest true "Quote parameters"
// @Success 200 {object} response.APIResponse
// @Router /quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	quote := h.quoteService.BuildQuote(req.ToInput())

	response.OK(c, "Quote computed successfully", quote)
}
