package service

import (
	"github.com/sandzahub/sebenza-api/internal/domain/pricing"
)

// QuoteService computes price quotes. Quoting never touches the
// database; the same inputs always produce the same quote.
type QuoteService struct {
	cfg *pricing.Config
}

// NewQuoteService creates a new quote service
func NewQuoteService(cfg *pricing.Config) *QuoteService {
	if cfg == nil {
		cfg = pricing.DefaultConfig()
	}
	return &QuoteService{cfg: cfg}
}

// QuoteInput represents the input for building a quote. Only the fields
// relevant to the requested service type are consulted; the rest are
// ignored.
type QuoteInput struct {
	ServiceType    string
	ServiceVariant string
	Area           float64

	// Area-based job conditions
	VegetationType string
	GrowthStage    string
	TerrainType    string
	NeedsDisposal  bool

	// Tree felling
	TreeSize           string
	TreeHeightM        float64
	LocationComplexity string
	NeedsStumpRemoval  bool
	SkipCleanup        bool

	TravelDistanceKm float64
	IsUrgent         bool
	IsRecurring      bool
}

// Quote is a computed price quote with its itemised breakdown
type Quote struct {
	ServiceType    string             `json:"service_type"`
	DisplayName    string             `json:"display_name"`
	Breakdown      *pricing.Breakdown `json:"breakdown"`
	LineItems      []pricing.LineItem `json:"line_items"`
	EstimatedHours float64            `json:"estimated_hours"`
}

// BuildQuote computes a quote for the requested service. It never
// fails: unknown service types are priced as a maintenance call-out and
// unknown condition values fall back to their defaults.
func (s *QuoteService) BuildQuote(input *QuoteInput) *Quote {
	var breakdown *pricing.Breakdown

	switch input.ServiceType {
	case pricing.ServiceGrassCutting, pricing.ServiceYardClearing, pricing.ServiceGardening:
		breakdown = pricing.CalculateAreaBasedPrice(pricing.AreaJobInput{
			Area:             input.Area,
			ServiceType:      input.ServiceType,
			VegetationType:   input.VegetationType,
			GrowthStage:      input.GrowthStage,
			TerrainType:      input.TerrainType,
			NeedsDisposal:    input.NeedsDisposal,
			TravelDistanceKm: input.TravelDistanceKm,
			IsUrgent:         input.IsUrgent,
			IsRecurring:      input.IsRecurring,
		}, s.cfg)
	case pricing.ServiceTreeFelling:
		breakdown = pricing.CalculateTreeFellingPrice(pricing.TreeFellingInput{
			TreeSize:           input.TreeSize,
			TreeHeight:         input.TreeHeightM,
			LocationComplexity: input.LocationComplexity,
			NeedsStumpRemoval:  input.NeedsStumpRemoval,
			SkipCleanup:        input.SkipCleanup,
			TravelDistanceKm:   input.TravelDistanceKm,
		}, s.cfg)
	default:
		breakdown = pricing.CalculateServicePrice(pricing.ServiceJobInput{
			ServiceType:      input.ServiceType,
			ServiceVariant:   input.ServiceVariant,
			Area:             input.Area,
			IsUrgent:         input.IsUrgent,
			TravelDistanceKm: input.TravelDistanceKm,
		}, s.cfg)
	}

	return &Quote{
		ServiceType:    input.ServiceType,
		DisplayName:    s.cfg.DisplayName(input.ServiceType),
		Breakdown:      breakdown,
		LineItems:      breakdown.LineItems(),
		EstimatedHours: breakdown.EstimatedHours,
	}
}
