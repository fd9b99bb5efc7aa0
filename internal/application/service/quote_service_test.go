package service

import (
	"testing"

	"github.com/sandzahub/sebenza-api/internal/domain/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQuoteGrassCutting(t *testing.T) {
	svc := NewQuoteService(nil)

	quote := svc.BuildQuote(&QuoteInput{
		ServiceType: pricing.ServiceGrassCutting,
		Area:        100,
	})

	require.NotNil(t, quote.Breakdown)
	assert.Equal(t, "Grass Cutting", quote.DisplayName)
	assert.InDelta(t, 100.0, quote.Breakdown.BasePrice, 1e-9)
	assert.InDelta(t, 134.55, quote.Breakdown.TotalAmount, 1e-9)
	assert.InDelta(t, 2.0, quote.EstimatedHours, 1e-9)
	assert.NotEmpty(t, quote.LineItems)
}

func TestBuildQuoteTreeFelling(t *testing.T) {
	svc := NewQuoteService(nil)

	quote := svc.BuildQuote(&QuoteInput{
		ServiceType:        pricing.ServiceTreeFelling,
		TreeSize:           "large_tree",
		TreeHeightM:        20,
		LocationComplexity: "complex",
		NeedsStumpRemoval:  true,
	})

	require.NotNil(t, quote.Breakdown)
	assert.Equal(t, "Tree Felling", quote.DisplayName)
	// 1800 * 1.2 tall-tree * 1.3 complex
	assert.InDelta(t, 2808.0, quote.Breakdown.BasePrice, 1e-9)
	assert.InDelta(t, 648.0, quote.Breakdown.ServiceSurcharge, 1e-9)
	assert.InDelta(t, 350.0, quote.Breakdown.UrgencyFee, 1e-9)
}

func TestBuildQuoteFlatService(t *testing.T) {
	svc := NewQuoteService(nil)

	quote := svc.BuildQuote(&QuoteInput{
		ServiceType:    pricing.ServicePlumbing,
		ServiceVariant: "geyser_install",
	})

	require.NotNil(t, quote.Breakdown)
	assert.Equal(t, "Plumbing", quote.DisplayName)
	assert.InDelta(t, 900.0, quote.Breakdown.BasePrice, 1e-9)
}

func TestBuildQuoteUnknownServiceNeverFails(t *testing.T) {
	svc := NewQuoteService(nil)

	quote := svc.BuildQuote(&QuoteInput{ServiceType: "hot_air_ballooning"})

	require.NotNil(t, quote.Breakdown)
	assert.Equal(t, "Service", quote.DisplayName)
	assert.Greater(t, quote.Breakdown.TotalAmount, 0.0)
}

func TestBuildQuoteUsesProvidedRateCard(t *testing.T) {
	cfg := pricing.DefaultConfig()
	cfg.MinimumJobValue = 500

	svc := NewQuoteService(cfg)
	quote := svc.BuildQuote(&QuoteInput{
		ServiceType: pricing.ServiceGrassCutting,
		Area:        100,
	})

	// Pre-fee amount floored at the raised minimum: 500 * 1.15
	assert.InDelta(t, 575.0, quote.Breakdown.Subtotal, 1e-9)
}

func TestBuildQuoteDeterministic(t *testing.T) {
	svc := NewQuoteService(nil)
	input := &QuoteInput{
		ServiceType:      pricing.ServiceYardClearing,
		Area:             200,
		VegetationType:   "overgrown",
		NeedsDisposal:    true,
		TravelDistanceKm: 12,
		IsUrgent:         true,
	}

	first := svc.BuildQuote(input)
	second := svc.BuildQuote(input)

	assert.Equal(t, first.Breakdown, second.Breakdown)
	assert.Equal(t, first.LineItems, second.LineItems)
}
