package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigRanges(t *testing.T) {
	cfg := DefaultConfig()

	percentages := map[string]float64{
		"platform fee":       cfg.PlatformFeePercentage,
		"mobile money fee":   cfg.MobileMoneyFeePercentage,
		"vat":                cfg.VATPercentage,
		"overgrown":          cfg.OvergrownSurcharge,
		"sloped":             cfg.SlopedSurcharge,
		"high risk":          cfg.HighRiskSurcharge,
		"recurring discount": cfg.RecurringDiscount,
	}
	for name, p := range percentages {
		assert.GreaterOrEqual(t, p, 0.0, name)
		assert.Less(t, p, 1.0, name)
	}

	amounts := []float64{
		cfg.PerKmRate, cfg.FreeTravelRadiusKm, cfg.MinimumJobValue,
		cfg.WasteRemovalFee, cfg.SameDayFee, cfg.StumpRemovalFee,
		cfg.EmergencyCalloutFee,
		cfg.GrassRateSmall, cfg.GrassRateMedium, cfg.GrassRateLarge,
		cfg.GrassRateCommercial,
		cfg.YardClearingLight, cfg.YardClearingMedium, cfg.YardClearingHeavyPerSqm,
		cfg.TreeFellingSmall, cfg.TreeFellingMedium, cfg.TreeFellingLarge,
		cfg.CleaningStandard, cfg.CleaningDeep, cfg.CleaningMoveInOut,
		cfg.CleaningCommercialPerSqm,
		cfg.PlumbingLeakingTap, cfg.PlumbingBurstPipe, cfg.PlumbingBlockedDrain,
		cfg.PlumbingToiletRepair, cfg.PlumbingGeyserInstall,
		cfg.ElectricalLightFitting, cfg.ElectricalSocketRepair,
		cfg.ElectricalWiring, cfg.ElectricalDBBoard,
		cfg.DSTVStandard, cfg.DSTVExtraView, cfg.DSTVFullKit,
		cfg.FurnitureAssembly, cfg.PaintingPerSqm, cfg.MovingHelpPerHour,
		cfg.MaintenanceCallout, cfg.ErrandsBase,
	}
	for i, a := range amounts {
		assert.GreaterOrEqual(t, a, 0.0, "amount %d", i)
	}
}

func TestDisplayName(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "Grass Cutting", cfg.DisplayName(ServiceGrassCutting))
	assert.Equal(t, "DSTV Installation", cfg.DisplayName(ServiceDSTVInstallation))
	assert.Equal(t, "Tree Felling", cfg.DisplayName(ServiceTreeFelling))

	// Unknown codes never fail, they fall back to a generic label.
	assert.Equal(t, "Service", cfg.DisplayName("underwater_basket_weaving"))
	assert.Equal(t, "Service", cfg.DisplayName(""))
}

func TestEstimatedHours(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name        string
		serviceType string
		area        float64
		want        float64
	}{
		{"grass small", ServiceGrassCutting, 150, 2},
		{"grass medium", ServiceGrassCutting, 151, 3},
		{"grass large", ServiceGrassCutting, 600, 4},
		{"grass commercial", ServiceGrassCutting, 601, 6},
		{"yard small", ServiceYardClearing, 100, 3},
		{"yard medium", ServiceYardClearing, 300, 5},
		{"yard large", ServiceYardClearing, 301, 8},
		{"gardening uses yard thresholds", ServiceGardening, 50, 3},
		{"painting with area", ServicePainting, 100, 5},
		{"painting without area", ServicePainting, 0, 4},
		{"tree felling", ServiceTreeFelling, 0, 5},
		{"cleaning", ServiceCleaning, 0, 4},
		{"plumbing", ServicePlumbing, 0, 2},
		{"unknown defaults to two hours", "snake_charming", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, cfg.EstimatedHours(tt.serviceType, tt.area), epsilon)
		})
	}
}
