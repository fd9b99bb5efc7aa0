package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

// assertFeeInvariants checks the relationships that must hold for every
// breakdown regardless of input: the total is the subtotal plus the two
// fees, and no line item is negative.
func assertFeeInvariants(t *testing.T, b *Breakdown) {
	t.Helper()
	assert.InDelta(t, b.Subtotal+b.MobileMoneyFee+b.VAT, b.TotalAmount, epsilon)
	for _, item := range b.LineItems() {
		assert.GreaterOrEqual(t, item.Amount, 0.0, "line item %q", item.Label)
	}
}

func TestCalculateAreaBasedPrice_GrassCutting(t *testing.T) {
	b := CalculateAreaBasedPrice(AreaJobInput{
		Area:        100,
		ServiceType: ServiceGrassCutting,
	}, nil)

	assert.InDelta(t, 100.0, b.BasePrice, epsilon)
	assert.Zero(t, b.VegetationSurcharge)
	assert.Zero(t, b.GrowthSurcharge)
	assert.Zero(t, b.TerrainSurcharge)
	assert.Zero(t, b.TravelFee)
	assert.InDelta(t, 115.0, b.Subtotal, epsilon)
	assert.InDelta(t, 2.30, b.MobileMoneyFee, epsilon)
	assert.InDelta(t, 17.25, b.VAT, epsilon)
	assert.InDelta(t, 134.55, b.TotalAmount, epsilon)
	assert.InDelta(t, 2.0, b.EstimatedHours, epsilon)
	assertFeeInvariants(t, b)
}

func TestCalculateAreaBasedPrice_RecurringDiscountHitsFloor(t *testing.T) {
	// 100 m² at the small tier with the recurring discount comes to 85,
	// below the 100 minimum, so the floor brings the downstream totals
	// back to the non-discounted quote.
	b := CalculateAreaBasedPrice(AreaJobInput{
		Area:        100,
		ServiceType: ServiceGrassCutting,
		IsRecurring: true,
	}, nil)

	assert.InDelta(t, 85.0, b.BasePrice, epsilon)
	assert.InDelta(t, 115.0, b.Subtotal, epsilon)
	assert.InDelta(t, 134.55, b.TotalAmount, epsilon)
	assertFeeInvariants(t, b)
}

func TestCalculateAreaBasedPrice_GrassTiers(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		area     float64
		wantBase float64
	}{
		{"small tier", 150, 150 * cfg.GrassRateSmall},
		{"medium tier", 300, 300 * cfg.GrassRateMedium},
		{"large tier", 600, 600 * cfg.GrassRateLarge},
		{"commercial tier", 601, 601 * cfg.GrassRateCommercial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := CalculateAreaBasedPrice(AreaJobInput{
				Area:        tt.area,
				ServiceType: ServiceGrassCutting,
			}, cfg)
			assert.InDelta(t, tt.wantBase, b.BasePrice, epsilon)
			assertFeeInvariants(t, b)
		})
	}

	// The commercial per-m² rate sits above the large tier on purpose:
	// make sure nobody "fixes" the rate card into a monotonic one.
	assert.Greater(t, cfg.GrassRateCommercial, cfg.GrassRateLarge)
}

func TestCalculateAreaBasedPrice_Surcharges(t *testing.T) {
	cfg := DefaultConfig()

	b := CalculateAreaBasedPrice(AreaJobInput{
		Area:           200,
		ServiceType:    ServiceGrassCutting,
		VegetationType: "overgrown",
		GrowthStage:    "mature",
		TerrainType:    "sloped",
	}, cfg)

	base := 200 * cfg.GrassRateMedium
	assert.InDelta(t, base, b.BasePrice, epsilon)
	// Surcharges are independent fractions of the base, not compounding.
	assert.InDelta(t, base*cfg.OvergrownSurcharge, b.VegetationSurcharge, epsilon)
	assert.InDelta(t, base*0.15, b.GrowthSurcharge, epsilon)
	assert.InDelta(t, base*cfg.SlopedSurcharge, b.TerrainSurcharge, epsilon)

	pre := base + b.VegetationSurcharge + b.GrowthSurcharge + b.TerrainSurcharge
	assert.InDelta(t, pre*(1+cfg.PlatformFeePercentage), b.Subtotal, epsilon)
	assertFeeInvariants(t, b)
}

func TestCalculateAreaBasedPrice_UnevenTerrain(t *testing.T) {
	b := CalculateAreaBasedPrice(AreaJobInput{
		Area:        100,
		ServiceType: ServiceGrassCutting,
		TerrainType: "uneven",
	}, nil)
	assert.InDelta(t, 15.0, b.TerrainSurcharge, epsilon)
}

func TestCalculateAreaBasedPrice_YardClearing(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name       string
		in         AreaJobInput
		wantBase   float64
		wantDispos float64
	}{
		{
			name:     "light vegetation flat price",
			in:       AreaJobInput{Area: 80, ServiceType: ServiceYardClearing, VegetationType: "light"},
			wantBase: cfg.YardClearingLight,
		},
		{
			name:     "medium vegetation flat price",
			in:       AreaJobInput{Area: 80, ServiceType: ServiceYardClearing, VegetationType: "medium"},
			wantBase: cfg.YardClearingMedium,
		},
		{
			name:     "heavy vegetation priced per square metre",
			in:       AreaJobInput{Area: 200, ServiceType: ServiceYardClearing, VegetationType: "heavy"},
			wantBase: 200 * cfg.YardClearingHeavyPerSqm,
		},
		{
			name:     "unknown vegetation falls through to per square metre",
			in:       AreaJobInput{Area: 200, ServiceType: ServiceYardClearing, VegetationType: "jungle"},
			wantBase: 200 * cfg.YardClearingHeavyPerSqm,
		},
		{
			name:       "disposal adds waste removal fee to base",
			in:         AreaJobInput{Area: 80, ServiceType: ServiceYardClearing, VegetationType: "light", NeedsDisposal: true},
			wantBase:   cfg.YardClearingLight + cfg.WasteRemovalFee,
			wantDispos: cfg.WasteRemovalFee,
		},
		{
			name:     "gardening never carries the waste removal fee",
			in:       AreaJobInput{Area: 80, ServiceType: ServiceGardening, VegetationType: "light", NeedsDisposal: true},
			wantBase: cfg.YardClearingLight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := CalculateAreaBasedPrice(tt.in, cfg)
			assert.InDelta(t, tt.wantBase, b.BasePrice, epsilon)
			assert.InDelta(t, tt.wantDispos, b.DisposalFee, epsilon)
			assertFeeInvariants(t, b)
		})
	}
}

func TestCalculateAreaBasedPrice_ZeroAreaYieldsZeroBase(t *testing.T) {
	b := CalculateAreaBasedPrice(AreaJobInput{ServiceType: ServiceGrassCutting}, nil)
	assert.Zero(t, b.BasePrice)
	// The minimum job value floor still applies downstream.
	assert.InDelta(t, 100*1.15, b.Subtotal, epsilon)
}

func TestTravelFee(t *testing.T) {
	cfg := DefaultConfig()

	within := CalculateAreaBasedPrice(AreaJobInput{
		Area: 100, ServiceType: ServiceGrassCutting, TravelDistanceKm: 5,
	}, cfg)
	assert.Zero(t, within.TravelFee)

	beyond := CalculateAreaBasedPrice(AreaJobInput{
		Area: 100, ServiceType: ServiceGrassCutting, TravelDistanceKm: 12,
	}, cfg)
	assert.InDelta(t, 7*cfg.PerKmRate, beyond.TravelFee, epsilon)

	// Total strictly increases with distance beyond the free radius.
	further := CalculateAreaBasedPrice(AreaJobInput{
		Area: 100, ServiceType: ServiceGrassCutting, TravelDistanceKm: 13,
	}, cfg)
	assert.Greater(t, further.TravelFee, beyond.TravelFee)
	assert.Greater(t, further.TotalAmount, beyond.TotalAmount)
}

func TestCalculateAreaBasedPrice_Idempotent(t *testing.T) {
	cfg := DefaultConfig()
	in := AreaJobInput{
		Area:             450,
		ServiceType:      ServiceGrassCutting,
		VegetationType:   "overgrown",
		TerrainType:      "sloped",
		TravelDistanceKm: 18,
		IsUrgent:         true,
	}

	first := CalculateAreaBasedPrice(in, cfg)
	second := CalculateAreaBasedPrice(in, cfg)
	assert.Equal(t, first, second)
}

func TestCalculateTreeFellingPrice(t *testing.T) {
	cfg := DefaultConfig()

	b := CalculateTreeFellingPrice(TreeFellingInput{
		TreeSize:           "large_tree",
		TreeHeight:         20,
		LocationComplexity: "complex",
		NeedsStumpRemoval:  true,
	}, cfg)

	heightAdjusted := cfg.TreeFellingLarge * 1.20
	wantBase := heightAdjusted * (1 + cfg.HighRiskSurcharge)
	assert.InDelta(t, wantBase, b.BasePrice, epsilon)

	// The surcharge line reports the complex-location premium but the
	// amount is already inside the base price, never added again.
	assert.InDelta(t, heightAdjusted*cfg.HighRiskSurcharge, b.ServiceSurcharge, epsilon)

	pre := wantBase + cfg.StumpRemovalFee + 200
	assert.InDelta(t, pre*(1+cfg.PlatformFeePercentage), b.Subtotal, epsilon)
	assertFeeInvariants(t, b)
}

func TestCalculateTreeFellingPrice_SizeTiers(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		size     string
		wantBase float64
	}{
		{"small_tree", cfg.TreeFellingSmall},
		{"medium_tree", cfg.TreeFellingMedium},
		{"large_tree", cfg.TreeFellingLarge},
		{"palm_tree", cfg.TreeFellingMedium},
		{"fruit_tree", cfg.TreeFellingMedium},
		{"baobab", cfg.TreeFellingMedium}, // unknown sizes price as medium
	}

	for _, tt := range tests {
		t.Run(tt.size, func(t *testing.T) {
			b := CalculateTreeFellingPrice(TreeFellingInput{TreeSize: tt.size}, cfg)
			assert.InDelta(t, tt.wantBase, b.BasePrice, epsilon)
		})
	}
}

func TestCalculateTreeFellingPrice_Defaults(t *testing.T) {
	cfg := DefaultConfig()

	// Height defaults to 10 m, below the tall tree threshold, and
	// cleanup is included unless skipped.
	b := CalculateTreeFellingPrice(TreeFellingInput{TreeSize: "small_tree"}, cfg)
	assert.InDelta(t, cfg.TreeFellingSmall, b.BasePrice, epsilon)
	assert.InDelta(t, 200.0, b.DisposalFee, epsilon)

	noCleanup := CalculateTreeFellingPrice(TreeFellingInput{
		TreeSize:    "small_tree",
		SkipCleanup: true,
	}, cfg)
	assert.Zero(t, noCleanup.DisposalFee)
	assert.InDelta(t, b.Subtotal-200*(1+cfg.PlatformFeePercentage), noCleanup.Subtotal, epsilon)
}

func TestCalculateTreeFellingPrice_NoMinimumFloor(t *testing.T) {
	// The tree felling path intentionally skips the minimum job value
	// floor; prove it by dropping the rates below the minimum.
	cfg := DefaultConfig()
	cfg.TreeFellingSmall = 20

	b := CalculateTreeFellingPrice(TreeFellingInput{
		TreeSize:    "small_tree",
		SkipCleanup: true,
	}, cfg)
	assert.InDelta(t, 20*(1+cfg.PlatformFeePercentage), b.Subtotal, epsilon)
}

func TestCalculateServicePrice_CommercialCleaning(t *testing.T) {
	cfg := DefaultConfig()

	b := CalculateServicePrice(ServiceJobInput{
		ServiceType:    ServiceCleaning,
		ServiceVariant: "commercial",
		Area:           80,
	}, cfg)

	assert.InDelta(t, 80*cfg.CleaningCommercialPerSqm, b.BasePrice, epsilon)
	assertFeeInvariants(t, b)
}

func TestCalculateServicePrice_UnknownVariantFallsBack(t *testing.T) {
	withDefault := CalculateServicePrice(ServiceJobInput{
		ServiceType:    ServicePlumbing,
		ServiceVariant: "leaking_tap",
	}, nil)
	withUnknown := CalculateServicePrice(ServiceJobInput{
		ServiceType:    ServicePlumbing,
		ServiceVariant: "not_a_real_variant",
	}, nil)

	assert.Equal(t, withDefault.BasePrice, withUnknown.BasePrice)
	assert.Equal(t, withDefault.TotalAmount, withUnknown.TotalAmount)
}

func TestCalculateServicePrice_Variants(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name        string
		serviceType string
		variant     string
		wantBase    float64
	}{
		{"cleaning standard", ServiceCleaning, "", cfg.CleaningStandard},
		{"cleaning deep", ServiceCleaning, "deep", cfg.CleaningDeep},
		{"cleaning move in out", ServiceCleaning, "move_in_out", cfg.CleaningMoveInOut},
		{"plumbing burst pipe", ServicePlumbing, "burst_pipe", cfg.PlumbingBurstPipe},
		{"plumbing geyser", ServicePlumbing, "geyser_install", cfg.PlumbingGeyserInstall},
		{"electrical wiring", ServiceElectrical, "wiring", cfg.ElectricalWiring},
		{"electrical db board", ServiceElectrical, "db_board", cfg.ElectricalDBBoard},
		{"dstv standard", ServiceDSTVInstallation, "", cfg.DSTVStandard},
		{"dstv extra view", ServiceDSTVInstallation, "extra_view", cfg.DSTVExtraView},
		{"furniture assembly", ServiceFurnitureAssembly, "", cfg.FurnitureAssembly},
		{"maintenance", ServiceMaintenance, "", cfg.MaintenanceCallout},
		{"errands", ServiceErrands, "", cfg.ErrandsBase},
		{"unknown service type", "window_washing", "", cfg.MaintenanceCallout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := CalculateServicePrice(ServiceJobInput{
				ServiceType:    tt.serviceType,
				ServiceVariant: tt.variant,
			}, cfg)
			assert.InDelta(t, tt.wantBase, b.BasePrice, epsilon)
			assertFeeInvariants(t, b)
		})
	}
}

func TestCalculateServicePrice_PaintingDefaultsArea(t *testing.T) {
	cfg := DefaultConfig()

	b := CalculateServicePrice(ServiceJobInput{ServiceType: ServicePainting}, cfg)
	assert.InDelta(t, 50*cfg.PaintingPerSqm, b.BasePrice, epsilon)

	sized := CalculateServicePrice(ServiceJobInput{ServiceType: ServicePainting, Area: 120}, cfg)
	assert.InDelta(t, 120*cfg.PaintingPerSqm, sized.BasePrice, epsilon)
	assert.InDelta(t, 6.0, sized.EstimatedHours, epsilon)
}

func TestCalculateServicePrice_EmergencyCallout(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name          string
		serviceType   string
		urgent        bool
		wantEmergency float64
	}{
		{"urgent plumbing", ServicePlumbing, true, cfg.EmergencyCalloutFee},
		{"urgent electrical", ServiceElectrical, true, cfg.EmergencyCalloutFee},
		{"urgent cleaning gets no call-out fee", ServiceCleaning, true, 0},
		{"non-urgent plumbing", ServicePlumbing, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := CalculateServicePrice(ServiceJobInput{
				ServiceType: tt.serviceType,
				IsUrgent:    tt.urgent,
			}, cfg)
			assert.InDelta(t, tt.wantEmergency, b.ServiceSurcharge, epsilon)
			if tt.urgent {
				assert.InDelta(t, cfg.SameDayFee, b.UrgencyFee, epsilon)
			} else {
				assert.Zero(t, b.UrgencyFee)
			}
			assertFeeInvariants(t, b)
		})
	}
}

func TestCalculateServicePrice_MinimumFloorOnBase(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ErrandsBase = 40

	b := CalculateServicePrice(ServiceJobInput{ServiceType: ServiceErrands}, cfg)
	assert.InDelta(t, cfg.MinimumJobValue, b.BasePrice, epsilon)
}

func TestBreakdownLineItems(t *testing.T) {
	b := CalculateAreaBasedPrice(AreaJobInput{
		Area:             100,
		ServiceType:      ServiceGrassCutting,
		TravelDistanceKm: 10,
		IsUrgent:         true,
	}, nil)

	items := b.LineItems()
	require.NotEmpty(t, items)

	// Zero lines are dropped; the order of the remaining lines is fixed.
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	assert.Equal(t, []string{
		"Base price",
		"Travel fee",
		"Urgency fee",
		"Subtotal",
		"Mobile money fee",
		"VAT",
		"Total",
	}, labels)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "E 134.55", FormatAmount(134.549999999))
	assert.Equal(t, "E 0.00", FormatAmount(0))
	assert.Equal(t, "E 1000.00", FormatAmount(1000))
}
