package pricing

// The calculators are total functions: unrecognised service types,
// variants or condition values fall through to a default branch and out
// of range numbers are priced as given. Input validation is the caller's
// job (the job service rejects missing areas before quoting).

// Surcharge magnitudes that are fixed in the calculator rather than the
// rate card. Candidates for promotion into Config if they ever need
// per-market tuning.
const (
	matureGrowthSurcharge  = 0.15
	unevenTerrainSurcharge = 0.15
	tallTreeMultiplier     = 1.20
	tallTreeThresholdM     = 15.0
	treeCleanupFee         = 200.0
	defaultTreeHeightM     = 10.0
	defaultServiceAreaSqm  = 50.0
)

// AreaJobInput describes an area-based outdoor job (grass cutting, yard
// clearing, gardening). Zero values select the documented defaults:
// empty vegetation and growth default to "medium", empty terrain to
// "flat", and a nil config to DefaultConfig.
type AreaJobInput struct {
	Area             float64 // m²
	ServiceType      string
	VegetationType   string // light, medium, heavy, overgrown
	GrowthStage      string // new, medium, mature
	TerrainType      string // flat, sloped, uneven
	NeedsDisposal    bool
	TravelDistanceKm float64
	IsUrgent         bool
	IsRecurring      bool
}

// CalculateAreaBasedPrice prices grass cutting, yard clearing and
// gardening jobs from the area and site conditions.
func CalculateAreaBasedPrice(in AreaJobInput, cfg *Config) *Breakdown {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	vegetation := defaultString(in.VegetationType, "medium")
	growth := defaultString(in.GrowthStage, "medium")
	terrain := defaultString(in.TerrainType, "flat")

	var basePrice float64
	switch in.ServiceType {
	case ServiceGrassCutting:
		basePrice = in.Area * grassRate(cfg, in.Area)
		if in.IsRecurring {
			basePrice *= 1 - cfg.RecurringDiscount
		}
	default: // yard_clearing, gardening
		switch vegetation {
		case "light":
			basePrice = cfg.YardClearingLight
		case "medium":
			basePrice = cfg.YardClearingMedium
		default: // heavy, overgrown
			basePrice = in.Area * cfg.YardClearingHeavyPerSqm
		}
		if in.ServiceType == ServiceYardClearing && in.NeedsDisposal {
			basePrice += cfg.WasteRemovalFee
		}
	}

	// Each surcharge is a fraction of the base price; they do not
	// compound on each other.
	var vegetationSurcharge float64
	if vegetation == "overgrown" {
		vegetationSurcharge = basePrice * cfg.OvergrownSurcharge
	}

	var growthSurcharge float64
	if growth == "mature" {
		growthSurcharge = basePrice * matureGrowthSurcharge
	}

	var terrainSurcharge float64
	switch terrain {
	case "sloped":
		terrainSurcharge = basePrice * cfg.SlopedSurcharge
	case "uneven":
		terrainSurcharge = basePrice * unevenTerrainSurcharge
	}

	travelFee := travelFeeFor(cfg, in.TravelDistanceKm)

	var urgencyFee float64
	if in.IsUrgent {
		urgencyFee = cfg.SameDayFee
	}

	var disposalFee float64
	if in.NeedsDisposal && in.ServiceType == ServiceYardClearing {
		disposalFee = cfg.WasteRemovalFee
	}

	preSubtotal := basePrice + vegetationSurcharge + growthSurcharge +
		terrainSurcharge + travelFee + urgencyFee
	if preSubtotal < cfg.MinimumJobValue {
		preSubtotal = cfg.MinimumJobValue
	}

	b := &Breakdown{
		BasePrice:           basePrice,
		VegetationSurcharge: vegetationSurcharge,
		GrowthSurcharge:     growthSurcharge,
		TerrainSurcharge:    terrainSurcharge,
		DisposalFee:         disposalFee,
		TravelFee:           travelFee,
		UrgencyFee:          urgencyFee,
		EstimatedHours:      cfg.EstimatedHours(in.ServiceType, in.Area),
	}
	applyFees(b, preSubtotal, cfg)
	return b
}

// TreeFellingInput describes a tree felling job. TreeHeight defaults to
// 10 m when zero or negative; cleanup is included unless SkipCleanup is
// set.
type TreeFellingInput struct {
	TreeSize           string // small_tree, medium_tree, large_tree, palm_tree, fruit_tree
	TreeHeight         float64
	LocationComplexity string // normal, complex
	NeedsStumpRemoval  bool
	SkipCleanup        bool
	TravelDistanceKm   float64
}

// CalculateTreeFellingPrice prices a tree felling job. Unlike the other
// calculators the minimum job value floor does not apply here; the
// smallest tree base price is already well above it.
func CalculateTreeFellingPrice(in TreeFellingInput, cfg *Config) *Breakdown {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	height := in.TreeHeight
	if height <= 0 {
		height = defaultTreeHeightM
	}

	var basePrice float64
	switch in.TreeSize {
	case "small_tree":
		basePrice = cfg.TreeFellingSmall
	case "large_tree":
		basePrice = cfg.TreeFellingLarge
	default: // medium_tree; palm and fruit trees price as medium
		basePrice = cfg.TreeFellingMedium
	}

	if height > tallTreeThresholdM {
		basePrice *= tallTreeMultiplier
	}

	// The complex-location premium is folded into the base price. It is
	// also reported separately as the service surcharge line so the
	// customer can see it, but it is never added to the total twice.
	var serviceSurcharge float64
	if in.LocationComplexity == "complex" {
		serviceSurcharge = basePrice * cfg.HighRiskSurcharge
		basePrice *= 1 + cfg.HighRiskSurcharge
	}

	var stumpFee float64
	if in.NeedsStumpRemoval {
		stumpFee = cfg.StumpRemovalFee
	}

	var cleanupFee float64
	if !in.SkipCleanup {
		cleanupFee = treeCleanupFee
	}

	travelFee := travelFeeFor(cfg, in.TravelDistanceKm)

	preSubtotal := basePrice + stumpFee + cleanupFee + travelFee

	// Tree felling reuses two slots of the fixed breakdown record: the
	// disposal fee carries the cleanup fee and the urgency fee carries
	// the stump removal add-on.
	b := &Breakdown{
		BasePrice:        basePrice,
		ServiceSurcharge: serviceSurcharge,
		DisposalFee:      cleanupFee,
		TravelFee:        travelFee,
		UrgencyFee:       stumpFee,
		EstimatedHours:   cfg.EstimatedHours(ServiceTreeFelling, 0),
	}
	applyFees(b, preSubtotal, cfg)
	return b
}

// ServiceJobInput describes a flat or variant-priced service (cleaning,
// plumbing, electrical, DSTV, furniture assembly, painting, moving help,
// maintenance, errands). Area only matters for commercial cleaning and
// painting and defaults to 50 m² when zero.
type ServiceJobInput struct {
	ServiceType      string
	ServiceVariant   string
	Area             float64
	IsUrgent         bool
	TravelDistanceKm float64
}

// CalculateServicePrice prices flat and variant-based services. Urgent
// plumbing and electrical jobs carry an emergency call-out fee on top of
// the usual same-day fee.
func CalculateServicePrice(in ServiceJobInput, cfg *Config) *Breakdown {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	area := in.Area
	if area <= 0 {
		area = defaultServiceAreaSqm
	}

	basePrice := serviceBasePrice(cfg, in.ServiceType, in.ServiceVariant, area)
	if basePrice < cfg.MinimumJobValue {
		basePrice = cfg.MinimumJobValue
	}

	travelFee := travelFeeFor(cfg, in.TravelDistanceKm)

	var urgencyFee float64
	if in.IsUrgent {
		urgencyFee = cfg.SameDayFee
	}

	var emergencyFee float64
	if in.IsUrgent && (in.ServiceType == ServicePlumbing || in.ServiceType == ServiceElectrical) {
		emergencyFee = cfg.EmergencyCalloutFee
	}

	preSubtotal := basePrice + travelFee + urgencyFee + emergencyFee

	b := &Breakdown{
		BasePrice:        basePrice,
		ServiceSurcharge: emergencyFee,
		TravelFee:        travelFee,
		UrgencyFee:       urgencyFee,
		EstimatedHours:   cfg.EstimatedHours(in.ServiceType, in.Area),
	}
	applyFees(b, preSubtotal, cfg)
	return b
}

// serviceBasePrice looks up the base price for a service type and
// variant. Every service type has its own default variant so unknown
// variants never fail.
func serviceBasePrice(cfg *Config, serviceType, variant string, area float64) float64 {
	switch serviceType {
	case ServiceCleaning:
		switch variant {
		case "deep":
			return cfg.CleaningDeep
		case "move_in_out":
			return cfg.CleaningMoveInOut
		case "commercial":
			return area * cfg.CleaningCommercialPerSqm
		default:
			return cfg.CleaningStandard
		}
	case ServicePlumbing:
		switch variant {
		case "burst_pipe":
			return cfg.PlumbingBurstPipe
		case "blocked_drain":
			return cfg.PlumbingBlockedDrain
		case "toilet_repair":
			return cfg.PlumbingToiletRepair
		case "geyser_install":
			return cfg.PlumbingGeyserInstall
		default: // leaking_tap
			return cfg.PlumbingLeakingTap
		}
	case ServiceElectrical:
		switch variant {
		case "socket_repair":
			return cfg.ElectricalSocketRepair
		case "wiring":
			return cfg.ElectricalWiring
		case "db_board":
			return cfg.ElectricalDBBoard
		default: // light_fitting
			return cfg.ElectricalLightFitting
		}
	case ServiceDSTVInstallation:
		switch variant {
		case "extra_view":
			return cfg.DSTVExtraView
		case "full_kit":
			return cfg.DSTVFullKit
		default: // standard
			return cfg.DSTVStandard
		}
	case ServiceFurnitureAssembly:
		return cfg.FurnitureAssembly
	case ServicePainting:
		return area * cfg.PaintingPerSqm
	case ServiceMovingHelp:
		return cfg.MovingHelpPerHour * 2
	case ServiceMaintenance:
		return cfg.MaintenanceCallout
	case ServiceErrands:
		return cfg.ErrandsBase
	default:
		return cfg.MaintenanceCallout
	}
}

func grassRate(cfg *Config, area float64) float64 {
	switch {
	case area <= 150:
		return cfg.GrassRateSmall
	case area <= 300:
		return cfg.GrassRateMedium
	case area <= 600:
		return cfg.GrassRateLarge
	default:
		return cfg.GrassRateCommercial
	}
}

func travelFeeFor(cfg *Config, distanceKm float64) float64 {
	billable := distanceKm - cfg.FreeTravelRadiusKm
	if billable <= 0 {
		return 0
	}
	return billable * cfg.PerKmRate
}

// applyFees layers the platform margin, mobile money fee and VAT on top
// of the pre-fee subtotal and fills in the totals.
func applyFees(b *Breakdown, preSubtotal float64, cfg *Config) {
	b.Subtotal = preSubtotal * (1 + cfg.PlatformFeePercentage)
	b.MobileMoneyFee = b.Subtotal * cfg.MobileMoneyFeePercentage
	b.VAT = b.Subtotal * cfg.VATPercentage
	b.TotalAmount = b.Subtotal + b.MobileMoneyFee + b.VAT
}

func defaultString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
