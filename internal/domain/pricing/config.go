package pricing

// Config holds every tunable rate, percentage and flat fee used by the
// quote calculators. Values are in Emalangeni (E). A Config is never
// mutated after construction; callers that want different rates build
// their own value and pass it to the calculators.
type Config struct {
	// Percentages, all expressed as fractions in [0,1).
	PlatformFeePercentage    float64
	MobileMoneyFeePercentage float64
	VATPercentage            float64
	OvergrownSurcharge       float64
	SlopedSurcharge          float64
	HighRiskSurcharge        float64
	RecurringDiscount        float64

	// Flat amounts.
	PerKmRate           float64
	FreeTravelRadiusKm  float64
	MinimumJobValue     float64
	WasteRemovalFee     float64
	SameDayFee          float64
	StumpRemovalFee     float64
	EmergencyCalloutFee float64

	// Grass cutting per-m² rates by area tier. The commercial tier is
	// deliberately priced above the large tier: jobs over 600 m² carry a
	// flat commercial-project premium rather than a volume discount.
	GrassRateSmall      float64 // area <= 150 m²
	GrassRateMedium     float64 // area <= 300 m²
	GrassRateLarge      float64 // area <= 600 m²
	GrassRateCommercial float64 // area > 600 m²

	// Yard clearing / gardening.
	YardClearingLight       float64 // flat, light vegetation
	YardClearingMedium      float64 // flat, medium vegetation
	YardClearingHeavyPerSqm float64 // per m², heavy or overgrown

	// Tree felling base prices by size tier.
	TreeFellingSmall  float64
	TreeFellingMedium float64
	TreeFellingLarge  float64

	// Cleaning.
	CleaningStandard         float64
	CleaningDeep             float64
	CleaningMoveInOut        float64
	CleaningCommercialPerSqm float64

	// Plumbing job types.
	PlumbingLeakingTap    float64
	PlumbingBurstPipe     float64
	PlumbingBlockedDrain  float64
	PlumbingToiletRepair  float64
	PlumbingGeyserInstall float64

	// Electrical job types.
	ElectricalLightFitting float64
	ElectricalSocketRepair float64
	ElectricalWiring       float64
	ElectricalDBBoard      float64

	// DSTV installation tiers.
	DSTVStandard  float64
	DSTVExtraView float64
	DSTVFullKit   float64

	// Remaining flat services.
	FurnitureAssembly  float64
	PaintingPerSqm     float64
	MovingHelpPerHour  float64
	MaintenanceCallout float64
	ErrandsBase        float64
}

// DefaultConfig returns the standard rate card.
func DefaultConfig() *Config {
	return &Config{
		PlatformFeePercentage:    0.15,
		MobileMoneyFeePercentage: 0.02,
		VATPercentage:            0.15,
		OvergrownSurcharge:       0.30,
		SlopedSurcharge:          0.20,
		HighRiskSurcharge:        0.30,
		RecurringDiscount:        0.15,

		PerKmRate:           8.0,
		FreeTravelRadiusKm:  5.0,
		MinimumJobValue:     100.0,
		WasteRemovalFee:     150.0,
		SameDayFee:          100.0,
		StumpRemovalFee:     350.0,
		EmergencyCalloutFee: 250.0,

		GrassRateSmall:      1.00,
		GrassRateMedium:     0.85,
		GrassRateLarge:      0.75,
		GrassRateCommercial: 1.50,

		YardClearingLight:       250.0,
		YardClearingMedium:      400.0,
		YardClearingHeavyPerSqm: 2.50,

		TreeFellingSmall:  600.0,
		TreeFellingMedium: 1000.0,
		TreeFellingLarge:  1800.0,

		CleaningStandard:         350.0,
		CleaningDeep:             600.0,
		CleaningMoveInOut:        750.0,
		CleaningCommercialPerSqm: 8.0,

		PlumbingLeakingTap:    300.0,
		PlumbingBurstPipe:     450.0,
		PlumbingBlockedDrain:  400.0,
		PlumbingToiletRepair:  350.0,
		PlumbingGeyserInstall: 900.0,

		ElectricalLightFitting: 250.0,
		ElectricalSocketRepair: 300.0,
		ElectricalWiring:       800.0,
		ElectricalDBBoard:      1200.0,

		DSTVStandard:  450.0,
		DSTVExtraView: 650.0,
		DSTVFullKit:   900.0,

		FurnitureAssembly:  300.0,
		PaintingPerSqm:     15.0,
		MovingHelpPerHour:  150.0,
		MaintenanceCallout: 350.0,
		ErrandsBase:        200.0,
	}
}

// Service type codes as stored on job records.
const (
	ServiceGrassCutting      = "grass_cutting"
	ServiceYardClearing      = "yard_clearing"
	ServiceGardening         = "gardening"
	ServiceTreeFelling       = "tree_felling"
	ServiceCleaning          = "cleaning"
	ServicePlumbing          = "plumbing"
	ServiceElectrical        = "electrical"
	ServiceDSTVInstallation  = "dstv_installation"
	ServiceFurnitureAssembly = "furniture_assembly"
	ServicePainting          = "painting"
	ServiceMovingHelp        = "moving_help"
	ServiceMaintenance       = "maintenance"
	ServiceErrands           = "errands"
)

var displayNames = map[string]string{
	ServiceGrassCutting:      "Grass Cutting",
	ServiceYardClearing:      "Yard Clearing",
	ServiceGardening:         "Gardening",
	ServiceTreeFelling:       "Tree Felling",
	ServiceCleaning:          "Cleaning",
	ServicePlumbing:          "Plumbing",
	ServiceElectrical:        "Electrical",
	ServiceDSTVInstallation:  "DSTV Installation",
	ServiceFurnitureAssembly: "Furniture Assembly",
	ServicePainting:          "Painting",
	ServiceMovingHelp:        "Moving Help",
	ServiceMaintenance:       "Home Maintenance",
	ServiceErrands:           "Errands",
}

// DisplayName maps a service type code to its human label. Unknown codes
// map to a generic label rather than failing.
func (c *Config) DisplayName(serviceType string) string {
	if name, ok := displayNames[serviceType]; ok {
		return name
	}
	return "Service"
}

// EstimatedHours returns the expected duration in hours for a service.
// Area is optional; pass 0 when not known. Used for display only, it has
// no effect on pricing.
func (c *Config) EstimatedHours(serviceType string, area float64) float64 {
	switch serviceType {
	case ServiceGrassCutting:
		switch {
		case area <= 150:
			return 2
		case area <= 300:
			return 3
		case area <= 600:
			return 4
		default:
			return 6
		}
	case ServiceYardClearing, ServiceGardening:
		switch {
		case area <= 100:
			return 3
		case area <= 300:
			return 5
		default:
			return 8
		}
	case ServicePainting:
		if area > 0 {
			return area / 20
		}
		return 4
	case ServiceTreeFelling:
		return 5
	case ServiceCleaning:
		return 4
	case ServiceMovingHelp:
		return 4
	case ServiceMaintenance:
		return 3
	case ServicePlumbing, ServiceElectrical, ServiceDSTVInstallation,
		ServiceFurnitureAssembly, ServiceErrands:
		return 2
	default:
		return 2
	}
}
