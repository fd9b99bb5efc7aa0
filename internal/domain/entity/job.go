package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sandzahub/sebenza-api/internal/domain/enum"
	"github.com/sandzahub/sebenza-api/internal/domain/pricing"
	"gorm.io/gorm"
)

// Job represents a booked service job with its quoted price breakdown
// persisted as flat columns. Monetary columns mirror the pricing
// breakdown exactly so the quote a customer accepted can always be
// reconstructed from the record.
type Job struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID      `gorm:"type:uuid;not null;index" json:"customer_id"`
	ProviderID *uuid.UUID     `gorm:"type:uuid;index" json:"provider_id,omitempty"`
	Reference  string         `gorm:"size:100;unique;not null" json:"reference"`
	Status     enum.JobStatus `gorm:"default:0" json:"status"`

	// What was requested.
	ServiceType       string    `gorm:"size:100;not null;index" json:"service_type"`
	ServiceVariant    string    `gorm:"size:100" json:"service_variant,omitempty"`
	AreaSqm           float64   `gorm:"type:decimal(10,2);default:0" json:"area_sqm,omitempty"`
	VegetationType    string    `gorm:"size:50" json:"vegetation_type,omitempty"`
	GrowthStage       string    `gorm:"size:50" json:"growth_stage,omitempty"`
	TerrainType       string    `gorm:"size:50" json:"terrain_type,omitempty"`
	TreeSize          string    `gorm:"size:50" json:"tree_size,omitempty"`
	TreeHeightM       float64   `gorm:"type:decimal(6,2);default:0" json:"tree_height_m,omitempty"`
	LocationRisk      string    `gorm:"size:50" json:"location_risk,omitempty"`
	NeedsDisposal     bool      `gorm:"default:false" json:"needs_disposal"`
	NeedsStumpRemoval bool      `gorm:"default:false" json:"needs_stump_removal"`
	IsUrgent          bool      `gorm:"default:false" json:"is_urgent"`
	IsRecurring       bool      `gorm:"default:false" json:"is_recurring"`
	TravelDistanceKm  float64   `gorm:"type:decimal(8,2);default:0" json:"travel_distance_km"`
	Address           string    `gorm:"type:text" json:"address"`
	Notes             *string   `gorm:"type:text" json:"notes,omitempty"`
	ScheduledFor      time.Time `gorm:"type:date;not null" json:"scheduled_for"`

	// The quoted breakdown, flattened.
	BasePrice           float64 `gorm:"type:decimal(15,2);default:0" json:"base_price"`
	VegetationSurcharge float64 `gorm:"type:decimal(15,2);default:0" json:"vegetation_surcharge"`
	GrowthSurcharge     float64 `gorm:"type:decimal(15,2);default:0" json:"growth_surcharge"`
	TerrainSurcharge    float64 `gorm:"type:decimal(15,2);default:0" json:"terrain_surcharge"`
	ServiceSurcharge    float64 `gorm:"type:decimal(15,2);default:0" json:"service_surcharge"`
	DisposalFee         float64 `gorm:"type:decimal(15,2);default:0" json:"disposal_fee"`
	TravelFee           float64 `gorm:"type:decimal(15,2);default:0" json:"travel_fee"`
	UrgencyFee          float64 `gorm:"type:decimal(15,2);default:0" json:"urgency_fee"`
	Subtotal            float64 `gorm:"type:decimal(15,2);default:0" json:"subtotal"`
	MobileMoneyFee      float64 `gorm:"type:decimal(15,2);default:0" json:"mobile_money_fee"`
	VAT                 float64 `gorm:"type:decimal(15,2);default:0" json:"vat"`
	TotalAmount         float64 `gorm:"type:decimal(15,2);default:0" json:"total_amount"`
	EstimatedHours      float64 `gorm:"type:decimal(6,2);default:0" json:"estimated_hours"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Customer User  `gorm:"foreignKey:CustomerID" json:"-"`
	Provider *User `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
}

// BeforeCreate generates a UUID before creating a new job
func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Job model
func (Job) TableName() string {
	return "jobs"
}

// ApplyBreakdown copies a quoted price breakdown onto the job's flat
// monetary columns.
func (j *Job) ApplyBreakdown(b *pricing.Breakdown) {
	j.BasePrice = b.BasePrice
	j.VegetationSurcharge = b.VegetationSurcharge
	j.GrowthSurcharge = b.GrowthSurcharge
	j.TerrainSurcharge = b.TerrainSurcharge
	j.ServiceSurcharge = b.ServiceSurcharge
	j.DisposalFee = b.DisposalFee
	j.TravelFee = b.TravelFee
	j.UrgencyFee = b.UrgencyFee
	j.Subtotal = b.Subtotal
	j.MobileMoneyFee = b.MobileMoneyFee
	j.VAT = b.VAT
	j.TotalAmount = b.TotalAmount
	j.EstimatedHours = b.EstimatedHours
}

// Breakdown reconstructs the quoted breakdown from the flat columns.
func (j *Job) Breakdown() *pricing.Breakdown {
	return &pricing.Breakdown{
		BasePrice:           j.BasePrice,
		VegetationSurcharge: j.VegetationSurcharge,
		GrowthSurcharge:     j.GrowthSurcharge,
		TerrainSurcharge:    j.TerrainSurcharge,
		ServiceSurcharge:    j.ServiceSurcharge,
		DisposalFee:         j.DisposalFee,
		TravelFee:           j.TravelFee,
		UrgencyFee:          j.UrgencyFee,
		Subtotal:            j.Subtotal,
		MobileMoneyFee:      j.MobileMoneyFee,
		VAT:                 j.VAT,
		TotalAmount:         j.TotalAmount,
		EstimatedHours:      j.EstimatedHours,
	}
}
