package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sandzahub/sebenza-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Listing represents a livestock listing on the marketplace side of the
// platform.
type Listing struct {
	ID          uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	SellerID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"seller_id"`
	Title       string             `gorm:"size:255;not null" json:"title"`
	Description string             `gorm:"type:text" json:"description"`
	Category    string             `gorm:"size:100;not null;index" json:"category"`
	Breed       string             `gorm:"size:100" json:"breed,omitempty"`
	AgeMonths   int                `gorm:"default:0" json:"age_months,omitempty"`
	Quantity    int                `gorm:"default:1" json:"quantity"`
	Price       float64            `gorm:"type:decimal(15,2);not null" json:"price"`
	Location    string             `gorm:"size:255" json:"location"`
	ImageURL    *string            `gorm:"size:500" json:"image_url,omitempty"`
	Status      enum.ListingStatus `gorm:"default:0" json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	DeletedAt   gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Seller User `gorm:"foreignKey:SellerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new listing
func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Listing model
func (Listing) TableName() string {
	return "listings"
}
