package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Property represents a single rental listing.
type Property struct {
	ID              uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	Title           string         `gorm:"column:title;not null"`
	Description     *string        `gorm:"column:description"`
	City            string         `gorm:"column:city;not null"`
	Neighborhood    string         `gorm:"column:neighborhood;not null"`
	Type            string         `gorm:"column:type;not null"`
	Bedrooms        string         `gorm:"column:bedrooms;not null"`
	Bathroom        string         `gorm:"column:bathroom;not null"`
	Price           int            `gorm:"column:price;not null"`
	Deposit         *int           `gorm:"column:deposit"`
	WaterIncluded   bool           `gorm:"column:water_included;not null;default:false"`
	ElectricityCost *string        `gorm:"column:electricity_cost"`
	Available       bool           `gorm:"column:available;not null;default:true"`
	LandlordName    string         `gorm:"column:landlord_name;not null"`
	LandlordPhone   string         `gorm:"column:landlord_phone;not null"`
	WhatsAppNumber  *string        `gorm:"column:whatsapp_number"`
	Images          pq.StringArray `gorm:"column:images;type:text[]"`
	Features        pq.StringArray `gorm:"column:features;type:text[]"`
	NearbyPlaces    pq.StringArray `gorm:"column:nearby_places;type:text[]"`
	PhoneVerified   bool           `gorm:"column:phone_verified;not null;default:false"`
	IDVerified      bool           `gorm:"column:id_verified;not null;default:false"`
	AddressVerified bool           `gorm:"column:address_verified;not null;default:false"`
	RentalkeVisited bool           `gorm:"column:rentalke_visited;not null;default:false"`
	VerifiedAt      *time.Time     `gorm:"column:verified_at"`
	VerifiedBy      *string        `gorm:"column:verified_by"`
	AverageRating   *float64       `gorm:"column:average_rating"`
	TotalRatings    int            `gorm:"column:total_ratings;not null;default:0"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

// BeforeCreate assigns the identifier when the caller did not.
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
