package property

import (
	"time"

	"github.com/google/uuid"

	"github.com/rentalke/rentalke-backend/pkg/contact"
	"github.com/rentalke/rentalke-backend/pkg/db/models"
)

// PropertyDTO is the listing payload returned to clients.
type PropertyDTO struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Description     *string    `json:"description,omitempty"`
	City            string     `json:"city"`
	Neighborhood    string     `json:"neighborhood"`
	Type            string     `json:"type"`
	Bedrooms        string     `json:"bedrooms"`
	Bathroom        string     `json:"bathroom"`
	Price           int        `json:"price"`
	PriceCategory   string     `json:"price_category"`
	Deposit         *int       `json:"deposit,omitempty"`
	WaterIncluded   bool       `json:"water_included"`
	ElectricityCost *string    `json:"electricity_cost,omitempty"`
	Available       bool       `json:"available"`
	LandlordName    string     `json:"landlord_name"`
	LandlordPhone   string     `json:"landlord_phone"`
	WhatsAppNumber  *string    `json:"whatsapp_number,omitempty"`
	WhatsAppLink    string     `json:"whatsapp_link,omitempty"`
	TelLink         string     `json:"tel_link,omitempty"`
	Images          []string   `json:"images"`
	Features        []string   `json:"features"`
	NearbyPlaces    []string   `json:"nearby_places"`
	PhoneVerified   bool       `json:"phone_verified"`
	IDVerified      bool       `json:"id_verified"`
	AddressVerified bool       `json:"address_verified"`
	RentalkeVisited bool       `json:"rentalke_visited"`
	VerifiedAt      *time.Time `json:"verified_at,omitempty"`
	VerifiedBy      *string    `json:"verified_by,omitempty"`
	AverageRating   *float64   `json:"average_rating,omitempty"`
	TotalRatings    int        `json:"total_ratings"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// NewPropertyDTO builds the client payload from the persisted model.
func NewPropertyDTO(item models.Property) PropertyDTO {
	dto := PropertyDTO{
		ID:              item.ID,
		Title:           item.Title,
		Description:     item.Description,
		City:            item.City,
		Neighborhood:    item.Neighborhood,
		Type:            item.Type,
		Bedrooms:        item.Bedrooms,
		Bathroom:        item.Bathroom,
		Price:           item.Price,
		PriceCategory:   string(CategorizePrice(item.Price)),
		Deposit:         item.Deposit,
		WaterIncluded:   item.WaterIncluded,
		ElectricityCost: item.ElectricityCost,
		Available:       item.Available,
		LandlordName:    item.LandlordName,
		LandlordPhone:   item.LandlordPhone,
		WhatsAppNumber:  item.WhatsAppNumber,
		TelLink:         contact.TelLink(item.LandlordPhone),
		Images:          append([]string{}, item.Images...),
		Features:        append([]string{}, item.Features...),
		NearbyPlaces:    append([]string{}, item.NearbyPlaces...),
		PhoneVerified:   item.PhoneVerified,
		IDVerified:      item.IDVerified,
		AddressVerified: item.AddressVerified,
		RentalkeVisited: item.RentalkeVisited,
		VerifiedAt:      item.VerifiedAt,
		VerifiedBy:      item.VerifiedBy,
		AverageRating:   item.AverageRating,
		TotalRatings:    item.TotalRatings,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}

	if item.WhatsAppNumber != nil {
		message := contact.InquiryMessage(item.Type, item.Neighborhood, item.Price)
		dto.WhatsAppLink = contact.WhatsAppLink(*item.WhatsAppNumber, message)
	}

	return dto
}

// NewPropertyDTOs maps a result slice, preserving order.
func NewPropertyDTOs(items []models.Property) []PropertyDTO {
	dtos := make([]PropertyDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, NewPropertyDTO(item))
	}
	return dtos
}
