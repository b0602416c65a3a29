// Package admin implements the dashboard-facing property management
// operations. Every successful mutation invalidates the public listing
// cache so the change is visible to the next unfiltered read.
package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	property "github.com/rentalke/rentalke-backend/internal/properties"
	"github.com/rentalke/rentalke-backend/pkg/db/models"
	pkgerrors "github.com/rentalke/rentalke-backend/pkg/errors"
)

// Service exposes admin property management operations.
type Service interface {
	CreateProperty(ctx context.Context, input CreatePropertyInput) (*property.PropertyDTO, error)
	UpdateProperty(ctx context.Context, id uuid.UUID, input UpdatePropertyInput) (*property.PropertyDTO, error)
	ToggleAvailability(ctx context.Context, id uuid.UUID) (*property.PropertyDTO, error)
	DeleteProperty(ctx context.Context, id uuid.UUID) error
}

// CreatePropertyInput holds the validated payload to create a listing.
type CreatePropertyInput struct {
	Title           string
	Description     *string
	City            string
	Neighborhood    string
	Type            string
	Bedrooms        string
	Bathroom        string
	Price           int
	Deposit         *int
	WaterIncluded   bool
	ElectricityCost *string
	Available       *bool
	LandlordName    string
	LandlordPhone   string
	WhatsAppNumber  *string
	Images          []string
	Features        []string
	NearbyPlaces    []string
}

// UpdatePropertyInput holds optional mutation values for a listing.
type UpdatePropertyInput struct {
	Title           *string
	Description     *string
	City            *string
	Neighborhood    *string
	Type            *string
	Bedrooms        *string
	Bathroom        *string
	Price           *int
	Deposit         *int
	WaterIncluded   *bool
	ElectricityCost *string
	Available       *bool
	LandlordName    *string
	LandlordPhone   *string
	WhatsAppNumber  *string
	Images          *[]string
	Features        *[]string
	NearbyPlaces    *[]string
}

type propertyStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Property, error)
	Create(ctx context.Context, item *models.Property) (*models.Property, error)
	Save(ctx context.Context, item *models.Property) (*models.Property, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type cacheInvalidator interface {
	InvalidateCache()
}

// service implements the admin property service.
type service struct {
	store    propertyStore
	listings cacheInvalidator
}

// NewService constructs an admin property service instance.
func NewService(store propertyStore, listings cacheInvalidator) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("property store required")
	}
	if listings == nil {
		return nil, fmt.Errorf("listing cache invalidator required")
	}
	return &service{
		store:    store,
		listings: listings,
	}, nil
}

// CreateProperty inserts a new listing. Listings default to available.
func (s *service) CreateProperty(ctx context.Context, input CreatePropertyInput) (*property.PropertyDTO, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	available := true
	if input.Available != nil {
		available = *input.Available
	}

	item := &models.Property{
		Title:           strings.TrimSpace(input.Title),
		Description:     trimStringPtr(input.Description),
		City:            strings.TrimSpace(input.City),
		Neighborhood:    strings.TrimSpace(input.Neighborhood),
		Type:            strings.TrimSpace(input.Type),
		Bedrooms:        strings.TrimSpace(input.Bedrooms),
		Bathroom:        strings.TrimSpace(input.Bathroom),
		Price:           input.Price,
		Deposit:         input.Deposit,
		WaterIncluded:   input.WaterIncluded,
		ElectricityCost: trimStringPtr(input.ElectricityCost),
		Available:       available,
		LandlordName:    strings.TrimSpace(input.LandlordName),
		LandlordPhone:   strings.TrimSpace(input.LandlordPhone),
		WhatsAppNumber:  trimStringPtr(input.WhatsAppNumber),
		Images:          toStringArray(input.Images),
		Features:        toStringArray(input.Features),
		NearbyPlaces:    toStringArray(input.NearbyPlaces),
	}

	created, err := s.store.Create(ctx, item)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert property")
	}

	s.listings.InvalidateCache()

	dto := property.NewPropertyDTO(*created)
	return &dto, nil
}

// UpdateProperty applies a partial update to an existing listing.
func (s *service) UpdateProperty(ctx context.Context, id uuid.UUID, input UpdatePropertyInput) (*property.PropertyDTO, error) {
	if err := validateUpdateInput(input); err != nil {
		return nil, err
	}

	item, err := s.loadProperty(ctx, id)
	if err != nil {
		return nil, err
	}

	applyUpdateToProperty(item, input)

	saved, err := s.store.Save(ctx, item)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update property")
	}

	s.listings.InvalidateCache()

	dto := property.NewPropertyDTO(*saved)
	return &dto, nil
}

// ToggleAvailability flips the availability flag on a listing.
func (s *service) ToggleAvailability(ctx context.Context, id uuid.UUID) (*property.PropertyDTO, error) {
	item, err := s.loadProperty(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Available = !item.Available

	saved, err := s.store.Save(ctx, item)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: toggle availability")
	}

	s.listings.InvalidateCache()

	dto := property.NewPropertyDTO(*saved)
	return &dto, nil
}

// DeleteProperty removes a listing.
func (s *service) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "property id is required")
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "property not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete property")
	}

	s.listings.InvalidateCache()
	return nil
}

func (s *service) loadProperty(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "property id is required")
	}
	item, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "property not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load property")
	}
	return item, nil
}

func validateCreateInput(input CreatePropertyInput) error {
	required := map[string]string{
		"title":          input.Title,
		"city":           input.City,
		"neighborhood":   input.Neighborhood,
		"type":           input.Type,
		"bedrooms":       input.Bedrooms,
		"landlord_name":  input.LandlordName,
		"landlord_phone": input.LandlordPhone,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s is required", field))
		}
	}
	if input.Price <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "price must be positive")
	}
	if input.Deposit != nil && *input.Deposit < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "deposit cannot be negative")
	}
	return nil
}

func validateUpdateInput(input UpdatePropertyInput) error {
	if input.Price != nil && *input.Price <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "price must be positive")
	}
	if input.Deposit != nil && *input.Deposit < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "deposit cannot be negative")
	}
	for field, value := range map[string]*string{
		"title":          input.Title,
		"city":           input.City,
		"neighborhood":   input.Neighborhood,
		"type":           input.Type,
		"bedrooms":       input.Bedrooms,
		"landlord_name":  input.LandlordName,
		"landlord_phone": input.LandlordPhone,
	} {
		if value != nil && strings.TrimSpace(*value) == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s cannot be blank", field))
		}
	}
	return nil
}

func applyUpdateToProperty(item *models.Property, input UpdatePropertyInput) {
	if input.Title != nil {
		item.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		item.Description = trimStringPtr(input.Description)
	}
	if input.City != nil {
		item.City = strings.TrimSpace(*input.City)
	}
	if input.Neighborhood != nil {
		item.Neighborhood = strings.TrimSpace(*input.Neighborhood)
	}
	if input.Type != nil {
		item.Type = strings.TrimSpace(*input.Type)
	}
	if input.Bedrooms != nil {
		item.Bedrooms = strings.TrimSpace(*input.Bedrooms)
	}
	if input.Bathroom != nil {
		item.Bathroom = strings.TrimSpace(*input.Bathroom)
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.Deposit != nil {
		item.Deposit = input.Deposit
	}
	if input.WaterIncluded != nil {
		item.WaterIncluded = *input.WaterIncluded
	}
	if input.ElectricityCost != nil {
		item.ElectricityCost = trimStringPtr(input.ElectricityCost)
	}
	if input.Available != nil {
		item.Available = *input.Available
	}
	if input.LandlordName != nil {
		item.LandlordName = strings.TrimSpace(*input.LandlordName)
	}
	if input.LandlordPhone != nil {
		item.LandlordPhone = strings.TrimSpace(*input.LandlordPhone)
	}
	if input.WhatsAppNumber != nil {
		item.WhatsAppNumber = trimStringPtr(input.WhatsAppNumber)
	}
	if input.Images != nil {
		item.Images = toStringArray(*input.Images)
	}
	if input.Features != nil {
		item.Features = toStringArray(*input.Features)
	}
	if input.NearbyPlaces != nil {
		item.NearbyPlaces = toStringArray(*input.NearbyPlaces)
	}
}

func trimStringPtr(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func toStringArray(values []string) pq.StringArray {
	if values == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(values)
}
