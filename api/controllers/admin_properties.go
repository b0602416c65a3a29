package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rentalke/rentalke-backend/api/responses"
	"github.com/rentalke/rentalke-backend/api/validators"
	adminsvc "github.com/rentalke/rentalke-backend/internal/admin"
	pkgerrors "github.com/rentalke/rentalke-backend/pkg/errors"
	"github.com/rentalke/rentalke-backend/pkg/logger"
)

// AdminCreateProperty handles listing creation from the dashboard.
func AdminCreateProperty(svc adminsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin service unavailable"))
			return
		}

		var payload createPropertyRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.CreateProperty(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

// AdminUpdateProperty applies a partial update to a listing.
func AdminUpdateProperty(svc adminsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin service unavailable"))
			return
		}

		id, err := parsePropertyID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updatePropertyRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.UpdateProperty(r.Context(), id, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, updated)
	}
}

// AdminTogglePropertyAvailability flips the listing between available and occupied.
func AdminTogglePropertyAvailability(svc adminsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin service unavailable"))
			return
		}

		id, err := parsePropertyID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.ToggleAvailability(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, updated)
	}
}

// AdminDeleteProperty removes a listing permanently.
func AdminDeleteProperty(svc adminsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin service unavailable"))
			return
		}

		id, err := parsePropertyID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteProperty(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

func parsePropertyID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "propertyId"))
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid property id")
	}
	return id, nil
}

type createPropertyRequest struct {
	Title           string   `json:"title" validate:"required"`
	Description     *string  `json:"description,omitempty"`
	City            string   `json:"city" validate:"required"`
	Neighborhood    string   `json:"neighborhood" validate:"required"`
	Type            string   `json:"type" validate:"required"`
	Bedrooms        string   `json:"bedrooms" validate:"required"`
	Bathroom        string   `json:"bathroom,omitempty"`
	Price           int      `json:"price" validate:"required,min=1"`
	Deposit         *int     `json:"deposit,omitempty" validate:"omitempty,min=0"`
	WaterIncluded   bool     `json:"water_included"`
	ElectricityCost *string  `json:"electricity_cost,omitempty"`
	Available       *bool    `json:"available,omitempty"`
	LandlordName    string   `json:"landlord_name" validate:"required"`
	LandlordPhone   string   `json:"landlord_phone" validate:"required"`
	WhatsAppNumber  *string  `json:"whatsapp_number,omitempty"`
	Images          []string `json:"images,omitempty"`
	Features        []string `json:"features,omitempty"`
	NearbyPlaces    []string `json:"nearby_places,omitempty"`
}

func (r createPropertyRequest) toInput() adminsvc.CreatePropertyInput {
	return adminsvc.CreatePropertyInput{
		Title:           r.Title,
		Description:     r.Description,
		City:            r.City,
		Neighborhood:    r.Neighborhood,
		Type:            r.Type,
		Bedrooms:        r.Bedrooms,
		Bathroom:        r.Bathroom,
		Price:           r.Price,
		Deposit:         r.Deposit,
		WaterIncluded:   r.WaterIncluded,
		ElectricityCost: r.ElectricityCost,
		Available:       r.Available,
		LandlordName:    r.LandlordName,
		LandlordPhone:   r.LandlordPhone,
		WhatsAppNumber:  r.WhatsAppNumber,
		Images:          r.Images,
		Features:        r.Features,
		NearbyPlaces:    r.NearbyPlaces,
	}
}

type updatePropertyRequest struct {
	Title           *string   `json:"title,omitempty"`
	Description     *string   `json:"description,omitempty"`
	City            *string   `json:"city,omitempty"`
	Neighborhood    *string   `json:"neighborhood,omitempty"`
	Type            *string   `json:"type,omitempty"`
	Bedrooms        *string   `json:"bedrooms,omitempty"`
	Bathroom        *string   `json:"bathroom,omitempty"`
	Price           *int      `json:"price,omitempty" validate:"omitempty,min=1"`
	Deposit         *int      `json:"deposit,omitempty" validate:"omitempty,min=0"`
	WaterIncluded   *bool     `json:"water_included,omitempty"`
	ElectricityCost *string   `json:"electricity_cost,omitempty"`
	Available       *bool     `json:"available,omitempty"`
	LandlordName    *string   `json:"landlord_name,omitempty"`
	LandlordPhone   *string   `json:"landlord_phone,omitempty"`
	WhatsAppNumber  *string   `json:"whatsapp_number,omitempty"`
	Images          *[]string `json:"images,omitempty"`
	Features        *[]string `json:"features,omitempty"`
	NearbyPlaces    *[]string `json:"nearby_places,omitempty"`
}

func (r updatePropertyRequest) toInput() adminsvc.UpdatePropertyInput {
	return adminsvc.UpdatePropertyInput{
		Title:           r.Title,
		Description:     r.Description,
		City:            r.City,
		Neighborhood:    r.Neighborhood,
		Type:            r.Type,
		Bedrooms:        r.Bedrooms,
		Bathroom:        r.Bathroom,
		Price:           r.Price,
		Deposit:         r.Deposit,
		WaterIncluded:   r.WaterIncluded,
		ElectricityCost: r.ElectricityCost,
		Available:       r.Available,
		LandlordName:    r.LandlordName,
		LandlordPhone:   r.LandlordPhone,
		WhatsAppNumber:  r.WhatsAppNumber,
		Images:          r.Images,
		Features:        r.Features,
		NearbyPlaces:    r.NearbyPlaces,
	}
}
