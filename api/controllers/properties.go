package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rentalke/rentalke-backend/api/responses"
	"github.com/rentalke/rentalke-backend/api/validators"
	property "github.com/rentalke/rentalke-backend/internal/properties"
	"github.com/rentalke/rentalke-backend/pkg/logger"
)

const (
	maxListingPrice = 10_000_000
)

// ListProperties serves the public listing feed. Lookup failures degrade to an
// empty result set so the storefront always renders.
func ListProperties(svc property.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteSuccess(w, []property.PropertyDTO{})
			return
		}

		filters, err := parseListingFilters(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items, err := svc.List(r.Context(), filters)
		if err != nil {
			if logg != nil {
				logg.Error(r.Context(), "properties.list.degraded", err)
			}
			responses.WriteSuccess(w, []property.PropertyDTO{})
			return
		}

		responses.WriteSuccess(w, property.NewPropertyDTOs(items))
	}
}

// GetProperty serves a single listing. Missing or broken listings surface as a
// null payload rather than an error page.
func GetProperty(svc property.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteSuccess(w, nil)
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "propertyId"))
		if err != nil {
			responses.WriteSuccess(w, nil)
			return
		}

		item, err := svc.GetByID(r.Context(), id)
		if err != nil || item == nil {
			if err != nil && logg != nil {
				logg.Error(r.Context(), "properties.get.degraded", err)
			}
			responses.WriteSuccess(w, nil)
			return
		}

		dto := property.NewPropertyDTO(*item)
		responses.WriteSuccess(w, dto)
	}
}

// CountAvailableProperties reports the number of available listings, falling
// back to zero when the store is unreachable.
func CountAvailableProperties(svc property.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteSuccess(w, map[string]int64{"count": 0})
			return
		}

		count, err := svc.CountAvailable(r.Context())
		if err != nil {
			if logg != nil {
				logg.Error(r.Context(), "properties.count.degraded", err)
			}
			count = 0
		}

		responses.WriteSuccess(w, map[string]int64{"count": count})
	}
}

// SearchProperties runs full-text search over listings. A blank query or a
// backend failure both yield an empty result set.
func SearchProperties(svc property.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))
		if svc == nil || query == "" {
			responses.WriteSuccess(w, []property.PropertyDTO{})
			return
		}

		items, err := svc.SearchByText(r.Context(), query)
		if err != nil {
			if logg != nil {
				logg.Error(r.Context(), "properties.search.degraded", err)
			}
			responses.WriteSuccess(w, []property.PropertyDTO{})
			return
		}

		responses.WriteSuccess(w, property.NewPropertyDTOs(items))
	}
}

// parseListingFilters returns nil when no filter params are present so the
// service can serve the cached unfiltered feed.
func parseListingFilters(r *http.Request) (*property.Filters, error) {
	query := r.URL.Query()

	minPrice, err := validators.ParseOptionalQueryInt(r, "minPrice", 0, maxListingPrice)
	if err != nil {
		return nil, err
	}
	maxPrice, err := validators.ParseOptionalQueryInt(r, "maxPrice", 0, maxListingPrice)
	if err != nil {
		return nil, err
	}
	available, err := validators.ParseOptionalQueryBool(r, "available")
	if err != nil {
		return nil, err
	}

	filters := property.Filters{
		City:         strings.TrimSpace(query.Get("city")),
		Neighborhood: strings.TrimSpace(query.Get("neighborhood")),
		Type:         strings.TrimSpace(query.Get("type")),
		MinPrice:     minPrice,
		MaxPrice:     maxPrice,
		Available:    available,
	}

	if filters.City == "" && filters.Neighborhood == "" && filters.Type == "" &&
		filters.MinPrice == nil && filters.MaxPrice == nil && filters.Available == nil {
		return nil, nil
	}
	return &filters, nil
}
