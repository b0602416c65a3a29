package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	property "github.com/rentalke/rentalke-backend/internal/properties"
	"github.com/rentalke/rentalke-backend/pkg/db/models"
)

type stubPropertyService struct {
	items       []models.Property
	item        *models.Property
	count       int64
	err         error
	lastFilters *property.Filters
	listCalled  bool
}

func (s *stubPropertyService) List(ctx context.Context, filters *property.Filters) ([]models.Property, error) {
	s.listCalled = true
	s.lastFilters = filters
	return s.items, s.err
}

func (s *stubPropertyService) GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	return s.item, s.err
}

func (s *stubPropertyService) CountAvailable(ctx context.Context) (int64, error) {
	return s.count, s.err
}

func (s *stubPropertyService) SearchByText(ctx context.Context, text string) ([]models.Property, error) {
	return s.items, s.err
}

func (s *stubPropertyService) InvalidateCache() {}

func sampleListing() models.Property {
	return models.Property{
		ID:            uuid.New(),
		Title:         "Spacious Bedsitter",
		City:          "Mombasa",
		Neighborhood:  "Nyali",
		Type:          "bedsitter",
		Bedrooms:      "bedsitter",
		Bathroom:      "1",
		Price:         8500,
		Available:     true,
		LandlordName:  "Aisha",
		LandlordPhone: "+254700000001",
	}
}

func TestListPropertiesNoParamsUsesNilFilters(t *testing.T) {
	svc := &stubPropertyService{items: []models.Property{sampleListing()}}
	handler := ListProperties(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if !svc.listCalled {
		t.Fatal("expected service call")
	}
	if svc.lastFilters != nil {
		t.Fatalf("expected nil filters got %+v", svc.lastFilters)
	}

	var envelope struct {
		Data []property.PropertyDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 {
		t.Fatalf("expected 1 listing got %d", len(envelope.Data))
	}
}

func TestListPropertiesQueryParamsBuildFilters(t *testing.T) {
	svc := &stubPropertyService{}
	handler := ListProperties(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties?city=Mombasa&type=bedsitter&minPrice=5000&maxPrice=10000&available=true", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	filters := svc.lastFilters
	if filters == nil {
		t.Fatal("expected filters")
	}
	if filters.City != "Mombasa" || filters.Type != "bedsitter" {
		t.Fatalf("unexpected filters %+v", filters)
	}
	if filters.MinPrice == nil || *filters.MinPrice != 5000 {
		t.Fatalf("expected min price 5000 got %+v", filters.MinPrice)
	}
	if filters.MaxPrice == nil || *filters.MaxPrice != 10000 {
		t.Fatalf("expected max price 10000 got %+v", filters.MaxPrice)
	}
	if filters.Available == nil || !*filters.Available {
		t.Fatalf("expected available filter got %+v", filters.Available)
	}
}

func TestListPropertiesRejectsMalformedPrice(t *testing.T) {
	svc := &stubPropertyService{}
	handler := ListProperties(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties?minPrice=abc", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	if svc.listCalled {
		t.Fatal("expected no service call")
	}
}

func TestListPropertiesDegradesToEmptyOnError(t *testing.T) {
	svc := &stubPropertyService{err: errors.New("db down")}
	handler := ListProperties(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data []property.PropertyDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 0 {
		t.Fatalf("expected empty data got %d", len(envelope.Data))
	}
}

func TestGetPropertySuccess(t *testing.T) {
	listing := sampleListing()
	svc := &stubPropertyService{item: &listing}

	router := chi.NewRouter()
	router.Get("/api/v1/properties/{propertyId}", GetProperty(svc, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties/"+listing.ID.String(), nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data *property.PropertyDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data == nil || envelope.Data.ID != listing.ID {
		t.Fatalf("expected listing payload got %+v", envelope.Data)
	}
}

func TestGetPropertyDegradesToNull(t *testing.T) {
	svc := &stubPropertyService{err: errors.New("not found")}

	router := chi.NewRouter()
	router.Get("/api/v1/properties/{propertyId}", GetProperty(svc, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties/"+uuid.NewString(), nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data *property.PropertyDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data != nil {
		t.Fatalf("expected null data got %+v", envelope.Data)
	}
}

func TestGetPropertyMalformedIDDegradesToNull(t *testing.T) {
	svc := &stubPropertyService{}

	router := chi.NewRouter()
	router.Get("/api/v1/properties/{propertyId}", GetProperty(svc, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties/not-a-uuid", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestCountAvailablePropertiesDegradesToZero(t *testing.T) {
	svc := &stubPropertyService{err: errors.New("db down")}
	handler := CountAvailableProperties(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties/count", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data struct {
			Count int64 `json:"count"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Count != 0 {
		t.Fatalf("expected zero count got %d", envelope.Data.Count)
	}
}

func TestSearchPropertiesBlankQueryReturnsEmpty(t *testing.T) {
	svc := &stubPropertyService{items: []models.Property{sampleListing()}}
	handler := SearchProperties(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties/search?q=%20%20", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data []property.PropertyDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 0 {
		t.Fatalf("expected empty data got %d", len(envelope.Data))
	}
}

func TestSearchPropertiesReturnsMatches(t *testing.T) {
	svc := &stubPropertyService{items: []models.Property{sampleListing()}}
	handler := SearchProperties(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties/search?q=nyali", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data []property.PropertyDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 {
		t.Fatalf("expected 1 match got %d", len(envelope.Data))
	}
}
