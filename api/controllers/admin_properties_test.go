package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	adminsvc "github.com/rentalke/rentalke-backend/internal/admin"
	property "github.com/rentalke/rentalke-backend/internal/properties"
	pkgerrors "github.com/rentalke/rentalke-backend/pkg/errors"
)

type stubAdminService struct {
	dto       *property.PropertyDTO
	err       error
	createdIn *adminsvc.CreatePropertyInput
	updatedIn *adminsvc.UpdatePropertyInput
	deletedID uuid.UUID
}

func (s *stubAdminService) CreateProperty(ctx context.Context, input adminsvc.CreatePropertyInput) (*property.PropertyDTO, error) {
	s.createdIn = &input
	return s.dto, s.err
}

func (s *stubAdminService) UpdateProperty(ctx context.Context, id uuid.UUID, input adminsvc.UpdatePropertyInput) (*property.PropertyDTO, error) {
	s.updatedIn = &input
	return s.dto, s.err
}

func (s *stubAdminService) ToggleAvailability(ctx context.Context, id uuid.UUID) (*property.PropertyDTO, error) {
	return s.dto, s.err
}

func (s *stubAdminService) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	s.deletedID = id
	return s.err
}

func TestAdminCreatePropertySuccess(t *testing.T) {
	dto := property.NewPropertyDTO(sampleListing())
	svc := &stubAdminService{dto: &dto}
	handler := AdminCreateProperty(svc, nil)

	payload := `{
		"title": "Spacious Bedsitter",
		"city": "Mombasa",
		"neighborhood": "Nyali",
		"type": "bedsitter",
		"bedrooms": "bedsitter",
		"price": 8500,
		"landlord_name": "Aisha",
		"landlord_phone": "+254700000001"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/properties", bytes.NewReader([]byte(payload)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
	if svc.createdIn == nil {
		t.Fatal("expected create call")
	}
	if svc.createdIn.City != "Mombasa" || svc.createdIn.Price != 8500 {
		t.Fatalf("unexpected input %+v", svc.createdIn)
	}
}

func TestAdminCreatePropertyInvalidPayload(t *testing.T) {
	svc := &stubAdminService{}
	handler := AdminCreateProperty(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/properties", bytes.NewReader([]byte(`{"title":"x"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	if svc.createdIn != nil {
		t.Fatal("expected no create call")
	}
}

func TestAdminUpdatePropertyPartialPayload(t *testing.T) {
	dto := property.NewPropertyDTO(sampleListing())
	svc := &stubAdminService{dto: &dto}

	router := chi.NewRouter()
	router.Patch("/api/admin/v1/properties/{propertyId}", AdminUpdateProperty(svc, nil))

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/v1/properties/"+uuid.NewString(), bytes.NewReader([]byte(`{"price":9000}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.updatedIn == nil || svc.updatedIn.Price == nil || *svc.updatedIn.Price != 9000 {
		t.Fatalf("unexpected input %+v", svc.updatedIn)
	}
	if svc.updatedIn.Title != nil {
		t.Fatalf("expected untouched title got %+v", svc.updatedIn.Title)
	}
}

func TestAdminUpdatePropertyRejectsMalformedID(t *testing.T) {
	svc := &stubAdminService{}

	router := chi.NewRouter()
	router.Patch("/api/admin/v1/properties/{propertyId}", AdminUpdateProperty(svc, nil))

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/v1/properties/not-a-uuid", bytes.NewReader([]byte(`{"price":9000}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAdminTogglePropertyAvailability(t *testing.T) {
	listing := sampleListing()
	listing.Available = false
	dto := property.NewPropertyDTO(listing)
	svc := &stubAdminService{dto: &dto}

	router := chi.NewRouter()
	router.Post("/api/admin/v1/properties/{propertyId}/toggle", AdminTogglePropertyAvailability(svc, nil))

	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/properties/"+listing.ID.String()+"/toggle", nil)
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
	if envelope.Data == nil || envelope.Data.Available {
		t.Fatalf("expected occupied listing got %+v", envelope.Data)
	}
}

func TestAdminDeletePropertyNotFound(t *testing.T) {
	svc := &stubAdminService{err: pkgerrors.New(pkgerrors.CodeNotFound, "property not found")}

	router := chi.NewRouter()
	router.Delete("/api/admin/v1/properties/{propertyId}", AdminDeleteProperty(svc, nil))

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/v1/properties/"+uuid.NewString(), nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestAdminDeletePropertySuccess(t *testing.T) {
	svc := &stubAdminService{}
	id := uuid.New()

	router := chi.NewRouter()
	router.Delete("/api/admin/v1/properties/{propertyId}", AdminDeleteProperty(svc, nil))

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/v1/properties/"+id.String(), nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.deletedID != id {
		t.Fatalf("expected delete of %s got %s", id, svc.deletedID)
	}
}
