package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rentalke/rentalke-backend/pkg/db/models"
	pkgerrors "github.com/rentalke/rentalke-backend/pkg/errors"
)

type fakePropertyStore struct {
	items map[uuid.UUID]*models.Property
	err   error
}

func newFakePropertyStore() *fakePropertyStore {
	return &fakePropertyStore{items: make(map[uuid.UUID]*models.Property)}
}

func (f *fakePropertyStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	if f.err != nil {
		return nil, f.err
	}
	item, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *item
	return &clone, nil
}

func (f *fakePropertyStore) Create(ctx context.Context, item *models.Property) (*models.Property, error) {
	if f.err != nil {
		return nil, f.err
	}
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	f.items[item.ID] = item
	return item, nil
}

func (f *fakePropertyStore) Save(ctx context.Context, item *models.Property) (*models.Property, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.items[item.ID] = item
	return item, nil
}

func (f *fakePropertyStore) Delete(ctx context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeInvalidator struct {
	calls int
}

func (f *fakeInvalidator) InvalidateCache() {
	f.calls++
}

func validCreateInput() CreatePropertyInput {
	return CreatePropertyInput{
		Title:         "Bedsitter in Bamburi",
		City:          "Mombasa",
		Neighborhood:  "Bamburi",
		Type:          "Bedsitter",
		Bedrooms:      "Bedsitter",
		Bathroom:      "1",
		Price:         6500,
		LandlordName:  "Jane Mwangi",
		LandlordPhone: "+254700000000",
	}
}

func newTestService(t *testing.T) (Service, *fakePropertyStore, *fakeInvalidator) {
	t.Helper()
	store := newFakePropertyStore()
	invalidator := &fakeInvalidator{}
	svc, err := NewService(store, invalidator)
	require.NoError(t, err)
	return svc, store, invalidator
}

func TestCreatePropertyDefaultsAndInvalidates(t *testing.T) {
	svc, store, invalidator := newTestService(t)

	dto, err := svc.CreateProperty(context.Background(), validCreateInput())
	require.NoError(t, err)

	assert.True(t, dto.Available, "listings default to available")
	assert.NotEqual(t, uuid.Nil, dto.ID)
	assert.NotNil(t, dto.Images)
	assert.Equal(t, 1, invalidator.calls)
	assert.Len(t, store.items, 1)
}

func TestCreatePropertyValidation(t *testing.T) {
	svc, _, invalidator := newTestService(t)
	ctx := context.Background()

	missing := validCreateInput()
	missing.Title = "   "
	_, err := svc.CreateProperty(ctx, missing)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())

	badPrice := validCreateInput()
	badPrice.Price = 0
	_, err = svc.CreateProperty(ctx, badPrice)
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())

	negDeposit := validCreateInput()
	deposit := -1
	negDeposit.Deposit = &deposit
	_, err = svc.CreateProperty(ctx, negDeposit)
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())

	assert.Zero(t, invalidator.calls, "failed creates must not invalidate the cache")
}

func TestUpdatePropertyPartial(t *testing.T) {
	svc, store, invalidator := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateProperty(ctx, validCreateInput())
	require.NoError(t, err)

	newPrice := 7500
	newTitle := "  Renovated bedsitter  "
	dto, err := svc.UpdateProperty(ctx, created.ID, UpdatePropertyInput{
		Price: &newPrice,
		Title: &newTitle,
	})
	require.NoError(t, err)

	assert.Equal(t, 7500, dto.Price)
	assert.Equal(t, "Renovated bedsitter", dto.Title)
	assert.Equal(t, "Mombasa", dto.City, "untouched fields survive")
	assert.Equal(t, "mid-range", dto.PriceCategory)
	assert.Equal(t, 2, invalidator.calls)
	assert.Equal(t, 7500, store.items[created.ID].Price)
}

func TestUpdatePropertyNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	price := 9000
	_, err := svc.UpdateProperty(context.Background(), uuid.New(), UpdatePropertyInput{Price: &price})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestUpdatePropertyValidation(t *testing.T) {
	svc, _, _ := newTestService(t)

	blank := "  "
	_, err := svc.UpdateProperty(context.Background(), uuid.New(), UpdatePropertyInput{City: &blank})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestToggleAvailability(t *testing.T) {
	svc, _, invalidator := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateProperty(ctx, validCreateInput())
	require.NoError(t, err)
	require.True(t, created.Available)

	toggled, err := svc.ToggleAvailability(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Available)

	toggled, err = svc.ToggleAvailability(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Available)

	assert.Equal(t, 3, invalidator.calls)
}

func TestDeleteProperty(t *testing.T) {
	svc, store, invalidator := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateProperty(ctx, validCreateInput())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProperty(ctx, created.ID))
	assert.Empty(t, store.items)
	assert.Equal(t, 2, invalidator.calls)

	err = svc.DeleteProperty(ctx, created.ID)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
	assert.Equal(t, 2, invalidator.calls, "failed deletes must not invalidate the cache")
}

func TestDependencyErrorsAreTyped(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateProperty(ctx, validCreateInput())
	require.NoError(t, err)

	store.err = errors.New("connection refused")

	_, err = svc.UpdateProperty(ctx, created.ID, UpdatePropertyInput{})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeDependency, typed.Code())

	err = svc.DeleteProperty(ctx, created.ID)
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeDependency, typed.Code())
}
