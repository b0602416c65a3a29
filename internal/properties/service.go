package property

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rentalke/rentalke-backend/pkg/db/models"
	pkgerrors "github.com/rentalke/rentalke-backend/pkg/errors"
	"github.com/rentalke/rentalke-backend/pkg/metrics"
)

// Service exposes the public listing read operations.
type Service interface {
	List(ctx context.Context, filters *Filters) ([]models.Property, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error)
	CountAvailable(ctx context.Context) (int64, error)
	SearchByText(ctx context.Context, text string) ([]models.Property, error)
	InvalidateCache()
}

type listingStore interface {
	ListAll(ctx context.Context) ([]models.Property, error)
	ListFiltered(ctx context.Context, filters Filters) ([]models.Property, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Property, error)
	CountAvailable(ctx context.Context) (int64, error)
	SearchByText(ctx context.Context, text string) ([]models.Property, error)
}

// service implements the listing read service.
type service struct {
	store        listingStore
	cache        *Cache
	cacheMetrics *metrics.ListingCacheMetrics
}

// NewService constructs a listing service instance. cacheMetrics may be nil.
func NewService(store listingStore, cache *Cache, cacheMetrics *metrics.ListingCacheMetrics) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("listing store required")
	}
	if cache == nil {
		return nil, fmt.Errorf("listing cache required")
	}
	return &service{
		store:        store,
		cache:        cache,
		cacheMetrics: cacheMetrics,
	}, nil
}

// List returns listings. Nil filters serve the bounded-TTL cache; any
// non-nil filters value always goes straight to the store and never
// reads or writes the cache.
func (s *service) List(ctx context.Context, filters *Filters) ([]models.Property, error) {
	if filters == nil {
		if cached, ok := s.cache.Fresh(); ok {
			s.cacheMetrics.IncHit()
			return cached, nil
		}
		s.cacheMetrics.IncMiss()

		items, err := s.store.ListAll(ctx)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list properties")
		}
		s.cache.Set(items)
		s.cacheMetrics.IncRefresh()
		return items, nil
	}

	s.cacheMetrics.IncBypass()
	items, err := s.store.ListFiltered(ctx, *filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list properties filtered")
	}
	return items, nil
}

// GetByID loads a single listing. Single-record lookups are not cached.
func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
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

// CountAvailable returns the number of available listings.
func (s *service) CountAvailable(ctx context.Context) (int64, error) {
	count, err := s.store.CountAvailable(ctx)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count available properties")
	}
	return count, nil
}

// SearchByText searches title, description, city, and neighborhood.
func (s *service) SearchByText(ctx context.Context, text string) ([]models.Property, error) {
	if strings.TrimSpace(text) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "search text is required")
	}
	items, err := s.store.SearchByText(ctx, text)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: search properties")
	}
	return items, nil
}

// InvalidateCache drops the unfiltered listing cache. Mutation paths call
// this so admin writes are visible to the next unfiltered read.
func (s *service) InvalidateCache() {
	s.cache.Invalidate()
}
