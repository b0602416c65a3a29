package property

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rentalke/rentalke-backend/pkg/db/models"
)

// TypeAll is the sentinel type filter value meaning "no type constraint".
const TypeAll = "all"

// Filters narrows a listing query. A nil *Filters means the unfiltered
// listing; a non-nil value always goes to the store, even when every
// field is zero.
type Filters struct {
	City         string
	Neighborhood string
	Type         string
	MinPrice     *int
	MaxPrice     *int
	Available    *bool
}

const searchQuery = `
SELECT *
FROM properties
WHERE search_vector @@ plainto_tsquery('english', ?)
ORDER BY created_at DESC
`

// Repository wires together property persistence helpers.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// ListAll returns every property ordered by creation time descending.
func (r *Repository) ListAll(ctx context.Context) ([]models.Property, error) {
	var items []models.Property
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return normalizeAll(items), nil
}

// ListFiltered returns properties matching every populated filter constraint.
func (r *Repository) ListFiltered(ctx context.Context, filters Filters) ([]models.Property, error) {
	query := r.db.WithContext(ctx).Model(&models.Property{})

	if city := strings.TrimSpace(filters.City); city != "" {
		query = query.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(city)+"%")
	}
	if hood := strings.TrimSpace(filters.Neighborhood); hood != "" {
		query = query.Where("LOWER(neighborhood) LIKE ?", "%"+strings.ToLower(hood)+"%")
	}
	if t := strings.TrimSpace(filters.Type); t != "" && !strings.EqualFold(t, TypeAll) {
		query = query.Where("type = ?", t)
	}
	if filters.MinPrice != nil {
		query = query.Where("price >= ?", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		query = query.Where("price <= ?", *filters.MaxPrice)
	}
	if filters.Available != nil {
		query = query.Where("available = ?", *filters.Available)
	}

	var items []models.Property
	if err := query.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return normalizeAll(items), nil
}

// FindByID loads one property by identifier.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	var item models.Property
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	normalize(&item)
	return &item, nil
}

// CountAvailable counts available listings server-side, no row transfer.
func (r *Repository) CountAvailable(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Property{}).
		Where("available = ?", true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SearchByText runs a full-text search against the precomputed search vector.
func (r *Repository) SearchByText(ctx context.Context, text string) ([]models.Property, error) {
	var items []models.Property
	if err := r.db.WithContext(ctx).
		Raw(searchQuery, text).
		Scan(&items).Error; err != nil {
		return nil, err
	}
	return normalizeAll(items), nil
}

// Create inserts a new property.
func (r *Repository) Create(ctx context.Context, item *models.Property) (*models.Property, error) {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	normalize(item)
	return item, nil
}

// Save persists the full property record.
func (r *Repository) Save(ctx context.Context, item *models.Property) (*models.Property, error) {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, err
	}
	normalize(item)
	return item, nil
}

// Delete removes one property. Returns gorm.ErrRecordNotFound when the
// identifier does not exist.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Property{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func normalizeAll(items []models.Property) []models.Property {
	if items == nil {
		return []models.Property{}
	}
	for i := range items {
		normalize(&items[i])
	}
	return items
}

// normalize guarantees array fields are never nil in results.
func normalize(item *models.Property) {
	if item.Images == nil {
		item.Images = []string{}
	}
	if item.Features == nil {
		item.Features = []string{}
	}
	if item.NearbyPlaces == nil {
		item.NearbyPlaces = []string{}
	}
}
