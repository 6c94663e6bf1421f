package samples

import (
	"context"
	"strings"

	"github.com/bintangpramudya/kasirpay-backend/pkg/db/models"
	"github.com/bintangpramudya/kasirpay-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var sortableFields = map[string]string{
	"name":       "name",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

// Repository exposes sample persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a samples repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns a page of samples plus the total matching count.
func (r *Repository) List(ctx context.Context, params pagination.Params) ([]models.Sample, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Sample{})

	if params.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(params.Search)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order(orderClause(params))
	if !params.All {
		query = query.Offset(params.Offset()).Limit(params.PerPage)
	}

	var rows []models.Sample
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// FindByID loads a live sample by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Sample, error) {
	var sample models.Sample
	if err := r.db.WithContext(ctx).First(&sample, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sample, nil
}

// Create inserts a new sample.
func (r *Repository) Create(ctx context.Context, dto CreateSampleDTO) (*models.Sample, error) {
	sample := &models.Sample{Name: dto.Name, ImageURL: dto.ImageURL}
	if err := r.db.WithContext(ctx).Create(sample).Error; err != nil {
		return nil, err
	}
	return sample, nil
}

// Update merges the provided fields into an existing sample.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, dto UpdateSampleDTO) (*models.Sample, error) {
	sample, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.ImageURL != nil {
		updates["image_url"] = *dto.ImageURL
	}
	if len(updates) == 0 {
		return sample, nil
	}

	if err := r.db.WithContext(ctx).Model(sample).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// Delete soft-deletes the sample. Deleting an already-deleted or unknown row
// reports gorm.ErrRecordNotFound.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Sample{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func orderClause(params pagination.Params) string {
	column, ok := sortableFields[params.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if params.SortOrder == pagination.SortOrderAsc {
		direction = "ASC"
	}
	return column + " " + direction
}
