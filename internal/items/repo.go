package items

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
	"price":      "price",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

// Repository exposes item persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an items repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns a page of items plus the total matching count.
func (r *Repository) List(ctx context.Context, params pagination.Params) ([]models.Item, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Item{})

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

	var rows []models.Item
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// FindByID loads a live item by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Create inserts a new item.
func (r *Repository) Create(ctx context.Context, dto CreateItemDTO) (*models.Item, error) {
	item := &models.Item{Name: dto.Name, Price: dto.Price}
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Update merges the provided fields into an existing item.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, dto UpdateItemDTO) (*models.Item, error) {
	item, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.Price != nil {
		updates["price"] = *dto.Price
	}
	if len(updates) == 0 {
		return item, nil
	}

	if err := r.db.WithContext(ctx).Model(item).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// Delete soft-deletes the item. Deleting an already-deleted or unknown row
// reports gorm.ErrRecordNotFound.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Item{}, "id = ?", id)
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
