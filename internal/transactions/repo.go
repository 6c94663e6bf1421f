package transactions

import (
	"context"

	"github.com/bintangpramudya/kasirpay-backend/pkg/db"
	"github.com/bintangpramudya/kasirpay-backend/pkg/db/models"
	"github.com/bintangpramudya/kasirpay-backend/pkg/enums"
	"github.com/bintangpramudya/kasirpay-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var sortableFields = map[string]string{
	"status":       "status",
	"total_amount": "total_amount",
	"created_at":   "created_at",
	"updated_at":   "updated_at",
}

// Repository exposes payment order persistence.
type Repository struct {
	client *db.Client
}

// NewRepository constructs a transactions repo bound to the shared DB client.
func NewRepository(client *db.Client) *Repository {
	return &Repository{client: client}
}

// CreateWithDetails persists the order, its lines, and the item links in a
// single transaction. The passed models gain their generated IDs on success.
func (r *Repository) CreateWithDetails(ctx context.Context, txn *models.Transaction) error {
	return r.client.WithTx(ctx, func(tx *gorm.DB) error {
		details := txn.Details
		txn.Details = nil
		if err := tx.Create(txn).Error; err != nil {
			return err
		}

		for i := range details {
			detail := &details[i]
			detail.TransactionID = txn.ID

			links := detail.ItemLinks
			detail.ItemLinks = nil
			if err := tx.Create(detail).Error; err != nil {
				return err
			}

			for j := range links {
				links[j].TransactionDetailID = detail.ID
				if err := tx.Create(&links[j]).Error; err != nil {
					return err
				}
			}
			detail.ItemLinks = links
		}
		txn.Details = details
		return nil
	})
}

// FindByID loads an order with its lines and item snapshots.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	var txn models.Transaction
	err := r.client.DB().WithContext(ctx).
		Preload("Details.ItemLinks.Item").
		First(&txn, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// List returns a page of orders plus the total matching count.
func (r *Repository) List(ctx context.Context, params pagination.Params) ([]models.Transaction, int64, error) {
	query := r.client.DB().WithContext(ctx).Model(&models.Transaction{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Preload("Details.ItemLinks.Item").Order(orderClause(params))
	if !params.All {
		query = query.Offset(params.Offset()).Limit(params.PerPage)
	}

	var rows []models.Transaction
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// UpdateStatus sets the order status. Unknown ids report
// gorm.ErrRecordNotFound.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.TransactionStatus) error {
	result := r.client.DB().WithContext(ctx).
		Model(&models.Transaction{}).
		Where("id = ?", id).
		Update("status", status)
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
