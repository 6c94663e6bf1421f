package items

import (
	"time"

	"github.com/google/uuid"

	"github.com/bintangpramudya/kasirpay-backend/pkg/db/models"
)

// ItemDTO is the transport shape for sellable catalog items.
type ItemDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateItemDTO holds the data required to persist a new item.
type CreateItemDTO struct {
	Name  string
	Price int64
}

// UpdateItemDTO carries the optional fields of a partial update.
type UpdateItemDTO struct {
	Name  *string
	Price *int64
}

func FromModel(i *models.Item) *ItemDTO {
	if i == nil {
		return nil
	}
	return &ItemDTO{
		ID:        i.ID,
		Name:      i.Name,
		Price:     i.Price,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

func FromModels(rows []models.Item) []ItemDTO {
	out := make([]ItemDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}
