package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemTransactionDetail joins an order line to the catalog item it references.
type ItemTransactionDetail struct {
	ID                  uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	TransactionDetailID uuid.UUID `gorm:"column:transaction_detail_id;type:uuid;not null;index"`
	ItemID              uuid.UUID `gorm:"column:item_id;type:uuid;not null;index"`
	Item                *Item     `gorm:"foreignKey:ItemID"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (l *ItemTransactionDetail) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
