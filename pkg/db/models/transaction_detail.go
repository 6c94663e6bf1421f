package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionDetail is one order line: a quantity and its computed line total.
type TransactionDetail struct {
	ID            uuid.UUID               `gorm:"column:id;type:uuid;primaryKey"`
	TransactionID uuid.UUID               `gorm:"column:transaction_id;type:uuid;not null;index"`
	Quantity      int                     `gorm:"column:quantity;not null"`
	TotalAmount   int64                   `gorm:"column:total_amount;not null"`
	Notes         *string                 `gorm:"column:notes"`
	ItemLinks     []ItemTransactionDetail `gorm:"foreignKey:TransactionDetailID"`
	CreatedAt     time.Time               `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time               `gorm:"column:updated_at;autoUpdateTime"`
}

func (d *TransactionDetail) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
