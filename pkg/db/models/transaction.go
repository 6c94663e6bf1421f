package models

import (
	"time"

	"github.com/bintangpramudya/kasirpay-backend/pkg/enums"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction is a payment order. The row ID doubles as the gateway order id.
type Transaction struct {
	ID            uuid.UUID               `gorm:"column:id;type:uuid;primaryKey"`
	Status        enums.TransactionStatus `gorm:"column:status;not null;default:'PENDING'"`
	TotalAmount   int64                   `gorm:"column:total_amount;not null"`
	AdminFee      int64                   `gorm:"column:admin_fee;not null;default:0"`
	CustomerName  *string                 `gorm:"column:customer_name"`
	CustomerEmail *string                 `gorm:"column:customer_email"`
	CustomerPhone *string                 `gorm:"column:customer_phone"`
	Details       []TransactionDetail     `gorm:"foreignKey:TransactionID"`
	CreatedAt     time.Time               `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time               `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt     gorm.DeletedAt          `gorm:"column:deleted_at;index"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
