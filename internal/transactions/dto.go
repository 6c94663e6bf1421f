package transactions

import (
	"time"

	"github.com/google/uuid"

	"github.com/bintangpramudya/kasirpay-backend/pkg/db/models"
	"github.com/bintangpramudya/kasirpay-backend/pkg/enums"
)

// TransactionDTO is the transport shape for a payment order.
type TransactionDTO struct {
	ID            uuid.UUID               `json:"id"`
	Status        enums.TransactionStatus `json:"status"`
	TotalAmount   int64                   `json:"total_amount"`
	AdminFee      int64                   `json:"admin_fee"`
	CustomerName  *string                 `json:"customer_name"`
	CustomerEmail *string                 `json:"customer_email"`
	CustomerPhone *string                 `json:"customer_phone"`
	Details       []TransactionDetailDTO  `json:"details"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

// TransactionDetailDTO is one order line plus the items it references.
type TransactionDetailDTO struct {
	ID          uuid.UUID            `json:"id"`
	Quantity    int                  `json:"quantity"`
	TotalAmount int64                `json:"total_amount"`
	Notes       *string              `json:"notes"`
	Items       []TransactionItemDTO `json:"items"`
}

// TransactionItemDTO is the catalog item snapshot attached to an order line.
type TransactionItemDTO struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price int64     `json:"price"`
}

// CreateTransactionInput carries the checkout request.
type CreateTransactionInput struct {
	CustomerName  *string
	CustomerEmail *string
	CustomerPhone *string
	Details       []CreateTransactionDetailInput
}

// CreateTransactionDetailInput is one requested order line.
type CreateTransactionDetailInput struct {
	ItemID   uuid.UUID
	Quantity int
	Notes    *string
}

// CheckoutResult is the answer to a successful checkout: the persisted order
// plus the gateway session handles.
type CheckoutResult struct {
	Transaction    *TransactionDTO `json:"transaction"`
	RedirectURL    string          `json:"redirect_url"`
	Token          string          `json:"token"`
	EstimatedTotal int64           `json:"estimated_total_for_customer"`
}

func FromModel(t *models.Transaction) *TransactionDTO {
	if t == nil {
		return nil
	}
	details := make([]TransactionDetailDTO, 0, len(t.Details))
	for i := range t.Details {
		details = append(details, detailFromModel(&t.Details[i]))
	}
	return &TransactionDTO{
		ID:            t.ID,
		Status:        t.Status,
		TotalAmount:   t.TotalAmount,
		AdminFee:      t.AdminFee,
		CustomerName:  t.CustomerName,
		CustomerEmail: t.CustomerEmail,
		CustomerPhone: t.CustomerPhone,
		Details:       details,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func FromModels(rows []models.Transaction) []TransactionDTO {
	out := make([]TransactionDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}

func detailFromModel(d *models.TransactionDetail) TransactionDetailDTO {
	items := make([]TransactionItemDTO, 0, len(d.ItemLinks))
	for _, link := range d.ItemLinks {
		if link.Item == nil {
			continue
		}
		items = append(items, TransactionItemDTO{
			ID:    link.Item.ID,
			Name:  link.Item.Name,
			Price: link.Item.Price,
		})
	}
	return TransactionDetailDTO{
		ID:          d.ID,
		Quantity:    d.Quantity,
		TotalAmount: d.TotalAmount,
		Notes:       d.Notes,
		Items:       items,
	}
}
