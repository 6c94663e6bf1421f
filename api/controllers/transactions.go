package controllers

import (
	"net/http"

	"github.com/bintangpramudya/kasirpay-backend/api/responses"
	"github.com/bintangpramudya/kasirpay-backend/api/validators"
	"github.com/bintangpramudya/kasirpay-backend/internal/transactions"
	"github.com/bintangpramudya/kasirpay-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// TransactionsController handles checkout and order lookups.
type TransactionsController struct {
	svc  transactions.Service
	logg *logger.Logger
}

func NewTransactionsController(svc transactions.Service, logg *logger.Logger) *TransactionsController {
	return &TransactionsController{svc: svc, logg: logg}
}

type createTransactionRequest struct {
	CustomerName  *string                      `json:"customer_name"`
	CustomerEmail *string                      `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone *string                      `json:"customer_phone"`
	Details       []createTransactionDetailReq `json:"details" validate:"required,min=1,dive"`
}

type createTransactionDetailReq struct {
	ItemID   uuid.UUID `json:"item_id" validate:"required"`
	Quantity int       `json:"quantity" validate:"required,gt=0"`
	Notes    *string   `json:"notes"`
}

// Create prices and persists a pending order, then returns the gateway
// checkout session.
func (c *TransactionsController) Create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := validators.DecodeJSONBody(r, &req); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	details := make([]transactions.CreateTransactionDetailInput, 0, len(req.Details))
	for _, line := range req.Details {
		details = append(details, transactions.CreateTransactionDetailInput{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
			Notes:    line.Notes,
		})
	}

	result, err := c.svc.Create(r.Context(), transactions.CreateTransactionInput{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Details:       details,
	})
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	responses.WriteSuccessStatus(w, http.StatusCreated, result)
}

func (c *TransactionsController) List(w http.ResponseWriter, r *http.Request) {
	params, err := validators.ParsePaginationParams(r)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	rows, meta, err := c.svc.List(r.Context(), params)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	responses.WriteList(w, rows, meta)
}

func (c *TransactionsController) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := validators.ParsePathUUID(chi.URLParam(r, "orderId"), "orderId")
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	txn, err := c.svc.Get(r.Context(), id)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	responses.WriteSuccess(w, txn)
}
