package transactions

import (
	"context"
	"errors"
	"fmt"

	"github.com/bintangpramudya/kasirpay-backend/pkg/db/models"
	"github.com/bintangpramudya/kasirpay-backend/pkg/enums"
	pkgerrors "github.com/bintangpramudya/kasirpay-backend/pkg/errors"
	"github.com/bintangpramudya/kasirpay-backend/pkg/logger"
	"github.com/bintangpramudya/kasirpay-backend/pkg/midtrans"
	"github.com/bintangpramudya/kasirpay-backend/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const transactionNotFoundMessage = "Transaction not found"

// adminFeeRate is the platform surcharge applied on top of the order total.
var adminFeeRate = decimal.NewFromFloat(0.007)

// Service defines the behavior needed by the transactions controller.
type Service interface {
	Create(ctx context.Context, input CreateTransactionInput) (*CheckoutResult, error)
	List(ctx context.Context, params pagination.Params) ([]TransactionDTO, pagination.Meta, error)
	Get(ctx context.Context, id uuid.UUID) (*TransactionDTO, error)
}

type transactionRepository interface {
	CreateWithDetails(ctx context.Context, txn *models.Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	List(ctx context.Context, params pagination.Params) ([]models.Transaction, int64, error)
}

type itemFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Item, error)
}

type snapClient interface {
	CreateSnapSession(ctx context.Context, params midtrans.SnapSessionParams) (*midtrans.SnapSession, error)
}

type service struct {
	repo  transactionRepository
	items itemFinder
	snap  snapClient
	logg  *logger.Logger
}

// ServiceParams bundles the dependencies required to build a transactions
// service.
type ServiceParams struct {
	Repo    transactionRepository
	Items   itemFinder
	Gateway snapClient
	Logger  *logger.Logger
}

// NewService constructs a transactions service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("transaction repository is required")
	}
	if params.Items == nil {
		return nil, fmt.Errorf("item finder is required")
	}
	if params.Gateway == nil {
		return nil, fmt.Errorf("payment gateway is required")
	}
	return &service{
		repo:  params.Repo,
		items: params.Items,
		snap:  params.Gateway,
		logg:  params.Logger,
	}, nil
}

// Create prices the requested lines against the live catalog, persists the
// pending order atomically, then opens the hosted checkout session. The order
// survives even when the gateway call fails so the payment can be retried.
func (s *service) Create(ctx context.Context, input CreateTransactionInput) (*CheckoutResult, error) {
	if len(input.Details) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "transaction details are required")
	}

	var grandTotal int64
	details := make([]models.TransactionDetail, 0, len(input.Details))
	for _, line := range input.Details {
		if line.Quantity <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be greater than zero")
		}

		item, err := s.items.FindByID(ctx, line.ItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("Item %s not found", line.ItemID))
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load item")
		}

		lineTotal := int64(line.Quantity) * item.Price
		grandTotal += lineTotal

		details = append(details, models.TransactionDetail{
			Quantity:    line.Quantity,
			TotalAmount: lineTotal,
			Notes:       line.Notes,
			ItemLinks:   []models.ItemTransactionDetail{{ItemID: item.ID}},
		})
	}

	adminFee := computeAdminFee(grandTotal)

	txn := &models.Transaction{
		Status:        enums.TransactionStatusPending,
		TotalAmount:   grandTotal,
		AdminFee:      adminFee,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		Details:       details,
	}

	if err := s.repo.CreateWithDetails(ctx, txn); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist transaction")
	}

	loaded, err := s.repo.FindByID(ctx, txn.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload transaction")
	}

	// The gateway charges the order total; the admin fee is only surfaced to
	// the customer as part of the estimate.
	session, err := s.snap.CreateSnapSession(ctx, midtrans.SnapSessionParams{
		OrderID:       loaded.ID.String(),
		GrossAmount:   grandTotal,
		CustomerName:  stringValue(input.CustomerName),
		CustomerEmail: stringValue(input.CustomerEmail),
		CustomerPhone: stringValue(input.CustomerPhone),
	})
	if err != nil {
		// The pending order is already committed; only the session failed.
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "open payment session")
	}

	return &CheckoutResult{
		Transaction:    FromModel(loaded),
		RedirectURL:    session.RedirectURL,
		Token:          session.Token,
		EstimatedTotal: grandTotal + adminFee,
	}, nil
}

func (s *service) List(ctx context.Context, params pagination.Params) ([]TransactionDTO, pagination.Meta, error) {
	params = params.Normalize()
	rows, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, pagination.Meta{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list transactions")
	}
	return FromModels(rows), pagination.GenerateMeta(params, total), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*TransactionDTO, error) {
	txn, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, transactionNotFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load transaction")
	}
	return FromModel(txn), nil
}

// computeAdminFee rounds the surcharge up so the platform never undercharges
// by a fraction of a rupiah.
func computeAdminFee(grandTotal int64) int64 {
	return decimal.NewFromInt(grandTotal).Mul(adminFeeRate).Ceil().IntPart()
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
