package midtrans

import (
	"context"
	"errors"
	"fmt"

	"github.com/bintangpramudya/kasirpay-backend/pkg/db/models"
	"github.com/bintangpramudya/kasirpay-backend/pkg/enums"
	pkgerrors "github.com/bintangpramudya/kasirpay-backend/pkg/errors"
	"github.com/bintangpramudya/kasirpay-backend/pkg/logger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification is the payment gateway's webhook payload. Only the fields the
// handler acts on are decoded.
type Notification struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
}

// Service processes payment status notifications.
type Service interface {
	HandleNotification(ctx context.Context, payload Notification) error
}

type signatureVerifier interface {
	VerifySignature(orderID, statusCode, grossAmount, signature string) bool
}

type transactionStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.TransactionStatus) error
}

type mailSender interface {
	SendPaymentSettled(ctx context.Context, to, orderID string, totalAmount int64) error
}

type service struct {
	verifier signatureVerifier
	store    transactionStore
	mailer   mailSender
	logg     *logger.Logger
}

// ServiceParams bundles the dependencies for the webhook service.
type ServiceParams struct {
	Verifier signatureVerifier
	Store    transactionStore
	Mailer   mailSender
	Logger   *logger.Logger
}

// NewService constructs the webhook service.
func NewService(params ServiceParams) (Service, error) {
	if params.Verifier == nil {
		return nil, fmt.Errorf("signature verifier is required")
	}
	if params.Store == nil {
		return nil, fmt.Errorf("transaction store is required")
	}
	return &service{
		verifier: params.Verifier,
		store:    params.Store,
		mailer:   params.Mailer,
		logg:     params.Logger,
	}, nil
}

// HandleNotification verifies the payload signature, maps the gateway status
// onto the order, and sends the settlement mail when the payment completes.
// The order is never mutated on a bad signature.
func (s *service) HandleNotification(ctx context.Context, payload Notification) error {
	if !s.verifier.VerifySignature(payload.OrderID, payload.StatusCode, payload.GrossAmount, payload.SignatureKey) {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid signature")
	}

	orderID, err := uuid.Parse(payload.OrderID)
	if err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid order id")
	}

	txn, err := s.store.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "Transaction not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load transaction")
	}

	newStatus := enums.TransactionStatusFromGateway(payload.TransactionStatus)

	if txn.Status.IsTerminal() && s.logg != nil {
		logCtx := s.logg.WithField(ctx, "order_id", payload.OrderID)
		logCtx = s.logg.WithField(logCtx, "from_status", txn.Status.String())
		logCtx = s.logg.WithField(logCtx, "to_status", newStatus.String())
		s.logg.Warn(logCtx, "overwriting terminal transaction status")
	}

	if err := s.store.UpdateStatus(ctx, orderID, newStatus); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update transaction status")
	}

	if newStatus == enums.TransactionStatusSettlement {
		s.notifySettled(ctx, txn)
	}

	return nil
}

// notifySettled sends the payment confirmation. Failures are logged and never
// bubble back to the gateway.
func (s *service) notifySettled(ctx context.Context, txn *models.Transaction) {
	if s.mailer == nil || txn.CustomerEmail == nil || *txn.CustomerEmail == "" {
		return
	}
	total := txn.TotalAmount + txn.AdminFee
	if err := s.mailer.SendPaymentSettled(ctx, *txn.CustomerEmail, txn.ID.String(), total); err != nil && s.logg != nil {
		logCtx := s.logg.WithField(ctx, "order_id", txn.ID.String())
		s.logg.Warn(logCtx, "settlement mail failed: "+err.Error())
	}
}
