package midtrans

import (
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/bintangpramudya/kasirpay-backend/pkg/config"
	"github.com/bintangpramudya/kasirpay-backend/pkg/logger"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// SnapSessionParams carries the inputs for a hosted checkout session.
type SnapSessionParams struct {
	OrderID       string
	GrossAmount   int64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

// SnapSession is the gateway's answer: a token for the embedded widget and a
// hosted redirect URL.
type SnapSession struct {
	Token       string
	RedirectURL string
}

// Client wraps the Midtrans Snap SDK plus webhook signature verification.
type Client struct {
	snap      snap.Client
	serverKey string
	frontend  string
	logg      *logger.Logger
}

// NewClient configures the Snap client against sandbox or production.
func NewClient(ctx context.Context, cfg config.MidtransConfig, logg *logger.Logger) (*Client, error) {
	if cfg.ServerKey == "" {
		return nil, fmt.Errorf("midtrans server key is required")
	}

	env := midtrans.Sandbox
	if cfg.IsProduction {
		env = midtrans.Production
	}

	var s snap.Client
	s.New(cfg.ServerKey, env)

	if logg != nil {
		logg.Info(ctx, "midtrans snap client configured")
	}

	return &Client{
		snap:      s,
		serverKey: cfg.ServerKey,
		frontend:  cfg.FrontendURL,
		logg:      logg,
	}, nil
}

// CreateSnapSession opens a hosted checkout session for the order.
func (c *Client) CreateSnapSession(ctx context.Context, params SnapSessionParams) (*SnapSession, error) {
	if params.OrderID == "" {
		return nil, fmt.Errorf("order id is required")
	}
	if params.GrossAmount <= 0 {
		return nil, fmt.Errorf("gross amount must be positive")
	}

	resp, snapErr := c.snap.CreateTransaction(c.buildSnapRequest(params))
	if snapErr != nil {
		return nil, fmt.Errorf("creating snap transaction: %w", snapErr)
	}

	return &SnapSession{
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}

// buildSnapRequest assembles the Snap payload. The gateway rejects an empty
// first name, so absent customer names fall back to a generic one.
func (c *Client) buildSnapRequest(params SnapSessionParams) *snap.Request {
	name := params.CustomerName
	if name == "" {
		name = "Customer"
	}
	return &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  params.OrderID,
			GrossAmt: params.GrossAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: params.CustomerEmail,
			Phone: params.CustomerPhone,
		},
		Callbacks: &snap.Callbacks{
			Finish: fmt.Sprintf("%s/transaction/finish?uuid=%s", c.frontend, params.OrderID),
		},
	}
}

// VerifySignature checks a webhook signature_key. Midtrans signs notifications
// as SHA-512(order_id + status_code + gross_amount + server_key) hex.
func (c *Client) VerifySignature(orderID, statusCode, grossAmount, signature string) bool {
	return VerifySignature(c.serverKey, orderID, statusCode, grossAmount, signature)
}

// VerifySignature recomputes the notification digest and compares it in
// constant time.
func VerifySignature(serverKey, orderID, statusCode, grossAmount, signature string) bool {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	expected := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}
