package mail

import (
	"context"
	"fmt"

	"github.com/bintangpramudya/kasirpay-backend/pkg/config"
	"github.com/bintangpramudya/kasirpay-backend/pkg/logger"
	"gopkg.in/gomail.v2"
)

type dialer interface {
	DialAndSend(...*gomail.Message) error
}

// Client sends transactional mail over SMTP. Sends are best-effort: callers
// log failures and move on.
type Client struct {
	dialer dialer
	sender string
	logg   *logger.Logger
}

// New builds an SMTP client from the mail configuration.
func New(cfg config.MailConfig, logg *logger.Logger) *Client {
	return &Client{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		sender: cfg.Sender(),
		logg:   logg,
	}
}

// Send delivers a single HTML message.
func (c *Client) Send(ctx context.Context, to, subject, htmlBody string) error {
	if c == nil || c.dialer == nil {
		return fmt.Errorf("mail client not initialized")
	}
	if to == "" {
		return fmt.Errorf("recipient is required")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", c.sender)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := c.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("sending mail to %s: %w", to, err)
	}
	return nil
}

// SendSampleCreated notifies the operator that a new catalog sample went live.
func (c *Client) SendSampleCreated(ctx context.Context, to, sampleName, imageURL string) error {
	body := fmt.Sprintf(
		`<h2>New sample published</h2><p>The sample <strong>%s</strong> is now live.</p><p><img src=%q alt=%q width="320"/></p>`,
		sampleName, imageURL, sampleName,
	)
	return c.Send(ctx, to, "New sample: "+sampleName, body)
}

// SendPaymentSettled confirms a settled payment to the customer.
func (c *Client) SendPaymentSettled(ctx context.Context, to, orderID string, totalAmount int64) error {
	body := fmt.Sprintf(
		`<h2>Payment received</h2><p>Your payment for order <strong>%s</strong> has settled.</p><p>Total: %d</p><p>Thank you for your purchase.</p>`,
		orderID, totalAmount,
	)
	return c.Send(ctx, to, "Payment confirmation "+orderID, body)
}
