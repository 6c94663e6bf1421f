package controllers

import (
	"encoding/json"
	"net/http"

	webhookmidtrans "github.com/bintangpramudya/kasirpay-backend/internal/webhooks/midtrans"
	"github.com/bintangpramudya/kasirpay-backend/pkg/logger"
)

// WebhooksController receives payment gateway notifications.
type WebhooksController struct {
	svc  webhookmidtrans.Service
	logg *logger.Logger
}

func NewWebhooksController(svc webhookmidtrans.Service, logg *logger.Logger) *WebhooksController {
	return &WebhooksController{svc: svc, logg: logg}
}

// MidtransNotification processes a payment status update. The gateway retries
// aggressively on non-200 answers, so failures are logged and the response is
// always 200 "OK".
func (c *WebhooksController) MidtransNotification(w http.ResponseWriter, r *http.Request) {
	var payload webhookmidtrans.Notification
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		if c.logg != nil {
			c.logg.Warn(r.Context(), "webhook payload decode failed: "+err.Error())
		}
		writeOK(w)
		return
	}

	if err := c.svc.HandleNotification(r.Context(), payload); err != nil {
		if c.logg != nil {
			ctx := c.logg.WithOrderID(r.Context(), payload.OrderID)
			c.logg.Error(ctx, "webhook processing failed", err)
		}
	}

	writeOK(w)
}

func writeOK(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
