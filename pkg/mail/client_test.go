package mail

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gopkg.in/gomail.v2"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeDialer) DialAndSend(msgs ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msgs...)
	return nil
}

func TestSendSetsHeaders(t *testing.T) {
	fake := &fakeDialer{}
	client := &Client{dialer: fake, sender: "noreply@kasirpay.id"}

	if err := client.Send(context.Background(), "user@example.com", "Hello", "<p>hi</p>"); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if len(fake.sent) != 1 {
		t.Fatalf("expected 1 message, got %d", len(fake.sent))
	}
	msg := fake.sent[0]
	if got := msg.GetHeader("To"); len(got) != 1 || got[0] != "user@example.com" {
		t.Fatalf("unexpected To header %v", got)
	}
	if got := msg.GetHeader("From"); len(got) != 1 || !strings.Contains(got[0], "noreply@kasirpay.id") {
		t.Fatalf("unexpected From header %v", got)
	}
}

func TestSendRequiresRecipient(t *testing.T) {
	client := &Client{dialer: &fakeDialer{}, sender: "noreply@kasirpay.id"}
	if err := client.Send(context.Background(), "", "Hello", "<p>hi</p>"); err == nil {
		t.Fatal("empty recipient accepted")
	}
}

func TestSendWrapsDialerError(t *testing.T) {
	boom := errors.New("smtp down")
	client := &Client{dialer: &fakeDialer{err: boom}, sender: "noreply@kasirpay.id"}
	err := client.Send(context.Background(), "user@example.com", "Hello", "<p>hi</p>")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped dialer error, got %v", err)
	}
}

func TestSendPaymentSettledBody(t *testing.T) {
	fake := &fakeDialer{}
	client := &Client{dialer: fake, sender: "noreply@kasirpay.id"}

	if err := client.SendPaymentSettled(context.Background(), "user@example.com", "order-123", 252); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if len(fake.sent) != 1 {
		t.Fatalf("expected 1 message, got %d", len(fake.sent))
	}
	if got := fake.sent[0].GetHeader("Subject"); len(got) != 1 || !strings.Contains(got[0], "order-123") {
		t.Fatalf("subject should carry the order id, got %v", got)
	}
}
