package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/escoffier/enrollment-system/internal/core/domain"
)

type stubPaymentService struct {
	lastPrice float64
	recorded  *domain.Payment
}

func (s *stubPaymentService) CreateIntent(_ context.Context, price float64) (string, error) {
	s.lastPrice = price
	return "pi_secret_123", nil
}

func (s *stubPaymentService) Record(_ context.Context, p *domain.Payment) (string, error) {
	s.recorded = p
	return "pay-1", nil
}

func (s *stubPaymentService) History(context.Context, string) ([]*domain.Payment, error) {
	return []*domain.Payment{}, nil
}

func TestPaymentHandler_CreateIntent(t *testing.T) {
	svc := &stubPaymentService{}
	h := NewPaymentHandler(svc)
	c, rec := newTestContext(http.MethodPost, "/create-payment-intent", `{"price":20}`)

	if err := h.CreateIntent(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if svc.lastPrice != 20 {
		t.Fatalf("price not passed through, got %v", svc.lastPrice)
	}

	var resp createIntentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ClientSecret != "pi_secret_123" {
		t.Fatalf("unexpected client secret %q", resp.ClientSecret)
	}
}

func TestPaymentHandler_CreateIntent_InvalidPrice(t *testing.T) {
	h := NewPaymentHandler(&stubPaymentService{})

	for _, body := range []string{`{"price":0}`, `{"price":-3}`, `{}`} {
		c, _ := newTestContext(http.MethodPost, "/create-payment-intent", body)
		if err := h.CreateIntent(c); err == nil {
			t.Fatalf("expected error for body %s", body)
		}
	}
}

func TestPaymentHandler_Record(t *testing.T) {
	svc := &stubPaymentService{}
	h := NewPaymentHandler(svc)
	c, rec := newTestContext(http.MethodPost, "/payments",
		`{"email":"s@x.com","transaction_id":"txn_42","amount":25,"class_names":["Pastry"]}`)

	if err := h.Record(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.recorded.TransactionID != "txn_42" || len(svc.recorded.ClassNames) != 1 {
		t.Fatalf("payment fields not passed through: %+v", svc.recorded)
	}
}
