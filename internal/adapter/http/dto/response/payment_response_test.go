package response

import (
	"encoding/json"
	"testing"

	"cobranca_service/internal/domain/entities"
)

func TestFromPaymentResult(t *testing.T) {
	result := entities.PaymentResult{
		Customer: &entities.Customer{ID: "cus-1", Email: "joao@test.com"},
		Token:    &entities.PaymentToken{ID: "tok-1", Test: true},
		Invoice:  &entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusPending, TotalCents: 4990},
		Charge:   &entities.Charge{ID: "chg-1", InvoiceID: "inv-1", TokenID: "tok-1", Success: true},
	}

	resp := FromPaymentResult(result)
	if resp.Customer == nil || resp.Customer.ID != "cus-1" {
		t.Fatalf("unexpected customer: %+v", resp.Customer)
	}
	if resp.Token == nil || !resp.Token.Test {
		t.Fatalf("unexpected token: %+v", resp.Token)
	}
	if resp.PaymentMethod != nil {
		t.Fatalf("payment method must stay nil when absent")
	}
	if resp.Invoice == nil || resp.Invoice.Status != "pending" || resp.Invoice.TotalCents != 4990 {
		t.Fatalf("unexpected invoice: %+v", resp.Invoice)
	}
	if resp.Charge == nil || !resp.Charge.Success {
		t.Fatalf("unexpected charge: %+v", resp.Charge)
	}
}

func TestFromPaymentResult_OmitsUntouchedEntities(t *testing.T) {
	resp := FromPaymentResult(entities.PaymentResult{
		Token:  &entities.PaymentToken{ID: "tok-1"},
		Charge: &entities.Charge{ID: "chg-1", Success: true},
	})

	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(raw, &body)
	for _, key := range []string{"customer", "payment_method", "invoice"} {
		if _, ok := body[key]; ok {
			t.Fatalf("expected %q omitted, got %s", key, raw)
		}
	}
}

func TestFromInvoice(t *testing.T) {
	inv := FromInvoice(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusRefunded, SecureURL: "https://fatura/1"})
	if inv.ID != "inv-1" || inv.Status != "refunded" || inv.SecureURL != "https://fatura/1" {
		t.Fatalf("unexpected invoice response: %+v", inv)
	}
}

func TestFromSavedCardAndPaymentMethods(t *testing.T) {
	card := FromSavedCard(entities.SavedCard{ID: "card-1", UserID: "user-1", LastDigits: "1111", MonthOfValidity: 12, YearOfValidity: 2030})
	if card.ID != "card-1" || card.LastDigits != "1111" || card.YearOfValidity != 2030 {
		t.Fatalf("unexpected saved card response: %+v", card)
	}

	methods := FromPaymentMethods([]entities.PaymentMethod{{ID: "pm-1", IsDefault: true}})
	if len(methods) != 1 || methods[0].ID != "pm-1" || !methods[0].IsDefault {
		t.Fatalf("unexpected methods: %+v", methods)
	}

	if out := FromPaymentMethods(nil); out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", out)
	}
}
