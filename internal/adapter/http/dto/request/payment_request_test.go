package request

import (
	"errors"
	"testing"
)

func TestPaymentRequest_Validate(t *testing.T) {
	r := PaymentRequest{Items: []LineItemRequest{{Description: "x", Quantity: 1, PriceCents: 100}}}
	if err := r.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r2 := PaymentRequest{}
	if err := r2.Validate(); !errors.Is(err, ErrNoLineItems) {
		t.Fatalf("expected ErrNoLineItems, got %v", err)
	}
}

func TestPaymentRequest_ToEntity(t *testing.T) {
	r := PaymentRequest{
		DirectPayment: true,
		UserID:        " user-1 ",
		DueDate:       "2026-09-30",
		Customer: CustomerRequest{
			ID:      " cus-1 ",
			Email:   "joao@test.com",
			Name:    "Joao Silva",
			CpfCnpj: "11122233344",
		},
		CreditCard: &CreditCardRequest{
			ID:     " pm-1 ",
			Number: "4111111111111111",
			Save:   true,
		},
		Items: []LineItemRequest{{Description: "Plano mensal", Quantity: 2, PriceCents: 4990}},
	}

	e := r.ToEntity()
	if !e.DirectPayment || e.UserID != "user-1" || e.DueDate != "2026-09-30" {
		t.Fatalf("unexpected mapping: %+v", e)
	}
	if e.Customer.ID != "cus-1" || e.Customer.Email != "joao@test.com" {
		t.Fatalf("unexpected customer intent: %+v", e.Customer)
	}
	if e.Customer.Profile.Email != "joao@test.com" || e.Customer.Profile.CpfCnpj != "11122233344" {
		t.Fatalf("unexpected profile: %+v", e.Customer.Profile)
	}
	if e.CreditCard == nil || e.CreditCard.ID != "pm-1" || !e.CreditCard.Save {
		t.Fatalf("unexpected credit card: %+v", e.CreditCard)
	}
	if len(e.Items) != 1 || e.Items[0].PriceCents != 4990 || e.Items[0].Quantity != 2 {
		t.Fatalf("unexpected items: %+v", e.Items)
	}
}

func TestPaymentRequest_ToEntityWithoutCard(t *testing.T) {
	r := PaymentRequest{
		Customer: CustomerRequest{Email: "joao@test.com"},
		Items:    []LineItemRequest{{Description: "x", Quantity: 1, PriceCents: 100}},
	}
	if e := r.ToEntity(); e.CreditCard != nil {
		t.Fatalf("expected nil credit card, got %+v", e.CreditCard)
	}
}
