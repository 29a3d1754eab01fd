package iugu

import (
	"context"

	"cobranca_service/internal/domain/entities"
)

// defaultTokenMethod is sent when tokenizing raw card data.
const defaultTokenMethod = "credit_card"

// defaultDirectMethod is sent on direct charges issued without a token.
const defaultDirectMethod = "bank_slip"

type tokenWire struct {
	ID     string `json:"id"`
	Method string `json:"method"`
	Test   bool   `json:"test"`
}

type chargeWire struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	URL            string `json:"url"`
	InvoiceID      string `json:"invoice_id"`
	Identification string `json:"identification"`
}

// CreateToken exchanges raw card data for a single-use payment token. The
// `test` flag comes from the client config, never from the card.
func (c *Client) CreateToken(ctx context.Context, card entities.CreditCard) (entities.PaymentToken, error) {
	body := map[string]any{
		"account_id": c.accountID,
		"method":     defaultTokenMethod,
		"test":       c.testMode,
		"data": map[string]any{
			"number":             card.Number,
			"verification_value": card.CVV,
			"first_name":         card.FirstName,
			"last_name":          card.LastName,
			"month":              card.Month,
			"year":               card.Year,
		},
	}

	var w tokenWire
	if err := c.post(ctx, "payment_token", body, &w); err != nil {
		return entities.PaymentToken{}, err
	}
	return entities.PaymentToken{ID: w.ID, Method: w.Method, Test: w.Test}, nil
}

// CreateChargeCustomer charges an existing invoice of a customer. Exactly one
// of paymentMethodID/tokenID must be non-empty; the empty one is left off the
// wire so a payload never carries both.
func (c *Client) CreateChargeCustomer(ctx context.Context, paymentMethodID, customerID, invoiceID, tokenID string) (entities.Charge, error) {
	body := map[string]any{
		"api_token":   c.apiToken,
		"customer_id": customerID,
		"invoice_id":  invoiceID,
	}
	if paymentMethodID != "" {
		body["customer_payment_method_id"] = paymentMethodID
	}
	if tokenID != "" {
		body["token"] = tokenID
	}

	var w chargeWire
	if err := c.post(ctx, "charge", body, &w); err != nil {
		return entities.Charge{}, err
	}

	return entities.Charge{
		ID:              w.Identification,
		InvoiceID:       firstNonEmpty(w.InvoiceID, invoiceID),
		PaymentMethodID: paymentMethodID,
		TokenID:         tokenID,
		Success:         w.Success,
		URL:             w.URL,
		Message:         w.Message,
	}, nil
}

// CreateCharge issues a direct charge with no customer or invoice wrapper.
// With a token the charge runs against the card; without one the gateway
// falls back to the bank_slip method.
func (c *Client) CreateCharge(ctx context.Context, email string, items []entities.LineItem, tokenID string) (entities.Charge, error) {
	body := map[string]any{
		"api_token": c.apiToken,
		"email":     email,
		"items":     itemsWire(items),
	}
	if tokenID == "" {
		body["method"] = defaultDirectMethod
	} else {
		body["token"] = tokenID
	}

	var w chargeWire
	if err := c.post(ctx, "charge", body, &w); err != nil {
		return entities.Charge{}, err
	}

	return entities.Charge{
		ID:        w.Identification,
		InvoiceID: w.InvoiceID,
		TokenID:   tokenID,
		Success:   w.Success,
		URL:       w.URL,
		Message:   w.Message,
	}, nil
}

func itemsWire(items []entities.LineItem) []map[string]any {
	wire := make([]map[string]any, 0, len(items))
	for _, it := range items {
		wire = append(wire, map[string]any{
			"description": it.Description,
			"quantity":    it.Quantity,
			"price_cents": it.PriceCents,
		})
	}
	return wire
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
