package iugu

import (
	"context"

	"cobranca_service/internal/domain/entities"
)

type invoiceWire struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Email      string `json:"email"`
	DueDate    string `json:"due_date"`
	Status     string `json:"status"`
	TotalCents int64  `json:"total_cents"`
	SecureURL  string `json:"secure_url"`
	Items      []struct {
		Description string `json:"description"`
		Quantity    int    `json:"quantity"`
		PriceCents  int64  `json:"price_cents"`
	} `json:"items"`
}

func (w invoiceWire) toEntity() entities.Invoice {
	inv := entities.Invoice{
		ID:         w.ID,
		CustomerID: w.CustomerID,
		Email:      w.Email,
		DueDate:    w.DueDate,
		Status:     entities.InvoiceStatus(w.Status),
		TotalCents: w.TotalCents,
		SecureURL:  w.SecureURL,
	}
	for _, it := range w.Items {
		inv.Items = append(inv.Items, entities.LineItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			PriceCents:  it.PriceCents,
		})
	}
	return inv
}

// CreateInvoice creates a billable invoice for a customer. It always precedes
// the charge of a customer-path run.
func (c *Client) CreateInvoice(ctx context.Context, email, customerID, dueDate string, items []entities.LineItem) (entities.Invoice, error) {
	body := map[string]any{
		"api_token":   c.apiToken,
		"email":       email,
		"customer_id": customerID,
		"due_date":    dueDate,
		"items":       itemsWire(items),
	}

	var w invoiceWire
	if err := c.post(ctx, "invoices", body, &w); err != nil {
		return entities.Invoice{}, err
	}
	return w.toEntity(), nil
}

// RefundInvoice refunds an already paid invoice.
func (c *Client) RefundInvoice(ctx context.Context, invoiceID string) (entities.Invoice, error) {
	body := map[string]any{
		"api_token": c.apiToken,
		"id":        invoiceID,
	}

	var w invoiceWire
	if err := c.post(ctx, "invoices/"+invoiceID+"/refund", body, &w); err != nil {
		return entities.Invoice{}, err
	}
	return w.toEntity(), nil
}

// CancelInvoice cancels a pending invoice.
func (c *Client) CancelInvoice(ctx context.Context, invoiceID string) (entities.Invoice, error) {
	body := map[string]any{
		"api_token": c.apiToken,
		"id":        invoiceID,
	}

	var w invoiceWire
	if err := c.put(ctx, "invoices/"+invoiceID+"/cancel", body, &w); err != nil {
		return entities.Invoice{}, err
	}
	return w.toEntity(), nil
}
