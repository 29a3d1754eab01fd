package response

import "cobranca_service/internal/domain/entities"

type CustomerResponse struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

type TokenResponse struct {
	ID   string `json:"id"`
	Test bool   `json:"test,omitempty"`
}

type PaymentMethodResponse struct {
	ID          string `json:"id"`
	Description string `json:"description,omitempty"`
	IsDefault   bool   `json:"is_default,omitempty"`
}

type InvoiceResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id,omitempty"`
	DueDate    string `json:"due_date,omitempty"`
	Status     string `json:"status,omitempty"`
	TotalCents int64  `json:"total_cents,omitempty"`
	SecureURL  string `json:"secure_url,omitempty"`
}

type ChargeResponse struct {
	ID              string `json:"id,omitempty"`
	InvoiceID       string `json:"invoice_id,omitempty"`
	PaymentMethodID string `json:"payment_method_id,omitempty"`
	TokenID         string `json:"token_id,omitempty"`
	Success         bool   `json:"success"`
	URL             string `json:"url,omitempty"`
	Message         string `json:"message,omitempty"`
}

// PaymentResultResponse mirrors the aggregate of one orchestration run.
// Entities the chosen path never touched are omitted.
type PaymentResultResponse struct {
	Customer      *CustomerResponse      `json:"customer,omitempty"`
	Token         *TokenResponse         `json:"token,omitempty"`
	PaymentMethod *PaymentMethodResponse `json:"payment_method,omitempty"`
	Invoice       *InvoiceResponse       `json:"invoice,omitempty"`
	Charge        *ChargeResponse        `json:"charge,omitempty"`
}

func FromPaymentResult(r entities.PaymentResult) PaymentResultResponse {
	resp := PaymentResultResponse{}
	if r.Customer != nil {
		resp.Customer = &CustomerResponse{ID: r.Customer.ID, Email: r.Customer.Email, Name: r.Customer.Name}
	}
	if r.Token != nil {
		resp.Token = &TokenResponse{ID: r.Token.ID, Test: r.Token.Test}
	}
	if r.PaymentMethod != nil {
		resp.PaymentMethod = &PaymentMethodResponse{ID: r.PaymentMethod.ID, Description: r.PaymentMethod.Description, IsDefault: r.PaymentMethod.IsDefault}
	}
	if r.Invoice != nil {
		resp.Invoice = fromInvoice(*r.Invoice)
	}
	if r.Charge != nil {
		resp.Charge = &ChargeResponse{
			ID:              r.Charge.ID,
			InvoiceID:       r.Charge.InvoiceID,
			PaymentMethodID: r.Charge.PaymentMethodID,
			TokenID:         r.Charge.TokenID,
			Success:         r.Charge.Success,
			URL:             r.Charge.URL,
			Message:         r.Charge.Message,
		}
	}
	return resp
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return *fromInvoice(inv)
}

func fromInvoice(inv entities.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		DueDate:    inv.DueDate,
		Status:     string(inv.Status),
		TotalCents: inv.TotalCents,
		SecureURL:  inv.SecureURL,
	}
}
