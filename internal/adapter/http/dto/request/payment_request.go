package request

import (
	"errors"
	"strings"

	"cobranca_service/internal/domain/entities"
)

var ErrNoLineItems = errors.New("at least one item is required")

type LineItemRequest struct {
	Description string `json:"description" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required"`
	PriceCents  int64  `json:"price_cents" binding:"required"`
}

type CreditCardRequest struct {
	ID          string `json:"id"`
	Number      string `json:"number"`
	CVV         string `json:"cvv"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Month       string `json:"month"`
	Year        string `json:"year"`
	Save        bool   `json:"save"`
	IsDefault   bool   `json:"is_default"`
	Description string `json:"description"`
}

type CustomerRequest struct {
	ID              string            `json:"id"`
	Email           string            `json:"email" binding:"required"`
	Name            string            `json:"name"`
	Notes           string            `json:"notes"`
	CpfCnpj         string            `json:"cpf_cnpj"`
	ZipCode         string            `json:"zip_code"`
	Number          string            `json:"number"`
	Street          string            `json:"street"`
	City            string            `json:"city"`
	State           string            `json:"state"`
	District        string            `json:"district"`
	Complement      string            `json:"complement"`
	CustomVariables map[string]string `json:"custom_variables"`
}

// PaymentRequest is the payload of POST /v1/payments. creditCard is optional
// only for the flows that do not need one; the usecase enforces the
// per-branch requirements.
type PaymentRequest struct {
	DirectPayment bool               `json:"direct_payment"`
	UserID        string             `json:"user_id"`
	Customer      CustomerRequest    `json:"customer" binding:"required"`
	CreditCard    *CreditCardRequest `json:"credit_card"`
	DueDate       string             `json:"due_date"`
	Items         []LineItemRequest  `json:"items" binding:"required"`
}

func (r PaymentRequest) Validate() error {
	if len(r.Items) == 0 {
		return ErrNoLineItems
	}
	return nil
}

func (r PaymentRequest) ToEntity() entities.PaymentRequest {
	req := entities.PaymentRequest{
		DirectPayment: r.DirectPayment,
		UserID:        strings.TrimSpace(r.UserID),
		DueDate:       r.DueDate,
		Customer: entities.CustomerIntent{
			ID:    strings.TrimSpace(r.Customer.ID),
			Email: r.Customer.Email,
			Profile: entities.CustomerProfile{
				Email:           r.Customer.Email,
				Name:            r.Customer.Name,
				Notes:           r.Customer.Notes,
				CpfCnpj:         r.Customer.CpfCnpj,
				ZipCode:         r.Customer.ZipCode,
				Number:          r.Customer.Number,
				Street:          r.Customer.Street,
				City:            r.Customer.City,
				State:           r.Customer.State,
				District:        r.Customer.District,
				Complement:      r.Customer.Complement,
				CustomVariables: r.Customer.CustomVariables,
			},
		},
	}
	if r.CreditCard != nil {
		req.CreditCard = &entities.CreditCard{
			ID:          strings.TrimSpace(r.CreditCard.ID),
			Number:      r.CreditCard.Number,
			CVV:         r.CreditCard.CVV,
			FirstName:   r.CreditCard.FirstName,
			LastName:    r.CreditCard.LastName,
			Month:       r.CreditCard.Month,
			Year:        r.CreditCard.Year,
			Save:        r.CreditCard.Save,
			IsDefault:   r.CreditCard.IsDefault,
			Description: r.CreditCard.Description,
		}
	}
	for _, it := range r.Items {
		req.Items = append(req.Items, entities.LineItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			PriceCents:  it.PriceCents,
		})
	}
	return req
}
