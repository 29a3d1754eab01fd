package iugu

import (
	"context"
	"net/url"

	"cobranca_service/internal/domain/entities"
)

type customerWire struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Notes   string `json:"notes"`
	CpfCnpj string `json:"cpf_cnpj"`
	ZipCode string `json:"zip_code"`
}

func (w customerWire) toEntity() entities.Customer {
	return entities.Customer{
		ID:    w.ID,
		Email: w.Email,
		Name:  w.Name,
		Profile: entities.CustomerProfile{
			Email:   w.Email,
			Name:    w.Name,
			Notes:   w.Notes,
			CpfCnpj: w.CpfCnpj,
			ZipCode: w.ZipCode,
		},
	}
}

type paymentMethodWire struct {
	ID           string `json:"id"`
	Description  string `json:"description"`
	ItemType     string `json:"item_type"`
	CustomerID   string `json:"customer_id"`
	SetAsDefault bool   `json:"set_as_default"`
}

func (w paymentMethodWire) toEntity() entities.PaymentMethod {
	return entities.PaymentMethod{
		ID:          w.ID,
		CustomerID:  w.CustomerID,
		Description: w.Description,
		IsDefault:   w.SetAsDefault,
	}
}

// GetCustomer fetches an existing gateway customer by id. Reads have no
// gateway-side effect.
func (c *Client) GetCustomer(ctx context.Context, customerID string) (entities.Customer, error) {
	q := url.Values{}
	q.Set("api_token", c.apiToken)

	var w customerWire
	if err := c.get(ctx, "customers/"+customerID, q, &w); err != nil {
		return entities.Customer{}, err
	}
	return w.toEntity(), nil
}

// CreateCustomer registers a new gateway customer from a billing profile.
// Empty optional fields are left off the wire.
func (c *Client) CreateCustomer(ctx context.Context, profile entities.CustomerProfile) (entities.Customer, error) {
	body := map[string]any{
		"api_token": c.apiToken,
		"email":     profile.Email,
		"name":      profile.Name,
	}
	setIfPresent(body, "notes", profile.Notes)
	setIfPresent(body, "cpf_cnpj", profile.CpfCnpj)
	setIfPresent(body, "zip_code", profile.ZipCode)
	setIfPresent(body, "number", profile.Number)
	setIfPresent(body, "street", profile.Street)
	setIfPresent(body, "city", profile.City)
	setIfPresent(body, "state", profile.State)
	setIfPresent(body, "district", profile.District)
	setIfPresent(body, "complement", profile.Complement)
	if len(profile.CustomVariables) > 0 {
		body["custom_variables"] = profile.CustomVariables
	}

	var w customerWire
	if err := c.post(ctx, "customers", body, &w); err != nil {
		return entities.Customer{}, err
	}
	return w.toEntity(), nil
}

// ListPaymentMethods returns the cards persisted against a gateway customer.
func (c *Client) ListPaymentMethods(ctx context.Context, customerID string) ([]entities.PaymentMethod, error) {
	q := url.Values{}
	q.Set("api_token", c.apiToken)

	var ws []paymentMethodWire
	if err := c.get(ctx, "customers/"+customerID+"/payment_methods", q, &ws); err != nil {
		return nil, err
	}

	methods := make([]entities.PaymentMethod, 0, len(ws))
	for _, w := range ws {
		methods = append(methods, w.toEntity())
	}
	return methods, nil
}

// CreatePaymentMethod binds a freshly created token to a customer as a
// reusable payment method.
func (c *Client) CreatePaymentMethod(ctx context.Context, customerID, tokenID, description string, isDefault bool) (entities.PaymentMethod, error) {
	body := map[string]any{
		"api_token":      c.apiToken,
		"customer_id":    customerID,
		"token":          tokenID,
		"description":    description,
		"set_as_default": isDefault,
	}

	var w paymentMethodWire
	if err := c.post(ctx, "customers/"+customerID+"/payment_methods", body, &w); err != nil {
		return entities.PaymentMethod{}, err
	}
	pm := w.toEntity()
	if pm.CustomerID == "" {
		pm.CustomerID = customerID
	}
	return pm, nil
}

// DeletePaymentMethod removes a persisted payment method from a customer.
func (c *Client) DeletePaymentMethod(ctx context.Context, customerID, paymentMethodID string) error {
	q := url.Values{}
	q.Set("api_token", c.apiToken)

	return c.delete(ctx, "customers/"+customerID+"/payment_methods/"+paymentMethodID, q, nil)
}

func setIfPresent(body map[string]any, key, value string) {
	if value != "" {
		body[key] = value
	}
}
