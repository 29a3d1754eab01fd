package request

import "cobranca_service/internal/domain/entities"

// RegisterCustomerRequest is the payload of POST /v1/users/:user_id/customer.
type RegisterCustomerRequest struct {
	Email           string            `json:"email"`
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

func (r RegisterCustomerRequest) ToProfile() entities.CustomerProfile {
	return entities.CustomerProfile{
		Email:           r.Email,
		Name:            r.Name,
		Notes:           r.Notes,
		CpfCnpj:         r.CpfCnpj,
		ZipCode:         r.ZipCode,
		Number:          r.Number,
		Street:          r.Street,
		City:            r.City,
		State:           r.State,
		District:        r.District,
		Complement:      r.Complement,
		CustomVariables: r.CustomVariables,
	}
}

// RegisterCardRequest is the payload of POST /v1/users/:user_id/cards. The
// raw card data is tokenized and discarded; only the last four digits are
// kept locally.
type RegisterCardRequest struct {
	Number      string `json:"number" binding:"required"`
	CVV         string `json:"cvv" binding:"required"`
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Month       string `json:"month" binding:"required"`
	Year        string `json:"year" binding:"required"`
	Description string `json:"description"`
	CPF         string `json:"cpf"`
	Flag        string `json:"flag"`
}

func (r RegisterCardRequest) ToCreditCard() entities.CreditCard {
	return entities.CreditCard{
		Number:      r.Number,
		CVV:         r.CVV,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Month:       r.Month,
		Year:        r.Year,
		Description: r.Description,
	}
}
