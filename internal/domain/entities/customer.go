package entities

// CustomerProfile carries the billing profile sent to the gateway when a new
// customer is created. Field names are the domain-side (camelCase) versions;
// the iugu adapter translates them to the gateway wire names.
type CustomerProfile struct {
	Email           string            `json:"email"`
	Name            string            `json:"name"`
	Notes           string            `json:"notes,omitempty"`
	CpfCnpj         string            `json:"cpf_cnpj,omitempty"`
	ZipCode         string            `json:"zip_code,omitempty"`
	Number          string            `json:"number,omitempty"`
	Street          string            `json:"street,omitempty"`
	City            string            `json:"city,omitempty"`
	State           string            `json:"state,omitempty"`
	District        string            `json:"district,omitempty"`
	Complement      string            `json:"complement,omitempty"`
	CustomVariables map[string]string `json:"custom_variables,omitempty"`
}

// Customer is the gateway-side billing identity. It is created on the first
// payment of an unregistered caller and never mutated by this service after
// that.
type Customer struct {
	ID      string          `json:"id"`
	Email   string          `json:"email"`
	Name    string          `json:"name"`
	Profile CustomerProfile `json:"profile,omitempty"`
}

// PaymentMethod is a card persisted against a gateway customer for reuse
// across invoices.
type PaymentMethod struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customer_id,omitempty"`
	Description string `json:"description,omitempty"`
	IsDefault   bool   `json:"is_default,omitempty"`
}
