package entities

// CreditCard is the caller-supplied card for one payment attempt.
//
// Two mutually exclusive shapes are accepted:
//   - raw card data (Number/CVV/holder/expiry) for tokenization, optionally
//     persisted as a gateway payment method when Save is true;
//   - ID referencing an already persisted payment method.
type CreditCard struct {
	ID          string `json:"id,omitempty"`
	Number      string `json:"number,omitempty"`
	CVV         string `json:"cvv,omitempty"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	Month       string `json:"month,omitempty"`
	Year        string `json:"year,omitempty"`
	Save        bool   `json:"save,omitempty"`
	IsDefault   bool   `json:"is_default,omitempty"`
	Description string `json:"description,omitempty"`
}

// LineItem is one billable line of an invoice or direct charge.
type LineItem struct {
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	PriceCents  int64  `json:"price_cents"`
}

// PaymentRequest is the caller's intent for one payment attempt. It is
// immutable for the duration of one orchestration run.
//
// DirectPayment selects the no-customer/no-invoice path: the raw card is
// tokenized and charged immediately against the item list.
type PaymentRequest struct {
	DirectPayment bool           `json:"direct_payment"`
	UserID        string         `json:"user_id,omitempty"`
	Customer      CustomerIntent `json:"customer"`
	CreditCard    *CreditCard    `json:"credit_card,omitempty"`
	DueDate       string         `json:"due_date,omitempty"`
	Items         []LineItem     `json:"items"`
}

// CustomerIntent identifies the paying customer: either an existing gateway
// customer (ID set) or a profile to register a new one.
type CustomerIntent struct {
	ID      string          `json:"id,omitempty"`
	Email   string          `json:"email"`
	Profile CustomerProfile `json:"profile,omitempty"`
}

// PaymentToken is the single-use tokenized representation of raw card data.
// It is never persisted by this service.
type PaymentToken struct {
	ID     string `json:"id"`
	Method string `json:"method,omitempty"`
	Test   bool   `json:"test,omitempty"`
}

// Charge is the terminal debit of an orchestration run. Exactly one of
// PaymentMethodID/TokenID backed its creation.
type Charge struct {
	ID              string `json:"id,omitempty"`
	InvoiceID       string `json:"invoice_id,omitempty"`
	PaymentMethodID string `json:"payment_method_id,omitempty"`
	TokenID         string `json:"token_id,omitempty"`
	Success         bool   `json:"success"`
	URL             string `json:"url,omitempty"`
	Message         string `json:"message,omitempty"`
}

// PaymentResult aggregates everything produced by one orchestration run.
// Entities not touched by the chosen path stay nil.
type PaymentResult struct {
	Customer      *Customer      `json:"customer,omitempty"`
	Token         *PaymentToken  `json:"token,omitempty"`
	PaymentMethod *PaymentMethod `json:"payment_method,omitempty"`
	Invoice       *Invoice       `json:"invoice,omitempty"`
	Charge        *Charge        `json:"charge,omitempty"`
}
