package entities

// InvoiceStatus mirrors the gateway-side invoice lifecycle. Only the states
// this service observes are listed.
type InvoiceStatus string

const (
	InvoiceStatusPending  InvoiceStatus = "pending"
	InvoiceStatusPaid     InvoiceStatus = "paid"
	InvoiceStatusCanceled InvoiceStatus = "canceled"
	InvoiceStatusRefunded InvoiceStatus = "refunded"
)

// Invoice is the billable document created once per customer-path run,
// always before its charge.
type Invoice struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customer_id,omitempty"`
	Email      string        `json:"email,omitempty"`
	DueDate    string        `json:"due_date,omitempty"`
	Status     InvoiceStatus `json:"status,omitempty"`
	TotalCents int64         `json:"total_cents,omitempty"`
	SecureURL  string        `json:"secure_url,omitempty"`
	Items      []LineItem    `json:"items,omitempty"`
}
