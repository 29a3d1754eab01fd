package entities

import "time"

// User is the local account record this service attaches gateway state to.
//
// Storage model (DynamoDB):
//   - PK: id
//
// ExternalCustomerID holds the gateway customer id once the user has been
// registered; it is set exactly once.
type User struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	Name               string    `json:"name,omitempty"`
	ExternalCustomerID string    `json:"external_customer_id,omitempty"`
	DeviceTokens       []string  `json:"device_tokens,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
