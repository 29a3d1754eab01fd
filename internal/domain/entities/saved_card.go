package entities

import "time"

// SavedCard is the local reference to a card persisted at the gateway.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// Only non-sensitive data is stored: the gateway payment-method id, the last
// four digits and the expiry. Raw numbers and CVV never reach persistence.
type SavedCard struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	CardExternalID  string    `json:"card_external_id"`
	Name            string    `json:"name,omitempty"`
	CPF             string    `json:"cpf,omitempty"`
	Flag            string    `json:"flag,omitempty"`
	LastDigits      string    `json:"last_digits"`
	MonthOfValidity int       `json:"month_of_validity"`
	YearOfValidity  int       `json:"year_of_validity"`
	CreatedAt       time.Time `json:"created_at"`
}
