package entities

import "time"

// Subscription is a store-purchased subscription whose receipt is re-checked
// periodically against the platform store.
//
// Storage model (DynamoDB):
//   - PK: id
//
// A record carries either an Android purchase token or an iOS receipt; the
// polling job picks its branch from whichever attribute exists.
type Subscription struct {
	ID                   string    `json:"id"`
	UserID               string    `json:"user_id,omitempty"`
	Product              string    `json:"product"`
	AndroidPurchaseToken string    `json:"android_purchase_token,omitempty"`
	IOSReceipt           string    `json:"ios_receipt,omitempty"`
	Valid                bool      `json:"valid"`
	UpdatedAt            time.Time `json:"updated_at"`
}
