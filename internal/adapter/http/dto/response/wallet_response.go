package response

import (
	"time"

	"cobranca_service/internal/domain/entities"
)

type SavedCardResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	CardExternalID  string    `json:"card_external_id"`
	Name            string    `json:"name,omitempty"`
	Flag            string    `json:"flag,omitempty"`
	LastDigits      string    `json:"last_digits"`
	MonthOfValidity int       `json:"month_of_validity"`
	YearOfValidity  int       `json:"year_of_validity"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromSavedCard(c entities.SavedCard) SavedCardResponse {
	return SavedCardResponse{
		ID:              c.ID,
		UserID:          c.UserID,
		CardExternalID:  c.CardExternalID,
		Name:            c.Name,
		Flag:            c.Flag,
		LastDigits:      c.LastDigits,
		MonthOfValidity: c.MonthOfValidity,
		YearOfValidity:  c.YearOfValidity,
		CreatedAt:       c.CreatedAt,
	}
}

func FromPaymentMethods(methods []entities.PaymentMethod) []PaymentMethodResponse {
	out := make([]PaymentMethodResponse, 0, len(methods))
	for _, m := range methods {
		out = append(out, PaymentMethodResponse{ID: m.ID, Description: m.Description, IsDefault: m.IsDefault})
	}
	return out
}
