package interfaces

import (
	"context"

	"cobranca_service/internal/domain/entities"
)

// ISavedCardRepository abstracts DynamoDB persistence for SavedCard records.
type ISavedCardRepository interface {
	Create(ctx context.Context, card entities.SavedCard) (entities.SavedCard, error)
	GetByID(ctx context.Context, id string) (entities.SavedCard, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.SavedCard, error)
	Delete(ctx context.Context, id string) error
}
