package interfaces

import (
	"context"

	"cobranca_service/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User records. GetByID
// returns a zero-value User (empty ID) when nothing is found.
type IUserRepository interface {
	GetByID(ctx context.Context, id string) (entities.User, error)
	Save(ctx context.Context, u entities.User) (entities.User, error)
}
