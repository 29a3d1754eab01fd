package interfaces

import (
	"context"

	"cobranca_service/internal/domain/entities"
)

// ISubscriptionRepository abstracts DynamoDB persistence for Subscription
// records. The two List operations back the two branches of the receipt
// polling job.
type ISubscriptionRepository interface {
	ListWithAndroidToken(ctx context.Context) ([]entities.Subscription, error)
	ListWithIOSReceipt(ctx context.Context) ([]entities.Subscription, error)
	Save(ctx context.Context, s entities.Subscription) (entities.Subscription, error)
}
