package repository

import (
	"context"
	"time"

	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultSubscriptionsTableName = "subscriptions"

type subscriptionItem struct {
	ID                   string `dynamodbav:"id"`
	UserID               string `dynamodbav:"user_id,omitempty"`
	Product              string `dynamodbav:"product"`
	AndroidPurchaseToken string `dynamodbav:"android_purchase_token,omitempty"`
	IOSReceipt           string `dynamodbav:"ios_receipt,omitempty"`
	Valid                bool   `dynamodbav:"valid"`
	UpdatedAt            string `dynamodbav:"updated_at"`
}

// SubscriptionDynamoRepository persists Subscription records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The polling branches Scan with attribute_exists filters; the subscription
// population is small enough that no index is kept for them.

type SubscriptionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISubscriptionRepository = (*SubscriptionDynamoRepository)(nil)

func NewSubscriptionDynamoRepository(ddb *dynamodb.Client) *SubscriptionDynamoRepository {
	return &SubscriptionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUBSCRIPTIONS_TABLE", defaultSubscriptionsTableName),
	}
}

func (r *SubscriptionDynamoRepository) ListWithAndroidToken(ctx context.Context) ([]entities.Subscription, error) {
	return r.scanWithAttribute(ctx, "android_purchase_token")
}

func (r *SubscriptionDynamoRepository) ListWithIOSReceipt(ctx context.Context) ([]entities.Subscription, error) {
	return r.scanWithAttribute(ctx, "ios_receipt")
}

func (r *SubscriptionDynamoRepository) scanWithAttribute(ctx context.Context, attribute string) ([]entities.Subscription, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("attribute_exists(#attr)"),
		ExpressionAttributeNames: map[string]string{
			"#attr": attribute,
		},
	})
	if err != nil {
		return nil, err
	}

	subs := make([]entities.Subscription, 0, len(out.Items))
	for _, raw := range out.Items {
		var it subscriptionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		subs = append(subs, fromSubscriptionItem(it))
	}
	return subs, nil
}

func (r *SubscriptionDynamoRepository) Save(ctx context.Context, s entities.Subscription) (entities.Subscription, error) {
	av, err := attributevalue.MarshalMap(toSubscriptionItem(s))
	if err != nil {
		return entities.Subscription{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Subscription{}, err
	}
	return s, nil
}

func toSubscriptionItem(s entities.Subscription) subscriptionItem {
	return subscriptionItem{
		ID:                   s.ID,
		UserID:               s.UserID,
		Product:              s.Product,
		AndroidPurchaseToken: s.AndroidPurchaseToken,
		IOSReceipt:           s.IOSReceipt,
		Valid:                s.Valid,
		UpdatedAt:            s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSubscriptionItem(it subscriptionItem) entities.Subscription {
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Subscription{
		ID:                   it.ID,
		UserID:               it.UserID,
		Product:              it.Product,
		AndroidPurchaseToken: it.AndroidPurchaseToken,
		IOSReceipt:           it.IOSReceipt,
		Valid:                it.Valid,
		UpdatedAt:            updatedAt,
	}
}
