package repository

import (
	"context"
	"time"

	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultUsersTableName = "users"

type userItem struct {
	ID                 string   `dynamodbav:"id"`
	Email              string   `dynamodbav:"email"`
	Name               string   `dynamodbav:"name,omitempty"`
	ExternalCustomerID string   `dynamodbav:"external_customer_id,omitempty"`
	DeviceTokens       []string `dynamodbav:"device_tokens,omitempty"`
	CreatedAt          string   `dynamodbav:"created_at"`
	UpdatedAt          string   `dynamodbav:"updated_at"`
}

// UserDynamoRepository persists User records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) Save(ctx context.Context, u entities.User) (entities.User, error) {
	av, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return entities.User{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.User{}, err
	}
	return u, nil
}

func toUserItem(u entities.User) userItem {
	return userItem{
		ID:                 u.ID,
		Email:              u.Email,
		Name:               u.Name,
		ExternalCustomerID: u.ExternalCustomerID,
		DeviceTokens:       u.DeviceTokens,
		CreatedAt:          u.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          u.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromUserItem(it userItem) entities.User {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.User{
		ID:                 it.ID,
		Email:              it.Email,
		Name:               it.Name,
		ExternalCustomerID: it.ExternalCustomerID,
		DeviceTokens:       it.DeviceTokens,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
}
