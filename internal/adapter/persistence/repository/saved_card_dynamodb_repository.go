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

const (
	defaultSavedCardsTableName = "saved_cards"
	savedCardsUserIDIndex      = "user_id-index"
)

type savedCardItem struct {
	ID              string `dynamodbav:"id"`
	UserID          string `dynamodbav:"user_id"`
	CardExternalID  string `dynamodbav:"card_external_id"`
	Name            string `dynamodbav:"name,omitempty"`
	CPF             string `dynamodbav:"cpf,omitempty"`
	Flag            string `dynamodbav:"flag,omitempty"`
	LastDigits      string `dynamodbav:"last_digits"`
	MonthOfValidity int    `dynamodbav:"month_of_validity"`
	YearOfValidity  int    `dynamodbav:"year_of_validity"`
	CreatedAt       string `dynamodbav:"created_at"`
}

// SavedCardDynamoRepository persists SavedCard records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type SavedCardDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISavedCardRepository = (*SavedCardDynamoRepository)(nil)

func NewSavedCardDynamoRepository(ddb *dynamodb.Client) *SavedCardDynamoRepository {
	return &SavedCardDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SAVED_CARDS_TABLE", defaultSavedCardsTableName),
	}
}

func (r *SavedCardDynamoRepository) Create(ctx context.Context, card entities.SavedCard) (entities.SavedCard, error) {
	av, err := attributevalue.MarshalMap(toSavedCardItem(card))
	if err != nil {
		return entities.SavedCard{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.SavedCard{}, err
	}
	return card, nil
}

func (r *SavedCardDynamoRepository) GetByID(ctx context.Context, id string) (entities.SavedCard, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SavedCard{}, err
	}
	if len(out.Item) == 0 {
		return entities.SavedCard{}, nil
	}

	var it savedCardItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SavedCard{}, err
	}
	return fromSavedCardItem(it), nil
}

func (r *SavedCardDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.SavedCard, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(savedCardsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	cards := make([]entities.SavedCard, 0, len(out.Items))
	for _, raw := range out.Items {
		var it savedCardItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		cards = append(cards, fromSavedCardItem(it))
	}
	return cards, nil
}

func (r *SavedCardDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toSavedCardItem(c entities.SavedCard) savedCardItem {
	return savedCardItem{
		ID:              c.ID,
		UserID:          c.UserID,
		CardExternalID:  c.CardExternalID,
		Name:            c.Name,
		CPF:             c.CPF,
		Flag:            c.Flag,
		LastDigits:      c.LastDigits,
		MonthOfValidity: c.MonthOfValidity,
		YearOfValidity:  c.YearOfValidity,
		CreatedAt:       c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSavedCardItem(it savedCardItem) entities.SavedCard {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.SavedCard{
		ID:              it.ID,
		UserID:          it.UserID,
		CardExternalID:  it.CardExternalID,
		Name:            it.Name,
		CPF:             it.CPF,
		Flag:            it.Flag,
		LastDigits:      it.LastDigits,
		MonthOfValidity: it.MonthOfValidity,
		YearOfValidity:  it.YearOfValidity,
		CreatedAt:       createdAt,
	}
}
