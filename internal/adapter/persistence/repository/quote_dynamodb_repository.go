package repository

import (
	"context"
	"time"

	"maisonpro_dispatch/internal/domain/entities"
	"maisonpro_dispatch/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

type quoteItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Phone       string `dynamodbav:"phone"`
	Email       string `dynamodbav:"email,omitempty"`
	ServiceType string `dynamodbav:"service_type,omitempty"`
	ClientType  string `dynamodbav:"client_type,omitempty"`
	Description string `dynamodbav:"description,omitempty"`
	Status      string `dynamodbav:"status"`
	Notes       string `dynamodbav:"notes,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	ContactedAt string `dynamodbav:"contacted_at,omitempty"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository is the durable quote slot. Quote submissions are the
// only records that must survive restarts, so every committed mutation is
// mirrored here and the whole table is read back at boot.
//
// Table requirements:
//   - PK: id (string)
//
// Put is an unconditional overwrite: the in-memory store is the source of
// truth during a session, the table only mirrors its latest state.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteArchive = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Put(ctx context.Context, q entities.QuoteSubmission) error {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *QuoteDynamoRepository) ListAll(ctx context.Context) ([]entities.QuoteSubmission, error) {
	quotes := make([]entities.QuoteSubmission, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []quoteItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			quotes = append(quotes, fromQuoteItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return quotes, nil
}

func toQuoteItem(q entities.QuoteSubmission) quoteItem {
	it := quoteItem{
		ID:          q.ID,
		Name:        q.Name,
		Phone:       q.Phone,
		Email:       q.Email,
		ServiceType: q.ServiceType,
		ClientType:  string(q.ClientType),
		Description: q.Description,
		Status:      string(q.Status),
		Notes:       q.Notes,
		CreatedAt:   q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if q.ContactedAt != nil {
		it.ContactedAt = q.ContactedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromQuoteItem(it quoteItem) entities.QuoteSubmission {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	q := entities.QuoteSubmission{
		ID:          it.ID,
		Name:        it.Name,
		Phone:       it.Phone,
		Email:       it.Email,
		ServiceType: it.ServiceType,
		ClientType:  entities.ClientType(it.ClientType),
		Description: it.Description,
		Status:      entities.QuoteStatus(it.Status),
		Notes:       it.Notes,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
	if it.ContactedAt != "" {
		if contactedAt, err := time.Parse(time.RFC3339Nano, it.ContactedAt); err == nil {
			q.ContactedAt = &contactedAt
		}
	}
	return q
}
