package repository

import (
	"context"
	"strconv"
	"time"

	"oscell/internal/domain/entities"
	"oscell/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type counterItem struct {
	Path         string `dynamodbav:"path"`
	LastOsNumber int64  `dynamodbav:"lastOsNumber"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// CounterDynamoRepository persists the work order counter in DynamoDB.
//
// Table requirements:
//   - PK: path (string)
//
// Advance relies on a conditional UpdateItem, so concurrent commits from
// several browsers or instances can only ever raise lastOsNumber.
type CounterDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICounterRepository = (*CounterDynamoRepository)(nil)

func NewCounterDynamoRepository(ddb DynamoAPI, tableName string) *CounterDynamoRepository {
	return &CounterDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CounterDynamoRepository) Get(ctx context.Context, key string) (entities.WorkOrderCounter, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            counterKey(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkOrderCounter{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkOrderCounter{}, nil
	}
	return unmarshalCounter(out.Item)
}

func (r *CounterDynamoRepository) InitIfAbsent(ctx context.Context, key string, seed int64) (entities.WorkOrderCounter, error) {
	av, err := attributevalue.MarshalMap(counterItem{
		Path:         key,
		LastOsNumber: seed,
		UpdatedAt:    formatTime(time.Now()),
	})
	if err != nil {
		return entities.WorkOrderCounter{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#path)"),
		ExpressionAttributeNames: map[string]string{"#path": "path"},
	})
	if err != nil && !isConditionFailed(err) {
		return entities.WorkOrderCounter{}, err
	}
	// Either we created it or someone else did first; both are fine.
	return r.Get(ctx, key)
}

func (r *CounterDynamoRepository) Advance(ctx context.Context, key string, n int64) (entities.WorkOrderCounter, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 counterKey(key),
		UpdateExpression:    aws.String("SET #last = :n, #updated_at = :now"),
		ConditionExpression: aws.String("attribute_not_exists(#path) OR #last < :n"),
		ExpressionAttributeNames: map[string]string{
			"#path":       "path",
			"#last":       "lastOsNumber",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":n":   &types.AttributeValueMemberN{Value: strconv.FormatInt(n, 10)},
			":now": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			// Stored number is already >= n.
			return r.Get(ctx, key)
		}
		return entities.WorkOrderCounter{}, err
	}
	return unmarshalCounter(out.Attributes)
}

func counterKey(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"path": &types.AttributeValueMemberS{Value: key},
	}
}

func unmarshalCounter(av map[string]types.AttributeValue) (entities.WorkOrderCounter, error) {
	var it counterItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.WorkOrderCounter{}, err
	}
	return entities.WorkOrderCounter{
		Key:              it.Path,
		LastIssuedNumber: it.LastOsNumber,
		UpdatedAt:        parseTime(it.UpdatedAt),
	}, nil
}
