package repository

import (
	"context"

	"oscell/internal/domain/entities"
	"oscell/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type serviceRecordItem struct {
	Collection    string `dynamodbav:"collection"`
	ID            string `dynamodbav:"id"`
	Subject       string `dynamodbav:"subject"`
	Date          string `dynamodbav:"date"`
	ClientName    string `dynamodbav:"clientName"`
	DeviceName    string `dynamodbav:"deviceName"`
	ServiceType   string `dynamodbav:"serviceType"`
	PartsCost     string `dynamodbav:"partsCost"`
	ChargedAmount string `dynamodbav:"chargedAmount"`
	Profit        string `dynamodbav:"profit"`
	TimeTaken     string `dynamodbav:"timeTaken"`
	CreatedAt     string `dynamodbav:"createdAt"`
	UpdatedAt     string `dynamodbav:"updatedAt"`
}

// ServiceRecordDynamoRepository persists the service ledger in DynamoDB.
//
// Table requirements:
//   - PK: collection (string), one per subject
//   - SK: id (string)
//
// Listing a ledger is a single-partition Query; ordering is left to the
// use case.
type ServiceRecordDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IServiceRecordRepository = (*ServiceRecordDynamoRepository)(nil)

func NewServiceRecordDynamoRepository(ddb DynamoAPI, tableName string) *ServiceRecordDynamoRepository {
	return &ServiceRecordDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ServiceRecordDynamoRepository) Create(ctx context.Context, collection string, rec entities.ServiceRecord) (entities.ServiceRecord, error) {
	av, err := attributevalue.MarshalMap(toServiceRecordItem(collection, rec))
	if err != nil {
		return entities.ServiceRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.ServiceRecord{}, err
	}
	return rec, nil
}

func (r *ServiceRecordDynamoRepository) GetByID(ctx context.Context, collection, id string) (entities.ServiceRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            serviceRecordKey(collection, id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceRecord{}, nil
	}
	return unmarshalServiceRecord(out.Item)
}

// Update rewrites the editable attributes of an existing record. createdAt is
// never part of the update expression.
func (r *ServiceRecordDynamoRepository) Update(ctx context.Context, collection string, rec entities.ServiceRecord) (entities.ServiceRecord, error) {
	it := toServiceRecordItem(collection, rec)
	values, err := attributevalue.MarshalMap(map[string]string{
		":date":          it.Date,
		":clientName":    it.ClientName,
		":deviceName":    it.DeviceName,
		":serviceType":   it.ServiceType,
		":partsCost":     it.PartsCost,
		":chargedAmount": it.ChargedAmount,
		":profit":        it.Profit,
		":timeTaken":     it.TimeTaken,
		":updatedAt":     it.UpdatedAt,
	})
	if err != nil {
		return entities.ServiceRecord{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key:       serviceRecordKey(collection, rec.ID),
		UpdateExpression: aws.String("SET #date = :date, clientName = :clientName, deviceName = :deviceName, " +
			"serviceType = :serviceType, partsCost = :partsCost, chargedAmount = :chargedAmount, " +
			"profit = :profit, timeTaken = :timeTaken, updatedAt = :updatedAt"),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames:  map[string]string{"#date": "date", "#id": "id"},
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.ServiceRecord{}, nil
		}
		return entities.ServiceRecord{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ServiceRecord{}, nil
	}
	return unmarshalServiceRecord(out.Attributes)
}

func (r *ServiceRecordDynamoRepository) Delete(ctx context.Context, collection, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      serviceRecordKey(collection, id),
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *ServiceRecordDynamoRepository) ListByCollection(ctx context.Context, collection string) ([]entities.ServiceRecord, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		KeyConditionExpression:   aws.String("#collection = :collection"),
		ExpressionAttributeNames: map[string]string{"#collection": "collection"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":collection": &types.AttributeValueMemberS{Value: collection},
		},
		ConsistentRead: aws.Bool(true),
	})

	records := make([]entities.ServiceRecord, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, av := range page.Items {
			rec, err := unmarshalServiceRecord(av)
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		}
	}
	return records, nil
}

func serviceRecordKey(collection, id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"collection": &types.AttributeValueMemberS{Value: collection},
		"id":         &types.AttributeValueMemberS{Value: id},
	}
}

func unmarshalServiceRecord(av map[string]types.AttributeValue) (entities.ServiceRecord, error) {
	var it serviceRecordItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.ServiceRecord{}, err
	}
	return fromServiceRecordItem(it), nil
}

func toServiceRecordItem(collection string, r entities.ServiceRecord) serviceRecordItem {
	return serviceRecordItem{
		Collection:    collection,
		ID:            r.ID,
		Subject:       r.Subject,
		Date:          r.Date,
		ClientName:    r.ClientName,
		DeviceName:    r.DeviceName,
		ServiceType:   r.ServiceType,
		PartsCost:     r.PartsCost.String(),
		ChargedAmount: r.ChargedAmount.String(),
		Profit:        r.Profit.String(),
		TimeTaken:     r.TimeTaken,
		CreatedAt:     formatTime(r.CreatedAt),
		UpdatedAt:     formatTime(r.UpdatedAt),
	}
}

func fromServiceRecordItem(it serviceRecordItem) entities.ServiceRecord {
	return entities.ServiceRecord{
		ID:            it.ID,
		Subject:       it.Subject,
		Date:          it.Date,
		ClientName:    it.ClientName,
		DeviceName:    it.DeviceName,
		ServiceType:   it.ServiceType,
		PartsCost:     parseDecimal(it.PartsCost),
		ChargedAmount: parseDecimal(it.ChargedAmount),
		Profit:        parseDecimal(it.Profit),
		TimeTaken:     it.TimeTaken,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
