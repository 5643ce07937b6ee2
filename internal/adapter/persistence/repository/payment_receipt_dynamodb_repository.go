package repository

import (
	"context"

	"assignment_ledger/internal/domain/entities"
	"assignment_ledger/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultPaymentsTableName  = "payments"
	paymentsAssignmentIDIndex = "assignment_id-index"
)

type paymentReceiptItem struct {
	ID                 string                 `dynamodbav:"id"`
	AssignmentID       string                 `dynamodbav:"assignment_id"`
	Amount             string                 `dynamodbav:"amount"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	AppliedAt          string                 `dynamodbav:"applied_at,omitempty"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// PaymentReceiptDynamoRepository persists online collection receipts.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: assignment_id-index (PK: assignment_id)
type PaymentReceiptDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IPaymentReceiptRepository = (*PaymentReceiptDynamoRepository)(nil)

func NewPaymentReceiptDynamoRepository(ddb DynamoDBAPI, tableName string) *PaymentReceiptDynamoRepository {
	if tableName == "" {
		tableName = DefaultPaymentsTableName
	}
	return &PaymentReceiptDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentReceiptDynamoRepository) Create(ctx context.Context, p entities.PaymentReceipt) (entities.PaymentReceipt, error) {
	av, err := attributevalue.MarshalMap(toPaymentReceiptItem(p))
	if err != nil {
		return entities.PaymentReceipt{}, err
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
		return entities.PaymentReceipt{}, err
	}
	return p, nil
}

func (r *PaymentReceiptDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentReceipt, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentReceipt{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentReceipt{}, nil
	}

	var it paymentReceiptItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentReceipt{}, err
	}
	return fromPaymentReceiptItem(it), nil
}

// MarkApplied rewrites an existing receipt, typically to record AppliedAt.
func (r *PaymentReceiptDynamoRepository) MarkApplied(ctx context.Context, p entities.PaymentReceipt) (entities.PaymentReceipt, error) {
	av, err := attributevalue.MarshalMap(toPaymentReceiptItem(p))
	if err != nil {
		return entities.PaymentReceipt{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PaymentReceipt{}, err
	}
	return p, nil
}

func (r *PaymentReceiptDynamoRepository) ListByAssignmentID(ctx context.Context, assignmentID string) ([]entities.PaymentReceipt, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsAssignmentIDIndex),
		KeyConditionExpression: aws.String("assignment_id = :aid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":aid": &types.AttributeValueMemberS{Value: assignmentID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PaymentReceipt, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentReceiptItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentReceiptItem(it))
	}
	return items, nil
}

func toPaymentReceiptItem(p entities.PaymentReceipt) paymentReceiptItem {
	it := paymentReceiptItem{
		ID:                 p.ID,
		AssignmentID:       p.AssignmentID,
		Amount:             formatDecimal(p.Amount),
		Date:               formatTime(p.Date),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
	if p.Applied() {
		it.AppliedAt = formatTime(*p.AppliedAt)
	}
	return it
}

func fromPaymentReceiptItem(it paymentReceiptItem) entities.PaymentReceipt {
	p := entities.PaymentReceipt{
		ID:                 it.ID,
		AssignmentID:       it.AssignmentID,
		Amount:             parseDecimal(it.Amount),
		Date:               parseTime(it.Date),
		Status:             entities.ReceiptStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
	if it.AppliedAt != "" {
		at := parseTime(it.AppliedAt)
		p.AppliedAt = &at
	}
	return p
}
