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

const DefaultCatalogTableName = "catalog_items"

type targetingItem struct {
	ClassIDs []string `dynamodbav:"class_ids,omitempty"`
	Genders  []string `dynamodbav:"genders,omitempty"`
	Sections []string `dynamodbav:"sections,omitempty"`
}

type catalogItem struct {
	ID               string        `dynamodbav:"id"`
	Kind             string        `dynamodbav:"kind"`
	Name             string        `dynamodbav:"name"`
	Price            string        `dynamodbav:"price"`
	RequiredQuantity int           `dynamodbav:"required_quantity"`
	Targeting        targetingItem `dynamodbav:"targeting"`
	CreatedAt        string        `dynamodbav:"created_at"`
	UpdatedAt        string        `dynamodbav:"updated_at"`
}

// CatalogDynamoRepository persists fee, uniform and requirement definitions.
//
// Table requirements:
//   - PK: id (string)
type CatalogDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb DynamoDBAPI, tableName string) *CatalogDynamoRepository {
	if tableName == "" {
		tableName = DefaultCatalogTableName
	}
	return &CatalogDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CatalogDynamoRepository) Create(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error) {
	av, err := attributevalue.MarshalMap(toCatalogItem(item))
	if err != nil {
		return entities.CatalogItem{}, err
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
		return entities.CatalogItem{}, err
	}
	return item, nil
}

func (r *CatalogDynamoRepository) GetByID(ctx context.Context, id string) (entities.CatalogItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.CatalogItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.CatalogItem{}, nil
	}

	var it catalogItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CatalogItem{}, err
	}
	return fromCatalogItem(it), nil
}

func toCatalogItem(c entities.CatalogItem) catalogItem {
	return catalogItem{
		ID:               c.ID,
		Kind:             string(c.Kind),
		Name:             c.Name,
		Price:            formatDecimal(c.Price),
		RequiredQuantity: c.RequiredQuantity,
		Targeting: targetingItem{
			ClassIDs: c.Targeting.ClassIDs,
			Genders:  c.Targeting.Genders,
			Sections: c.Targeting.Sections,
		},
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}

func fromCatalogItem(it catalogItem) entities.CatalogItem {
	return entities.CatalogItem{
		ID:               it.ID,
		Kind:             entities.AssignmentKind(it.Kind),
		Name:             it.Name,
		Price:            parseDecimal(it.Price),
		RequiredQuantity: it.RequiredQuantity,
		Targeting: entities.Targeting{
			ClassIDs: it.Targeting.ClassIDs,
			Genders:  it.Targeting.Genders,
			Sections: it.Targeting.Sections,
		},
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
