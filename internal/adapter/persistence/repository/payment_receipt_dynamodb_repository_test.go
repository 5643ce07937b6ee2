package repository

import (
	"context"
	"testing"
	"time"

	"assignment_ledger/internal/adapter/persistence/repository/mocks"
	"assignment_ledger/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestPaymentReceiptItemMapping(t *testing.T) {
	now := time.Date(2024, 6, 2, 8, 0, 0, 0, time.UTC)
	p := entities.PaymentReceipt{
		ID:                 "mp-1",
		AssignmentID:       "asg-1",
		Amount:             decimal.RequireFromString("4500.50"),
		Date:               now,
		Status:             entities.ReceiptStatusAprovado,
		ProviderPayloadRaw: []byte(`{"id":1}`),
		ProviderPayload:    map[string]interface{}{"id": float64(1)},
	}

	it := toPaymentReceiptItem(p)
	if it.Amount != "4500.5" || it.Date != now.Format(time.RFC3339Nano) || it.ProviderPayloadRaw != `{"id":1}` {
		t.Fatalf("unexpected item %+v", it)
	}

	back := fromPaymentReceiptItem(it)
	if !back.Amount.Equal(p.Amount) || !back.Date.Equal(now) || back.Status != entities.ReceiptStatusAprovado {
		t.Fatalf("unexpected receipt %+v", back)
	}
	if string(back.ProviderPayloadRaw) != `{"id":1}` {
		t.Fatalf("unexpected raw payload %q", back.ProviderPayloadRaw)
	}
	if back.Applied() || it.AppliedAt != "" {
		t.Fatalf("unapplied receipt must stay unapplied")
	}

	applied := now.Add(time.Minute)
	p.AppliedAt = &applied
	back = fromPaymentReceiptItem(toPaymentReceiptItem(p))
	if !back.Applied() || !back.AppliedAt.Equal(applied) {
		t.Fatalf("expected applied_at round trip, got %v", back.AppliedAt)
	}
}

func TestPaymentReceiptDynamoRepository_MarkApplied(t *testing.T) {
	ctrl := gomock.NewController(t)
	ddb := mocks.NewMockDynamoDBAPI(ctrl)
	repo := NewPaymentReceiptDynamoRepository(ddb, "")

	at := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)
	ddb.EXPECT().PutItem(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			if aws.ToString(in.TableName) != DefaultPaymentsTableName {
				t.Fatalf("unexpected table %q", aws.ToString(in.TableName))
			}
			if aws.ToString(in.ConditionExpression) != "attribute_exists(#id)" {
				t.Fatalf("unexpected condition %q", aws.ToString(in.ConditionExpression))
			}
			v, ok := in.Item["applied_at"].(*types.AttributeValueMemberS)
			if !ok || v.Value != at.Format(time.RFC3339Nano) {
				t.Fatalf("unexpected applied_at %#v", in.Item["applied_at"])
			}
			return &dynamodb.PutItemOutput{}, nil
		})

	out, err := repo.MarkApplied(context.Background(), entities.PaymentReceipt{ID: "mp-1", AssignmentID: "asg-1", Status: entities.ReceiptStatusAprovado, AppliedAt: &at})
	if err != nil || !out.Applied() {
		t.Fatalf("unexpected result %+v err=%v", out, err)
	}
}

func TestCatalogItemMapping(t *testing.T) {
	c := entities.CatalogItem{
		ID:               "item-1",
		Kind:             entities.AssignmentKindUniform,
		Name:             "Blazer",
		Price:            decimal.NewFromInt(12000),
		RequiredQuantity: 2,
		Targeting:        entities.Targeting{Genders: []string{"male"}, Sections: []string{"boarding"}},
	}

	back := fromCatalogItem(toCatalogItem(c))
	if !back.Price.Equal(c.Price) || back.RequiredQuantity != 2 || back.Kind != entities.AssignmentKindUniform {
		t.Fatalf("unexpected item %+v", back)
	}
	if len(back.Targeting.Genders) != 1 || back.Targeting.Sections[0] != "boarding" || back.Targeting.ClassIDs != nil {
		t.Fatalf("unexpected targeting %+v", back.Targeting)
	}
	if !back.CreatedAt.IsZero() {
		t.Fatalf("zero time should stay zero, got %v", back.CreatedAt)
	}
}
