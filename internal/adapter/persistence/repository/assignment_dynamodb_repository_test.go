package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"assignment_ledger/internal/adapter/persistence/repository/mocks"
	"assignment_ledger/internal/domain/entities"
	"assignment_ledger/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func sampleAssignment() entities.AssignmentRecord {
	at := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)
	cash := decimal.RequireFromString("3333.33")
	prev := entities.Validity{Type: entities.ValidityYearRange, StartYearID: "year-2023", EndYearID: "year-2024"}
	prevTerms := entities.TermApplicability{Type: entities.TermsSpecific, TermIDs: []string{"term-2024-1"}}
	return entities.AssignmentRecord{
		ID:                "asg-1",
		BeneficiaryID:     "pupil-1",
		Kind:              entities.AssignmentKindRequirement,
		Label:             "Exercise books",
		BenefitItemIDs:    []string{"req-books"},
		Status:            entities.AssignmentStatusDisabled,
		Validity:          entities.Validity{Type: entities.ValidityIndefinite},
		TermApplicability: entities.TermApplicability{Type: entities.TermsAll},
		Charge: entities.Charge{
			Amount:         decimal.RequireFromString("9999.99"),
			OriginalAmount: decimal.RequireFromString("11111.10"),
			Discount:       &entities.Discount{Name: "Bursary", Value: decimal.NewFromInt(10), Type: entities.DiscountTypePercentage},
			PaidAmount:     cash,
			PaymentStatus:  entities.PaymentStatusPartial,
		},
		Tracking: &entities.TrackingLedger{
			SelectionMode:      entities.SelectionFullSet,
			ItemLabel:          "Exercise books",
			ItemCount:          1,
			RequiredQuantity:   3,
			ReceivedFromParent: 1,
			Received:           1,
		},
		DisabledEffect: entities.DisableFromNextTerm,
		DisabledIn:     entities.Period{AcademicYearID: "year-2024", TermID: "term-2024-2"},
		History: []entities.HistoryEntry{
			{At: at, Action: entities.HistoryAssigned, Actor: "admin", NewStatus: entities.AssignmentStatusActive},
			{At: at, Action: entities.HistoryPaymentAndReceipt, Actor: "clerk", Channel: entities.ChannelParent, Quantity: 1, Amount: &cash},
			{At: at, Action: entities.HistoryTimeAdjusted, Actor: "admin", PreviousValidity: &prev, PreviousTermApplicability: &prevTerms},
			{At: at, Action: entities.HistoryDisabled, Actor: "admin", Reason: "left school", EffectiveFrom: entities.DisableFromNextTerm,
				Period: entities.Period{AcademicYearID: "year-2024", TermID: "term-2024-2"}},
			{At: at, Action: entities.HistoryPayment, Actor: "system", Amount: &cash, ReceiptID: "mp-77"},
		},
		Version:   4,
		CreatedAt: at,
		UpdatedAt: at,
	}
}

func TestAssignmentItem_RoundTrip(t *testing.T) {
	in := sampleAssignment()
	av, err := attributevalue.MarshalMap(toAssignmentItem(in))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var it assignmentItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	out := fromAssignmentItem(it)

	if !out.Charge.Amount.Equal(in.Charge.Amount) || !out.Charge.PaidAmount.Equal(in.Charge.PaidAmount) {
		t.Fatalf("decimal amounts changed: %+v", out.Charge)
	}
	if out.Charge.Discount == nil || !out.Charge.Discount.Value.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("discount lost: %+v", out.Charge.Discount)
	}
	if out.Tracking == nil || *out.Tracking != *in.Tracking {
		t.Fatalf("tracking changed: %+v", out.Tracking)
	}
	if out.DisabledIn != in.DisabledIn || out.Version != 4 || !out.CreatedAt.Equal(in.CreatedAt) {
		t.Fatalf("unexpected record %+v", out)
	}
	if len(out.History) != len(in.History) {
		t.Fatalf("expected %d history entries, got %d", len(in.History), len(out.History))
	}
	if out.History[1].Amount == nil || !out.History[1].Amount.Equal(*in.History[1].Amount) {
		t.Fatalf("entry amount lost: %+v", out.History[1])
	}
	if out.History[0].Amount != nil {
		t.Fatalf("entry without amount must stay nil")
	}
	if out.History[4].ReceiptID != "mp-77" || out.History[1].ReceiptID != "" {
		t.Fatalf("receipt link lost: %+v", out.History[4])
	}
	if out.History[2].PreviousValidity == nil || out.History[2].PreviousValidity.StartYearID != "year-2023" {
		t.Fatalf("previous validity lost: %+v", out.History[2])
	}
	if out.History[3].Period != in.History[3].Period || out.History[3].Reason != "left school" {
		t.Fatalf("disable entry changed: %+v", out.History[3])
	}
}

func TestAssignmentItem_FeeHasNoTracking(t *testing.T) {
	in := sampleAssignment()
	in.Kind = entities.AssignmentKindFee
	in.Tracking = nil
	in.DisabledIn = entities.Period{}

	av, err := attributevalue.MarshalMap(toAssignmentItem(in))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, ok := av["tracking"]; ok {
		t.Fatalf("fee document must not carry tracking")
	}
	if _, ok := av["disabled_in"]; ok {
		t.Fatalf("empty disabled_in must be omitted")
	}
}

func TestAssignmentDynamoRepository_Update(t *testing.T) {
	t.Run("conditional on the expected version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ddb := mocks.NewMockDynamoDBAPI(ctrl)
		repo := NewAssignmentDynamoRepository(ddb, "")

		ddb.EXPECT().PutItem(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
				if aws.ToString(in.TableName) != DefaultAssignmentsTableName {
					t.Fatalf("unexpected table %q", aws.ToString(in.TableName))
				}
				if aws.ToString(in.ConditionExpression) != "attribute_exists(#id) AND #version = :expected" {
					t.Fatalf("unexpected condition %q", aws.ToString(in.ConditionExpression))
				}
				if len(in.ExpressionAttributeNames) != 2 || in.ExpressionAttributeNames["#id"] != "id" || in.ExpressionAttributeNames["#version"] != "version" {
					t.Fatalf("unexpected attribute names %+v", in.ExpressionAttributeNames)
				}
				expected, _ := in.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberN)
				if expected == nil || expected.Value != "4" {
					t.Fatalf("unexpected expected version %+v", in.ExpressionAttributeValues)
				}
				stored, _ := in.Item["version"].(*types.AttributeValueMemberN)
				if stored == nil || stored.Value != "5" {
					t.Fatalf("unexpected stored version %+v", in.Item["version"])
				}
				return &dynamodb.PutItemOutput{}, nil
			})

		out, err := repo.Update(context.Background(), sampleAssignment(), 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Version != 5 {
			t.Fatalf("expected version 5, got %d", out.Version)
		}
	})

	t.Run("failed condition is a version conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ddb := mocks.NewMockDynamoDBAPI(ctrl)
		repo := NewAssignmentDynamoRepository(ddb, "assignments-test")

		ddb.EXPECT().PutItem(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &types.ConditionalCheckFailedException{Message: aws.String("conditional request failed")})

		_, err := repo.Update(context.Background(), sampleAssignment(), 3)
		if !errors.Is(err, interfaces.ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
	})

	t.Run("other errors pass through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ddb := mocks.NewMockDynamoDBAPI(ctrl)
		repo := NewAssignmentDynamoRepository(ddb, "")

		ddb.EXPECT().PutItem(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("throttled"))

		_, err := repo.Update(context.Background(), sampleAssignment(), 4)
		if err == nil || errors.Is(err, interfaces.ErrVersionConflict) {
			t.Fatalf("expected raw error, got %v", err)
		}
	})
}

func TestAssignmentDynamoRepository_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	ddb := mocks.NewMockDynamoDBAPI(ctrl)
	repo := NewAssignmentDynamoRepository(ddb, "")

	ddb.EXPECT().GetItem(gomock.Any(), gomock.Any(), gomock.Any()).Return(&dynamodb.GetItemOutput{}, nil)
	rec, err := repo.GetByID(context.Background(), "missing")
	if err != nil || rec.ID != "" {
		t.Fatalf("expected zero record, got %+v err=%v", rec, err)
	}

	av, err := attributevalue.MarshalMap(toAssignmentItem(sampleAssignment()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	ddb.EXPECT().GetItem(gomock.Any(), gomock.Any(), gomock.Any()).Return(&dynamodb.GetItemOutput{Item: av}, nil)
	rec, err = repo.GetByID(context.Background(), "asg-1")
	if err != nil || rec.ID != "asg-1" || len(rec.History) != 5 {
		t.Fatalf("unexpected record %+v err=%v", rec, err)
	}
}

func TestAssignmentDynamoRepository_ListByBeneficiaryID(t *testing.T) {
	ctrl := gomock.NewController(t)
	ddb := mocks.NewMockDynamoDBAPI(ctrl)
	repo := NewAssignmentDynamoRepository(ddb, "")

	first := sampleAssignment()
	second := sampleAssignment()
	second.ID = "asg-2"
	av1, _ := attributevalue.MarshalMap(toAssignmentItem(first))
	av2, _ := attributevalue.MarshalMap(toAssignmentItem(second))
	lastKey := map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "asg-1"}}

	gomock.InOrder(
		ddb.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
				if aws.ToString(in.IndexName) != assignmentsBeneficiaryIDIndex {
					t.Fatalf("unexpected index %q", aws.ToString(in.IndexName))
				}
				return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{av1}, LastEvaluatedKey: lastKey}, nil
			}),
		ddb.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
				if len(in.ExclusiveStartKey) == 0 {
					t.Fatalf("second page must start after the first")
				}
				return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{av2}}, nil
			}),
	)

	recs, err := repo.ListByBeneficiaryID(context.Background(), "pupil-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 || recs[1].ID != "asg-2" {
		t.Fatalf("unexpected records %+v", recs)
	}
}
