package repository

import (
	"context"
	"errors"
	"strconv"

	"assignment_ledger/internal/domain/entities"
	"assignment_ledger/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultAssignmentsTableName   = "assignments"
	assignmentsBeneficiaryIDIndex = "beneficiary_id-index"
)

type discountItem struct {
	Name  string `dynamodbav:"name"`
	Value string `dynamodbav:"value"`
	Type  string `dynamodbav:"type"`
}

type chargeItem struct {
	Amount         string        `dynamodbav:"amount"`
	OriginalAmount string        `dynamodbav:"original_amount"`
	Discount       *discountItem `dynamodbav:"discount,omitempty"`
	PaidAmount     string        `dynamodbav:"paid_amount"`
	PaymentStatus  string        `dynamodbav:"payment_status"`
}

type trackingItem struct {
	SelectionMode      string `dynamodbav:"selection_mode"`
	ItemLabel          string `dynamodbav:"item_label"`
	ItemCount          int    `dynamodbav:"item_count"`
	RequiredQuantity   int    `dynamodbav:"required_quantity"`
	ReceivedFromParent int    `dynamodbav:"received_from_parent"`
	ReceivedFromOffice int    `dynamodbav:"received_from_office"`
	Received           int    `dynamodbav:"received"`
}

type validityItem struct {
	Type        string   `dynamodbav:"type"`
	YearID      string   `dynamodbav:"year_id,omitempty"`
	StartYearID string   `dynamodbav:"start_year_id,omitempty"`
	EndYearID   string   `dynamodbav:"end_year_id,omitempty"`
	TermIDs     []string `dynamodbav:"term_ids,omitempty"`
}

type termApplicabilityItem struct {
	Type    string   `dynamodbav:"type"`
	TermIDs []string `dynamodbav:"term_ids,omitempty"`
}

type periodItem struct {
	AcademicYearID string `dynamodbav:"academic_year_id,omitempty"`
	TermID         string `dynamodbav:"term_id,omitempty"`
}

type historyItem struct {
	At                        string                 `dynamodbav:"at"`
	Action                    string                 `dynamodbav:"action"`
	Actor                     string                 `dynamodbav:"actor"`
	PreviousStatus            string                 `dynamodbav:"previous_status,omitempty"`
	NewStatus                 string                 `dynamodbav:"new_status,omitempty"`
	Reason                    string                 `dynamodbav:"reason,omitempty"`
	EffectiveFrom             string                 `dynamodbav:"effective_from,omitempty"`
	Period                    periodItem             `dynamodbav:"period"`
	Channel                   string                 `dynamodbav:"channel,omitempty"`
	Quantity                  int                    `dynamodbav:"quantity,omitempty"`
	Amount                    string                 `dynamodbav:"amount,omitempty"`
	ReceiptID                 string                 `dynamodbav:"receipt_id,omitempty"`
	PreviousValidity          *validityItem          `dynamodbav:"previous_validity,omitempty"`
	PreviousTermApplicability *termApplicabilityItem `dynamodbav:"previous_term_applicability,omitempty"`
}

type assignmentItem struct {
	ID                string                `dynamodbav:"id"`
	BeneficiaryID     string                `dynamodbav:"beneficiary_id"`
	Kind              string                `dynamodbav:"kind"`
	Label             string                `dynamodbav:"label"`
	BenefitItemIDs    []string              `dynamodbav:"benefit_item_ids"`
	Status            string                `dynamodbav:"status"`
	Validity          validityItem          `dynamodbav:"validity"`
	TermApplicability termApplicabilityItem `dynamodbav:"term_applicability"`
	Charge            chargeItem            `dynamodbav:"charge"`
	Tracking          *trackingItem         `dynamodbav:"tracking,omitempty"`
	DisabledEffect    string                `dynamodbav:"disabled_effect,omitempty"`
	DisabledIn        *periodItem           `dynamodbav:"disabled_in,omitempty"`
	History           []historyItem         `dynamodbav:"history"`
	Version           int64                 `dynamodbav:"version"`
	CreatedAt         string                `dynamodbav:"created_at"`
	UpdatedAt         string                `dynamodbav:"updated_at"`
}

// AssignmentDynamoRepository persists AssignmentRecord documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: beneficiary_id-index (PK: beneficiary_id)
//
// The whole document (history included) is written on every change, guarded
// by the version attribute.
type AssignmentDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IAssignmentRepository = (*AssignmentDynamoRepository)(nil)

func NewAssignmentDynamoRepository(ddb DynamoDBAPI, tableName string) *AssignmentDynamoRepository {
	if tableName == "" {
		tableName = DefaultAssignmentsTableName
	}
	return &AssignmentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *AssignmentDynamoRepository) Create(ctx context.Context, a entities.AssignmentRecord) (entities.AssignmentRecord, error) {
	if a.Version == 0 {
		a.Version = 1
	}
	av, err := attributevalue.MarshalMap(toAssignmentItem(a))
	if err != nil {
		return entities.AssignmentRecord{}, err
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
		return entities.AssignmentRecord{}, err
	}
	return a, nil
}

func (r *AssignmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.AssignmentRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AssignmentRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.AssignmentRecord{}, nil
	}

	var it assignmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AssignmentRecord{}, err
	}
	return fromAssignmentItem(it), nil
}

func (r *AssignmentDynamoRepository) ListByBeneficiaryID(ctx context.Context, beneficiaryID string) ([]entities.AssignmentRecord, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(assignmentsBeneficiaryIDIndex),
		KeyConditionExpression: aws.String("beneficiary_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: beneficiaryID},
		},
	})

	recs := make([]entities.AssignmentRecord, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it assignmentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			recs = append(recs, fromAssignmentItem(it))
		}
	}
	return recs, nil
}

// Update replaces the stored document when its version still equals
// expectedVersion. A failed condition is reported as ErrVersionConflict.
func (r *AssignmentDynamoRepository) Update(ctx context.Context, a entities.AssignmentRecord, expectedVersion int64) (entities.AssignmentRecord, error) {
	a.Version = expectedVersion + 1
	av, err := attributevalue.MarshalMap(toAssignmentItem(a))
	if err != nil {
		return entities.AssignmentRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.AssignmentRecord{}, interfaces.ErrVersionConflict
		}
		return entities.AssignmentRecord{}, err
	}
	return a, nil
}

func (r *AssignmentDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toAssignmentItem(a entities.AssignmentRecord) assignmentItem {
	it := assignmentItem{
		ID:                a.ID,
		BeneficiaryID:     a.BeneficiaryID,
		Kind:              string(a.Kind),
		Label:             a.Label,
		BenefitItemIDs:    a.BenefitItemIDs,
		Status:            string(a.Status),
		Validity:          toValidityItem(a.Validity),
		TermApplicability: toTermApplicabilityItem(a.TermApplicability),
		Charge: chargeItem{
			Amount:         formatDecimal(a.Charge.Amount),
			OriginalAmount: formatDecimal(a.Charge.OriginalAmount),
			PaidAmount:     formatDecimal(a.Charge.PaidAmount),
			PaymentStatus:  string(a.Charge.PaymentStatus),
		},
		DisabledEffect: string(a.DisabledEffect),
		History:        make([]historyItem, 0, len(a.History)),
		Version:        a.Version,
		CreatedAt:      formatTime(a.CreatedAt),
		UpdatedAt:      formatTime(a.UpdatedAt),
	}
	if d := a.Charge.Discount; d != nil {
		it.Charge.Discount = &discountItem{Name: d.Name, Value: formatDecimal(d.Value), Type: string(d.Type)}
	}
	if t := a.Tracking; t != nil {
		it.Tracking = &trackingItem{
			SelectionMode:      string(t.SelectionMode),
			ItemLabel:          t.ItemLabel,
			ItemCount:          t.ItemCount,
			RequiredQuantity:   t.RequiredQuantity,
			ReceivedFromParent: t.ReceivedFromParent,
			ReceivedFromOffice: t.ReceivedFromOffice,
			Received:           t.Received,
		}
	}
	if !a.DisabledIn.IsZero() {
		it.DisabledIn = &periodItem{AcademicYearID: a.DisabledIn.AcademicYearID, TermID: a.DisabledIn.TermID}
	}
	for _, h := range a.History {
		hi := historyItem{
			At:             formatTime(h.At),
			Action:         string(h.Action),
			Actor:          h.Actor,
			PreviousStatus: string(h.PreviousStatus),
			NewStatus:      string(h.NewStatus),
			Reason:         h.Reason,
			EffectiveFrom:  string(h.EffectiveFrom),
			Period:         periodItem{AcademicYearID: h.Period.AcademicYearID, TermID: h.Period.TermID},
			Channel:        string(h.Channel),
			Quantity:       h.Quantity,
			ReceiptID:      h.ReceiptID,
		}
		if h.Amount != nil {
			hi.Amount = formatDecimal(*h.Amount)
		}
		if h.PreviousValidity != nil {
			v := toValidityItem(*h.PreviousValidity)
			hi.PreviousValidity = &v
		}
		if h.PreviousTermApplicability != nil {
			ta := toTermApplicabilityItem(*h.PreviousTermApplicability)
			hi.PreviousTermApplicability = &ta
		}
		it.History = append(it.History, hi)
	}
	return it
}

func fromAssignmentItem(it assignmentItem) entities.AssignmentRecord {
	a := entities.AssignmentRecord{
		ID:                it.ID,
		BeneficiaryID:     it.BeneficiaryID,
		Kind:              entities.AssignmentKind(it.Kind),
		Label:             it.Label,
		BenefitItemIDs:    it.BenefitItemIDs,
		Status:            entities.AssignmentStatus(it.Status),
		Validity:          fromValidityItem(it.Validity),
		TermApplicability: fromTermApplicabilityItem(it.TermApplicability),
		Charge: entities.Charge{
			Amount:         parseDecimal(it.Charge.Amount),
			OriginalAmount: parseDecimal(it.Charge.OriginalAmount),
			PaidAmount:     parseDecimal(it.Charge.PaidAmount),
			PaymentStatus:  entities.PaymentStatus(it.Charge.PaymentStatus),
		},
		DisabledEffect: entities.DisableEffect(it.DisabledEffect),
		History:        make([]entities.HistoryEntry, 0, len(it.History)),
		Version:        it.Version,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
	if d := it.Charge.Discount; d != nil {
		a.Charge.Discount = &entities.Discount{Name: d.Name, Value: parseDecimal(d.Value), Type: entities.DiscountType(d.Type)}
	}
	if t := it.Tracking; t != nil {
		a.Tracking = &entities.TrackingLedger{
			SelectionMode:      entities.SelectionMode(t.SelectionMode),
			ItemLabel:          t.ItemLabel,
			ItemCount:          t.ItemCount,
			RequiredQuantity:   t.RequiredQuantity,
			ReceivedFromParent: t.ReceivedFromParent,
			ReceivedFromOffice: t.ReceivedFromOffice,
			Received:           t.Received,
		}
	}
	if it.DisabledIn != nil {
		a.DisabledIn = entities.Period{AcademicYearID: it.DisabledIn.AcademicYearID, TermID: it.DisabledIn.TermID}
	}
	for _, hi := range it.History {
		h := entities.HistoryEntry{
			At:             parseTime(hi.At),
			Action:         entities.HistoryAction(hi.Action),
			Actor:          hi.Actor,
			PreviousStatus: entities.AssignmentStatus(hi.PreviousStatus),
			NewStatus:      entities.AssignmentStatus(hi.NewStatus),
			Reason:         hi.Reason,
			EffectiveFrom:  entities.DisableEffect(hi.EffectiveFrom),
			Period:         entities.Period{AcademicYearID: hi.Period.AcademicYearID, TermID: hi.Period.TermID},
			Channel:        entities.ReceptionChannel(hi.Channel),
			Quantity:       hi.Quantity,
			ReceiptID:      hi.ReceiptID,
		}
		if hi.Amount != "" {
			amount := parseDecimal(hi.Amount)
			h.Amount = &amount
		}
		if hi.PreviousValidity != nil {
			v := fromValidityItem(*hi.PreviousValidity)
			h.PreviousValidity = &v
		}
		if hi.PreviousTermApplicability != nil {
			ta := fromTermApplicabilityItem(*hi.PreviousTermApplicability)
			h.PreviousTermApplicability = &ta
		}
		a.History = append(a.History, h)
	}
	return a
}

func toValidityItem(v entities.Validity) validityItem {
	return validityItem{Type: string(v.Type), YearID: v.YearID, StartYearID: v.StartYearID, EndYearID: v.EndYearID, TermIDs: v.TermIDs}
}

func fromValidityItem(it validityItem) entities.Validity {
	return entities.Validity{Type: entities.ValidityType(it.Type), YearID: it.YearID, StartYearID: it.StartYearID, EndYearID: it.EndYearID, TermIDs: it.TermIDs}
}

func toTermApplicabilityItem(ta entities.TermApplicability) termApplicabilityItem {
	return termApplicabilityItem{Type: string(ta.Type), TermIDs: ta.TermIDs}
}

func fromTermApplicabilityItem(it termApplicabilityItem) entities.TermApplicability {
	return entities.TermApplicability{Type: entities.TermApplicabilityType(it.Type), TermIDs: it.TermIDs}
}
