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
	DefaultAcademicYearsTableName = "academic_years"
	DefaultTermsTableName         = "terms"
)

type academicYearItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	StartDate string `dynamodbav:"start_date"`
	EndDate   string `dynamodbav:"end_date"`
	IsCurrent bool   `dynamodbav:"is_current"`
}

type termItem struct {
	ID             string `dynamodbav:"id"`
	AcademicYearID string `dynamodbav:"academic_year_id"`
	Name           string `dynamodbav:"name"`
	StartDate      string `dynamodbav:"start_date"`
	EndDate        string `dynamodbav:"end_date"`
	IsCurrent      bool   `dynamodbav:"is_current"`
}

// CalendarDynamoRepository keeps academic years and terms in two tables
// (PK: id). Both are small, so listing is a full scan.
type CalendarDynamoRepository struct {
	ddb        DynamoDBAPI
	yearsTable string
	termsTable string
}

var _ interfaces.ICalendarRepository = (*CalendarDynamoRepository)(nil)

func NewCalendarDynamoRepository(ddb DynamoDBAPI, yearsTable, termsTable string) *CalendarDynamoRepository {
	if yearsTable == "" {
		yearsTable = DefaultAcademicYearsTableName
	}
	if termsTable == "" {
		termsTable = DefaultTermsTableName
	}
	return &CalendarDynamoRepository{ddb: ddb, yearsTable: yearsTable, termsTable: termsTable}
}

func (r *CalendarDynamoRepository) CreateYear(ctx context.Context, y entities.AcademicYear) (entities.AcademicYear, error) {
	it := academicYearItem{
		ID:        y.ID,
		Name:      y.Name,
		StartDate: formatTime(y.StartDate),
		EndDate:   formatTime(y.EndDate),
		IsCurrent: y.IsCurrent,
	}
	if err := r.put(ctx, r.yearsTable, it); err != nil {
		return entities.AcademicYear{}, err
	}
	return y, nil
}

func (r *CalendarDynamoRepository) CreateTerm(ctx context.Context, t entities.Term) (entities.Term, error) {
	it := termItem{
		ID:             t.ID,
		AcademicYearID: t.AcademicYearID,
		Name:           t.Name,
		StartDate:      formatTime(t.StartDate),
		EndDate:        formatTime(t.EndDate),
		IsCurrent:      t.IsCurrent,
	}
	if err := r.put(ctx, r.termsTable, it); err != nil {
		return entities.Term{}, err
	}
	return t, nil
}

func (r *CalendarDynamoRepository) ListYears(ctx context.Context) ([]entities.AcademicYear, error) {
	var items []academicYearItem
	if err := r.scan(ctx, r.yearsTable, &items); err != nil {
		return nil, err
	}
	years := make([]entities.AcademicYear, 0, len(items))
	for _, it := range items {
		years = append(years, entities.AcademicYear{
			ID:        it.ID,
			Name:      it.Name,
			StartDate: parseTime(it.StartDate),
			EndDate:   parseTime(it.EndDate),
			IsCurrent: it.IsCurrent,
		})
	}
	return years, nil
}

func (r *CalendarDynamoRepository) ListTerms(ctx context.Context) ([]entities.Term, error) {
	var items []termItem
	if err := r.scan(ctx, r.termsTable, &items); err != nil {
		return nil, err
	}
	terms := make([]entities.Term, 0, len(items))
	for _, it := range items {
		terms = append(terms, entities.Term{
			ID:             it.ID,
			AcademicYearID: it.AcademicYearID,
			Name:           it.Name,
			StartDate:      parseTime(it.StartDate),
			EndDate:        parseTime(it.EndDate),
			IsCurrent:      it.IsCurrent,
		})
	}
	return terms, nil
}

func (r *CalendarDynamoRepository) put(ctx context.Context, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func (r *CalendarDynamoRepository) scan(ctx context.Context, table string, out any) error {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(table),
		ConsistentRead: aws.Bool(true),
	})
	var raw []map[string]types.AttributeValue
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return err
		}
		raw = append(raw, page.Items...)
	}
	return attributevalue.UnmarshalListOfMaps(raw, out)
}
