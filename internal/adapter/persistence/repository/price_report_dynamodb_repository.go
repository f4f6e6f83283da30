package repository

import (
	"context"
	"time"

	"tripwatch/internal/domain/entities"
	"tripwatch/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPriceReportsTableName = "price_reports"
	listReportsLimit             = 20
)

type categoryQuoteItem struct {
	Category     string   `dynamodbav:"category"`
	Price        int      `dynamodbav:"price"`
	Label        string   `dynamodbav:"label"`
	Provenance   string   `dynamodbav:"provenance"`
	BookingURLs  []string `dynamodbav:"booking_urls"`
	WithinBudget bool     `dynamodbav:"within_budget"`
}

type priceReportItem struct {
	UserID            string            `dynamodbav:"user_id"`
	CreatedAt         string            `dynamodbav:"created_at"`
	ID                string            `dynamodbav:"id"`
	Flight            categoryQuoteItem `dynamodbav:"flight"`
	Hotel             categoryQuoteItem `dynamodbav:"hotel"`
	Car               categoryQuoteItem `dynamodbav:"car"`
	Days              int               `dynamodbav:"days"`
	TotalCost         int               `dynamodbav:"total_cost"`
	WithinTotalBudget bool              `dynamodbav:"within_total_budget"`
}

// PriceReportDynamoRepository persists PriceReport entities in DynamoDB.
//
// Table requirements:
//   - PK: user_id (string)
//   - SK: created_at (string, RFC3339Nano — sorts chronologically)
//
// One user accumulates one item per monitoring cycle; listing reads the
// newest items first straight off the sort key.

type PriceReportDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPriceReportRepository = (*PriceReportDynamoRepository)(nil)

func NewPriceReportDynamoRepository(ddb *dynamodb.Client) *PriceReportDynamoRepository {
	return &PriceReportDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRICE_REPORTS_TABLE", defaultPriceReportsTableName),
	}
}

func (r *PriceReportDynamoRepository) Save(ctx context.Context, report entities.PriceReport) error {
	av, err := attributevalue.MarshalMap(toPriceReportItem(report))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *PriceReportDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.PriceReport, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#user_id = :user_id"),
		ExpressionAttributeNames: map[string]string{
			"#user_id": "user_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false), // newest first
		Limit:            aws.Int32(listReportsLimit),
	})
	if err != nil {
		return nil, err
	}

	reports := make([]entities.PriceReport, 0, len(out.Items))
	for _, item := range out.Items {
		var it priceReportItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		reports = append(reports, fromPriceReportItem(it))
	}
	return reports, nil
}

func toPriceReportItem(r entities.PriceReport) priceReportItem {
	return priceReportItem{
		UserID:            r.UserID,
		CreatedAt:         r.CreatedAt.UTC().Format(time.RFC3339Nano),
		ID:                r.ID,
		Flight:            toCategoryQuoteItem(r.Flight),
		Hotel:             toCategoryQuoteItem(r.Hotel),
		Car:               toCategoryQuoteItem(r.Car),
		Days:              r.Days,
		TotalCost:         r.TotalCost,
		WithinTotalBudget: r.WithinTotalBudget,
	}
}

func fromPriceReportItem(it priceReportItem) entities.PriceReport {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.PriceReport{
		ID:                it.ID,
		UserID:            it.UserID,
		Flight:            fromCategoryQuoteItem(it.Flight),
		Hotel:             fromCategoryQuoteItem(it.Hotel),
		Car:               fromCategoryQuoteItem(it.Car),
		Days:              it.Days,
		TotalCost:         it.TotalCost,
		WithinTotalBudget: it.WithinTotalBudget,
		CreatedAt:         createdAt,
	}
}

func toCategoryQuoteItem(q entities.CategoryQuote) categoryQuoteItem {
	return categoryQuoteItem{
		Category:     string(q.Category),
		Price:        q.Price,
		Label:        q.Label,
		Provenance:   string(q.Provenance),
		BookingURLs:  q.BookingURLs,
		WithinBudget: q.WithinBudget,
	}
}

func fromCategoryQuoteItem(it categoryQuoteItem) entities.CategoryQuote {
	return entities.CategoryQuote{
		Category:     entities.Category(it.Category),
		Price:        it.Price,
		Label:        it.Label,
		Provenance:   entities.Provenance(it.Provenance),
		BookingURLs:  it.BookingURLs,
		WithinBudget: it.WithinBudget,
	}
}
