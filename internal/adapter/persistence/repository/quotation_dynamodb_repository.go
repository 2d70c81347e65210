package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aicedeno1/quotations-business-rules/internal/domain/entities"
	"github.com/aicedeno1/quotations-business-rules/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"
)

const DefaultQuotationsTableName = "quotations"

type quotationItem struct {
	ID            int64  `dynamodbav:"id"`
	ChefID        *int64 `dynamodbav:"chef_id,omitempty"`
	Status        string `dynamodbav:"status"`
	Subtotal      string `dynamodbav:"subtotal"`
	DiscountType  string `dynamodbav:"discount_type,omitempty"`
	DiscountValue string `dynamodbav:"discount_value,omitempty"`
	TaxIVA        string `dynamodbav:"tax_iva"`
	TaxService    string `dynamodbav:"tax_service"`
	TaxOther      string `dynamodbav:"tax_other"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// QuotationDynamoRepository persists Quotation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//
// Amounts and rates are stored as decimal strings so no precision is lost
// between writes and reports.

type QuotationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client, tableName string) *QuotationDynamoRepository {
	if tableName == "" {
		tableName = DefaultQuotationsTableName
	}
	return &QuotationDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

// ListAll scans the whole table page by page.
func (r *QuotationDynamoRepository) ListAll(ctx context.Context) ([]entities.Quotation, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	var out []entities.Quotation
	pages := 0
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.tableName, err)
		}
		pages++

		var items []quotationItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			q, err := fromQuotationItem(it)
			if err != nil {
				return nil, err
			}
			out = append(out, q)
		}
	}
	zerolog.Ctx(ctx).Debug().Str("layer", "repository").Str("table", r.tableName).Int("pages", pages).Int("items", len(out)).Msg("quotations scanned")
	return out, nil
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Quotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            quotationKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it)
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	av, err := attributevalue.MarshalMap(toQuotationItem(q))
	if err != nil {
		return entities.Quotation{}, err
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
		return entities.Quotation{}, conditionFailed(err, interfaces.ErrQuotationExists, q.ID)
	}
	return q, nil
}

func (r *QuotationDynamoRepository) UpdateStatusByID(ctx context.Context, id int64, from, to entities.QuotationStatus) (entities.Quotation, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 quotationKey(id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":status":     &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#status": "status", "#updated_at": "updated_at"},
			map[string]string{"#id": "id"},
		),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Quotation{}, conditionFailed(err, interfaces.ErrStatusChanged, id)
	}
	if len(out.Attributes) == 0 {
		return entities.Quotation{}, fmt.Errorf("%w: %d", interfaces.ErrStatusChanged, id)
	}
	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it)
}

// conditionFailed maps a failed ConditionExpression to sentinel and leaves
// every other error untouched.
func conditionFailed(err, sentinel error, id int64) error {
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return fmt.Errorf("%w: %d", sentinel, id)
	}
	return err
}

func quotationKey(id int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
	}
}

func toQuotationItem(q entities.Quotation) quotationItem {
	it := quotationItem{
		ID:         q.ID,
		ChefID:     q.ChefID,
		Status:     string(q.Status),
		Subtotal:   q.Subtotal.String(),
		TaxIVA:     q.TaxRates.IVA.String(),
		TaxService: q.TaxRates.Service.String(),
		TaxOther:   q.TaxRates.Other.String(),
		CreatedAt:  formatTime(q.CreatedAt),
		UpdatedAt:  formatTime(q.UpdatedAt),
	}
	if q.Discount != nil {
		it.DiscountType = string(q.Discount.Type)
		it.DiscountValue = q.Discount.Value.String()
	}
	return it
}

func fromQuotationItem(it quotationItem) (entities.Quotation, error) {
	subtotal, err := parseDecimal("subtotal", it.Subtotal)
	if err != nil {
		return entities.Quotation{}, err
	}
	rates, err := parseTaxRates(it.TaxIVA, it.TaxService, it.TaxOther)
	if err != nil {
		return entities.Quotation{}, err
	}
	discount, err := parseDiscount(it.DiscountType, it.DiscountValue)
	if err != nil {
		return entities.Quotation{}, err
	}

	createdAt, err := parseTime("created_at", it.CreatedAt)
	if err != nil {
		return entities.Quotation{}, err
	}
	updatedAt, err := parseTime("updated_at", it.UpdatedAt)
	if err != nil {
		return entities.Quotation{}, err
	}

	return entities.Quotation{
		ID:        it.ID,
		ChefID:    it.ChefID,
		Status:    entities.QuotationStatus(it.Status),
		Subtotal:  subtotal,
		Discount:  discount,
		TaxRates:  rates,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}
