package response

import (
	"testing"
	"time"

	"github.com/aicedeno1/quotations-business-rules/internal/domain/entities"
	"github.com/aicedeno1/quotations-business-rules/internal/domain/money"

	"github.com/shopspring/decimal"
)

func TestFromQuotation(t *testing.T) {
	now := time.Now().UTC()
	chef := int64(7)
	q := entities.Quotation{
		ID:        1,
		ChefID:    &chef,
		Status:    entities.QuotationStatusApproved,
		Subtotal:  decimal.NewFromInt(100),
		Discount:  &money.Discount{Type: money.DiscountTypePercentage, Value: decimal.NewFromInt(10)},
		TaxRates:  entities.TaxRates{IVA: decimal.NewFromInt(15), Service: decimal.NewFromInt(5)},
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromQuotation(q)
	if res.ID != 1 || res.ChefID == nil || *res.ChefID != 7 || res.Status != "approved" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.DiscountAmount != 10 || res.Taxes.IVA != 13.5 || res.Taxes.Service != 4.5 || res.Taxes.Total != 18 || res.FinalTotal != 108 {
		t.Fatalf("unexpected derived amounts: %+v", res)
	}
	if res.Discount == nil || res.Discount.Type != "percentage" || res.Discount.Value != 10 {
		t.Fatalf("unexpected discount: %+v", res.Discount)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromQuotation_NoDiscount(t *testing.T) {
	res := FromQuotation(entities.Quotation{ID: 2, Status: entities.QuotationStatusPending, Subtotal: decimal.NewFromInt(20)})
	if res.Discount != nil || res.FinalTotal != 20 || res.ChefID != nil {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
}
