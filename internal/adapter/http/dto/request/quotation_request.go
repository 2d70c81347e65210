package request

import (
	"strings"
	"time"

	"github.com/aicedeno1/quotations-business-rules/internal/domain/entities"
	"github.com/aicedeno1/quotations-business-rules/internal/domain/money"

	"github.com/shopspring/decimal"
)

// Amounts accept both JSON numbers and numeric strings.

type DiscountRequest struct {
	Type  string          `json:"type" binding:"required"`
	Value decimal.Decimal `json:"value"`
}

type TaxRatesRequest struct {
	IVA     decimal.Decimal `json:"iva"`
	Service decimal.Decimal `json:"service"`
	Other   decimal.Decimal `json:"other"`
}

// CreateQuotationRequest registers a quotation. Status is not accepted; every
// new quotation starts pending.
type CreateQuotationRequest struct {
	ID        int64            `json:"id" binding:"required"`
	ChefID    *int64           `json:"chefId"`
	Subtotal  *decimal.Decimal `json:"subtotal" binding:"required"`
	Discount  *DiscountRequest `json:"discount"`
	TaxRates  TaxRatesRequest  `json:"taxRates"`
	CreatedAt *time.Time       `json:"createdAt"`
}

func (r CreateQuotationRequest) ToEntity() entities.Quotation {
	q := entities.Quotation{
		ID:     r.ID,
		ChefID: r.ChefID,
		TaxRates: entities.TaxRates{
			IVA:     r.TaxRates.IVA,
			Service: r.TaxRates.Service,
			Other:   r.TaxRates.Other,
		},
	}
	if r.Subtotal != nil {
		q.Subtotal = *r.Subtotal
	}
	if r.Discount != nil {
		q.Discount = &money.Discount{
			Type:  money.DiscountType(strings.ToLower(strings.TrimSpace(r.Discount.Type))),
			Value: r.Discount.Value,
		}
	}
	if r.CreatedAt != nil {
		q.CreatedAt = r.CreatedAt.UTC()
	}
	return q
}
