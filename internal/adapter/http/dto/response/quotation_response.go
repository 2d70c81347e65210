package response

import (
	"time"

	"github.com/aicedeno1/quotations-business-rules/internal/domain/entities"
	"github.com/aicedeno1/quotations-business-rules/internal/domain/money"
)

type DiscountResponse struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

type TaxRatesResponse struct {
	IVA     float64 `json:"iva"`
	Service float64 `json:"service"`
	Other   float64 `json:"other"`
}

type TaxesResponse struct {
	IVA     float64 `json:"iva"`
	Service float64 `json:"service"`
	Other   float64 `json:"other"`
	Total   float64 `json:"totalTaxes"`
}

// QuotationResponse carries the stored fields plus the derived amounts.
type QuotationResponse struct {
	ID             int64             `json:"id"`
	ChefID         *int64            `json:"chefId,omitempty"`
	Status         string            `json:"status"`
	Subtotal       float64           `json:"subtotal"`
	Discount       *DiscountResponse `json:"discount,omitempty"`
	DiscountAmount float64           `json:"discountAmount"`
	TaxRates       TaxRatesResponse  `json:"taxRates"`
	Taxes          TaxesResponse     `json:"taxes"`
	FinalTotal     float64           `json:"totalAmount"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	taxes := q.Taxes()
	res := QuotationResponse{
		ID:             q.ID,
		ChefID:         q.ChefID,
		Status:         string(q.Status),
		Subtotal:       money.ToFloat(q.Subtotal),
		DiscountAmount: money.ToFloat(q.DiscountAmount()),
		TaxRates: TaxRatesResponse{
			IVA:     money.ToFloat(q.TaxRates.IVA),
			Service: money.ToFloat(q.TaxRates.Service),
			Other:   money.ToFloat(q.TaxRates.Other),
		},
		Taxes: TaxesResponse{
			IVA:     money.ToFloat(taxes.IVA),
			Service: money.ToFloat(taxes.Service),
			Other:   money.ToFloat(taxes.Other),
			Total:   money.ToFloat(taxes.Total()),
		},
		FinalTotal: money.ToFloat(q.FinalTotal()),
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
	if q.Discount != nil {
		res.Discount = &DiscountResponse{Type: string(q.Discount.Type), Value: money.ToFloat(q.Discount.Value)}
	}
	return res
}
