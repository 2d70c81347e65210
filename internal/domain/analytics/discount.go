package analytics

import (
	"github.com/aicedeno1/quotations-business-rules/internal/domain/entities"
	"github.com/aicedeno1/quotations-business-rules/internal/domain/money"

	"github.com/shopspring/decimal"
)

// Discount breaks down the financial impact of the discount on q.
//
// Taxes follow the base they are charged on: FinalTotal uses the discounted
// base, TotalWithoutDiscount uses the full subtotal. The discount reduces the
// business margin only, so ProfitMarginLost equals DiscountAmount.
func Discount(q entities.Quotation) entities.DiscountAnalysis {
	discountAmount := q.DiscountAmount()
	discountedBase := q.Subtotal.Sub(discountAmount)

	taxOnDiscounted := q.TaxesOn(discountedBase).Total()
	taxOnFull := q.TaxesOn(q.Subtotal).Total()

	totalWithoutDiscount := q.Subtotal.Add(taxOnFull)
	finalTotal := discountedBase.Add(taxOnDiscounted)

	discountType := ""
	discountValue := decimal.Zero
	if q.Discount != nil {
		discountType = string(q.Discount.Type)
		discountValue = q.Discount.Value
	}

	return entities.DiscountAnalysis{
		QuotationID:          q.ID,
		OriginalSubtotal:     q.Subtotal,
		TotalWithoutDiscount: totalWithoutDiscount,
		DiscountType:         discountType,
		DiscountValue:        discountValue,
		DiscountAmount:       discountAmount,
		DiscountPercentage:   money.ComputeDiscountPercentage(q.Subtotal, discountAmount),
		TaxOnDiscountedBase:  taxOnDiscounted,
		TaxOnFullSubtotal:    taxOnFull,
		FinalTotal:           finalTotal,
		SavingsForClient:     totalWithoutDiscount.Sub(finalTotal),
		ProfitMarginLost:     discountAmount,
	}
}
