package analytics

import (
	"strings"
	"time"

	"github.com/aicedeno1/quotations-business-rules/internal/domain/entities"
	"github.com/aicedeno1/quotations-business-rules/internal/domain/money"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of tax summary bounds.
const DateLayout = "2006-01-02"

// ParseDateRange parses optional YYYY-MM-DD bounds. Blank strings leave the
// bound open.
func ParseDateRange(startDate, endDate string) (entities.DateRange, error) {
	var r entities.DateRange

	start, err := parseDay("startDate", startDate)
	if err != nil {
		return r, err
	}
	end, err := parseDay("endDate", endDate)
	if err != nil {
		return r, err
	}
	return NewDateRange(start, end)
}

// NewDateRange builds a range from already-parsed day bounds, rejecting
// inverted ranges.
func NewDateRange(start, end *time.Time) (entities.DateRange, error) {
	if start != nil && end != nil && start.After(*end) {
		return entities.DateRange{}, &InvalidArgumentError{
			Field:  "dateRange",
			Value:  start.Format(DateLayout) + ".." + end.Format(DateLayout),
			Reason: "startDate must not be after endDate",
		}
	}
	return entities.DateRange{StartDate: start, EndDate: end}, nil
}

func parseDay(field, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return nil, &InvalidArgumentError{Field: field, Value: value, Reason: "expected YYYY-MM-DD"}
	}
	return &t, nil
}

// TaxSummary aggregates subtotal, discount, revenue and tax components over
// the quotations created inside period. Quotations with an unknown status
// are left out.
func TaxSummary(quotations []entities.Quotation, period entities.DateRange) entities.TaxSummary {
	count := 0
	subtotal, discounts, revenue := decimal.Zero, decimal.Zero, decimal.Zero
	ivaAmount, serviceAmount, otherAmount := decimal.Zero, decimal.Zero, decimal.Zero

	for _, q := range quotations {
		if !q.Status.Valid() || !period.Contains(q.CreatedAt) {
			continue
		}
		discount := q.DiscountAmount()
		base := q.Subtotal.Sub(discount)
		taxes := q.TaxesOn(base)

		count++
		subtotal = subtotal.Add(q.Subtotal)
		discounts = discounts.Add(discount)
		revenue = revenue.Add(base.Add(taxes.Total()))
		ivaAmount = ivaAmount.Add(taxes.IVA)
		serviceAmount = serviceAmount.Add(taxes.Service)
		otherAmount = otherAmount.Add(taxes.Other)
	}

	totalTaxes := ivaAmount.Add(serviceAmount).Add(otherAmount)

	return entities.TaxSummary{
		Period: period,
		Summary: entities.TaxSummaryTotals{
			TotalQuotations: count,
			TotalSubtotal:   subtotal,
			TotalDiscounts:  discounts,
			TotalRevenue:    revenue,
		},
		TaxBreakdown: entities.TaxBreakdown{
			IVAAmount:     ivaAmount,
			ServiceAmount: serviceAmount,
			OtherAmount:   otherAmount,
			TotalTaxes:    totalTaxes,
		},
		Analysis: entities.TaxAnalysis{
			AverageTaxRate: money.Percent(totalTaxes, revenue),
			NetRevenue:     revenue.Sub(totalTaxes),
		},
	}
}
