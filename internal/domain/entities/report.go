package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Report payloads are snapshots computed per request. All amounts keep full
// decimal precision; rounding happens in the response mappers.

// RevenueScope selects which quotations count as revenue.
type RevenueScope string

const (
	// RevenueScopeAll includes every quotation with a known status.
	RevenueScopeAll RevenueScope = "all"
	// RevenueScopeCompleted includes only completed (realized) quotations.
	RevenueScopeCompleted RevenueScope = "completed"
)

func (s RevenueScope) Valid() bool {
	return s == RevenueScopeAll || s == RevenueScopeCompleted
}

type RevenueAnalysis struct {
	Scope                 RevenueScope
	TotalRevenue          decimal.Decimal
	AverageQuotationValue decimal.Decimal
	TotalQuotations       int
}

type DiscountAnalysis struct {
	QuotationID          int64
	OriginalSubtotal     decimal.Decimal
	TotalWithoutDiscount decimal.Decimal
	DiscountType         string
	DiscountValue        decimal.Decimal
	DiscountAmount       decimal.Decimal
	DiscountPercentage   decimal.Decimal
	TaxOnDiscountedBase  decimal.Decimal
	TaxOnFullSubtotal    decimal.Decimal
	FinalTotal           decimal.Decimal
	SavingsForClient     decimal.Decimal
	ProfitMarginLost     decimal.Decimal
}

type ChefProfitability struct {
	ChefID                int64
	TotalQuotations       int
	TotalRevenue          decimal.Decimal
	AverageQuotationValue decimal.Decimal
	ApprovedQuotations    int
	PendingQuotations     int
	CancelledQuotations   int
	CompletedQuotations   int
	SuccessRate           decimal.Decimal
}

// DateRange holds inclusive calendar-day bounds in UTC. A nil bound is open.
type DateRange struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// Contains reports whether t falls on or between the bound days.
func (r DateRange) Contains(t time.Time) bool {
	t = t.UTC()
	if r.StartDate != nil && t.Before(*r.StartDate) {
		return false
	}
	if r.EndDate != nil && !t.Before(r.EndDate.AddDate(0, 0, 1)) {
		return false
	}
	return true
}

type TaxSummaryTotals struct {
	TotalQuotations int
	TotalSubtotal   decimal.Decimal
	TotalDiscounts  decimal.Decimal
	TotalRevenue    decimal.Decimal
}

type TaxBreakdown struct {
	IVAAmount     decimal.Decimal
	ServiceAmount decimal.Decimal
	OtherAmount   decimal.Decimal
	TotalTaxes    decimal.Decimal
}

type TaxAnalysis struct {
	AverageTaxRate decimal.Decimal
	NetRevenue     decimal.Decimal
}

type TaxSummary struct {
	Period       DateRange
	Summary      TaxSummaryTotals
	TaxBreakdown TaxBreakdown
	Analysis     TaxAnalysis
}
