package response

import (
	"github.com/aicedeno1/quotations-business-rules/internal/domain/analytics"
	"github.com/aicedeno1/quotations-business-rules/internal/domain/entities"
	"github.com/aicedeno1/quotations-business-rules/internal/domain/money"
)

// notApplicable is rendered for a missing discount type or an open period bound.
const notApplicable = "N/A"

type RevenueAnalysisResponse struct {
	Scope                 string  `json:"scope"`
	TotalRevenue          float64 `json:"totalRevenue"`
	AverageQuotationValue float64 `json:"averageQuotationValue"`
	TotalQuotations       int     `json:"totalQuotations"`
}

func FromRevenueAnalysis(r entities.RevenueAnalysis) RevenueAnalysisResponse {
	return RevenueAnalysisResponse{
		Scope:                 string(r.Scope),
		TotalRevenue:          money.ToFloat(r.TotalRevenue),
		AverageQuotationValue: money.ToFloat(r.AverageQuotationValue),
		TotalQuotations:       r.TotalQuotations,
	}
}

type DiscountAnalysisResponse struct {
	QuotationID          int64   `json:"quotationId"`
	OriginalSubtotal     float64 `json:"originalSubtotal"`
	TotalWithoutDiscount float64 `json:"totalWithoutDiscount"`
	DiscountType         string  `json:"discountType"`
	DiscountValue        float64 `json:"discountValue"`
	DiscountAmount       float64 `json:"discountAmount"`
	DiscountPercentage   float64 `json:"discountPercentage"`
	TaxOnDiscountedBase  float64 `json:"taxOnDiscountedBase"`
	TaxOnFullSubtotal    float64 `json:"taxOnFullSubtotal"`
	FinalTotal           float64 `json:"finalTotal"`
	SavingsForClient     float64 `json:"savingsForClient"`
	ProfitMarginLost     float64 `json:"profitMarginLost"`
}

func FromDiscountAnalysis(d entities.DiscountAnalysis) DiscountAnalysisResponse {
	discountType := d.DiscountType
	if discountType == "" {
		discountType = notApplicable
	}
	return DiscountAnalysisResponse{
		QuotationID:          d.QuotationID,
		OriginalSubtotal:     money.ToFloat(d.OriginalSubtotal),
		TotalWithoutDiscount: money.ToFloat(d.TotalWithoutDiscount),
		DiscountType:         discountType,
		DiscountValue:        money.ToFloat(d.DiscountValue),
		DiscountAmount:       money.ToFloat(d.DiscountAmount),
		DiscountPercentage:   money.ToFloat(d.DiscountPercentage),
		TaxOnDiscountedBase:  money.ToFloat(d.TaxOnDiscountedBase),
		TaxOnFullSubtotal:    money.ToFloat(d.TaxOnFullSubtotal),
		FinalTotal:           money.ToFloat(d.FinalTotal),
		SavingsForClient:     money.ToFloat(d.SavingsForClient),
		ProfitMarginLost:     money.ToFloat(d.ProfitMarginLost),
	}
}

type ChefProfitabilityResponse struct {
	ChefID                int64   `json:"chefId"`
	TotalQuotations       int     `json:"totalQuotations"`
	TotalRevenue          float64 `json:"totalRevenue"`
	AverageQuotationValue float64 `json:"averageQuotationValue"`
	ApprovedQuotations    int     `json:"approvedQuotations"`
	PendingQuotations     int     `json:"pendingQuotations"`
	CancelledQuotations   int     `json:"cancelledQuotations"`
	CompletedQuotations   int     `json:"completedQuotations"`
	SuccessRate           float64 `json:"successRate"`
}

// FromChefProfitability keeps the input order and never returns nil, so an
// empty report encodes as [].
func FromChefProfitability(rows []entities.ChefProfitability) []ChefProfitabilityResponse {
	out := make([]ChefProfitabilityResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ChefProfitabilityResponse{
			ChefID:                r.ChefID,
			TotalQuotations:       r.TotalQuotations,
			TotalRevenue:          money.ToFloat(r.TotalRevenue),
			AverageQuotationValue: money.ToFloat(r.AverageQuotationValue),
			ApprovedQuotations:    r.ApprovedQuotations,
			PendingQuotations:     r.PendingQuotations,
			CancelledQuotations:   r.CancelledQuotations,
			CompletedQuotations:   r.CompletedQuotations,
			SuccessRate:           money.ToFloat(r.SuccessRate),
		})
	}
	return out
}

type PeriodResponse struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type TaxSummaryTotalsResponse struct {
	TotalQuotations int     `json:"totalQuotations"`
	TotalSubtotal   float64 `json:"totalSubtotal"`
	TotalDiscounts  float64 `json:"totalDiscounts"`
	TotalRevenue    float64 `json:"totalRevenue"`
}

type TaxBreakdownResponse struct {
	IVAAmount     float64 `json:"ivaAmount"`
	ServiceAmount float64 `json:"serviceAmount"`
	OtherAmount   float64 `json:"otherAmount"`
	TotalTaxes    float64 `json:"totalTaxes"`
}

type TaxAnalysisResponse struct {
	AverageTaxRate float64 `json:"averageTaxRate"`
	NetRevenue     float64 `json:"netRevenue"`
}

type TaxSummaryResponse struct {
	Period       PeriodResponse           `json:"period"`
	Summary      TaxSummaryTotalsResponse `json:"summary"`
	TaxBreakdown TaxBreakdownResponse     `json:"taxBreakdown"`
	Analysis     TaxAnalysisResponse      `json:"analysis"`
}

func FromTaxSummary(s entities.TaxSummary) TaxSummaryResponse {
	period := PeriodResponse{StartDate: notApplicable, EndDate: notApplicable}
	if s.Period.StartDate != nil {
		period.StartDate = s.Period.StartDate.Format(analytics.DateLayout)
	}
	if s.Period.EndDate != nil {
		period.EndDate = s.Period.EndDate.Format(analytics.DateLayout)
	}

	return TaxSummaryResponse{
		Period: period,
		Summary: TaxSummaryTotalsResponse{
			TotalQuotations: s.Summary.TotalQuotations,
			TotalSubtotal:   money.ToFloat(s.Summary.TotalSubtotal),
			TotalDiscounts:  money.ToFloat(s.Summary.TotalDiscounts),
			TotalRevenue:    money.ToFloat(s.Summary.TotalRevenue),
		},
		TaxBreakdown: TaxBreakdownResponse{
			IVAAmount:     money.ToFloat(s.TaxBreakdown.IVAAmount),
			ServiceAmount: money.ToFloat(s.TaxBreakdown.ServiceAmount),
			OtherAmount:   money.ToFloat(s.TaxBreakdown.OtherAmount),
			TotalTaxes:    money.ToFloat(s.TaxBreakdown.TotalTaxes),
		},
		Analysis: TaxAnalysisResponse{
			AverageTaxRate: money.ToFloat(s.Analysis.AverageTaxRate),
			NetRevenue:     money.ToFloat(s.Analysis.NetRevenue),
		},
	}
}
