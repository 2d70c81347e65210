package response

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/aicedeno1/quotations-business-rules/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromRevenueAnalysis_RoundsToCents(t *testing.T) {
	res := FromRevenueAnalysis(entities.RevenueAnalysis{
		Scope:                 entities.RevenueScopeAll,
		TotalRevenue:          decimal.RequireFromString("154.115"),
		AverageQuotationValue: decimal.RequireFromString("51.371666"),
		TotalQuotations:       3,
	})
	if res.TotalRevenue != 154.12 || res.AverageQuotationValue != 51.37 || res.TotalQuotations != 3 || res.Scope != "all" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
}

func TestFromDiscountAnalysis(t *testing.T) {
	t.Run("no discount renders N/A", func(t *testing.T) {
		res := FromDiscountAnalysis(entities.DiscountAnalysis{QuotationID: 3, OriginalSubtotal: decimal.NewFromInt(20)})
		if res.DiscountType != "N/A" || res.DiscountAmount != 0 || res.OriginalSubtotal != 20 {
			t.Fatalf("unexpected mapped fields: %+v", res)
		}
	})

	t.Run("with discount", func(t *testing.T) {
		res := FromDiscountAnalysis(entities.DiscountAnalysis{
			QuotationID:        1,
			DiscountType:       "percentage",
			DiscountValue:      decimal.NewFromInt(10),
			DiscountAmount:     decimal.NewFromInt(10),
			DiscountPercentage: decimal.NewFromInt(10),
			FinalTotal:         decimal.NewFromInt(108),
			SavingsForClient:   decimal.NewFromInt(12),
			ProfitMarginLost:   decimal.NewFromInt(10),
		})
		if res.DiscountType != "percentage" || res.FinalTotal != 108 || res.SavingsForClient != 12 || res.ProfitMarginLost != 10 {
			t.Fatalf("unexpected mapped fields: %+v", res)
		}
	})
}

func TestFromChefProfitability(t *testing.T) {
	t.Run("empty encodes as array", func(t *testing.T) {
		raw, err := json.Marshal(FromChefProfitability(nil))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(raw) != "[]" {
			t.Fatalf("expected [], got %s", raw)
		}
	})

	t.Run("keeps order", func(t *testing.T) {
		res := FromChefProfitability([]entities.ChefProfitability{
			{ChefID: 9, TotalRevenue: decimal.NewFromInt(300), TotalQuotations: 1, CompletedQuotations: 1, SuccessRate: decimal.NewFromInt(100)},
			{ChefID: 2, TotalRevenue: decimal.NewFromInt(100), TotalQuotations: 3, SuccessRate: decimal.RequireFromString("33.333333")},
		})
		if len(res) != 2 || res[0].ChefID != 9 || res[1].ChefID != 2 || res[1].SuccessRate != 33.33 {
			t.Fatalf("unexpected mapped fields: %+v", res)
		}
	})
}

func TestFromTaxSummary(t *testing.T) {
	t.Run("open period", func(t *testing.T) {
		res := FromTaxSummary(entities.TaxSummary{})
		if res.Period.StartDate != "N/A" || res.Period.EndDate != "N/A" {
			t.Fatalf("unexpected period: %+v", res.Period)
		}
	})

	t.Run("nested payload", func(t *testing.T) {
		start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
		res := FromTaxSummary(entities.TaxSummary{
			Period:       entities.DateRange{StartDate: &start, EndDate: &end},
			Summary:      entities.TaxSummaryTotals{TotalQuotations: 2, TotalRevenue: decimal.RequireFromString("154.115")},
			TaxBreakdown: entities.TaxBreakdown{IVAAmount: decimal.RequireFromString("19.515"), TotalTaxes: decimal.RequireFromString("24.015")},
			Analysis:     entities.TaxAnalysis{NetRevenue: decimal.RequireFromString("130.1")},
		})
		if res.Period.StartDate != "2026-01-01" || res.Period.EndDate != "2026-01-31" {
			t.Fatalf("unexpected period: %+v", res.Period)
		}
		if res.Summary.TotalRevenue != 154.12 || res.TaxBreakdown.IVAAmount != 19.52 || res.TaxBreakdown.TotalTaxes != 24.02 || res.Analysis.NetRevenue != 130.1 {
			t.Fatalf("unexpected mapped fields: %+v", res)
		}

		raw, err := json.Marshal(res)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var decoded map[string]map[string]any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, key := range []string{"period", "summary", "taxBreakdown", "analysis"} {
			if _, ok := decoded[key]; !ok {
				t.Fatalf("missing %s section in %s", key, raw)
			}
		}
	})
}
