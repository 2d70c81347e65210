// Package analytics derives report payloads from a snapshot of quotations.
//
// Every function here is pure: it reads the slice it is given, never
// mutates it, never logs and never touches shared state, so any number of
// reports may be computed concurrently.
package analytics

import (
	"github.com/aicedeno1/quotations-business-rules/internal/domain/entities"
	"github.com/aicedeno1/quotations-business-rules/internal/domain/money"

	"github.com/shopspring/decimal"
)

// Revenue sums the final totals of the quotations selected by scope.
// Records with an unknown status never count. An empty scope means
// RevenueScopeAll.
func Revenue(quotations []entities.Quotation, scope entities.RevenueScope) entities.RevenueAnalysis {
	if scope == "" {
		scope = entities.RevenueScopeAll
	}

	total := decimal.Zero
	count := 0
	for _, q := range quotations {
		if !inRevenueScope(q, scope) {
			continue
		}
		total = total.Add(q.FinalTotal())
		count++
	}

	return entities.RevenueAnalysis{
		Scope:                 scope,
		TotalRevenue:          total,
		AverageQuotationValue: money.Ratio(total, count),
		TotalQuotations:       count,
	}
}

func inRevenueScope(q entities.Quotation, scope entities.RevenueScope) bool {
	if !q.Status.Valid() {
		return false
	}
	if scope == entities.RevenueScopeCompleted {
		return q.Status == entities.QuotationStatusCompleted
	}
	return true
}
