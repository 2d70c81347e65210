package analytics

import (
	"slices"

	"github.com/aicedeno1/quotations-business-rules/internal/domain/entities"
	"github.com/aicedeno1/quotations-business-rules/internal/domain/money"

	"github.com/shopspring/decimal"
)

type chefAccumulator struct {
	revenue decimal.Decimal
	total   int
	byState map[entities.QuotationStatus]int
}

// ChefProfitability groups quotations by chef in a single pass.
//
// Unassigned quotations and quotations with an unknown status are left out.
// Revenue counts the final total of every status, realized or not. The result
// is ordered by revenue descending, then chef id ascending.
func ChefProfitability(quotations []entities.Quotation) []entities.ChefProfitability {
	groups := make(map[int64]*chefAccumulator)
	for _, q := range quotations {
		if q.ChefID == nil || !q.Status.Valid() {
			continue
		}
		acc, ok := groups[*q.ChefID]
		if !ok {
			acc = &chefAccumulator{revenue: decimal.Zero, byState: make(map[entities.QuotationStatus]int, 4)}
			groups[*q.ChefID] = acc
		}
		acc.total++
		acc.byState[q.Status]++
		acc.revenue = acc.revenue.Add(q.FinalTotal())
	}

	out := make([]entities.ChefProfitability, 0, len(groups))
	for chefID, acc := range groups {
		completed := acc.byState[entities.QuotationStatusCompleted]
		out = append(out, entities.ChefProfitability{
			ChefID:                chefID,
			TotalQuotations:       acc.total,
			TotalRevenue:          acc.revenue,
			AverageQuotationValue: money.Ratio(acc.revenue, acc.total),
			ApprovedQuotations:    acc.byState[entities.QuotationStatusApproved],
			PendingQuotations:     acc.byState[entities.QuotationStatusPending],
			CancelledQuotations:   acc.byState[entities.QuotationStatusCancelled],
			CompletedQuotations:   completed,
			SuccessRate:           money.Percent(decimal.NewFromInt(int64(completed)), decimal.NewFromInt(int64(acc.total))),
		})
	}

	slices.SortFunc(out, func(a, b entities.ChefProfitability) int {
		if c := b.TotalRevenue.Cmp(a.TotalRevenue); c != 0 {
			return c
		}
		switch {
		case a.ChefID < b.ChefID:
			return -1
		case a.ChefID > b.ChefID:
			return 1
		}
		return 0
	})
	return out
}
