package usecase

import (
	"context"

	"github.com/aicedeno1/quotations-business-rules/internal/domain/analytics"
	"github.com/aicedeno1/quotations-business-rules/internal/domain/entities"
	"github.com/aicedeno1/quotations-business-rules/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

//go:generate mockgen -destination=../adapter/http/handlers/mocks/mock_usecases.go -package=mocks github.com/aicedeno1/quotations-business-rules/internal/usecase IReportUseCase,IQuotationUseCase

// IReportUseCase exposes the four quotation reports.
//
// Each operation validates its input, performs exactly one store call and
// then computes the payload synchronously from that snapshot:
//   - revenue analysis => ListAll
//   - discount analysis => GetByID
//   - profitability by chef => ListAll
//   - tax summary => ListAll

type IReportUseCase interface {
	RevenueAnalysis(ctx context.Context, scope entities.RevenueScope) (entities.RevenueAnalysis, error)
	DiscountAnalysis(ctx context.Context, quotationID int64) (entities.DiscountAnalysis, error)
	ChefProfitability(ctx context.Context) ([]entities.ChefProfitability, error)
	TaxSummary(ctx context.Context, startDate, endDate string) (entities.TaxSummary, error)
}

type ReportUseCase struct {
	repo interfaces.IQuotationReader
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(repo interfaces.IQuotationReader) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

func (u *ReportUseCase) RevenueAnalysis(ctx context.Context, scope entities.RevenueScope) (entities.RevenueAnalysis, error) {
	if scope == "" {
		scope = entities.RevenueScopeAll
	}
	if !scope.Valid() {
		return entities.RevenueAnalysis{}, &analytics.InvalidArgumentError{
			Field:  "scope",
			Value:  string(scope),
			Reason: "expected all or completed",
		}
	}

	quotations, err := u.repo.ListAll(ctx)
	if err != nil {
		return entities.RevenueAnalysis{}, err
	}
	zerolog.Ctx(ctx).Debug().Str("report", "revenue").Str("scope", string(scope)).Int("quotations", len(quotations)).Msg("snapshot loaded")

	return analytics.Revenue(quotations, scope), nil
}

func (u *ReportUseCase) DiscountAnalysis(ctx context.Context, quotationID int64) (entities.DiscountAnalysis, error) {
	if quotationID <= 0 {
		return entities.DiscountAnalysis{}, invalidID(quotationID)
	}

	q, err := u.repo.GetByID(ctx, quotationID)
	if err != nil {
		return entities.DiscountAnalysis{}, err
	}
	if q.ID == 0 {
		return entities.DiscountAnalysis{}, &analytics.QuotationNotFoundError{QuotationID: quotationID}
	}

	return analytics.Discount(q), nil
}

func (u *ReportUseCase) ChefProfitability(ctx context.Context) ([]entities.ChefProfitability, error) {
	quotations, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Debug().Str("report", "profitability-by-chef").Int("quotations", len(quotations)).Msg("snapshot loaded")

	return analytics.ChefProfitability(quotations), nil
}

func (u *ReportUseCase) TaxSummary(ctx context.Context, startDate, endDate string) (entities.TaxSummary, error) {
	period, err := analytics.ParseDateRange(startDate, endDate)
	if err != nil {
		return entities.TaxSummary{}, err
	}

	quotations, err := u.repo.ListAll(ctx)
	if err != nil {
		return entities.TaxSummary{}, err
	}
	zerolog.Ctx(ctx).Debug().Str("report", "tax-summary").Int("quotations", len(quotations)).Msg("snapshot loaded")

	return analytics.TaxSummary(quotations, period), nil
}
