package handlers

import (
	"errors"
	"net/http"
	"strconv"

	response "github.com/aicedeno1/quotations-business-rules/internal/adapter/http/dto/response"
	"github.com/aicedeno1/quotations-business-rules/internal/domain/analytics"
	"github.com/aicedeno1/quotations-business-rules/internal/domain/entities"
	"github.com/aicedeno1/quotations-business-rules/internal/infrastructure/metrics"
	"github.com/aicedeno1/quotations-business-rules/internal/usecase"
	"github.com/aicedeno1/quotations-business-rules/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	ReportRevenue       = "revenue-analysis"
	ReportDiscount      = "discount-analysis"
	ReportProfitability = "profitability-by-chef"
	ReportTaxSummary    = "tax-summary"
)

// ReportHandler serves the read-only quotation reports.

type ReportHandler struct {
	usecase usecase.IReportUseCase
	metrics *metrics.Recorder
}

// NewReportHandler accepts a nil recorder when metrics are disabled.
func NewReportHandler(uc usecase.IReportUseCase, rec *metrics.Recorder) *ReportHandler {
	return &ReportHandler{usecase: uc, metrics: rec}
}

// RevenueAnalysis godoc
// @Summary      Revenue analysis
// @Description  Total and average final amount over all quotations, or completed ones only.
// @Tags         reports
// @Produce      json
// @Param        scope  query     string  false  "all (default) or completed"
// @Success      200    {object}  response.RevenueAnalysisResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      500    {object}  pkg.HTTPError
// @Router       /quotations/revenue-analysis [get]
func (h *ReportHandler) RevenueAnalysis(c *gin.Context) {
	scope := entities.RevenueScope(c.Query("scope"))

	result, err := h.usecase.RevenueAnalysis(c.Request.Context(), scope)
	if err != nil {
		h.fail(c, ReportRevenue, err)
		return
	}
	h.ok(c, ReportRevenue, response.FromRevenueAnalysis(result))
}

// DiscountAnalysis godoc
// @Summary      Discount analysis
// @Description  Financial impact of the discount applied to one quotation.
// @Tags         reports
// @Produce      json
// @Param        id   path      int  true  "Quotation id"
// @Success      200  {object}  response.DiscountAnalysisResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /quotations/{id}/discount-analysis [get]
func (h *ReportHandler) DiscountAnalysis(c *gin.Context) {
	id, err := parseQuotationID(c.Param("id"))
	if err != nil {
		h.fail(c, ReportDiscount, err)
		return
	}

	result, err := h.usecase.DiscountAnalysis(c.Request.Context(), id)
	if err != nil {
		h.fail(c, ReportDiscount, err)
		return
	}
	h.ok(c, ReportDiscount, response.FromDiscountAnalysis(result))
}

// ProfitabilityByChef godoc
// @Summary      Profitability by chef
// @Description  Per-chef totals and status counts, ordered by revenue descending.
// @Tags         reports
// @Produce      json
// @Success      200  {array}   response.ChefProfitabilityResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /quotations/profitability-by-chef [get]
func (h *ReportHandler) ProfitabilityByChef(c *gin.Context) {
	result, err := h.usecase.ChefProfitability(c.Request.Context())
	if err != nil {
		h.fail(c, ReportProfitability, err)
		return
	}
	h.ok(c, ReportProfitability, response.FromChefProfitability(result))
}

// TaxSummary godoc
// @Summary      Tax summary
// @Description  Tax totals over quotations created within an optional inclusive date range.
// @Tags         reports
// @Produce      json
// @Param        startDate  query     string  false  "YYYY-MM-DD"
// @Param        endDate    query     string  false  "YYYY-MM-DD"
// @Success      200        {object}  response.TaxSummaryResponse
// @Failure      400        {object}  pkg.HTTPError
// @Failure      500        {object}  pkg.HTTPError
// @Router       /quotations/tax-summary [get]
func (h *ReportHandler) TaxSummary(c *gin.Context) {
	result, err := h.usecase.TaxSummary(c.Request.Context(), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		h.fail(c, ReportTaxSummary, err)
		return
	}
	h.ok(c, ReportTaxSummary, response.FromTaxSummary(result))
}

func (h *ReportHandler) ok(c *gin.Context, report string, body any) {
	h.metrics.ObserveReport(report, metrics.OutcomeOK)
	c.JSON(http.StatusOK, body)
}

func (h *ReportHandler) fail(c *gin.Context, report string, err error) {
	appErr := mapReportError(err)
	h.metrics.ObserveReport(report, outcomeFor(appErr.HTTPStatus))

	ev := zerolog.Ctx(c.Request.Context()).Warn()
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		ev = zerolog.Ctx(c.Request.Context()).Error()
	}
	ev.Str("layer", "handler").Str("report", report).Err(err).Msg("report failed")

	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func parseQuotationID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &analytics.InvalidArgumentError{Field: "id", Value: raw, Reason: "must be a positive integer"}
	}
	return id, nil
}

func outcomeFor(status int) string {
	switch {
	case status == http.StatusNotFound:
		return metrics.OutcomeNotFound
	case status >= http.StatusInternalServerError:
		return metrics.OutcomeError
	default:
		return metrics.OutcomeClientError
	}
}

func mapReportError(err error) *pkg.AppError {
	var argErr *analytics.InvalidArgumentError
	var notFound *analytics.QuotationNotFoundError

	switch {
	case errors.As(err, &argErr):
		return pkg.NewDomainError("INVALID_REQUEST", argErr.Error(), err, http.StatusBadRequest).
			WithDetail("field", argErr.Field).
			WithDetail("value", argErr.Value)
	case errors.As(err, &notFound):
		return pkg.NewDomainError("QUOTATION_NOT_FOUND", notFound.Error(), err, http.StatusNotFound).
			WithDetail("quotationId", notFound.QuotationID)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
