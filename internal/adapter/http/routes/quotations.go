package routes

import (
	"github.com/aicedeno1/quotations-business-rules/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotations = "/quotations"
)

func addQuotationRoutes(rg *gin.RouterGroup, reportHandler *handlers.ReportHandler, quotationHandler *handlers.QuotationHandler) {
	quotations := rg.Group(PathQuotations)
	{
		// Reports. Static segments are registered before /:id.
		quotations.GET("/revenue-analysis", reportHandler.RevenueAnalysis)
		quotations.GET("/profitability-by-chef", reportHandler.ProfitabilityByChef)
		quotations.GET("/tax-summary", reportHandler.TaxSummary)
		quotations.GET("/:id/discount-analysis", reportHandler.DiscountAnalysis)

		// Lifecycle.
		quotations.POST("", quotationHandler.CreateQuotation)
		quotations.GET("/:id", quotationHandler.GetQuotation)
		quotations.PATCH("/:id/approve", quotationHandler.ApproveQuotation)
		quotations.PATCH("/:id/cancel", quotationHandler.CancelQuotation)
		quotations.PATCH("/:id/complete", quotationHandler.CompleteQuotation)
	}
}
