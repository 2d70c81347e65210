package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

type endpoint struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

var endpoints = []endpoint{
	{http.MethodGet, "/", "List available endpoints"},
	{http.MethodGet, "/v1/ping", "Health check"},
	{http.MethodGet, "/v1/quotations/revenue-analysis", "Total and average quotation revenue (optional: ?scope=all|completed)"},
	{http.MethodGet, "/v1/quotations/:id/discount-analysis", "Discount impact for one quotation"},
	{http.MethodGet, "/v1/quotations/profitability-by-chef", "Profitability grouped by chef"},
	{http.MethodGet, "/v1/quotations/tax-summary", "Tax summary (optional: ?startDate=YYYY-MM-DD&endDate=YYYY-MM-DD)"},
	{http.MethodPost, "/v1/quotations", "Register a quotation"},
	{http.MethodGet, "/v1/quotations/:id", "Fetch a quotation"},
	{http.MethodPatch, "/v1/quotations/:id/approve", "Approve a pending quotation"},
	{http.MethodPatch, "/v1/quotations/:id/cancel", "Cancel a pending or approved quotation"},
	{http.MethodPatch, "/v1/quotations/:id/complete", "Complete an approved quotation"},
}

func addHomeRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":   "Quotations Business Rules API",
			"version":   "1.0.0",
			"endpoints": endpoints,
		})
	})
}
