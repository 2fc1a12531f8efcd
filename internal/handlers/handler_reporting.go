package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves the read-only balance projections.
type reportingHandler struct {
	balanceService portssvc.BalanceSvc
}

func registerReportingRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvc) {
	h := &reportingHandler{balanceService: balanceService}

	rg.GET("/balances", h.accountBalances)
	reports := rg.Group("/reports")
	{
		reports.GET("/monthly-spending", h.monthlySpending)
		reports.GET("/category-balances", h.categoryBalances)
	}
}

// accountBalances godoc
// @Summary Balances of every account
// @Description One row per account, zero balances included. The amounts sum to zero.
// @Tags reports
// @Produce json
// @Success 200 {array} domain.AccountBalance
// @Security BearerAuth
// @Router /balances [get]
func (h *reportingHandler) accountBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	balances, err := h.balanceService.AccountBalances(c.Request.Context())
	if err != nil {
		respondError(c, logger, "Failed to load account balances", err)
		return
	}
	c.JSON(http.StatusOK, balances)
}

// monthlySpending godoc
// @Summary Monthly spending by category
// @Tags reports
// @Produce json
// @Param startDate query string false "Earliest entry date (YYYY-MM-DD)"
// @Param endDate query string false "Latest entry date (YYYY-MM-DD)"
// @Success 200 {array} domain.MonthlySpending
// @Failure 400 {object} map[string]string "Invalid date"
// @Security BearerAuth
// @Router /reports/monthly-spending [get]
func (h *reportingHandler) monthlySpending(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dateRange, err := queryDateRange(c)
	if err != nil {
		respondError(c, logger, "Invalid date range", err)
		return
	}
	spending, err := h.balanceService.MonthlySpending(c.Request.Context(), dateRange)
	if err != nil {
		respondError(c, logger, "Failed to load monthly spending", err)
		return
	}
	c.JSON(http.StatusOK, spending)
}

// categoryBalances godoc
// @Summary Spending totals by category
// @Tags reports
// @Produce json
// @Success 200 {array} domain.CategoryBalance
// @Security BearerAuth
// @Router /reports/category-balances [get]
func (h *reportingHandler) categoryBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	balances, err := h.balanceService.CategoryBalances(c.Request.Context())
	if err != nil {
		respondError(c, logger, "Failed to load category balances", err)
		return
	}
	c.JSON(http.StatusOK, balances)
}
