package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// allocationHandler records shared property income and expenses.
type allocationHandler struct {
	allocationService portssvc.AllocationSvc
}

func registerAllocationRoutes(rg *gin.RouterGroup, allocationService portssvc.AllocationSvc) {
	h := &allocationHandler{allocationService: allocationService}

	properties := rg.Group("/properties/:id")
	{
		properties.GET("/allocation-rules", h.getRules)
		properties.POST("/allocation-rules", h.setRule)
		properties.PUT("/allocation-rules", h.setSplit)
		properties.POST("/rental-income", h.rentalIncome)
		properties.POST("/expenses", h.propertyExpense)
	}
}

// getRules godoc
// @Summary List allocation rules
// @Tags allocation
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {array} domain.ExpenseAllocationRule
// @Security BearerAuth
// @Router /properties/{id}/allocation-rules [get]
func (h *allocationHandler) getRules(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID, err := pathID(c, "id")
	if err != nil {
		respondError(c, logger, "Invalid property ID", err)
		return
	}
	rules, err := h.allocationService.GetAllocationRules(c.Request.Context(), propertyID)
	if err != nil {
		respondError(c, logger, "Failed to list allocation rules", err)
		return
	}
	c.JSON(http.StatusOK, rules)
}

// setRule godoc
// @Summary Set one owner's allocation
// @Description Upserts the owner's percentage for an expense type ("all" when omitted)
// @Tags allocation
// @Accept json
// @Produce json
// @Param id path int true "Property ID"
// @Param rule body dto.AllocationRuleRequest true "Rule"
// @Success 200 {object} domain.ExpenseAllocationRule
// @Security BearerAuth
// @Router /properties/{id}/allocation-rules [post]
func (h *allocationHandler) setRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID, err := pathID(c, "id")
	if err != nil {
		respondError(c, logger, "Invalid property ID", err)
		return
	}
	var req dto.AllocationRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, "AllocationRule request", err)
		return
	}
	rule, err := h.allocationService.SetAllocationRule(c.Request.Context(), propertyID, req)
	if err != nil {
		respondError(c, logger, "Failed to set allocation rule", err)
		return
	}
	c.JSON(http.StatusOK, rule)
}

// setSplit godoc
// @Summary Replace the allocation split
// @Description Sets every owner's percentage for an expense type at once. The percentages must add up to 100.
// @Tags allocation
// @Accept json
// @Produce json
// @Param id path int true "Property ID"
// @Param split body dto.AllocationSplitRequest true "Split"
// @Success 200 {array} domain.ExpenseAllocationRule
// @Failure 400 {object} map[string]string "Percentages do not add up to 100"
// @Security BearerAuth
// @Router /properties/{id}/allocation-rules [put]
func (h *allocationHandler) setSplit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID, err := pathID(c, "id")
	if err != nil {
		respondError(c, logger, "Invalid property ID", err)
		return
	}
	var req dto.AllocationSplitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, "AllocationSplit request", err)
		return
	}
	rules, err := h.allocationService.SetAllocationRules(c.Request.Context(), propertyID, req)
	if err != nil {
		respondError(c, logger, "Failed to set allocation split", err)
		return
	}
	c.JSON(http.StatusOK, rules)
}

// rentalIncome godoc
// @Summary Record rental income
// @Description Posts the rent and credits each owner's capital by their allocation
// @Tags allocation
// @Accept json
// @Produce json
// @Param id path int true "Property ID"
// @Param income body dto.RentalIncomeRequest true "Income"
// @Success 201 {object} domain.AllocationResult
// @Security BearerAuth
// @Router /properties/{id}/rental-income [post]
func (h *allocationHandler) rentalIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID, err := pathID(c, "id")
	if err != nil {
		respondError(c, logger, "Invalid property ID", err)
		return
	}
	var req dto.RentalIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, "RentalIncome request", err)
		return
	}
	result, err := h.allocationService.RecordRentalIncome(c.Request.Context(), propertyID, req)
	if err != nil {
		respondError(c, logger, "Failed to record rental income", err)
		return
	}
	logger.Info("Rental income recorded", slog.Int64("property_id", propertyID), slog.String("amount", req.Amount.StringFixed(2)))
	c.JSON(http.StatusCreated, result)
}

// propertyExpense godoc
// @Summary Record a shared property expense
// @Description Posts the expense and debits each owner's capital by their allocation
// @Tags allocation
// @Accept json
// @Produce json
// @Param id path int true "Property ID"
// @Param expense body dto.PropertyExpenseRequest true "Expense"
// @Success 201 {object} domain.AllocationResult
// @Security BearerAuth
// @Router /properties/{id}/expenses [post]
func (h *allocationHandler) propertyExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID, err := pathID(c, "id")
	if err != nil {
		respondError(c, logger, "Invalid property ID", err)
		return
	}
	var req dto.PropertyExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, "PropertyExpense request", err)
		return
	}
	result, err := h.allocationService.RecordPropertyExpense(c.Request.Context(), propertyID, req)
	if err != nil {
		respondError(c, logger, "Failed to record property expense", err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
