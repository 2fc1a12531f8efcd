package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type mortgageHandler struct {
	mortgageService portssvc.MortgageSvc
}

func registerMortgageRoutes(rg *gin.RouterGroup, mortgageService portssvc.MortgageSvc) {
	h := &mortgageHandler{mortgageService: mortgageService}

	rg.POST("/properties/:id/mortgages", h.addMortgage)
	rg.GET("/properties/:id/mortgages", h.listMortgages)

	mortgages := rg.Group("/mortgages")
	{
		mortgages.POST("/:id/payments", h.recordPayment)
		mortgages.GET("/:id/payments", h.paymentHistory)
		mortgages.POST("/:id/rates", h.addRate)
		mortgages.GET("/:id/rates", h.rateHistory)
	}
}

// addMortgage godoc
// @Summary Add a mortgage to a property
// @Description Creates a liability account unless liabilityAccountID points at an existing one. No opening balance is posted.
// @Tags mortgages
// @Accept json
// @Produce json
// @Param id path int true "Property ID"
// @Param mortgage body dto.AddMortgageRequest true "Mortgage"
// @Success 201 {object} domain.Mortgage
// @Security BearerAuth
// @Router /properties/{id}/mortgages [post]
func (h *mortgageHandler) addMortgage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID, err := pathID(c, "id")
	if err != nil {
		respondError(c, logger, "Invalid property ID", err)
		return
	}
	var req dto.AddMortgageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, "AddMortgage request", err)
		return
	}
	mortgage, err := h.mortgageService.AddMortgage(c.Request.Context(), propertyID, req)
	if err != nil {
		respondError(c, logger, "Failed to add mortgage", err)
		return
	}
	logger.Info("Mortgage added", slog.Int64("property_id", propertyID), slog.Int64("mortgage_id", mortgage.ID))
	c.JSON(http.StatusCreated, mortgage)
}

// listMortgages godoc
// @Summary List a property's mortgages
// @Tags mortgages
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {array} domain.Mortgage
// @Security BearerAuth
// @Router /properties/{id}/mortgages [get]
func (h *mortgageHandler) listMortgages(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID, err := pathID(c, "id")
	if err != nil {
		respondError(c, logger, "Invalid property ID", err)
		return
	}
	mortgages, err := h.mortgageService.ListMortgages(c.Request.Context(), propertyID)
	if err != nil {
		respondError(c, logger, "Failed to list mortgages", err)
		return
	}
	c.JSON(http.StatusOK, mortgages)
}

// recordPayment godoc
// @Summary Record a mortgage payment
// @Description Principal reduces the liability and the payer's capital; interest is booked as an expense
// @Tags mortgages
// @Accept json
// @Produce json
// @Param id path int true "Mortgage ID"
// @Param payment body dto.MortgagePaymentRequest true "Payment"
// @Success 201 {object} domain.MortgagePayment
// @Failure 400 {object} map[string]string "Principal and interest do not add up to the total"
// @Security BearerAuth
// @Router /mortgages/{id}/payments [post]
func (h *mortgageHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	mortgageID, err := pathID(c, "id")
	if err != nil {
		respondError(c, logger, "Invalid mortgage ID", err)
		return
	}
	var req dto.MortgagePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, "MortgagePayment request", err)
		return
	}
	payment, err := h.mortgageService.RecordPayment(c.Request.Context(), mortgageID, req)
	if err != nil {
		respondError(c, logger, "Failed to record mortgage payment", err)
		return
	}
	logger.Info("Mortgage payment recorded", slog.Int64("mortgage_id", mortgageID), slog.String("total", req.Total.StringFixed(2)))
	c.JSON(http.StatusCreated, payment)
}

// paymentHistory godoc
// @Summary Mortgage payment history
// @Tags mortgages
// @Produce json
// @Param id path int true "Mortgage ID"
// @Success 200 {array} dto.JournalEntryResponse
// @Security BearerAuth
// @Router /mortgages/{id}/payments [get]
func (h *mortgageHandler) paymentHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	mortgageID, err := pathID(c, "id")
	if err != nil {
		respondError(c, logger, "Invalid mortgage ID", err)
		return
	}
	items, err := h.mortgageService.GetPaymentHistory(c.Request.Context(), mortgageID)
	if err != nil {
		respondError(c, logger, "Failed to load payment history", err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryListResponses(items))
}

// addRate godoc
// @Summary Add an interest rate change
// @Tags mortgages
// @Accept json
// @Produce json
// @Param id path int true "Mortgage ID"
// @Param rate body dto.AddMortgageRateRequest true "Rate"
// @Success 201 {object} domain.MortgageRate
// @Security BearerAuth
// @Router /mortgages/{id}/rates [post]
func (h *mortgageHandler) addRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	mortgageID, err := pathID(c, "id")
	if err != nil {
		respondError(c, logger, "Invalid mortgage ID", err)
		return
	}
	var req dto.AddMortgageRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, "AddMortgageRate request", err)
		return
	}
	rate, err := h.mortgageService.AddRate(c.Request.Context(), mortgageID, req)
	if err != nil {
		respondError(c, logger, "Failed to add mortgage rate", err)
		return
	}
	c.JSON(http.StatusCreated, rate)
}

// rateHistory godoc
// @Summary Mortgage rate history
// @Tags mortgages
// @Produce json
// @Param id path int true "Mortgage ID"
// @Success 200 {array} domain.MortgageRate
// @Security BearerAuth
// @Router /mortgages/{id}/rates [get]
func (h *mortgageHandler) rateHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	mortgageID, err := pathID(c, "id")
	if err != nil {
		respondError(c, logger, "Invalid mortgage ID", err)
		return
	}
	rates, err := h.mortgageService.RateHistory(c.Request.Context(), mortgageID)
	if err != nil {
		respondError(c, logger, "Failed to load rate history", err)
		return
	}
	c.JSON(http.StatusOK, rates)
}
