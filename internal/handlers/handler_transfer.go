package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type transferHandler struct {
	transferService portssvc.TransferSvc
}

func registerTransferRoutes(rg *gin.RouterGroup, transferService portssvc.TransferSvc) {
	h := &transferHandler{transferService: transferService}

	rg.POST("/transfers", h.transferEquity)
	rg.GET("/transfers", h.listTransfers)
}

// transferEquity godoc
// @Summary Transfer equity between properties
// @Description Moves an owner's capital from one property to another in a single entry
// @Tags transfers
// @Accept json
// @Produce json
// @Param transfer body dto.TransferEquityRequest true "Transfer"
// @Success 201 {object} domain.PropertyTransfer
// @Failure 400 {object} map[string]string "Same property on both sides or non-positive amount"
// @Failure 422 {object} map[string]string "Owner has less equity than the amount"
// @Security BearerAuth
// @Router /transfers [post]
func (h *transferHandler) transferEquity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TransferEquityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, "TransferEquity request", err)
		return
	}
	transfer, err := h.transferService.TransferEquity(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, "Failed to transfer equity", err)
		return
	}
	logger.Info("Equity transferred",
		slog.Int64("owner_id", req.OwnerID),
		slog.Int64("from_property_id", req.FromPropertyID),
		slog.Int64("to_property_id", req.ToPropertyID),
		slog.String("amount", req.Amount.StringFixed(2)),
	)
	c.JSON(http.StatusCreated, transfer)
}

// listTransfers godoc
// @Summary List equity transfers
// @Tags transfers
// @Produce json
// @Param propertyID query int false "Property on either side of the transfer"
// @Param ownerID query int false "Owner"
// @Success 200 {array} domain.PropertyTransfer
// @Security BearerAuth
// @Router /transfers [get]
func (h *transferHandler) listTransfers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var (
		filter domain.TransferFilter
		err    error
	)
	if filter.PropertyID, err = optionalQueryID(c, "propertyID"); err != nil {
		respondError(c, logger, "Invalid propertyID", err)
		return
	}
	if filter.OwnerID, err = optionalQueryID(c, "ownerID"); err != nil {
		respondError(c, logger, "Invalid ownerID", err)
		return
	}
	transfers, err := h.transferService.GetTransfers(c.Request.Context(), filter)
	if err != nil {
		respondError(c, logger, "Failed to list transfers", err)
		return
	}
	c.JSON(http.StatusOK, transfers)
}
