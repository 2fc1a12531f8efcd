package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// propertyHandler serves properties, owners, valuations and equity.
type propertyHandler struct {
	propertyService portssvc.PropertySvcFacade
	equityService   portssvc.EquitySvc
}

// OwnerEquityTotalResponse is an owner's equity summed across properties.
type OwnerEquityTotalResponse struct {
	OwnerID     int64           `json:"ownerID"`
	TotalEquity decimal.Decimal `json:"totalEquity"`
}

func registerPropertyRoutes(rg *gin.RouterGroup, propertyService portssvc.PropertySvcFacade, equityService portssvc.EquitySvc) {
	h := &propertyHandler{propertyService: propertyService, equityService: equityService}

	properties := rg.Group("/properties")
	{
		properties.POST("", h.createProperty)
		properties.GET("", h.listProperties)
		properties.GET("/equity", h.allEquity)
		properties.GET("/:id", h.getProperty)
		properties.GET("/:id/summary", h.propertySummary)
		properties.GET("/:id/equity", h.propertyEquity)
		properties.POST("/:id/equity/snapshots", h.snapshotEquity)
		properties.POST("/:id/owners", h.addOwnership)
		properties.GET("/:id/owners", h.listOwnership)
		properties.POST("/:id/valuations", h.addValuation)
		properties.GET("/:id/valuations", h.listValuations)
	}

	owners := rg.Group("/owners")
	{
		owners.POST("", h.createOwner)
		owners.GET("", h.listOwners)
		owners.GET("/:id/equity", h.ownerTotalEquity)
	}
}

// createProperty godoc
// @Summary Create a property
// @Description Creates the property and its asset account
// @Tags properties
// @Accept json
// @Produce json
// @Param property body dto.CreatePropertyRequest true "Property"
// @Success 201 {object} domain.Property
// @Failure 409 {object} map[string]string "Property name taken"
// @Security BearerAuth
// @Router /properties [post]
func (h *propertyHandler) createProperty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, "CreateProperty request", err)
		return
	}
	property, err := h.propertyService.CreateProperty(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, "Failed to create property", err)
		return
	}
	logger.Info("Property created", slog.Int64("property_id", property.ID), slog.String("name", property.Name))
	c.JSON(http.StatusCreated, property)
}

// listProperties godoc
// @Summary List properties
// @Tags properties
// @Produce json
// @Success 200 {array} domain.Property
// @Security BearerAuth
// @Router /properties [get]
func (h *propertyHandler) listProperties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	properties, err := h.propertyService.ListProperties(c.Request.Context())
	if err != nil {
		respondError(c, logger, "Failed to list properties", err)
		return
	}
	c.JSON(http.StatusOK, properties)
}

// getProperty godoc
// @Summary Get a property
// @Tags properties
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} domain.Property
// @Failure 404 {object} map[string]string "Property not found"
// @Security BearerAuth
// @Router /properties/{id} [get]
func (h *propertyHandler) getProperty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, logger, "Invalid property ID", err)
		return
	}
	property, err := h.propertyService.GetProperty(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, "Failed to get property", err)
		return
	}
	c.JSON(http.StatusOK, property)
}

// propertySummary godoc
// @Summary Property summary
// @Description Latest valuation, outstanding mortgage balance, net equity and each owner's share
// @Tags equity
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} domain.PropertySummary
// @Security BearerAuth
// @Router /properties/{id}/summary [get]
func (h *propertyHandler) propertySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, logger, "Invalid property ID", err)
		return
	}
	summary, err := h.equityService.PropertySummary(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, "Failed to build property summary", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// propertyEquity godoc
// @Summary Owner equity for a property
// @Tags equity
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {array} domain.OwnerEquity
// @Security BearerAuth
// @Router /properties/{id}/equity [get]
func (h *propertyHandler) propertyEquity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, logger, "Invalid property ID", err)
		return
	}
	equity, err := h.equityService.Calculate(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, "Failed to calculate equity", err)
		return
	}
	c.JSON(http.StatusOK, equity)
}

// allEquity godoc
// @Summary Owner equity for every property
// @Description Keyed by property ID
// @Tags equity
// @Produce json
// @Success 200 {object} map[string][]domain.OwnerEquity
// @Security BearerAuth
// @Router /properties/equity [get]
func (h *propertyHandler) allEquity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	equity, err := h.equityService.CalculateAll(c.Request.Context())
	if err != nil {
		respondError(c, logger, "Failed to calculate equity", err)
		return
	}
	c.JSON(http.StatusOK, equity)
}

// snapshotEquity godoc
// @Summary Record equity snapshots
// @Description Stores the current equity of each owner under the given date, today when omitted
// @Tags equity
// @Accept json
// @Produce json
// @Param id path int true "Property ID"
// @Param snapshot body dto.SnapshotEquityRequest false "Snapshot date"
// @Success 201 {array} domain.EquitySnapshot
// @Security BearerAuth
// @Router /properties/{id}/equity/snapshots [post]
func (h *propertyHandler) snapshotEquity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, logger, "Invalid property ID", err)
		return
	}
	var req dto.SnapshotEquityRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, logger, "SnapshotEquity request", err)
			return
		}
	}
	date := time.Now()
	if req.Date != "" {
		if date, err = domain.ParseDate(req.Date); err != nil {
			respondError(c, logger, "Invalid snapshot date", err)
			return
		}
	}
	snapshots, err := h.equityService.SnapshotEquity(c.Request.Context(), id, date)
	if err != nil {
		respondError(c, logger, "Failed to snapshot equity", err)
		return
	}
	logger.Info("Equity snapshot recorded", slog.Int64("property_id", id), slog.Int("owners", len(snapshots)))
	c.JSON(http.StatusCreated, snapshots)
}

// addOwnership godoc
// @Summary Link an owner to a property
// @Description Creates the owner's capital account for the property
// @Tags properties
// @Accept json
// @Produce json
// @Param id path int true "Property ID"
// @Param ownership body dto.AddOwnershipRequest true "Owner"
// @Success 201 {object} domain.PropertyOwnership
// @Failure 409 {object} map[string]string "Owner already linked"
// @Security BearerAuth
// @Router /properties/{id}/owners [post]
func (h *propertyHandler) addOwnership(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, logger, "Invalid property ID", err)
		return
	}
	var req dto.AddOwnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, "AddOwnership request", err)
		return
	}
	ownership, err := h.propertyService.AddOwnership(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, logger, "Failed to add ownership", err)
		return
	}
	c.JSON(http.StatusCreated, ownership)
}

// listOwnership godoc
// @Summary List a property's owners
// @Tags properties
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {array} domain.PropertyOwnership
// @Security BearerAuth
// @Router /properties/{id}/owners [get]
func (h *propertyHandler) listOwnership(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, logger, "Invalid property ID", err)
		return
	}
	ownership, err := h.propertyService.ListOwnership(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, "Failed to list ownership", err)
		return
	}
	c.JSON(http.StatusOK, ownership)
}

// addValuation godoc
// @Summary Add a valuation
// @Tags properties
// @Accept json
// @Produce json
// @Param id path int true "Property ID"
// @Param valuation body dto.AddValuationRequest true "Valuation"
// @Success 201 {object} domain.PropertyValuation
// @Security BearerAuth
// @Router /properties/{id}/valuations [post]
func (h *propertyHandler) addValuation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, logger, "Invalid property ID", err)
		return
	}
	var req dto.AddValuationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, "AddValuation request", err)
		return
	}
	valuation, err := h.propertyService.AddValuation(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, logger, "Failed to add valuation", err)
		return
	}
	c.JSON(http.StatusCreated, valuation)
}

// listValuations godoc
// @Summary List valuations
// @Description Newest first
// @Tags properties
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {array} domain.PropertyValuation
// @Security BearerAuth
// @Router /properties/{id}/valuations [get]
func (h *propertyHandler) listValuations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, logger, "Invalid property ID", err)
		return
	}
	valuations, err := h.propertyService.ListValuations(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, "Failed to list valuations", err)
		return
	}
	c.JSON(http.StatusOK, valuations)
}

// createOwner godoc
// @Summary Create an owner
// @Description Returns the existing owner when the name is already taken
// @Tags owners
// @Accept json
// @Produce json
// @Param owner body dto.CreateOwnerRequest true "Owner"
// @Success 201 {object} domain.Owner
// @Security BearerAuth
// @Router /owners [post]
func (h *propertyHandler) createOwner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, "CreateOwner request", err)
		return
	}
	owner, err := h.propertyService.CreateOwner(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, "Failed to create owner", err)
		return
	}
	c.JSON(http.StatusCreated, owner)
}

// listOwners godoc
// @Summary List owners
// @Tags owners
// @Produce json
// @Success 200 {array} domain.Owner
// @Security BearerAuth
// @Router /owners [get]
func (h *propertyHandler) listOwners(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	owners, err := h.propertyService.ListOwners(c.Request.Context())
	if err != nil {
		respondError(c, logger, "Failed to list owners", err)
		return
	}
	c.JSON(http.StatusOK, owners)
}

// ownerTotalEquity godoc
// @Summary An owner's equity across all properties
// @Tags owners
// @Produce json
// @Param id path int true "Owner ID"
// @Success 200 {object} OwnerEquityTotalResponse
// @Security BearerAuth
// @Router /owners/{id}/equity [get]
func (h *propertyHandler) ownerTotalEquity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, logger, "Invalid owner ID", err)
		return
	}
	total, err := h.equityService.OwnerTotalEquity(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, "Failed to calculate owner equity", err)
		return
	}
	c.JSON(http.StatusOK, OwnerEquityTotalResponse{OwnerID: id, TotalEquity: total})
}
