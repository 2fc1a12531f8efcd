package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := &categoryHandler{categoryService: categoryService}

	categories := rg.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.POST("", h.createCategory)
		categories.GET("/rules", h.listRules)
		categories.POST("/rules", h.addRule)
		categories.POST("/learn", h.learn)
	}
}

// listCategories godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} domain.Category
// @Security BearerAuth
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, logger, "Failed to list categories", err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// createCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category"
// @Success 201 {object} domain.Category
// @Failure 409 {object} map[string]string "Category already exists"
// @Security BearerAuth
// @Router /categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, "CreateCategory request", err)
		return
	}
	category, err := h.categoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, "Failed to create category", err)
		return
	}
	logger.Info("Category created", slog.Int64("category_id", category.ID))
	c.JSON(http.StatusCreated, category)
}

// listRules godoc
// @Summary List categorization rules
// @Description Rules in evaluation order: priority descending, then id
// @Tags categories
// @Produce json
// @Success 200 {array} domain.CategorizationRule
// @Security BearerAuth
// @Router /categories/rules [get]
func (h *categoryHandler) listRules(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rules, err := h.categoryService.ListRules(c.Request.Context())
	if err != nil {
		respondError(c, logger, "Failed to list categorization rules", err)
		return
	}
	c.JSON(http.StatusOK, rules)
}

// addRule godoc
// @Summary Add a categorization rule
// @Tags categories
// @Accept json
// @Produce json
// @Param rule body dto.AddRuleRequest true "Rule"
// @Success 201 {object} domain.CategorizationRule
// @Failure 400 {object} map[string]string "Invalid rule, e.g. a regex that does not compile"
// @Security BearerAuth
// @Router /categories/rules [post]
func (h *categoryHandler) addRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, "AddRule request", err)
		return
	}
	rule, err := h.categoryService.AddRule(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, "Failed to add categorization rule", err)
		return
	}
	c.JSON(http.StatusCreated, rule)
}

// learn godoc
// @Summary Learn from a category correction
// @Description Stores a contains rule for the description and re-categorizes the entry when entryID is given
// @Tags categories
// @Accept json
// @Produce json
// @Param correction body dto.LearnCategoryRequest true "Correction"
// @Success 201 {object} domain.CategorizationRule
// @Security BearerAuth
// @Router /categories/learn [post]
func (h *categoryHandler) learn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LearnCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, "LearnCategory request", err)
		return
	}
	rule, err := h.categoryService.LearnFromCorrection(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, "Failed to learn from correction", err)
		return
	}
	c.JSON(http.StatusCreated, rule)
}
