package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/importing/csvsource"
	"github.com/SscSPs/household_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// importHandler accepts bank statements, either as parsed JSON rows or as a
// CSV upload read through a bank profile.
type importHandler struct {
	importService      portssvc.ImportSvc
	profiles           *csvsource.Registry
	defaultBankAccount string
}

func registerImportRoutes(rg *gin.RouterGroup, importService portssvc.ImportSvc, profiles *csvsource.Registry, defaultBankAccount string) {
	h := &importHandler{importService: importService, profiles: profiles, defaultBankAccount: defaultBankAccount}

	imports := rg.Group("/imports")
	{
		imports.GET("", h.listBatches)
		imports.POST("", h.importJSON)
		imports.POST("/preview", h.previewJSON)
		imports.GET("/profiles", h.listProfiles)
		imports.POST("/csv", h.importCSV)
	}
}

// listBatches godoc
// @Summary List import batches
// @Description Newest first
// @Tags imports
// @Produce json
// @Success 200 {array} domain.ImportBatch
// @Security BearerAuth
// @Router /imports [get]
func (h *importHandler) listBatches(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	batches, err := h.importService.ListBatches(c.Request.Context())
	if err != nil {
		respondError(c, logger, "Failed to list import batches", err)
		return
	}
	c.JSON(http.StatusOK, batches)
}

// importJSON godoc
// @Summary Import parsed statement rows
// @Description Posts every row not seen before against the account and records the batch
// @Tags imports
// @Accept json
// @Produce json
// @Param import body dto.ImportRequest true "Rows"
// @Success 201 {object} dto.ImportResponse
// @Security BearerAuth
// @Router /imports [post]
func (h *importHandler) importJSON(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, "Import request", err)
		return
	}
	txns, err := req.ToRawTransactions()
	if err != nil {
		respondError(c, logger, "Invalid import rows", err)
		return
	}
	result, err := h.importService.Run(c.Request.Context(), req.ImportMeta, txns)
	if err != nil {
		respondError(c, logger, "Failed to import transactions", err)
		return
	}
	logImportResult(logger, req.ImportMeta, result.ImportedCount, result.DuplicateCount)
	c.JSON(http.StatusCreated, dto.ImportResponse{ImportResult: *result})
}

// previewJSON godoc
// @Summary Preview an import
// @Description Flags duplicates and suggests categories without writing anything
// @Tags imports
// @Accept json
// @Produce json
// @Param import body dto.ImportRequest true "Rows"
// @Success 200 {object} dto.ImportPreviewResponse
// @Security BearerAuth
// @Router /imports/preview [post]
func (h *importHandler) previewJSON(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, "Import preview request", err)
		return
	}
	txns, err := req.ToRawTransactions()
	if err != nil {
		respondError(c, logger, "Invalid import rows", err)
		return
	}
	preview, err := h.importService.Preview(c.Request.Context(), req.ImportMeta, txns)
	if err != nil {
		respondError(c, logger, "Failed to preview import", err)
		return
	}
	c.JSON(http.StatusOK, dto.ImportPreviewResponse{Transactions: preview})
}

// listProfiles godoc
// @Summary List bank profiles
// @Tags imports
// @Produce json
// @Success 200 {array} string
// @Security BearerAuth
// @Router /imports/profiles [get]
func (h *importHandler) listProfiles(c *gin.Context) {
	c.JSON(http.StatusOK, h.profiles.Names())
}

// importCSV godoc
// @Summary Import a CSV statement
// @Description Parses the upload with a bank profile and imports it. With preview=true nothing is written.
// @Tags imports
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV statement"
// @Param profile formData string false "Bank profile, generic when omitted"
// @Param account formData string false "Account to import into, the default bank account when omitted"
// @Param preview query bool false "Only preview the import"
// @Success 201 {object} dto.ImportResponse
// @Success 200 {object} dto.ImportPreviewResponse
// @Failure 400 {object} map[string]string "Unreadable file or missing column"
// @Failure 404 {object} map[string]string "Unknown bank profile"
// @Security BearerAuth
// @Router /imports/csv [post]
func (h *importHandler) importCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	header, err := c.FormFile("file")
	if err != nil {
		respondError(c, logger, "Missing CSV file", fmt.Errorf("%w: form field file is required", apperrors.ErrValidation))
		return
	}
	profile, err := h.profiles.Lookup(c.PostForm("profile"))
	if err != nil {
		respondError(c, logger, "Unknown bank profile", err)
		return
	}
	meta := dto.ImportMeta{
		Filename:    header.Filename,
		BankConfig:  profile.Name,
		AccountName: strings.TrimSpace(c.PostForm("account")),
	}
	if meta.AccountName == "" {
		meta.AccountName = h.defaultBankAccount
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, logger, "Failed to read uploaded file", err)
		return
	}
	defer file.Close()

	parsed, err := csvsource.Parse(file, profile)
	if err != nil {
		respondError(c, logger, "Failed to parse CSV statement", err)
		return
	}
	logger.Info("Parsed CSV statement",
		slog.String("filename", meta.Filename),
		slog.String("profile", profile.Name),
		slog.Int("rows", len(parsed.Transactions)),
		slog.Int("skipped", parsed.Skipped),
	)

	if c.Query("preview") == "true" {
		preview, err := h.importService.Preview(c.Request.Context(), meta, parsed.Transactions)
		if err != nil {
			respondError(c, logger, "Failed to preview import", err)
			return
		}
		c.JSON(http.StatusOK, dto.ImportPreviewResponse{Transactions: preview, Skipped: parsed.Skipped})
		return
	}

	result, err := h.importService.Run(c.Request.Context(), meta, parsed.Transactions)
	if err != nil {
		respondError(c, logger, "Failed to import transactions", err)
		return
	}
	logImportResult(logger, meta, result.ImportedCount, result.DuplicateCount)
	c.JSON(http.StatusCreated, dto.ImportResponse{ImportResult: *result, Skipped: parsed.Skipped})
}

func logImportResult(logger *slog.Logger, meta dto.ImportMeta, imported, duplicates int) {
	logger.Info("Import finished",
		slog.String("account", meta.AccountName),
		slog.String("filename", meta.Filename),
		slog.Int("imported", imported),
		slog.Int("duplicates", duplicates),
	)
}
