package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/middleware"
	"github.com/SscSPs/household_ledger/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests for journal entries.
type journalHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newJournalHandler(ls portssvc.LedgerSvcFacade) *journalHandler {
	return &journalHandler{ledgerService: ls}
}

// registerJournalRoutes registers routes for journal entries.
func registerJournalRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newJournalHandler(ledgerService)

	entries := rg.Group("/entries")
	{
		entries.POST("", h.postEntry)
		entries.GET("", h.listEntries)
		entries.GET("/search", h.searchEntries)
		entries.GET("/:id", h.getEntry)
		entries.PUT("/:id/category", h.updateCategory)
	}
}

// postEntry godoc
// @Summary Post a journal entry
// @Description Posts a balanced journal entry. Lines must sum to zero and use at most two decimal places.
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.PostEntryRequest true "Journal entry"
// @Success 201 {object} dto.PostEntryResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 503 {object} map[string]string "Ledger busy"
// @Failure 500 {object} map[string]string "Failed to post entry"
// @Security BearerAuth
// @Router /entries [post]
func (h *journalHandler) postEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PostEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, "PostEntry request", err)
		return
	}
	entry, err := req.ToProposedEntry()
	if err != nil {
		respondError(c, logger, "Invalid journal entry", err)
		return
	}

	logger.Info("Received request to post entry", slog.String("description", req.Description), slog.Int("lines", len(req.Lines)))

	id, err := h.ledgerService.PostEntry(c.Request.Context(), entry.Header, entry.Lines)
	if err != nil {
		respondError(c, logger, "Failed to post entry", err)
		return
	}

	logger.Info("Journal entry posted", slog.Int64("journal_entry_id", id))
	c.JSON(http.StatusCreated, dto.PostEntryResponse{JournalEntryID: id})
}

// listEntries godoc
// @Summary List journal entries
// @Description Lists entries newest first. Use nextToken from the previous page to continue.
// @Tags entries
// @Produce  json
// @Param   startDate query string false "Earliest entry date (YYYY-MM-DD)"
// @Param   endDate query string false "Latest entry date (YYYY-MM-DD)"
// @Param   categoryID query int false "Only entries in this category"
// @Param   accountID query int false "Only entries touching this account"
// @Param   limit query int false "Page size" default(100)
// @Param   nextToken query string false "Token for the next page"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Security BearerAuth
// @Router /entries [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, "ListEntries query", err)
		return
	}
	page, err := params.Page()
	if err != nil {
		respondError(c, logger, "Invalid pagination token", err)
		return
	}
	filter, err := entryFilter(c)
	if err != nil {
		respondError(c, logger, "Invalid entry filter", err)
		return
	}

	items, err := h.ledgerService.ListEntries(c.Request.Context(), filter, page)
	if err != nil {
		respondError(c, logger, "Failed to list entries", err)
		return
	}

	c.JSON(http.StatusOK, dto.ListEntriesResponse{
		Entries:   dto.ToEntryListResponses(items),
		NextToken: pagination.NextOffsetToken(page.Limit, page.Offset, len(items)),
	})
}

func entryFilter(c *gin.Context) (domain.EntryFilter, error) {
	var (
		f   domain.EntryFilter
		err error
	)
	if f.StartDate, err = optionalQueryDate(c, "startDate"); err != nil {
		return f, err
	}
	if f.EndDate, err = optionalQueryDate(c, "endDate"); err != nil {
		return f, err
	}
	if f.CategoryID, err = optionalQueryID(c, "categoryID"); err != nil {
		return f, err
	}
	if f.AccountID, err = optionalQueryID(c, "accountID"); err != nil {
		return f, err
	}
	return f, nil
}

// searchEntries godoc
// @Summary Search journal entries
// @Description Case-insensitive substring match on the description
// @Tags entries
// @Produce  json
// @Param   q query string true "Text to look for"
// @Param   limit query int false "Maximum results, 0 for all" default(50)
// @Success 200 {array} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Missing query"
// @Failure 500 {object} map[string]string "Failed to search entries"
// @Security BearerAuth
// @Router /entries/search [get]
func (h *journalHandler) searchEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	items, err := h.ledgerService.SearchEntries(c.Request.Context(), q, limit)
	if err != nil {
		respondError(c, logger, "Failed to search entries", err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryListResponses(items))
}

// getEntry godoc
// @Summary Get a journal entry
// @Description Returns the entry header with all of its lines
// @Tags entries
// @Produce  json
// @Param   id path int true "Journal entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve entry"
// @Security BearerAuth
// @Router /entries/{id} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID, err := pathID(c, "id")
	if err != nil {
		respondError(c, logger, "Invalid entry id", err)
		return
	}

	detail, err := h.ledgerService.GetEntry(c.Request.Context(), entryID)
	if err != nil {
		respondError(c, logger, "Failed to retrieve entry", err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryDetailResponse(detail))
}

// updateCategory godoc
// @Summary Set the category of a journal entry
// @Description A null categoryID clears the category. Lines are never changed.
// @Tags entries
// @Accept  json
// @Param   id path int true "Journal entry ID"
// @Param   category body dto.UpdateEntryCategoryRequest true "Category"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Entry or category not found"
// @Failure 500 {object} map[string]string "Failed to update entry"
// @Security BearerAuth
// @Router /entries/{id}/category [put]
func (h *journalHandler) updateCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID, err := pathID(c, "id")
	if err != nil {
		respondError(c, logger, "Invalid entry id", err)
		return
	}
	var req dto.UpdateEntryCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, "UpdateEntryCategory request", err)
		return
	}

	if err := h.ledgerService.UpdateCategory(c.Request.Context(), entryID, req.CategoryID); err != nil {
		respondError(c, logger, "Failed to update entry", err)
		return
	}
	c.Status(http.StatusNoContent)
}
