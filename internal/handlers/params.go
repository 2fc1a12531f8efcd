package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// pathID parses a positive integer path parameter.
func pathID(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", apperrors.ErrValidation, name, raw)
	}
	return id, nil
}

// optionalQueryID parses an optional positive integer query parameter.
func optionalQueryID(c *gin.Context, name string) (*int64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("%w: %s must be a positive integer, got %q", apperrors.ErrValidation, name, raw)
	}
	return &id, nil
}

func optionalQueryDate(c *gin.Context, name string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func queryDateRange(c *gin.Context) (domain.DateRange, error) {
	var (
		r   domain.DateRange
		err error
	)
	if r.StartDate, err = optionalQueryDate(c, "startDate"); err != nil {
		return r, err
	}
	if r.EndDate, err = optionalQueryDate(c, "endDate"); err != nil {
		return r, err
	}
	return r, nil
}

// ListParams are the pagination query parameters shared by list endpoints.
type ListParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=1000"`
	NextToken *string `form:"nextToken"`
}

// Page resolves the opaque token into an offset page.
func (p ListParams) Page() (domain.Page, error) {
	page := domain.Page{Limit: p.Limit}
	if p.NextToken != nil && *p.NextToken != "" {
		offset, err := pagination.DecodeOffsetToken(*p.NextToken)
		if err != nil {
			return page, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		page.Offset = offset
	}
	return page.Normalize(), nil
}
