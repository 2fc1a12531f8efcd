package dto

import "github.com/SscSPs/household_ledger/internal/core/domain"

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name     string `json:"name" binding:"required"`
	ParentID *int64 `json:"parentID"`
}

// AddRuleRequest defines a categorization rule. MatchType defaults to
// contains and Source to user.
type AddRuleRequest struct {
	Pattern    string            `json:"pattern" binding:"required"`
	CategoryID int64             `json:"categoryID" binding:"required,gt=0"`
	MatchType  domain.MatchType  `json:"matchType" binding:"omitempty,oneof=contains startswith exact regex"`
	Priority   int               `json:"priority"`
	Source     domain.RuleSource `json:"source" binding:"omitempty,oneof=user ai system"`
}

// LearnCategoryRequest records a user correction. When EntryID is set the
// entry is re-categorized as well.
type LearnCategoryRequest struct {
	Description string `json:"description" binding:"required"`
	CategoryID  int64  `json:"categoryID" binding:"required,gt=0"`
	EntryID     *int64 `json:"entryID"`
}
