package dto

import (
	"time"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name        string             `json:"name" binding:"required"`
	Type        domain.AccountType `json:"type" binding:"required,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE"`
	ParentID    *int64             `json:"parentID"`
	Description *string            `json:"description"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Type        domain.AccountType `json:"type"`
	ParentID    *int64             `json:"parentID,omitempty"`
	IsSystem    bool               `json:"isSystem"`
	Description *string            `json:"description,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// AccountBalanceResponse is the derived balance of one account.
type AccountBalanceResponse struct {
	AccountID int64           `json:"accountID"`
	Balance   decimal.Decimal `json:"balance"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:          a.ID,
		Name:        a.Name,
		Type:        a.Type,
		ParentID:    a.ParentID,
		IsSystem:    a.IsSystem,
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
	}
}

// ToAccountResponses converts a slice of domain.Account to []AccountResponse.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}
