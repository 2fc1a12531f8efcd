package services

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/dto"
)

// AccountReaderSvc defines read operations for accounts.
type AccountReaderSvc interface {
	GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)
	GetAccountByName(ctx context.Context, name string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for accounts. Accounts are never deleted.
type AccountWriterSvc interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// GetOrCreateAccount returns the account with this name, creating it with
	// accountType when it does not exist yet.
	GetOrCreateAccount(ctx context.Context, name string, accountType domain.AccountType) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
