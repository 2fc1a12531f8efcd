package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
)

// accountServiceImpl implements the AccountSvcFacade interface
type accountServiceImpl struct {
	BaseService
	store portsrepo.Store
}

// NewAccountServiceImpl creates a new account service backed by store.
func NewAccountServiceImpl(store portsrepo.Store) portssvc.AccountSvcFacade {
	return &accountServiceImpl{store: store}
}

// Ensure accountServiceImpl implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountServiceImpl)(nil)

func (s *accountServiceImpl) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	name, err := requireName("account name", req.Name)
	if err != nil {
		return nil, err
	}
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.Type)
	}

	account := domain.Account{
		Name:        name,
		Type:        req.Type,
		ParentID:    req.ParentID,
		Description: req.Description,
	}

	err = s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if req.ParentID != nil {
			if _, err := repos.AccountRepo.FindAccountByID(ctx, *req.ParentID); err != nil {
				return fmt.Errorf("parent account: %w", err)
			}
		}
		id, err := repos.AccountRepo.SaveAccount(ctx, account)
		if err != nil {
			return err
		}
		account.ID = id
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create account", slog.String("name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.Int64("account_id", account.ID), slog.String("type", string(account.Type)))
	return s.GetAccountByID(ctx, account.ID)
}

func (s *accountServiceImpl) GetOrCreateAccount(ctx context.Context, name string, accountType domain.AccountType) (*domain.Account, error) {
	name, err := requireName("account name", name)
	if err != nil {
		return nil, err
	}
	if !accountType.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, accountType)
	}

	var account *domain.Account
	err = s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		account, err = getOrCreateAccount(ctx, repos.AccountRepo, name, accountType)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to get or create account", slog.String("name", name))
		return nil, err
	}
	return account, nil
}

func (s *accountServiceImpl) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := s.store.Repositories().AccountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		s.LogDebug(ctx, "Account lookup failed", slog.Int64("account_id", accountID), slog.String("error", err.Error()))
		return nil, err
	}
	return account, nil
}

func (s *accountServiceImpl) GetAccountByName(ctx context.Context, name string) (*domain.Account, error) {
	return s.store.Repositories().AccountRepo.FindAccountByName(ctx, name)
}

func (s *accountServiceImpl) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.store.Repositories().AccountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}
	return accounts, nil
}
