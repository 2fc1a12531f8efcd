package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// postEntries stages a batch of proposed entries: every entry is validated and
// every referenced account looked up before the first write. repos must be
// bound to one transaction so the batch commits whole or not at all.
func postEntries(ctx context.Context, repos portsrepo.RepositoryProvider, entries ...domain.ProposedEntry) ([]int64, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	seen := make(map[int64]struct{})
	accountIDs := make([]int64, 0)
	for i := range entries {
		if err := entries[i].Validate(); err != nil {
			return nil, err
		}
		for _, id := range entries[i].AccountIDs() {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				accountIDs = append(accountIDs, id)
			}
		}
	}

	found, err := repos.AccountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return nil, err
	}
	for _, id := range accountIDs {
		if _, ok := found[id]; !ok {
			return nil, fmt.Errorf("%w: account %d", apperrors.ErrNotFound, id)
		}
	}

	ids := make([]int64, 0, len(entries))
	for _, entry := range entries {
		id, err := repos.JournalRepo.SaveEntry(ctx, entry.Header, entry.Lines)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// getOrCreateAccount returns the account called name, creating it with
// accountType if it does not exist.
func getOrCreateAccount(ctx context.Context, repo portsrepo.AccountRepositoryFacade, name string, accountType domain.AccountType) (*domain.Account, error) {
	account, err := repo.FindAccountByName(ctx, name)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	newAccount := domain.Account{Name: name, Type: accountType}
	id, err := repo.SaveAccount(ctx, newAccount)
	if err != nil {
		return nil, err
	}
	newAccount.ID = id
	return &newAccount, nil
}

// resolveAccount returns accountID when given, otherwise the account called
// fallbackName (created as an ASSET if missing).
func resolveAccount(ctx context.Context, repo portsrepo.AccountRepositoryFacade, accountID *int64, fallbackName string) (int64, error) {
	if accountID != nil {
		return *accountID, nil
	}
	account, err := getOrCreateAccount(ctx, repo, fallbackName, domain.Asset)
	if err != nil {
		return 0, err
	}
	return account.ID, nil
}

// capitalAccountFor finds the owner's capital account among a property's
// ownership links.
func capitalAccountFor(ownership []domain.PropertyOwnership, ownerID int64) (int64, bool) {
	for _, own := range ownership {
		if own.OwnerID == ownerID {
			return own.CapitalAccountID, true
		}
	}
	return 0, false
}

// requirePositiveAmount rejects zero, negative and sub-cent amounts.
func requirePositiveAmount(field string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s must be greater than zero", apperrors.ErrValidation, field)
	}
	return requireCents(field, amount)
}

// requireNonNegativeAmount rejects negative and sub-cent amounts.
func requireNonNegativeAmount(field string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s must not be negative", apperrors.ErrValidation, field)
	}
	return requireCents(field, amount)
}

// requireCents rejects sub-cent amounts and magnitudes of domain.MaxAmount or more.
func requireCents(field string, amount decimal.Decimal) error {
	if !domain.HasMinorUnitPrecision(amount) {
		return fmt.Errorf("%w: %s has more than %d decimal places", apperrors.ErrValidation, field, domain.AmountPlaces)
	}
	if !domain.WithinAmountLimit(amount) {
		return fmt.Errorf("%w: %s is out of range, magnitude must be below %s", apperrors.ErrValidation, field, domain.MaxAmount.String())
	}
	return nil
}

// requireName trims name and rejects it when empty.
func requireName(field, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: %s is required", apperrors.ErrValidation, field)
	}
	return name, nil
}
