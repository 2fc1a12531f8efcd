package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
)

// transferService moves an owner's capital from one property to another.
type transferService struct {
	BaseService
	store portsrepo.Store
}

// NewTransferService creates a new equity transfer service backed by store.
func NewTransferService(store portsrepo.Store) portssvc.TransferSvc {
	return &transferService{store: store}
}

var _ portssvc.TransferSvc = (*transferService)(nil)

// TransferEquity checks the source capital balance and posts the transfer in
// the same transaction, with both capital accounts locked, so concurrent
// transfers cannot overdraw the source.
func (s *transferService) TransferEquity(ctx context.Context, req dto.TransferEquityRequest) (*domain.PropertyTransfer, error) {
	if err := requirePositiveAmount("transfer amount", req.Amount); err != nil {
		return nil, err
	}
	if req.FromPropertyID == req.ToPropertyID {
		return nil, fmt.Errorf("%w: cannot transfer equity to the same property", apperrors.ErrValidation)
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	var transfer domain.PropertyTransfer
	err = s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		from, err := repos.PropertyRepo.FindPropertyByID(ctx, req.FromPropertyID)
		if err != nil {
			return fmt.Errorf("source property: %w", err)
		}
		to, err := repos.PropertyRepo.FindPropertyByID(ctx, req.ToPropertyID)
		if err != nil {
			return fmt.Errorf("destination property: %w", err)
		}
		owner, err := repos.PropertyRepo.FindOwnerByID(ctx, req.OwnerID)
		if err != nil {
			return err
		}

		fromCapital, err := ownerCapitalAccount(ctx, repos, from, owner)
		if err != nil {
			return err
		}
		toCapital, err := ownerCapitalAccount(ctx, repos, to, owner)
		if err != nil {
			return err
		}

		if err := repos.AccountRepo.LockAccountsForUpdate(ctx, []int64{fromCapital, toCapital}); err != nil {
			return err
		}
		available, err := repos.JournalRepo.SumAccountBalance(ctx, fromCapital)
		if err != nil {
			return err
		}
		if available.LessThan(req.Amount) {
			return &apperrors.InsufficientEquityError{
				AccountID: fromCapital,
				Available: available,
				Requested: req.Amount,
			}
		}

		description := fmt.Sprintf("Equity transfer: %s -> %s", from.Name, to.Name)
		if req.Description != nil && strings.TrimSpace(*req.Description) != "" {
			description = strings.TrimSpace(*req.Description)
		}

		ids, err := postEntries(ctx, repos, domain.NewProposedEntry(date, description,
			domain.Line(fromCapital, req.Amount.Neg()),
			domain.Line(toCapital, req.Amount),
		))
		if err != nil {
			return err
		}

		transfer = domain.PropertyTransfer{
			FromPropertyID:   from.ID,
			ToPropertyID:     to.ID,
			OwnerID:          owner.ID,
			Amount:           req.Amount,
			JournalEntryID:   ids[0],
			TransferDate:     date,
			Description:      description,
			FromPropertyName: from.Name,
			ToPropertyName:   to.Name,
			OwnerName:        owner.Name,
		}
		transfer.ID, err = repos.PropertyRepo.SaveTransfer(ctx, transfer)
		return err
	})
	if err != nil {
		s.LogWarn(ctx, err, "Equity transfer failed",
			slog.Int64("from_property_id", req.FromPropertyID),
			slog.Int64("to_property_id", req.ToPropertyID),
			slog.Int64("owner_id", req.OwnerID),
			slog.String("amount", req.Amount.StringFixed(domain.AmountPlaces)))
		return nil, err
	}

	s.LogInfo(ctx, "Equity transferred",
		slog.Int64("transfer_id", transfer.ID),
		slog.Int64("journal_entry_id", transfer.JournalEntryID),
		slog.String("amount", transfer.Amount.StringFixed(domain.AmountPlaces)))
	return &transfer, nil
}

func (s *transferService) GetTransfers(ctx context.Context, filter domain.TransferFilter) ([]domain.PropertyTransfer, error) {
	return s.store.Repositories().PropertyRepo.ListTransfers(ctx, filter)
}

// ownerCapitalAccount returns the owner's capital account in property, or
// ErrNotFound when the owner has no stake in it.
func ownerCapitalAccount(ctx context.Context, repos portsrepo.RepositoryProvider, property *domain.Property, owner *domain.Owner) (int64, error) {
	ownership, err := repos.PropertyRepo.ListOwnership(ctx, property.ID)
	if err != nil {
		return 0, err
	}
	accountID, ok := capitalAccountFor(ownership, owner.ID)
	if !ok {
		return 0, fmt.Errorf("%w: %s has no ownership in %s", apperrors.ErrNotFound, owner.Name, property.Name)
	}
	return accountID, nil
}
