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

// mortgageService manages mortgages and posts split mortgage payments.
type mortgageService struct {
	BaseService
	store       portsrepo.Store
	bankAccount string
}

// NewMortgageService creates a new mortgage service. bankAccount names the
// default paying account.
func NewMortgageService(store portsrepo.Store, bankAccount string) portssvc.MortgageSvc {
	if bankAccount == "" {
		bankAccount = domain.BankAccountName
	}
	return &mortgageService{store: store, bankAccount: bankAccount}
}

var _ portssvc.MortgageSvc = (*mortgageService)(nil)

// MortgageLiabilityAccountName names the LIABILITY account created for a
// mortgage that does not share an existing one.
func MortgageLiabilityAccountName(lender, propertyName string) string {
	return fmt.Sprintf("Mortgage - %s - %s", lender, propertyName)
}

// EquityContributionAccountName names the EQUITY contra account for principal
// repaid to lender.
func EquityContributionAccountName(lender string) string {
	return "Equity Contributions - " + lender
}

func (s *mortgageService) AddMortgage(ctx context.Context, propertyID int64, req dto.AddMortgageRequest) (*domain.Mortgage, error) {
	lender, err := requireName("lender", req.Lender)
	if err != nil {
		return nil, err
	}
	if err := requireNonNegativeAmount("original amount", req.OriginalAmount); err != nil {
		return nil, err
	}
	startDate, err := domain.ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	if req.TermMonths != nil && *req.TermMonths <= 0 {
		return nil, fmt.Errorf("%w: term must be a positive number of months", apperrors.ErrValidation)
	}

	mortgage := domain.Mortgage{
		PropertyID:     propertyID,
		Lender:         lender,
		OriginalAmount: req.OriginalAmount,
		StartDate:      startDate,
		TermMonths:     req.TermMonths,
	}
	err = s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		property, err := repos.PropertyRepo.FindPropertyByID(ctx, propertyID)
		if err != nil {
			return err
		}

		if req.LiabilityAccountID != nil {
			account, err := repos.AccountRepo.FindAccountByID(ctx, *req.LiabilityAccountID)
			if err != nil {
				return fmt.Errorf("liability account: %w", err)
			}
			if account.Type != domain.Liability {
				return fmt.Errorf("%w: account %q is not a LIABILITY account", apperrors.ErrValidation, account.Name)
			}
			mortgage.LiabilityAccountID = account.ID
		} else {
			account, err := getOrCreateAccount(ctx, repos.AccountRepo, MortgageLiabilityAccountName(lender, property.Name), domain.Liability)
			if err != nil {
				return err
			}
			mortgage.LiabilityAccountID = account.ID
		}

		mortgage.ID, err = repos.PropertyRepo.SaveMortgage(ctx, mortgage)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to add mortgage", slog.Int64("property_id", propertyID))
		return nil, err
	}

	s.LogInfo(ctx, "Mortgage added",
		slog.Int64("mortgage_id", mortgage.ID),
		slog.Int64("liability_account_id", mortgage.LiabilityAccountID))
	return &mortgage, nil
}

func (s *mortgageService) ListMortgages(ctx context.Context, propertyID int64) ([]domain.Mortgage, error) {
	repos := s.store.Repositories()
	if _, err := repos.PropertyRepo.FindPropertyByID(ctx, propertyID); err != nil {
		return nil, err
	}
	return repos.PropertyRepo.ListMortgages(ctx, propertyID)
}

// RecordPayment posts a mortgage payment and, when principal was repaid, the
// matching capital contribution for the payer. Both entries commit together.
func (s *mortgageService) RecordPayment(ctx context.Context, mortgageID int64, req dto.MortgagePaymentRequest) (*domain.MortgagePayment, error) {
	if err := requirePositiveAmount("total", req.Total); err != nil {
		return nil, err
	}
	if err := requireNonNegativeAmount("principal", req.Principal); err != nil {
		return nil, err
	}
	if err := requireNonNegativeAmount("interest", req.Interest); err != nil {
		return nil, err
	}
	if !req.Principal.Add(req.Interest).Equal(req.Total) {
		return nil, fmt.Errorf("%w: principal %s plus interest %s does not equal total %s", apperrors.ErrValidation,
			req.Principal.StringFixed(domain.AmountPlaces),
			req.Interest.StringFixed(domain.AmountPlaces),
			req.Total.StringFixed(domain.AmountPlaces))
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	var payment domain.MortgagePayment
	err = s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		mortgage, err := repos.PropertyRepo.FindMortgageByID(ctx, mortgageID)
		if err != nil {
			return err
		}
		ownership, err := repos.PropertyRepo.ListOwnership(ctx, mortgage.PropertyID)
		if err != nil {
			return err
		}
		payerCapital, ok := capitalAccountFor(ownership, req.PayerOwnerID)
		if !ok {
			return fmt.Errorf("%w: owner %d has no ownership in property %d", apperrors.ErrNotFound, req.PayerOwnerID, mortgage.PropertyID)
		}

		fromID, err := resolveAccount(ctx, repos.AccountRepo, req.FromAccountID, s.bankAccount)
		if err != nil {
			return err
		}
		interest, err := getOrCreateAccount(ctx, repos.AccountRepo, domain.MortgageInterestAccountName, domain.Expense)
		if err != nil {
			return err
		}

		entries := []domain.ProposedEntry{
			domain.NewProposedEntry(date, "Mortgage payment - "+mortgage.Lender,
				domain.Line(fromID, req.Total.Neg()),
				domain.Line(mortgage.LiabilityAccountID, req.Principal),
				domain.Line(interest.ID, req.Interest),
			),
		}
		if req.Principal.IsPositive() {
			contra, err := getOrCreateAccount(ctx, repos.AccountRepo, EquityContributionAccountName(mortgage.Lender), domain.Equity)
			if err != nil {
				return err
			}
			entries = append(entries, domain.NewProposedEntry(date,
				"Capital contribution via mortgage principal - "+mortgage.Lender,
				domain.Line(payerCapital, req.Principal),
				domain.Line(contra.ID, req.Principal.Neg()),
			))
		}

		ids, err := postEntries(ctx, repos, entries...)
		if err != nil {
			return err
		}
		payment.PaymentEntryID = ids[0]
		if len(ids) > 1 {
			payment.CapitalEntryID = ids[1]
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record mortgage payment", slog.Int64("mortgage_id", mortgageID))
		return nil, err
	}

	s.LogInfo(ctx, "Mortgage payment recorded",
		slog.Int64("mortgage_id", mortgageID),
		slog.Int64("payment_entry_id", payment.PaymentEntryID),
		slog.Int64("capital_entry_id", payment.CapitalEntryID))
	return &payment, nil
}

// GetPaymentHistory lists every entry whose description mentions the lender.
func (s *mortgageService) GetPaymentHistory(ctx context.Context, mortgageID int64) ([]domain.EntryListItem, error) {
	repos := s.store.Repositories()
	mortgage, err := repos.PropertyRepo.FindMortgageByID(ctx, mortgageID)
	if err != nil {
		return nil, err
	}
	return repos.JournalRepo.SearchEntries(ctx, mortgage.Lender, 0)
}

func (s *mortgageService) AddRate(ctx context.Context, mortgageID int64, req dto.AddMortgageRateRequest) (*domain.MortgageRate, error) {
	if req.Rate.IsNegative() {
		return nil, fmt.Errorf("%w: rate must not be negative", apperrors.ErrValidation)
	}
	date, err := domain.ParseDate(req.EffectiveDate)
	if err != nil {
		return nil, err
	}
	rate := domain.MortgageRate{
		MortgageID:    mortgageID,
		Rate:          req.Rate,
		EffectiveDate: date,
		Notes:         req.Notes,
	}
	err = s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if _, err := repos.PropertyRepo.FindMortgageByID(ctx, mortgageID); err != nil {
			return err
		}
		rate.ID, err = repos.PropertyRepo.SaveMortgageRate(ctx, rate)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to add mortgage rate", slog.Int64("mortgage_id", mortgageID))
		return nil, err
	}
	return &rate, nil
}

func (s *mortgageService) RateHistory(ctx context.Context, mortgageID int64) ([]domain.MortgageRate, error) {
	repos := s.store.Repositories()
	if _, err := repos.PropertyRepo.FindMortgageByID(ctx, mortgageID); err != nil {
		return nil, err
	}
	return repos.PropertyRepo.ListMortgageRates(ctx, mortgageID)
}
