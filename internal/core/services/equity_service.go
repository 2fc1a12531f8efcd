package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// equityService computes owner equity live from the ledger. Nothing is cached.
type equityService struct {
	BaseService
	store portsrepo.Store
}

// NewEquityService creates a new equity service backed by store.
func NewEquityService(store portsrepo.Store) portssvc.EquitySvc {
	return &equityService{store: store}
}

var _ portssvc.EquitySvc = (*equityService)(nil)

// propertyFigures are the property-level inputs to the equity split.
type propertyFigures struct {
	marketValue     decimal.Decimal
	valuationDate   *time.Time
	mortgageBalance decimal.Decimal
}

func (f propertyFigures) netEquity() decimal.Decimal {
	return f.marketValue.Sub(f.mortgageBalance)
}

// loadPropertyFigures reads the latest valuation and the outstanding mortgage
// balance. Loan parts sharing a liability account are counted once.
func loadPropertyFigures(ctx context.Context, repos portsrepo.RepositoryProvider, propertyID int64) (propertyFigures, error) {
	figures := propertyFigures{marketValue: decimal.Zero, mortgageBalance: decimal.Zero}

	valuation, err := repos.PropertyRepo.LatestValuation(ctx, propertyID)
	switch {
	case err == nil:
		figures.marketValue = valuation.Amount
		date := valuation.ValuationDate
		figures.valuationDate = &date
	case !errors.Is(err, apperrors.ErrNotFound):
		return figures, err
	}

	mortgages, err := repos.PropertyRepo.ListMortgages(ctx, propertyID)
	if err != nil {
		return figures, err
	}
	balances := make(map[int64]decimal.Decimal, len(mortgages))
	for _, m := range mortgages {
		if _, seen := balances[m.LiabilityAccountID]; seen {
			continue
		}
		balance, err := repos.JournalRepo.SumAccountBalance(ctx, m.LiabilityAccountID)
		if err != nil {
			return figures, err
		}
		balances[m.LiabilityAccountID] = balance
	}
	figures.mortgageBalance = accounting.MortgageBalance(balances)
	return figures, nil
}

// ownerEquities splits netEquity across the owners of a property in
// proportion to their capital balances.
func ownerEquities(ctx context.Context, repos portsrepo.RepositoryProvider, ownership []domain.PropertyOwnership, netEquity decimal.Decimal) ([]domain.OwnerEquity, error) {
	capitals := make([]decimal.Decimal, len(ownership))
	for i, own := range ownership {
		balance, err := repos.JournalRepo.SumAccountBalance(ctx, own.CapitalAccountID)
		if err != nil {
			return nil, err
		}
		capitals[i] = balance
	}

	pcts := accounting.OwnershipPercentages(capitals)
	result := make([]domain.OwnerEquity, len(ownership))
	for i, own := range ownership {
		result[i] = domain.OwnerEquity{
			PropertyID:       own.PropertyID,
			OwnerID:          own.OwnerID,
			OwnerName:        own.OwnerName,
			CapitalAccountID: own.CapitalAccountID,
			CapitalBalance:   capitals[i],
			OwnershipPct:     pcts[i],
			EquityAmount:     accounting.EquityShare(netEquity, pcts[i]),
		}
	}
	return result, nil
}

func calculateEquity(ctx context.Context, repos portsrepo.RepositoryProvider, propertyID int64) ([]domain.OwnerEquity, propertyFigures, error) {
	ownership, err := repos.PropertyRepo.ListOwnership(ctx, propertyID)
	if err != nil {
		return nil, propertyFigures{}, err
	}
	figures, err := loadPropertyFigures(ctx, repos, propertyID)
	if err != nil {
		return nil, figures, err
	}
	if len(ownership) == 0 {
		return []domain.OwnerEquity{}, figures, nil
	}
	owners, err := ownerEquities(ctx, repos, ownership, figures.netEquity())
	return owners, figures, err
}

func (s *equityService) Calculate(ctx context.Context, propertyID int64) ([]domain.OwnerEquity, error) {
	repos := s.store.Repositories()
	if _, err := repos.PropertyRepo.FindPropertyByID(ctx, propertyID); err != nil {
		return nil, err
	}
	owners, _, err := calculateEquity(ctx, repos, propertyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to calculate equity", slog.Int64("property_id", propertyID))
		return nil, err
	}
	return owners, nil
}

func (s *equityService) CalculateAll(ctx context.Context) (map[int64][]domain.OwnerEquity, error) {
	repos := s.store.Repositories()
	properties, err := repos.PropertyRepo.ListProperties(ctx)
	if err != nil {
		return nil, err
	}
	result := make(map[int64][]domain.OwnerEquity, len(properties))
	for _, p := range properties {
		owners, _, err := calculateEquity(ctx, repos, p.ID)
		if err != nil {
			s.LogError(ctx, err, "Failed to calculate equity", slog.Int64("property_id", p.ID))
			return nil, err
		}
		result[p.ID] = owners
	}
	return result, nil
}

// OwnerTotalEquity sums the owner's equity across every property they own.
func (s *equityService) OwnerTotalEquity(ctx context.Context, ownerID int64) (decimal.Decimal, error) {
	repos := s.store.Repositories()
	if _, err := repos.PropertyRepo.FindOwnerByID(ctx, ownerID); err != nil {
		return decimal.Zero, err
	}
	links, err := repos.PropertyRepo.ListOwnershipByOwner(ctx, ownerID)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, link := range links {
		owners, _, err := calculateEquity(ctx, repos, link.PropertyID)
		if err != nil {
			return decimal.Zero, err
		}
		for _, oe := range owners {
			if oe.OwnerID == ownerID {
				total = total.Add(oe.EquityAmount)
			}
		}
	}
	return total, nil
}

func (s *equityService) PropertySummary(ctx context.Context, propertyID int64) (*domain.PropertySummary, error) {
	repos := s.store.Repositories()
	property, err := repos.PropertyRepo.FindPropertyByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	owners, figures, err := calculateEquity(ctx, repos, propertyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to build property summary", slog.Int64("property_id", propertyID))
		return nil, err
	}
	return &domain.PropertySummary{
		Property:        *property,
		MarketValue:     figures.marketValue,
		ValuationDate:   figures.valuationDate,
		MortgageBalance: figures.mortgageBalance,
		NetEquity:       figures.netEquity(),
		Owners:          owners,
	}, nil
}

func (s *equityService) SnapshotEquity(ctx context.Context, propertyID int64, date time.Time) ([]domain.EquitySnapshot, error) {
	date = domain.TruncateDate(date)
	var snapshots []domain.EquitySnapshot
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if _, err := repos.PropertyRepo.FindPropertyByID(ctx, propertyID); err != nil {
			return err
		}
		owners, figures, err := calculateEquity(ctx, repos, propertyID)
		if err != nil {
			return err
		}
		snapshots = make([]domain.EquitySnapshot, 0, len(owners))
		for _, oe := range owners {
			snap := domain.EquitySnapshot{
				PropertyID:      propertyID,
				OwnerID:         oe.OwnerID,
				SnapshotDate:    date,
				MarketValue:     figures.marketValue,
				MortgageBalance: figures.mortgageBalance,
				CapitalBalance:  oe.CapitalBalance,
				OwnershipPct:    oe.OwnershipPct,
				EquityAmount:    oe.EquityAmount,
			}
			snap.ID, err = repos.PropertyRepo.SaveEquitySnapshot(ctx, snap)
			if err != nil {
				return err
			}
			snapshots = append(snapshots, snap)
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to snapshot equity", slog.Int64("property_id", propertyID))
		return nil, err
	}
	s.LogInfo(ctx, "Equity snapshot written",
		slog.Int64("property_id", propertyID),
		slog.Int("owners", len(snapshots)))
	return snapshots, nil
}
