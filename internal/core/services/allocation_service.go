package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/utils"
	"github.com/SscSPs/household_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

var hundredPct = decimal.NewFromInt(100)

// allocationService splits shared rental income and property expenses across
// the owners' capital accounts.
type allocationService struct {
	BaseService
	store       portsrepo.Store
	bankAccount string
}

// NewAllocationService creates a new allocation service. bankAccount names the
// ASSET account used when a request does not say where money moved.
func NewAllocationService(store portsrepo.Store, bankAccount string) portssvc.AllocationSvc {
	if bankAccount == "" {
		bankAccount = domain.BankAccountName
	}
	return &allocationService{store: store, bankAccount: bankAccount}
}

var _ portssvc.AllocationSvc = (*allocationService)(nil)

// ownerShare is the resolved percentage one owner carries.
type ownerShare struct {
	OwnerID          int64
	CapitalAccountID int64
	Pct              decimal.Decimal
}

// resolveShares picks, per owner, the rule for expenseType or else their "all"
// rule. When no owner has any applicable rule the split is equal.
func resolveShares(ownership []domain.PropertyOwnership, rules []domain.ExpenseAllocationRule, expenseType string) []ownerShare {
	specific := make(map[int64]decimal.Decimal)
	general := make(map[int64]decimal.Decimal)
	for _, r := range rules {
		switch r.ExpenseType {
		case expenseType:
			specific[r.OwnerID] = r.AllocationPct
		case domain.AllExpenseTypes:
			general[r.OwnerID] = r.AllocationPct
		}
	}

	shares := make([]ownerShare, 0, len(ownership))
	for _, own := range ownership {
		pct, ok := specific[own.OwnerID]
		if !ok {
			pct, ok = general[own.OwnerID]
		}
		if ok {
			shares = append(shares, ownerShare{OwnerID: own.OwnerID, CapitalAccountID: own.CapitalAccountID, Pct: pct})
		}
	}
	if len(shares) > 0 {
		return shares
	}

	equal := accounting.EqualSplit(len(ownership))
	for _, own := range ownership {
		shares = append(shares, ownerShare{OwnerID: own.OwnerID, CapitalAccountID: own.CapitalAccountID, Pct: equal})
	}
	return shares
}

// allocationPlan describes one allocated posting: the primary movement plus a
// capital entry per owner.
type allocationPlan struct {
	propertyID   int64
	date         time.Time
	amount       decimal.Decimal
	description  string
	expenseType  string
	cashAccount  *int64
	contraName   string
	contraType   domain.AccountType
	equityName   string
	allocLabel   string
	cashIsCredit bool
}

func (s *allocationService) post(ctx context.Context, plan allocationPlan) (*domain.AllocationResult, error) {
	var result domain.AllocationResult
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if _, err := repos.PropertyRepo.FindPropertyByID(ctx, plan.propertyID); err != nil {
			return err
		}
		ownership, err := repos.PropertyRepo.ListOwnership(ctx, plan.propertyID)
		if err != nil {
			return err
		}
		if len(ownership) == 0 {
			return fmt.Errorf("%w: property %d has no owners", apperrors.ErrNotFound, plan.propertyID)
		}
		rules, err := repos.PropertyRepo.ListAllocationRules(ctx, plan.propertyID)
		if err != nil {
			return err
		}

		cashID, err := resolveAccount(ctx, repos.AccountRepo, plan.cashAccount, s.bankAccount)
		if err != nil {
			return err
		}
		contra, err := getOrCreateAccount(ctx, repos.AccountRepo, plan.contraName, plan.contraType)
		if err != nil {
			return err
		}
		equity, err := getOrCreateAccount(ctx, repos.AccountRepo, plan.equityName, domain.Equity)
		if err != nil {
			return err
		}

		// Income moves cash in and credits capital; expenses do the opposite.
		sign := decimal.NewFromInt(1)
		if plan.cashIsCredit {
			sign = sign.Neg()
		}
		entries := []domain.ProposedEntry{
			domain.NewProposedEntry(plan.date, plan.description,
				domain.Line(cashID, plan.amount.Mul(sign)),
				domain.Line(contra.ID, plan.amount.Mul(sign).Neg()),
			),
		}
		for _, share := range resolveShares(ownership, rules, plan.expenseType) {
			amount := accounting.AllocateShare(plan.amount, share.Pct)
			if amount.IsZero() {
				continue
			}
			entries = append(entries, domain.NewProposedEntry(plan.date,
				fmt.Sprintf("%s - %s%%", plan.allocLabel, utils.FormatPercent(share.Pct)),
				domain.Line(share.CapitalAccountID, amount.Mul(sign)),
				domain.Line(equity.ID, amount.Mul(sign).Neg()),
			))
		}

		ids, err := postEntries(ctx, repos, entries...)
		if err != nil {
			return err
		}
		result = domain.AllocationResult{PrimaryEntryID: ids[0], AllocationEntryIDs: ids[1:]}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *allocationService) RecordRentalIncome(ctx context.Context, propertyID int64, req dto.RentalIncomeRequest) (*domain.AllocationResult, error) {
	if err := requirePositiveAmount("rental income", req.Amount); err != nil {
		return nil, err
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = "Rental income"
	}

	result, err := s.post(ctx, allocationPlan{
		propertyID:  propertyID,
		date:        date,
		amount:      req.Amount,
		description: description,
		expenseType: domain.AllExpenseTypes,
		cashAccount: req.ToAccountID,
		contraName:  domain.RentalIncomeAccountName,
		contraType:  domain.Income,
		equityName:  domain.RentalIncomeEquityAccountName,
		allocLabel:  "Rental income allocation",
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record rental income", slog.Int64("property_id", propertyID))
		return nil, err
	}
	s.LogInfo(ctx, "Rental income recorded",
		slog.Int64("property_id", propertyID),
		slog.Int64("journal_entry_id", result.PrimaryEntryID),
		slog.Int("allocations", len(result.AllocationEntryIDs)))
	return result, nil
}

func (s *allocationService) RecordPropertyExpense(ctx context.Context, propertyID int64, req dto.PropertyExpenseRequest) (*domain.AllocationResult, error) {
	if err := requirePositiveAmount("expense amount", req.Amount); err != nil {
		return nil, err
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = "Property expense"
	}

	result, err := s.post(ctx, allocationPlan{
		propertyID:   propertyID,
		date:         date,
		amount:       req.Amount,
		description:  description,
		expenseType:  normalizeExpenseType(req.ExpenseType),
		cashAccount:  req.FromAccountID,
		contraName:   domain.PropertyExpensesAccountName,
		contraType:   domain.Expense,
		equityName:   domain.PropertyExpenseEquityAccountName,
		allocLabel:   "Property expense allocation",
		cashIsCredit: true,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record property expense", slog.Int64("property_id", propertyID))
		return nil, err
	}
	s.LogInfo(ctx, "Property expense recorded",
		slog.Int64("property_id", propertyID),
		slog.Int64("journal_entry_id", result.PrimaryEntryID),
		slog.Int("allocations", len(result.AllocationEntryIDs)))
	return result, nil
}

func normalizeExpenseType(expenseType string) string {
	expenseType = strings.ToLower(strings.TrimSpace(expenseType))
	if expenseType == "" {
		return domain.AllExpenseTypes
	}
	return expenseType
}

func validatePct(pct decimal.Decimal) error {
	if pct.IsNegative() || pct.GreaterThan(hundredPct) {
		return fmt.Errorf("%w: allocation percentage %s must be between 0 and 100", apperrors.ErrValidation, pct.String())
	}
	return nil
}

// SetAllocationRule sets one owner's share. The shares of all owners for the
// same expense type may not exceed 100%.
func (s *allocationService) SetAllocationRule(ctx context.Context, propertyID int64, req dto.AllocationRuleRequest) (*domain.ExpenseAllocationRule, error) {
	if err := validatePct(req.AllocationPct); err != nil {
		return nil, err
	}
	rule := domain.ExpenseAllocationRule{
		PropertyID:    propertyID,
		OwnerID:       req.OwnerID,
		ExpenseType:   normalizeExpenseType(req.ExpenseType),
		AllocationPct: req.AllocationPct,
	}

	err := s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if err := requireOwners(ctx, repos, propertyID, []int64{req.OwnerID}); err != nil {
			return err
		}
		existing, err := repos.PropertyRepo.ListAllocationRules(ctx, propertyID)
		if err != nil {
			return err
		}
		total := rule.AllocationPct
		for _, r := range existing {
			if r.ExpenseType == rule.ExpenseType && r.OwnerID != rule.OwnerID {
				total = total.Add(r.AllocationPct)
			}
		}
		if total.GreaterThan(hundredPct) {
			return fmt.Errorf("%w: allocations for %q would total %s%%", apperrors.ErrValidation, rule.ExpenseType, total.String())
		}
		if err := repos.PropertyRepo.UpsertAllocationRule(ctx, rule); err != nil {
			return err
		}
		saved, err := repos.PropertyRepo.ListAllocationRules(ctx, propertyID)
		if err != nil {
			return err
		}
		for _, r := range saved {
			if r.OwnerID == rule.OwnerID && r.ExpenseType == rule.ExpenseType {
				rule = r
			}
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to set allocation rule", slog.Int64("property_id", propertyID))
		return nil, err
	}
	return &rule, nil
}

// SetAllocationRules replaces the whole split for one expense type. The
// percentages must add up to exactly 100.
func (s *allocationService) SetAllocationRules(ctx context.Context, propertyID int64, req dto.AllocationSplitRequest) ([]domain.ExpenseAllocationRule, error) {
	if len(req.Allocations) == 0 {
		return nil, fmt.Errorf("%w: at least one allocation is required", apperrors.ErrValidation)
	}
	expenseType := normalizeExpenseType(req.ExpenseType)
	total := decimal.Zero
	ownerIDs := make([]int64, 0, len(req.Allocations))
	seen := make(map[int64]struct{}, len(req.Allocations))
	for _, a := range req.Allocations {
		if err := validatePct(a.AllocationPct); err != nil {
			return nil, err
		}
		if _, dup := seen[a.OwnerID]; dup {
			return nil, fmt.Errorf("%w: owner %d listed twice", apperrors.ErrValidation, a.OwnerID)
		}
		seen[a.OwnerID] = struct{}{}
		ownerIDs = append(ownerIDs, a.OwnerID)
		total = total.Add(a.AllocationPct)
	}
	if !total.Equal(hundredPct) {
		return nil, fmt.Errorf("%w: allocations must total 100%%, got %s%%", apperrors.ErrValidation, total.String())
	}

	var rules []domain.ExpenseAllocationRule
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if err := requireOwners(ctx, repos, propertyID, ownerIDs); err != nil {
			return err
		}
		if err := repos.PropertyRepo.DeleteAllocationRules(ctx, propertyID, expenseType); err != nil {
			return err
		}
		for _, a := range req.Allocations {
			err := repos.PropertyRepo.UpsertAllocationRule(ctx, domain.ExpenseAllocationRule{
				PropertyID:    propertyID,
				OwnerID:       a.OwnerID,
				ExpenseType:   expenseType,
				AllocationPct: a.AllocationPct,
			})
			if err != nil {
				return err
			}
		}
		saved, err := repos.PropertyRepo.ListAllocationRules(ctx, propertyID)
		if err != nil {
			return err
		}
		for _, r := range saved {
			if r.ExpenseType == expenseType {
				rules = append(rules, r)
			}
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to replace allocation rules",
			slog.Int64("property_id", propertyID),
			slog.String("expense_type", expenseType))
		return nil, err
	}
	s.LogInfo(ctx, "Allocation rules replaced",
		slog.Int64("property_id", propertyID),
		slog.String("expense_type", expenseType),
		slog.Int("owners", len(rules)))
	return rules, nil
}

func (s *allocationService) GetAllocationRules(ctx context.Context, propertyID int64) ([]domain.ExpenseAllocationRule, error) {
	repos := s.store.Repositories()
	if _, err := repos.PropertyRepo.FindPropertyByID(ctx, propertyID); err != nil {
		return nil, err
	}
	return repos.PropertyRepo.ListAllocationRules(ctx, propertyID)
}

// requireOwners checks the property exists and every owner has a stake in it.
func requireOwners(ctx context.Context, repos portsrepo.RepositoryProvider, propertyID int64, ownerIDs []int64) error {
	if _, err := repos.PropertyRepo.FindPropertyByID(ctx, propertyID); err != nil {
		return err
	}
	ownership, err := repos.PropertyRepo.ListOwnership(ctx, propertyID)
	if err != nil {
		return err
	}
	for _, id := range ownerIDs {
		if _, ok := capitalAccountFor(ownership, id); !ok {
			return fmt.Errorf("%w: owner %d has no ownership in property %d", apperrors.ErrNotFound, id, propertyID)
		}
	}
	return nil
}
