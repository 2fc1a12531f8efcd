package services

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/dto"
)

// FingerprintSvc is the duplicate-suppression index, scoped per account.
type FingerprintSvc interface {
	Exists(ctx context.Context, fingerprint string, accountID int64) (bool, error)
	Record(ctx context.Context, fingerprint string, accountID int64, journalEntryID int64) error

	// MarkDuplicates flags rows already imported into the account and rows
	// repeated earlier in the same slice.
	MarkDuplicates(ctx context.Context, txns []domain.RawTransaction, accountID int64) ([]domain.RawTransaction, error)
}

// CategorySvcFacade manages categories and categorization rules.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)

	ListRules(ctx context.Context) ([]domain.CategorizationRule, error)
	AddRule(ctx context.Context, req dto.AddRuleRequest) (*domain.CategorizationRule, error)

	// Categorize suggests a category for each non-duplicate row.
	Categorize(ctx context.Context, txns []domain.RawTransaction) ([]domain.RawTransaction, error)

	// LearnFromCorrection stores a contains rule for the description.
	LearnFromCorrection(ctx context.Context, req dto.LearnCategoryRequest) (*domain.CategorizationRule, error)
}

// ImportSvc posts parsed statement rows into the ledger.
type ImportSvc interface {
	Run(ctx context.Context, meta dto.ImportMeta, txns []domain.RawTransaction) (*domain.ImportResult, error)
	Preview(ctx context.Context, meta dto.ImportMeta, txns []domain.RawTransaction) ([]domain.RawTransaction, error)
	ListBatches(ctx context.Context) ([]domain.ImportBatch, error)
}
