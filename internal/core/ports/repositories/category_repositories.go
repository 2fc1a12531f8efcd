package repositories

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
)

type CategoryReader interface {
	FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error)
	FindCategoryByName(ctx context.Context, name string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// ListRules returns rules ordered by priority descending, then id.
	ListRules(ctx context.Context) ([]domain.CategorizationRule, error)
}

type CategoryWriter interface {
	SaveCategory(ctx context.Context, category domain.Category) (int64, error)
	SaveRule(ctx context.Context, rule domain.CategorizationRule) (int64, error)
}

// CategoryRepositoryFacade combines category and categorization rule access.
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
