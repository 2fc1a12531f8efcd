package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(q querier) *PgxCategoryRepository {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{q: q}}
}

// Ensure PgxCategoryRepository implements portsrepo.CategoryRepositoryFacade
var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

const categoryColumns = `id, name, parent_id, is_system`

func scanCategory(row pgx.CollectableRow) (domain.Category, error) {
	var cat domain.Category
	err := row.Scan(&cat.ID, &cat.Name, &cat.ParentID, &cat.IsSystem)
	return cat, err
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) (int64, error) {
	return r.insertReturningID(ctx, "failed to save category "+category.Name,
		`INSERT INTO categories (name, parent_id, is_system) VALUES ($1, $2, $3) RETURNING id;`,
		category.Name, category.ParentID, category.IsSystem)
}

func (r *PgxCategoryRepository) findOne(ctx context.Context, op, query string, args ...any) (*domain.Category, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(op, err)
	}
	cat, err := pgx.CollectExactlyOneRow(rows, scanCategory)
	if err != nil {
		return nil, translateError(op, err)
	}
	return &cat, nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	return r.findOne(ctx, fmt.Sprintf("failed to find category %d", categoryID),
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1;`, categoryID)
}

// FindCategoryByName prefers a top-level category when the name is reused under parents.
func (r *PgxCategoryRepository) FindCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	return r.findOne(ctx, fmt.Sprintf("failed to find category %q", name), `
		SELECT `+categoryColumns+` FROM categories
		WHERE name = $1
		ORDER BY parent_id IS NOT NULL, id
		LIMIT 1;`, name)
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.q.Query(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY name, id;`)
	if err != nil {
		return nil, translateError("failed to list categories", err)
	}
	categories, err := pgx.CollectRows(rows, scanCategory)
	if err != nil {
		return nil, translateError("failed to read categories", err)
	}
	return categories, nil
}

func (r *PgxCategoryRepository) SaveRule(ctx context.Context, rule domain.CategorizationRule) (int64, error) {
	return r.insertReturningID(ctx, "failed to save categorization rule", `
		INSERT INTO categorization_rules (pattern, category_id, match_type, priority, source)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;`,
		rule.Pattern, rule.CategoryID, string(rule.MatchType), rule.Priority, string(rule.Source))
}

func (r *PgxCategoryRepository) ListRules(ctx context.Context) ([]domain.CategorizationRule, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, pattern, category_id, match_type, priority, source
		FROM categorization_rules
		ORDER BY priority DESC, id;`)
	if err != nil {
		return nil, translateError("failed to list categorization rules", err)
	}
	rules, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CategorizationRule, error) {
		var (
			rule      domain.CategorizationRule
			matchType string
			source    string
		)
		err := row.Scan(&rule.ID, &rule.Pattern, &rule.CategoryID, &matchType, &rule.Priority, &source)
		rule.MatchType = domain.MatchType(matchType)
		rule.Source = domain.RuleSource(source)
		return rule, err
	})
	if err != nil {
		return nil, translateError("failed to read categorization rules", err)
	}
	return rules, nil
}
