package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/household_ledger/internal/utils/mapping"
)

type CategoryRepository struct {
	BaseRepository
}

func newCategoryRepository(q querier) *CategoryRepository {
	return &CategoryRepository{BaseRepository: BaseRepository{q: q}}
}

// Ensure CategoryRepository implements portsrepo.CategoryRepositoryFacade
var _ portsrepo.CategoryRepositoryFacade = (*CategoryRepository)(nil)

const categoryColumns = `id, name, parent_id, is_system`

func scanCategory(row rowScanner) (domain.Category, error) {
	var (
		cat      domain.Category
		parentID sql.NullInt64
		isSystem int
	)
	if err := row.Scan(&cat.ID, &cat.Name, &parentID, &isSystem); err != nil {
		return domain.Category{}, err
	}
	cat.ParentID = mapping.FromNullInt64(parentID)
	cat.IsSystem = isSystem != 0
	return cat, nil
}

func (r *CategoryRepository) SaveCategory(ctx context.Context, category domain.Category) (int64, error) {
	isSystem := 0
	if category.IsSystem {
		isSystem = 1
	}
	return r.insert(ctx, "failed to save category "+category.Name,
		`INSERT INTO categories (name, parent_id, is_system) VALUES (?, ?, ?);`,
		category.Name, mapping.ToNullInt64(category.ParentID), isSystem)
}

func (r *CategoryRepository) FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	cat, err := scanCategory(r.q.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = ?;`, categoryID))
	if err != nil {
		return nil, translateError(fmt.Sprintf("failed to find category %d", categoryID), err)
	}
	return &cat, nil
}

// FindCategoryByName prefers a top-level category when the name is reused under parents.
func (r *CategoryRepository) FindCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	cat, err := scanCategory(r.q.QueryRowContext(ctx, `
		SELECT `+categoryColumns+` FROM categories
		WHERE name = ?
		ORDER BY parent_id IS NOT NULL, id
		LIMIT 1;`, name))
	if err != nil {
		return nil, translateError(fmt.Sprintf("failed to find category %q", name), err)
	}
	return &cat, nil
}

func (r *CategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY name, id;`)
	if err != nil {
		return nil, translateError("failed to list categories", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, wrapScan("list categories", err)
		}
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("failed to iterate categories", err)
	}
	return categories, nil
}

func (r *CategoryRepository) SaveRule(ctx context.Context, rule domain.CategorizationRule) (int64, error) {
	return r.insert(ctx, "failed to save categorization rule", `
		INSERT INTO categorization_rules (pattern, category_id, match_type, priority, source)
		VALUES (?, ?, ?, ?, ?);`,
		rule.Pattern, rule.CategoryID, string(rule.MatchType), rule.Priority, string(rule.Source))
}

func (r *CategoryRepository) ListRules(ctx context.Context) ([]domain.CategorizationRule, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, pattern, category_id, match_type, priority, source
		FROM categorization_rules
		ORDER BY priority DESC, id;`)
	if err != nil {
		return nil, translateError("failed to list categorization rules", err)
	}
	defer rows.Close()

	rules := []domain.CategorizationRule{}
	for rows.Next() {
		var (
			rule      domain.CategorizationRule
			matchType string
			source    string
		)
		if err := rows.Scan(&rule.ID, &rule.Pattern, &rule.CategoryID, &matchType, &rule.Priority, &source); err != nil {
			return nil, wrapScan("list rules", err)
		}
		rule.MatchType = domain.MatchType(matchType)
		rule.Source = domain.RuleSource(source)
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("failed to iterate categorization rules", err)
	}
	return rules, nil
}
