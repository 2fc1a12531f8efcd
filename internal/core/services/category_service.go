package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
)

// categoryService manages categories and the rule-based categorizer.
// Rules are loaded on every call so new rules apply immediately.
type categoryService struct {
	BaseService
	store portsrepo.Store
}

// NewCategoryService creates a new category service backed by store.
func NewCategoryService(store portsrepo.Store) portssvc.CategorySvcFacade {
	return &categoryService{store: store}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

// ruleMatcher is a categorization rule prepared for matching.
type ruleMatcher struct {
	rule    domain.CategorizationRule
	pattern string
	re      *regexp.Regexp
}

// compileRules prepares rules in evaluation order. Regex rules that do not
// compile are dropped.
func compileRules(rules []domain.CategorizationRule) []ruleMatcher {
	matchers := make([]ruleMatcher, 0, len(rules))
	for _, r := range rules {
		m := ruleMatcher{rule: r, pattern: strings.ToLower(r.Pattern)}
		if r.MatchType == domain.MatchRegex {
			re, err := regexp.Compile("(?i)" + r.Pattern)
			if err != nil {
				continue
			}
			m.re = re
		}
		matchers = append(matchers, m)
	}
	return matchers
}

func (m ruleMatcher) matches(description string) bool {
	text := strings.ToLower(description)
	switch m.rule.MatchType {
	case domain.MatchContains:
		return strings.Contains(text, m.pattern)
	case domain.MatchStartsWith:
		return strings.HasPrefix(text, m.pattern)
	case domain.MatchExact:
		return text == m.pattern
	case domain.MatchRegex:
		return m.re != nil && m.re.MatchString(description)
	}
	return false
}

// suggestCategory returns the category of the first matching rule.
func suggestCategory(matchers []ruleMatcher, description string) *int64 {
	for _, m := range matchers {
		if m.matches(description) {
			id := m.rule.CategoryID
			return &id
		}
	}
	return nil
}

// categorize fills SuggestedCategoryID on every non-duplicate row.
func categorize(ctx context.Context, repo portsrepo.CategoryReader, txns []domain.RawTransaction) ([]domain.RawTransaction, error) {
	rules, err := repo.ListRules(ctx)
	if err != nil {
		return nil, err
	}
	matchers := compileRules(rules)
	out := make([]domain.RawTransaction, len(txns))
	for i, txn := range txns {
		if !txn.IsDuplicate {
			txn.SuggestedCategoryID = suggestCategory(matchers, txn.Description)
		}
		out[i] = txn
	}
	return out, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	name, err := requireName("category name", req.Name)
	if err != nil {
		return nil, err
	}
	category := domain.Category{Name: name, ParentID: req.ParentID}
	err = s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if req.ParentID != nil {
			if _, err := repos.CategoryRepo.FindCategoryByID(ctx, *req.ParentID); err != nil {
				return fmt.Errorf("parent category: %w", err)
			}
		}
		category.ID, err = repos.CategoryRepo.SaveCategory(ctx, category)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create category", slog.String("name", name))
		return nil, err
	}
	return &category, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.store.Repositories().CategoryRepo.ListCategories(ctx)
}

func (s *categoryService) ListRules(ctx context.Context) ([]domain.CategorizationRule, error) {
	return s.store.Repositories().CategoryRepo.ListRules(ctx)
}

func (s *categoryService) AddRule(ctx context.Context, req dto.AddRuleRequest) (*domain.CategorizationRule, error) {
	rule, err := newRule(req)
	if err != nil {
		return nil, err
	}
	err = s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		return saveRule(ctx, repos, &rule)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to add categorization rule", slog.String("pattern", rule.Pattern))
		return nil, err
	}
	s.LogInfo(ctx, "Categorization rule added",
		slog.Int64("rule_id", rule.ID),
		slog.Int64("category_id", rule.CategoryID))
	return &rule, nil
}

func newRule(req dto.AddRuleRequest) (domain.CategorizationRule, error) {
	rule := domain.CategorizationRule{
		Pattern:    strings.TrimSpace(req.Pattern),
		CategoryID: req.CategoryID,
		MatchType:  req.MatchType,
		Priority:   req.Priority,
		Source:     req.Source,
	}
	if rule.Pattern == "" {
		return rule, fmt.Errorf("%w: rule pattern is required", apperrors.ErrValidation)
	}
	if rule.MatchType == "" {
		rule.MatchType = domain.MatchContains
	}
	if !rule.MatchType.IsValid() {
		return rule, fmt.Errorf("%w: unknown match type %q", apperrors.ErrValidation, rule.MatchType)
	}
	if rule.MatchType == domain.MatchRegex {
		if _, err := regexp.Compile("(?i)" + rule.Pattern); err != nil {
			return rule, fmt.Errorf("%w: invalid regex %q: %v", apperrors.ErrValidation, rule.Pattern, err)
		}
	}
	if rule.Source == "" {
		rule.Source = domain.RuleSourceUser
	}
	return rule, nil
}

func saveRule(ctx context.Context, repos portsrepo.RepositoryProvider, rule *domain.CategorizationRule) error {
	if _, err := repos.CategoryRepo.FindCategoryByID(ctx, rule.CategoryID); err != nil {
		return fmt.Errorf("category: %w", err)
	}
	id, err := repos.CategoryRepo.SaveRule(ctx, *rule)
	if err != nil {
		return err
	}
	rule.ID = id
	return nil
}

func (s *categoryService) Categorize(ctx context.Context, txns []domain.RawTransaction) ([]domain.RawTransaction, error) {
	return categorize(ctx, s.store.Repositories().CategoryRepo, txns)
}

// LearnFromCorrection turns a manual categorization into a contains rule on
// the lower-cased description.
func (s *categoryService) LearnFromCorrection(ctx context.Context, req dto.LearnCategoryRequest) (*domain.CategorizationRule, error) {
	rule, err := newRule(dto.AddRuleRequest{
		Pattern:    strings.ToLower(req.Description),
		CategoryID: req.CategoryID,
		MatchType:  domain.MatchContains,
		Priority:   domain.LearnedRulePriority,
		Source:     domain.RuleSourceUser,
	})
	if err != nil {
		return nil, err
	}
	err = s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if err := saveRule(ctx, repos, &rule); err != nil {
			return err
		}
		if req.EntryID == nil {
			return nil
		}
		if _, err := repos.JournalRepo.FindEntryByID(ctx, *req.EntryID); err != nil {
			return err
		}
		categoryID := rule.CategoryID
		return repos.JournalRepo.UpdateEntryCategory(ctx, *req.EntryID, &categoryID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to learn from correction", slog.Int64("category_id", req.CategoryID))
		return nil, err
	}
	s.LogInfo(ctx, "Learned categorization rule",
		slog.Int64("rule_id", rule.ID),
		slog.String("pattern", rule.Pattern))
	return &rule, nil
}
