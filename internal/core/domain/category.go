package domain

// Category classifies journal entries for reporting.
type Category struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ParentID *int64 `json:"parentID,omitempty"`
	IsSystem bool   `json:"isSystem"`
}

// UncategorizedLabel is reported for entries without a category.
const UncategorizedLabel = "Uncategorized"

// MatchType selects how a categorization rule pattern is compared.
type MatchType string

const (
	MatchContains   MatchType = "contains"
	MatchStartsWith MatchType = "startswith"
	MatchExact      MatchType = "exact"
	MatchRegex      MatchType = "regex"
)

// IsValid reports whether m is a known match type.
func (m MatchType) IsValid() bool {
	switch m {
	case MatchContains, MatchStartsWith, MatchExact, MatchRegex:
		return true
	}
	return false
}

// RuleSource records who created a categorization rule.
type RuleSource string

const (
	RuleSourceUser   RuleSource = "user"
	RuleSourceAI     RuleSource = "ai"
	RuleSourceSystem RuleSource = "system"
)

// LearnedRulePriority is the priority given to rules learned from a user correction.
const LearnedRulePriority = 10

// CategorizationRule maps a description pattern to a category. Rules are
// evaluated by priority descending, then by id.
type CategorizationRule struct {
	ID         int64      `json:"id"`
	Pattern    string     `json:"pattern"`
	CategoryID int64      `json:"categoryID"`
	MatchType  MatchType  `json:"matchType"`
	Priority   int        `json:"priority"`
	Source     RuleSource `json:"source"`
}
