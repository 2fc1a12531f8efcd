package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// JournalEntry is the header of one balanced group of book entries.
type JournalEntry struct {
	ID            int64     `json:"id"`
	Date          time.Time `json:"date"`
	Description   string    `json:"description"`
	Reference     *string   `json:"reference,omitempty"`
	CategoryID    *int64    `json:"categoryID,omitempty"`
	ImportBatchID *int64    `json:"importBatchID,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ProposedEntry is a journal entry that has not been written yet.
type ProposedEntry struct {
	Header JournalEntry
	Lines  []BookEntry
}

// NewProposedEntry builds a proposed entry dated on the calendar day of date.
func NewProposedEntry(date time.Time, description string, lines ...BookEntry) ProposedEntry {
	return ProposedEntry{
		Header: JournalEntry{Date: TruncateDate(date), Description: description},
		Lines:  lines,
	}
}

// Validate checks the zero-sum rule: at least two lines, every amount in
// whole cents, and a total of exactly zero once rounded to cents.
func (p ProposedEntry) Validate() error {
	if len(p.Lines) < 2 {
		return fmt.Errorf("%w: journal entry needs at least two lines, got %d", apperrors.ErrValidation, len(p.Lines))
	}
	sum := decimal.Zero
	for i, line := range p.Lines {
		if line.AccountID <= 0 {
			return fmt.Errorf("%w: line %d has no account", apperrors.ErrValidation, i)
		}
		if !HasMinorUnitPrecision(line.Amount) {
			return fmt.Errorf("%w: line %d amount %s has more than %d decimal places",
				apperrors.ErrValidation, i, line.Amount.String(), AmountPlaces)
		}
		if !WithinAmountLimit(line.Amount) {
			return fmt.Errorf("%w: line %d amount %s is out of range, magnitude must be below %s",
				apperrors.ErrValidation, i, line.Amount.String(), MaxAmount.String())
		}
		sum = sum.Add(line.Amount)
	}
	if !sum.Round(AmountPlaces).IsZero() {
		return fmt.Errorf("%w: journal entry lines sum to %s, expected 0",
			apperrors.ErrValidation, sum.StringFixed(AmountPlaces))
	}
	return nil
}

// AccountIDs returns the distinct accounts referenced by the lines, in
// first-seen order.
func (p ProposedEntry) AccountIDs() []int64 {
	seen := make(map[int64]struct{}, len(p.Lines))
	ids := make([]int64, 0, len(p.Lines))
	for _, line := range p.Lines {
		if _, ok := seen[line.AccountID]; ok {
			continue
		}
		seen[line.AccountID] = struct{}{}
		ids = append(ids, line.AccountID)
	}
	return ids
}

// EntryFilter narrows ListEntries. Nil fields do not filter.
type EntryFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *int64
	AccountID  *int64
}

// EntryListItem is a journal entry with a one-line rendering of its lines,
// "account:amount|account:amount".
type EntryListItem struct {
	JournalEntry
	CategoryName   *string `json:"categoryName,omitempty"`
	EntriesSummary string  `json:"entriesSummary"`
}

// EntryDetail is a journal entry together with all of its lines.
type EntryDetail struct {
	JournalEntry
	Lines []BookEntry `json:"lines"`
}
