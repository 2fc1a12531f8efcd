package dto

import (
	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntryLineRequest is one line of a journal entry to post.
type EntryLineRequest struct {
	AccountID int64           `json:"accountID" binding:"required,gt=0"`
	Amount    decimal.Decimal `json:"amount" binding:"amount2dp"`
}

// PostEntryRequest defines the data needed to post a journal entry.
type PostEntryRequest struct {
	Date        string             `json:"date" binding:"required,isodate"`
	Description string             `json:"description" binding:"required"`
	Reference   *string            `json:"reference"`
	CategoryID  *int64             `json:"categoryID"`
	Lines       []EntryLineRequest `json:"lines" binding:"required,dive"`
}

// ToProposedEntry converts the request into a domain entry ready for validation.
func (r PostEntryRequest) ToProposedEntry() (domain.ProposedEntry, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return domain.ProposedEntry{}, err
	}
	lines := make([]domain.BookEntry, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = domain.Line(l.AccountID, l.Amount)
	}
	entry := domain.NewProposedEntry(date, r.Description, lines...)
	entry.Header.Reference = r.Reference
	entry.Header.CategoryID = r.CategoryID
	return entry, nil
}

// PostEntryResponse identifies the posted journal entry.
type PostEntryResponse struct {
	JournalEntryID int64 `json:"journalEntryID"`
}

// UpdateEntryCategoryRequest sets or clears the category of an entry.
type UpdateEntryCategoryRequest struct {
	CategoryID *int64 `json:"categoryID"`
}

// EntryLineResponse defines the data returned for a book entry.
type EntryLineResponse struct {
	ID          int64           `json:"id"`
	AccountID   int64           `json:"accountID"`
	AccountName string          `json:"accountName,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	ID             int64               `json:"id"`
	Date           string              `json:"date"`
	Description    string              `json:"description"`
	Reference      *string             `json:"reference,omitempty"`
	CategoryID     *int64              `json:"categoryID,omitempty"`
	CategoryName   *string             `json:"categoryName,omitempty"`
	ImportBatchID  *int64              `json:"importBatchID,omitempty"`
	EntriesSummary string              `json:"entriesSummary,omitempty"`
	Lines          []EntryLineResponse `json:"lines,omitempty"`
}

// ListEntriesResponse is one page of journal entries.
type ListEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

func toJournalEntryResponse(e domain.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		ID:            e.ID,
		Date:          domain.FormatDate(e.Date),
		Description:   e.Description,
		Reference:     e.Reference,
		CategoryID:    e.CategoryID,
		ImportBatchID: e.ImportBatchID,
	}
}

// ToEntryListResponses converts list items into responses.
func ToEntryListResponses(items []domain.EntryListItem) []JournalEntryResponse {
	responses := make([]JournalEntryResponse, len(items))
	for i, item := range items {
		resp := toJournalEntryResponse(item.JournalEntry)
		resp.CategoryName = item.CategoryName
		resp.EntriesSummary = item.EntriesSummary
		responses[i] = resp
	}
	return responses
}

// ToEntryDetailResponse converts a journal entry with its lines.
func ToEntryDetailResponse(d *domain.EntryDetail) JournalEntryResponse {
	resp := toJournalEntryResponse(d.JournalEntry)
	resp.Lines = make([]EntryLineResponse, len(d.Lines))
	for i, l := range d.Lines {
		resp.Lines[i] = EntryLineResponse{
			ID:          l.ID,
			AccountID:   l.AccountID,
			AccountName: l.AccountName,
			Amount:      l.Amount,
		}
	}
	return resp
}
