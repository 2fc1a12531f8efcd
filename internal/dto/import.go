package dto

import (
	"strings"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ImportMeta describes where an import came from and which account it feeds.
type ImportMeta struct {
	Filename    string `json:"filename"`
	BankConfig  string `json:"bankConfig"`
	AccountName string `json:"accountName" binding:"required"`
}

// ImportTransactionRequest is one already-parsed statement row.
type ImportTransactionRequest struct {
	Date        string          `json:"date" binding:"required,isodate"`
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"amount2dp"`
	Reference   *string         `json:"reference"`
}

// ImportRequest is a JSON import of parsed rows.
type ImportRequest struct {
	ImportMeta
	Transactions []ImportTransactionRequest `json:"transactions" binding:"dive"`
}

// ToRawTransactions converts the request rows. Fingerprints are left for the
// import service to compute.
func (r ImportRequest) ToRawTransactions() ([]domain.RawTransaction, error) {
	txns := make([]domain.RawTransaction, len(r.Transactions))
	for i, t := range r.Transactions {
		date, err := domain.ParseDate(t.Date)
		if err != nil {
			return nil, err
		}
		txns[i] = domain.RawTransaction{
			Date:        date,
			Description: strings.TrimSpace(t.Description),
			Amount:      t.Amount,
			Reference:   t.Reference,
		}
	}
	return txns, nil
}

// ImportPreviewResponse lists parsed rows with duplicate flags and suggested categories.
type ImportPreviewResponse struct {
	Transactions []domain.RawTransaction `json:"transactions"`
	Skipped      int                     `json:"skipped"`
}

// ImportResponse reports the outcome of an import run.
type ImportResponse struct {
	domain.ImportResult
	Skipped int `json:"skipped"`
}
