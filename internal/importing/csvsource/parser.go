// Package csvsource turns bank statement CSV exports into raw transactions.
package csvsource

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/utils/hashing"
	"github.com/shopspring/decimal"
)

var errSkipRow = errors.New("row skipped")

var amountCleaner = strings.NewReplacer(",", "", "$", "", "€", "", "£", "", " ", "")

// Result is a parsed statement. Skipped counts data rows that could not be parsed.
type Result struct {
	Transactions []domain.RawTransaction
	Skipped      int
}

// ParseFile opens path and parses it with p.
func ParseFile(path string, p Profile) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open statement %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f, p)
}

// Parse reads a statement. Rows that fail to parse are counted and skipped;
// only a missing header or an unreadable file is an error.
func Parse(r io.Reader, p Profile) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	br := bufio.NewReader(r)
	// Excel writes a byte order mark in front of UTF-8 exports.
	if bom, err := br.Peek(3); err == nil && string(bom) == "\xef\xbb\xbf" {
		_, _ = br.Discard(3)
	}
	for i := 0; i < p.SkipRows; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			return &Result{Transactions: []domain.RawTransaction{}}, nil
		}
	}

	reader := csv.NewReader(br)
	reader.Comma = []rune(p.Delimiter)[0]
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: statement has no header row", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to read statement header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	cols, err := resolveColumns(index, p.Columns)
	if err != nil {
		return nil, err
	}

	res := &Result{Transactions: []domain.RawTransaction{}}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				res.Skipped++
				continue
			}
			return nil, fmt.Errorf("failed to read statement: %w", err)
		}
		txn, err := parseRow(record, cols, p)
		if err != nil {
			res.Skipped++
			continue
		}
		res.Transactions = append(res.Transactions, txn)
	}
	return res, nil
}

// columnIndex holds header positions; -1 means the column is not used.
type columnIndex struct {
	date, description, amount, debit, credit, reference int
}

func resolveColumns(index map[string]int, c Columns) (columnIndex, error) {
	find := func(name string, required bool) (int, error) {
		if name == "" {
			return -1, nil
		}
		i, ok := index[name]
		if !ok {
			if required {
				return -1, fmt.Errorf("%w: statement has no %q column", apperrors.ErrValidation, name)
			}
			return -1, nil
		}
		return i, nil
	}

	var (
		ci  columnIndex
		err error
	)
	if ci.date, err = find(c.Date, true); err != nil {
		return ci, err
	}
	if ci.description, err = find(c.Description, true); err != nil {
		return ci, err
	}
	if ci.amount, err = find(c.Amount, c.Debit == ""); err != nil {
		return ci, err
	}
	if ci.amount < 0 {
		if ci.debit, err = find(c.Debit, true); err != nil {
			return ci, err
		}
		if ci.credit, err = find(c.Credit, true); err != nil {
			return ci, err
		}
	} else {
		ci.debit, ci.credit = -1, -1
	}
	ci.reference, _ = find(c.Reference, false)
	return ci, nil
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func parseAmount(s string) (decimal.Decimal, error) {
	cleaned := amountCleaner.Replace(s)
	if cleaned == "" {
		return decimal.Zero, errSkipRow
	}
	return decimal.NewFromString(cleaned)
}

func parseRow(record []string, cols columnIndex, p Profile) (domain.RawTransaction, error) {
	date, err := time.Parse(p.DateLayout, field(record, cols.date))
	if err != nil {
		return domain.RawTransaction{}, err
	}
	description := field(record, cols.description)
	if description == "" {
		return domain.RawTransaction{}, errSkipRow
	}

	var amount decimal.Decimal
	if cols.amount >= 0 {
		if amount, err = parseAmount(field(record, cols.amount)); err != nil {
			return domain.RawTransaction{}, err
		}
		amount = amount.Mul(decimal.NewFromFloat(p.AmountMultiplier))
	} else {
		debit, credit := decimal.Zero, decimal.Zero
		if s := field(record, cols.debit); s != "" {
			if debit, err = parseAmount(s); err != nil {
				return domain.RawTransaction{}, err
			}
		}
		if s := field(record, cols.credit); s != "" {
			if credit, err = parseAmount(s); err != nil {
				return domain.RawTransaction{}, err
			}
		}
		amount = credit.Sub(debit)
	}
	if p.SignConvention == SignInverted {
		amount = amount.Neg()
	}
	amount = amount.Round(domain.AmountPlaces)

	txn := domain.RawTransaction{
		Date:        domain.TruncateDate(date),
		Description: description,
		Amount:      amount,
		Fingerprint: hashing.Fingerprint(date, amount, description),
	}
	if ref := field(record, cols.reference); ref != "" {
		txn.Reference = &ref
	}
	return txn, nil
}
