package csvsource_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/importing/csvsource"
	"github.com/SscSPs/household_ledger/internal/utils/hashing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookup(t *testing.T, name string) csvsource.Profile {
	t.Helper()
	reg, err := csvsource.NewRegistry("")
	require.NoError(t, err)
	p, err := reg.Lookup(name)
	require.NoError(t, err)
	return p
}

func TestParse_Generic(t *testing.T) {
	input := "Date,Description,Amount\n" +
		"2024-01-15,Albert Heijn,-42.10\n" +
		"2024-01-16,Salary,\"3,000.00\"\n" +
		"not-a-date,Broken,1.00\n" +
		"2024-01-17,,5.00\n"

	res, err := csvsource.Parse(strings.NewReader(input), lookup(t, ""))
	require.NoError(t, err)
	require.Len(t, res.Transactions, 2)
	assert.Equal(t, 2, res.Skipped)

	first := res.Transactions[0]
	assert.Equal(t, "2024-01-15", first.Date.Format("2006-01-02"))
	assert.Equal(t, "Albert Heijn", first.Description)
	assert.Equal(t, "-42.10", first.Amount.StringFixed(2))
	assert.Equal(t, hashing.TransactionFingerprint("2024-01-15", "-42.10", "albert heijn"), first.Fingerprint)

	assert.Equal(t, "3000.00", res.Transactions[1].Amount.StringFixed(2))
}

func TestParse_DebitCreditColumns(t *testing.T) {
	input := "Date,Description,Debit,Credit\n" +
		"15/01/2024,Rent,1200.00,\n" +
		"31/01/2024,Refund,,15.50\n"

	res, err := csvsource.Parse(strings.NewReader(input), lookup(t, "uk-bank-debit-credit"))
	require.NoError(t, err)
	require.Len(t, res.Transactions, 2)
	assert.Equal(t, "-1200.00", res.Transactions[0].Amount.StringFixed(2))
	assert.Equal(t, "15.50", res.Transactions[1].Amount.StringFixed(2))
	assert.Equal(t, 31, res.Transactions[1].Date.Day())
}

func TestParse_ProfileOptions(t *testing.T) {
	tests := []struct {
		name    string
		profile csvsource.Profile
		input   string
		want    []string
	}{
		{
			name: "inverted sign",
			profile: csvsource.Profile{
				Name:           "card",
				DateLayout:     "2006-01-02",
				Columns:        csvsource.Columns{Date: "When", Description: "What", Amount: "Sum"},
				SignConvention: csvsource.SignInverted,
			},
			input: "When,What,Sum\n2024-02-01,Coffee,3.50\n",
			want:  []string{"-3.50"},
		},
		{
			name: "semicolon delimiter and skipped preamble",
			profile: csvsource.Profile{
				Name:       "semicolon",
				DateLayout: "02-01-2006",
				Columns:    csvsource.Columns{Date: "Datum", Description: "Omschrijving", Amount: "Bedrag"},
				Delimiter:  ";",
				SkipRows:   2,
			},
			input: "Export of account NL00BANK\n\nDatum;Omschrijving;Bedrag\n01-02-2024;Huur;-950.00\n",
			want:  []string{"-950.00"},
		},
		{
			name: "multiplier for cents",
			profile: csvsource.Profile{
				Name:             "cents",
				DateLayout:       "2006-01-02",
				Columns:          csvsource.Columns{Date: "Date", Description: "Description", Amount: "Amount"},
				AmountMultiplier: 0.01,
			},
			input: "Date,Description,Amount\n2024-02-01,Coffee,-350\n",
			want:  []string{"-3.50"},
		},
		{
			name: "byte order mark",
			profile: csvsource.Profile{
				Name:       "bom",
				DateLayout: "2006-01-02",
				Columns:    csvsource.Columns{Date: "Date", Description: "Description", Amount: "Amount"},
			},
			input: "\xef\xbb\xbfDate,Description,Amount\n2024-02-01,Coffee,-1.25\n",
			want:  []string{"-1.25"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := csvsource.Parse(strings.NewReader(tt.input), tt.profile)
			require.NoError(t, err)
			got := make([]string, 0, len(res.Transactions))
			for _, txn := range res.Transactions {
				got = append(got, txn.Amount.StringFixed(2))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_MissingColumn(t *testing.T) {
	_, err := csvsource.Parse(strings.NewReader("Date,Memo,Amount\n"), lookup(t, csvsource.GenericProfile))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestParse_Reference(t *testing.T) {
	p := lookup(t, csvsource.GenericProfile)
	p.Columns.Reference = "Ref"
	res, err := csvsource.Parse(strings.NewReader("Date,Description,Amount,Ref\n2024-03-01,Gym,-30,INV-9\n"), p)
	require.NoError(t, err)
	require.Len(t, res.Transactions, 1)
	require.NotNil(t, res.Transactions[0].Reference)
	assert.Equal(t, "INV-9", *res.Transactions[0].Reference)
}

func TestRegistry_LoadsProfilesFromDir(t *testing.T) {
	dir := t.TempDir()
	yaml := "name: ing\n" +
		"date_layout: \"20060102\"\n" +
		"delimiter: \";\"\n" +
		"sign_convention: inverted\n" +
		"columns:\n" +
		"  date: Datum\n" +
		"  description: Naam\n" +
		"  amount: Bedrag\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ing.yaml"), []byte(yaml), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yml"), []byte("columns: {}\n"), 0o600))

	reg, err := csvsource.NewRegistry(dir)
	require.NoError(t, err)
	assert.Contains(t, reg.Names(), "ing")
	assert.NotContains(t, reg.Names(), "broken")

	p, err := reg.Lookup("ing")
	require.NoError(t, err)
	assert.Equal(t, "20060102", p.DateLayout)
	assert.Equal(t, csvsource.SignInverted, p.SignConvention)
	assert.Equal(t, 1.0, p.AmountMultiplier)

	_, err = reg.Lookup("nope")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
