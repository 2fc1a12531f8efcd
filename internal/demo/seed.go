// Package demo loads a small example household into an empty ledger.
package demo

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

const (
	PropertyName       = "Demo House"
	OpeningBalanceName = "Opening Balances"
)

var openingDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Result identifies what Seed created.
type Result struct {
	PropertyID int64
	MortgageID int64
	Owners     []domain.PropertyOwnership
}

type contribution struct {
	owner  string
	amount string
}

// Seed creates a property valued at 550,000 with a 400,000 mortgage, owned by
// Alice (60,000 contributed) and Bob (40,000 contributed). Running it against
// a ledger that already holds the demo property returns apperrors.ErrDuplicate.
func Seed(ctx context.Context, svc *portssvc.ServiceContainer) (*Result, error) {
	existing, err := svc.Property.ListProperties(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range existing {
		if p.Name == PropertyName {
			return nil, fmt.Errorf("%w: property %q is already seeded", apperrors.ErrDuplicate, PropertyName)
		}
	}

	price := decimal.NewFromInt(500000)
	purchaseDate := domain.FormatDate(openingDate)
	property, err := svc.Property.CreateProperty(ctx, dto.CreatePropertyRequest{
		Name:          PropertyName,
		PropertyType:  "house",
		PurchaseDate:  &purchaseDate,
		PurchasePrice: &price,
	})
	if err != nil {
		return nil, err
	}
	result := &Result{PropertyID: property.ID}

	opening, err := svc.Account.GetOrCreateAccount(ctx, OpeningBalanceName, domain.Equity)
	if err != nil {
		return nil, err
	}
	for _, c := range []contribution{{"Alice", "60000"}, {"Bob", "40000"}} {
		owner, err := svc.Property.CreateOwner(ctx, dto.CreateOwnerRequest{Name: c.owner})
		if err != nil {
			return nil, err
		}
		link, err := svc.Property.AddOwnership(ctx, property.ID, dto.AddOwnershipRequest{OwnerID: owner.ID})
		if err != nil {
			return nil, err
		}
		amt := decimal.RequireFromString(c.amount)
		if _, err := svc.Ledger.PostEntry(ctx, domain.JournalEntry{
			Date:        openingDate,
			Description: "Capital contribution - " + c.owner,
		}, []domain.BookEntry{
			domain.Line(link.CapitalAccountID, amt),
			domain.Line(opening.ID, amt.Neg()),
		}); err != nil {
			return nil, err
		}
		result.Owners = append(result.Owners, *link)
	}

	if _, err := svc.Property.AddValuation(ctx, property.ID, dto.AddValuationRequest{
		ValuationDate: purchaseDate,
		Amount:        decimal.NewFromInt(550000),
		Source:        "estimate",
	}); err != nil {
		return nil, err
	}

	mortgage, err := svc.Mortgage.AddMortgage(ctx, property.ID, dto.AddMortgageRequest{
		Lender:         "Demo Bank",
		OriginalAmount: decimal.NewFromInt(400000),
		StartDate:      purchaseDate,
	})
	if err != nil {
		return nil, err
	}
	result.MortgageID = mortgage.ID

	bank, err := svc.Account.GetOrCreateAccount(ctx, domain.BankAccountName, domain.Asset)
	if err != nil {
		return nil, err
	}
	principal := decimal.NewFromInt(400000)
	if _, err := svc.Ledger.PostEntry(ctx, domain.JournalEntry{
		Date:        openingDate,
		Description: "Mortgage drawdown - Demo Bank",
	}, []domain.BookEntry{
		domain.Line(bank.ID, principal),
		domain.Line(mortgage.LiabilityAccountID, principal.Neg()),
	}); err != nil {
		return nil, err
	}
	return result, nil
}
