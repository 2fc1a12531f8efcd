package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
)

// propertyService manages properties, owners and the ownership links between them.
type propertyService struct {
	BaseService
	store portsrepo.Store
}

// NewPropertyService creates a new property service backed by store.
func NewPropertyService(store portsrepo.Store) portssvc.PropertySvcFacade {
	return &propertyService{store: store}
}

var _ portssvc.PropertySvcFacade = (*propertyService)(nil)

// CapitalAccountName is the name of the EQUITY account tracking an owner's
// capital in a property.
func CapitalAccountName(ownerName, propertyName string) string {
	return fmt.Sprintf("Capital - %s - %s", ownerName, propertyName)
}

func (s *propertyService) CreateProperty(ctx context.Context, req dto.CreatePropertyRequest) (*domain.Property, error) {
	name, err := requireName("property name", req.Name)
	if err != nil {
		return nil, err
	}
	property := domain.Property{
		Name:          name,
		Address:       req.Address,
		PropertyType:  strings.TrimSpace(req.PropertyType),
		PurchasePrice: req.PurchasePrice,
		Notes:         req.Notes,
	}
	if property.PropertyType == "" {
		property.PropertyType = domain.DefaultPropertyType
	}
	if req.PurchaseDate != nil {
		date, err := domain.ParseDate(*req.PurchaseDate)
		if err != nil {
			return nil, err
		}
		property.PurchaseDate = &date
	}
	if req.PurchasePrice != nil {
		if err := requireNonNegativeAmount("purchase price", *req.PurchasePrice); err != nil {
			return nil, err
		}
	}

	err = s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		id, err := repos.PropertyRepo.SaveProperty(ctx, property)
		if err != nil {
			return err
		}
		property.ID = id
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create property", slog.String("name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Property created", slog.Int64("property_id", property.ID))
	return s.GetProperty(ctx, property.ID)
}

func (s *propertyService) GetProperty(ctx context.Context, propertyID int64) (*domain.Property, error) {
	return s.store.Repositories().PropertyRepo.FindPropertyByID(ctx, propertyID)
}

func (s *propertyService) ListProperties(ctx context.Context) ([]domain.Property, error) {
	return s.store.Repositories().PropertyRepo.ListProperties(ctx)
}

func (s *propertyService) CreateOwner(ctx context.Context, req dto.CreateOwnerRequest) (*domain.Owner, error) {
	name, err := requireName("owner name", req.Name)
	if err != nil {
		return nil, err
	}

	var owner *domain.Owner
	err = s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		id, err := repos.PropertyRepo.SaveOwner(ctx, domain.Owner{Name: name})
		if err != nil {
			return err
		}
		owner, err = repos.PropertyRepo.FindOwnerByID(ctx, id)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create owner", slog.String("name", name))
		return nil, err
	}
	return owner, nil
}

func (s *propertyService) ListOwners(ctx context.Context) ([]domain.Owner, error) {
	return s.store.Repositories().PropertyRepo.ListOwners(ctx)
}

func (s *propertyService) AddOwnership(ctx context.Context, propertyID int64, req dto.AddOwnershipRequest) (*domain.PropertyOwnership, error) {
	var ownership domain.PropertyOwnership
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		property, err := repos.PropertyRepo.FindPropertyByID(ctx, propertyID)
		if err != nil {
			return err
		}
		owner, err := repos.PropertyRepo.FindOwnerByID(ctx, req.OwnerID)
		if err != nil {
			return err
		}
		existing, err := repos.PropertyRepo.ListOwnership(ctx, propertyID)
		if err != nil {
			return err
		}
		if _, ok := capitalAccountFor(existing, owner.ID); ok {
			return fmt.Errorf("%w: %s already owns %s", apperrors.ErrDuplicate, owner.Name, property.Name)
		}

		capital, err := getOrCreateAccount(ctx, repos.AccountRepo, CapitalAccountName(owner.Name, property.Name), domain.Equity)
		if err != nil {
			return err
		}
		if capital.Type != domain.Equity {
			return fmt.Errorf("%w: account %q exists and is not an EQUITY account", apperrors.ErrValidation, capital.Name)
		}

		ownership = domain.PropertyOwnership{
			PropertyID:       property.ID,
			OwnerID:          owner.ID,
			OwnerName:        owner.Name,
			CapitalAccountID: capital.ID,
		}
		ownership.ID, err = repos.PropertyRepo.SaveOwnership(ctx, ownership)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to add ownership",
			slog.Int64("property_id", propertyID),
			slog.Int64("owner_id", req.OwnerID))
		return nil, err
	}

	s.LogInfo(ctx, "Ownership added",
		slog.Int64("property_id", propertyID),
		slog.Int64("owner_id", req.OwnerID),
		slog.Int64("capital_account_id", ownership.CapitalAccountID))
	return &ownership, nil
}

func (s *propertyService) ListOwnership(ctx context.Context, propertyID int64) ([]domain.PropertyOwnership, error) {
	repos := s.store.Repositories()
	if _, err := repos.PropertyRepo.FindPropertyByID(ctx, propertyID); err != nil {
		return nil, err
	}
	return repos.PropertyRepo.ListOwnership(ctx, propertyID)
}

func (s *propertyService) AddValuation(ctx context.Context, propertyID int64, req dto.AddValuationRequest) (*domain.PropertyValuation, error) {
	date, err := domain.ParseDate(req.ValuationDate)
	if err != nil {
		return nil, err
	}
	if err := requireNonNegativeAmount("valuation amount", req.Amount); err != nil {
		return nil, err
	}
	valuation := domain.PropertyValuation{
		PropertyID:    propertyID,
		ValuationDate: date,
		Amount:        req.Amount,
		Source:        strings.TrimSpace(req.Source),
		Notes:         req.Notes,
	}
	if valuation.Source == "" {
		valuation.Source = domain.DefaultValuationSource
	}

	err = s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if _, err := repos.PropertyRepo.FindPropertyByID(ctx, propertyID); err != nil {
			return err
		}
		id, err := repos.PropertyRepo.SaveValuation(ctx, valuation)
		if err != nil {
			return err
		}
		valuation.ID = id
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to add valuation", slog.Int64("property_id", propertyID))
		return nil, err
	}
	return &valuation, nil
}

func (s *propertyService) ListValuations(ctx context.Context, propertyID int64) ([]domain.PropertyValuation, error) {
	repos := s.store.Repositories()
	if _, err := repos.PropertyRepo.FindPropertyByID(ctx, propertyID); err != nil {
		return nil, err
	}
	return repos.PropertyRepo.ListValuations(ctx, propertyID)
}
