package services

import (
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
)

// ContainerOption configures NewServiceContainer.
type ContainerOption func(*containerConfig)

type containerConfig struct {
	bankAccount string
}

// WithDefaultBankAccount names the ASSET account used when a request does not
// say where money moved.
func WithDefaultBankAccount(name string) ContainerOption {
	return func(c *containerConfig) {
		if name != "" {
			c.bankAccount = name
		}
	}
}

// NewServiceContainer wires every service to the same store.
func NewServiceContainer(store portsrepo.Store, options ...ContainerOption) *portssvc.ServiceContainer {
	cfg := containerConfig{}
	for _, option := range options {
		option(&cfg)
	}

	repos := store.Repositories()
	return &portssvc.ServiceContainer{
		Account:     NewAccountServiceImpl(store),
		Ledger:      NewJournalService(store),
		Balance:     NewReportingService(repos.ReportingRepo),
		Category:    NewCategoryService(store),
		Fingerprint: NewFingerprintService(store),
		Import:      NewImportService(store),
		Property:    NewPropertyService(store),
		Equity:      NewEquityService(store),
		Transfer:    NewTransferService(store),
		Allocation:  NewAllocationService(store, cfg.bankAccount),
		Mortgage:    NewMortgageService(store, cfg.bankAccount),
	}
}
