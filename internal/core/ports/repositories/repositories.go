package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo   AccountRepositoryFacade
	CategoryRepo  CategoryRepositoryFacade
	JournalRepo   JournalRepositoryFacade
	ImportRepo    ImportRepositoryFacade
	PropertyRepo  PropertyRepositoryFacade
	ReportingRepo ReportingRepository
}
