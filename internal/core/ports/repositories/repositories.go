package repositories

// RepositoryProvider holds instances of all the application repositories.
type RepositoryProvider struct {
	AccountRepo     AccountRepositoryFacade
	TransactionRepo TransactionRepositoryWithTx
	CategoryRepo    CategoryRepository
	ReportingRepo   ReportingRepository
}
