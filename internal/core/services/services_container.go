package services

import (
	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:     NewAccountService(repos.AccountRepo, repos.TransactionRepo),
		Transaction: NewTransactionService(repos.TransactionRepo, repos.AccountRepo, repos.CategoryRepo),
		Transfer:    NewTransferService(repos.TransactionRepo, repos.AccountRepo),
		Category:    NewCategoryService(repos.CategoryRepo),
		Reporting:   NewReportingService(repos.ReportingRepo),
	}
}
