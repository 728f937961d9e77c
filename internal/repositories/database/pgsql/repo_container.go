package pgsql

import (
	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgsql repositories over one shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     NewPgxAccountRepository(dbPool),
		TransactionRepo: NewPgxTransactionRepository(dbPool),
		CategoryRepo:    NewPgxCategoryRepository(dbPool),
		ReportingRepo:   NewReportingRepository(dbPool),
	}
}
