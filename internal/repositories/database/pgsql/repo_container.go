package pgsql

import (
	portsrepo "github.com/finserv-tools/bank_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool, accountRepo)
	clientRepo := newPgxClientRepository(dbPool)
	referenceRepo := newPgxReferenceRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:     accountRepo,
		TransactionRepo: transactionRepo,
		ClientRepo:      clientRepo,
		ReferenceRepo:   referenceRepo,
	}
}
