package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finserv-tools/bank_management_app/internal/apperrors"
	"github.com/finserv-tools/bank_management_app/internal/core/domain"
	portsrepo "github.com/finserv-tools/bank_management_app/internal/core/ports/repositories"
	"github.com/finserv-tools/bank_management_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
	accountRepo *PgxAccountRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
// The account repository dependency provides the row locking helpers used by
// the atomic save path.
func newPgxTransactionRepository(pool *pgxpool.Pool, accountRepo *PgxAccountRepository) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepository
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// Helper to convert models.Transaction from DB to domain.Transaction
func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:              m.ID,
		Date:            m.Date,
		TransactionType: domain.TransactionKind(m.TransactionType),
		Amount:          m.Amount,
		Balance:         m.Balance,
		AccountNumber:   m.AccountNumber,
	}
}

const transactionSelect = `
	SELECT transaction_id, date, transaction_type, amount, balance, account_number
	FROM transactions
`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(&m.ID, &m.Date, &m.TransactionType, &m.Amount, &m.Balance, &m.AccountNumber)
	return m, err
}

// SaveTransactionForAccount runs the whole movement inside one database
// transaction: the account row is locked with FOR UPDATE, the process
// callback evaluates the movement against the locked state, and only then
// are the new balance and the transaction row written. The BIGSERIAL id
// assigned on insert is returned on the resulting record.
func (r *PgxTransactionRepository) SaveTransactionForAccount(ctx context.Context, accountNumber string, process portsrepo.ProcessFunc) (*domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Ignored if the transaction commits successfully
	defer r.Rollback(ctx, tx)

	account, err := r.accountRepo.findAccountByNumberForUpdateInTx(ctx, tx, accountNumber)
	if err != nil {
		return nil, err
	}

	updatedAccount, txn, err := process(*account)
	if err != nil {
		return nil, err
	}

	if err := r.accountRepo.updateAccountBalanceInTx(ctx, tx, updatedAccount); err != nil {
		return nil, err
	}

	insertQuery := `
		INSERT INTO transactions (date, transaction_type, amount, balance, account_number)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING transaction_id;
	`
	err = tx.QueryRow(ctx, insertQuery,
		txn.Date,
		string(txn.TransactionType),
		txn.Amount,
		txn.Balance,
		txn.AccountNumber,
	).Scan(&txn.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction for account %s: %w", accountNumber, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &txn, nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	query := transactionSelect + ` WHERE transaction_id = $1;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("transaction %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find transaction %d: %w", id, err)
	}
	txn := toDomainTransaction(m)
	return &txn, nil
}

// ListTransactions retrieves every transaction, newest first. Ties on date
// break on the sequence id so insertion order always wins.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := transactionSelect + ` ORDER BY date DESC, transaction_id DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// ListTransactionsByAccount retrieves an account's transactions, newest first.
func (r *PgxTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountNumber string) ([]domain.Transaction, error) {
	query := transactionSelect + ` WHERE account_number = $1 ORDER BY date DESC, transaction_id DESC;`

	rows, err := r.Pool.Query(ctx, query, accountNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for account %s: %w", accountNumber, err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// ListTransactionsByAccountBetween retrieves an account's transactions inside
// the inclusive [from, to] window, newest first.
func (r *PgxTransactionRepository) ListTransactionsByAccountBetween(ctx context.Context, accountNumber string, from, to time.Time) ([]domain.Transaction, error) {
	query := transactionSelect + `
		WHERE account_number = $1 AND date >= $2 AND date <= $3
		ORDER BY date DESC, transaction_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, accountNumber, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for account %s between %s and %s: %w",
			accountNumber, from.Format(time.RFC3339), to.Format(time.RFC3339), err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	txns := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, toDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}

// DeleteTransaction removes a transaction row. The owning account's balance
// is left untouched.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, id int64) error {
	query := `DELETE FROM transactions WHERE transaction_id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
