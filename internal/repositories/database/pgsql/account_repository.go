package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/finserv-tools/bank_management_app/internal/apperrors"
	"github.com/finserv-tools/bank_management_app/internal/core/domain"
	portsrepo "github.com/finserv-tools/bank_management_app/internal/core/ports/repositories"
	"github.com/finserv-tools/bank_management_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepository
var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

// Helper to convert domain.Account to models.Account for DB storage
func toModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountNumber:   d.AccountNumber,
		AccountTypeCode: d.AccountType.Code,
		InitialBalance:  d.InitialBalance,
		CurrentBalance:  d.CurrentBalance,
		StatusCode:      d.Status.Code,
		ClientID:        d.ClientID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// accountSelect joins the reference catalogs so a single query hydrates the
// full domain account.
const accountSelect = `
	SELECT a.account_number, a.account_type_code, at.description, at.active,
	       a.initial_balance, a.current_balance, a.status_code, s.description, s.active,
	       a.client_id, a.created_at, a.last_updated_at
	FROM accounts a
	JOIN account_types at ON at.code = a.account_type_code
	JOIN statuses s ON s.code = a.status_code
`

// scanAccount scans one joined account row into a domain.Account.
func scanAccount(row pgx.Row) (domain.Account, error) {
	var acc domain.Account
	err := row.Scan(
		&acc.AccountNumber,
		&acc.AccountType.Code,
		&acc.AccountType.Description,
		&acc.AccountType.Active,
		&acc.InitialBalance,
		&acc.CurrentBalance,
		&acc.Status.Code,
		&acc.Status.Description,
		&acc.Status.Active,
		&acc.ClientID,
		&acc.CreatedAt,
		&acc.LastUpdatedAt,
	)
	return acc, err
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	modelAcc := toModelAccount(account)

	query := `
		INSERT INTO accounts (account_number, account_type_code, initial_balance, current_balance, status_code, client_id, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelAcc.AccountNumber,
		modelAcc.AccountTypeCode,
		modelAcc.InitialBalance,
		modelAcc.CurrentBalance,
		modelAcc.StatusCode,
		modelAcc.ClientID,
		modelAcc.CreatedAt,
		modelAcc.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: account %s already exists", apperrors.ErrDuplicate, modelAcc.AccountNumber)
			}
		}
		return fmt.Errorf("failed to save account %s: %w", modelAcc.AccountNumber, err)
	}
	return nil
}

// FindAccountByNumber retrieves an account by its number.
func (r *PgxAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	query := accountSelect + ` WHERE a.account_number = $1;`

	acc, err := scanAccount(r.Pool.QueryRow(ctx, query, accountNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("account %s: %w", accountNumber, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountNumber, err)
	}
	return &acc, nil
}

// ExistsByAccountNumber reports whether an account with the number exists.
func (r *PgxAccountRepository) ExistsByAccountNumber(ctx context.Context, accountNumber string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM accounts WHERE account_number = $1);`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, accountNumber).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check account %s existence: %w", accountNumber, err)
	}
	return exists, nil
}

// ListAccounts retrieves every account ordered by account number.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := accountSelect + ` ORDER BY a.account_number;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	return collectAccounts(rows)
}

// ListAccountsByClient retrieves the accounts owned by a client.
func (r *PgxAccountRepository) ListAccountsByClient(ctx context.Context, clientID string) ([]domain.Account, error) {
	query := accountSelect + ` WHERE a.client_id = $1 ORDER BY a.account_number;`

	rows, err := r.Pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for client %s: %w", clientID, err)
	}
	defer rows.Close()

	return collectAccounts(rows)
}

func collectAccounts(rows pgx.Rows) ([]domain.Account, error) {
	accounts := []domain.Account{}
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// UpdateAccount persists mutable account fields.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	modelAcc := toModelAccount(account)

	query := `
		UPDATE accounts
		SET account_type_code = $2, current_balance = $3, status_code = $4, last_updated_at = $5
		WHERE account_number = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelAcc.AccountNumber,
		modelAcc.AccountTypeCode,
		modelAcc.CurrentBalance,
		modelAcc.StatusCode,
		modelAcc.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", modelAcc.AccountNumber, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", modelAcc.AccountNumber, apperrors.ErrNotFound)
	}
	return nil
}

// findAccountByNumberForUpdateInTx locks the account row inside the supplied
// transaction so concurrent balance mutations serialize on it.
func (r *PgxAccountRepository) findAccountByNumberForUpdateInTx(ctx context.Context, tx pgx.Tx, accountNumber string) (*domain.Account, error) {
	query := accountSelect + ` WHERE a.account_number = $1 FOR UPDATE OF a;`

	acc, err := scanAccount(tx.QueryRow(ctx, query, accountNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("account %s: %w", accountNumber, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock account %s: %w", accountNumber, err)
	}
	return &acc, nil
}

// updateAccountBalanceInTx writes the new balance inside the supplied transaction.
func (r *PgxAccountRepository) updateAccountBalanceInTx(ctx context.Context, tx pgx.Tx, account domain.Account) error {
	query := `
		UPDATE accounts
		SET current_balance = $2, last_updated_at = $3
		WHERE account_number = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, account.AccountNumber, account.CurrentBalance, account.LastUpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update balance for account %s: %w", account.AccountNumber, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", account.AccountNumber, apperrors.ErrNotFound)
	}
	return nil
}
