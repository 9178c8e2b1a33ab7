// Package memory provides mutex-guarded in-memory implementations of the
// account and transaction repositories. They back the service test suites
// and let concurrency behavior be exercised without a database.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/finserv-tools/bank_management_app/internal/apperrors"
	"github.com/finserv-tools/bank_management_app/internal/core/domain"
	portsrepo "github.com/finserv-tools/bank_management_app/internal/core/ports/repositories"
)

// Store holds accounts and transactions behind a single mutex so a
// transaction save observes and mutates a consistent snapshot, mirroring the
// row lock the database implementation takes.
type Store struct {
	mu           sync.Mutex
	accounts     map[string]domain.Account
	transactions map[int64]domain.Transaction
	nextTxnID    int64
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		accounts:     make(map[string]domain.Account),
		transactions: make(map[int64]domain.Transaction),
		nextTxnID:    1,
	}
}

// AccountRepo returns the store's account repository view.
func (s *Store) AccountRepo() portsrepo.AccountRepository {
	return (*accountStore)(s)
}

// TransactionRepo returns the store's transaction repository view.
func (s *Store) TransactionRepo() portsrepo.TransactionRepository {
	return (*transactionStore)(s)
}

type accountStore Store

var _ portsrepo.AccountRepository = (*accountStore)(nil)

func (s *accountStore) SaveAccount(_ context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[account.AccountNumber]; ok {
		return fmt.Errorf("%w: account %s already exists", apperrors.ErrDuplicate, account.AccountNumber)
	}
	s.accounts[account.AccountNumber] = account
	return nil
}

func (s *accountStore) FindAccountByNumber(_ context.Context, accountNumber string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.accounts[accountNumber]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", accountNumber, apperrors.ErrNotFound)
	}
	return &account, nil
}

func (s *accountStore) ExistsByAccountNumber(_ context.Context, accountNumber string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.accounts[accountNumber]
	return ok, nil
}

func (s *accountStore) ListAccounts(_ context.Context) ([]domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	accounts := make([]domain.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].AccountNumber < accounts[j].AccountNumber
	})
	return accounts, nil
}

func (s *accountStore) ListAccountsByClient(_ context.Context, clientID string) ([]domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	accounts := []domain.Account{}
	for _, account := range s.accounts {
		if account.ClientID == clientID {
			accounts = append(accounts, account)
		}
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].AccountNumber < accounts[j].AccountNumber
	})
	return accounts, nil
}

func (s *accountStore) UpdateAccount(_ context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[account.AccountNumber]; !ok {
		return fmt.Errorf("account %s: %w", account.AccountNumber, apperrors.ErrNotFound)
	}
	s.accounts[account.AccountNumber] = account
	return nil
}

type transactionStore Store

var _ portsrepo.TransactionRepository = (*transactionStore)(nil)

// SaveTransactionForAccount holds the store lock for the whole
// read-process-write cycle, so concurrent saves on the same account
// serialize exactly like the FOR UPDATE path.
func (s *transactionStore) SaveTransactionForAccount(_ context.Context, accountNumber string, process portsrepo.ProcessFunc) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[accountNumber]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", accountNumber, apperrors.ErrNotFound)
	}

	updatedAccount, txn, err := process(account)
	if err != nil {
		return nil, err
	}

	txn.ID = s.nextTxnID
	s.nextTxnID++

	s.accounts[accountNumber] = updatedAccount
	s.transactions[txn.ID] = txn
	return &txn, nil
}

func (s *transactionStore) FindTransactionByID(_ context.Context, id int64) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	txn, ok := s.transactions[id]
	if !ok {
		return nil, fmt.Errorf("transaction %d: %w", id, apperrors.ErrNotFound)
	}
	return &txn, nil
}

func (s *transactionStore) ListTransactions(_ context.Context) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collect(func(domain.Transaction) bool { return true }), nil
}

func (s *transactionStore) ListTransactionsByAccount(_ context.Context, accountNumber string) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collect(func(txn domain.Transaction) bool {
		return txn.AccountNumber == accountNumber
	}), nil
}

func (s *transactionStore) ListTransactionsByAccountBetween(_ context.Context, accountNumber string, from, to time.Time) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collect(func(txn domain.Transaction) bool {
		if txn.AccountNumber != accountNumber {
			return false
		}
		return !txn.Date.Before(from) && !txn.Date.After(to)
	}), nil
}

func (s *transactionStore) DeleteTransaction(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transactions[id]; !ok {
		return fmt.Errorf("transaction %d: %w", id, apperrors.ErrNotFound)
	}
	delete(s.transactions, id)
	return nil
}

// collect returns matching transactions newest first, breaking date ties on
// the id so insertion order is preserved. Callers must hold the lock.
func (s *transactionStore) collect(match func(domain.Transaction) bool) []domain.Transaction {
	txns := []domain.Transaction{}
	for _, txn := range s.transactions {
		if match(txn) {
			txns = append(txns, txn)
		}
	}
	sort.Slice(txns, func(i, j int) bool {
		if !txns[i].Date.Equal(txns[j].Date) {
			return txns[i].Date.After(txns[j].Date)
		}
		return txns[i].ID > txns[j].ID
	})
	return txns
}
