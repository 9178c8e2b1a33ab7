package services

import (
	"fmt"
	"time"

	"github.com/finserv-tools/bank_management_app/internal/apperrors"
	"github.com/finserv-tools/bank_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// applyTransaction evaluates a deposit or withdrawal against an account and
// returns the updated account alongside the movement record. It is a pure
// computation so it can run inside the repository's atomic section.
//
// The amount parameter is the user-entered magnitude and must be strictly
// positive. The persisted record carries a signed amount (positive for
// deposits, negative for withdrawals) and a snapshot of the balance after
// the movement.
func applyTransaction(account domain.Account, kind domain.TransactionKind, amount decimal.Decimal, now time.Time) (domain.Account, domain.Transaction, error) {
	if !amount.IsPositive() {
		return account, domain.Transaction{}, fmt.Errorf("transaction amount must be greater than zero: %w", apperrors.ErrValidation)
	}

	var signedAmount decimal.Decimal
	switch kind {
	case domain.Deposit:
		signedAmount = amount
	case domain.Withdrawal:
		if account.CurrentBalance.LessThan(amount) {
			return account, domain.Transaction{}, fmt.Errorf("insufficient funds: balance %s is less than requested %s: %w",
				account.CurrentBalance.String(), amount.String(), apperrors.ErrBusiness)
		}
		signedAmount = amount.Neg()
	default:
		return account, domain.Transaction{}, fmt.Errorf("unknown transaction type %q: %w", kind, apperrors.ErrValidation)
	}

	account.CurrentBalance = account.CurrentBalance.Add(signedAmount)
	account.LastUpdatedAt = now

	txn := domain.Transaction{
		Date:            now,
		TransactionType: kind,
		Amount:          signedAmount,
		Balance:         account.CurrentBalance,
		AccountNumber:   account.AccountNumber,
	}
	return account, txn, nil
}
