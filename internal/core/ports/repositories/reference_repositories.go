package repositories

import (
	"context"

	"github.com/finserv-tools/bank_management_app/internal/core/domain"
)

// ReferenceRepository resolves administrator-managed reference data.
// The *Active variants only resolve entries currently marked active; they are
// used when assigning a code to an entity. FindStatusByCode resolves regardless
// of the active flag, which the soft-delete path needs for INACTIVE.
type ReferenceRepository interface {
	FindAccountTypeByCodeActive(ctx context.Context, code string) (*domain.AccountType, error)
	FindStatusByCodeActive(ctx context.Context, code string) (*domain.Status, error)
	FindStatusByCode(ctx context.Context, code string) (*domain.Status, error)
	FindGenderByCodeActive(ctx context.Context, code string) (*domain.Gender, error)
}
