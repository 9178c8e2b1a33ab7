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
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReferenceRepository struct {
	pool *pgxpool.Pool
}

// newPgxReferenceRepository creates a new repository for the reference catalogs.
func newPgxReferenceRepository(pool *pgxpool.Pool) portsrepo.ReferenceRepository {
	return &PgxReferenceRepository{pool: pool}
}

// Ensure PgxReferenceRepository implements portsrepo.ReferenceRepository
var _ portsrepo.ReferenceRepository = (*PgxReferenceRepository)(nil)

func (r *PgxReferenceRepository) FindAccountTypeByCodeActive(ctx context.Context, code string) (*domain.AccountType, error) {
	query := `
		SELECT code, description, active
		FROM account_types
		WHERE code = $1 AND active = TRUE;
	`
	var m models.AccountType
	err := r.pool.QueryRow(ctx, query, code).Scan(&m.Code, &m.Description, &m.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("account type %s: %w", code, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find account type %s: %w", code, err)
	}
	return &domain.AccountType{Code: m.Code, Description: m.Description, Active: m.Active}, nil
}

func (r *PgxReferenceRepository) FindStatusByCodeActive(ctx context.Context, code string) (*domain.Status, error) {
	query := `
		SELECT code, description, active
		FROM statuses
		WHERE code = $1 AND active = TRUE;
	`
	var m models.Status
	err := r.pool.QueryRow(ctx, query, code).Scan(&m.Code, &m.Description, &m.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("status %s: %w", code, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find status %s: %w", code, err)
	}
	return &domain.Status{Code: m.Code, Description: m.Description, Active: m.Active}, nil
}

// FindStatusByCode resolves a status regardless of its active flag. Needed to
// reach the INACTIVE status used by soft deletes.
func (r *PgxReferenceRepository) FindStatusByCode(ctx context.Context, code string) (*domain.Status, error) {
	query := `
		SELECT code, description, active
		FROM statuses
		WHERE code = $1;
	`
	var m models.Status
	err := r.pool.QueryRow(ctx, query, code).Scan(&m.Code, &m.Description, &m.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("status %s: %w", code, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find status %s: %w", code, err)
	}
	return &domain.Status{Code: m.Code, Description: m.Description, Active: m.Active}, nil
}

func (r *PgxReferenceRepository) FindGenderByCodeActive(ctx context.Context, code string) (*domain.Gender, error) {
	query := `
		SELECT code, description, active
		FROM genders
		WHERE code = $1 AND active = TRUE;
	`
	var m models.Gender
	err := r.pool.QueryRow(ctx, query, code).Scan(&m.Code, &m.Description, &m.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("gender %s: %w", code, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find gender %s: %w", code, err)
	}
	return &domain.Gender{Code: m.Code, Description: m.Description, Active: m.Active}, nil
}
