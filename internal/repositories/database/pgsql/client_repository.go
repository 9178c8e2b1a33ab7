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

type PgxClientRepository struct {
	BaseRepository
}

// newPgxClientRepository creates a new repository for client data.
func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepository {
	return &PgxClientRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxClientRepository implements portsrepo.ClientRepository
var _ portsrepo.ClientRepository = (*PgxClientRepository)(nil)

// Helper to convert domain.Client to models.Client for DB storage
func toModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:       d.ClientID,
		Name:           d.Name,
		GenderCode:     d.Gender.Code,
		Age:            d.Age,
		Identification: d.Identification,
		Address:        d.Address,
		Phone:          d.Phone,
		PasswordHash:   d.PasswordHash,
		StatusCode:     d.Status.Code,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

const clientSelect = `
	SELECT c.client_id, c.name, c.gender_code, g.description, g.active,
	       c.age, c.identification, c.address, c.phone, c.password_hash,
	       c.status_code, s.description, s.active, c.created_at, c.last_updated_at
	FROM clients c
	JOIN genders g ON g.code = c.gender_code
	JOIN statuses s ON s.code = c.status_code
`

func scanClient(row pgx.Row) (domain.Client, error) {
	var c domain.Client
	err := row.Scan(
		&c.ClientID,
		&c.Name,
		&c.Gender.Code,
		&c.Gender.Description,
		&c.Gender.Active,
		&c.Age,
		&c.Identification,
		&c.Address,
		&c.Phone,
		&c.PasswordHash,
		&c.Status.Code,
		&c.Status.Description,
		&c.Status.Active,
		&c.CreatedAt,
		&c.LastUpdatedAt,
	)
	return c, err
}

// SaveClient inserts a new client.
func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := toModelClient(client)

	query := `
		INSERT INTO clients (client_id, name, gender_code, age, identification, address, phone, password_hash, status_code, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ClientID,
		m.Name,
		m.GenderCode,
		m.Age,
		m.Identification,
		m.Address,
		m.Phone,
		m.PasswordHash,
		m.StatusCode,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: client with identification %s already exists", apperrors.ErrDuplicate, m.Identification)
			}
		}
		return fmt.Errorf("failed to save client %s: %w", m.ClientID, err)
	}
	return nil
}

// FindClientByID retrieves a client by its ID.
func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := clientSelect + ` WHERE c.client_id = $1;`

	c, err := scanClient(r.Pool.QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("client %s: %w", clientID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find client %s: %w", clientID, err)
	}
	return &c, nil
}

// FindClientByIdentification retrieves a client by its identification document.
func (r *PgxClientRepository) FindClientByIdentification(ctx context.Context, identification string) (*domain.Client, error) {
	query := clientSelect + ` WHERE c.identification = $1;`

	c, err := scanClient(r.Pool.QueryRow(ctx, query, identification))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("client with identification %s: %w", identification, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find client by identification %s: %w", identification, err)
	}
	return &c, nil
}

// ListClients retrieves every client ordered by name.
func (r *PgxClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	query := clientSelect + ` ORDER BY c.name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", err)
	}
	return clients, nil
}

// UpdateClient persists mutable client fields.
func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	m := toModelClient(client)

	query := `
		UPDATE clients
		SET name = $2, gender_code = $3, age = $4, address = $5, phone = $6, password_hash = $7, status_code = $8, last_updated_at = $9
		WHERE client_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.ClientID,
		m.Name,
		m.GenderCode,
		m.Age,
		m.Address,
		m.Phone,
		m.PasswordHash,
		m.StatusCode,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update client %s: %w", m.ClientID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("client %s: %w", m.ClientID, apperrors.ErrNotFound)
	}
	return nil
}
