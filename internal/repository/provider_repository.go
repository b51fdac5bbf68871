package repository

import (
	"context"
	"fmt"

	"jobbridge/internal/database"
	"jobbridge/internal/domain/provider"

	"github.com/google/uuid"
)

type ProviderRepository interface {
	Create(ctx context.Context, p provider.Provider) (provider.Provider, error)
	GetByID(ctx context.Context, id uuid.UUID) (provider.Provider, error)
	List(ctx context.Context) ([]provider.Provider, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]provider.Provider, error)
}

type PostgresProviderRepository struct {
	db database.DB
}

func NewPostgresProviderRepository(db database.DB) *PostgresProviderRepository {
	return &PostgresProviderRepository{db: db}
}

const providerColumns = `id, company_name, contact_person, phone_number, email, address, industry, COALESCE(created_by, '00000000-0000-0000-0000-000000000000'::uuid), created_at`

func (r *PostgresProviderRepository) Create(ctx context.Context, p provider.Provider) (provider.Provider, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO providers (id, company_name, contact_person, phone_number, email, address, industry, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+providerColumns,
		p.ID, p.CompanyName, p.ContactPerson, p.PhoneNumber, p.Email, p.Address, p.Industry, nullableUUID(p.CreatedBy),
	)
	created, err := scanProvider(row)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return provider.Provider{}, ErrConflict
		}
		return provider.Provider{}, fmt.Errorf("insert provider: %w", err)
	}
	return created, nil
}

func (r *PostgresProviderRepository) GetByID(ctx context.Context, id uuid.UUID) (provider.Provider, error) {
	row := r.db.QueryRow(ctx, `SELECT `+providerColumns+` FROM providers WHERE id = $1`, id)
	p, err := scanProvider(row)
	if err != nil {
		if database.IsNoRows(err) {
			return provider.Provider{}, ErrNotFound
		}
		return provider.Provider{}, err
	}
	return p, nil
}

func (r *PostgresProviderRepository) List(ctx context.Context) ([]provider.Provider, error) {
	rows, err := r.db.Query(ctx, `SELECT `+providerColumns+` FROM providers ORDER BY created_at DESC, id ASC`)
	if err != nil {
		return nil, err
	}
	return collectProviders(rows)
}

// FindByIDs resolves providers for display. Unknown ids are absent from the
// returned map.
func (r *PostgresProviderRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]provider.Provider, error) {
	out := make(map[uuid.UUID]provider.Provider, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, id.String())
	}

	rows, err := r.db.Query(ctx, `SELECT `+providerColumns+` FROM providers WHERE id = ANY($1::uuid[])`, keys)
	if err != nil {
		return nil, err
	}
	items, err := collectProviders(rows)
	if err != nil {
		return nil, err
	}
	for _, p := range items {
		out[p.ID] = p
	}
	return out, nil
}

func collectProviders(rows database.Rows) ([]provider.Provider, error) {
	defer rows.Close()

	out := make([]provider.Provider, 0)
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanProvider(row database.Row) (provider.Provider, error) {
	var p provider.Provider
	if err := row.Scan(&p.ID, &p.CompanyName, &p.ContactPerson, &p.PhoneNumber, &p.Email, &p.Address, &p.Industry, &p.CreatedBy, &p.CreatedAt); err != nil {
		return provider.Provider{}, err
	}
	return p, nil
}
