package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/entity"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/repository"
)

var _ repository.PartyRepository = (*PartyRepo)(nil)

// PartyRepo PartyRepository portunun PostgreSQL uyarlaması.
type PartyRepo struct {
	q Querier
}

// NewPartyRepository personel persistence adaptörünü kurar.
func NewPartyRepository(q Querier) *PartyRepo {
	return &PartyRepo{q: q}
}

// Create yeni personeli kaydeder.
func (r *PartyRepo) Create(ctx context.Context, party *entity.Party) error {
	query := `INSERT INTO parties (id, full_name, location_id, active, created_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		party.ID, party.FullName, nullIfEmpty(party.LocationID), party.Active, party.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert party: %w", err)
	}
	return nil
}

// GetByID personeli ID ile getirir; yoksa domain.ErrNotFound.
func (r *PartyRepo) GetByID(ctx context.Context, id string) (*entity.Party, error) {
	query := `SELECT id, full_name, location_id, active, created_at FROM parties WHERE id = $1`
	var p entity.Party
	var locationID sql.NullString
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.FullName, &locationID, &p.Active, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get party: %w", err)
	}
	p.LocationID = locationID.String
	return &p, nil
}

// List personelleri sayfalı listeler.
func (r *PartyRepo) List(ctx context.Context, includeInactive bool, limit, offset int) ([]*entity.Party, error) {
	query := `SELECT id, full_name, location_id, active, created_at FROM parties WHERE ($1 OR active) ORDER BY full_name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, includeInactive, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list parties: %w", err)
	}
	defer rows.Close()

	var list []*entity.Party
	for rows.Next() {
		var p entity.Party
		var locationID sql.NullString
		if err := rows.Scan(&p.ID, &p.FullName, &locationID, &p.Active, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan party: %w", err)
		}
		p.LocationID = locationID.String
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Deactivate personeli pasife çeker; satır yoksa domain.ErrNotFound.
func (r *PartyRepo) Deactivate(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE parties SET active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate party: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// nullIfEmpty boş string'i NULL olarak yazar.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
