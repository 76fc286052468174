package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/entity"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

const locationColumns = `id, name, kind, active, created_at`

// LocationRepo LocationRepository portunun PostgreSQL uyarlaması.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository lokasyon persistence adaptörünü kurar.
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create yeni lokasyonu kaydeder. İsim çakışmasında domain.ErrDuplicate döner.
func (r *LocationRepo) Create(ctx context.Context, location *entity.Location) error {
	query := `INSERT INTO locations (id, name, kind, active, created_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		location.ID, location.Name, location.Kind, location.Active, location.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetByID lokasyonu ID ile getirir; yoksa domain.ErrNotFound.
func (r *LocationRepo) GetByID(ctx context.Context, id string) (*entity.Location, error) {
	return r.getBy(ctx, `SELECT `+locationColumns+` FROM locations WHERE id = $1`, id)
}

// GetByName lokasyonu isimle getirir; içe aktarma get-or-create akışı kullanır.
func (r *LocationRepo) GetByName(ctx context.Context, name string) (*entity.Location, error) {
	return r.getBy(ctx, `SELECT `+locationColumns+` FROM locations WHERE name = $1`, name)
}

func (r *LocationRepo) getBy(ctx context.Context, query string, arg any) (*entity.Location, error) {
	var l entity.Location
	err := r.q.QueryRow(ctx, query, arg).Scan(&l.ID, &l.Name, &l.Kind, &l.Active, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}

// List lokasyonları sayfalı listeler.
func (r *LocationRepo) List(ctx context.Context, includeInactive bool, limit, offset int) ([]*entity.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE ($1 OR active) ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, includeInactive, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Kind, &l.Active, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Deactivate lokasyonu pasife çeker; satır yoksa domain.ErrNotFound.
func (r *LocationRepo) Deactivate(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE locations SET active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate location: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
