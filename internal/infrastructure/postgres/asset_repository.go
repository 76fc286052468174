package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/entity"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/repository"
)

var _ repository.AssetRepository = (*AssetRepo)(nil)

const assetColumns = `id, product_id, code, serial_no, status, location_id, party_id, created_at, updated_at`

// AssetRepo AssetRepository portunun PostgreSQL uyarlaması. status/location_id/
// party_id türetilmiş indekstir; hareket append'iyle aynı tx içinde yazılır.
type AssetRepo struct {
	q Querier
}

// NewAssetRepository demirbaş persistence adaptörünü kurar.
func NewAssetRepository(q Querier) *AssetRepo {
	return &AssetRepo{q: q}
}

// Create yeni demirbaş kaydeder. Kod çakışmasında domain.ErrDuplicate döner.
func (r *AssetRepo) Create(ctx context.Context, asset *entity.Asset) error {
	query := `
		INSERT INTO assets (id, product_id, code, serial_no, status, location_id, party_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		asset.ID, asset.ProductID, asset.Code, asset.SerialNo, asset.Status,
		asset.LocationID, asset.PartyID,
	).Scan(&asset.CreatedAt, &asset.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert asset: %w", err)
	}
	return nil
}

// GetByID demirbaşı ID ile getirir; yoksa domain.ErrNotFound.
func (r *AssetRepo) GetByID(ctx context.Context, id string) (*entity.Asset, error) {
	return r.getBy(ctx, `SELECT `+assetColumns+` FROM assets WHERE id = $1`, id)
}

// GetByCode demirbaşı etiket koduyla getirir.
func (r *AssetRepo) GetByCode(ctx context.Context, code string) (*entity.Asset, error) {
	return r.getBy(ctx, `SELECT `+assetColumns+` FROM assets WHERE code = $1`, code)
}

// GetForUpdate satırı kilitleyerek okur (SELECT FOR UPDATE): aynı demirbaş
// üzerindeki eşzamanlı zimmet/iade işlemleri sıraya girer. Transaction içinde çağrılır.
func (r *AssetRepo) GetForUpdate(ctx context.Context, id string) (*entity.Asset, error) {
	return r.getBy(ctx, `SELECT `+assetColumns+` FROM assets WHERE id = $1 FOR UPDATE`, id)
}

func (r *AssetRepo) getBy(ctx context.Context, query string, arg any) (*entity.Asset, error) {
	var a entity.Asset
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&a.ID, &a.ProductID, &a.Code, &a.SerialNo, &a.Status,
		&a.LocationID, &a.PartyID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get asset: %w", err)
	}
	return &a, nil
}

// List demirbaşları filtreli ve sayfalı listeler.
func (r *AssetRepo) List(ctx context.Context, filter repository.AssetFilter, limit, offset int) ([]*entity.Asset, error) {
	var conds []string
	var args []any
	add := func(cond string, val any) {
		args = append(args, val)
		conds = append(conds, cond+" = $"+strconv.Itoa(len(args)))
	}
	if filter.ProductID != "" {
		add("product_id", filter.ProductID)
	}
	if filter.Status != "" {
		add("status", filter.Status)
	}
	if filter.PartyID != "" {
		add("party_id", filter.PartyID)
	}

	query := `SELECT ` + assetColumns + ` FROM assets`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(` ORDER BY code LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()

	var list []*entity.Asset
	for rows.Next() {
		var a entity.Asset
		if err := rows.Scan(
			&a.ID, &a.ProductID, &a.Code, &a.SerialNo, &a.Status,
			&a.LocationID, &a.PartyID, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// UpdateDerivedState türetilmiş durum indeksini yeniden yazar.
func (r *AssetRepo) UpdateDerivedState(ctx context.Context, id, status string, locationID, partyID *string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE assets SET status = $2, location_id = $3, party_id = $4, updated_at = now() WHERE id = $1`,
		id, status, locationID, partyID,
	)
	if err != nil {
		return fmt.Errorf("update asset state: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
