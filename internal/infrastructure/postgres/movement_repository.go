package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/entity"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, type, product_id, asset_id, quantity, from_location_id, to_location_id, party_id, condition, note, created_by, created_at`

// MovementRepo append-only hareket defterinin PostgreSQL uyarlaması.
// Satırlar asla UPDATE/DELETE görmez.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository hareket persistence adaptörünü kurar.
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Append kaydı deftere ekler; id ve created_at insert sırasında atanır ve
// movement üzerine geri yazılır.
func (r *MovementRepo) Append(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO movements (type, product_id, asset_id, quantity, from_location_id, to_location_id, party_id, condition, note, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		m.Type, m.ProductID, m.AssetID, m.Quantity,
		m.FromLocationID, m.ToLocationID, m.PartyID, m.Condition,
		m.Note, m.CreatedBy,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("append movement: %w", err)
	}
	return nil
}

// List filtreye uyan hareketleri en yeniden eskiye (id DESC) döner.
func (r *MovementRepo) List(ctx context.Context, filter repository.MovementFilter, limit, offset int) ([]*entity.Movement, error) {
	var conds []string
	var args []any
	add := func(cond string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.From != nil {
		add("created_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("created_at < $%d", *filter.To)
	}
	if filter.ProductID != "" {
		add("product_id = $%d", filter.ProductID)
	}
	if filter.Type != "" {
		add("type = $%d", filter.Type)
	}
	if filter.LocationID != "" {
		// Lokasyon hem kaynak hem hedef bacakta aranır.
		args = append(args, filter.LocationID)
		n := strconv.Itoa(len(args))
		conds = append(conds, "(from_location_id = $"+n+" OR to_location_id = $"+n+")")
	}
	if filter.PartyID != "" {
		add("party_id = $%d", filter.PartyID)
	}
	if filter.AssetID != "" {
		add("asset_id = $%d", filter.AssetID)
	}

	query := `SELECT ` + movementColumns + ` FROM movements`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(` ORDER BY id DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// LatestByAsset demirbaşa referans veren son hareketi döner; hiç yoksa nil, nil.
func (r *MovementRepo) LatestByAsset(ctx context.Context, assetID string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE asset_id = $1 ORDER BY id DESC LIMIT 1`
	row := r.q.QueryRow(ctx, query, assetID)
	m, err := scanMovement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

// CountByAsset demirbaşın defterdeki satır sayısını döner.
func (r *MovementRepo) CountByAsset(ctx context.Context, assetID string) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx, `SELECT count(*) FROM movements WHERE asset_id = $1`, assetID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return n, nil
}

// AcquireKeyLock (ürün, lokasyon) anahtarı için transaction ömürlü advisory
// lock alır. Aynı anahtar üzerindeki bakiye kontrolü + append dizileri sıraya
// girer; farklı anahtarlar paralel çalışır. Lock commit/rollback ile bırakılır.
func (r *MovementRepo) AcquireKeyLock(ctx context.Context, productID, locationID string) error {
	_, err := r.q.Exec(ctx,
		`SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`,
		productID+"/"+locationID,
	)
	if err != nil {
		return fmt.Errorf("acquire key lock: %w", err)
	}
	return nil
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	err := row.Scan(
		&m.ID, &m.Type, &m.ProductID, &m.AssetID, &m.Quantity,
		&m.FromLocationID, &m.ToLocationID, &m.PartyID, &m.Condition,
		&m.Note, &m.CreatedBy, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("scan movement: %w", err)
	}
	return &m, nil
}
