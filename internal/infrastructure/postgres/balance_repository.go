package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/repository"
)

var _ repository.BalanceRepository = (*BalanceRepo)(nil)

// BalanceRepo defterden türetilen bakiyelerin okuma adaptörü: ledger
// paketindeki saf çekirdeğin SQL ikizi. Mutable sayaç yoktur; her sorgu
// movements tablosu üzerinde toplamadır.
type BalanceRepo struct {
	q Querier
}

// NewBalanceRepository bakiye okuma adaptörünü kurar.
func NewBalanceRepository(q Querier) *BalanceRepo {
	return &BalanceRepo{q: q}
}

// flowsCTE her hareketi lokasyon bazlı işaretli akışa açar: girişler (+),
// çıkışlar (−). RETURN bakiyeyi etkilemez, CTE dışında kalır.
const flowsCTE = `
	WITH flows AS (
		SELECT product_id, to_location_id AS location_id, quantity AS delta
		FROM movements
		WHERE type IN ('RECEIPT', 'TRANSFER_IN') AND to_location_id IS NOT NULL
		UNION ALL
		SELECT product_id, from_location_id, -quantity
		FROM movements
		WHERE type IN ('ISSUE', 'TRANSFER_OUT', 'ASSIGN') AND from_location_id IS NOT NULL
	)`

// ConsumableBalance (ürün, lokasyon) çiftinin güncel bakiyesini hesaplar.
// Transaction içinde advisory lock sonrası çağrıldığında okuma-kontrol-append
// dizisini linearize eder.
func (r *BalanceRepo) ConsumableBalance(ctx context.Context, productID, locationID string) (decimal.Decimal, error) {
	query := flowsCTE + `
		SELECT COALESCE(SUM(delta), 0) FROM flows WHERE product_id = $1 AND location_id = $2`
	var balance decimal.Decimal
	if err := r.q.QueryRow(ctx, query, productID, locationID).Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("consumable balance: %w", err)
	}
	return balance, nil
}

const stockSelect = `
	SELECT p.id, p.sku, p.name, p.unit, p.category, p.reorder_threshold,
	       l.id, l.name,
	       SUM(f.delta) AS balance,
	       (p.category = 'SARF' AND p.reorder_threshold > 0 AND SUM(f.delta) <= p.reorder_threshold) AS critical
	FROM flows f
	JOIN products p ON p.id = f.product_id
	JOIN locations l ON l.id = f.location_id`

const stockGroup = `
	GROUP BY p.id, p.sku, p.name, p.unit, p.category, p.reorder_threshold, l.id, l.name`

// StockStatus filtreye uyan tüm (ürün, lokasyon) bakiyelerini döner.
func (r *BalanceRepo) StockStatus(ctx context.Context, filter repository.StockFilter) ([]repository.StockRow, error) {
	conds := ""
	var args []any
	add := func(cond string, val any) {
		args = append(args, val)
		if conds == "" {
			conds = " WHERE "
		} else {
			conds += " AND "
		}
		conds += cond + " = $" + strconv.Itoa(len(args))
	}
	if filter.LocationID != "" {
		add("l.id", filter.LocationID)
	}
	if filter.ProductID != "" {
		add("p.id", filter.ProductID)
	}
	if filter.Category != "" {
		add("p.category", filter.Category)
	}

	query := flowsCTE + stockSelect + conds + stockGroup + ` ORDER BY p.name, l.name`
	return r.queryStockRows(ctx, query, args...)
}

// LowStock güvenlik stoğu tanımlı SARF ürünlerde bakiye eşiğin altına veya
// eşiğe düşen çiftleri döner.
func (r *BalanceRepo) LowStock(ctx context.Context, locationID string) ([]repository.StockRow, error) {
	query := flowsCTE + stockSelect + `
		WHERE p.category = 'SARF' AND p.reorder_threshold > 0 AND ($1 = '' OR l.id = $1)` + stockGroup + `
		HAVING SUM(f.delta) <= p.reorder_threshold
		ORDER BY p.name, l.name`
	return r.queryStockRows(ctx, query, locationID)
}

// NegativeBalances bakiyesi negatif (ürün, lokasyon) çiftlerini döner;
// içe aktarma sonrası mutabakat bu sorguyla yapılır.
func (r *BalanceRepo) NegativeBalances(ctx context.Context) ([]repository.StockRow, error) {
	query := flowsCTE + stockSelect + stockGroup + `
		HAVING SUM(f.delta) < 0
		ORDER BY p.name, l.name`
	return r.queryStockRows(ctx, query)
}

func (r *BalanceRepo) queryStockRows(ctx context.Context, query string, args ...any) ([]repository.StockRow, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("stock rows: %w", err)
	}
	defer rows.Close()

	var list []repository.StockRow
	for rows.Next() {
		var row repository.StockRow
		if err := rows.Scan(
			&row.ProductID, &row.SKU, &row.ProductName, &row.Unit, &row.Category,
			&row.ReorderThreshold, &row.LocationID, &row.LocationName,
			&row.Balance, &row.Critical,
		); err != nil {
			return nil, fmt.Errorf("scan stock row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
