package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/repository"
)

// foldHolderTR arama parametresini Türkçe kurallarla küçültür (İ→i, I→ı);
// strings.ToLower bu harflerde yanlış katlar. Kolon tarafı veritabanının
// lower() collation'ı ile karşılaştırılır.
func foldHolderTR(s string) string {
	return cases.Lower(language.Turkish).String(s)
}

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo isim çözümlemeli salt-okunur rapor sorguları.
type ReportRepo struct {
	q Querier
}

// NewReportRepository rapor adaptörünü kurar.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// CustodyList şu an ASSIGNED durumdaki demirbaşları elinde bulunduranın adıyla
// döner. holderName boş değilse ada göre harf duyarsız filtreler; parametre
// Türkçe katlamayla küçültülür. AssignedAt türetilmiş indeksin son yazım
// zamanıdır (zimmet anı).
func (r *ReportRepo) CustodyList(ctx context.Context, holderName string) ([]repository.CustodyRow, error) {
	query := `
		SELECT a.id, a.code, a.serial_no, p.sku, p.name,
		       CASE WHEN a.party_id IS NOT NULL THEN 'PERSONEL' ELSE 'BOLUM' END AS holder_kind,
		       COALESCE(pr.full_name, l.name) AS holder_name,
		       a.updated_at
		FROM assets a
		JOIN products p ON p.id = a.product_id
		LEFT JOIN parties pr ON pr.id = a.party_id
		LEFT JOIN locations l ON l.id = a.location_id
		WHERE a.status = 'ASSIGNED'
		  AND ($1 = '' OR lower(COALESCE(pr.full_name, l.name)) LIKE '%' || $1 || '%')
		ORDER BY holder_name, a.code`
	rows, err := r.q.Query(ctx, query, foldHolderTR(holderName))
	if err != nil {
		return nil, fmt.Errorf("custody list: %w", err)
	}
	defer rows.Close()

	var list []repository.CustodyRow
	for rows.Next() {
		var row repository.CustodyRow
		var holder sql.NullString
		if err := rows.Scan(
			&row.AssetID, &row.Code, &row.SerialNo, &row.SKU, &row.ProductName,
			&row.HolderKind, &holder, &row.AssignedAt,
		); err != nil {
			return nil, fmt.Errorf("scan custody row: %w", err)
		}
		row.HolderName = holder.String
		list = append(list, row)
	}
	return list, rows.Err()
}
