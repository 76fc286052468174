// Package pdf imzaya hazır zimmet formunu üretir.
//
// A4 sayfa düzeni:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  BAŞLIK: DEMİRBAŞ ZİMMET FORMU  │  Tarih                    │
//	│  ───────────────────────────────────────────────────────── │
//	│  TESLİM ALAN: Ad (personel veya bölüm)                      │
//	│  ───────────────────────────────────────────────────────── │
//	│  TABLO: Kod | Ürün | SKU | Seri No | Zimmet Tarihi          │
//	│  Her satırın altında code128 barkod (demirbaş etiketi)      │
//	│  ───────────────────────────────────────────────────────── │
//	│  İMZA: Teslim Eden / Teslim Alan                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/application/report"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/repository"
)

var _ report.CustodyFormGenerator = (*CustodyFormGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 25, Green: 52, Blue: 94}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// CustodyFormGenerator zimmet formunu Maroto v2 ile üretir.
type CustodyFormGenerator struct{}

// NewCustodyFormGenerator üreticiyi kurar.
func NewCustodyFormGenerator() *CustodyFormGenerator { return &CustodyFormGenerator{} }

// GenerateCustodyForm PDF'i üretir ve byte'larını döner.
func (g *CustodyFormGenerator) GenerateCustodyForm(
	_ context.Context,
	holderName string,
	rows []repository.CustodyRow,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Demirbaş Zimmet Formu", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(holderRow(holderName, rows))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range assetRows(rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(signatureRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: zimmet formu üretilemedi: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: başlık (sol) ve düzenleme tarihi (sağ).
func headerRow() core.Row {
	today := time.Now().Format("02/01/2006")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("DEMİRBAŞ ZİMMET FORMU", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Tarih: "+today, props.Text{
				Size: 9, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// holderRow: teslim alan kişi/bölüm ve kalem sayısı.
func holderRow(holderName string, rows []repository.CustodyRow) core.Row {
	kind := "PERSONEL"
	if len(rows) > 0 {
		kind = rows[0].HolderKind
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("TESLİM ALAN ("+kind+")", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(holderName, props.Text{Style: fontstyle.Bold, Size: 11, Top: 6}),
			text.New(fmt.Sprintf("Zimmetli demirbaş sayısı: %d", len(rows)), props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: demirbaş tablosu başlığı.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Kod", 2, align.Left),
		h("Ürün", 4, align.Left),
		h("SKU", 2, align.Left),
		h("Seri No", 2, align.Left),
		h("Zimmet Tarihi", 2, align.Right),
	)
}

// assetRows: her demirbaş için bir bilgi satırı ve altında code128 etiket barkodu.
func assetRows(rows []repository.CustodyRow) []core.Row {
	result := make([]core.Row, 0, len(rows)*2)
	for _, r := range rows {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(r.Code, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(r.ProductName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(r.SKU, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(nonEmpty(r.SerialNo, "—"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(r.AssignedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
		result = append(result, row.New(10).Add(
			col.New(3).Add(code.NewBar(r.Code, props.Barcode{Percent: 90})),
			col.New(9),
		))
	}
	return result
}

// signatureRow: teslim eden / teslim alan imza alanları.
func signatureRow() core.Row {
	sig := func(label string) core.Col {
		return col.New(6).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Top: 2, Align: align.Center}),
			text.New("Ad Soyad / İmza: ______________________", props.Text{
				Size: 9, Top: 14, Align: align.Center, Color: colorGray,
			}),
		)
	}
	return row.New(24).Add(
		sig("TESLİM EDEN (Depo)"),
		sig("TESLİM ALAN"),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
