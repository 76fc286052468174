package importer

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/entity"
)

func decimalFromInt(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func buildWorkbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellRef, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

var header = []any{"Bölüm", "SKU", "Ürün Adı", "Birim", "Tür", "Güvenlik Stoğu", "Miktar"}

func TestParseWorkbook(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		header,
		{"Merkez Depo", "SRF-001", "A4 Kağıt", "paket", "Sarf", "10", "120"},
		{"Şantiye Depo", "DMR-001", "Dizüstü Bilgisayar", "adet", "Demirbaş", "", "3"},
	})

	rows, skipped, err := ParseWorkbook(buf)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Len(t, rows, 2)

	assert.Equal(t, "Merkez Depo", rows[0].LocationName)
	assert.Equal(t, entity.CategorySARF, rows[0].Category)
	assert.True(t, rows[0].ReorderThreshold.Equal(decimalFromInt(10)))
	assert.True(t, rows[0].Quantity.Equal(decimalFromInt(120)))

	assert.Equal(t, entity.CategoryDEMIRBAS, rows[1].Category)
	assert.True(t, rows[1].Quantity.Equal(decimalFromInt(3)))
}

func TestParseWorkbookTurkishHeaderFolding(t *testing.T) {
	// Başlıklar büyük harfle de yazılabilir; TÜR → tür katlaması Türkçedir.
	buf := buildWorkbook(t, [][]any{
		{"BÖLÜM", "SKU", "ÜRÜN ADI", "BİRİM", "TÜR", "GÜVENLİK STOĞU", "MİKTAR"},
		{"Merkez Depo", "SRF-001", "A4 Kağıt", "paket", "SARF", "", "5"},
	})

	rows, skipped, err := ParseWorkbook(buf)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Len(t, rows, 1)
	assert.Equal(t, entity.CategorySARF, rows[0].Category)
}

func TestParseWorkbookSkipsBrokenRows(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		header,
		{"Merkez Depo", "SRF-001", "A4 Kağıt", "paket", "Sarf", "", "100"},
		{"Merkez Depo", "", "İsimsiz", "adet", "Sarf", "", "5"},         // SKU boş
		{"Merkez Depo", "SRF-002", "Zarf", "kutu", "Bilinmeyen", "", "5"}, // tanınmayan tür
		{"Merkez Depo", "SRF-003", "Toner", "adet", "Sarf", "", "sıfır"}, // miktar sayı değil
		{"Merkez Depo", "DMR-002", "Monitör", "adet", "Demirbaş", "", "2.5"}, // kesirli demirbaş
	})

	rows, skipped, err := ParseWorkbook(buf)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	require.Len(t, skipped, 4)
	assert.Equal(t, 3, skipped[0].Row)
	assert.Equal(t, "zorunlu alan boş", skipped[0].Reason)
}

func TestParseWorkbookNegativeAdjustmentAllowed(t *testing.T) {
	// Ayrıcalıklı yol: sarf için negatif açılış düzeltmesi satırı geçerlidir,
	// mutabakat import yanıtında raporlanır.
	buf := buildWorkbook(t, [][]any{
		header,
		{"Merkez Depo", "SRF-001", "A4 Kağıt", "paket", "Sarf", "", "-15"},
	})

	rows, skipped, err := ParseWorkbook(buf)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Quantity.IsNegative())
}

func TestParseWorkbookMissingColumn(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"Bölüm", "SKU", "Ürün Adı", "Birim", "Tür"}, // Miktar yok
		{"Merkez Depo", "SRF-001", "A4 Kağıt", "paket", "Sarf"},
	})

	_, _, err := ParseWorkbook(buf)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestParseWorkbookCommaDecimal(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		header,
		{"Merkez Depo", "SRF-001", "Boya", "kg", "Sarf", "2,5", "7,25"},
	})

	rows, skipped, err := ParseWorkbook(buf)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Len(t, rows, 1)
	assert.Equal(t, "7.25", rows[0].Quantity.String())
	assert.Equal(t, "2.5", rows[0].ReorderThreshold.String())
}
