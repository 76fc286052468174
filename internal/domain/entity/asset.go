package entity

import "time"

// Demirbaş durumları. Durum defterdeki son hareketin saf bir fonksiyonudur;
// Asset üzerindeki kopya yalnızca hızlı listeleme için tutulan türetilmiş bir
// indekstir ve hareketle aynı transaction içinde yeniden yazılır.
const (
	AssetStatusInStock  = "IN_STOCK"
	AssetStatusAssigned = "ASSIGNED"
	AssetStatusFaulty   = "FAULTY" // depoda ama arızalı işaretli
	AssetStatusScrapped = "SCRAPPED"
)

// İade koşulları (RETURN hareketi üzerinde taşınır).
const (
	ConditionIntact   = "INTACT"
	ConditionFaulty   = "FAULTY"
	ConditionScrapped = "SCRAPPED"
)

// ValidCondition kapalı iade koşulu kümesini doğrular.
func ValidCondition(c string) bool {
	switch c {
	case ConditionIntact, ConditionFaulty, ConditionScrapped:
		return true
	}
	return false
}

// Asset tek bir fiziksel demirbaşı temsil eder: 10 laptop alındıysa 10 ayrı satır.
// Code şirketin verdiği benzersiz demirbaş numarasıdır (etiket/QR).
// LocationID ve PartyID'den en fazla biri doludur; SCRAPPED son bilinen lokasyonu korur.
type Asset struct {
	ID         string
	ProductID  string
	Code       string // ör. DMB-7F3A21C4, benzersiz
	SerialNo   string // cihaz üzerindeki seri no, opsiyonel
	Status     string // türetilmiş indeks, kaynak: hareket defteri
	LocationID *string
	PartyID    *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
