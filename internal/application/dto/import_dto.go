package dto

// ImportRowError içe aktarmada atlanan satır ve nedeni.
type ImportRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportResponse Excel toplu içe aktarma özeti. NegativeBalances içe aktarma
// sonrası mutabakatta bulunan negatif bakiyeli (ürün, lokasyon) çiftleridir;
// import bakiye doğrulamasını atladığı için ayrıca raporlanır.
type ImportResponse struct {
	ProductsCreated  int                `json:"products_created"`
	LocationsCreated int                `json:"locations_created"`
	MovementsWritten int                `json:"movements_written"`
	SkippedRows      []ImportRowError   `json:"skipped_rows,omitempty"`
	NegativeBalances []StockRowResponse `json:"negative_balances,omitempty"`
}
