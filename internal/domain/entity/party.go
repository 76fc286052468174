package entity

import "time"

// Party demirbaş zimmeti alabilen bir personeli temsil eder.
// Pasif personel yeni zimmet alamaz; eski hareketlerdeki referansı korunur.
type Party struct {
	ID         string
	FullName   string
	LocationID string // bağlı olduğu bölüm
	Active     bool
	CreatedAt  time.Time
}
