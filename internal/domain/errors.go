package domain

import (
	"errors"
	"fmt"
)

// Domain hataları (dış bağımlılık yok). HTTP katmanı bunları errors.Is ile
// durum kodlarına çevirir; store'dan gelen ham hata metni asla dışarı sızmaz.
var (
	ErrNotFound     = errors.New("kayıt bulunamadı")
	ErrDuplicate    = errors.New("kayıt zaten mevcut")
	ErrInvalidInput = errors.New("geçersiz girdi")
	ErrValidation   = errors.New("iş kuralı ihlali")
	ErrUnauthorized = errors.New("yetkisiz erişim")
	ErrForbidden    = errors.New("erişim reddedildi")
	ErrUnavailable  = errors.New("veri deposuna ulaşılamıyor")

	// ErrInsufficientStock bir ErrValidation türevidir: errors.Is(err, ErrValidation) true döner.
	ErrInsufficientStock = fmt.Errorf("%w: yetersiz stok", ErrValidation)

	// ErrUnknownAsset henüz hiç hareketi olmayan demirbaş için durum sorgusu.
	ErrUnknownAsset = fmt.Errorf("%w: demirbaşa ait hareket yok", ErrNotFound)
)

// Validationf insan tarafından okunabilir gerekçeli bir iş kuralı hatası üretir.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
