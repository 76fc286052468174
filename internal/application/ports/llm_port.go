package ports

import "context"

// LLMService üretken metin servislerinin çıkış portu. Herhangi bir adaptör
// (Gemini, mock) bu arayüzü sağlar; uygulama katmanı yalnızca bu sözleşmeyi
// bilir, somut sağlayıcıyı bilmez.
type LLMService interface {
	// Summarize verilen depo bağlamı üzerinden soruyu Türkçe yanıtlar.
	// ctx dış çağrının kilitlenmemesi için timeout taşımalıdır.
	Summarize(ctx context.Context, contextText, question string) (string, error)
}
