package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/application/dto"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/application/ports"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/repository"
)

// maxQuestionRunes soru uzunluğu sınırı; bağlam penceresini soru değil depo
// verisi doldurmalı.
const maxQuestionRunes = 500

// UseCase depo asistanını yönetir: güncel stok ve zimmet durumunu metin
// bağlamına çevirir ve soruyu LLM portuna iletir. Her çağrıya 10 saniyelik
// timeout uygulanır; dış servis gecikmesi sunucu goroutine'lerini kilitlemez.
type UseCase struct {
	llm         ports.LLMService
	balanceRepo repository.BalanceRepository
	reportRepo  repository.ReportRepository
}

// NewUseCase asistan kullanım durumunu kurar.
func NewUseCase(llm ports.LLMService, balanceRepo repository.BalanceRepository, reportRepo repository.ReportRepository) *UseCase {
	return &UseCase{llm: llm, balanceRepo: balanceRepo, reportRepo: reportRepo}
}

// Ask soruyu doğrular, depo bağlamını kurar ve LLM'den yanıt ister.
// Bağlam yalnızca deftere commit edilmiş veriden üretilir.
func (uc *UseCase) Ask(ctx context.Context, in dto.AskRequest) (*dto.AskResponse, error) {
	question := strings.TrimSpace(in.Question)
	if question == "" {
		return nil, domain.Validationf("soru boş olamaz")
	}
	if utf8.RuneCountInString(question) > maxQuestionRunes {
		return nil, domain.Validationf("soru en fazla %d karakter olabilir", maxQuestionRunes)
	}

	contextText, err := uc.buildContext(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	answer, err := uc.llm.Summarize(ctx, contextText, question)
	if err != nil {
		return nil, fmt.Errorf("asistan yanıtı alınamadı: %w", err)
	}
	return &dto.AskResponse{Answer: answer}, nil
}

// buildContext stok durumu, kritik stok ve zimmet listesini satır satır
// Türkçe metne çevirir.
func (uc *UseCase) buildContext(ctx context.Context) (string, error) {
	var b strings.Builder

	stock, err := uc.balanceRepo.StockStatus(ctx, repository.StockFilter{})
	if err != nil {
		return "", err
	}
	b.WriteString("GÜNCEL STOK DURUMU:\n")
	if len(stock) == 0 {
		b.WriteString("- kayıtlı stok yok\n")
	}
	for _, r := range stock {
		fmt.Fprintf(&b, "- %s (%s), %s: %s %s", r.ProductName, r.SKU, r.LocationName, r.Balance.String(), r.Unit)
		if r.Critical {
			b.WriteString(" [KRİTİK]")
		}
		b.WriteString("\n")
	}

	custody, err := uc.reportRepo.CustodyList(ctx, "")
	if err != nil {
		return "", err
	}
	b.WriteString("\nZİMMETTEKİ DEMİRBAŞLAR:\n")
	if len(custody) == 0 {
		b.WriteString("- zimmette demirbaş yok\n")
	}
	for _, r := range custody {
		fmt.Fprintf(&b, "- %s (%s), %s: %s\n", r.ProductName, r.Code, r.HolderKind, r.HolderName)
	}

	return b.String(), nil
}
