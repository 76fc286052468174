package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/application/ports"
)

// Derleme zamanında GeminiService'in LLMService portunu sağladığı doğrulanır.
var _ ports.LLMService = (*GeminiService)(nil)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

	// systemPrompt modelin rolünü tanımlar. Asistan yalnızca verilen bağlamdan
	// konuşur; bağlamda olmayan stok bilgisi uydurmaz.
	systemPrompt = `Sen bir depo takip sisteminin asistanısın. Sana güncel stok durumu ve
zimmet listesi bağlam olarak verilecek, ardından bir soru sorulacak.

Kurallar:
- Yalnızca verilen bağlamdaki verilere dayanarak Türkçe yanıt ver.
- Bağlamda olmayan bir bilgi sorulursa elinde o bilgi olmadığını söyle, tahmin etme.
- Miktarları birimiyle birlikte yaz.
- Yanıtın kısa ve net olsun, en fazla birkaç cümle.`
)

// GeminiService LLMService portunu Google Gemini REST API'siyle sağlayan
// adaptör. Dış bağımlılık eklememek için yalnızca net/http kullanır.
type GeminiService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiService adaptörü kurar. model genellikle "gemini-1.5-flash".
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 20 * time.Second, // ağ timeout'u; caller ayrıca WithTimeout koyar
		},
	}
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Summarize bağlam ve soruyu Gemini'ye iletir, düz metin yanıtı döner.
func (s *GeminiService) Summarize(ctx context.Context, contextText, question string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: GEMINI_API_KEY tanımlı değil")
	}

	userText := fmt.Sprintf("BAĞLAM:\n%s\nSORU: %s", contextText, question)

	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemPrompt}},
		},
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: userText}}},
		},
		GenerationConfig: genConfig{
			Temperature:     0.2,
			MaxOutputTokens: 512,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: request serileştirilemedi: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: HTTP request oluşturulamadı: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout veya iptal: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: HTTP çağrısı başarısız: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return "", fmt.Errorf("AI: yanıt okunamadı: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Gemini hatası %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return "", fmt.Errorf("AI: Gemini yanıtı çözülemedi: %w", err)
	}
	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("AI: Gemini boş yanıt döndü")
	}

	return strings.TrimSpace(gemResp.Candidates[0].Content.Parts[0].Text), nil
}
