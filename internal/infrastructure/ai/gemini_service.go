package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jhoicas/kitchen-stores/internal/application/ports"
	"github.com/jhoicas/kitchen-stores/internal/domain/entity"
)

// Verificar en tiempo de compilación que GeminiService implementa AdvisoryService.
var _ ports.AdvisoryService = (*GeminiService)(nil)

const (
	geminiBaseURL      = "https://generativelanguage.googleapis.com"
	geminiGeneratePath = "/v1beta/models/{model}:generateContent"
)

// GeminiService adaptador que implementa AdvisoryService llamando a la API REST de Google Gemini.
type GeminiService struct {
	apiKey string
	model  string
	client *resty.Client
}

// Option ajusta el cliente HTTP de un adaptador.
type Option func(*resty.Client)

// WithBaseURL reemplaza la URL base del proveedor (pruebas, proxies).
func WithBaseURL(url string) Option {
	return func(c *resty.Client) { c.SetBaseURL(url) }
}

// NewGeminiService construye el adaptador. model suele ser "gemini-2.0-flash".
// Si apiKey está vacío, las llamadas devuelven error en lugar de fallar en producción.
func NewGeminiService(apiKey, model string, opts ...Option) *GeminiService {
	client := resty.New().
		SetBaseURL(geminiBaseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(25 * time.Second) // timeout de red; el caso de uso también pone WithTimeout
	for _, opt := range opts {
		opt(client)
	}
	return &GeminiService{apiKey: apiKey, model: model, client: client}
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig *genConfig      `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	ResponseMIMEType string         `json:"responseMimeType,omitempty"` // "application/json" → JSON puro garantizado
	ResponseSchema   map[string]any `json:"responseSchema,omitempty"`
	Temperature      float32        `json:"temperature"`
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

// tipsSchema arreglo de {title, description, type} con type restringido al enum.
var tipsSchema = map[string]any{
	"type": "ARRAY",
	"items": map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"title":       map[string]any{"type": "STRING"},
			"description": map[string]any{"type": "STRING"},
			"type":        map[string]any{"type": "STRING", "enum": []string{entity.TipWarning, entity.TipInfo, entity.TipSuccess}},
		},
		"required": []string{"title", "description", "type"},
	},
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// SummarizeStock pide a Gemini tres recomendaciones sobre el subconjunto dado.
func (s *GeminiService) SummarizeStock(ctx context.Context, items []*entity.StockItem) ([]entity.IntelligenceTip, error) {
	text, err := s.generate(ctx, tipsPrompt(items), &genConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   tipsSchema,
		Temperature:      0.4,
	})
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return []entity.IntelligenceTip{}, nil
	}

	var payload []tipPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("AI: respuesta del modelo no es JSON válido: %w (respuesta: %s)", err, text)
	}
	return toTips(payload), nil
}

// AnswerQuery responde la consulta en hindi con el contexto de inventario dado.
func (s *GeminiService) AnswerQuery(ctx context.Context, query string, items []*entity.StockItem, recent []*entity.Transaction) (string, error) {
	text, err := s.generate(ctx, chatPrompt(query, items, recent), nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (s *GeminiService) generate(ctx context.Context, prompt string, cfg *genConfig) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}

	payload := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: cfg,
	}

	var out geminiResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetPathParam("model", s.model).
		SetQueryParam("key", s.apiKey).
		SetBody(payload).
		SetResult(&out).
		SetError(&out).
		Post(geminiGeneratePath)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	if resp.IsError() {
		if out.Error != nil {
			return "", fmt.Errorf("AI: Gemini error %d: %s", out.Error.Code, out.Error.Message)
		}
		return "", fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode())
	}

	if len(out.Candidates) == 0 {
		return "", nil
	}
	var b strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String(), nil
}
