package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jhoicas/kitchen-stores/internal/application/ports"
	"github.com/jhoicas/kitchen-stores/internal/domain/entity"
)

// Verificar en tiempo de compilación que AnthropicService implementa AdvisoryService.
var _ ports.AdvisoryService = (*AnthropicService)(nil)

const (
	anthropicBaseURL      = "https://api.anthropic.com"
	anthropicMessagesPath = "/v1/messages"
	anthropicVersion      = "2023-06-01"

	anthropicTipsSystem = `You advise the stores department of the Rajbhavan Kitchen.
Return ONLY a valid JSON object (no markdown, no code fences) with this exact structure:
{"tips": [{"title": "<Hindi>", "description": "<Hindi>", "type": "WARNING" | "INFO" | "SUCCESS"}]}
Do not include any text outside the JSON object.`
)

// AnthropicService adaptador que implementa AdvisoryService usando la API REST de Anthropic (Claude).
type AnthropicService struct {
	apiKey string
	model  string
	client *resty.Client
}

// NewAnthropicService construye el adaptador.
// Si apiKey está vacío las llamadas devuelven error descriptivo en lugar de panic.
func NewAnthropicService(apiKey, model string, opts ...Option) *AnthropicService {
	client := resty.New().
		SetBaseURL(anthropicBaseURL).
		SetHeader("x-api-key", apiKey).
		SetHeader("anthropic-version", anthropicVersion).
		SetHeader("content-type", "application/json").
		SetTimeout(25 * time.Second)
	for _, opt := range opts {
		opt(client)
	}
	return &AnthropicService{apiKey: apiKey, model: model, client: client}
}

// ── Estructuras internas del protocolo Anthropic Messages API ─────────────────

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// jsonBlockRe extrae el primer objeto JSON del texto aunque Claude lo envuelva en markdown.
// Captura desde el primer '{' hasta el último '}'.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// ── Implementación del puerto ─────────────────────────────────────────────────

// SummarizeStock pide a Claude las recomendaciones y extrae el objeto JSON de la respuesta.
func (s *AnthropicService) SummarizeStock(ctx context.Context, items []*entity.StockItem) ([]entity.IntelligenceTip, error) {
	rawText, err := s.message(ctx, anthropicTipsSystem, tipsPrompt(items))
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(rawText) == "" {
		return []entity.IntelligenceTip{}, nil
	}

	// Parseo seguro: extraer solo el bloque JSON aunque Claude añada texto adicional.
	cleanJSON := extractJSON(rawText)
	if cleanJSON == "" {
		return nil, fmt.Errorf("AI: no se encontró JSON válido en la respuesta del modelo (respuesta: %s)", rawText)
	}

	var payload struct {
		Tips []tipPayload `json:"tips"`
	}
	if err := json.Unmarshal([]byte(cleanJSON), &payload); err != nil {
		return nil, fmt.Errorf("AI: parsear JSON de recomendaciones: %w (JSON extraído: %s)", err, cleanJSON)
	}
	return toTips(payload.Tips), nil
}

// AnswerQuery responde la consulta en hindi con el contexto de inventario dado.
func (s *AnthropicService) AnswerQuery(ctx context.Context, query string, items []*entity.StockItem, recent []*entity.Transaction) (string, error) {
	text, err := s.message(ctx, "", chatPrompt(query, items, recent))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (s *AnthropicService) message(ctx context.Context, system, content string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: ANTHROPIC_API_KEY no configurado")
	}

	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: 1024,
		System:    system,
		Messages:  []anthropicMessage{{Role: "user", Content: content}},
	}

	var out anthropicResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&out).
		SetError(&out).
		Post(anthropicMessagesPath)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	if resp.IsError() {
		if out.Error != nil {
			return "", fmt.Errorf("AI: Anthropic error (%s): %s", out.Error.Type, out.Error.Message)
		}
		return "", fmt.Errorf("AI: Anthropic HTTP %d: %s", resp.StatusCode(), resp.String())
	}

	var b strings.Builder
	for _, c := range out.Content {
		if c.Type == "" || c.Type == "text" {
			b.WriteString(c.Text)
		}
	}
	return b.String(), nil
}

// extractJSON extrae el primer objeto JSON de un texto libre.
// Primero elimina bloques de código markdown y luego captura el primer bloque { … }.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if end := strings.LastIndex(after, "```"); end != -1 {
			after = after[:end]
		}
		text = strings.TrimSpace(after)
	}

	if strings.HasPrefix(text, "{") {
		return text
	}
	return strings.TrimSpace(jsonBlockRe.FindString(text))
}
