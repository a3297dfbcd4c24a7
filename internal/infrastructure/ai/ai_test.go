package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kitchen-stores/internal/domain/entity"
	"github.com/jhoicas/kitchen-stores/pkg/config"
)

func sampleItems() []*entity.StockItem {
	return []*entity.StockItem{{
		ID: "6", Name: "Pure Desi Ghee", Category: entity.CategoryOilGhee,
		Quantity: decimal.NewFromInt(5), Unit: "Liters", MinThreshold: decimal.NewFromInt(12),
	}}
}

func TestGemini_SummarizeStock(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotKey = r.URL.Path, r.URL.Query().Get("key")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"parts":[{"text":"[{\"title\":\"घी कम है\",\"description\":\"तुरंत खरीद करें\",\"type\":\"warning\"},{\"title\":\"\",\"description\":\"x\",\"type\":\"INFO\"},{\"title\":\"मौसम\",\"description\":\"d\",\"type\":\"OTHER\"}]"}]}}]}`)
	}))
	defer srv.Close()

	svc := NewGeminiService("k-123", "gemini-test", WithBaseURL(srv.URL))
	tips, err := svc.SummarizeStock(context.Background(), sampleItems())
	require.NoError(t, err)

	assert.Equal(t, "/v1beta/models/gemini-test:generateContent", gotPath)
	assert.Equal(t, "k-123", gotKey)
	genCfg := gotBody["generationConfig"].(map[string]any)
	assert.Equal(t, "application/json", genCfg["responseMimeType"])
	assert.NotNil(t, genCfg["responseSchema"])

	require.Len(t, tips, 2)
	assert.Equal(t, "घी कम है", tips[0].Title)
	assert.Equal(t, entity.TipWarning, tips[0].Type)
	assert.Equal(t, entity.TipInfo, tips[1].Type, "tipo desconocido se normaliza a INFO")
}

func TestGemini_AnswerQueryYErrores(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("key") == "bad" {
			w.WriteHeader(http.StatusForbidden)
			_, _ = io.WriteString(w, `{"error":{"code":403,"message":"API key not valid"}}`)
			return
		}
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"parts":[{"text":"  घी 5 लीटर उपलब्ध है। "}]}}]}`)
	}))
	defer srv.Close()

	answer, err := NewGeminiService("ok", "m", WithBaseURL(srv.URL)).AnswerQuery(context.Background(), "ghee?", sampleItems(), nil)
	require.NoError(t, err)
	assert.Equal(t, "घी 5 लीटर उपलब्ध है।", answer)

	_, err = NewGeminiService("bad", "m", WithBaseURL(srv.URL)).AnswerQuery(context.Background(), "ghee?", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not valid")

	_, err = NewGeminiService("", "m", WithBaseURL(srv.URL)).SummarizeStock(context.Background(), nil)
	assert.Error(t, err)
}

func TestGemini_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	_, err := NewGeminiService("k", "m", WithBaseURL(srv.URL)).SummarizeStock(ctx, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}

func TestAnthropic_SummarizeStock(t *testing.T) {
	var gotHeader string
	var gotReq anthropicRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("x-api-key")
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, "{\"content\":[{\"type\":\"text\",\"text\":\"Aquí tienes:\\n```json\\n{\\\"tips\\\":[{\\\"title\\\":\\\"स्टॉक अलर्ट\\\",\\\"description\\\":\\\"घी\\\",\\\"type\\\":\\\"WARNING\\\"}]}\\n```\"}]}")
	}))
	defer srv.Close()

	svc := NewAnthropicService("sk-ant", "claude-test", WithBaseURL(srv.URL))
	tips, err := svc.SummarizeStock(context.Background(), sampleItems())
	require.NoError(t, err)

	assert.Equal(t, "sk-ant", gotHeader)
	assert.Equal(t, "claude-test", gotReq.Model)
	require.Len(t, gotReq.Messages, 1)
	assert.Contains(t, gotReq.Messages[0].Content, "Pure Desi Ghee")
	require.Len(t, tips, 1)
	assert.Equal(t, "स्टॉक अलर्ट", tips[0].Title)
}

func TestAnthropic_ErrorAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"error":{"type":"rate_limit_error","message":"slow down"}}`)
	}))
	defer srv.Close()

	_, err := NewAnthropicService("k", "m", WithBaseURL(srv.URL)).AnswerQuery(context.Background(), "q", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate_limit_error")
}

func TestExtractJSON(t *testing.T) {
	cases := map[string]string{
		"{\"a\":1}":                       "{\"a\":1}",
		"```json\n{\"a\":1}\n```":         "{\"a\":1}",
		"Respuesta: {\"a\":1} fin":        "{\"a\":1}",
		"sin json":                        "",
	}
	for in, want := range cases {
		assert.Equal(t, want, extractJSON(in), in)
	}
}

func TestChatPrompt_IncluyeContexto(t *testing.T) {
	recent := []*entity.Transaction{{ItemName: "Pure Desi Ghee", Type: entity.TransactionAdd, Amount: decimal.NewFromInt(10), Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}}
	p := chatPrompt("घी कितना है?", sampleItems(), recent)
	assert.Contains(t, p, `"minThreshold":12`)
	assert.Contains(t, p, `"timestamp":"2026-01-02T03:04:05Z"`)
	assert.Contains(t, p, "Respond ONLY in Hindi")
}

func TestNewAdvisoryService(t *testing.T) {
	assert.Nil(t, NewAdvisoryService(config.AIConfig{Provider: "gemini"}))
	assert.IsType(t, &GeminiService{}, NewAdvisoryService(config.AIConfig{Provider: "gemini", GeminiAPIKey: "k"}))
	assert.IsType(t, &AnthropicService{}, NewAdvisoryService(config.AIConfig{Provider: "anthropic", AnthropicAPIKey: "k"}))
	assert.Nil(t, NewAdvisoryService(config.AIConfig{Provider: "anthropic", GeminiAPIKey: "k"}))
}
