package ai

import (
	"github.com/jhoicas/kitchen-stores/internal/application/ports"
	"github.com/jhoicas/kitchen-stores/pkg/config"
)

// NewAdvisoryService elige el adaptador según cfg.Provider.
// Devuelve nil si el proveedor elegido no tiene API key: el asesor queda en modo respaldo.
func NewAdvisoryService(cfg config.AIConfig, opts ...Option) ports.AdvisoryService {
	switch cfg.Provider {
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			return nil
		}
		return NewAnthropicService(cfg.AnthropicAPIKey, cfg.AnthropicModel, opts...)
	default:
		if cfg.GeminiAPIKey == "" {
			return nil
		}
		return NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel, opts...)
	}
}
