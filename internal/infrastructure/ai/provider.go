// Package ai adaptadores de ports.LLMService para los proveedores soportados.
package ai

import (
	"fmt"

	"github.com/jhoicas/Litigios-api/internal/application/ports"
	"github.com/jhoicas/Litigios-api/pkg/config"
)

// NewFromConfig elige el adaptador según AI_PROVIDER. Devuelve nil (sin error) si el
// proveedor es "none" o no tiene API key: el caso de uso responde siempre el texto fijo.
func NewFromConfig(cfg config.AIConfig) (ports.LLMService, error) {
	switch cfg.Provider {
	case config.AIProviderNone, "":
		return nil, nil
	case config.AIProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, nil
		}
		return NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel), nil
	case config.AIProviderAnthropic:
		if cfg.AnthropicAPIKey == "" {
			return nil, nil
		}
		return NewAnthropicService(cfg.AnthropicAPIKey, cfg.AnthropicModel), nil
	case config.AIProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, nil
		}
		return NewOpenAIService(cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
	default:
		return nil, fmt.Errorf("AI: proveedor %q no soportado", cfg.Provider)
	}
}
