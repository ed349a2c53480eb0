package app

import (
	"github.com/adrforge/adrforge-backend/internal/adr/provider"
	"github.com/adrforge/adrforge-backend/internal/adr/provider/anthropic"
	"github.com/adrforge/adrforge-backend/internal/adr/provider/gemini"
	"github.com/adrforge/adrforge-backend/internal/adr/provider/ollama"
	"github.com/adrforge/adrforge-backend/internal/adr/provider/openai"
	"github.com/adrforge/adrforge-backend/internal/pkg/logger"
)

// wireProviders builds the model-dispatch registry once. Adapters are
// registered even when their credential is absent; the missing key
// surfaces as a configuration error only when that provider is invoked.
func wireProviders(log *logger.Logger, cfg Config) *provider.Registry {
	log.Info("Wiring providers...")

	registry := provider.NewRegistry()
	registry.Register(openai.New(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL), "gpt", "o1", "o3", "o4")
	registry.Register(gemini.New(cfg.GeminiAPIKey, cfg.GeminiBaseURL), "gemini")
	registry.Register(anthropic.New(cfg.AnthropicAPIKey, cfg.AnthropicBaseURL), "claude")
	registry.Register(ollama.New(cfg.OllamaBaseURL), "llama", "mistral", "gemma", "phi", "qwen", "deepseek")
	return registry
}
