package app

import (
	"github.com/adrforge/adrforge-backend/internal/pkg/envutil"
	"github.com/adrforge/adrforge-backend/internal/pkg/logger"
)

type Config struct {
	Port string

	// StorageDriver selects the AdrRepo implementation: "memory"
	// (default) or "postgres".
	StorageDriver string

	OpenAIAPIKey     string
	OpenAIBaseURL    string
	GeminiAPIKey     string
	GeminiBaseURL    string
	AnthropicAPIKey  string
	AnthropicBaseURL string
	OllamaBaseURL    string
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		Port:          envutil.GetEnv("PORT", "8080", log),
		StorageDriver: envutil.GetEnv("STORAGE_DRIVER", "memory", log),

		OpenAIAPIKey:     envutil.GetEnv("OPENAI_API_KEY", "", nil),
		OpenAIBaseURL:    envutil.GetEnv("OPENAI_BASE_URL", "", log),
		GeminiAPIKey:     envutil.GetEnv("GEMINI_API_KEY", "", nil),
		GeminiBaseURL:    envutil.GetEnv("GEMINI_BASE_URL", "", log),
		AnthropicAPIKey:  envutil.GetEnv("ANTHROPIC_API_KEY", "", nil),
		AnthropicBaseURL: envutil.GetEnv("ANTHROPIC_BASE_URL", "", log),
		OllamaBaseURL:    envutil.GetEnv("OLLAMA_BASE_URL", "", log),
	}
}
