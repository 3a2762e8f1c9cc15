package translation

import (
	"fmt"
)

// Config selects and configures the translation provider
type Config struct {
	Provider     string // "google", "openai" or "gemini"
	GoogleAPIKey string
	OpenAIAPIKey string
	GeminiAPIKey string
}

// NewTranslator creates the configured provider wrapped in a circuit
// breaker. The key for the selected provider must be set.
func NewTranslator(cfg Config) (Translator, error) {
	switch cfg.Provider {
	case "google":
		if cfg.GoogleAPIKey == "" {
			return nil, fmt.Errorf("google API key is required, set google_api_key in config.json or GOOGLE_API_KEY")
		}
		return withBreaker("google", NewGoogleClient(cfg.GoogleAPIKey)), nil

	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required, set openai_api_key in config.json or OPENAI_API_KEY")
		}
		return withBreaker("openai", NewOpenAIClient(cfg.OpenAIAPIKey)), nil

	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("gemini API key is required, set gemini_api_key in config.json or GEMINI_API_KEY")
		}
		return withBreaker("gemini", NewGeminiClient(cfg.GeminiAPIKey)), nil

	default:
		return nil, fmt.Errorf("unknown translation provider: %s", cfg.Provider)
	}
}
