package translation

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

const (
	geminiModel   = "gemini-2.0-flash"
	geminiTimeout = 60 * time.Second
)

// GeminiClient translates through the Gemini API
type GeminiClient struct {
	apiKey string
	model  string
}

// NewGeminiClient creates a Gemini backed translator.
func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{
		apiKey: apiKey,
		model:  geminiModel,
	}
}

// Translate asks the model for a translation and returns its reply
// verbatim, trimmed.
func (g *GeminiClient) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     g.apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: geminiTimeout},
	})
	if err != nil {
		return "", &TransportError{Provider: "gemini", Err: err}
	}

	prompt := fmt.Sprintf("Translate the following text from %s to %s. Respond with only the translated text, nothing else.\n\n%s", sourceLang, targetLang, text)
	resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.3)),
	})
	if err != nil {
		return "", &TransportError{Provider: "gemini", Err: err}
	}

	translated := strings.TrimSpace(resp.Text())
	if translated == "" {
		return "", &ResponseError{Provider: "gemini", Err: ErrNoTranslation}
	}
	return translated, nil
}
