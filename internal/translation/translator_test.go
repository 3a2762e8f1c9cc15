package translation

import (
	"context"
	"os"
	"testing"
)

func TestNewGoogleClient(t *testing.T) {
	g := NewGoogleClient("test-api-key")

	if g == nil {
		t.Fatal("NewGoogleClient returned nil")
	}
	if g.apiKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", g.apiKey)
	}
	if g.baseURL != googleAPIURL {
		t.Errorf("Expected default base URL, got '%s'", g.baseURL)
	}
	if g.httpClient == nil {
		t.Error("HTTP client not initialized")
	}
	if g.httpClient.Timeout != googleTimeout {
		t.Errorf("Expected %v timeout, got %v", googleTimeout, g.httpClient.Timeout)
	}
}

func TestNewOpenAIClient(t *testing.T) {
	c := NewOpenAIClient("test-api-key")

	if c == nil {
		t.Fatal("NewOpenAIClient returned nil")
	}
	if c.client == nil {
		t.Error("OpenAI client not initialized")
	}
}

func TestNewGeminiClient(t *testing.T) {
	c := NewGeminiClient("test-api-key")

	if c == nil {
		t.Fatal("NewGeminiClient returned nil")
	}
	if c.apiKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", c.apiKey)
	}
	if c.model != geminiModel {
		t.Errorf("Expected model '%s', got '%s'", geminiModel, c.model)
	}
}

func TestOpenAITranslate_Integration(t *testing.T) {
	// Skip if no API key
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	c := NewOpenAIClient(apiKey)

	translation, err := c.Translate(context.Background(), "Hello", "en", "de")
	if err != nil {
		t.Errorf("Translate failed: %v", err)
	}
	if translation == "" {
		t.Error("Got empty translation")
	}

	t.Logf("Translation of 'Hello': %s", translation)
}

func TestGeminiTranslate_Integration(t *testing.T) {
	// Skip if no API key
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: GEMINI_API_KEY not set")
	}

	c := NewGeminiClient(apiKey)

	translation, err := c.Translate(context.Background(), "Hello", "en", "de")
	if err != nil {
		t.Errorf("Translate failed: %v", err)
	}
	if translation == "" {
		t.Error("Got empty translation")
	}

	t.Logf("Translation of 'Hello': %s", translation)
}
