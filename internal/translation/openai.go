package translation

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// openaiTimeout bounds one chat completion call. Chat models are
// slower than the dedicated translation endpoint, so this is looser
// than the google timeout.
const openaiTimeout = 60 * time.Second

// OpenAIClient translates through an OpenAI chat model
type OpenAIClient struct {
	client *openai.Client
}

// NewOpenAIClient creates an OpenAI backed translator.
func NewOpenAIClient(apiKey string) *OpenAIClient {
	config := openai.DefaultConfig(apiKey)
	config.HTTPClient = &http.Client{Timeout: openaiTimeout}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(config),
	}
}

// Translate asks the chat model for a translation and returns its
// reply verbatim, trimmed.
func (o *OpenAIClient) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a translation engine. Respond with only the translated text, nothing else.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Translate the following text from %s to %s:\n\n%s", sourceLang, targetLang, text),
			},
		},
		Temperature: 0.3,
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", &TransportError{Provider: "openai", Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &ResponseError{Provider: "openai", Err: ErrNoTranslation}
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
