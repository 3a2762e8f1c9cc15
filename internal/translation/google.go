package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	googleAPIURL  = "https://translation.googleapis.com/language/translate/v2"
	googleTimeout = 20 * time.Second

	// maxErrorBody bounds how much of an error response is kept for
	// the error message.
	maxErrorBody = 2048
)

// GoogleClient calls the Google Cloud Translation API v2
type GoogleClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// googleResponse is the v2 response envelope
type googleResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

// NewGoogleClient creates a client for the v2 REST endpoint.
func NewGoogleClient(apiKey string) *GoogleClient {
	return &GoogleClient{
		apiKey:  apiKey,
		baseURL: googleAPIURL,
		httpClient: &http.Client{
			Timeout: googleTimeout,
		},
	}
}

// Translate sends text to the v2 endpoint and returns the first
// translation candidate.
func (g *GoogleClient) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	params := url.Values{}
	params.Set("key", g.apiKey)

	form := url.Values{}
	form.Set("q", text)
	form.Set("source", sourceLang)
	form.Set("target", targetLang)
	form.Set("format", "text")

	reqURL := g.baseURL + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", &TransportError{Provider: "google", Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Provider: "google", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", &TransportError{Provider: "google", StatusCode: resp.StatusCode, Body: string(body)}
	}

	var gr googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", &ResponseError{Provider: "google", Err: fmt.Errorf("decoding response: %w", err)}
	}
	if len(gr.Data.Translations) == 0 {
		return "", &ResponseError{Provider: "google", Err: ErrNoTranslation}
	}
	return gr.Data.Translations[0].TranslatedText, nil
}
