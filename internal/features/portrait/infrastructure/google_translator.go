package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// DefaultGoogleTranslateURL is the public web-client endpoint of Google Translate.
const DefaultGoogleTranslateURL = "https://translate.googleapis.com/translate_a/single"

// GoogleTranslator calls the keyless Google Translate web endpoint.
type GoogleTranslator struct {
	baseURL    string
	httpClient *http.Client
}

// GoogleOption configures a GoogleTranslator.
type GoogleOption func(*GoogleTranslator)

// WithGoogleBaseURL points the translator at another endpoint.
func WithGoogleBaseURL(baseURL string) GoogleOption {
	return func(g *GoogleTranslator) { g.baseURL = baseURL }
}

// WithGoogleHTTPClient replaces the HTTP client.
func WithGoogleHTTPClient(client *http.Client) GoogleOption {
	return func(g *GoogleTranslator) { g.httpClient = client }
}

// NewGoogleTranslator creates a translator backed by Google Translate.
func NewGoogleTranslator(opts ...GoogleOption) *GoogleTranslator {
	g := &GoogleTranslator{
		baseURL:    DefaultGoogleTranslateURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *GoogleTranslator) Name() string { return "google" }

// Translate sends text to Google Translate and joins the translated sentences.
func (g *GoogleTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", source)
	q.Set("tl", target)
	q.Set("dt", "t")
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("create request failed: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("request failed (%d): %s", resp.StatusCode, string(data))
	}

	return parseGoogleTranslation(data)
}

// parseGoogleTranslation reads [[["translated","original",...],...],...].
func parseGoogleTranslation(data []byte) (string, error) {
	var payload []any
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", fmt.Errorf("unmarshal response failed: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("empty translation response")
	}
	segments, ok := payload[0].([]any)
	if !ok {
		return "", fmt.Errorf("unexpected translation response shape")
	}

	var sb strings.Builder
	for _, seg := range segments {
		parts, ok := seg.([]any)
		if !ok || len(parts) == 0 {
			continue
		}
		if s, ok := parts[0].(string); ok {
			sb.WriteString(s)
		}
	}

	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", fmt.Errorf("translation response contained no text")
	}
	return out, nil
}
