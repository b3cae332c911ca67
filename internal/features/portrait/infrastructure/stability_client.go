package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"travel-mate/backend/internal/config"
	"travel-mate/backend/internal/features/portrait/domain"
)

// Fixed generation parameters.
const (
	OutputFormatJPEG  = "jpeg"
	AspectRatioSquare = "1:1"
)

// GenerationRequest is one text-to-image call.
type GenerationRequest struct {
	Prompt       string
	Model        string
	OutputFormat string
	AspectRatio  string
	APIKey       string
}

// ImageGenerator defines the interface for a text-to-image provider.
type ImageGenerator interface {
	// Generate returns the base64 image payload.
	// Provider rejections are returned as *domain.UpstreamError.
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}

// StabilityClient talks to the Stability AI stable-image SD3 endpoint.
type StabilityClient struct {
	url        string
	httpClient *http.Client
}

// NewStabilityClient creates a client for the given endpoint; an empty url uses the public API.
func NewStabilityClient(url string, httpClient *http.Client) *StabilityClient {
	if url == "" {
		url = config.DefaultStabilityURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &StabilityClient{url: url, httpClient: httpClient}
}

type stabilityResponse struct {
	Image        *string `json:"image"`
	FinishReason string  `json:"finish_reason,omitempty"`
	Seed         int64   `json:"seed,omitempty"`
}

// Generate posts the prompt as multipart form data and returns the base64 image.
func (c *StabilityClient) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	body, contentType, err := encodeGenerationForm(req)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, body)
	if err != nil {
		return "", fmt.Errorf("create request failed: %w", err)
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Authorization", "Bearer "+req.APIKey)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		slog.ErrorContext(ctx, "Stability AI API error", "status", resp.StatusCode, "body", string(data))
		return "", domain.NewUpstreamStatusError(resp.StatusCode, extractErrorDetail(data))
	}

	var out stabilityResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("unmarshal response failed: %w", err)
	}
	if out.Image == nil {
		return "", domain.NewMissingImageError()
	}
	return *out.Image, nil
}

func encodeGenerationForm(req GenerationRequest) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fields := [][2]string{
		{"prompt", req.Prompt},
		{"model", req.Model},
		{"output_format", req.OutputFormat},
		{"aspect_ratio", req.AspectRatio},
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", fmt.Errorf("write form field %s failed: %w", f[0], err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer failed: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
