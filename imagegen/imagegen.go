// Package imagegen wraps the external image-generation service as an
// opaque image-producing capability. Failures are always non-fatal: callers
// proceed with the stable placeholder reference.
package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"
)

var ErrUnavailable = errors.New("image generation unavailable")

type Generator interface {
	// Generate returns an inline data-URI image payload for a product.
	Generate(ctx context.Context, name, category, description string) (string, error)
}

// FromEnv builds the configured client, or a disabled generator when no
// endpoint is set.
func FromEnv() Generator {
	endpoint := os.Getenv("IMAGEGEN_API_URL")
	if endpoint == "" {
		return disabled{}
	}
	return &Client{
		endpoint: endpoint,
		apiKey:   os.Getenv("IMAGEGEN_API_KEY"),
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

type generateRequest struct {
	Prompt      string `json:"prompt"`
	AspectRatio string `json:"aspect_ratio"`
	MimeType    string `json:"output_mime_type"`
}

type generateResponse struct {
	ImageBase64 string `json:"image_base64"`
	Error       string `json:"error,omitempty"`
}

func (c *Client) Generate(ctx context.Context, name, category, description string) (string, error) {
	prompt := fmt.Sprintf(
		"Professional product photography of %s (%s). %s. High resolution, studio lighting, clean white background, minimalist style.",
		name, category, description,
	)
	body, err := json.Marshal(generateRequest{
		Prompt:      prompt,
		AspectRatio: "1:1",
		MimeType:    "image/jpeg",
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image generation failed: %s", resp.Status)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.ImageBase64 == "" {
		return "", ErrUnavailable
	}
	return "data:image/jpeg;base64," + out.ImageBase64, nil
}

type disabled struct{}

func (disabled) Generate(context.Context, string, string, string) (string, error) {
	return "", ErrUnavailable
}
