package revalidate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client notifies a rendering frontend that cached views keyed by the
// given tags are stale. The endpoint is expected to accept a JSON POST
// with a tag list, as the storefront's revalidation webhook does.
type Client struct {
	endpoint string
	secret   string
	http     *http.Client
}

// NewClient creates a revalidation webhook client.
func NewClient(endpoint, secret string) *Client {
	return &Client{
		endpoint: endpoint,
		secret:   secret,
		http: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

type invalidateRequest struct {
	Tags []string `json:"tags"`
}

// Invalidate posts the stale tags to the webhook.
func (c *Client) Invalidate(ctx context.Context, keys ...string) error {
	body, err := json.Marshal(invalidateRequest{Tags: keys})
	if err != nil {
		return fmt.Errorf("failed to encode revalidation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build revalidation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.secret != "" {
		req.Header.Set("Authorization", "Bearer "+c.secret)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("revalidation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("revalidation endpoint returned status %d", resp.StatusCode)
	}
	return nil
}

// Noop is used when no revalidation endpoint is configured.
type Noop struct{}

// NewNoop creates a no-op revalidator.
func NewNoop() *Noop { return &Noop{} }

// Invalidate does nothing.
func (*Noop) Invalidate(ctx context.Context, keys ...string) error { return nil }
