package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/splittab/splittab/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI is the remote sync contract as seen by the engine.
type ClientAPI interface {
	// Push submits a batch of receipts. The order of the batch is
	// significant: the acknowledgment may be positional.
	Push(ctx context.Context, token string, req api.PushRequest) (*api.PushResponse, error)

	// Pull fetches remote changes strictly after the watermark. A nil
	// watermark requests everything (first sync).
	Pull(ctx context.Context, token string, since *time.Time) (*api.PullResponse, error)

	// SyncGate asks the server whether background sync may run at all
	// (entitlement check, maintenance windows).
	SyncGate(ctx context.Context, token string) (*api.SyncGateResponse, error)
}

// Client is the HTTP implementation of ClientAPI.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Compile-time check that Client implements ClientAPI
var _ ClientAPI = (*Client)(nil)

// NewClient creates a new API client. The 30s timeout bounds every round
// trip; an unbounded request would hold the engine's single-flight gate
// indefinitely.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Preserve the bearer credential across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Push submits a batch of receipts to POST /sync/push.
func (c *Client) Push(ctx context.Context, token string, req api.PushRequest) (*api.PushResponse, error) {
	var resp api.PushResponse
	if err := c.doRequest(ctx, http.MethodPost, "/sync/push", token, req, &resp); err != nil {
		return nil, fmt.Errorf("push request failed: %w", err)
	}
	return &resp, nil
}

// Pull fetches remote changes from GET /sync/pull.
func (c *Client) Pull(ctx context.Context, token string, since *time.Time) (*api.PullResponse, error) {
	path := "/sync/pull"
	if since != nil {
		query := url.Values{}
		query.Set("lastSyncAt", since.UTC().Format(time.RFC3339Nano))
		path += "?" + query.Encode()
	}

	var resp api.PullResponse
	if err := c.doRequest(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, fmt.Errorf("pull request failed: %w", err)
	}
	return &resp, nil
}

// SyncGate checks GET /sync/status before a background cycle.
func (c *Client) SyncGate(ctx context.Context, token string) (*api.SyncGateResponse, error) {
	var resp api.SyncGateResponse
	if err := c.doRequest(ctx, http.MethodGet, "/sync/status", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("sync status request failed: %w", err)
	}
	return &resp, nil
}

// doRequest performs one HTTP exchange with the server.
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result interface{}) error {
	if token == "" {
		return fmt.Errorf("missing bearer credential: %w", ErrUnauthorized)
	}

	requestURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("credential rejected: %w", ErrUnauthorized)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return &ServerError{StatusCode: resp.StatusCode, Message: errResp.Message}
		}
		return &ServerError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
