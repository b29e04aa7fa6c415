package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/luooka/casebot/internal/domain"
	"github.com/luooka/casebot/internal/opening"
	"github.com/luooka/casebot/internal/pricing"
	"github.com/luooka/casebot/internal/quota"
)

// APIClient handles communication with the casebot core API
type APIClient struct {
	BaseURL string
	Client  *http.Client
	APIKey  string
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
		APIKey: apiKey,
	}
}

// apiEnvelope is the standard response wrapper of the core API
type apiEnvelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// doRequest performs an HTTP request with retry logic
func (c *APIClient) doRequest(method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	var err error

	if body != nil {
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	reqURL := fmt.Sprintf("%s%s", c.BaseURL, path)

	maxRetries := 3
	retryDelay := 500 * time.Millisecond

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter
			jitter := time.Duration(time.Now().UnixNano()%100) * time.Millisecond
			delay := retryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			time.Sleep(delay)
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
		}

		req, err := http.NewRequest(method, reqURL, bytes.NewBuffer(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		// Success or non-retryable error
		if resp.StatusCode < 500 {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// decodeEnvelope reads the standard response wrapper, turning non-2xx
// statuses into errors carrying the server's message.
func decodeEnvelope(resp *http.Response) (*apiEnvelope, error) {
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var env apiEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := env.Error
		if msg == "" {
			msg = env.Message
		}
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("API error: %s", msg)
	}

	return &env, nil
}

// OpenCase opens a container and returns the result plus any advisory
// message (quota exhausted, clamped grant).
func (c *APIClient) OpenCase(groupID, userID, container string, count int) (*opening.Response, string, error) {
	req := map[string]interface{}{
		"group_id":  groupID,
		"user_id":   userID,
		"container": container,
		"count":     count,
	}

	resp, err := c.doRequest(http.MethodPost, "/api/v1/case/open", req)
	if err != nil {
		return nil, "", err
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		return nil, "", err
	}

	var result opening.Response
	if err := json.Unmarshal(env.Data, &result); err != nil {
		return nil, "", fmt.Errorf("failed to decode open result: %w", err)
	}
	return &result, env.Message, nil
}

// InventoryView mirrors the API's inventory payload.
type InventoryView struct {
	Stats *domain.InventoryStats `json:"stats"`
	Quota quota.Result           `json:"quota"`
}

// GetInventory fetches a user's holdings and quota state.
func (c *APIClient) GetInventory(groupID, userID string) (*InventoryView, error) {
	path := fmt.Sprintf("/api/v1/inventory?group_id=%s&user_id=%s",
		url.QueryEscape(groupID), url.QueryEscape(userID))

	resp, err := c.doRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		return nil, err
	}

	var view InventoryView
	if err := json.Unmarshal(env.Data, &view); err != nil {
		return nil, fmt.Errorf("failed to decode inventory: %w", err)
	}
	return &view, nil
}

// PurgeInventory clears a user's holdings.
func (c *APIClient) PurgeInventory(groupID, userID string) error {
	req := map[string]string{"group_id": groupID, "user_id": userID}

	resp, err := c.doRequest(http.MethodPost, "/api/v1/inventory/purge", req)
	if err != nil {
		return err
	}

	_, err = decodeEnvelope(resp)
	return err
}

// ListContainers returns the known container names grouped by type.
func (c *APIClient) ListContainers() (map[string][]string, error) {
	resp, err := c.doRequest(http.MethodGet, "/api/v1/case/list", nil)
	if err != nil {
		return nil, err
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		return nil, err
	}

	var grouped map[string][]string
	if err := json.Unmarshal(env.Data, &grouped); err != nil {
		return nil, fmt.Errorf("failed to decode container list: %w", err)
	}
	return grouped, nil
}

// GetPrice looks up market prices for an item by name.
func (c *APIClient) GetPrice(name string) (*pricing.Quote, error) {
	path := "/api/v1/prices?name=" + url.QueryEscape(name)

	resp, err := c.doRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		return nil, err
	}

	var quote pricing.Quote
	if err := json.Unmarshal(env.Data, &quote); err != nil {
		return nil, fmt.Errorf("failed to decode quote: %w", err)
	}
	return &quote, nil
}

// SyncCatalog triggers a full catalog refresh and returns the container
// count. The sync walks every container with a throttled request each, so
// this call uses its own long-deadline client.
func (c *APIClient) SyncCatalog() (int, error) {
	req, err := http.NewRequest(http.MethodPost, c.BaseURL+"/api/v1/admin/sync", nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	if c.APIKey != "" {
		req.Header.Set("X-API-Key", c.APIKey)
	}

	longClient := &http.Client{Timeout: 15 * time.Minute}
	resp, err := longClient.Do(req)
	if err != nil {
		return 0, err
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		return 0, err
	}

	var result struct {
		Containers int `json:"containers"`
	}
	if err := json.Unmarshal(env.Data, &result); err != nil {
		return 0, fmt.Errorf("failed to decode sync result: %w", err)
	}
	return result.Containers, nil
}

// ResetQuota clears a user's daily usage.
func (c *APIClient) ResetQuota(groupID, userID string) error {
	req := map[string]string{"group_id": groupID, "user_id": userID}

	resp, err := c.doRequest(http.MethodPost, "/api/v1/admin/quota/reset", req)
	if err != nil {
		return err
	}

	_, err = decodeEnvelope(resp)
	return err
}
