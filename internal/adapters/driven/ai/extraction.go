// Package ai holds the client for the external AI text-extraction
// service, the only suspending collaborator in the pipeline.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/verbale-labs/verbale-core/internal/core/domain"
	"github.com/verbale-labs/verbale-core/internal/core/ports/driven"
)

// Ensure ExtractionClient implements Extractor
var _ driven.Extractor = (*ExtractionClient)(nil)

const (
	defaultAttemptTimeout = 30 * time.Second
	defaultBackoff        = 2 * time.Second
	defaultMaxAttempts    = 3
)

// ExtractionClient calls the extraction service over HTTP. Every call
// is bounded by a per-attempt timeout and a fixed retry budget with
// constant backoff; a timeout surfaces as domain.ErrExtractionTimeout
// so callers can tell it apart from a service error.
type ExtractionClient struct {
	apiKey         string
	baseURL        string
	attemptTimeout time.Duration
	backoff        time.Duration
	maxAttempts    uint64
	client         *http.Client
}

// NewExtractionClient creates an extraction client.
func NewExtractionClient(apiKey, baseURL string) (*ExtractionClient, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("extraction service URL is required")
	}

	return &ExtractionClient{
		apiKey:         apiKey,
		baseURL:        baseURL,
		attemptTimeout: defaultAttemptTimeout,
		backoff:        defaultBackoff,
		maxAttempts:    defaultMaxAttempts,
		client:         &http.Client{},
	}, nil
}

// extractionRequest is the request body for the extraction API
type extractionRequest struct {
	DocumentText string `json:"document_text"`
}

// extractionResponse is the response from the extraction API
type extractionResponse struct {
	Fields map[string]any `json:"fields"`
	Error  *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Extract sends document text and returns the raw extracted record.
func (c *ExtractionClient) Extract(ctx context.Context, documentText string) (driven.RawRecord, error) {
	var record driven.RawRecord

	backoff := retry.WithMaxRetries(c.maxAttempts-1, retry.NewConstant(c.backoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		fields, err := c.doRequest(ctx, documentText)
		if err != nil {
			// Timeouts and transport failures are worth retrying;
			// a service-side rejection is not.
			if errors.Is(err, domain.ErrExtractionTimeout) || errors.Is(err, domain.ErrServiceUnavailable) {
				return retry.RetryableError(err)
			}
			return err
		}
		record = fields
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// HealthCheck verifies the extraction service is reachable.
func (c *ExtractionClient) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: health returned status %d", domain.ErrServiceUnavailable, resp.StatusCode)
	}
	return nil
}

// Close releases resources held by the client.
func (c *ExtractionClient) Close() error {
	c.client.CloseIdleConnections()
	return nil
}

// doRequest makes a single bounded request to the extraction API.
func (c *ExtractionClient) doRequest(parent context.Context, documentText string) (map[string]any, error) {
	ctx, cancel := context.WithTimeout(parent, c.attemptTimeout)
	defer cancel()

	body, err := json.Marshal(extractionRequest{DocumentText: documentText})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/extract", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && parent.Err() == nil {
			return nil, fmt.Errorf("%w after %s", domain.ErrExtractionTimeout, c.attemptTimeout)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("%w: status %d", domain.ErrServiceUnavailable, resp.StatusCode)
	}

	var extResp extractionResponse
	if err := json.Unmarshal(respBody, &extResp); err != nil {
		return nil, fmt.Errorf("%w: unparseable response: %v", domain.ErrExtractionFailed, err)
	}

	if extResp.Error != nil {
		return nil, fmt.Errorf("%w: %s (type: %s)", domain.ErrExtractionFailed, extResp.Error.Message, extResp.Error.Type)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrExtractionFailed, resp.StatusCode)
	}

	return extResp.Fields, nil
}
