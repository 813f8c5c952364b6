package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/royaltyguard/royalty-checker/internal/logger"
)

// HTTPClient defines an interface for upstream HTTP calls to enable mocking
//
//go:generate mockgen -source=http.go -destination=../mocks/http.go -package=mocks -mock_names=HTTPClient=MockHTTPClient
type HTTPClient interface {
	// GetBytes performs a GET request with the given headers and returns the raw response body
	GetBytes(ctx context.Context, url string, headers map[string]string) ([]byte, error)

	// PostJSON performs a POST request with a JSON body and returns the raw response body
	PostJSON(ctx context.Context, url string, headers map[string]string, body []byte) ([]byte, error)
}

// RealHTTPClient implements HTTPClient using the standard http package
type RealHTTPClient struct {
	client *http.Client
}

// NewHTTPClient creates a new real HTTP client
func NewHTTPClient(timeout time.Duration) HTTPClient {
	return &RealHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// newRequest builds a fresh request for every attempt so a POST body can be replayed
type newRequest func() (*http.Request, error)

// doWithRetry executes a request with exponential backoff on 429 and 5xx responses
func (c *RealHTTPClient) doWithRetry(ctx context.Context, build newRequest) ([]byte, error) {
	var respBody []byte

	operation := func() error {
		req, err := build()
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", redactURLError(err)))
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return fmt.Errorf("failed to perform request: %w", redactURLError(err))
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				logger.Warn("failed to close response body", zap.Error(err), zap.String("url", req.URL.Redacted()))
			}
		}()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
			logger.Warn("upstream unavailable, retrying with backoff",
				zap.String("host", req.URL.Host),
				zap.String("path", req.URL.Path),
				zap.Int("status", resp.StatusCode))
			return fmt.Errorf("upstream returned %d, retrying", resp.StatusCode)
		}

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			return backoff.Permanent(fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body)))
		}

		respBody, err = io.ReadAll(resp.Body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to read response body: %w", err))
		}

		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = 20 * time.Second
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("request failed after retries: %w", err)
	}

	return respBody, nil
}

// redactURLError drops the query string and user info from the URL of a transport
// error. Upstream credentials travel in the query.
func redactURLError(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	redacted := ""
	if u, parseErr := url.Parse(urlErr.URL); parseErr == nil {
		u.RawQuery = ""
		u.Fragment = ""
		u.User = nil
		redacted = u.String()
	}
	return &url.Error{Op: urlErr.Op, URL: redacted, Err: urlErr.Err}
}

// GetBytes performs a GET request and returns the raw response body
func (c *RealHTTPClient) GetBytes(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	return c.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		return req, nil
	})
}

// PostJSON performs a POST request with a JSON body and returns the raw response body
func (c *RealHTTPClient) PostJSON(ctx context.Context, url string, headers map[string]string, body []byte) ([]byte, error) {
	return c.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		return req, nil
	})
}
