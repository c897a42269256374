package uniprot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"upfetch/pkg/config"
	errs "upfetch/pkg/errors"
	"upfetch/pkg/logger"
	"upfetch/pkg/retry"
)

// Client is a UniProt REST API client
type Client struct {
	httpClient *http.Client
	headers    map[string]string
	retryCfg   config.RetryConfig
	logger     logger.Logger
}

// NewClient creates a new UniProt API client
func NewClient(cfg *config.UniProtConfig, retryCfg config.RetryConfig, log logger.Logger) *Client {
	if log == nil {
		log = logger.GetLogger()
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout.Std(),
		},
		headers: map[string]string{
			"User-Agent": cfg.UserAgent,
			"Accept":     "text/plain; format=tsv",
		},
		retryCfg: retryCfg,
		logger:   log,
	}
}

// SetHeader sets a custom header for the client
func (c *Client) SetHeader(key, value string) {
	c.headers[key] = value
}

// FetchPage fetches a single result page, retrying transient failures.
// 5xx responses and network errors are retried with exponential backoff
// up to the configured number of attempts; 4xx responses fail immediately.
func (c *Client) FetchPage(ctx context.Context, pageURL string) (*Page, error) {
	cfg := &retry.Config{
		MaxAttempts: c.retryCfg.MaxAttempts,
		Backoff: &retry.ExponentialBackoff{
			BaseDelay:    c.retryCfg.InitialDelay.Std(),
			MaxDelay:     c.retryCfg.MaxDelay.Std(),
			Multiplier:   c.retryCfg.Multiplier,
			JitterFactor: c.retryCfg.JitterFactor,
		},
		RetryIf: retry.DefaultRetryIf,
		Context: ctx,
		Logger:  c.logger,
	}

	return retry.DoWithResult(func() (*Page, error) {
		return c.fetchOnce(ctx, pageURL)
	}, cfg)
}

// fetchOnce performs a single GET without retry
func (c *Client) fetchOnce(ctx context.Context, pageURL string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, &errs.Error{
			Type:    errs.ErrorTypeUnknown,
			Message: fmt.Sprintf("failed to create request: %v", err),
			Code:    0,
		}
	}

	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	start := time.Now()
	c.logger.DebugWithFields("sending HTTP request", map[string]interface{}{
		"method": req.Method,
		"url":    req.URL.String(),
	})

	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.ErrorWithFields("HTTP request failed", map[string]interface{}{
			"url":      req.URL.String(),
			"error":    err.Error(),
			"duration": duration,
		})
		return nil, &errs.Error{
			Type:    errs.ErrorTypeNetwork,
			Message: fmt.Sprintf("network error: %v", err),
			Code:    0,
		}
	}
	defer resp.Body.Close()

	c.logger.DebugWithFields("HTTP request completed", map[string]interface{}{
		"url":      req.URL.String(),
		"status":   resp.StatusCode,
		"duration": duration,
	})

	if err := c.checkResponseStatus(resp); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &errs.Error{
			Type:    errs.ErrorTypeNetwork,
			Message: fmt.Sprintf("failed to read response body: %v", err),
			Code:    resp.StatusCode,
		}
	}

	total := resp.Header.Get(TotalResultsHeader)
	if total == "" {
		total = "unknown"
	}

	return &Page{
		Body:         string(body),
		TotalResults: total,
		NextURL:      NextPageURL(resp.Header.Get(LinkHeader)),
	}, nil
}

// checkResponseStatus classifies the HTTP response status into typed errors
func (c *Client) checkResponseStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		c.logger.WarnWithFields("resource not found", map[string]interface{}{
			"status": resp.StatusCode,
			"url":    resp.Request.URL.String(),
		})
		return &errs.Error{
			Type:    errs.ErrorTypeNotFound,
			Message: "resource not found",
			Code:    resp.StatusCode,
		}
	case resp.StatusCode == http.StatusTooManyRequests:
		c.logger.WarnWithFields("rate limit exceeded", map[string]interface{}{
			"status": resp.StatusCode,
			"url":    resp.Request.URL.String(),
		})
		return &errs.Error{
			Type:    errs.ErrorTypeRateLimit,
			Message: "rate limit exceeded",
			Code:    resp.StatusCode,
		}
	case resp.StatusCode >= 500:
		c.logger.ErrorWithFields("server error", map[string]interface{}{
			"status": resp.StatusCode,
			"url":    resp.Request.URL.String(),
		})
		return &errs.Error{
			Type:    errs.ErrorTypeServerError,
			Message: fmt.Sprintf("server returned status %d", resp.StatusCode),
			Code:    resp.StatusCode,
		}
	case resp.StatusCode >= 400:
		c.logger.ErrorWithFields("client error", map[string]interface{}{
			"status": resp.StatusCode,
			"url":    resp.Request.URL.String(),
		})
		return &errs.Error{
			Type:    errs.ErrorTypeClient,
			Message: fmt.Sprintf("request rejected with status %d", resp.StatusCode),
			Code:    resp.StatusCode,
		}
	default:
		return &errs.Error{
			Type:    errs.ErrorTypeUnknown,
			Message: fmt.Sprintf("unexpected status code: %d", resp.StatusCode),
			Code:    resp.StatusCode,
		}
	}
}
