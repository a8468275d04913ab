package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/skymentor/skymentor-client/pkg/errors"
	"github.com/skymentor/skymentor-client/pkg/httpclient"
	"github.com/skymentor/skymentor-client/pkg/logger"
	"github.com/skymentor/skymentor-client/pkg/metrics"
	"go.uber.org/zap"
)

const serviceName = "skymentor_api"

// Client issues JSON requests against the backend REST API. Every call is
// a single attempt: no retry, no backoff, no client-imposed timeout. The
// caller's context governs cancellation.
type Client struct {
	baseURL  string
	http     httpclient.Client
	validate *validator.Validate
}

// NewClient creates a backend API client for the given origin
func NewClient(baseURL string, hc httpclient.Client) *Client {
	if hc == nil {
		hc = httpclient.NewStandardClient()
	}
	return &Client{
		baseURL:  baseURL,
		http:     hc,
		validate: validator.New(),
	}
}

// BaseURL returns the configured backend origin
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do performs one request against {baseURL}{endpoint} and decodes the JSON
// response into out. Decoded responses are schema-checked so a malformed
// backend payload fails here instead of leaking zero values into views.
func (c *Client) do(ctx context.Context, operation, method, endpoint string, body, out any) error {
	start := time.Now()

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body for %s: %w", endpoint, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(operation, "error", start, endpoint, err)
		return fmt.Errorf("request to %s failed: %w", endpoint, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The error body is not part of the contract; drain and discard it
		_, _ = io.Copy(io.Discard, resp.Body) //nolint:errcheck
		apiErr := errors.NewAPIError(resp.StatusCode, http.StatusText(resp.StatusCode), endpoint)
		c.observe(operation, "error", start, endpoint, apiErr)
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body) //nolint:errcheck
		c.observe(operation, "success", start, endpoint, nil)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(operation, "error", start, endpoint, err)
		return fmt.Errorf("reading response from %s: %w", endpoint, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		decodeErr := errors.NewDecodeError(endpoint, err)
		c.observe(operation, "error", start, endpoint, decodeErr)
		return decodeErr
	}

	if err := c.validateResponse(out); err != nil {
		decodeErr := errors.NewDecodeError(endpoint, err)
		c.observe(operation, "error", start, endpoint, decodeErr)
		return decodeErr
	}

	c.observe(operation, "success", start, endpoint, nil)
	return nil
}

// validateResponse schema-checks a decoded struct response. Non-struct
// payloads (bare arrays) are skipped; their elements are checked by the
// resource clients where it matters.
func (c *Client) validateResponse(out any) error {
	err := c.validate.Struct(out)
	if err == nil {
		return nil
	}
	if _, ok := err.(*validator.InvalidValidationError); ok {
		return nil
	}
	return err
}

func (c *Client) observe(operation, status string, start time.Time, endpoint string, err error) {
	duration := metrics.MeasureDuration(start)
	metrics.BackendRequestDuration.WithLabelValues(operation, status).Observe(duration)
	metrics.BackendRequestTotal.WithLabelValues(operation, status).Inc()

	fields := []zap.Field{zap.String("endpoint", endpoint)}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	logger.LogAPICall(serviceName, operation, status, duration, fields...)
}
