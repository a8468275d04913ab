package httpclient

import (
	"net/http"
)

// Client defines an interface for making HTTP requests
// This allows for easy mocking and testing of HTTP calls
type Client interface {
	Do(req *http.Request) (*http.Response, error)
}

// StandardHTTPClient wraps the standard http.Client
type StandardHTTPClient struct {
	client *http.Client
}

// NewStandardClient creates a new HTTP client. No client-level timeout is
// set: cancellation is governed by the request context, and each backend
// call is a single attempt.
func NewStandardClient() Client {
	return &StandardHTTPClient{
		client: &http.Client{},
	}
}

// Do executes an HTTP request
func (c *StandardHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return c.client.Do(req)
}
