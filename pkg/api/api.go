// Package api binds every backend route the dashboard consumes to a typed
// method. One request is one attempt; nothing here retries.
package api

import (
	"github.com/VinothPrinzz/socialgen-cli/pkg/client"
	"github.com/VinothPrinzz/socialgen-cli/pkg/logger"
)

// Client wraps the HTTP client with typed endpoint bindings
type Client struct {
	http *client.Client
}

// New creates an API client
func New(http *client.Client) *Client {
	return &Client{http: http}
}

// getJSON is the one fetch path every GET goes through
func getJSON[T any](c *Client, path string) (*T, error) {
	logger.Debug("GET", "path", path)

	var result T
	resp, err := c.http.R().
		SetResult(&result).
		Get(path)

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &result, nil
}
