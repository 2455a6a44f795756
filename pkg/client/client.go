package client

import (
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/VinothPrinzz/socialgen-cli/pkg/config"
	"github.com/VinothPrinzz/socialgen-cli/pkg/logger"
	"github.com/VinothPrinzz/socialgen-cli/pkg/session"
)

// Client is the single HTTP client every request goes through.
// It owns the base URL, the Authorization header, and the one place
// where a 401/403 response clears the stored session.
type Client struct {
	http  *resty.Client
	store *session.Store
}

// New creates a client against the configured backend origin
func New(store *session.Store) *Client {
	httpClient := resty.New()

	baseURL := config.GetString("api.base_url")
	timeout := time.Duration(config.GetInt("api.timeout")) * time.Second

	httpClient.SetBaseURL(baseURL)
	httpClient.SetTimeout(timeout)
	httpClient.SetHeader("User-Agent", "Socialgen-CLI/0.1.0")

	httpClient.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logger.Debug("HTTP Request", "method", req.Method, "url", req.URL)
		return nil
	})

	// Expired or revoked auth surfaces here from any call. The session is
	// cleared once, in this interceptor, instead of per command.
	httpClient.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logger.Debug("HTTP Response", "status", resp.StatusCode())

		status := resp.StatusCode()
		if (status == 401 || status == 403) && resp.Request.Header.Get("Authorization") != "" {
			logger.Warn("Authorization rejected, clearing session", "status", status)
			if store != nil {
				_ = store.Clear()
			}
		}
		return nil
	})

	return &Client{http: httpClient, store: store}
}

// R returns a new request
func (c *Client) R() *resty.Request {
	return c.http.R()
}

// SetToken sets the authorization token for subsequent requests
func (c *Client) SetToken(token string) {
	c.http.SetHeader("Authorization", "Bearer "+token)
}

// ClearToken removes the authorization header
func (c *Client) ClearToken() {
	c.http.Header.Del("Authorization")
}

// BaseURL returns the configured backend origin
func (c *Client) BaseURL() string {
	return c.http.BaseURL
}
