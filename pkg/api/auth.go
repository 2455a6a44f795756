package api

import (
	"github.com/VinothPrinzz/socialgen-cli/pkg/logger"
)

// Login authenticates with email/password and returns the bearer token
func (c *Client) Login(email, password string) (*LoginResponse, error) {
	logger.Debug("Logging in", "email", email)

	var response LoginResponse
	resp, err := c.http.R().
		SetBody(LoginRequest{Email: email, Password: password}).
		SetResult(&response).
		Post("/api/v1/signin")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}

// Signup registers a new account and returns the bearer token
func (c *Client) Signup(username, email, password string) (*LoginResponse, error) {
	logger.Debug("Signing up", "email", email)

	var response LoginResponse
	resp, err := c.http.R().
		SetBody(SignupRequest{Username: username, Email: email, Password: password}).
		SetResult(&response).
		Post("/api/v1/signup")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}

// CurrentUser fetches the authenticated user's profile
func (c *Client) CurrentUser() (*User, error) {
	return getJSON[User](c, "/api/v1/user")
}
