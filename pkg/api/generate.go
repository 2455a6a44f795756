package api

import (
	"fmt"

	"github.com/VinothPrinzz/socialgen-cli/pkg/logger"
)

// Generate asks the backend to draft a post for the given user
func (c *Client) Generate(userID string, req GenerateRequest) (*GenerateResponse, error) {
	logger.Debug("Generating content", "user_id", userID, "platform", req.Platform)

	var response GenerateResponse
	resp, err := c.http.R().
		SetBody(req).
		SetResult(&response).
		Post(fmt.Sprintf("/api/v1/posts/generate/%s", userID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}
