package api

import (
	"fmt"

	"github.com/VinothPrinzz/socialgen-cli/pkg/logger"
)

// SocialAccounts lists the user's linked third-party accounts
func (c *Client) SocialAccounts() ([]SocialAccount, error) {
	accounts, err := getJSON[[]SocialAccount](c, "/api/v1/social-accounts")
	if err != nil {
		return nil, err
	}
	return *accounts, nil
}

// CheckSocialAccount reports whether a platform is connected
func (c *Client) CheckSocialAccount(platform string) (*SocialAccountCheck, error) {
	return getJSON[SocialAccountCheck](c, fmt.Sprintf("/api/v1/social-accounts/check/%s", platform))
}

// DisconnectSocialAccount removes a platform connection
func (c *Client) DisconnectSocialAccount(platform string) error {
	logger.Debug("Disconnecting social account", "platform", platform)

	resp, err := c.http.R().
		Delete(fmt.Sprintf("/api/v1/social-accounts/%s", platform))

	return CheckResponse(resp, err)
}
