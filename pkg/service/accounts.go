package service

import (
	"fmt"

	"github.com/VinothPrinzz/socialgen-cli/pkg/formatter"
	"github.com/VinothPrinzz/socialgen-cli/pkg/prompter"
)

type AccountsService struct {
	deps *Deps
}

// NewAccountsService creates a new social accounts service
func NewAccountsService(deps *Deps) *AccountsService {
	return &AccountsService{deps: deps}
}

// List shows the linked third-party accounts
func (s *AccountsService) List() error {
	if _, err := s.deps.requireSession(); err != nil {
		return err
	}

	accounts, err := s.deps.API.SocialAccounts()
	if err != nil {
		return authFailed(err)
	}

	if len(accounts) == 0 {
		formatter.PrintInfo("No connected accounts")
		return nil
	}

	rows := make([][]string, 0, len(accounts))
	for _, a := range accounts {
		added := ""
		if a.DateAdded != nil {
			added = a.DateAdded.Format("January 2, 2006")
		}
		rows = append(rows, []string{a.Platform, a.Username, added})
	}
	formatter.PrintTable([]string{"Platform", "Username", "Connected"}, rows)

	return nil
}

// Check reports whether the given platform is connected
func (s *AccountsService) Check(platform string) error {
	if _, err := s.deps.requireSession(); err != nil {
		return err
	}

	check, err := s.deps.API.CheckSocialAccount(platform)
	if err != nil {
		return authFailed(err)
	}

	if check.Connected {
		formatter.PrintSuccess("✓ %s is connected (%s)", platform, check.Username)
	} else {
		formatter.PrintWarning("%s is not connected", platform)
	}

	return nil
}

// Disconnect removes a platform connection after confirmation
func (s *AccountsService) Disconnect(platform string) error {
	if _, err := s.deps.requireSession(); err != nil {
		return err
	}

	confirm, err := prompter.PromptConfirm(fmt.Sprintf("Disconnect %s?", platform))
	if err != nil {
		return err
	}
	if !confirm {
		return nil
	}

	if err := s.deps.API.DisconnectSocialAccount(platform); err != nil {
		formatter.PrintError("Failed to disconnect %s: %v", platform, err)
		return authFailed(err)
	}

	formatter.PrintSuccess("✓ %s disconnected", platform)
	return nil
}
