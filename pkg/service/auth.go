package service

import (
	"fmt"
	"time"

	"github.com/VinothPrinzz/socialgen-cli/pkg/auth"
	"github.com/VinothPrinzz/socialgen-cli/pkg/formatter"
	"github.com/VinothPrinzz/socialgen-cli/pkg/logger"
	"github.com/VinothPrinzz/socialgen-cli/pkg/prompter"
	"github.com/VinothPrinzz/socialgen-cli/pkg/session"
)

type AuthService struct {
	deps *Deps
}

// NewAuthService creates a new auth service
func NewAuthService(deps *Deps) *AuthService {
	return &AuthService{deps: deps}
}

// Login handles user login
func (s *AuthService) Login() error {
	sess, err := s.deps.Store.Load()
	if err != nil {
		logger.Error("Failed to load session", "error", err)
		return err
	}

	if sess.IsValid() {
		formatter.PrintWarning("Already logged in as %s", sess.Username)
		confirm, err := prompter.PromptConfirm("Continue with new login?")
		if err != nil {
			return err
		}
		if !confirm {
			return nil
		}
	}

	email, err := prompter.PromptString("Email: ")
	if err != nil {
		return err
	}
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	password, err := prompter.PromptPassword("Password: ")
	if err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	formatter.PrintInfo("Authenticating...")
	loginResp, err := s.deps.API.Login(email, password)
	if err != nil {
		formatter.PrintError("Login failed: %v", err)
		return err
	}

	s.deps.HTTP.SetToken(loginResp.Token)

	// The generate route is keyed by user id; decode it once here instead
	// of introspecting the token on every submission.
	userID, err := auth.UserIDFromToken(loginResp.Token)
	if err != nil {
		logger.Warn("Token carries no readable user id", "error", err)
	}

	profile, err := s.deps.API.CurrentUser()
	if err != nil {
		formatter.PrintError("Failed to fetch profile: %v", err)
		return err
	}

	sess = &session.Session{
		Token:    loginResp.Token,
		UserID:   userID,
		Username: profile.Username,
		Email:    profile.Email,
		SavedAt:  time.Now(),
	}

	if err := s.deps.Store.Save(sess); err != nil {
		formatter.PrintError("Failed to save session: %v", err)
		return err
	}

	formatter.PrintSuccess("✓ Login successful!")
	formatter.PrintInfo("Logged in as %s", formatter.Bold.Sprint(profile.Username))
	fmt.Printf("\n")
	formatter.PrintKeyValue(map[string]interface{}{
		"Username": profile.Username,
		"Email":    profile.Email,
	})

	return nil
}

// Signup registers a new account and logs it in
func (s *AuthService) Signup() error {
	username, err := prompter.PromptString("Username: ")
	if err != nil {
		return err
	}
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	email, err := prompter.PromptString("Email: ")
	if err != nil {
		return err
	}
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	password, err := prompter.PromptPassword("Password: ")
	if err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	formatter.PrintInfo("Creating account...")
	resp, err := s.deps.API.Signup(username, email, password)
	if err != nil {
		formatter.PrintError("Signup failed: %v", err)
		return err
	}

	s.deps.HTTP.SetToken(resp.Token)

	userID, err := auth.UserIDFromToken(resp.Token)
	if err != nil {
		logger.Warn("Token carries no readable user id", "error", err)
	}

	sess := &session.Session{
		Token:    resp.Token,
		UserID:   userID,
		Username: username,
		Email:    email,
		SavedAt:  time.Now(),
	}

	if err := s.deps.Store.Save(sess); err != nil {
		formatter.PrintError("Failed to save session: %v", err)
		return err
	}

	formatter.PrintSuccess("✓ Account created, logged in as %s", username)
	return nil
}

// Logout handles user logout
func (s *AuthService) Logout() error {
	sess, err := s.deps.Store.Load()
	if err != nil {
		logger.Error("Failed to load session", "error", err)
		return err
	}

	if sess == nil {
		formatter.PrintWarning("Not logged in")
		return nil
	}

	confirm, err := prompter.PromptConfirm("Logout?")
	if err != nil {
		return err
	}
	if !confirm {
		return nil
	}

	if err := s.deps.Store.Clear(); err != nil {
		formatter.PrintError("Failed to delete session: %v", err)
		return err
	}

	s.deps.HTTP.ClearToken()

	formatter.PrintSuccess("✓ Logged out successfully")
	return nil
}

// WhoAmI shows the current authenticated user
func (s *AuthService) WhoAmI() error {
	if _, err := s.deps.requireSession(); err != nil {
		return err
	}

	user, err := s.deps.API.CurrentUser()
	if err != nil {
		return authFailed(err)
	}

	formatter.PrintKeyValue(map[string]interface{}{
		"Username": user.Username,
		"Email":    user.Email,
	})

	return nil
}
