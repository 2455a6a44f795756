// Package service holds the screen-level flows: each service is one screen
// of the dashboard, orchestrating session checks, API calls, and output.
package service

import (
	"github.com/VinothPrinzz/socialgen-cli/pkg/api"
	"github.com/VinothPrinzz/socialgen-cli/pkg/client"
	"github.com/VinothPrinzz/socialgen-cli/pkg/config"
	clierrors "github.com/VinothPrinzz/socialgen-cli/pkg/errors"
	"github.com/VinothPrinzz/socialgen-cli/pkg/session"
)

// Deps is the shared context injected into every service: the session
// store, the HTTP client, and the API bindings. Constructed once per
// command run.
type Deps struct {
	Store *session.Store
	HTTP  *client.Client
	API   *api.Client
}

// NewDeps wires the session store and HTTP client from config
func NewDeps() *Deps {
	store := session.NewStore(config.GetSessionPath())
	httpc := client.New(store)
	return &Deps{
		Store: store,
		HTTP:  httpc,
		API:   api.New(httpc),
	}
}

// requireSession loads the session and attaches its token to the client.
// When no session exists the command short-circuits with a login hint
// before any network call is issued.
func (d *Deps) requireSession() (*session.Session, error) {
	sess, err := d.Store.Load()
	if err != nil {
		return nil, err
	}
	if !sess.IsValid() {
		return nil, clierrors.NotLoggedInError()
	}
	d.HTTP.SetToken(sess.Token)
	return sess, nil
}

// authFailed maps a rejected token to the session-expired error. The
// response interceptor has already cleared the session file by the time
// this runs.
func authFailed(err error) error {
	if api.IsUnauthorized(err) {
		return clierrors.SessionExpiredError()
	}
	return err
}
