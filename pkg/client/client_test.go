package client

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VinothPrinzz/socialgen-cli/pkg/config"
	"github.com/VinothPrinzz/socialgen-cli/pkg/session"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.Store, string) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	require.NoError(t, config.Init(filepath.Join(dir, "config.toml")))
	config.SetString("api.base_url", srv.URL)

	sessionFile := filepath.Join(dir, "session.json")
	store := session.NewStore(sessionFile)
	return New(store), store, sessionFile
}

func saveSession(t *testing.T, store *session.Store) {
	t.Helper()
	require.NoError(t, store.Save(&session.Session{
		Token:    "tok",
		UserID:   "u1",
		Username: "alice",
	}))
}

func TestUnauthorizedClearsSession(t *testing.T) {
	c, store, sessionFile := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	saveSession(t, store)
	c.SetToken("tok")

	_, err := c.R().Get("/api/v1/user")
	require.NoError(t, err)

	_, statErr := os.Stat(sessionFile)
	assert.True(t, os.IsNotExist(statErr), "session file should be removed after a 401")
}

func TestForbiddenClearsSession(t *testing.T) {
	c, store, sessionFile := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	saveSession(t, store)
	c.SetToken("tok")

	_, err := c.R().Get("/api/v1/posts/queue")
	require.NoError(t, err)

	_, statErr := os.Stat(sessionFile)
	assert.True(t, os.IsNotExist(statErr))
}

func TestUnauthorizedWithoutTokenKeepsSession(t *testing.T) {
	// A 401 from an unauthenticated endpoint (e.g. bad login) must not
	// touch a session saved on disk.
	c, store, sessionFile := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	saveSession(t, store)

	_, err := c.R().Post("/api/v1/signin")
	require.NoError(t, err)

	_, statErr := os.Stat(sessionFile)
	assert.NoError(t, statErr, "session file should survive a 401 without Authorization")
}

func TestSuccessKeepsSession(t *testing.T) {
	c, store, sessionFile := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))

	saveSession(t, store)
	c.SetToken("tok")

	_, err := c.R().Get("/api/v1/user")
	require.NoError(t, err)

	_, statErr := os.Stat(sessionFile)
	assert.NoError(t, statErr)
}

func TestSetAndClearToken(t *testing.T) {
	var gotAuth string
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))

	c.SetToken("abc")
	_, err := c.R().Get("/")
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", gotAuth)

	c.ClearToken()
	_, err = c.R().Get("/")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}
