package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "session.json"))
}

func TestStore_LoadMissing(t *testing.T) {
	store := newTestStore(t)

	sess, err := store.Load()

	assert.NoError(t, err)
	assert.Nil(t, sess)
}

func TestStore_SaveLoadRoundtrip(t *testing.T) {
	store := newTestStore(t)

	saved := &Session{
		Token:    "abc.def.ghi",
		UserID:   "u-1",
		Username: "vin",
		Email:    "vin@example.com",
		SavedAt:  time.Now().Truncate(time.Second),
	}
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, saved.Token, loaded.Token)
	assert.Equal(t, saved.UserID, loaded.UserID)
	assert.Equal(t, saved.Username, loaded.Username)
}

func TestStore_Clear(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(&Session{Token: "t"}))
	require.NoError(t, store.Clear())

	sess, err := store.Load()
	assert.NoError(t, err)
	assert.Nil(t, sess)
}

func TestStore_ClearMissingIsNoError(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.Clear())
}

func TestSession_IsValid(t *testing.T) {
	assert.False(t, (*Session)(nil).IsValid())
	assert.False(t, (&Session{}).IsValid())
	assert.True(t, (&Session{Token: "t"}).IsValid())
}
