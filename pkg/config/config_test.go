package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Defaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(filepath.Join(dir, "config.toml")))

	assert.Equal(t, "http://localhost:3000", GetString("api.base_url"))
	assert.Equal(t, 30, GetInt("api.timeout"))
	assert.Equal(t, "text", GetString("output.format"))
	assert.Equal(t, dir, GetConfigDir())
	assert.Equal(t, filepath.Join(dir, "session.json"), GetSessionPath())
}

func TestInit_ReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[api]\nbase_url = \"https://api.example.com\"\n"), 0600))

	require.NoError(t, Init(path))

	assert.Equal(t, "https://api.example.com", GetString("api.base_url"))
	// Untouched keys keep their defaults
	assert.Equal(t, 30, GetInt("api.timeout"))
}

func TestInit_CreatesConfigDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "socialgen")
	require.NoError(t, Init(filepath.Join(dir, "config.toml")))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSetString_OverridesWithoutPersisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, Init(path))

	SetString("output.format", "json")
	assert.Equal(t, "json", GetString("output.format"))

	// The override lives in memory only
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
