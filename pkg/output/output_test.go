package output

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VinothPrinzz/socialgen-cli/pkg/config"
)

func TestValidateOutputFormat(t *testing.T) {
	assert.True(t, ValidateOutputFormat("json"))
	assert.True(t, ValidateOutputFormat("table"))
	assert.True(t, ValidateOutputFormat("text"))
	assert.False(t, ValidateOutputFormat("yaml"))
	assert.False(t, ValidateOutputFormat(""))
}

func TestGetOutputFormat(t *testing.T) {
	require.NoError(t, config.Init(filepath.Join(t.TempDir(), "config.toml")))

	config.SetString("output.format", "json")
	assert.Equal(t, FormatJSON, GetOutputFormat())

	config.SetString("output.format", "table")
	assert.Equal(t, FormatTable, GetOutputFormat())

	config.SetString("output.format", "text")
	assert.Equal(t, FormatText, GetOutputFormat())

	// Anything unrecognized falls back to text
	config.SetString("output.format", "bogus")
	assert.Equal(t, FormatText, GetOutputFormat())
}

func TestFormatAsJSON(t *testing.T) {
	out, err := FormatAsJSON(map[string]int{"likes": 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"likes":3}`, out)
}

func TestFormatAsJSON_Slice(t *testing.T) {
	out, err := FormatAsJSON([]string{"a", "b"})
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, out)
}
