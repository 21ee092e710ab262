package normalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testFormat string

const (
	testFormatJSON testFormat = "json"
	testFormatYAML testFormat = "yaml"
)

func TestNormalizer_Basic(t *testing.T) {
	n := NewNormalizer("format", map[string]testFormat{
		"json": testFormatJSON,
		"yaml": testFormatYAML,
		"yml":  testFormatYAML,
	}, testFormatJSON)

	tests := []struct {
		name     string
		input    string
		expected testFormat
	}{
		{"exact match", "yaml", testFormatYAML},
		{"case insensitive", "JSON", testFormatJSON},
		{"alias with spaces", "  YML ", testFormatYAML},
		{"invalid falls back", "toml", testFormatJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, n.Normalize(tt.input))
		})
	}
}

func TestNormalizer_WithError(t *testing.T) {
	n := NewNormalizer("format", map[string]testFormat{"json": testFormatJSON, "yaml": testFormatYAML}, testFormatJSON)

	got, err := n.NormalizeWithError("YAML")
	require.NoError(t, err)
	assert.Equal(t, testFormatYAML, got)

	_, err = n.NormalizeWithError("toml")
	require.Error(t, err)
	assert.Equal(t, `invalid format "toml", valid options: json, yaml`, err.Error())
}

func TestExact(t *testing.T) {
	icons := Exact("icon", "x", "github")

	assert.True(t, icons.Has("github"))
	assert.False(t, icons.Has("GitHub"))
	assert.False(t, icons.Has(" x "))
	assert.False(t, icons.Has("mastodon"))
	assert.Equal(t, []string{"github", "x"}, icons.ValidKeys())

	_, err := icons.NormalizeWithError("GitHub")
	require.Error(t, err)
	assert.Equal(t, `invalid icon "GitHub", valid options: github, x`, err.Error())

	keys := icons.ValidKeys()
	keys[0] = "mutated"
	assert.Equal(t, "github", icons.ValidKeys()[0])
}
