package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersionedConfig_Unversioned(t *testing.T) {
	cfg, err := ParseVersionedConfig([]byte("form:\n  position: top-left\n"))
	require.NoError(t, err)
	assert.Equal(t, "top-left", cfg.Form.Position)
}

func TestParseVersionedConfig_Version1(t *testing.T) {
	data := `version: 1
form:
  autoDismiss: true
log:
  level: debug
`
	cfg, err := ParseVersionedConfig([]byte(data))
	require.NoError(t, err)
	assert.True(t, cfg.Form.AutoDismiss)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseVersionedConfig_FutureVersion(t *testing.T) {
	_, err := ParseVersionedConfig([]byte("version: 99\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newer than supported")
}

func TestParseVersionedConfig_VersionForms(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"int", "1"},
		{"float", "1.0"},
		{"quoted", `"1"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseVersionedConfig([]byte("version: " + tt.version + "\nform:\n  position: top-left\n"))
			require.NoError(t, err)
			assert.Equal(t, "top-left", cfg.Form.Position)
		})
	}

	_, err := ParseVersionedConfig([]byte(`version: "2"` + "\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newer than supported")
}

func TestParseVersionedConfig_InvalidVersion(t *testing.T) {
	for _, v := range []string{"1.5", "one", "-2.0", "[1]"} {
		t.Run(v, func(t *testing.T) {
			_, err := ParseVersionedConfig([]byte("version: " + v + "\n"))
			require.Error(t, err)
		})
	}
}

func TestParseVersionedConfig_Empty(t *testing.T) {
	cfg, err := ParseVersionedConfig([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, Config{}, *cfg)
}

func TestParseVersionedConfig_Malformed(t *testing.T) {
	_, err := ParseVersionedConfig([]byte("form: [unterminated"))
	require.Error(t, err)
}

func TestApplyMigrations(t *testing.T) {
	data, err := ApplyMigrations(map[string]any{}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, data["version"])

	_, err = ApplyMigrations(map[string]any{}, -1)
	require.Error(t, err)
}

func TestMarshalVersionedConfig(t *testing.T) {
	data, err := MarshalVersionedConfig(DefaultConfig())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "version: 1")
	assert.Contains(t, out, "position: bottom-right")

	parsed, err := ParseVersionedConfig(data)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), parsed)
}
