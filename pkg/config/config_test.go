package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirFromEnv(t *testing.T) {
	defer resetConfigDir()
	resetConfigDir()

	dir := t.TempDir()
	t.Setenv(configDirEnv, dir)
	assert.Equal(t, dir, Dir())
	assert.Equal(t, filepath.Join(dir, DefaultConfigFileName), DefaultConfigFilePath())
}

func TestDirDefaultsToHome(t *testing.T) {
	defer resetConfigDir()
	defer resetHomeDir()
	resetConfigDir()
	resetHomeDir()

	t.Setenv(configDirEnv, "")
	assert.Equal(t, filepath.Join(GetHomeDir(), ".nexusctl"), Dir())
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, cfg.Servers)
	assert.Empty(t, cfg.Current)
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	cfg := New(filepath.Join(dir, DefaultConfigFileName))

	require.NoError(t, cfg.StoreAuth(AuthConfig{
		ServerAddress: "https://nexus.example.com/",
		Username:      "admin",
		Password:      "p:ss",
	}))
	assert.Equal(t, "https://nexus.example.com", cfg.Current)

	raw, err := os.ReadFile(cfg.Filename)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "p:ss")
	assert.Contains(t, string(raw), `"auth"`)

	fi, err := os.Stat(cfg.Filename)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), fi.Mode().Perm())

	loaded, err := Load(dir)
	require.NoError(t, err)
	ac, ok := loaded.CurrentAuthConfig()
	require.True(t, ok)
	assert.Equal(t, "admin", ac.Username)
	assert.Equal(t, "p:ss", ac.Password)
	assert.Equal(t, "https://nexus.example.com", ac.ServerAddress)

	ac, ok = loaded.GetAuthConfig("http://nexus.example.com")
	assert.True(t, ok)
	assert.Equal(t, "admin", ac.Username)

	_, ok = loaded.GetAuthConfig("https://other.example.com")
	assert.False(t, ok)
}

func TestRemoveAuthConfig(t *testing.T) {
	cfg := New(filepath.Join(t.TempDir(), DefaultConfigFileName))
	require.NoError(t, cfg.StoreAuth(AuthConfig{ServerAddress: "https://a", Username: "u", Password: "p"}))

	require.NoError(t, cfg.RemoveAuthConfig("https://a/"))
	assert.Empty(t, cfg.Servers)
	assert.Empty(t, cfg.Current)

	assert.Error(t, cfg.RemoveAuthConfig("https://a"))
}

func TestLoadFromReaderBadAuth(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader(`{"servers":{"https://a":{"auth":"not base64!"}}}`))
	assert.Error(t, err)

	cfg, err := LoadFromReader(strings.NewReader(``))
	require.NoError(t, err)
	assert.NotNil(t, cfg.Servers)
}

func TestEncodeDecodeAuth(t *testing.T) {
	encoded := encodeAuth(&AuthConfig{Username: "ken", Password: "test"})
	user, pass, err := decodeAuth(encoded)
	require.NoError(t, err)
	assert.Equal(t, "ken", user)
	assert.Equal(t, "test", pass)

	assert.Empty(t, encodeAuth(&AuthConfig{}))
}

func TestConvertToHostname(t *testing.T) {
	assert.Equal(t, "nexus.example.com:8081", ConvertToHostname("http://nexus.example.com:8081/nexus"))
	assert.Equal(t, "nexus.example.com", ConvertToHostname("nexus.example.com"))
}
