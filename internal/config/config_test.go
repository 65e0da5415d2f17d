package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", cfg.APIURL)
	assert.Equal(t, BackendFile, cfg.Session.Backend)
	assert.Equal(t, Duration(30*time.Second), cfg.RequestTimeout)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.yaml")
	content := `
api_url: https://store.example.com
request_timeout: 10s
session:
  backend: redis
  redis_addr: localhost:6379
  device_id: kiosk-7
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://store.example.com", cfg.APIURL)
	assert.Equal(t, Duration(10*time.Second), cfg.RequestTimeout)
	assert.Equal(t, BackendRedis, cfg.Session.Backend)
	assert.Equal(t, "kiosk-7", cfg.Session.DeviceID)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: https://file.example.com\n"), 0o600))

	t.Setenv("API_URL", "https://env.example.com")
	t.Setenv("REQUEST_TIMEOUT", "5s")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.APIURL)
	assert.Equal(t, Duration(5*time.Second), cfg.RequestTimeout)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", cfg.APIURL)
}

func TestLoad_UnknownBackend(t *testing.T) {
	t.Setenv("SESSION_BACKEND", "carrier-pigeon")

	_, err := Load("")
	assert.Error(t, err)
}
