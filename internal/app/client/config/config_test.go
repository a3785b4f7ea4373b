package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONFIG_DIR", dir)
	t.Setenv("SERVER_ADDRESS", "api.housing.local:9000")
	t.Setenv("ENABLE_TLS", "true")
	t.Setenv("API_PREFIX", "/v2/")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "5")
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "/v2", cfg.APIPrefix)
	assert.Equal(t, filepath.Join(dir, "session.db"), cfg.SessionPath)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "https://api.housing.local:9000", cfg.BaseURL())
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("CONFIG_DIR", t.TempDir())
	t.Setenv("APP_ENV", "staging")
	t.Cleanup(viper.Reset)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed on 'oneof'")
}

func TestConfig_BaseURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"plain host", Config{ServerAddress: "localhost:8000"}, "http://localhost:8000"},
		{"tls host", Config{ServerAddress: "example.com", EnableTLS: true}, "https://example.com"},
		{"explicit scheme wins", Config{ServerAddress: "http://127.0.0.1:5173/", EnableTLS: true}, "http://127.0.0.1:5173"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.BaseURL())
		})
	}
}
