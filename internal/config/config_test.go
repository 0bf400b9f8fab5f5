package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"DOCCHAT_API_URL", "DOCCHAT_TOKEN_FILE", "DOCCHAT_LOG_LEVEL", "DOCCHAT_MAX_FILE_SIZE"} {
		t.Setenv(k, "")
	}
}

func TestLoad_FromFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
api:
  baseUrl: https://api.example.com
  tokenFile: /home/me/.docchat/token
  timeoutSeconds: 5
upload:
  maxSizeBytes: 1024
  timeoutSeconds: 30
logLevel: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "https://api.example.com", cfg.API.BaseURL)
	require.Equal(t, "/home/me/.docchat/token", cfg.API.TokenFile)
	require.Equal(t, 5, cfg.API.TimeoutSeconds)
	require.Equal(t, int64(1024), cfg.Upload.MaxSizeBytes)
	require.Equal(t, 30, cfg.Upload.TimeoutSeconds)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, defaultTimeoutSeconds, cfg.API.TimeoutSeconds)
	require.Equal(t, defaultUploadTimeoutSeconds, cfg.Upload.TimeoutSeconds)
	require.Equal(t, int64(defaultMaxFileSizeBytes), cfg.Upload.MaxSizeBytes)
	require.Equal(t, "info", cfg.LogLevel)
	require.Empty(t, cfg.API.BaseURL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
api:
  baseUrl: https://file.example.com
logLevel: info
`)
	t.Setenv("DOCCHAT_API_URL", "https://env.example.com")
	t.Setenv("DOCCHAT_LOG_LEVEL", "warn")
	t.Setenv("DOCCHAT_MAX_FILE_SIZE", "2048")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "https://env.example.com", cfg.API.BaseURL)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, int64(2048), cfg.Upload.MaxSizeBytes)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	_, err := Load(writeConfig(t, "api: [broken"))
	require.Error(t, err)
}
