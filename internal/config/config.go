package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	defaultTimeoutSeconds       = 10
	defaultUploadTimeoutSeconds = 60
	defaultMaxFileSizeBytes     = 50 * 1024 * 1024
)

// Config is the root configuration for the docchat client.
type Config struct {
	API      APIConfig    `yaml:"api"`
	Upload   UploadConfig `yaml:"upload"`
	LogLevel string       `yaml:"logLevel"`
}

type APIConfig struct {
	BaseURL        string `yaml:"baseUrl"`
	TokenFile      string `yaml:"tokenFile,omitempty"`
	TimeoutSeconds int    `yaml:"timeoutSeconds,omitempty"`
}

type UploadConfig struct {
	MaxSizeBytes   int64 `yaml:"maxSizeBytes,omitempty"`
	TimeoutSeconds int   `yaml:"timeoutSeconds,omitempty"`
}

// Load reads the YAML config at path, fills defaults, and applies environment
// overrides (DOCCHAT_API_URL, DOCCHAT_TOKEN_FILE, DOCCHAT_LOG_LEVEL,
// DOCCHAT_MAX_FILE_SIZE). An empty path skips the file and builds the config
// from defaults and environment alone.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %q: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %q: %w", path, err)
		}
	}
	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DOCCHAT_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("DOCCHAT_TOKEN_FILE"); v != "" {
		c.API.TokenFile = v
	}
	if v := os.Getenv("DOCCHAT_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("DOCCHAT_MAX_FILE_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			c.Upload.MaxSizeBytes = n
		}
	}
}

func (c *Config) applyDefaults() {
	if c.API.TimeoutSeconds <= 0 {
		c.API.TimeoutSeconds = defaultTimeoutSeconds
	}
	if c.Upload.TimeoutSeconds <= 0 {
		c.Upload.TimeoutSeconds = defaultUploadTimeoutSeconds
	}
	if c.Upload.MaxSizeBytes <= 0 {
		c.Upload.MaxSizeBytes = defaultMaxFileSizeBytes
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
