package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

const envToken = "DOCCHAT_TOKEN"

// Getter is the interface that wraps GetToken. Consumers (the chat API
// client) should depend on this interface rather than the concrete *Client so
// they remain testable without a real token on disk.
type Getter interface {
	GetToken(ctx context.Context) (string, error)
}

// Client resolves the bearer token for the chat API. The DOCCHAT_TOKEN
// environment variable wins over the configured token file.
type Client struct {
	tokenPath string
}

// New creates a Client reading from the given token file path. The path may
// be empty when the token is supplied through the environment.
func New(tokenPath string) (*Client, error) {
	return &Client{tokenPath: strings.TrimSpace(tokenPath)}, nil
}

func (c *Client) GetToken(_ context.Context) (string, error) {
	if v := strings.TrimSpace(os.Getenv(envToken)); v != "" {
		return v, nil
	}
	if c.tokenPath == "" {
		return "", errors.New("tokenstore: no token source configured")
	}
	raw, err := os.ReadFile(c.tokenPath)
	if err != nil {
		return "", fmt.Errorf("tokenstore: read token file %q: %w", c.tokenPath, err)
	}
	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", fmt.Errorf("tokenstore: token file %q is empty", c.tokenPath)
	}
	return token, nil
}
