package chatapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"docchat-client/internal/domain"
)

// createChatRequest is the request shape for the chat-creation endpoint. The
// message field is marshalled without omitempty so a blank message goes out
// as an explicit null, never as "" and never dropped.
type createChatRequest struct {
	Message   *string                  `json:"message"`
	Documents []domain.DocumentPayload `json:"documents"`
}

// Getter is the auth-token source consumed by Client. Consumers depend on
// this interface rather than the concrete tokenstore so they remain testable
// without touching the filesystem.
type Getter interface {
	GetToken(ctx context.Context) (string, error)
}

// HTTPStatusError captures non-2xx upstream responses with status-aware context.
type HTTPStatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("chatapi: unexpected status %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

func (e *HTTPStatusError) HTTPStatusCode() int {
	return e.StatusCode
}

// Client is a focused client for the chat backend: it creates chats and
// confirms document uploads. Presigned upload URLs returned inside the chat
// are consumed elsewhere; this client never touches them.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     Getter

	tokenOnce sync.Once
	token     string
	tokenErr  error
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a Client for the backend at baseURL, authenticating with
// the token from the given Getter. The token is fetched on the first call and
// reused for the lifetime of the process.
func NewClient(tokens Getter, baseURL string, opts ...Option) (*Client, error) {
	if tokens == nil {
		return nil, errors.New("chatapi: token getter must not be nil")
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("chatapi: base URL must not be empty")
	}
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		tokens:     tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) resolveToken(ctx context.Context) (string, error) {
	c.tokenOnce.Do(func() {
		c.token, c.tokenErr = c.tokens.GetToken(ctx)
		if c.tokenErr == nil && strings.TrimSpace(c.token) == "" {
			c.tokenErr = errors.New("chatapi: resolved token is empty")
		}
	})
	return c.token, c.tokenErr
}

func (c *Client) resolvedHTTPClient() *http.Client {
	if c.httpClient != nil {
		return c.httpClient
	}
	return &http.Client{Timeout: 10 * time.Second}
}

func chatsURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/chats"
}

func markUploadedURL(baseURL, documentID string) string {
	return strings.TrimRight(baseURL, "/") + "/documents/" + documentID + "/mark-uploaded"
}

// CreateChat creates a chat carrying the given message and document
// descriptors. It either returns the created chat or an error; there is no
// partial result.
func (c *Client) CreateChat(ctx context.Context, message *string, documents []domain.DocumentPayload) (domain.Chat, error) {
	token, err := c.resolveToken(ctx)
	if err != nil {
		return domain.Chat{}, err
	}

	if documents == nil {
		documents = []domain.DocumentPayload{}
	}
	body, err := json.Marshal(createChatRequest{
		Message:   message,
		Documents: documents,
	})
	if err != nil {
		return domain.Chat{}, fmt.Errorf("chatapi: marshal request: %w", err)
	}

	url := chatsURL(c.baseURL)

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if reqErr != nil {
		return domain.Chat{}, fmt.Errorf("chatapi: create request: %w", reqErr)
	}
	c.setHeaders(req, token)

	raw, err := c.doJSONRequest(req, url)
	if err != nil {
		return domain.Chat{}, fmt.Errorf("chatapi: create chat failed: %w", err)
	}

	var chat domain.Chat
	if decErr := json.Unmarshal(raw, &chat); decErr != nil {
		return domain.Chat{}, fmt.Errorf("chatapi: decode chat: %w", decErr)
	}
	if chat.Slug == "" {
		return domain.Chat{}, errors.New("chatapi: created chat is missing a slug")
	}
	return chat, nil
}

// MarkUploaded tells the backend that the given document's bytes have landed,
// transitioning it out of pending. Idempotency is not guaranteed by the
// endpoint; callers invoke it once per successful transmission.
func (c *Client) MarkUploaded(ctx context.Context, documentID string) error {
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return errors.New("chatapi: document id must not be empty")
	}

	token, err := c.resolveToken(ctx)
	if err != nil {
		return err
	}

	url := markUploadedURL(c.baseURL, documentID)

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if reqErr != nil {
		return fmt.Errorf("chatapi: create mark-uploaded request: %w", reqErr)
	}
	c.setHeaders(req, token)

	if _, err := c.doJSONRequest(req, url); err != nil {
		return fmt.Errorf("chatapi: mark document %s uploaded failed: %w", documentID, err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request, token string) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Request-ID", uuid.NewString())
}

func (c *Client) doJSONRequest(req *http.Request, url string) ([]byte, error) {
	res, doErr := c.resolvedHTTPClient().Do(req)
	if doErr != nil {
		return nil, doErr
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		buf, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return nil, &HTTPStatusError{
			StatusCode: res.StatusCode,
			URL:        url,
			Body:       string(buf),
		}
	}

	buf, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return buf, nil
}
