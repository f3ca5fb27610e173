// Package modelconfig talks to the remote model-configuration endpoint.
package modelconfig

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	domain "github.com/alexisbeaulieu97/sonora/internal/domain/theme"
	"github.com/alexisbeaulieu97/sonora/internal/ports"
	sonoraerrors "github.com/alexisbeaulieu97/sonora/pkg/errors"
)

const (
	// DefaultBaseURL is used when no API address is configured.
	DefaultBaseURL = "http://localhost:8000"

	configPath     = "/api/config"
	defaultTimeout = 30 * time.Second
)

// Client implements ports.ModelConfigStore over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     ports.TokenSource
	logger     ports.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		if c != nil {
			client.httpClient = c
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger ports.Logger) Option {
	return func(client *Client) {
		if logger != nil {
			client.logger = logger.With("component", "modelconfig")
		}
	}
}

// NewClient creates a client for baseURL authenticating with tokens.
func NewClient(baseURL string, tokens ports.TokenSource, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		tokens:     tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get fetches the stored configuration. A missing configuration returns
// (nil, nil).
func (c *Client) Get(ctx context.Context) (*ports.ModelConfig, error) {
	var cfg ports.ModelConfig
	found, err := c.do(ctx, http.MethodGet, nil, &cfg)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &cfg, nil
}

// Save stores cfg, replacing any previous configuration.
func (c *Client) Save(ctx context.Context, cfg ports.ModelConfig) error {
	_, err := c.do(ctx, http.MethodPost, cfg, nil)
	return err
}

// Delete removes the stored configuration.
func (c *Client) Delete(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodDelete, nil, nil)
	return err
}

// do performs one authenticated request. found is false only for a GET
// answered with 404.
func (c *Client) do(ctx context.Context, method string, body, result interface{}) (found bool, err error) {
	url := c.baseURL + configPath
	errCtx := map[string]interface{}{"method": method, "url": url}

	token, err := c.accessToken(ctx)
	if err != nil {
		return false, domain.NewError(domain.ErrCodeState, "no active session", err, errCtx)
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return false, fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, domain.NewError(domain.ErrCodeExecution, "model config request failed",
			sonoraerrors.NewRequestError(method, url, 0, err), errCtx)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("read response: %w", err)
	}

	if c.logger != nil {
		c.logger.Debug(ctx, "model config request", "method", method, "status", resp.StatusCode, "duration", time.Since(started))
	}

	if method == http.MethodGet && resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errCtx["status"] = resp.StatusCode
		if msg := strings.TrimSpace(string(respBody)); msg != "" {
			errCtx["body"] = msg
		}
		return false, domain.NewError(domain.ErrCodeExecution,
			fmt.Sprintf("model config %s returned %d", strings.ToLower(method), resp.StatusCode),
			sonoraerrors.NewRequestError(method, url, resp.StatusCode, nil), errCtx)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return false, fmt.Errorf("unmarshal response: %w", err)
		}
	}
	return true, nil
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	if c.tokens == nil {
		return "", fmt.Errorf("no token source configured")
	}
	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(token) == "" {
		return "", fmt.Errorf("empty access token")
	}
	return token, nil
}

// StaticTokenSource always returns the same token.
type StaticTokenSource string

// AccessToken implements ports.TokenSource.
func (s StaticTokenSource) AccessToken(context.Context) (string, error) {
	return string(s), nil
}

// EnvTokenSource reads the token from an environment variable on every call.
type EnvTokenSource string

// AccessToken implements ports.TokenSource.
func (s EnvTokenSource) AccessToken(context.Context) (string, error) {
	if s == "" {
		return "", fmt.Errorf("token environment variable not configured")
	}
	token, ok := os.LookupEnv(string(s))
	if !ok {
		return "", fmt.Errorf("environment variable %s is not set", string(s))
	}
	return token, nil
}
