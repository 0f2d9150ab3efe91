package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/dmitrijs2005/tourplanner/internal/common"
	"github.com/dmitrijs2005/tourplanner/internal/logging"
)

const refreshPath = "/auth/refresh"

var _ Client = (*HTTPClient)(nil)

// maxErrorBody bounds how much of an error response is kept in StatusError.
const maxErrorBody = 4 << 10

type HTTPClient struct {
	baseURL      string
	httpClient   *http.Client
	logger       logging.Logger
	limiter      *rate.Limiter
	defaultImage string
	now          func() time.Time
	onTokens     func(Tokens)

	mu     sync.RWMutex
	tokens Tokens

	// refreshMu serializes refreshes so concurrent 401s trigger one refresh.
	refreshMu sync.Mutex
}

type Option func(*HTTPClient)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.httpClient = hc }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.logger = l }
}

// WithRateLimit caps outgoing requests at rps with the given burst.
// A non-positive rps disables throttling.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *HTTPClient) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithDefaultImage sets the URL substituted for empty "images" arrays.
func WithDefaultImage(u string) Option {
	return func(c *HTTPClient) { c.defaultImage = u }
}

// WithTokenListener registers fn to be called with every refreshed pair.
func WithTokenListener(fn func(Tokens)) Option {
	return func(c *HTTPClient) { c.onTokens = fn }
}

func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logging.Nop(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HTTPClient) SetTokens(t Tokens) {
	c.mu.Lock()
	c.tokens = t
	c.mu.Unlock()
}

func (c *HTTPClient) Tokens() Tokens {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tokens
}

// Refresh exchanges the current refresh token for a new pair.
func (c *HTTPClient) Refresh(ctx context.Context) error {
	return c.refresh(ctx, c.Tokens().AccessToken)
}

// refresh obtains a new token pair unless another caller already replaced
// staleAccess while this one waited for the lock.
func (c *HTTPClient) refresh(ctx context.Context, staleAccess string) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	current := c.Tokens()
	if current.AccessToken != "" && current.AccessToken != staleAccess {
		return nil
	}
	if current.RefreshToken == "" {
		return common.ErrRefreshTokenMissing
	}

	payload, err := json.Marshal(map[string]string{"refreshToken": current.RefreshToken})
	if err != nil {
		return err
	}

	resp, err := c.send(ctx, http.MethodPost, refreshPath, nil, payload, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := statusError(resp)
		if errors.Is(err, ErrUnavailable) {
			return err
		}
		return fmt.Errorf("%w: refresh rejected: %v", ErrUnauthorized, err)
	}

	var fresh Tokens
	if err := json.NewDecoder(resp.Body).Decode(&fresh); err != nil {
		return fmt.Errorf("decode refresh response: %w", err)
	}
	if fresh.AccessToken == "" {
		return fmt.Errorf("%w: refresh returned no access token", ErrUnauthorized)
	}
	if fresh.RefreshToken == "" {
		fresh.RefreshToken = current.RefreshToken
	}

	c.SetTokens(fresh)
	c.logger.Info(ctx, "access token refreshed")
	if c.onTokens != nil {
		c.onTokens(fresh)
	}
	return nil
}

// do performs one API call. body (if non-nil) is sent as JSON and a 2xx
// answer is decoded into out (if non-nil).
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = b
	}

	access := c.Tokens().AccessToken
	if access != "" && tokenExpired(access, c.now()) {
		if err := c.refresh(ctx, access); err != nil {
			c.logger.Warn(ctx, "proactive token refresh failed", "error", err)
		}
		access = c.Tokens().AccessToken
	}

	resp, err := c.send(ctx, method, path, query, payload, access)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		drain(resp)
		if err := c.refresh(ctx, access); err != nil {
			c.logger.Warn(ctx, "token refresh after 401 failed", "path", path, "error", err)
			if errors.Is(err, ErrUnavailable) {
				return err
			}
			return fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		c.logger.Debug(ctx, "retrying request with refreshed token", "method", method, "path", path)
		resp, err = c.send(ctx, method, path, query, payload, c.Tokens().AccessToken)
		if err != nil {
			return err
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}
	if out == nil {
		drain(resp)
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}
	raw, err = backfillImages(raw, c.defaultImage)
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) send(ctx context.Context, method, path string, query url.Values, payload []byte, access string) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if access != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+access)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return resp, nil
}

// statusError maps a non-2xx response to an error. It consumes the body.
func statusError(resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := errorMessage(b)

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d %s", ErrUnavailable, resp.StatusCode, msg)
	default:
		return &StatusError{Code: resp.StatusCode, Message: msg}
	}
}

func errorMessage(b []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(b, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return strings.TrimSpace(string(b))
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	_ = resp.Body.Close()
}
