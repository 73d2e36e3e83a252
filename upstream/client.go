package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TokenSource yields the current bearer token, or "" when the session is
// anonymous.
type TokenSource func() string

// APIError is any non-2xx answer from the backend, carrying the machine
// readable code (e.g. token_not_valid) when one is present.
type APIError struct {
	StatusCode int
	Code       string
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("upstream: %d %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("upstream: status %d", e.StatusCode)
}

// The OTP endpoints are the only calls made without a bearer token.
var authFreePaths = []string{
	"/accounts/login-otps/",
	"/accounts/verify-login/",
}

func attachAuth(path string) bool {
	for _, open := range authFreePaths {
		if strings.Contains(path, open) {
			return false
		}
	}
	return true
}

// Client is a thin typed client for the remote commerce API. It performs no
// retries: a failed request is surfaced to the caller as-is.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource

	// onAuthFailure runs when the backend rejects the cached credentials
	// (401 or token_not_valid), so the session can drop them.
	onAuthFailure func()
}

func New(baseURL string, timeout time.Duration, tokens TokenSource, onAuthFailure func()) *Client {
	return &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		http:          &http.Client{Timeout: timeout},
		tokens:        tokens,
		onAuthFailure: onAuthFailure,
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil && attachAuth(path) {
		if token := c.tokens(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := c.decodeError(resp)
		if resp.StatusCode == http.StatusUnauthorized || apiErr.Code == "token_not_valid" {
			if c.onAuthFailure != nil {
				c.onAuthFailure()
			}
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) decodeError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return apiErr
	}
	var payload struct {
		Detail string `json:"detail"`
		Code   string `json:"code"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && (payload.Detail != "" || payload.Code != "") {
		apiErr.Detail = payload.Detail
		apiErr.Code = payload.Code
		return apiErr
	}
	apiErr.Detail = strings.TrimSpace(string(raw))
	if len(apiErr.Detail) > 200 {
		apiErr.Detail = apiErr.Detail[:200]
	}
	return apiErr
}
