package platform

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/spec-kit/listener-admin/internal/config"
	"github.com/spec-kit/listener-admin/internal/observability"
	"github.com/spec-kit/listener-admin/internal/session"
	apperrors "github.com/spec-kit/listener-admin/pkg/util"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Client is the typed client for the remote platform REST API. Every call
// attaches the bearer token from the injected session and unwraps the
// platform's response envelope before returning data to callers.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	session       *session.Session
	logger        *zap.Logger
	metrics       *observability.Metrics
	retryAttempts int
	retryDelay    time.Duration
}

// NewClient constructs the platform client.
func NewClient(cfg config.PlatformConfig, sess *session.Session, logger *zap.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:    &http.Client{Timeout: cfg.RequestTimeout()},
		session:       sess,
		logger:        logger,
		metrics:       metrics,
		retryAttempts: cfg.RetryAttempts,
		retryDelay:    cfg.RetryDelay(),
	}
}

// Session exposes the injected session, mainly for the auth gate.
func (c *Client) Session() *session.Session {
	return c.session
}

// do issues a JSON request and decodes the enveloped response into out.
// keys name the duck-typed wrappers some endpoints nest their payload under
// (e.g. {"listeners": [...]}); normalization happens here so callers never
// branch on response shape.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, keys ...string) error {
	payload, _, err := c.doRaw(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	data := unwrapEnvelope(payload)
	data = unwrapKeyed(data, keys...)
	if err := jsonAPI.Unmarshal(data, out); err != nil {
		c.logger.Warn("platform response decode failed",
			zap.String("path", path), zap.Error(err))
		return apperrors.NewInternalError(err)
	}
	return nil
}

// doRaw issues a request and returns the raw body and content type. Export
// and report endpoints use it directly since they return binary blobs.
func (c *Client) doRaw(ctx context.Context, method, path string, query url.Values, body any) ([]byte, string, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := jsonAPI.Marshal(body)
		if err != nil {
			return nil, "", apperrors.NewInternalError(err)
		}
		reader = bytes.NewReader(encoded)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, "", apperrors.NewInternalError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordPlatformError(path, method, "UNAVAILABLE")
		return nil, "", apperrors.NewUnavailable(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	payload, readErr := io.ReadAll(resp.Body)
	c.metrics.RecordPlatformCall(path, method, resp.StatusCode, time.Since(start))

	// Expired sessions are handled before any generic error mapping so they
	// never surface as ordinary failures.
	if resp.StatusCode == http.StatusUnauthorized {
		c.logger.Info("platform rejected session", zap.String("path", path))
		c.session.Clear(ctx, "unauthorized")
		return nil, "", apperrors.NewUnauthorized("session expired")
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.metrics.RecordPlatformError(path, method, "UPSTREAM_ERROR")
		return nil, "", apperrors.NewUpstreamError(resp.StatusCode, serverMessage(payload))
	}
	if readErr != nil {
		return nil, "", apperrors.NewUnavailable(readErr)
	}
	return payload, resp.Header.Get("Content-Type"), nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any, keys ...string) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out, keys...)
}

func (c *Client) post(ctx context.Context, path string, body, out any, keys ...string) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out, keys...)
}

func (c *Client) patch(ctx context.Context, path string, body, out any, keys ...string) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out, keys...)
}
