// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.

// Package client implements the generic service client: connection
// management, host management and everything specific clients use commonly.
//
// A Client runs in one of two modes. In static mode a host URL is given at
// construction and used as-is. In auto-resolve mode a service name and an
// environment are given instead, and the host is looked up through the
// CrossRoads registry and cached.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"

	"github.com/inyourarea/jigsaw/pkg/constants"
	"github.com/inyourarea/jigsaw/pkg/crossroads"
)

// ResponseCheck inspects a response before it is handed to the caller.
// Returning an error wrapping ErrShouldRetry repeats the attempt; any other
// error aborts the request.
type ResponseCheck func(*http.Response) error

type Client struct {
	host        string
	serviceName string
	env         string
	prefix      string

	config     SessionConfig
	httpClient *http.Client
	resolver   crossroads.Resolver
	check      ResponseCheck
	log        *zap.Logger

	cacheTTL   time.Duration
	mu         sync.Mutex
	cachedHost string
	cachedAt   time.Time
}

// Option configures a Client at construction time.
type Option func(*Client) error

// WithHost binds the client to a fixed host URL (static mode).
func WithHost(host string) Option {
	return func(c *Client) error {
		if c.host != "" {
			return errors.New("host specified twice")
		}
		c.host = host
		return nil
	}
}

// WithService binds the client to a service name and environment
// (auto-resolve mode).
func WithService(name, env string) Option {
	return func(c *Client) error {
		if c.serviceName != "" {
			return errors.New("service specified twice")
		}
		c.serviceName = name
		c.env = env
		return nil
	}
}

// WithPrefix sets a base path prepended to every request path.
func WithPrefix(prefix string) Option {
	return func(c *Client) error {
		if c.prefix != "" {
			return errors.New("prefix specified twice")
		}
		c.prefix = prefix
		return nil
	}
}

// WithConfig replaces the default session configuration.
func WithConfig(config SessionConfig) Option {
	return func(c *Client) error {
		if err := config.validate(); err != nil {
			return err
		}
		c.config = config.withDefaults()
		return nil
	}
}

// WithResolver sets the registry used in auto-resolve mode.
func WithResolver(resolver crossroads.Resolver) Option {
	return func(c *Client) error {
		c.resolver = resolver
		return nil
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) error {
		c.httpClient = httpClient
		return nil
	}
}

// WithResponseCheck installs a response check applied to every reply.
func WithResponseCheck(check ResponseCheck) Option {
	return func(c *Client) error {
		c.check = check
		return nil
	}
}

// WithLogger sets the client logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) error {
		c.log = log
		return nil
	}
}

// WithHostCacheTTL overrides how long a resolved host is reused.
func WithHostCacheTTL(ttl time.Duration) Option {
	return func(c *Client) error {
		c.cacheTTL = ttl
		return nil
	}
}

// New builds a Client. Exactly one of WithHost and WithService must be
// given; auto-resolve mode additionally requires a resolver.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		config:   DefaultSessionConfig(),
		log:      zap.NewNop(),
		cacheTTL: constants.DefaultHostCacheTTL,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	switch {
	case c.host != "" && c.serviceName != "":
		return nil, errors.New("both a host and a service were specified, pick one mode")
	case c.host == "" && (c.serviceName == "" || c.env == ""):
		return nil, errors.New("in auto-resolve mode both a service name and an env must be provided")
	case c.host == "" && c.resolver == nil:
		return nil, errors.New("auto-resolve mode requires a resolver")
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.config.Timeout}
	}

	if c.host != "" {
		c.log.Info("running in static mode", zap.String("host", c.host))
	} else {
		c.log.Info("running in auto-resolve mode",
			zap.String("service", c.serviceName),
			zap.String("env", c.env))
	}
	return c, nil
}

// Close releases the underlying connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// Host returns the host url.
// In static mode the constructor host is returned. In auto-resolve mode the
// host is resolved from the service name and env, and reused until the
// cache TTL passes.
func (c *Client) Host(ctx context.Context) (string, error) {
	if c.host != "" {
		return c.host, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cachedHost != "" && time.Since(c.cachedAt) < c.cacheTTL {
		return c.cachedHost, nil
	}

	host, err := c.resolver.Resolve(ctx, c.serviceName, c.env)
	if err != nil {
		return "", err
	}
	c.log.Info("resolved host",
		zap.String("host", host),
		zap.String("service", c.serviceName),
		zap.String("env", c.env))
	c.cachedHost = host
	c.cachedAt = time.Now()
	return host, nil
}

// BaseURL returns the client's base url, host plus prefix.
func (c *Client) BaseURL(ctx context.Context) (string, error) {
	host, err := c.Host(ctx)
	if err != nil {
		return "", err
	}
	return host + c.prefix, nil
}

// Issue manages all request dispatches. The response body is the caller's
// to close. Retryable failures are repeated under the session's backoff
// policy; the last failure is returned when the retry budget runs out.
func (c *Client) Issue(ctx context.Context, method, path string, opts ...RequestOption) (*http.Response, error) {
	baseURL, err := c.BaseURL(ctx)
	if err != nil {
		return nil, err
	}

	req := newRequest(opts)
	if req.err != nil {
		return nil, req.err
	}

	url := baseURL + path
	if len(req.query) > 0 {
		url += "?" + req.query.Encode()
	}
	c.log.Info("issuing request", zap.String("method", method), zap.String("url", url))

	operation := func() (*http.Response, error) {
		return c.attempt(ctx, method, url, req)
	}

	wait := backoff.NewExponentialBackOff()
	wait.InitialInterval = c.config.RetryWait
	wait.MaxInterval = c.config.RetryMaxWait

	res, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(wait),
		backoff.WithMaxElapsedTime(c.config.RetryElapsed))
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, url, err)
	}
	return res, nil
}

func (c *Client) attempt(ctx context.Context, method, url string, req *request) (*http.Response, error) {
	var body io.Reader
	if req.body != nil {
		body = bytes.NewReader(req.body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	for key, values := range req.headers {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	res, err := c.httpClient.Do(httpReq)
	if err != nil {
		if c.retriesError(ctx, err) {
			return nil, err
		}
		return nil, backoff.Permanent(err)
	}

	if c.config.RetriesStatus(res.StatusCode) {
		drain(res)
		return nil, &StatusError{Method: method, URL: url, Code: res.StatusCode}
	}

	if c.check != nil {
		if err := c.check(res); err != nil {
			drain(res)
			if errors.Is(err, ErrShouldRetry) {
				return nil, err
			}
			return nil, backoff.Permanent(err)
		}
	}
	return res, nil
}

// retriesError classifies a transport failure under the session policy.
// A done caller context is never retried. Per-request timeouts also match
// context.DeadlineExceeded, so the context itself is consulted rather than
// the error chain.
func (c *Client) retriesError(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return c.config.RetryOnTimeout
	}
	return c.config.RetryOnConnErr
}

func drain(res *http.Response) {
	_, _ = io.Copy(io.Discard, res.Body)
	_ = res.Body.Close()
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, opts ...RequestOption) (*http.Response, error) {
	return c.Issue(ctx, http.MethodGet, path, opts...)
}

// Post issues a POST request.
func (c *Client) Post(ctx context.Context, path string, opts ...RequestOption) (*http.Response, error) {
	return c.Issue(ctx, http.MethodPost, path, opts...)
}

// Put issues a PUT request.
func (c *Client) Put(ctx context.Context, path string, opts ...RequestOption) (*http.Response, error) {
	return c.Issue(ctx, http.MethodPut, path, opts...)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, opts ...RequestOption) (*http.Response, error) {
	return c.Issue(ctx, http.MethodDelete, path, opts...)
}

// Head issues a HEAD request.
func (c *Client) Head(ctx context.Context, path string, opts ...RequestOption) (*http.Response, error) {
	return c.Issue(ctx, http.MethodHead, path, opts...)
}
