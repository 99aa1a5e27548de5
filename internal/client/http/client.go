package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tupyy/fpintro/internal/entity"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const (
	defaultTimeout   = 5 * time.Second
	defaultUserAgent = "fpintro/0.1"
)

// transportWrapper is a wrapper for transport. It can be used as a middleware.
type transportWrapper func(http.RoundTripper) http.RoundTripper

type Option func(*Client)

// WithTimeout sets the global timeout of a request, body read included.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header. Reddit throttles hard the default Go agent.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTransport replaces the base transport. The wrappers are still applied on top of it.
func WithTransport(transport http.RoundTripper) Option {
	return func(c *Client) {
		c.baseTransport = transport
	}
}

// WithTracing wraps the transport with an otel span per request.
func WithTracing() Option {
	return func(c *Client) {
		c.transportWrappers = append(c.transportWrappers, func(rt http.RoundTripper) http.RoundTripper {
			return otelhttp.NewTransport(rt)
		})
	}
}

// Client fetches json documents from a read only content api.
type Client struct {
	// server's url
	serverURL *url.URL

	userAgent string
	timeout   time.Duration

	transportWrappers []transportWrapper

	baseTransport http.RoundTripper

	// transport is the transport which make the actual request
	transport http.RoundTripper
}

func New(path string, opts ...Option) (*Client, error) {
	u, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("Server address error: %s", err)
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("Server address error: '%s' is not an absolute url", path)
	}

	logWrapper := &logTransportWrapper{}

	c := &Client{
		serverURL:         u,
		userAgent:         defaultUserAgent,
		timeout:           defaultTimeout,
		transportWrappers: []transportWrapper{logWrapper.Wrap},
		baseTransport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			ResponseHeaderTimeout: 10 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	c.transport = c.createTransport()

	return c, nil
}

// Fetch gets path relative to the server url and returns the raw json body.
// Every failure is mapped to an ErrorResponse: the code is the http status when the server answered, 0 otherwise.
func (c *Client) Fetch(ctx context.Context, path string, query url.Values) (json.RawMessage, *entity.ErrorResponse) {
	request, err := newRequestBuilder().
		Method(http.MethodGet).
		Url(c.resolve(path)).
		Query(query).
		Header("Accept", "application/json").
		Header("User-Agent", c.userAgent).
		Build(ctx)
	if err != nil {
		zap.S().Errorw("cannot create request", "path", path, "error", err)
		return nil, entity.NewErrorResponse(0)
	}

	response, err := c.do(request)
	if err != nil {
		zap.S().Errorw("request failed", "url", request.URL.String(), "error", err)
		return nil, entity.NewErrorResponse(0)
	}
	defer response.Body.Close()

	if response.StatusCode >= 400 {
		zap.S().Warnw("request failed", "url", request.URL.String(), "code", response.StatusCode)
		return nil, entity.NewErrorResponse(response.StatusCode)
	}

	data, err := io.ReadAll(response.Body)
	if err != nil {
		zap.S().Errorw("cannot read response body", "url", request.URL.String(), "error", err)
		return nil, entity.NewErrorResponse(response.StatusCode)
	}

	if !json.Valid(data) {
		zap.S().Errorw("response body is not json", "url", request.URL.String())
		return nil, entity.NewErrorResponse(response.StatusCode)
	}

	return json.RawMessage(data), nil
}

// resolve joins path to the server url. path may carry its own leading slash or not.
func (c *Client) resolve(path string) string {
	base := strings.TrimSuffix(c.serverURL.String(), "/")
	return fmt.Sprintf("%s/%s", base, strings.TrimPrefix(path, "/"))
}

func (c *Client) do(request *http.Request) (*http.Response, error) {
	client := &http.Client{
		Transport: c.transport,
		Timeout:   c.timeout,
	}

	return client.Do(request)
}

func (c *Client) createTransport() http.RoundTripper {
	result := c.baseTransport

	// call the other wrappers backwards
	for i := len(c.transportWrappers) - 1; i >= 0; i-- {
		result = c.transportWrappers[i](result)
	}

	return result
}
