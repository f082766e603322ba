// Package linelogin is a typed client for the LINE Login API.
//
// Every Client method returns either its typed response or an error that is
// exactly one of *APIError, *TransportError or *SystemError.
package linelogin

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/samvad-hq/line-login/pkg/httpclient"
)

// DefaultBaseURL is the LINE Platform API host.
const DefaultBaseURL = "https://api.line.me"

const defaultTimeout = 10 * time.Second

// Client calls LINE Login endpoints on behalf of one channel. It is immutable
// after New and safe for concurrent use.
type Client struct {
	clientID     string
	clientSecret string
	baseURL      string
	http         httpclient.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API host, e.g. for a local test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/"); baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithHTTPClient replaces the default resty transport.
func WithHTTPClient(hc httpclient.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// New creates a Client for the given channel credentials. Empty credentials
// are accepted; the provider rejects them when a call is made.
func New(clientID, clientSecret string, opts ...Option) *Client {
	c := &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = httpclient.NewRestyClient(defaultTimeout)
	}
	return c
}

// ClientID returns the channel ID the client was built with.
func (c *Client) ClientID() string { return c.clientID }

// call sends one request and classifies its response.
func call[T shaped](ctx context.Context, c *Client, method, path, bearer string, payload any) (T, error) {
	var zero T

	req, err := buildRequest(method, c.baseURL+path, bearer, payload)
	if err != nil {
		return zero, newSystemError(err)
	}

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return zero, newSystemError(err)
	}
	if resp == nil {
		return zero, newSystemError(errors.New("transport returned no response"))
	}

	var raw []byte
	if body := resp.Body(); body != nil {
		defer body.Close()
		raw, err = io.ReadAll(body)
		if err != nil {
			return zero, &TransportError{Status: resp.StatusCode(), Body: err.Error()}
		}
	}

	return classify[T](resp.StatusCode(), raw)
}
