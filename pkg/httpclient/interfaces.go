package httpclient

import (
	"context"
	"io"
	"net/url"
)

// Request describes a single outbound call. Form takes precedence over Body.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Form    url.Values
	Body    []byte
}

// Response is a minimal HTTP response contract. The body is left unread so
// callers can tell a failed read apart from a failed connection.
type Response interface {
	StatusCode() int
	Body() io.ReadCloser
}

// Client abstracts HTTP calls so callers can inject mocks or different transports.
type Client interface {
	Do(ctx context.Context, req Request) (Response, error)
}
