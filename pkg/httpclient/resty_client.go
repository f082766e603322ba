package httpclient

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/go-resty/resty/v2"
)

// RestyClient adapts resty.Client to the httpclient.Client interface.
type RestyClient struct {
	client *resty.Client
}

// NewRestyClient creates a new RestyClient with the specified timeout.
func NewRestyClient(timeout time.Duration) *RestyClient {
	return &RestyClient{client: newRestyBaseClient(timeout)}
}

// NewRestyClientFrom wraps an already configured resty.Client.
func NewRestyClientFrom(c *resty.Client) *RestyClient {
	if c == nil {
		c = newRestyBaseClient(0)
	}
	c.SetAllowGetMethodPayload(true)
	return &RestyClient{client: c}
}

// newRestyBaseClient creates a new resty.Client with the specified timeout.
// A zero timeout leaves the call bounded only by the request context.
func newRestyBaseClient(timeout time.Duration) *resty.Client {
	c := resty.New()
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	c.SetAllowGetMethodPayload(true)
	return c
}

// Do performs the request and returns the response with its body unread.
// A non-nil error means no status was obtained.
func (r *RestyClient) Do(ctx context.Context, req Request) (Response, error) {
	rr := r.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true)
	if len(req.Headers) > 0 {
		rr.SetHeaders(req.Headers)
	}
	switch {
	case req.Form != nil:
		rr.SetFormDataFromValues(req.Form)
	case req.Body != nil:
		rr.SetBody(req.Body)
	}

	resp, err := rr.Execute(req.Method, req.URL)
	if err != nil {
		if resp != nil && resp.RawBody() != nil {
			resp.RawBody().Close()
		}
		return nil, err
	}
	return &restyResponseAdapter{resp: resp}, nil
}

// restyResponseAdapter adapts resty.Response to the httpclient.Response interface.
type restyResponseAdapter struct {
	resp *resty.Response
}

func (r *restyResponseAdapter) StatusCode() int { return r.resp.StatusCode() }

func (r *restyResponseAdapter) Body() io.ReadCloser {
	if body := r.resp.RawBody(); body != nil {
		return body
	}
	return io.NopCloser(bytes.NewReader(nil))
}
