package linelogin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/samvad-hq/line-login/pkg/httpclient"
)

const contentTypeForm = "application/x-www-form-urlencoded"

// noPayload is attached to GET calls; query parameters travel in the URL.
type noPayload struct{}

// buildRequest describes a call without performing it. GET requests carry the
// JSON encoding of payload as body (the provider ignores it); other methods
// send payload as form fields.
func buildRequest(method, rawURL, bearer string, payload any) (httpclient.Request, error) {
	req := httpclient.Request{
		Method: method,
		URL:    rawURL,
		Headers: map[string]string{
			"Content-Type": contentTypeForm,
		},
	}
	if bearer != "" {
		req.Headers["Authorization"] = "Bearer " + bearer
	}

	if method == http.MethodGet {
		body, err := json.Marshal(payload)
		if err != nil {
			return httpclient.Request{}, fmt.Errorf("encode %s payload: %w", method, err)
		}
		req.Body = body
		return req, nil
	}

	form, err := formValues(payload)
	if err != nil {
		return httpclient.Request{}, err
	}
	req.Form = form
	return req, nil
}

// formValues flattens payload through its JSON form so field names and
// optional-field omission are shared with the JSON encoding.
func formValues(payload any) (url.Values, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode form payload: %w", err)
	}
	var flat map[string]any
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, fmt.Errorf("flatten form payload: %w", err)
	}

	values := make(url.Values, len(flat))
	for k, v := range flat {
		switch v := v.(type) {
		case nil:
		case string:
			values.Set(k, v)
		default:
			values.Set(k, fmt.Sprint(v))
		}
	}
	return values, nil
}
