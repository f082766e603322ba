package linelogin

import (
	"net/http"
	"testing"
)

func TestBuildRequestHeaders(t *testing.T) {
	req, err := buildRequest(http.MethodGet, "https://api.example/v2/profile", "tok", noPayload{})
	if err != nil {
		t.Fatalf("buildRequest: %v", err)
	}
	if got := req.Headers["Content-Type"]; got != "application/x-www-form-urlencoded" {
		t.Fatalf("unexpected content type %q", got)
	}
	if got := req.Headers["Authorization"]; got != "Bearer tok" {
		t.Fatalf("unexpected authorization %q", got)
	}
	if string(req.Body) != "{}" {
		t.Fatalf("expected empty JSON body on GET, got %q", req.Body)
	}
	if req.Form != nil {
		t.Fatalf("GET must not carry form fields")
	}

	req, err = buildRequest(http.MethodGet, "https://api.example/v2/profile", "", noPayload{})
	if err != nil {
		t.Fatalf("buildRequest: %v", err)
	}
	if _, ok := req.Headers["Authorization"]; ok {
		t.Fatalf("authorization header must be omitted without a token")
	}
}

func TestBuildRequestRevokeForm(t *testing.T) {
	payload := revokeTokenRequest{
		AccessToken:  asciiLower("AbC123"),
		ClientID:     "Chan123",
		ClientSecret: "SeCrEt",
	}
	req, err := buildRequest(http.MethodPost, "https://api.example/oauth2/v2.1/revoke", "", payload)
	if err != nil {
		t.Fatalf("buildRequest: %v", err)
	}
	if got := req.Form.Get("access_token"); got != "abc123" {
		t.Fatalf("expected lower-cased access token, got %q", got)
	}
	if got := req.Form.Get("client_id"); got != "Chan123" {
		t.Fatalf("client id must be unmodified, got %q", got)
	}
	if got := req.Form.Get("client_secret"); got != "SeCrEt" {
		t.Fatalf("client secret must be unmodified, got %q", got)
	}
	if req.Body != nil {
		t.Fatalf("POST must not carry a raw body")
	}
}

func TestBuildRequestOmitsAbsentOptionals(t *testing.T) {
	req, err := buildRequest(http.MethodPost, "https://api.example/oauth2/v2.1/verify", "", idTokenVerifyRequest{
		IDToken:  "id",
		ClientID: "cid",
		Nonce:    Some("n-1"),
	})
	if err != nil {
		t.Fatalf("buildRequest: %v", err)
	}
	if got := req.Form.Get("nonce"); got != "n-1" {
		t.Fatalf("expected nonce, got %q", got)
	}
	if _, ok := req.Form["user_id"]; ok {
		t.Fatalf("absent user_id must not be sent")
	}
	if len(req.Form) != 3 {
		t.Fatalf("unexpected form fields %v", req.Form)
	}
}
