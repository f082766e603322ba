package linelogin

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassifyErrorStatusWithEnvelope(t *testing.T) {
	body := `{"error":"invalid_request","error_description":"invalid code"}`

	_, err := classify[EmptyResponse](http.StatusBadRequest, []byte(body))

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T (%v)", err, err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", apiErr.Status)
	}
	want := ErrorResponse{Error: "invalid_request", ErrorDescription: "invalid code"}
	if diff := cmp.Diff(want, apiErr.Body); diff != "" {
		t.Fatalf("error body mismatch (-want +got):\n%s", diff)
	}
	if apiErr.RawBody != body {
		t.Fatalf("raw body not preserved: %q", apiErr.RawBody)
	}
	if apiErr.Warnings != nil {
		t.Fatalf("expected no warnings, got %v", apiErr.Warnings)
	}
}

func TestClassifySuccess(t *testing.T) {
	body := `{"scope":"profile openid","client_id":"1234567890","expires_in":2591659}`

	got, err := classify[TokenVerifyResponse](http.StatusOK, []byte(body))
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	want := TokenVerifyResponse{Scope: "profile openid", ClientID: "1234567890", ExpiresIn: 2591659}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("response mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyOptionalFields(t *testing.T) {
	got, err := classify[ProfileResponse](http.StatusOK, []byte(`{"userId":"U1","displayName":"Brown","statusMessage":null}`))
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	want := ProfileResponse{UserID: "U1", DisplayName: "Brown"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("response mismatch (-want +got):\n%s", diff)
	}

	got, err = classify[ProfileResponse](http.StatusOK, []byte(`{"userId":"U1","displayName":"Brown","pictureUrl":""}`))
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if !got.PictureURL.Present || got.PictureURL.Value != "" {
		t.Fatalf("expected present empty pictureUrl, got %+v", got.PictureURL)
	}
}

func TestClassifyFallbacks(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantKind   string
	}{
		{
			name:       "envelope with success status",
			status:     http.StatusOK,
			body:       `{"error":"invalid_request","error_description":"bad"}`,
			wantStatus: http.StatusOK,
			wantKind:   "api",
		},
		{
			name:     "error status with success shape",
			status:   http.StatusInternalServerError,
			body:     `{"friendFlag":true}`,
			wantKind: "success",
		},
		{
			name:     "success status matching neither",
			status:   http.StatusOK,
			body:     `{"message":"not found"}`,
			wantKind: "system",
		},
		{
			name:     "error status matching neither",
			status:   http.StatusNotFound,
			body:     `{"message":"not found"}`,
			wantKind: "system",
		},
		{
			name:     "wrong field type",
			status:   http.StatusOK,
			body:     `{"friendFlag":"yes"}`,
			wantKind: "system",
		},
		{
			name:     "invalid json",
			status:   http.StatusOK,
			body:     `{"friendFlag":`,
			wantKind: "system",
		},
		{
			name:     "empty body",
			status:   http.StatusOK,
			body:     ``,
			wantKind: "system",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := classify[FriendshipStatusResponse](tt.status, []byte(tt.body))
			switch tt.wantKind {
			case "success":
				if err != nil {
					t.Fatalf("expected success, got %v", err)
				}
				if !got.FriendFlag {
					t.Fatalf("expected friendFlag true")
				}
			case "api":
				var apiErr *APIError
				if !errors.As(err, &apiErr) {
					t.Fatalf("expected *APIError, got %T (%v)", err, err)
				}
				if apiErr.Status != tt.wantStatus {
					t.Fatalf("expected status %d, got %d", tt.wantStatus, apiErr.Status)
				}
			case "system":
				var sysErr *SystemError
				if !errors.As(err, &sysErr) {
					t.Fatalf("expected *SystemError, got %T (%v)", err, err)
				}
				if StatusCode(err) != 0 {
					t.Fatalf("system error must not carry a status")
				}
			}
		})
	}
}

func TestClassifySystemErrorCarriesSuccessDiagnostic(t *testing.T) {
	_, err := classify[UserInfoResponse](http.StatusOK, []byte(`{"name":"Brown"}`))

	var sysErr *SystemError
	if !errors.As(err, &sysErr) {
		t.Fatalf("expected *SystemError, got %T (%v)", err, err)
	}
	if !strings.Contains(sysErr.Message, "user info response") || !strings.Contains(sysErr.Message, "sub") {
		t.Fatalf("diagnostic should name the success shape and missing field: %q", sysErr.Message)
	}
}

func TestClassifyInvalidUTF8(t *testing.T) {
	body := []byte{'{', '"', 0xff, 0xfe, '"', ':', '1', '}'}
	for _, status := range []int{http.StatusOK, http.StatusBadRequest} {
		_, err := classify[EmptyResponse](status, body)
		var sysErr *SystemError
		if !errors.As(err, &sysErr) {
			t.Fatalf("status %d: expected *SystemError, got %T (%v)", status, err, err)
		}
	}
}

func TestClassifyEmptyBodyIsSystemError(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusInternalServerError} {
		for _, body := range []string{"", "  \n"} {
			_, err := classify[EmptyResponse](status, []byte(body))
			var sysErr *SystemError
			if !errors.As(err, &sysErr) {
				t.Fatalf("status %d body %q: expected *SystemError, got %T (%v)", status, body, err, err)
			}
		}
	}
}

func TestClassifyDecodesExactKeysOnly(t *testing.T) {
	friend, err := classify[FriendshipStatusResponse](http.StatusOK, []byte(`{"friendFlag":false,"FRIENDFLAG":true}`))
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if friend.FriendFlag {
		t.Fatalf("differently cased key must not override friendFlag")
	}

	info, err := classify[UserInfoResponse](http.StatusOK, []byte(`{"sub":"U1","NAME":"evil"}`))
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if info.Name.Present {
		t.Fatalf("differently cased key must not populate name, got %+v", info.Name)
	}

	_, err = classify[UserInfoResponse](http.StatusOK, []byte(`{"SUB":"U1"}`))
	var sysErr *SystemError
	if !errors.As(err, &sysErr) {
		t.Fatalf("required key matched case-insensitively: got %T (%v)", err, err)
	}
}

func TestClassifyRejectsNegativeUnsigned(t *testing.T) {
	_, err := classify[TokenVerifyResponse](http.StatusOK, []byte(`{"scope":"s","client_id":"c","expires_in":-1}`))
	var sysErr *SystemError
	if !errors.As(err, &sysErr) {
		t.Fatalf("expected *SystemError, got %T (%v)", err, err)
	}
}
