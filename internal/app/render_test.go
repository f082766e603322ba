package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/samvad-hq/line-login/pkg/linelogin"
)

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, "json", linelogin.UserInfoResponse{Sub: "U1", Name: linelogin.Some("Taro")})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "{\n  \"sub\": \"U1\",\n  \"name\": \"Taro\"\n}\n"
	if buf.String() != want {
		t.Fatalf("unexpected json output:\n%s", buf.String())
	}
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, "yaml", linelogin.TokenVerifyResponse{Scope: "profile", ClientID: "1234567890", ExpiresIn: 10})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	for _, line := range []string{"scope: profile", "client_id: ", "1234567890", "expires_in: 10"} {
		if !strings.Contains(out, line) {
			t.Fatalf("yaml output missing %q:\n%s", line, out)
		}
	}
	if strings.Contains(out, "client_id: 1234567890") {
		t.Fatalf("numeric-looking string must stay quoted:\n%s", out)
	}
	if strings.Contains(out, "{") {
		t.Fatalf("expected block style yaml:\n%s", out)
	}
}

func TestRenderRejectsUnknownFormat(t *testing.T) {
	if err := Render(&bytes.Buffer{}, "xml", linelogin.EmptyResponse{}); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
