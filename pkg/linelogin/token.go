package linelogin

import (
	"time"

	"golang.org/x/oauth2"
)

// Endpoint is the LINE Login OAuth 2.0 endpoint for use with golang.org/x/oauth2.
var Endpoint = oauth2.Endpoint{
	AuthURL:   "https://access.line.me/oauth2/v2.1/authorize",
	TokenURL:  DefaultBaseURL + pathToken,
	AuthStyle: oauth2.AuthStyleInParams,
}

// OAuth2Token converts the response into an *oauth2.Token expiring relative to
// issuedAt. The ID token and scope are attached as extras.
func (r CreateTokenResponse) OAuth2Token(issuedAt time.Time) *oauth2.Token {
	tok := &oauth2.Token{
		AccessToken:  r.AccessToken,
		TokenType:    r.TokenType,
		RefreshToken: r.RefreshToken,
		Expiry:       expiry(issuedAt, r.ExpiresIn),
		ExpiresIn:    int64(r.ExpiresIn),
	}
	return tok.WithExtra(map[string]any{
		"id_token": r.IDToken,
		"scope":    r.Scope,
	})
}

// OAuth2Token converts the response into an *oauth2.Token expiring relative to issuedAt.
func (r RefreshTokenResponse) OAuth2Token(issuedAt time.Time) *oauth2.Token {
	tok := &oauth2.Token{
		AccessToken:  r.AccessToken,
		TokenType:    r.TokenType,
		RefreshToken: r.RefreshToken,
		Expiry:       expiry(issuedAt, r.ExpiresIn),
		ExpiresIn:    int64(r.ExpiresIn),
	}
	return tok.WithExtra(map[string]any{"scope": r.Scope})
}

func expiry(issuedAt time.Time, seconds uint64) time.Time {
	if seconds == 0 {
		return time.Time{}
	}
	return issuedAt.Add(time.Duration(seconds) * time.Second)
}
