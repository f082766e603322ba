package linelogin

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

const (
	pathToken      = "/oauth2/v2.1/token"
	pathVerify     = "/oauth2/v2.1/verify"
	pathRevoke     = "/oauth2/v2.1/revoke"
	pathUserInfo   = "/oauth2/v2.1/userinfo"
	pathProfile    = "/v2/profile"
	pathFriendship = "/friendship/v1/status"
)

const (
	grantAuthorizationCode = "authorization_code"
	grantRefreshToken      = "refresh_token"
)

// CreateToken exchanges an authorization code for tokens.
func (c *Client) CreateToken(ctx context.Context, code, redirectURI string) (CreateTokenResponse, error) {
	return c.createToken(ctx, code, redirectURI, None[string]())
}

// CreateTokenWithVerifier exchanges an authorization code issued with a PKCE
// challenge, sending the caller's code verifier.
func (c *Client) CreateTokenWithVerifier(ctx context.Context, code, redirectURI, codeVerifier string) (CreateTokenResponse, error) {
	return c.createToken(ctx, code, redirectURI, Some(codeVerifier))
}

func (c *Client) createToken(ctx context.Context, code, redirectURI string, verifier Optional[string]) (CreateTokenResponse, error) {
	req := createTokenRequest{
		GrantType:    grantAuthorizationCode,
		Code:         code,
		RedirectURI:  redirectURI,
		ClientID:     c.clientID,
		ClientSecret: c.clientSecret,
		CodeVerifier: verifier,
	}
	return call[CreateTokenResponse](ctx, c, http.MethodPost, pathToken, "", req)
}

// VerifyAccessToken checks the validity of an access token.
func (c *Client) VerifyAccessToken(ctx context.Context, accessToken string) (TokenVerifyResponse, error) {
	query := url.Values{"access_token": {accessToken}}.Encode()
	return call[TokenVerifyResponse](ctx, c, http.MethodGet, pathVerify+"?"+query, "", noPayload{})
}

// RefreshAccessToken obtains a new access token with a refresh token.
func (c *Client) RefreshAccessToken(ctx context.Context, refreshToken string) (RefreshTokenResponse, error) {
	req := refreshTokenRequest{
		GrantType:    grantRefreshToken,
		RefreshToken: refreshToken,
		ClientID:     c.clientID,
		ClientSecret: c.clientSecret,
	}
	return call[RefreshTokenResponse](ctx, c, http.MethodPost, pathToken, "", req)
}

// RevokeAccessToken invalidates an access token. The token is sent lower-cased.
func (c *Client) RevokeAccessToken(ctx context.Context, accessToken string) (EmptyResponse, error) {
	req := revokeTokenRequest{
		AccessToken:  asciiLower(accessToken),
		ClientID:     c.clientID,
		ClientSecret: c.clientSecret,
	}
	return call[EmptyResponse](ctx, c, http.MethodPost, pathRevoke, "", req)
}

// VerifyIDToken asks the provider to verify an ID token. nonce and userID are
// sent only when present.
func (c *Client) VerifyIDToken(ctx context.Context, idToken string, nonce, userID Optional[string]) (IDTokenVerifyResponse, error) {
	req := idTokenVerifyRequest{
		IDToken:  idToken,
		ClientID: c.clientID,
		Nonce:    nonce,
		UserID:   userID,
	}
	return call[IDTokenVerifyResponse](ctx, c, http.MethodPost, pathVerify, "", req)
}

// UserInfo returns the OpenID user info for the token's owner.
func (c *Client) UserInfo(ctx context.Context, accessToken string) (UserInfoResponse, error) {
	return call[UserInfoResponse](ctx, c, http.MethodGet, pathUserInfo, accessToken, noPayload{})
}

// Profile returns the LINE profile for the token's owner.
func (c *Client) Profile(ctx context.Context, accessToken string) (ProfileResponse, error) {
	return call[ProfileResponse](ctx, c, http.MethodGet, pathProfile, accessToken, noPayload{})
}

// FriendshipStatus reports whether the user is friends with the channel's
// linked LINE Official Account.
func (c *Client) FriendshipStatus(ctx context.Context, accessToken string) (FriendshipStatusResponse, error) {
	return call[FriendshipStatusResponse](ctx, c, http.MethodGet, pathFriendship, accessToken, noPayload{})
}

func asciiLower(s string) string {
	return strings.Map(func(r rune) rune {
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}
