package linelogin

// shaped is satisfied by every response type a Client method can return.
type shaped interface {
	shape() shape
}

// EmptyResponse is returned by endpoints that answer with no payload.
type EmptyResponse struct{}

var emptyShape = mustObjectShape("empty response", nil, nil)

func (EmptyResponse) shape() shape { return emptyShape }

type createTokenRequest struct {
	GrantType    string           `json:"grant_type"`
	Code         string           `json:"code"`
	RedirectURI  string           `json:"redirect_uri"`
	ClientID     string           `json:"client_id"`
	ClientSecret string           `json:"client_secret"`
	CodeVerifier Optional[string] `json:"code_verifier,omitzero"`
}

// CreateTokenResponse is issued for an authorization code.
type CreateTokenResponse struct {
	AccessToken  string `json:"access_token"`
	ExpiresIn    uint64 `json:"expires_in"`
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
	Scope        string `json:"scope"`
	TokenType    string `json:"token_type"`
}

var createTokenShape = mustObjectShape("create token response",
	fields{
		"access_token":  jsonString,
		"expires_in":    jsonUint,
		"id_token":      jsonString,
		"refresh_token": jsonString,
		"scope":         jsonString,
		"token_type":    jsonString,
	},
	nil,
)

func (CreateTokenResponse) shape() shape { return createTokenShape }

// TokenVerifyResponse describes a valid access token.
type TokenVerifyResponse struct {
	Scope     string `json:"scope"`
	ClientID  string `json:"client_id"`
	ExpiresIn uint64 `json:"expires_in"`
}

var tokenVerifyShape = mustObjectShape("token verify response",
	fields{"scope": jsonString, "client_id": jsonString, "expires_in": jsonUint},
	nil,
)

func (TokenVerifyResponse) shape() shape { return tokenVerifyShape }

type refreshTokenRequest struct {
	GrantType    string `json:"grant_type"`
	RefreshToken string `json:"refresh_token"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// RefreshTokenResponse carries a new access token obtained with a refresh token.
type RefreshTokenResponse struct {
	TokenType    string `json:"token_type"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    uint64 `json:"expires_in"`
	Scope        string `json:"scope"`
}

var refreshTokenShape = mustObjectShape("refresh token response",
	fields{
		"token_type":    jsonString,
		"access_token":  jsonString,
		"refresh_token": jsonString,
		"expires_in":    jsonUint,
		"scope":         jsonString,
	},
	nil,
)

func (RefreshTokenResponse) shape() shape { return refreshTokenShape }

type revokeTokenRequest struct {
	AccessToken  string `json:"access_token"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

type idTokenVerifyRequest struct {
	IDToken  string           `json:"id_token"`
	ClientID string           `json:"client_id"`
	Nonce    Optional[string] `json:"nonce,omitzero"`
	UserID   Optional[string] `json:"user_id,omitzero"`
}

// IDTokenVerifyResponse holds the claims of a verified ID token.
type IDTokenVerifyResponse struct {
	Iss      string             `json:"iss"`
	Sub      string             `json:"sub"`
	Aud      string             `json:"aud"`
	Exp      uint64             `json:"exp"`
	Iat      uint64             `json:"iat"`
	AuthTime Optional[uint64]   `json:"auth_time,omitzero"`
	Nonce    Optional[string]   `json:"nonce,omitzero"`
	Amr      Optional[[]string] `json:"amr,omitzero"`
	Name     Optional[string]   `json:"name,omitzero"`
	Picture  Optional[string]   `json:"picture,omitzero"`
	Email    Optional[string]   `json:"email,omitzero"`
}

var idTokenVerifyShape = mustObjectShape("id token verify response",
	fields{
		"iss": jsonString,
		"sub": jsonString,
		"aud": jsonString,
		"exp": jsonUint,
		"iat": jsonUint,
	},
	fields{
		"auth_time": jsonUint,
		"nonce":     jsonString,
		"amr":       jsonStringArray,
		"name":      jsonString,
		"picture":   jsonString,
		"email":     jsonString,
	},
)

func (IDTokenVerifyResponse) shape() shape { return idTokenVerifyShape }

// UserInfoResponse is the OpenID Connect user info of the token's owner.
type UserInfoResponse struct {
	Sub     string           `json:"sub"`
	Name    Optional[string] `json:"name,omitzero"`
	Picture Optional[string] `json:"picture,omitzero"`
}

var userInfoShape = mustObjectShape("user info response",
	fields{"sub": jsonString},
	fields{"name": jsonString, "picture": jsonString},
)

func (UserInfoResponse) shape() shape { return userInfoShape }

// ProfileResponse is the LINE profile of the token's owner. PictureURL and
// StatusMessage are absent when the user has not set them.
type ProfileResponse struct {
	UserID        string           `json:"userId"`
	DisplayName   string           `json:"displayName"`
	PictureURL    Optional[string] `json:"pictureUrl,omitzero"`
	StatusMessage Optional[string] `json:"statusMessage,omitzero"`
}

var profileShape = mustObjectShape("profile response",
	fields{"userId": jsonString, "displayName": jsonString},
	fields{"pictureUrl": jsonString, "statusMessage": jsonString},
)

func (ProfileResponse) shape() shape { return profileShape }

// FriendshipStatusResponse reports whether the user has added the linked LINE
// Official Account as a friend.
type FriendshipStatusResponse struct {
	FriendFlag bool `json:"friendFlag"`
}

var friendshipShape = mustObjectShape("friendship status response",
	fields{"friendFlag": jsonBool},
	nil,
)

func (FriendshipStatusResponse) shape() shape { return friendshipShape }
