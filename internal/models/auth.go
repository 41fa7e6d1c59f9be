package models

type GoogleLoginRequest struct {
	IDToken string `json:"id_token"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// SessionUser is the identity attached to an authenticated request.
type SessionUser struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}
