package models

import "github.com/google/uuid"

// Principal is the authenticated identity behind a request, extracted
// from a verified access token.
type Principal struct {
	UserID uuid.UUID
	Email  string
}

func (p Principal) IsZero() bool {
	return p.UserID == uuid.Nil
}

// Session is the token bundle issued by the auth provider on a
// successful sign-in.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	User         User   `json:"user"`
}
