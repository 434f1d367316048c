package service

import (
	"context"
	"strings"

	"ai-travel-planner/internal/models"

	"github.com/supabase-community/gotrue-go/types"
	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"
)

// GoTrue error markers. The gotrue-go client surfaces provider failures
// as message text; the mapping to stable codes happens here and nowhere
// else.
const (
	markerRateLimit         = "over_email_send_rate_limit"
	markerEmailNotConfirmed = "email_not_confirmed"
	markerInvalidLogin      = "invalid login credentials"
	markerInvalidGrant      = "invalid_grant"
)

// SupabaseAuthProvider adapts the Supabase GoTrue client to the
// AuthProvider contract.
type SupabaseAuthProvider struct {
	client *supabase.Client
	logger *zap.Logger
}

func NewSupabaseAuthProvider(client *supabase.Client, logger *zap.Logger) *SupabaseAuthProvider {
	return &SupabaseAuthProvider{
		client: client,
		logger: logger,
	}
}

func (p *SupabaseAuthProvider) SignUp(ctx context.Context, email, password string) error {
	_, err := p.client.Auth.Signup(types.SignupRequest{
		Email:    email,
		Password: password,
		Data: map[string]interface{}{
			"email_confirmed": true,
		},
	})
	if err != nil {
		return classifyAuthError(err)
	}
	return nil
}

func (p *SupabaseAuthProvider) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	resp, err := p.client.Auth.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, classifyAuthError(err)
	}

	return &models.Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		TokenType:    resp.TokenType,
		ExpiresIn:    resp.ExpiresIn,
		User: models.User{
			ID:        resp.User.ID,
			Email:     resp.User.Email,
			CreatedAt: resp.User.CreatedAt,
		},
	}, nil
}

func (p *SupabaseAuthProvider) SignOut(ctx context.Context, accessToken string) error {
	if err := p.client.Auth.WithToken(accessToken).Logout(); err != nil {
		return classifyAuthError(err)
	}
	return nil
}

func (p *SupabaseAuthProvider) User(ctx context.Context, accessToken string) (*models.User, error) {
	resp, err := p.client.Auth.WithToken(accessToken).GetUser()
	if err != nil {
		return nil, classifyAuthError(err)
	}

	return &models.User{
		ID:        resp.ID,
		Email:     resp.Email,
		CreatedAt: resp.CreatedAt,
	}, nil
}

func classifyAuthError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, markerRateLimit), strings.Contains(msg, "rate limit"):
		return &AuthError{Code: AuthCodeRateLimited, Message: "too many attempts"}
	case strings.Contains(msg, markerEmailNotConfirmed), strings.Contains(msg, "email not confirmed"):
		return &AuthError{Code: AuthCodeEmailNotConfirmed, Message: "email address not confirmed"}
	case strings.Contains(msg, markerInvalidLogin), strings.Contains(msg, markerInvalidGrant):
		return &AuthError{Code: AuthCodeInvalidCredentials, Message: "invalid credentials"}
	default:
		return &AuthError{Code: AuthCodeProviderError, Message: err.Error()}
	}
}
