package service

import (
	"errors"
	"fmt"
)

// Pipeline failure taxonomy. Every stage failure is converted to exactly
// one of these at the service boundary and surfaced to the user as a
// single message by the handler.
var (
	ErrUnauthenticated      = errors.New("user not authenticated")
	ErrProfilePersist       = errors.New("failed to create user profile")
	ErrSuggestionGeneration = errors.New("failed to generate trip suggestions")
	ErrSuggestionParse      = errors.New("suggestion response is not valid JSON")
	ErrSuggestionSchema     = errors.New("suggestion response missing required fields")
	ErrForecastFetch        = errors.New("failed to fetch weather information")
	ErrTripPersist          = errors.New("failed to save trip details")
	ErrActivityPersist      = errors.New("failed to save trip activities")
)

type AuthErrorCode string

const (
	AuthCodeInvalidCredentials AuthErrorCode = "invalid_credentials"
	AuthCodeEmailNotConfirmed  AuthErrorCode = "email_not_confirmed"
	AuthCodeRateLimited        AuthErrorCode = "rate_limited"
	AuthCodeProviderError      AuthErrorCode = "provider_error"
)

// AuthError is a classified auth provider failure. Callers branch on
// Code, never on message text. RetryAfter is the remaining cooldown in
// whole seconds when Code is rate_limited.
type AuthError struct {
	Code       AuthErrorCode
	Message    string
	RetryAfter int
}

func (e *AuthError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("auth error (%s): %s", e.Code, e.Message)
	}
	return fmt.Sprintf("auth error (%s)", e.Code)
}
