package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyAuthError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want AuthErrorCode
	}{
		{
			name: "email send rate limit",
			err:  errors.New("response status code 429: over_email_send_rate_limit"),
			want: AuthCodeRateLimited,
		},
		{
			name: "generic rate limit wording",
			err:  errors.New("Email rate limit exceeded"),
			want: AuthCodeRateLimited,
		},
		{
			name: "email not confirmed code",
			err:  errors.New("response status code 400: email_not_confirmed"),
			want: AuthCodeEmailNotConfirmed,
		},
		{
			name: "email not confirmed wording",
			err:  errors.New("Email not confirmed"),
			want: AuthCodeEmailNotConfirmed,
		},
		{
			name: "invalid login credentials",
			err:  errors.New("Invalid login credentials"),
			want: AuthCodeInvalidCredentials,
		},
		{
			name: "invalid grant",
			err:  errors.New("response status code 400: invalid_grant"),
			want: AuthCodeInvalidCredentials,
		},
		{
			name: "anything else",
			err:  errors.New("connection reset by peer"),
			want: AuthCodeProviderError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyAuthError(tt.err)

			var authErr *AuthError
			require.ErrorAs(t, got, &authErr)
			assert.Equal(t, tt.want, authErr.Code)
		})
	}
}

func TestClassifyAuthError_ProviderErrorKeepsMessage(t *testing.T) {
	got := classifyAuthError(errors.New("connection reset by peer"))

	var authErr *AuthError
	require.ErrorAs(t, got, &authErr)
	assert.Equal(t, "connection reset by peer", authErr.Message)
}
