package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"ai-travel-planner/internal/models"

	"go.uber.org/zap"
)

// SignupCooldown is how long sign-up submissions are blocked locally
// after the provider reports an email-send rate limit. This is UX
// throttling on our side, not a server-enforced guarantee.
const SignupCooldown = 30 * time.Second

type AuthEvent string

const (
	EventSignedIn  AuthEvent = "signed_in"
	EventSignedUp  AuthEvent = "signed_up"
	EventSignedOut AuthEvent = "signed_out"
)

// AuthProvider is the external auth collaborator. Implementations must
// return *AuthError so callers can branch on a stable code instead of
// message text.
type AuthProvider interface {
	SignUp(ctx context.Context, email, password string) error
	SignIn(ctx context.Context, email, password string) (*models.Session, error)
	SignOut(ctx context.Context, accessToken string) error
	User(ctx context.Context, accessToken string) (*models.User, error)
}

// AuthService is the session/account gate. It owns the per-email
// sign-up cooldown and a subscription list notified on session changes,
// replacing any global mutable session state.
type AuthService struct {
	provider AuthProvider
	logger   *zap.Logger
	now      func() time.Time

	mu          sync.Mutex
	cooldowns   map[string]time.Time
	subscribers map[int]func(AuthEvent, *models.Session)
	nextSubID   int
}

func NewAuthService(provider AuthProvider, logger *zap.Logger) *AuthService {
	return &AuthService{
		provider:    provider,
		logger:      logger,
		now:         time.Now,
		cooldowns:   make(map[string]time.Time),
		subscribers: make(map[int]func(AuthEvent, *models.Session)),
	}
}

// Subscribe registers a session-change callback and returns its
// unsubscribe func. Register at process start, tear down on shutdown.
func (s *AuthService) Subscribe(fn func(AuthEvent, *models.Session)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *AuthService) notify(event AuthEvent, session *models.Session) {
	s.mu.Lock()
	fns := make([]func(AuthEvent, *models.Session), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(event, session)
	}
}

// SignUp registers the account and chains an automatic sign-in. If the
// chained sign-in fails the whole operation fails, even though the
// account now exists. While a cooldown is active the provider is not
// called at all.
func (s *AuthService) SignUp(ctx context.Context, email, password string) (*models.Session, error) {
	if remaining := s.CooldownRemaining(email); remaining > 0 {
		return nil, &AuthError{
			Code:       AuthCodeRateLimited,
			Message:    fmt.Sprintf("please wait %d seconds before trying again", remaining),
			RetryAfter: remaining,
		}
	}

	if err := s.provider.SignUp(ctx, email, password); err != nil {
		var authErr *AuthError
		if errors.As(err, &authErr) && authErr.Code == AuthCodeRateLimited {
			s.armCooldown(email)
			authErr.RetryAfter = int(SignupCooldown / time.Second)
			s.logger.Warn("Sign-up rate limited, cooldown armed",
				zap.String("email", email),
				zap.Int("seconds", authErr.RetryAfter),
			)
		}
		return nil, err
	}

	session, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		s.logger.Error("Post-signup sign in failed", zap.Error(err))
		return nil, err
	}

	s.notify(EventSignedUp, session)
	return session, nil
}

func (s *AuthService) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	session, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	s.notify(EventSignedIn, session)
	return session, nil
}

func (s *AuthService) SignOut(ctx context.Context, accessToken string) error {
	if err := s.provider.SignOut(ctx, accessToken); err != nil {
		return err
	}

	s.notify(EventSignedOut, nil)
	return nil
}

// Session resolves the principal behind an access token with the
// provider, the authoritative session fetch.
func (s *AuthService) Session(ctx context.Context, accessToken string) (*models.User, error) {
	return s.provider.User(ctx, accessToken)
}

// CooldownRemaining reports the whole seconds left on the sign-up
// cooldown for an email, 0 when none is active. The value falls by one
// each second.
func (s *AuthService) CooldownRemaining(email string) int {
	s.mu.Lock()
	deadline, ok := s.cooldowns[email]
	s.mu.Unlock()
	if !ok {
		return 0
	}

	d := deadline.Sub(s.now())
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Seconds()))
}

// ResetCooldown clears the cooldown for an email, mirroring the
// client's sign-in/sign-up mode switch which always resets it.
func (s *AuthService) ResetCooldown(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cooldowns, email)
}

func (s *AuthService) armCooldown(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cooldowns[email] = s.now().Add(SignupCooldown)
}
