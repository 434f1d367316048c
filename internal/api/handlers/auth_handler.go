package handlers

import (
	"context"
	"errors"

	"ai-travel-planner/internal/dto"
	"ai-travel-planner/internal/models"
	"ai-travel-planner/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthService is the slice of the session/account gate the HTTP layer
// needs.
type AuthService interface {
	SignUp(ctx context.Context, email, password string) (*models.Session, error)
	SignIn(ctx context.Context, email, password string) (*models.Session, error)
	SignOut(ctx context.Context, accessToken string) error
	Session(ctx context.Context, accessToken string) (*models.User, error)
}

type AuthHandler struct {
	authService AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// SignUp godoc
// @Summary Register a new account
// @Description Register with email and password; a successful sign-up immediately signs the user in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignUpRequest true "Sign-up request"
// @Success 201 {object} dto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req dto.SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := dto.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	session, err := h.authService.SignUp(c.Context(), req.Email, req.Password)
	if err != nil {
		return h.authFailure(c, "Sign up failed", err)
	}

	return c.Status(fiber.StatusCreated).JSON(toSessionResponse(session))
}

// SignIn godoc
// @Summary Sign in
// @Description Sign in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignInRequest true "Sign-in request"
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} map[string]string
// @Router /auth/signin [post]
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req dto.SignInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := dto.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	session, err := h.authService.SignIn(c.Context(), req.Email, req.Password)
	if err != nil {
		return h.authFailure(c, "Sign in failed", err)
	}

	return c.JSON(toSessionResponse(session))
}

// SignOut godoc
// @Summary Sign out
// @Description Revoke the current session
// @Tags auth
// @Produce json
// @Security Bearer
// @Success 204
// @Failure 401 {object} map[string]string
// @Router /auth/signout [post]
func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	token, ok := c.Locals("accessToken").(string)
	if !ok || token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	if err := h.authService.SignOut(c.Context(), token); err != nil {
		return h.authFailure(c, "Sign out failed", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Session godoc
// @Summary Current session
// @Description Resolve the authenticated principal behind the access token
// @Tags auth
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} map[string]string
// @Router /auth/session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	token, ok := c.Locals("accessToken").(string)
	if !ok || token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	user, err := h.authService.Session(c.Context(), token)
	if err != nil {
		return h.authFailure(c, "Session lookup failed", err)
	}

	return c.JSON(dto.UserResponse{
		ID:    user.ID.String(),
		Email: user.Email,
	})
}

// authFailure maps a classified provider error to one user-visible
// message and status.
func (h *AuthHandler) authFailure(c *fiber.Ctx, logMsg string, err error) error {
	var authErr *service.AuthError
	if errors.As(err, &authErr) {
		switch authErr.Code {
		case service.AuthCodeRateLimited:
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":       "Too many attempts. Please wait before trying again",
				"retry_after": authErr.RetryAfter,
			})
		case service.AuthCodeEmailNotConfirmed:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Please check your email and confirm your address before signing in",
			})
		case service.AuthCodeInvalidCredentials:
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid credentials",
			})
		}
	}

	h.logger.Error(logMsg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": logMsg,
	})
}

func toSessionResponse(session *models.Session) dto.SessionResponse {
	return dto.SessionResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		TokenType:    session.TokenType,
		ExpiresIn:    session.ExpiresIn,
		User: dto.UserResponse{
			ID:    session.User.ID.String(),
			Email: session.User.Email,
		},
	}
}
