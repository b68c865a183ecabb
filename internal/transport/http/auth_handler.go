package http

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/spendwise-app/spendwise-api/internal/domain"
	"github.com/spendwise-app/spendwise-api/internal/service"
	"github.com/spendwise-app/spendwise-api/internal/util"
)

const minPasswordLength = 6

// resetRequestedMessage is returned for every forgot-password request,
// registered email or not.
const resetRequestedMessage = "If the email exists, a password reset link has been sent"

type AuthHandler struct {
	auth    *service.AuthService
	resets  *service.PasswordResetService
	devMode bool
}

// RegisterAuth wires the authentication endpoints. devMode echoes the
// raw reset token in the forgot-password response for local inspection;
// it must stay off in production.
func RegisterAuth(e *echo.Echo, auth *service.AuthService, resets *service.PasswordResetService, devMode bool) {
	handler := &AuthHandler{auth: auth, resets: resets, devMode: devMode}

	group := e.Group("/api/v1/auth")
	group.POST("/register", handler.register)
	group.POST("/login", handler.login)
	group.POST("/forgot-password", handler.forgotPassword)
	group.POST("/reset-password", handler.resetPassword)
}

// register godoc
//
//	@Summary	Register a new user
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		RegisterRequest	true	"registration payload"
//	@Success	201		{object}	util.Envelope
//	@Failure	400		{object}	ErrorResponse
//	@Router		/api/v1/auth/register [post]
func (h *AuthHandler) register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if msg, ok := validateEmail(req.Email); !ok {
		return c.JSON(http.StatusBadRequest, util.Error(msg))
	}
	if msg, ok := validatePassword(req.Password); !ok {
		return c.JSON(http.StatusBadRequest, util.Error(msg))
	}

	user, err := h.auth.Register(c.Request().Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		}
		c.Logger().Errorf("register: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}

	return c.JSON(http.StatusCreated, util.Envelope{
		"message": "User registered successfully",
		"user":    toAuthUser(user),
	})
}

// login godoc
//
//	@Summary	Log in with email and password
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		LoginRequest	true	"login payload"
//	@Success	200		{object}	AuthTokenResponse
//	@Failure	401		{object}	ErrorResponse
//	@Router		/api/v1/auth/login [post]
func (h *AuthHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, util.Error("email and password are required"))
	}

	user, token, expiresAt, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, util.Error(err.Error()))
		}
		c.Logger().Errorf("login: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"token":      token,
		"expires_at": expiresAt,
		"user":       toAuthUser(user),
	})
}

// forgotPassword godoc
//
//	@Summary	Request a password reset link
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		ForgotPasswordRequest	true	"reset request payload"
//	@Success	200		{object}	util.Envelope
//	@Failure	400		{object}	ErrorResponse
//	@Router		/api/v1/auth/forgot-password [post]
func (h *AuthHandler) forgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if msg, ok := validateEmail(req.Email); !ok {
		return c.JSON(http.StatusBadRequest, util.Error(msg))
	}

	token, err := h.resets.RequestReset(c.Request().Context(), req.Email)
	if err != nil {
		c.Logger().Errorf("forgot password: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}

	payload := util.Message(resetRequestedMessage)
	if h.devMode && token != "" {
		payload["reset_token"] = token
	}
	return c.JSON(http.StatusOK, payload)
}

// resetPassword godoc
//
//	@Summary	Reset the password with a token
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		ResetPasswordRequest	true	"reset payload"
//	@Success	200		{object}	util.Envelope
//	@Failure	400		{object}	ErrorResponse
//	@Router		/api/v1/auth/reset-password [post]
func (h *AuthHandler) resetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if strings.TrimSpace(req.Token) == "" {
		return c.JSON(http.StatusBadRequest, util.Error("token is required"))
	}
	if msg, ok := validatePassword(req.Password); !ok {
		return c.JSON(http.StatusBadRequest, util.Error(msg))
	}

	if err := h.resets.ConfirmReset(c.Request().Context(), req.Token, req.Password); err != nil {
		if errors.Is(err, service.ErrInvalidOrExpiredToken) {
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		}
		c.Logger().Errorf("reset password: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}

	return c.JSON(http.StatusOK, util.Message("Password reset successfully"))
}

func validateEmail(email string) (string, bool) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "email is required", false
	}
	// The raw string is what gets stored, so display-name forms like
	// "Alice <alice@example.com>" are rejected rather than parsed down.
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "invalid email address", false
	}
	return "", true
}

func validatePassword(password string) (string, bool) {
	if len(password) < minPasswordLength {
		return "password must be at least 6 characters", false
	}
	return "", true
}

func toAuthUser(user *domain.User) AuthUser {
	return AuthUser{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		Currency:  user.Currency,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
