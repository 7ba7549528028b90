package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	errs "examdesk/internal/errors"
	"examdesk/internal/service"
)

// refreshCookieName is the cookie carrying the refresh token.
const refreshCookieName = "jwt"

// AuthHandler handles authentication endpoints. The refresh token travels
// only in an HTTP-only cookie; the access token only in response bodies.
type AuthHandler struct {
	authService service.AuthService
	refreshTTL  time.Duration
}

// NewAuthHandler creates a new auth handler. refreshTTL doubles as the
// cookie max-age so cookie and token always expire together.
func NewAuthHandler(authService service.AuthService, refreshTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, refreshTTL: refreshTTL}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpRequest represents a sign-up request.
type SignUpRequest struct {
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Roles    []string `json:"roles,omitempty"`
}

// ResetPasswordRequest represents a password reset request.
type ResetPasswordRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries a freshly minted access token.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

func (h *AuthHandler) refreshCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.refreshTTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}

// Login godoc
// @Summary Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errs.ErrorResponse{Message: "All fields are required"})
	}

	accessToken, refreshToken, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	c.SetCookie(h.refreshCookie(refreshToken))
	return c.JSON(http.StatusOK, TokenResponse{AccessToken: accessToken})
}

// Refresh godoc
// @Summary Mint a new access token from the refresh cookie
// @Tags auth
// @Produce json
// @Success 200 {object} TokenResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /auth/refresh [get]
func (h *AuthHandler) Refresh(c echo.Context) error {
	cookie, err := c.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		return c.JSON(http.StatusUnauthorized, errs.ErrorResponse{Message: "Unauthorized"})
	}

	accessToken, err := h.authService.Refresh(c.Request().Context(), cookie.Value)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, TokenResponse{AccessToken: accessToken})
}

// Logout godoc
// @Summary Clear the refresh cookie
// @Tags auth
// @Produce json
// @Success 200 {object} messageResponse
// @Success 204
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if _, err := c.Cookie(refreshCookieName); err != nil {
		return c.NoContent(http.StatusNoContent)
	}

	expired := h.refreshCookie("")
	expired.MaxAge = -1
	c.SetCookie(expired)

	return c.JSON(http.StatusOK, messageResponse{Message: "Cookie cleared"})
}

// SignUp godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignUpRequest true "Registration data"
// @Success 201 {object} messageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errs.ErrorResponse{Message: "All fields are required"})
	}

	user, err := h.authService.Register(c.Request().Context(), req.Email, req.Password, req.Roles)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: fmt.Sprintf("New user %s created", user.Email)})
}

// ResetPassword godoc
// @Summary Reset a user's password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "Email and new password"
// @Success 201 {object} messageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/reset [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errs.ErrorResponse{Message: "All fields are required"})
	}

	if err := h.authService.ResetPassword(c.Request().Context(), req.Email, req.Password); err != nil {
		// The reset endpoint is the one place an unknown user is a 404.
		if errors.Is(err, errs.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errs.ErrorResponse{Message: err.Error()})
		}
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: fmt.Sprintf("change password for user: %s", req.Email)})
}
