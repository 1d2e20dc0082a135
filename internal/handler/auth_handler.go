package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "tasktracker/internal/errors"
	"tasktracker/internal/middleware"
	"tasktracker/internal/model"
	"tasktracker/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login godoc
// @Summary Login user
// @Description Responds with the identity token as the whole plain-text body.
// @Tags auth
// @Accept json
// @Produce plain
// @Param request body model.LoginInput true "Login credentials"
// @Success 200 {string} string "Identity token"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	in, ok := middleware.Payload[model.LoginInput](c)
	if !ok {
		return apperrors.ErrInvalidBody
	}

	token, err := h.authService.Login(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.String(http.StatusOK, token)
}

// Logout godoc
// @Summary Logout user
// @Description Revokes the presented token.
// @Tags auth
// @Produce json
// @Security TokenAuth
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return apperrors.ErrUnauthenticated
	}

	if err := h.authService.Logout(c.Request().Context(), claims); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "logged out successfully",
	})
}
