package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "tasktracker/internal/errors"
	"tasktracker/internal/middleware"
	"tasktracker/internal/model"
	"tasktracker/internal/service"
)

// UserHandler bundles HTTP handlers.
type UserHandler struct {
	authService service.AuthService
	userService service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(authService service.AuthService, userService service.UserService) *UserHandler {
	return &UserHandler{authService: authService, userService: userService}
}

// Register godoc
// @Summary Register a new user
// @Description The identity token is returned in the x-auth-token response header.
// @Tags users
// @Accept json
// @Produce json
// @Param request body model.RegisterInput true "Registration data"
// @Success 200 {object} model.User
// @Header 200 {string} x-auth-token "Identity token"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	in, ok := middleware.Payload[model.RegisterInput](c)
	if !ok {
		return apperrors.ErrInvalidBody
	}

	user, token, err := h.authService.Register(c.Request().Context(), in)
	if err != nil {
		return err
	}

	c.Response().Header().Set(middleware.TokenHeader, token)
	return c.JSON(http.StatusOK, user)
}

// Me godoc
// @Summary Get the caller's profile
// @Tags users
// @Produce json
// @Security TokenAuth
// @Success 200 {object} model.PublicUser
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	identity, err := middleware.IdentityFrom(c)
	if err != nil {
		return err
	}

	profile, err := h.userService.Profile(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}
