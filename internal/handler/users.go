package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"shortlink/internal/domain"
)

func (h *Handler) CreateUser(c echo.Context) error {
	var req domain.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	if err := h.validator.ValidateUser(req.Username, req.Email); err != nil {
		return h.handleValidationError(c, err)
	}

	u, err := h.userService.Register(c.Request().Context(), req.Username, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return c.JSON(http.StatusConflict, errEmailTaken)
		}
		h.logger.Error("failed to register user", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errRegisterFailed)
	}

	return c.JSON(http.StatusOK, domain.CreateUserResponse{
		User:   domain.CreateUserRequest{Username: u.Username, Email: u.Email},
		APIKey: u.APIKey,
	})
}

func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		h.logger.Error("failed to list users", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errListUsersFailed)
	}
	if users == nil {
		users = []domain.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// DeleteUser removes the account only; short URLs it created stay live.
func (h *Handler) DeleteUser(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, errInvalidUserID)
	}

	if err := h.userService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errUserNotFound)
		}
		h.logger.Error("failed to delete user", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errDeleteUserFailed)
	}
	return c.NoContent(http.StatusOK)
}
