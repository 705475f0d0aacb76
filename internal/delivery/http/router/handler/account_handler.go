// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"roster/internal/delivery/http/response"
	"roster/internal/domain/entity"
	"roster/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the account registration request.
func (h *AccountHandler) Create(c echo.Context) error {
	var input usecase.CreateAccountInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account creation input")
	}

	view, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view, "Account created successfully")
}

// Get handles the lookup-by-email request.
func (h *AccountHandler) Get(c echo.Context) error {
	view, err := h.uc.Lookup(c.Request().Context(), c.Param("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// List handles the list-all request. The usecase hands back raw entities;
// stripping the digests is this layer's job.
func (h *AccountHandler) List(c echo.Context) error {
	accounts, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*entity.AccountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, account.View())
	}

	return response.Success(c, http.StatusOK, views, "")
}

// Update handles the account update request.
func (h *AccountHandler) Update(c echo.Context) error {
	var input usecase.UpdateAccountInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account update input")
	}

	if err := h.uc.Update(c.Request().Context(), c.Param("email"), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account updated successfully")
}

// Delete handles the account deletion request. The typed password in the
// body re-authenticates the caller before the destructive action.
func (h *AccountHandler) Delete(c echo.Context) error {
	var input usecase.DeleteAccountInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account deletion input")
	}

	if err := h.uc.Delete(c.Request().Context(), c.Param("email"), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account deleted successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
