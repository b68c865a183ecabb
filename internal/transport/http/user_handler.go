package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/spendwise-app/spendwise-api/internal/service"
	"github.com/spendwise-app/spendwise-api/internal/util"
)

type UserHandler struct {
	auth *service.AuthService
}

func RegisterUsers(e *echo.Echo, auth *service.AuthService) {
	handler := &UserHandler{auth: auth}

	group := e.Group("/api/v1/users/me", RequireAuth(auth))
	group.GET("", handler.me)
	group.PUT("/currency", handler.updateCurrency)
}

// me godoc
//
//	@Summary	Return the authenticated user
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	util.Envelope
//	@Failure	401	{object}	ErrorResponse
//	@Router		/api/v1/users/me [get]
func (h *UserHandler) me(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("unauthorized"))
	}
	return c.JSON(http.StatusOK, util.Data("user", toAuthUser(user)))
}

// updateCurrency godoc
//
//	@Summary	Update the preferred display currency
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		UpdateCurrencyRequest	true	"currency payload"
//	@Success	200		{object}	util.Envelope
//	@Failure	400		{object}	ErrorResponse
//	@Router		/api/v1/users/me/currency [put]
func (h *UserHandler) updateCurrency(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("unauthorized"))
	}

	var req UpdateCurrencyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	currency := strings.TrimSpace(req.Currency)
	if len(currency) != 3 {
		return c.JSON(http.StatusBadRequest, util.Error("currency must be a 3-letter code"))
	}

	updated, err := h.auth.UpdateCurrency(c.Request().Context(), user.ID, currency)
	if err != nil {
		c.Logger().Errorf("update currency: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"message": "Currency updated successfully",
		"user":    toAuthUser(updated),
	})
}
