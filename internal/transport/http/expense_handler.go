package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/spendwise-app/spendwise-api/internal/domain"
	"github.com/spendwise-app/spendwise-api/internal/service"
	"github.com/spendwise-app/spendwise-api/internal/util"
)

type ExpenseHandler struct {
	expenses *service.ExpenseService
}

type ExpenseRequest struct {
	Amount      float64 `json:"amount" example:"12.50"`
	Description *string `json:"description,omitempty" example:"Lunch"`
	Date        *string `json:"date,omitempty" example:"2024-01-15T12:00:00Z"`
	CategoryID  string  `json:"category_id" example:"f4bb0e02-5f91-4ce0-a6c0-7f63f3a8d5e2"`
}

func RegisterExpenses(e *echo.Echo, auth *service.AuthService, expenses *service.ExpenseService) {
	handler := &ExpenseHandler{expenses: expenses}

	group := e.Group("/api/v1/expenses", RequireAuth(auth))
	group.GET("", handler.list)
	group.POST("", handler.create)
	group.PUT("/:id", handler.update)
	group.DELETE("/:id", handler.remove)
}

// list godoc
//
//	@Summary	List the caller's expenses
//	@Tags		expenses
//	@Produce	json
//	@Security	BearerAuth
//	@Param		startDate	query		string	false	"RFC 3339 lower bound"
//	@Param		endDate		query		string	false	"RFC 3339 upper bound"
//	@Param		categoryId	query		string	false	"category filter"
//	@Success	200			{object}	util.Envelope
//	@Failure	401			{object}	ErrorResponse
//	@Router		/api/v1/expenses [get]
func (h *ExpenseHandler) list(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("unauthorized"))
	}

	var filter domain.ExpenseFilter
	if raw := c.QueryParam("startDate"); raw != "" {
		start, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, util.Error("startDate must be RFC 3339"))
		}
		filter.StartDate = &start
	}
	if raw := c.QueryParam("endDate"); raw != "" {
		end, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, util.Error("endDate must be RFC 3339"))
		}
		filter.EndDate = &end
	}
	if raw := c.QueryParam("categoryId"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, util.Error("categoryId must be a valid UUID"))
		}
		filter.CategoryID = &categoryID
	}

	expenses, err := h.expenses.List(c.Request().Context(), user.ID, filter)
	if err != nil {
		c.Logger().Errorf("list expenses: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}
	return c.JSON(http.StatusOK, util.Data("expenses", expenses))
}

// create godoc
//
//	@Summary	Create an expense
//	@Tags		expenses
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		ExpenseRequest	true	"expense payload"
//	@Success	201		{object}	util.Envelope
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/api/v1/expenses [post]
func (h *ExpenseHandler) create(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("unauthorized"))
	}

	req, categoryID, date, errMsg := bindExpenseRequest(c)
	if errMsg != "" {
		return c.JSON(http.StatusBadRequest, util.Error(errMsg))
	}

	expense, err := h.expenses.Create(c.Request().Context(), user.ID, categoryID, req.Amount, req.Description, date)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			return c.JSON(http.StatusNotFound, util.Error("category not found"))
		}
		c.Logger().Errorf("create expense: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}

	return c.JSON(http.StatusCreated, util.Envelope{
		"message": "Expense created successfully",
		"expense": expense,
	})
}

// update godoc
//
//	@Summary	Update an expense
//	@Tags		expenses
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string			true	"expense id"
//	@Param		request	body		ExpenseRequest	true	"expense payload"
//	@Success	200		{object}	util.Envelope
//	@Failure	404		{object}	ErrorResponse
//	@Router		/api/v1/expenses/{id} [put]
func (h *ExpenseHandler) update(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("unauthorized"))
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("id must be a valid UUID"))
	}

	req, categoryID, date, errMsg := bindExpenseRequest(c)
	if errMsg != "" {
		return c.JSON(http.StatusBadRequest, util.Error(errMsg))
	}

	expense, err := h.expenses.Update(c.Request().Context(), user.ID, expenseID, categoryID, req.Amount, req.Description, date)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExpenseNotFound):
			return c.JSON(http.StatusNotFound, util.Error("expense not found"))
		case errors.Is(err, service.ErrCategoryNotFound):
			return c.JSON(http.StatusNotFound, util.Error("category not found"))
		default:
			c.Logger().Errorf("update expense: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
		}
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"message": "Expense updated successfully",
		"expense": expense,
	})
}

// remove godoc
//
//	@Summary	Delete an expense
//	@Tags		expenses
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"expense id"
//	@Success	200	{object}	util.Envelope
//	@Failure	404	{object}	ErrorResponse
//	@Router		/api/v1/expenses/{id} [delete]
func (h *ExpenseHandler) remove(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("unauthorized"))
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("id must be a valid UUID"))
	}

	if err := h.expenses.Delete(c.Request().Context(), user.ID, expenseID); err != nil {
		if errors.Is(err, service.ErrExpenseNotFound) {
			return c.JSON(http.StatusNotFound, util.Error("expense not found"))
		}
		c.Logger().Errorf("delete expense: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}

	return c.JSON(http.StatusOK, util.Message("Expense deleted successfully"))
}

func bindExpenseRequest(c echo.Context) (*ExpenseRequest, uuid.UUID, *time.Time, string) {
	var req ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return nil, uuid.Nil, nil, "invalid request body"
	}
	if req.Amount <= 0 {
		return nil, uuid.Nil, nil, "amount must be positive"
	}
	if strings.TrimSpace(req.CategoryID) == "" {
		return nil, uuid.Nil, nil, "category is required"
	}
	categoryID, err := uuid.Parse(strings.TrimSpace(req.CategoryID))
	if err != nil {
		return nil, uuid.Nil, nil, "category_id must be a valid UUID"
	}

	var date *time.Time
	if req.Date != nil && *req.Date != "" {
		parsed, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			return nil, uuid.Nil, nil, "date must be RFC 3339"
		}
		date = &parsed
	}
	return &req, categoryID, date, ""
}
