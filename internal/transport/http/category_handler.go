package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/spendwise-app/spendwise-api/internal/service"
	"github.com/spendwise-app/spendwise-api/internal/util"
)

type CategoryHandler struct {
	categories *service.CategoryService
}

type CategoryRequest struct {
	Name  string  `json:"name" example:"Groceries"`
	Color *string `json:"color,omitempty" example:"#22C55E"`
}

func RegisterCategories(e *echo.Echo, auth *service.AuthService, categories *service.CategoryService) {
	handler := &CategoryHandler{categories: categories}

	group := e.Group("/api/v1/categories", RequireAuth(auth))
	group.GET("", handler.list)
	group.POST("", handler.create)
	group.DELETE("/:id", handler.remove)
}

// list godoc
//
//	@Summary	List default and custom categories
//	@Tags		categories
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	util.Envelope
//	@Failure	401	{object}	ErrorResponse
//	@Router		/api/v1/categories [get]
func (h *CategoryHandler) list(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("unauthorized"))
	}

	categories, err := h.categories.List(c.Request().Context(), user.ID)
	if err != nil {
		c.Logger().Errorf("list categories: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}
	return c.JSON(http.StatusOK, util.Data("categories", categories))
}

// create godoc
//
//	@Summary	Create a custom category
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		CategoryRequest	true	"category payload"
//	@Success	201		{object}	util.Envelope
//	@Failure	400		{object}	ErrorResponse
//	@Router		/api/v1/categories [post]
func (h *CategoryHandler) create(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("unauthorized"))
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, util.Error("category name is required"))
	}

	category, err := h.categories.Create(c.Request().Context(), user.ID, name, req.Color)
	if err != nil {
		if errors.Is(err, service.ErrCategoryExists) {
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		}
		c.Logger().Errorf("create category: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}

	return c.JSON(http.StatusCreated, util.Envelope{
		"message":  "Category created successfully",
		"category": category,
	})
}

// remove godoc
//
//	@Summary	Delete a custom category
//	@Tags		categories
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"category id"
//	@Success	200	{object}	util.Envelope
//	@Failure	404	{object}	ErrorResponse
//	@Router		/api/v1/categories/{id} [delete]
func (h *CategoryHandler) remove(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("unauthorized"))
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("id must be a valid UUID"))
	}

	if err := h.categories.Delete(c.Request().Context(), user.ID, categoryID); err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			return c.JSON(http.StatusNotFound, util.Error("category not found or cannot delete default category"))
		case errors.Is(err, service.ErrCategoryInUse):
			return c.JSON(http.StatusBadRequest, util.Error("cannot delete category that is being used by expenses"))
		default:
			c.Logger().Errorf("delete category: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
		}
	}

	return c.JSON(http.StatusOK, util.Message("Category deleted successfully"))
}
