package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/spendwise-app/spendwise-api/internal/service"
	"github.com/spendwise-app/spendwise-api/internal/util"
)

type ReportHandler struct {
	reports *service.ReportService
}

func RegisterReports(e *echo.Echo, auth *service.AuthService, reports *service.ReportService) {
	handler := &ReportHandler{reports: reports}

	e.GET("/api/v1/dashboard/stats", handler.stats, RequireAuth(auth))
	e.GET("/api/v1/export", handler.export, RequireAuth(auth))
}

// stats godoc
//
//	@Summary	Dashboard aggregates for the current week or month
//	@Tags		dashboard
//	@Produce	json
//	@Security	BearerAuth
//	@Param		period	query		string	false	"week or month"	default(month)
//	@Success	200		{object}	service.DashboardStats
//	@Failure	401		{object}	ErrorResponse
//	@Router		/api/v1/dashboard/stats [get]
func (h *ReportHandler) stats(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("unauthorized"))
	}

	stats, err := h.reports.Stats(c.Request().Context(), user.ID, c.QueryParam("period"))
	if err != nil {
		c.Logger().Errorf("dashboard stats: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}
	return c.JSON(http.StatusOK, stats)
}

// export godoc
//
//	@Summary	Expense report payload for a date range
//	@Tags		export
//	@Produce	json
//	@Security	BearerAuth
//	@Param		startDate	query		string	true	"RFC 3339 lower bound"
//	@Param		endDate		query		string	true	"RFC 3339 upper bound"
//	@Success	200			{object}	service.ExportReport
//	@Failure	400			{object}	ErrorResponse
//	@Router		/api/v1/export [get]
func (h *ReportHandler) export(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("unauthorized"))
	}

	rawStart := c.QueryParam("startDate")
	rawEnd := c.QueryParam("endDate")
	if rawStart == "" || rawEnd == "" {
		return c.JSON(http.StatusBadRequest, util.Error("start date and end date are required"))
	}
	startDate, err := time.Parse(time.RFC3339, rawStart)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("startDate must be RFC 3339"))
	}
	endDate, err := time.Parse(time.RFC3339, rawEnd)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("endDate must be RFC 3339"))
	}

	report, err := h.reports.Export(c.Request().Context(), user.ID, startDate, endDate)
	if err != nil {
		c.Logger().Errorf("export: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}
	return c.JSON(http.StatusOK, report)
}
