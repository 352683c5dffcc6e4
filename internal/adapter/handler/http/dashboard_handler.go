package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/usecase"
)

// DashboardHandler serves the read-only dashboard views
type DashboardHandler struct {
	service *usecase.DashboardService
	logger  *zap.Logger
}

func NewDashboardHandler(service *usecase.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger,
	}
}

// Summary handles GET /api/dashboard/summary?org_id=
func (h *DashboardHandler) Summary(c echo.Context) error {
	orgID, err := parseOrgID(c)
	if err != nil {
		return fail(h.logger, c, err, "Invalid org_id")
	}

	summary, err := h.service.Summary(c.Request().Context(), orgID)
	if err != nil {
		return fail(h.logger, c, err, "Failed to build dashboard summary")
	}
	return c.JSON(http.StatusOK, summary)
}

// Trends handles GET /api/dashboard/trends?days=&org_id=
func (h *DashboardHandler) Trends(c echo.Context) error {
	days, orgID, err := windowParams(c)
	if err != nil {
		return fail(h.logger, c, err, "Invalid trends query")
	}

	points, err := h.service.Trends(c.Request().Context(), days, orgID)
	if err != nil {
		return fail(h.logger, c, err, "Failed to build dashboard trends")
	}
	return c.JSON(http.StatusOK, points)
}

// MaturityDistribution handles GET /api/dashboard/maturity-distribution
func (h *DashboardHandler) MaturityDistribution(c echo.Context) error {
	orgID, err := parseOrgID(c)
	if err != nil {
		return fail(h.logger, c, err, "Invalid org_id")
	}

	items, err := h.service.MaturityDistribution(c.Request().Context(), orgID)
	if err != nil {
		return fail(h.logger, c, err, "Failed to build maturity distribution")
	}
	return c.JSON(http.StatusOK, items)
}

// TeamBreakdown handles GET /api/dashboard/team-breakdown
func (h *DashboardHandler) TeamBreakdown(c echo.Context) error {
	orgID, err := parseOrgID(c)
	if err != nil {
		return fail(h.logger, c, err, "Invalid org_id")
	}

	items, err := h.service.TeamBreakdown(c.Request().Context(), orgID)
	if err != nil {
		return fail(h.logger, c, err, "Failed to build team breakdown")
	}
	return c.JSON(http.StatusOK, items)
}

// KPIs handles GET /api/dashboard/kpis
func (h *DashboardHandler) KPIs(c echo.Context) error {
	kpis, err := h.service.KPIs(c.Request().Context())
	if err != nil {
		return fail(h.logger, c, err, "Failed to list KPIs")
	}
	return c.JSON(http.StatusOK, kpis)
}
