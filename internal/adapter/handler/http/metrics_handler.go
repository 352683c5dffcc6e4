package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/dto"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/usecase"
)

// MetricsHandler handles daily metrics requests
type MetricsHandler struct {
	service *usecase.MetricsService
	logger  *zap.Logger
}

// NewMetricsHandler creates a new metrics handler instance
func NewMetricsHandler(service *usecase.MetricsService, logger *zap.Logger) *MetricsHandler {
	return &MetricsHandler{
		service: service,
		logger:  logger,
	}
}

// windowParams reads the days and org_id query parameters shared by the metric views.
func windowParams(c echo.Context) (int, *uint, error) {
	days, err := parseDays(c)
	if err != nil {
		return 0, nil, err
	}
	orgID, err := parseOrgID(c)
	if err != nil {
		return 0, nil, err
	}
	return days, orgID, nil
}

// List handles GET /api/metrics?days=&org_id=
func (h *MetricsHandler) List(c echo.Context) error {
	days, orgID, err := windowParams(c)
	if err != nil {
		return fail(h.logger, c, err, "Invalid metrics query")
	}

	rows, err := h.service.List(c.Request().Context(), days, orgID)
	if err != nil {
		return fail(h.logger, c, err, "Failed to list metrics")
	}
	return c.JSON(http.StatusOK, rows)
}

// Latest handles GET /api/metrics/latest?org_id=
func (h *MetricsHandler) Latest(c echo.Context) error {
	orgID, err := parseOrgID(c)
	if err != nil {
		return fail(h.logger, c, err, "Invalid org_id")
	}

	row, err := h.service.Latest(c.Request().Context(), orgID)
	if err != nil {
		return fail(h.logger, c, err, "Failed to get latest metrics")
	}
	return c.JSON(http.StatusOK, row)
}

// Upsert handles POST /api/metrics
func (h *MetricsHandler) Upsert(c echo.Context) error {
	var req dto.MetricsRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	row, created, err := h.service.Upsert(c.Request().Context(), &req)
	if err != nil {
		return fail(h.logger, c, err, "Failed to store metrics",
			zap.Uint("organization_id", req.OrganizationID),
			zap.String("date", req.Date))
	}
	return createdOrOK(c, created, row)
}

// Delete handles DELETE /api/metrics/:id
func (h *MetricsHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(h.logger, c, err, "Invalid metrics id")
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return fail(h.logger, c, err, "Failed to delete metrics", zap.Uint("id", id))
	}
	return deleted(c, "Metrics")
}

// Adoption handles GET /api/metrics/adoption
func (h *MetricsHandler) Adoption(c echo.Context) error {
	days, orgID, err := windowParams(c)
	if err != nil {
		return fail(h.logger, c, err, "Invalid metrics query")
	}

	resp, err := h.service.Adoption(c.Request().Context(), days, orgID)
	if err != nil {
		return fail(h.logger, c, err, "Failed to get adoption metrics")
	}
	return c.JSON(http.StatusOK, resp)
}

// Productivity handles GET /api/metrics/productivity
func (h *MetricsHandler) Productivity(c echo.Context) error {
	days, orgID, err := windowParams(c)
	if err != nil {
		return fail(h.logger, c, err, "Invalid metrics query")
	}

	resp, err := h.service.Productivity(c.Request().Context(), days, orgID)
	if err != nil {
		return fail(h.logger, c, err, "Failed to get productivity metrics")
	}
	return c.JSON(http.StatusOK, resp)
}

// Quality handles GET /api/metrics/quality
func (h *MetricsHandler) Quality(c echo.Context) error {
	days, orgID, err := windowParams(c)
	if err != nil {
		return fail(h.logger, c, err, "Invalid metrics query")
	}

	resp, err := h.service.Quality(c.Request().Context(), days, orgID)
	if err != nil {
		return fail(h.logger, c, err, "Failed to get quality metrics")
	}
	return c.JSON(http.StatusOK, resp)
}
