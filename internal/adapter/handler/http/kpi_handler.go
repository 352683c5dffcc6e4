package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/dto"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/usecase"
)

// KPIHandler handles KPI reference table requests
type KPIHandler struct {
	service *usecase.KPIService
	logger  *zap.Logger
}

func NewKPIHandler(service *usecase.KPIService, logger *zap.Logger) *KPIHandler {
	return &KPIHandler{
		service: service,
		logger:  logger,
	}
}

// List handles GET /api/kpis
func (h *KPIHandler) List(c echo.Context) error {
	kpis, err := h.service.List(c.Request().Context())
	if err != nil {
		return fail(h.logger, c, err, "Failed to list KPIs")
	}
	return c.JSON(http.StatusOK, kpis)
}

// Create handles POST /api/kpis
func (h *KPIHandler) Create(c echo.Context) error {
	var req dto.CreateKPIRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	kpi, err := h.service.Create(c.Request().Context(), &req)
	if err != nil {
		return fail(h.logger, c, err, "Failed to create KPI", zap.String("name", req.Name))
	}
	return c.JSON(http.StatusCreated, kpi)
}

// Update handles PUT /api/kpis/:id
func (h *KPIHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(h.logger, c, err, "Invalid KPI id")
	}

	var req dto.UpdateKPIRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	kpi, err := h.service.Update(c.Request().Context(), id, &req)
	if err != nil {
		return fail(h.logger, c, err, "Failed to update KPI", zap.Uint("id", id))
	}
	return c.JSON(http.StatusOK, kpi)
}

// Delete handles DELETE /api/kpis/:id
func (h *KPIHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(h.logger, c, err, "Invalid KPI id")
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return fail(h.logger, c, err, "Failed to delete KPI", zap.Uint("id", id))
	}
	return deleted(c, "KPI")
}

// Refresh handles POST /api/kpis/refresh?org_id=
func (h *KPIHandler) Refresh(c echo.Context) error {
	orgID, err := parseOrgID(c)
	if err != nil {
		return fail(h.logger, c, err, "Invalid org_id")
	}

	kpis, err := h.service.Refresh(c.Request().Context(), orgID)
	if err != nil {
		return fail(h.logger, c, err, "Failed to refresh KPIs")
	}
	return c.JSON(http.StatusOK, kpis)
}
