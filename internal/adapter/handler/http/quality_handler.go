package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/dto"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/usecase"
)

type QualityHandler struct {
	service *usecase.QualityService
	logger  *zap.Logger
}

func NewQualityHandler(service *usecase.QualityService, logger *zap.Logger) *QualityHandler {
	return &QualityHandler{
		service: service,
		logger:  logger,
	}
}

// RecordCodeMetric handles POST /api/quality/code-metrics
func (h *QualityHandler) RecordCodeMetric(c echo.Context) error {
	var req dto.CodeMetricRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	metric, err := h.service.Record(c.Request().Context(), &req)
	if err != nil {
		return fail(h.logger, c, err, "Failed to record code metric",
			zap.String("repository", req.Repository),
			zap.String("commit_sha", req.CommitSHA))
	}
	return c.JSON(http.StatusCreated, metric)
}

// ListCodeMetrics handles GET /api/quality/code-metrics?repository=&days=
func (h *QualityHandler) ListCodeMetrics(c echo.Context) error {
	days, err := parseDays(c)
	if err != nil {
		return fail(h.logger, c, err, "Invalid days")
	}

	rows, err := h.service.List(c.Request().Context(), c.QueryParam("repository"), days)
	if err != nil {
		return fail(h.logger, c, err, "Failed to list code metrics")
	}
	return c.JSON(http.StatusOK, rows)
}
