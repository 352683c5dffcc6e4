package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/dto"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/entity"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/usecase"
)

// MCPHandler records and reports AI-attributed repository actions
type MCPHandler struct {
	service *usecase.EventService
	logger  *zap.Logger
}

func NewMCPHandler(service *usecase.EventService, logger *zap.Logger) *MCPHandler {
	return &MCPHandler{
		service: service,
		logger:  logger,
	}
}

// RecordEvent handles POST /api/mcp/events
func (h *MCPHandler) RecordEvent(c echo.Context) error {
	var req dto.EventRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	event, err := h.service.Record(c.Request().Context(), &req)
	if err != nil {
		return fail(h.logger, c, err, "Failed to record MCP event", zap.String("event_type", req.EventType))
	}
	return c.JSON(http.StatusCreated, event)
}

// ListEvents handles GET /api/mcp/events
func (h *MCPHandler) ListEvents(c echo.Context) error {
	since, err := parseOptionalTime(c, "since")
	if err != nil {
		return fail(h.logger, c, err, "Invalid since")
	}
	until, err := parseOptionalTime(c, "until")
	if err != nil {
		return fail(h.logger, c, err, "Invalid until")
	}
	limit, err := parseOptionalInt(c, "limit")
	if err != nil {
		return fail(h.logger, c, err, "Invalid limit")
	}

	filter := entity.EventFilter{
		EventType:  c.QueryParam("event_type"),
		Username:   c.QueryParam("username"),
		Repository: c.QueryParam("repository"),
		Since:      since,
		Until:      until,
	}
	if limit != nil {
		filter.Limit = *limit
	}

	events, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return fail(h.logger, c, err, "Failed to list MCP events")
	}
	return c.JSON(http.StatusOK, events)
}

// Metrics handles GET /api/mcp/metrics?since=&until=
func (h *MCPHandler) Metrics(c echo.Context) error {
	since, err := parseOptionalTime(c, "since")
	if err != nil {
		return fail(h.logger, c, err, "Invalid since")
	}
	until, err := parseOptionalTime(c, "until")
	if err != nil {
		return fail(h.logger, c, err, "Invalid until")
	}

	resp, err := h.service.Metrics(c.Request().Context(), since, until)
	if err != nil {
		return fail(h.logger, c, err, "Failed to compute MCP metrics")
	}
	return c.JSON(http.StatusOK, resp)
}
