package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/dto"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/usecase"
)

// OrganizationHandler handles organization HTTP requests
type OrganizationHandler struct {
	service *usecase.OrganizationService
	logger  *zap.Logger
}

// NewOrganizationHandler creates a new organization handler instance
func NewOrganizationHandler(service *usecase.OrganizationService, logger *zap.Logger) *OrganizationHandler {
	return &OrganizationHandler{
		service: service,
		logger:  logger,
	}
}

// List handles GET /api/organizations
func (h *OrganizationHandler) List(c echo.Context) error {
	orgs, err := h.service.List(c.Request().Context())
	if err != nil {
		return fail(h.logger, c, err, "Failed to list organizations")
	}
	return c.JSON(http.StatusOK, orgs)
}

// Get handles GET /api/organizations/:id
func (h *OrganizationHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(h.logger, c, err, "Invalid organization id")
	}

	org, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return fail(h.logger, c, err, "Failed to get organization", zap.Uint("id", id))
	}
	return c.JSON(http.StatusOK, org)
}

// Create handles POST /api/organizations
func (h *OrganizationHandler) Create(c echo.Context) error {
	var req dto.CreateOrganizationRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	org, err := h.service.Create(c.Request().Context(), &req)
	if err != nil {
		return fail(h.logger, c, err, "Failed to create organization", zap.String("github_org", req.GithubOrg))
	}
	return c.JSON(http.StatusCreated, org)
}

// Update handles PUT /api/organizations/:id
func (h *OrganizationHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(h.logger, c, err, "Invalid organization id")
	}

	var req dto.UpdateOrganizationRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	org, err := h.service.Update(c.Request().Context(), id, &req)
	if err != nil {
		return fail(h.logger, c, err, "Failed to update organization", zap.Uint("id", id))
	}
	return c.JSON(http.StatusOK, org)
}

// Delete handles DELETE /api/organizations/:id
func (h *OrganizationHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(h.logger, c, err, "Invalid organization id")
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return fail(h.logger, c, err, "Failed to delete organization", zap.Uint("id", id))
	}
	return deleted(c, "Organization")
}
