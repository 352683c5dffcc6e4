package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/dto"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/entity"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/usecase"
)

// UserHandler handles user, user statistics and activity log requests
type UserHandler struct {
	service *usecase.UserService
	logger  *zap.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(service *usecase.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

// List handles GET /api/users?org_id=&team=&maturity_level=&active_only=
func (h *UserHandler) List(c echo.Context) error {
	orgID, err := parseOrgID(c)
	if err != nil {
		return fail(h.logger, c, err, "Invalid org_id")
	}
	level, err := parseOptionalInt(c, "maturity_level")
	if err != nil {
		return fail(h.logger, c, err, "Invalid maturity_level")
	}
	activeOnly, err := parseBool(c, "active_only")
	if err != nil {
		return fail(h.logger, c, err, "Invalid active_only")
	}

	users, err := h.service.List(c.Request().Context(), entity.UserFilter{
		OrganizationID: orgID,
		Team:           c.QueryParam("team"),
		MaturityLevel:  level,
		ActiveOnly:     activeOnly,
	})
	if err != nil {
		return fail(h.logger, c, err, "Failed to list users")
	}
	return c.JSON(http.StatusOK, users)
}

// Get handles GET /api/users/:id
func (h *UserHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(h.logger, c, err, "Invalid user id")
	}

	user, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return fail(h.logger, c, err, "Failed to get user", zap.Uint("id", id))
	}
	return c.JSON(http.StatusOK, user)
}

// Create handles POST /api/users
func (h *UserHandler) Create(c echo.Context) error {
	var req dto.CreateUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.service.Create(c.Request().Context(), &req)
	if err != nil {
		return fail(h.logger, c, err, "Failed to create user", zap.String("github_username", req.GithubUsername))
	}
	return c.JSON(http.StatusCreated, user)
}

// Update handles PUT /api/users/:id
func (h *UserHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(h.logger, c, err, "Invalid user id")
	}

	var req dto.UpdateUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.service.Update(c.Request().Context(), id, &req)
	if err != nil {
		return fail(h.logger, c, err, "Failed to update user", zap.Uint("id", id))
	}
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /api/users/:id
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(h.logger, c, err, "Invalid user id")
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return fail(h.logger, c, err, "Failed to delete user", zap.Uint("id", id))
	}
	return deleted(c, "User")
}

// TeamStats handles GET /api/users/stats/by-team
func (h *UserHandler) TeamStats(c echo.Context) error {
	orgID, err := parseOrgID(c)
	if err != nil {
		return fail(h.logger, c, err, "Invalid org_id")
	}

	stats, err := h.service.TeamStats(c.Request().Context(), orgID)
	if err != nil {
		return fail(h.logger, c, err, "Failed to get team stats")
	}
	return c.JSON(http.StatusOK, stats)
}

// MaturityStats handles GET /api/users/stats/by-maturity
func (h *UserHandler) MaturityStats(c echo.Context) error {
	orgID, err := parseOrgID(c)
	if err != nil {
		return fail(h.logger, c, err, "Invalid org_id")
	}

	stats, err := h.service.MaturityStats(c.Request().Context(), orgID)
	if err != nil {
		return fail(h.logger, c, err, "Failed to get maturity stats")
	}
	return c.JSON(http.StatusOK, stats)
}

// RecomputeMaturity handles POST /api/users/maturity/recompute?org_id=
func (h *UserHandler) RecomputeMaturity(c echo.Context) error {
	orgID, err := parseOrgID(c)
	if err != nil {
		return fail(h.logger, c, err, "Invalid org_id")
	}

	resp, err := h.service.RecomputeMaturity(c.Request().Context(), orgID)
	if err != nil {
		return fail(h.logger, c, err, "Failed to recompute maturity")
	}
	return c.JSON(http.StatusOK, resp)
}

// ListActivity handles GET /api/users/:id/activity?days=
func (h *UserHandler) ListActivity(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(h.logger, c, err, "Invalid user id")
	}
	days, err := parseDays(c)
	if err != nil {
		return fail(h.logger, c, err, "Invalid days")
	}

	logs, err := h.service.ListActivity(c.Request().Context(), id, days)
	if err != nil {
		return fail(h.logger, c, err, "Failed to list user activity", zap.Uint("id", id))
	}
	return c.JSON(http.StatusOK, logs)
}

// RecordActivity handles POST /api/users/:id/activity
func (h *UserHandler) RecordActivity(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(h.logger, c, err, "Invalid user id")
	}

	var req dto.ActivityRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	log, created, err := h.service.RecordActivity(c.Request().Context(), id, &req)
	if err != nil {
		return fail(h.logger, c, err, "Failed to record user activity", zap.Uint("id", id), zap.String("date", req.Date))
	}
	return createdOrOK(c, created, log)
}
